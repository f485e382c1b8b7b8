package wavf64

import (
	"math"
	"math/bits"
)

const (
	// "RIFF" + size + "WAVE"
	riffHeaderSize = 12
	// id + body size
	chunkHeaderSize = 8
)

// maxRIFFFileSize is the largest file the 32-bit RIFF size field can describe.
// Tests lower it to reach the limit without allocating 4 GiB.
var maxRIFFFileSize uint64 = math.MaxUint32

// ChunkStore is an ordered list of chunks. Lookups match the first chunk with
// a given id; duplicates are kept as they are.
//
// Every mutation is checked against the 32-bit RIFF size limit before it is
// applied, so a store that rejected a change is left untouched.
type ChunkStore struct {
	chunks []Chunk
}

// Len returns the number of chunks.
func (s *ChunkStore) Len() int {
	if s == nil {
		return 0
	}

	return len(s.chunks)
}

// Index returns the position of the first chunk with the given id.
func (s *ChunkStore) Index(id [4]byte) (int, bool) {
	if s == nil {
		return -1, false
	}

	for i := range s.chunks {
		if s.chunks[i].ID == id {
			return i, true
		}
	}

	return -1, false
}

// IDs returns the chunk ids in file order.
func (s *ChunkStore) IDs() [][4]byte {
	if s == nil {
		return nil
	}

	ids := make([][4]byte, len(s.chunks))
	for i := range s.chunks {
		ids[i] = s.chunks[i].ID
	}

	return ids
}

// Chunk returns a copy of the first chunk with the given id.
func (s *ChunkStore) Chunk(id [4]byte) (Chunk, bool) {
	idx, ok := s.Index(id)
	if !ok {
		return Chunk{}, false
	}

	return s.chunks[idx].Clone(), true
}

// Chunks returns a copy of every chunk in file order.
func (s *ChunkStore) Chunks() []Chunk {
	if s == nil {
		return nil
	}

	return cloneChunks(s.chunks)
}

// Upsert replaces the first chunk with the same id, or appends c when there
// is none. It fails with ErrChunkSizeTooLarge, naming c's id, when the result
// would no longer fit a RIFF file. The id is named even when the other chunks
// alone already exceed the limit.
func (s *ChunkStore) Upsert(c Chunk) error {
	idx, found := s.Index(c.ID)

	lens := s.bodyLens()
	if found {
		lens[idx] = uint64(len(c.Data))
	} else {
		lens = append(lens, uint64(len(c.Data)))
	}

	if _, ok := riffFileSize(lens); !ok {
		return newError(ErrChunkSizeTooLarge, string(c.ID[:]))
	}

	c = c.Clone()
	if found {
		s.chunks[idx] = c
	} else {
		s.chunks = append(s.chunks, c)
	}

	return nil
}

// Delete removes the first chunk with the given id and reports whether one
// was found.
func (s *ChunkStore) Delete(id [4]byte) bool {
	idx, ok := s.Index(id)
	if !ok {
		return false
	}

	s.chunks = append(s.chunks[:idx], s.chunks[idx+1:]...)

	return true
}

// SetChunks replaces the whole list with a copy of chunks.
func (s *ChunkStore) SetChunks(chunks []Chunk) error {
	lens := make([]uint64, len(chunks))
	for i := range chunks {
		lens[i] = uint64(len(chunks[i].Data))
	}

	if _, ok := riffFileSize(lens); !ok {
		return newError(ErrChunkSizeTooLarge, "")
	}

	s.chunks = cloneChunks(chunks)

	return nil
}

func (s *ChunkStore) bodyLens() []uint64 {
	lens := make([]uint64, s.Len(), s.Len()+1)
	for i := range lens {
		lens[i] = uint64(len(s.chunks[i].Data))
	}

	return lens
}

// riffFileSize returns the size of a RIFF file holding bodies of the given
// lengths, header included. It reports false as soon as a running total
// passes maxRIFFFileSize.
func riffFileSize(bodyLens []uint64) (uint64, bool) {
	total := uint64(riffHeaderSize)

	for _, n := range bodyLens {
		framed, carry := bits.Add64(n, chunkHeaderSize, 0)
		if carry != 0 {
			return 0, false
		}

		total, carry = bits.Add64(total, framed, 0)
		if carry != 0 || total > maxRIFFFileSize {
			return 0, false
		}
	}

	return total, true
}
