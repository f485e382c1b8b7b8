package wavf64

import "github.com/go-audio/riff"

var (
	// CIDFmt is the chunk ID of the format chunk.
	CIDFmt = riff.FmtID
	// CIDData is the chunk ID of the sample data chunk.
	CIDData = riff.DataFormatID
	// CIDList is the chunk ID for a LIST chunk.
	CIDList = [4]byte{'L', 'I', 'S', 'T'}
	// CIDJunk is the chunk ID of a padding chunk.
	CIDJunk = [4]byte{'J', 'U', 'N', 'K'}
)

// Chunk is a RIFF sub-chunk kept as raw bytes.
type Chunk struct {
	ID   [4]byte
	Data []byte
}

// NewChunk builds a chunk from a four character id such as "JUNK".
// Shorter ids are padded with spaces, longer ones are truncated.
func NewChunk(id string, data []byte) Chunk {
	return Chunk{ID: ChunkID(id), Data: data}
}

// ChunkID converts a string to a four byte chunk id, space padded.
func ChunkID(id string) [4]byte {
	out := [4]byte{' ', ' ', ' ', ' '}
	copy(out[:], id)

	return out
}

func (c Chunk) Clone() Chunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

// Size is the body length in bytes, without the 8 byte header.
func (c Chunk) Size() int {
	return len(c.Data)
}

func cloneChunks(chunks []Chunk) []Chunk {
	if len(chunks) == 0 {
		return nil
	}

	out := make([]Chunk, len(chunks))
	for i := range chunks {
		out[i] = chunks[i].Clone()
	}

	return out
}
