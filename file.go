package wavf64

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/riff"
)

const wavExtension = ".wav"

// File is a WAVE file held in memory as an ordered list of chunks.
type File struct {
	// Path is the file the chunks were read from or last saved to.
	Path string
	ChunkStore
}

// New returns an empty file with no chunks.
func New() *File {
	return &File{}
}

// Parse decodes a complete RIFF/WAVE byte stream. Chunk bodies are copied
// byte for byte; no pad byte is expected after odd-length bodies.
func Parse(data []byte) (*File, error) {
	if len(data) < riffHeaderSize {
		return nil, fmt.Errorf("%w: %w", newError(ErrNotRIFFWave, "RIFF"), riff.ErrFmtNotSupported)
	}

	if !bytes.Equal(data[0:4], riff.RiffID[:]) {
		return nil, fmt.Errorf("%w: %w", newError(ErrNotRIFFWave, "RIFF"), riff.ErrFmtNotSupported)
	}

	if uint64(binary.LittleEndian.Uint32(data[4:8])) != uint64(len(data))-8 {
		return nil, newError(ErrNotRIFFWave, "RIFF size")
	}

	if !bytes.Equal(data[8:12], riff.WavFormatID[:]) {
		return nil, fmt.Errorf("%w: %w", newError(ErrNotRIFFWave, "WAVE"), riff.ErrFmtNotSupported)
	}

	f := New()

	offset := riffHeaderSize
	for offset < len(data) {
		if len(data)-offset < chunkHeaderSize {
			return nil, newError(ErrChunkSize, "truncated chunk header")
		}

		var id [4]byte
		copy(id[:], data[offset:offset+4])

		size := uint64(binary.LittleEndian.Uint32(data[offset+4 : offset+8]))
		offset += chunkHeaderSize

		if size > uint64(len(data)-offset) {
			return nil, newError(ErrChunkSize, string(id[:]))
		}

		end := offset + int(size)
		f.chunks = append(f.chunks, Chunk{ID: id, Data: append([]byte(nil), data[offset:end]...)})
		offset = end
	}

	return f, nil
}

// Decode reads r to the end and parses the result.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav data: %w", err)
	}

	return Parse(data)
}

// Open reads and parses the ".wav" file at path.
func Open(path string) (*File, error) {
	fi, err := os.Stat(path)
	if err != nil || !fi.Mode().IsRegular() {
		return nil, newError(ErrNotAFile, path)
	}

	if !hasWavExtension(path) {
		return nil, newError(ErrWrongExtension, path)
	}

	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer in.Close()

	f, err := Decode(in)
	if err != nil {
		return nil, err
	}

	f.Path = path

	return f, nil
}

// Bytes serializes the file. It fails with ErrChunkSizeTooLarge, without a
// chunk name, when the chunks no longer fit a RIFF file.
func (f *File) Bytes() ([]byte, error) {
	total, ok := riffFileSize(f.bodyLens())
	if !ok {
		return nil, newError(ErrChunkSizeTooLarge, "")
	}

	buf := make([]byte, 0, total)
	buf = append(buf, riff.RiffID[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(total-8))
	buf = append(buf, riff.WavFormatID[:]...)

	for _, c := range f.chunks {
		buf = append(buf, c.ID[:]...)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(c.Data)))
		buf = append(buf, c.Data...)
	}

	return buf, nil
}

// WriteTo implements io.WriterTo.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	data, err := f.Bytes()
	if err != nil {
		return 0, err
	}

	n, err := w.Write(data)
	if err != nil {
		return int64(n), fmt.Errorf("failed to write wav data: %w", err)
	}

	return int64(n), nil
}

// Save writes the file back to Path.
func (f *File) Save() error {
	return f.SaveAs(f.Path)
}

// SaveAs writes the file to path and makes it the new Path. Nothing is
// created when serialization fails.
func (f *File) SaveAs(path string) (err error) {
	if !hasWavExtension(path) {
		return newError(ErrWrongExtension, path)
	}

	data, err := f.Bytes()
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	defer func() {
		cerr := out.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	f.Path = path

	return nil
}

func hasWavExtension(path string) bool {
	return strings.EqualFold(filepath.Ext(path), wavExtension)
}
