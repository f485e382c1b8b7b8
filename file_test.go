package wavf64

import (
	"bytes"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/go-audio/riff"
)

func makeWavWithUnknownChunks() []byte {
	return buildWav(
		testChunk{"JUNK", []byte{1, 2, 3}},
		testChunk{"fmt ", fmtBody(FormatPCM, 1, 8000, 8)},
		testChunk{"odd!", []byte{0xAB}},
		testChunk{"data", []byte{0x80, 0xFF, 0x01}},
		testChunk{"zero", nil},
	)
}

func TestParseRoundTripIsByteExact(t *testing.T) {
	input := makeWavWithUnknownChunks()

	f, err := Parse(input)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantIDs := [][4]byte{CIDJunk, CIDFmt, ChunkID("odd!"), CIDData, ChunkID("zero")}
	if got := f.IDs(); !reflect.DeepEqual(got, wantIDs) {
		t.Fatalf("IDs=%q, want %q", got, wantIDs)
	}

	out, err := f.Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	if !bytes.Equal(out, input) {
		t.Fatalf("round trip changed the bytes\n got % X\nwant % X", out, input)
	}

	before, err := parseWavChunks(input)
	if err != nil {
		t.Fatalf("parse input: %v", err)
	}

	after, err := parseWavChunks(out)
	if err != nil {
		t.Fatalf("parse output: %v", err)
	}

	if !reflect.DeepEqual(buildChunkInventory(before), buildChunkInventory(after)) {
		t.Fatalf("chunk inventory changed: %v -> %v", buildChunkInventory(before), buildChunkInventory(after))
	}
}

func TestParseErrors(t *testing.T) {
	valid := makeWavWithUnknownChunks()

	withSize := func(b []byte, size uint32) []byte {
		out := append([]byte(nil), b...)
		binary.LittleEndian.PutUint32(out[4:8], size)

		return out
	}

	badMagic := append([]byte(nil), valid...)
	copy(badMagic[0:4], "RIFX")

	badForm := append([]byte(nil), valid...)
	copy(badForm[8:12], "AVI ")

	overrun := buildWav(testChunk{"fmt ", fmtBody(FormatPCM, 1, 8000, 8)})
	binary.LittleEndian.PutUint32(overrun[16:20], 17)

	partialHeader := append(buildWav(testChunk{"JUNK", nil}), 'd', 'a', 't')
	partialHeader = withSize(partialHeader, uint32(len(partialHeader)-8))

	tests := []struct {
		name       string
		data       []byte
		wantKind   Kind
		wantDetail string
	}{
		{"empty", nil, ErrNotRIFFWave, "RIFF"},
		{"short", valid[:11], ErrNotRIFFWave, "RIFF"},
		{"magic", badMagic, ErrNotRIFFWave, "RIFF"},
		{"size too small", withSize(valid, uint32(len(valid)-9)), ErrNotRIFFWave, "RIFF size"},
		{"size too large", withSize(valid, uint32(len(valid))), ErrNotRIFFWave, "RIFF size"},
		{"form type", badForm, ErrNotRIFFWave, "WAVE"},
		{"body overrun", overrun, ErrChunkSize, "fmt "},
		{"partial header", partialHeader, ErrChunkSize, "truncated chunk header"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Parse(tt.data)
			if f != nil {
				t.Fatal("Parse returned a partial file")
			}

			if !errors.Is(err, tt.wantKind) {
				t.Fatalf("err=%v, want %v", err, tt.wantKind)
			}

			if got := DetailOf(err); got != tt.wantDetail {
				t.Fatalf("detail=%q, want %q", got, tt.wantDetail)
			}
		})
	}
}

func TestParseHeaderErrorsWrapRiff(t *testing.T) {
	_, err := Parse([]byte("RIFX\x04\x00\x00\x00WAVE"))
	if !errors.Is(err, riff.ErrFmtNotSupported) {
		t.Fatalf("err=%v does not wrap riff.ErrFmtNotSupported", err)
	}
}

func TestParseHeaderOnly(t *testing.T) {
	f, err := Parse(buildWav())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if f.Len() != 0 {
		t.Fatalf("Len=%d, want 0", f.Len())
	}

	out, err := New().Bytes()
	if err != nil {
		t.Fatalf("Bytes: %v", err)
	}

	if !bytes.Equal(out, []byte("RIFF\x04\x00\x00\x00WAVE")) {
		t.Fatalf("empty file bytes=% X", out)
	}
}

func TestOpenSaveAs(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.WAV")

	if err := os.WriteFile(in, makeWavWithUnknownChunks(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	f, err := Open(in)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if f.Path != in {
		t.Fatalf("Path=%q, want %q", f.Path, in)
	}

	if !f.Delete(ChunkID("odd!")) {
		t.Fatal("Delete(odd!) found nothing")
	}

	out := filepath.Join(dir, "out.wav")
	if err := f.SaveAs(out); err != nil {
		t.Fatalf("SaveAs: %v", err)
	}

	if f.Path != out {
		t.Fatalf("Path=%q after SaveAs", f.Path)
	}

	if err := f.Upsert(NewChunk("note", []byte("hello"))); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	if err := f.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	again, err := Open(out)
	if err != nil {
		t.Fatalf("Open(out): %v", err)
	}

	want := [][4]byte{CIDJunk, CIDFmt, CIDData, ChunkID("zero"), ChunkID("note")}
	if got := again.IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("IDs=%q, want %q", got, want)
	}
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	txt := filepath.Join(dir, "audio.txt")
	if err := os.WriteFile(txt, makeWavWithUnknownChunks(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav file"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tests := []struct {
		name string
		path string
		want Kind
	}{
		{"missing", filepath.Join(dir, "missing.wav"), ErrNotAFile},
		{"directory", dir, ErrNotAFile},
		{"extension", txt, ErrWrongExtension},
		{"content", garbage, ErrNotRIFFWave},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.path)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Open err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestSaveAsRejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wave")

	err := New().SaveAs(path)
	if !errors.Is(err, ErrWrongExtension) {
		t.Fatalf("SaveAs err=%v", err)
	}

	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("SaveAs created %s", path)
	}
}

func TestDecodeAndWriteTo(t *testing.T) {
	input := makeWavWithUnknownChunks()

	f, err := Decode(bytes.NewReader(input))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf bytes.Buffer

	n, err := f.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}

	if n != int64(len(input)) || !bytes.Equal(buf.Bytes(), input) {
		t.Fatalf("WriteTo wrote %d bytes, want identical %d", n, len(input))
	}

	_, err = Decode(strings.NewReader("RIFF"))
	if !errors.Is(err, ErrNotRIFFWave) {
		t.Fatalf("Decode short err=%v", err)
	}
}
