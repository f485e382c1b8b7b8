package wavf64

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"
)

const (
	fmtChunkSize           = 16
	fmtChunkExtensibleSize = 40
	subFormatOffset        = 24
)

// KSDATAFORMAT_SUBTYPE_* in their canonical text form.
var (
	subFormatPCM       = guidBytes(uuid.MustParse("00000001-0000-0010-8000-00aa00389b71"))
	subFormatIEEEFloat = guidBytes(uuid.MustParse("00000003-0000-0010-8000-00aa00389b71"))
)

// guidBytes returns the on-disk layout of a Windows GUID: the first three
// fields little-endian, the last eight bytes as-is.
func guidBytes(id uuid.UUID) [16]byte {
	var guid [16]byte
	binary.LittleEndian.PutUint32(guid[0:4], binary.BigEndian.Uint32(id[0:4]))
	binary.LittleEndian.PutUint16(guid[4:6], binary.BigEndian.Uint16(id[4:6]))
	binary.LittleEndian.PutUint16(guid[6:8], binary.BigEndian.Uint16(id[6:8]))
	copy(guid[8:], id[8:])

	return guid
}

func subFormatGUID(id FormatID) ([16]byte, bool) {
	switch id {
	case FormatPCM:
		return subFormatPCM, true
	case FormatIEEEFloat:
		return subFormatIEEEFloat, true
	default:
		return [16]byte{}, false
	}
}

// ParseFormat decodes a fmt chunk body. WAVE_FORMAT_EXTENSIBLE bodies are
// resolved to the PCM or IEEE float id named by their SubFormat GUID. The
// stored byte rate and block align must match the values derived from the
// channel count, sampling rate and bit depth.
func ParseFormat(body []byte) (Format, error) {
	if len(body) < fmtChunkSize {
		return Format{}, newError(ErrChunkSize, "fmt ")
	}

	id := FormatID(binary.LittleEndian.Uint16(body[0:2]))

	switch id {
	case FormatPCM, FormatIEEEFloat:
	case FormatExtensible:
		if len(body) < fmtChunkExtensibleSize {
			return Format{}, newError(ErrChunkSize, "fmt ")
		}

		subFormat := body[subFormatOffset:fmtChunkExtensibleSize]
		id = FormatID(binary.LittleEndian.Uint16(subFormat[0:2]))

		guid, ok := subFormatGUID(id)
		if !ok || !bytes.Equal(subFormat, guid[:]) {
			return Format{}, newError(ErrUnsupportedFormat, "format id")
		}
	default:
		return Format{}, newError(ErrUnsupportedFormat, "format id")
	}

	f := Format{
		ID:            id,
		Channels:      int(binary.LittleEndian.Uint16(body[2:4])),
		SampleRate:    int(binary.LittleEndian.Uint32(body[4:8])),
		BitsPerSample: int(binary.LittleEndian.Uint16(body[14:16])),
	}

	byteRate := int(binary.LittleEndian.Uint32(body[8:12]))
	if byteRate != f.ByteRate() {
		return Format{}, newError(ErrChunkSize, "byte rate")
	}

	blockAlign := int(binary.LittleEndian.Uint16(body[12:14]))
	if blockAlign != f.BlockAlign() {
		return Format{}, newError(ErrChunkSize, "block align")
	}

	return f, nil
}

// fmtChunkBody returns the canonical 16 byte, non-extensible body for f.
func (f Format) fmtChunkBody() []byte {
	body := make([]byte, 0, fmtChunkSize)
	body = binary.LittleEndian.AppendUint16(body, uint16(f.ID))
	body = binary.LittleEndian.AppendUint16(body, uint16(f.Channels))
	body = binary.LittleEndian.AppendUint32(body, uint32(f.SampleRate))
	body = binary.LittleEndian.AppendUint32(body, uint32(f.ByteRate()))
	body = binary.LittleEndian.AppendUint16(body, uint16(f.BlockAlign()))
	body = binary.LittleEndian.AppendUint16(body, uint16(f.BitsPerSample))

	return body
}

// MarshalBinary implements encoding.BinaryMarshaler with the fmt chunk body.
func (f Format) MarshalBinary() ([]byte, error) {
	return f.fmtChunkBody(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, see ParseFormat.
func (f *Format) UnmarshalBinary(body []byte) error {
	parsed, err := ParseFormat(body)
	if err != nil {
		return err
	}

	*f = parsed

	return nil
}
