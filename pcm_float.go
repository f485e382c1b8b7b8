package wavf64

import (
	"encoding/binary"
	"math"

	"github.com/go-audio/audio"
)

const (
	maxPCMInt8  = 127
	maxPCMInt16 = 32767
	maxPCMInt24 = 8388607
	maxPCMInt32 = 2147483647

	pcm8Offset = 0x80
)

// DecodeSample converts one little-endian sample to a float64. PCM values are
// divided by the positive maximum of their width, so the most negative code
// decodes slightly below -1.
func DecodeSample(id FormatID, b []byte) (float64, error) {
	switch id {
	case FormatPCM:
		switch len(b) {
		case 1:
			// 8bit values are unsigned
			return float64(int8(b[0]^pcm8Offset)) / maxPCMInt8, nil
		case 2:
			return float64(int16(binary.LittleEndian.Uint16(b))) / maxPCMInt16, nil
		case 3:
			return float64(audio.Int24LETo32(b)) / maxPCMInt24, nil
		case 4:
			return float64(int32(binary.LittleEndian.Uint32(b))) / maxPCMInt32, nil
		default:
			return 0, newError(ErrByteLength, "")
		}
	case FormatIEEEFloat:
		if len(b) != 4 {
			return 0, newError(ErrByteLength, "")
		}

		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b))), nil
	default:
		return 0, newError(ErrUnsupportedFormat, "format id")
	}
}

// EncodeSample converts value to its little-endian representation using
// bitsPerSample/8 bytes.
func EncodeSample(id FormatID, value float64, bitsPerSample int) ([]byte, error) {
	return AppendSample(nil, id, value, bitsPerSample)
}

// AppendSample appends the encoded form of value to dst.
//
// PCM values outside [-1, 1] are clamped to the symmetric range [-MAX, MAX];
// in range values are scaled by MAX and rounded half away from zero. NaN
// encodes as silence.
func AppendSample(dst []byte, id FormatID, value float64, bitsPerSample int) ([]byte, error) {
	size := bitsPerSample / 8

	switch id {
	case FormatPCM:
		switch size {
		case 1:
			v := int8(scalePCM(value, maxPCMInt8))
			return append(dst, uint8(v)^pcm8Offset), nil
		case 2:
			return binary.LittleEndian.AppendUint16(dst, uint16(int16(scalePCM(value, maxPCMInt16)))), nil
		case 3:
			return append(dst, audio.Int32toInt24LEBytes(int32(scalePCM(value, maxPCMInt24)))...), nil
		case 4:
			return binary.LittleEndian.AppendUint32(dst, uint32(int32(scalePCM(value, maxPCMInt32)))), nil
		default:
			return dst, newError(ErrByteLength, "")
		}
	case FormatIEEEFloat:
		if size != 4 {
			return dst, newError(ErrByteLength, "")
		}

		f := float32(clampFloat64(value, -math.MaxFloat32, math.MaxFloat32))

		return binary.LittleEndian.AppendUint32(dst, math.Float32bits(f)), nil
	default:
		return dst, newError(ErrUnsupportedFormat, "format id")
	}
}

func scalePCM(value float64, maxValue int64) int64 {
	switch {
	case math.IsNaN(value):
		return 0
	case value < -1:
		return -maxValue
	case value > 1:
		return maxValue
	default:
		return int64(math.Round(value * float64(maxValue)))
	}
}

func clampFloat64(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
