package wavf64

import (
	"fmt"

	"github.com/go-audio/audio"
)

// FormatID is the WAVE format tag stored in the fmt chunk.
type FormatID uint16

const (
	// FormatPCM is linear PCM.
	FormatPCM FormatID = 0x0001
	// FormatIEEEFloat is 32-bit IEEE 754 float.
	FormatIEEEFloat FormatID = 0x0003
	// FormatExtensible marks a WAVE_FORMAT_EXTENSIBLE fmt chunk. It is only
	// ever read; Format never carries it.
	FormatExtensible FormatID = 0xFFFE
)

func (id FormatID) String() string {
	switch id {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("format tag %d", uint16(id))
	}
}

var supportedSampleRates = []int{8000, 16000, 22050, 32000, 44100, 48000, 96000, 192000}

// Format describes how samples are laid out in the data chunk.
type Format struct {
	ID            FormatID
	Channels      int
	SampleRate    int
	BitsPerSample int
}

// ByteRate is the number of bytes per second of audio.
func (f Format) ByteRate() int {
	return f.Channels * f.SampleRate * (f.BitsPerSample / 8)
}

// BlockAlign is the size of one frame in bytes.
func (f Format) BlockAlign() int {
	return f.Channels * f.BitsPerSample / 8
}

// Validate checks the channel count, bit depth and sampling rate.
func (f Format) Validate() error {
	if f.Channels < 1 || f.Channels > 2 {
		return newError(ErrUnsupportedFormat, "channels")
	}

	if f.BitsPerSample < 1 || f.BitsPerSample > 64 {
		return newError(ErrUnsupportedFormat, "bits per sample")
	}

	for _, rate := range supportedSampleRates {
		if f.SampleRate == rate {
			return nil
		}
	}

	return newError(ErrUnsupportedFormat, "sampling rate")
}

// AudioFormat returns the go-audio description of f.
func (f Format) AudioFormat() *audio.Format {
	return &audio.Format{
		NumChannels: f.Channels,
		SampleRate:  f.SampleRate,
	}
}

func (f Format) String() string {
	return fmt.Sprintf("%s, %d channel(s) @ %d Hz / %d bits", f.ID, f.Channels, f.SampleRate, f.BitsPerSample)
}
