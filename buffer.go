package wavf64

import "github.com/go-audio/audio"

// FloatBuffer returns the audio of f as an interleaved go-audio buffer.
func (f *File) FloatBuffer() (*audio.FloatBuffer, error) {
	format, frames, err := f.FrameAudio()
	if err != nil {
		return nil, err
	}

	data := make([]float64, 0, len(frames)*format.Channels)
	for _, frame := range frames {
		data = append(data, frame...)
	}

	return &audio.FloatBuffer{Format: format.AudioFormat(), Data: data}, nil
}

// UpdateFromFloatBuffer encodes an interleaved go-audio buffer into the fmt and
// data chunks using the given format id and bit depth.
func (f *File) UpdateFromFloatBuffer(buf *audio.FloatBuffer, id FormatID, bitsPerSample int) error {
	if buf == nil || buf.Format == nil {
		return newError(ErrUnsupportedFormat, "format")
	}

	format := Format{
		ID:            id,
		Channels:      buf.Format.NumChannels,
		SampleRate:    buf.Format.SampleRate,
		BitsPerSample: bitsPerSample,
	}

	if err := format.Validate(); err != nil {
		return err
	}

	if len(buf.Data)%format.Channels != 0 {
		return newError(ErrMatrixLength, "frames")
	}

	frames := make([][]float64, 0, len(buf.Data)/format.Channels)
	for i := 0; i < len(buf.Data); i += format.Channels {
		frames = append(frames, buf.Data[i:i+format.Channels])
	}

	return f.UpdateFrameAudio(format, frames)
}

// IntBuffer quantizes a [channel][frame] matrix to an interleaved integer
// buffer at the bit depth of format, using the same scaling and clamping as
// the PCM encoder. Only 8, 16, 24 and 32 bit depths are supported.
func IntBuffer(format Format, m [][]float64) (*audio.IntBuffer, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}

	maxValue := audio.IntMaxSignedValue(format.BitsPerSample)
	if maxValue == 0 {
		return nil, newError(ErrByteLength, "bits per sample")
	}

	if len(m) != format.Channels {
		return nil, newError(ErrMatrixLength, "channels")
	}

	frames := len(m[0])
	for _, row := range m[1:] {
		if len(row) != frames {
			return nil, newError(ErrMatrixLength, "frames")
		}
	}

	data := make([]int, 0, frames*format.Channels)
	for i := 0; i < frames; i++ {
		for ch := range m {
			data = append(data, int(scalePCM(m[ch][i], int64(maxValue))))
		}
	}

	return &audio.IntBuffer{
		Format:         format.AudioFormat(),
		Data:           data,
		SourceBitDepth: format.BitsPerSample,
	}, nil
}
