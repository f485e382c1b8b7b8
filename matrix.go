package wavf64

import "fmt"

// Orientation selects how a sample matrix is indexed.
type Orientation int

const (
	// ChannelMajor matrices are indexed [channel][frame].
	ChannelMajor Orientation = iota
	// FrameMajor matrices are indexed [frame][channel].
	FrameMajor
)

func (o Orientation) String() string {
	switch o {
	case ChannelMajor:
		return "channel-major"
	case FrameMajor:
		return "frame-major"
	default:
		return fmt.Sprintf("orientation %d", int(o))
	}
}

// frameLayout validates f and returns its sample and frame sizes in bytes.
func frameLayout(f Format) (sampleSize, frameSize int, err error) {
	if err := f.Validate(); err != nil {
		return 0, 0, err
	}

	sampleSize = f.BitsPerSample / 8
	if sampleSize == 0 {
		return 0, 0, newError(ErrByteLength, "data")
	}

	return sampleSize, sampleSize * f.Channels, nil
}

// BytesToChannels decodes a data chunk body into one row per channel.
func BytesToChannels(f Format, data []byte) ([][]float64, error) {
	sampleSize, frameSize, err := frameLayout(f)
	if err != nil {
		return nil, err
	}

	if len(data)%frameSize != 0 {
		return nil, newError(ErrByteLength, "data")
	}

	frames := len(data) / frameSize

	m := make([][]float64, f.Channels)
	for ch := range m {
		m[ch] = make([]float64, 0, frames)
	}

	for offset := 0; offset < len(data); offset += frameSize {
		for ch := 0; ch < f.Channels; ch++ {
			start := offset + ch*sampleSize

			v, err := DecodeSample(f.ID, data[start:start+sampleSize])
			if err != nil {
				return nil, err
			}

			m[ch] = append(m[ch], v)
		}
	}

	return m, nil
}

// BytesToFrames decodes a data chunk body into one row per frame.
func BytesToFrames(f Format, data []byte) ([][]float64, error) {
	sampleSize, frameSize, err := frameLayout(f)
	if err != nil {
		return nil, err
	}

	if len(data)%frameSize != 0 {
		return nil, newError(ErrByteLength, "data")
	}

	m := make([][]float64, 0, len(data)/frameSize)

	for offset := 0; offset < len(data); offset += frameSize {
		frame := make([]float64, f.Channels)

		for ch := range frame {
			start := offset + ch*sampleSize

			v, err := DecodeSample(f.ID, data[start:start+sampleSize])
			if err != nil {
				return nil, err
			}

			frame[ch] = v
		}

		m = append(m, frame)
	}

	return m, nil
}

// ChannelsToBytes encodes a channel-major matrix as a data chunk body. The
// matrix must have exactly f.Channels rows of equal length.
func ChannelsToBytes(f Format, m [][]float64) ([]byte, error) {
	_, frameSize, err := frameLayout(f)
	if err != nil {
		return nil, err
	}

	if len(m) != f.Channels {
		return nil, newError(ErrMatrixLength, "channels")
	}

	frames := len(m[0])
	for _, row := range m[1:] {
		if len(row) != frames {
			return nil, newError(ErrMatrixLength, "frames")
		}
	}

	out := make([]byte, 0, frames*frameSize)

	for i := 0; i < frames; i++ {
		for ch := range m {
			out, err = AppendSample(out, f.ID, m[ch][i], f.BitsPerSample)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// FramesToBytes encodes a frame-major matrix as a data chunk body. Every row
// must hold exactly f.Channels values.
func FramesToBytes(f Format, m [][]float64) ([]byte, error) {
	_, frameSize, err := frameLayout(f)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(m)*frameSize)

	for _, frame := range m {
		if len(frame) != f.Channels {
			return nil, newError(ErrMatrixLength, "channels")
		}

		for _, v := range frame {
			out, err = AppendSample(out, f.ID, v, f.BitsPerSample)
			if err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// DecodeMatrix decodes data in the requested orientation.
func DecodeMatrix(f Format, data []byte, o Orientation) ([][]float64, error) {
	switch o {
	case ChannelMajor:
		return BytesToChannels(f, data)
	case FrameMajor:
		return BytesToFrames(f, data)
	default:
		return nil, newError(ErrMatrixLength, o.String())
	}
}

// EncodeMatrix encodes m, given in orientation o, as a data chunk body.
func EncodeMatrix(f Format, m [][]float64, o Orientation) ([]byte, error) {
	switch o {
	case ChannelMajor:
		return ChannelsToBytes(f, m)
	case FrameMajor:
		return FramesToBytes(f, m)
	default:
		return nil, newError(ErrMatrixLength, o.String())
	}
}

// transpose swaps the orientation of a rectangular matrix.
func transpose(m [][]float64) [][]float64 {
	if len(m) == 0 {
		return nil
	}

	out := make([][]float64, len(m[0]))
	for i := range out {
		out[i] = make([]float64, len(m))
		for j := range m {
			out[i][j] = m[j][i]
		}
	}

	return out
}
