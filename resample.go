package wavf64

// Resample converts m from srcRate to dstRate by linear interpolation. Each
// channel is resampled over its own time axis, whatever the orientation.
//
// The output has ceil(n*dstRate/srcRate) frames. Output frame i reads the
// source at i*srcRate/dstRate, computed as an integer quotient and remainder
// so positions that land exactly on a source frame copy it unchanged.
// Positions past the last source frame hold its value.
func Resample(m [][]float64, srcRate, dstRate int, o Orientation) ([][]float64, error) {
	switch o {
	case ChannelMajor:
		return ResampleChannels(m, srcRate, dstRate)
	case FrameMajor:
		return ResampleFrames(m, srcRate, dstRate)
	default:
		return nil, newError(ErrMatrixLength, o.String())
	}
}

// ResampleChannels resamples a [channel][frame] matrix.
func ResampleChannels(m [][]float64, srcRate, dstRate int) ([][]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, newError(ErrUnsupportedFormat, "sampling rate")
	}

	for _, row := range m {
		if len(row) != len(m[0]) {
			return nil, newError(ErrMatrixLength, "frames")
		}
	}

	out := make([][]float64, len(m))
	for ch, row := range m {
		out[ch] = resampleRow(row, int64(srcRate), int64(dstRate))
	}

	return out, nil
}

// ResampleFrames resamples a [frame][channel] matrix.
func ResampleFrames(m [][]float64, srcRate, dstRate int) ([][]float64, error) {
	if srcRate <= 0 || dstRate <= 0 {
		return nil, newError(ErrUnsupportedFormat, "sampling rate")
	}

	for _, frame := range m {
		if len(frame) != len(m[0]) {
			return nil, newError(ErrMatrixLength, "channels")
		}
	}

	channels, err := ResampleChannels(transpose(m), srcRate, dstRate)
	if err != nil {
		return nil, err
	}

	return transpose(channels), nil
}

func resampleRow(src []float64, srcRate, dstRate int64) []float64 {
	n := int64(len(src))
	if n == 0 {
		return []float64{}
	}

	if srcRate == dstRate {
		return append([]float64(nil), src...)
	}

	outLen := (n*dstRate + srcRate - 1) / srcRate
	out := make([]float64, outLen)

	for i := range out {
		pos := int64(i) * srcRate
		k, rem := pos/dstRate, pos%dstRate

		switch {
		case k >= n-1:
			out[i] = src[n-1]
		case rem == 0:
			out[i] = src[k]
		default:
			frac := float64(rem) / float64(dstRate)
			out[i] = src[k]*(1-frac) + src[k+1]*frac
		}
	}

	return out
}

// ResampleAudio rewrites the audio of f at dstRate, keeping the format's id,
// channel count and bit depth.
func (f *File) ResampleAudio(dstRate int) error {
	format, m, err := f.ChannelAudio()
	if err != nil {
		return err
	}

	resampled, err := ResampleChannels(m, format.SampleRate, dstRate)
	if err != nil {
		return err
	}

	format.SampleRate = dstRate

	return f.UpdateChannelAudio(format, resampled)
}
