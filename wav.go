package wavf64

import "time"

// Duration is the play time of the data chunk, derived from its size and the
// fmt chunk without decoding samples.
func (f *File) Duration() (time.Duration, error) {
	fmtIdx, dataIdx, err := f.audioChunks()
	if err != nil {
		return 0, err
	}

	if fmtIdx < 0 {
		return 0, newError(ErrMissingChunk, "fmt ")
	}

	if dataIdx < 0 {
		return 0, newError(ErrMissingChunk, "data")
	}

	format, err := ParseFormat(f.chunks[fmtIdx].Data)
	if err != nil {
		return 0, err
	}

	if format.BlockAlign() == 0 || format.SampleRate == 0 {
		return 0, nil
	}

	frames := len(f.chunks[dataIdx].Data) / format.BlockAlign()

	return samplesDuration(frames, format.SampleRate), nil
}

func samplesDuration(frames, sampleRate int) time.Duration {
	return time.Duration(int64(frames) * int64(time.Second) / int64(sampleRate))
}
