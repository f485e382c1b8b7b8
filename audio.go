package wavf64

// Format returns the format stored in the first fmt chunk, or nil when the
// file has none.
func (f *File) Format() (*Format, error) {
	c, ok := f.Chunk(CIDFmt)
	if !ok {
		return nil, nil
	}

	format, err := ParseFormat(c.Data)
	if err != nil {
		return nil, err
	}

	return &format, nil
}

// audioChunks returns the positions of the single fmt and data chunks, -1 for
// a missing one. More than one of either is an error.
func (f *File) audioChunks() (fmtIdx, dataIdx int, err error) {
	fmtIdx, dataIdx = -1, -1

	for i := range f.chunks {
		switch f.chunks[i].ID {
		case CIDFmt:
			if fmtIdx >= 0 {
				return -1, -1, newError(ErrChunkDuplication, "fmt ")
			}

			fmtIdx = i
		case CIDData:
			if dataIdx >= 0 {
				return -1, -1, newError(ErrChunkDuplication, "data")
			}

			dataIdx = i
		}
	}

	return fmtIdx, dataIdx, nil
}

// Audio decodes the data chunk in the requested orientation.
func (f *File) Audio(o Orientation) (Format, [][]float64, error) {
	fmtIdx, dataIdx, err := f.audioChunks()
	if err != nil {
		return Format{}, nil, err
	}

	if fmtIdx < 0 {
		return Format{}, nil, newError(ErrMissingChunk, "fmt ")
	}

	if dataIdx < 0 {
		return Format{}, nil, newError(ErrMissingChunk, "data")
	}

	format, err := ParseFormat(f.chunks[fmtIdx].Data)
	if err != nil {
		return Format{}, nil, err
	}

	m, err := DecodeMatrix(format, f.chunks[dataIdx].Data, o)
	if err != nil {
		return Format{}, nil, err
	}

	return format, m, nil
}

// ChannelAudio returns the samples indexed [channel][frame].
func (f *File) ChannelAudio() (Format, [][]float64, error) {
	return f.Audio(ChannelMajor)
}

// FrameAudio returns the samples indexed [frame][channel].
func (f *File) FrameAudio() (Format, [][]float64, error) {
	return f.Audio(FrameMajor)
}

// UpdateAudio replaces the fmt and data chunks with an encoding of m, adding
// them at the end when absent. The file is left untouched on error.
func (f *File) UpdateAudio(format Format, m [][]float64, o Orientation) error {
	fmtIdx, dataIdx, err := f.audioChunks()
	if err != nil {
		return err
	}

	data, err := EncodeMatrix(format, m, o)
	if err != nil {
		return err
	}

	fmtBody := format.fmtChunkBody()

	lens := f.bodyLens()
	lens = setBodyLen(lens, fmtIdx, len(fmtBody))

	if _, ok := riffFileSize(lens); !ok {
		return newError(ErrChunkSizeTooLarge, "fmt ")
	}

	lens = setBodyLen(lens, dataIdx, len(data))

	if _, ok := riffFileSize(lens); !ok {
		return newError(ErrChunkSizeTooLarge, "data")
	}

	f.chunks = setChunkBody(f.chunks, fmtIdx, CIDFmt, fmtBody)
	f.chunks = setChunkBody(f.chunks, dataIdx, CIDData, data)

	return nil
}

// UpdateChannelAudio is UpdateAudio for a [channel][frame] matrix.
func (f *File) UpdateChannelAudio(format Format, m [][]float64) error {
	return f.UpdateAudio(format, m, ChannelMajor)
}

// UpdateFrameAudio is UpdateAudio for a [frame][channel] matrix.
func (f *File) UpdateFrameAudio(format Format, m [][]float64) error {
	return f.UpdateAudio(format, m, FrameMajor)
}

func setBodyLen(lens []uint64, idx, n int) []uint64 {
	if idx < 0 {
		return append(lens, uint64(n))
	}

	lens[idx] = uint64(n)

	return lens
}

func setChunkBody(chunks []Chunk, idx int, id [4]byte, body []byte) []Chunk {
	if idx < 0 {
		return append(chunks, Chunk{ID: id, Data: body})
	}

	chunks[idx].Data = body

	return chunks
}
