// Package wavf64 reads and writes RIFF/WAVE files as an ordered list of raw
// chunks and converts their audio to and from float64 sample matrices.
//
// Linear PCM (8/16/24/32-bit) and 32-bit IEEE float are supported, including
// WAVE_FORMAT_EXTENSIBLE fmt chunks on read. Chunks the package does not
// understand are kept byte for byte and written back in their original order.
//
// A typical edit loads a file, works on its samples and saves it:
//
//	f, err := wavf64.Open("in.wav")
//	format, m, err := f.ChannelAudio()
//	m, err = wavf64.ResampleChannels(m, format.SampleRate, 48000)
//	format.SampleRate = 48000
//	err = f.UpdateChannelAudio(format, m)
//	err = f.SaveAs("out.wav")
//
// Matrices come in two orientations, ChannelMajor ([channel][frame]) and
// FrameMajor ([frame][channel]). Both encode to the same bytes.
//
// Every mutation is checked against the 32-bit RIFF size limit first and
// leaves the file unchanged when it fails. Errors carry a Kind that can be
// matched with errors.Is.
package wavf64
