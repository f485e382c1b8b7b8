package wavf64

import (
	"errors"
	"reflect"
	"testing"
)

func TestResampleRow(t *testing.T) {
	tests := []struct {
		name     string
		src      []float64
		from, to int64
		want     []float64
	}{
		{"halve picks even samples", []float64{0, 1, 0, -1, 0}, 32000, 16000, []float64{0, 0, 0}},
		{"halve even length", []float64{0, 1, 2, 3}, 16000, 8000, []float64{0, 2}},
		{"double interpolates", []float64{0, 1, 0, -1}, 8000, 16000, []float64{0, 0.5, 1, 0.5, 0, -0.5, -1, -1}},
		{"same rate copies", []float64{0.25, -0.25}, 44100, 44100, []float64{0.25, -0.25}},
		{"single sample", []float64{0.5}, 8000, 48000, []float64{0.5, 0.5, 0.5, 0.5, 0.5, 0.5}},
		{"empty", []float64{}, 8000, 16000, []float64{}},
		{"ceil length", []float64{1, 1, 1}, 48000, 32000, []float64{1, 1}},
		{"quarter steps", []float64{0, 1}, 8000, 32000, []float64{0, 0.25, 0.5, 0.75, 1, 1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resampleRow(tt.src, tt.from, tt.to)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("resampleRow=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestResampleCopiesInput(t *testing.T) {
	src := [][]float64{{1, 2}}

	out, err := ResampleChannels(src, 8000, 8000)
	if err != nil {
		t.Fatalf("ResampleChannels: %v", err)
	}

	out[0][0] = 9
	if src[0][0] != 1 {
		t.Fatal("equal rates returned the input slice")
	}
}

func TestResampleOrientations(t *testing.T) {
	channels := [][]float64{{0, 1, 0, -1, 0}, {0, -1, 0, 1, 0}}

	byChannel, err := Resample(channels, 32000, 16000, ChannelMajor)
	if err != nil {
		t.Fatalf("Resample channel-major: %v", err)
	}

	byFrame, err := Resample(transpose(channels), 32000, 16000, FrameMajor)
	if err != nil {
		t.Fatalf("Resample frame-major: %v", err)
	}

	if !reflect.DeepEqual(transpose(byFrame), byChannel) {
		t.Fatalf("frame-major %v does not match channel-major %v", byFrame, byChannel)
	}

	up, err := ResampleFrames([][]float64{{0, 1}, {1, 0}}, 8000, 16000)
	if err != nil {
		t.Fatalf("ResampleFrames: %v", err)
	}

	want := [][]float64{{0, 1}, {0.5, 0.5}, {1, 0}, {1, 0}}
	if !reflect.DeepEqual(up, want) {
		t.Fatalf("ResampleFrames=%v, want %v", up, want)
	}
}

func TestResampleErrors(t *testing.T) {
	tests := []struct {
		name     string
		m        [][]float64
		from, to int
		o        Orientation
		want     Kind
	}{
		{"zero source rate", [][]float64{{0}}, 0, 8000, ChannelMajor, ErrUnsupportedFormat},
		{"negative target rate", [][]float64{{0}}, 8000, -1, FrameMajor, ErrUnsupportedFormat},
		{"ragged channels", [][]float64{{0, 1}, {0}}, 8000, 16000, ChannelMajor, ErrMatrixLength},
		{"ragged frames", [][]float64{{0, 1}, {0}}, 8000, 16000, FrameMajor, ErrMatrixLength},
		{"bad orientation", [][]float64{{0}}, 8000, 16000, Orientation(-1), ErrMatrixLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resample(tt.m, tt.from, tt.to, tt.o)
			if !errors.Is(err, tt.want) {
				t.Fatalf("err=%v, want %v", err, tt.want)
			}
		})
	}
}

func TestFileResampleAudio(t *testing.T) {
	f := New()

	format := Format{ID: FormatIEEEFloat, Channels: 1, SampleRate: 8000, BitsPerSample: 32}
	if err := f.UpdateChannelAudio(format, [][]float64{{0, 1, 0, -1}}); err != nil {
		t.Fatalf("UpdateChannelAudio: %v", err)
	}

	if err := f.ResampleAudio(16000); err != nil {
		t.Fatalf("ResampleAudio: %v", err)
	}

	got, m, err := f.ChannelAudio()
	if err != nil {
		t.Fatalf("ChannelAudio: %v", err)
	}

	if got.SampleRate != 16000 {
		t.Fatalf("SampleRate=%d", got.SampleRate)
	}

	want := [][]float64{{0, 0.5, 1, 0.5, 0, -0.5, -1, -1}}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("samples=%v, want %v", m, want)
	}

	if err := f.ResampleAudio(12345); !errors.Is(err, ErrUnsupportedFormat) {
		t.Fatalf("ResampleAudio(12345) err=%v", err)
	}

	if again, _ := f.Format(); again.SampleRate != 16000 {
		t.Fatalf("failed resample changed the format: %v", again)
	}
}
