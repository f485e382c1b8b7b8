package main

import (
	"flag"
	"log"
	"math"
	"os"

	"github.com/cwbudde/wavf64"
)

func main() {
	err := run(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	flagSet := flag.NewFlagSet("gen-sine", flag.ContinueOnError)

	output := flagSet.String("output", "output.wav", "filename to write to")
	frequency := flagSet.Float64("frequency", 440, "frequency in hertz to generate")
	length := flagSet.Float64("length", 5, "length in seconds of output file")
	sampleRate := flagSet.Int("rate", 48000, "sampling rate in hertz")
	bitDepth := flagSet.Int("bits", 16, "PCM bit depth (8, 16, 24 or 32), or 32 with -float")
	useFloat := flagSet.Bool("float", false, "write 32-bit IEEE float samples")

	err := flagSet.Parse(args)
	if err != nil {
		return err
	}

	log.Printf("generating a %f sec sine wav at %f hz", *length, *frequency)

	format := wavf64.Format{
		ID:            wavf64.FormatPCM,
		Channels:      1,
		SampleRate:    *sampleRate,
		BitsPerSample: *bitDepth,
	}
	if *useFloat {
		format.ID = wavf64.FormatIEEEFloat
		format.BitsPerSample = 32
	}

	numSamples := int(float64(*sampleRate) * *length)
	samples := make([]float64, numSamples)

	for i := range samples {
		samples[i] = math.Sin(float64(i) / float64(*sampleRate) * *frequency * 2 * math.Pi)
	}

	f := wavf64.New()

	err = f.UpdateChannelAudio(format, [][]float64{samples})
	if err != nil {
		return err
	}

	return f.SaveAs(*output)
}
