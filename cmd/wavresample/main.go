// This tool resamples a wav file to another sampling rate using linear
// interpolation. All other chunks are kept as they are.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavf64"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavresample", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to resample")
	output := flagSet.String("output", "", "The path of the resampled file, defaults to <name>_<rate>.wav next to the source")
	rate := flagSet.Int("rate", 48000, "The target sampling rate in hertz")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	f, err := wavf64.Open(*path)
	if err != nil {
		return err
	}

	format, err := f.Format()
	if err != nil {
		return err
	}

	if format != nil {
		log.Printf("resampling %s from %d hz to %d hz", *path, format.SampleRate, *rate)
	}

	if err := f.ResampleAudio(*rate); err != nil {
		return fmt.Errorf("failed to resample %s: %w", *path, err)
	}

	outPath := *output
	if outPath == "" {
		base := strings.TrimSuffix(*path, filepath.Ext(*path))
		outPath = fmt.Sprintf("%s_%d.wav", base, *rate)
	}

	if err := f.SaveAs(outPath); err != nil {
		return err
	}

	fmt.Fprintf(out, "Wav file resampled to %s\n", outPath)

	return nil
}
