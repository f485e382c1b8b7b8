// This tool converts a wav file into an aiff file and stores it in the same
// folder as the source.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/cwbudde/wavf64"
	"github.com/go-audio/aiff"
)

var errMissingPath = errors.New("you must set the -path flag")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) (err error) {
	flagSet := flag.NewFlagSet("wavtoaiff", flag.ContinueOnError)

	path := flagSet.String("path", "", "The path to the wav file to convert to aiff")
	bitDepth := flagSet.Int("bits", 0, "Bit depth of the aiff file, defaults to the source depth")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *path == "" {
		return errMissingPath
	}

	sourcePath, err := expandHome(*path)
	if err != nil {
		return err
	}

	f, err := wavf64.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("invalid WAV file %s: %w", sourcePath, err)
	}

	format, m, err := f.ChannelAudio()
	if err != nil {
		return err
	}

	if *bitDepth != 0 {
		format.BitsPerSample = *bitDepth
	}

	intBuf, err := wavf64.IntBuffer(format, m)
	if err != nil {
		return err
	}

	outPath := strings.TrimSuffix(sourcePath, filepath.Ext(sourcePath)) + ".aif"

	outFile, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outPath, err)
	}

	defer func() {
		cerr := outFile.Close()
		if cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", outPath, cerr)
		}
	}()

	encoder := aiff.NewEncoder(outFile, format.SampleRate, format.BitsPerSample, format.Channels)

	if err := encoder.Write(intBuf); err != nil {
		return fmt.Errorf("failed to write audio buffer: %w", err)
	}

	if err := encoder.Close(); err != nil {
		return fmt.Errorf("failed to finish %s: %w", outPath, err)
	}

	fmt.Fprintf(out, "Wav file converted to %s\n", outPath)

	return nil
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	usr, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("failed to get the user home directory: %w", err)
	}

	return filepath.Join(usr.HomeDir, path[2:]), nil
}
