// This command line tool lists and edits the chunks of wav files: it tags
// them with LIST/INFO entries, deletes chunks and injects raw chunk bodies.
// Edited files are written to a wavchunk folder next to the originals.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/cwbudde/wavf64"
)

const outputDirName = "wavchunk"

var errNothingToDo = errors.New("you need to pass -file or -dir to indicate what file or folder content to edit")

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	list        bool
	deleteIDs   stringList
	setID       string
	setFrom     string
	titleRegexp *regexp.Regexp
	info        wavf64.Info
}

type stringList []string

func (l *stringList) String() string { return fmt.Sprint(*l) }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

func run(args []string, out io.Writer) error {
	flagSet := flag.NewFlagSet("wavchunk", flag.ContinueOnError)

	fileToEdit := flagSet.String("file", "", "Path to the wave file to edit")
	dirToEdit := flagSet.String("dir", "", "Directory containing all the wav files to edit")
	titleRegexp := flagSet.String("regexp", "", `submatch regexp to use to set the title dynamically by extracting it from the filename (ignoring the extension), example: 'my_files_\d\d_(.*)'`)

	var opts options

	flagSet.BoolVar(&opts.list, "list", false, "Only print the chunk ids and sizes")
	flagSet.Var(&opts.deleteIDs, "delete", "Chunk id to delete, can be repeated")
	flagSet.StringVar(&opts.setID, "set", "", "Chunk id to replace or append, see -from")
	flagSet.StringVar(&opts.setFrom, "from", "", "File holding the raw body of the -set chunk")
	flagSet.StringVar(&opts.info.Title, "title", "", "File's title")
	flagSet.StringVar(&opts.info.Artist, "artist", "", "File's artist")
	flagSet.StringVar(&opts.info.Comments, "comments", "", "File's comments")
	flagSet.StringVar(&opts.info.Copyright, "copyright", "", "File's copyright")
	flagSet.StringVar(&opts.info.Genre, "genre", "", "File's genre")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if *fileToEdit == "" && *dirToEdit == "" {
		return errNothingToDo
	}

	if *titleRegexp != "" {
		re, err := regexp.Compile(*titleRegexp)
		if err != nil {
			return fmt.Errorf("invalid -regexp: %w", err)
		}

		opts.titleRegexp = re
	}

	if (opts.setID == "") != (opts.setFrom == "") {
		return errors.New("-set and -from must be used together")
	}

	if *fileToEdit != "" {
		if err := editFile(*fileToEdit, &opts, out); err != nil {
			return fmt.Errorf("something went wrong when editing %s: %w", *fileToEdit, err)
		}
	}

	if *dirToEdit != "" {
		entries, err := os.ReadDir(*dirToEdit)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", *dirToEdit, err)
		}

		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			path := filepath.Join(*dirToEdit, entry.Name())

			err := editFile(path, &opts, out)
			if errors.Is(err, wavf64.ErrWrongExtension) {
				continue
			}

			if err != nil {
				log.Printf("Something went wrong editing %s - %v", path, err)
			}
		}
	}

	return nil
}

func editFile(path string, opts *options, out io.Writer) error {
	f, err := wavf64.Open(path)
	if err != nil {
		return err
	}

	if opts.list {
		fmt.Fprintln(out, path)

		for _, c := range f.Chunks() {
			fmt.Fprintf(out, "\t%q %d bytes\n", string(c.ID[:]), c.Size())
		}

		return nil
	}

	for _, id := range opts.deleteIDs {
		if !f.Delete(wavf64.ChunkID(id)) {
			log.Printf("%s has no %q chunk", path, id)
		}
	}

	if opts.setID != "" {
		body, err := os.ReadFile(opts.setFrom)
		if err != nil {
			return fmt.Errorf("failed to read chunk body: %w", err)
		}

		if err := f.Upsert(wavf64.NewChunk(opts.setID, body)); err != nil {
			return err
		}
	}

	if err := tagFile(f, path, opts); err != nil {
		return err
	}

	outputDir := filepath.Join(filepath.Dir(path), outputDirName)
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
	}

	outPath := filepath.Join(outputDir, filepath.Base(path))
	if err := f.SaveAs(outPath); err != nil {
		return err
	}

	fmt.Fprintln(out, "Edited file available at", outPath)

	return nil
}

// tagFile merges the non empty tag flags into the file's LIST/INFO chunk.
func tagFile(f *wavf64.File, path string, opts *options) error {
	tags := opts.info

	if opts.titleRegexp != nil && tags.Title == "" {
		filename := filepath.Base(path)
		filename = filename[:len(filename)-len(filepath.Ext(path))]

		matches := opts.titleRegexp.FindStringSubmatch(filename)
		if len(matches) > 1 {
			tags.Title = matches[1]
		} else {
			log.Printf("No matches for title regexp %s in %s", opts.titleRegexp, filename)
		}
	}

	if tags == (wavf64.Info{}) {
		return nil
	}

	info, err := f.Info()
	if err != nil {
		return err
	}

	if info == nil {
		info = &wavf64.Info{}
	}

	mergeInfo(info, tags)

	return f.SetInfo(info)
}

func mergeInfo(dst *wavf64.Info, src wavf64.Info) {
	for _, field := range []struct {
		dst *string
		src string
	}{
		{&dst.Title, src.Title},
		{&dst.Artist, src.Artist},
		{&dst.Comments, src.Comments},
		{&dst.Copyright, src.Copyright},
		{&dst.Genre, src.Genre},
	} {
		if field.src != "" {
			*field.dst = field.src
		}
	}
}
