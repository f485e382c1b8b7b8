// This tool prints the format, chunk layout and LIST/INFO metadata of the
// passed wav file.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/cwbudde/wavf64"
)

const missingPathMessage = "You must pass the path of the file to inspect"

func main() {
	err := run(os.Args[1:], os.Stdout)
	if err == nil {
		return
	}

	if errors.Is(err, errMissingPath) {
		fmt.Println(missingPathMessage)
		os.Exit(1)
	}

	log.Fatal(err)
}

var errMissingPath = errors.New("missing path argument")

func run(args []string, out io.Writer) error {
	if len(args) < 1 {
		return errMissingPath
	}

	f, err := wavf64.Open(args[0])
	if err != nil {
		return err
	}

	format, err := f.Format()
	if err != nil {
		return err
	}

	if format == nil {
		fmt.Fprintln(out, "Format: none")
	} else {
		fmt.Fprintf(out, "Format: %s\n", format)
	}

	if dur, err := f.Duration(); err == nil {
		fmt.Fprintf(out, "Duration: %s\n", dur)
	}

	fmt.Fprintln(out, "Chunks:")

	for i, c := range f.Chunks() {
		fmt.Fprintf(out, "\t[%d] %q %d bytes\n", i, string(c.ID[:]), c.Size())
	}

	info, err := f.Info()
	if err != nil {
		return err
	}

	if info == nil {
		fmt.Fprintln(out, "No metadata present")
		return nil
	}

	fmt.Fprintf(out, "Artist: %s\n", info.Artist)
	fmt.Fprintf(out, "Title: %s\n", info.Title)
	fmt.Fprintf(out, "Comments: %s\n", info.Comments)
	fmt.Fprintf(out, "Copyright: %s\n", info.Copyright)
	fmt.Fprintf(out, "CreationDate: %s\n", info.CreationDate)
	fmt.Fprintf(out, "Engineer: %s\n", info.Engineer)
	fmt.Fprintf(out, "Technician: %s\n", info.Technician)
	fmt.Fprintf(out, "Genre: %s\n", info.Genre)
	fmt.Fprintf(out, "Keywords: %s\n", info.Keywords)
	fmt.Fprintf(out, "Medium: %s\n", info.Medium)
	fmt.Fprintf(out, "Product: %s\n", info.Product)
	fmt.Fprintf(out, "Subject: %s\n", info.Subject)
	fmt.Fprintf(out, "Software: %s\n", info.Software)
	fmt.Fprintf(out, "Source: %s\n", info.Source)
	fmt.Fprintf(out, "Location: %s\n", info.Location)
	fmt.Fprintf(out, "TrackNbr: %s\n", info.TrackNbr)

	return nil
}
