package wavf64

import (
	"bytes"
	"encoding/binary"
)

var (
	// CIDInfo is the list type of a LIST chunk holding INFO entries.
	CIDInfo = [4]byte{'I', 'N', 'F', 'O'}

	// See http://bwfmetaedit.sourceforge.net/listinfo.html
	markerIART    = [4]byte{'I', 'A', 'R', 'T'}
	markerISFT    = [4]byte{'I', 'S', 'F', 'T'}
	markerICRD    = [4]byte{'I', 'C', 'R', 'D'}
	markerICOP    = [4]byte{'I', 'C', 'O', 'P'}
	markerIARL    = [4]byte{'I', 'A', 'R', 'L'}
	markerINAM    = [4]byte{'I', 'N', 'A', 'M'}
	markerIENG    = [4]byte{'I', 'E', 'N', 'G'}
	markerIGNR    = [4]byte{'I', 'G', 'N', 'R'}
	markerIPRD    = [4]byte{'I', 'P', 'R', 'D'}
	markerISRC    = [4]byte{'I', 'S', 'R', 'C'}
	markerISBJ    = [4]byte{'I', 'S', 'B', 'J'}
	markerICMT    = [4]byte{'I', 'C', 'M', 'T'}
	markerITRK    = [4]byte{'I', 'T', 'R', 'K'}
	markerITRKBug = [4]byte{'i', 't', 'r', 'k'}
	markerITCH    = [4]byte{'I', 'T', 'C', 'H'}
	markerIKEY    = [4]byte{'I', 'K', 'E', 'Y'}
	markerIMED    = [4]byte{'I', 'M', 'E', 'D'}
)

// Info holds the text entries of a LIST/INFO chunk.
type Info struct {
	Artist       string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Title        string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string
}

func (info *Info) fields() []struct {
	marker [4]byte
	value  *string
} {
	return []struct {
		marker [4]byte
		value  *string
	}{
		{markerIART, &info.Artist},
		{markerICMT, &info.Comments},
		{markerICOP, &info.Copyright},
		{markerICRD, &info.CreationDate},
		{markerIENG, &info.Engineer},
		{markerITCH, &info.Technician},
		{markerIGNR, &info.Genre},
		{markerIKEY, &info.Keywords},
		{markerIMED, &info.Medium},
		{markerINAM, &info.Title},
		{markerIPRD, &info.Product},
		{markerISBJ, &info.Subject},
		{markerISFT, &info.Software},
		{markerISRC, &info.Source},
		{markerIARL, &info.Location},
		{markerITRK, &info.TrackNbr},
	}
}

// infoIndex returns the position of the first LIST chunk of type INFO.
func (f *File) infoIndex() (int, bool) {
	for i := range f.chunks {
		c := &f.chunks[i]
		if c.ID == CIDList && len(c.Data) >= 4 && bytes.Equal(c.Data[:4], CIDInfo[:]) {
			return i, true
		}
	}

	return -1, false
}

// Info decodes the first LIST/INFO chunk, or returns nil when there is none.
// Unknown entries are skipped.
func (f *File) Info() (*Info, error) {
	idx, ok := f.infoIndex()
	if !ok {
		return nil, nil
	}

	return decodeInfo(f.chunks[idx].Data[4:])
}

func decodeInfo(body []byte) (*Info, error) {
	info := &Info{}

	markers := map[[4]byte]*string{markerITRKBug: &info.TrackNbr}
	for _, field := range info.fields() {
		markers[field.marker] = field.value
	}

	for len(body) >= chunkHeaderSize {
		var id [4]byte
		copy(id[:], body[:4])

		size := uint64(binary.LittleEndian.Uint32(body[4:8]))
		body = body[chunkHeaderSize:]

		if size > uint64(len(body)) {
			return nil, newError(ErrChunkSize, "LIST")
		}

		if value, ok := markers[id]; ok {
			*value = nullTermStr(body[:size])
		}

		body = body[size:]

		// entries are word aligned, but some writers drop the pad byte
		if size%2 == 1 && len(body) > 0 && !startsWithMarker(body, markers) {
			body = body[1:]
		}
	}

	return info, nil
}

func startsWithMarker(b []byte, markers map[[4]byte]*string) bool {
	if len(b) < 4 {
		return false
	}

	var id [4]byte
	copy(id[:], b[:4])
	_, ok := markers[id]

	return ok
}

// SetInfo replaces the first LIST/INFO chunk, or appends one, with the non
// empty entries of info. A nil info removes the chunk.
func (f *File) SetInfo(info *Info) error {
	idx, found := f.infoIndex()

	if info == nil {
		if found {
			f.chunks = append(f.chunks[:idx], f.chunks[idx+1:]...)
		}

		return nil
	}

	body := encodeInfo(info)

	lens := setBodyLen(f.bodyLens(), idx, len(body))
	if _, ok := riffFileSize(lens); !ok {
		return newError(ErrChunkSizeTooLarge, string(CIDList[:]))
	}

	f.chunks = setChunkBody(f.chunks, idx, CIDList, body)

	return nil
}

func encodeInfo(info *Info) []byte {
	buf := bytes.NewBuffer(nil)
	buf.Write(CIDInfo[:])

	for _, field := range info.fields() {
		val := *field.value
		if val == "" {
			continue
		}

		size := len(val) + 1

		buf.Write(field.marker[:])
		_ = binary.Write(buf, binary.LittleEndian, uint32(size))
		buf.WriteString(val)
		buf.WriteByte(0x00)

		if size%2 == 1 {
			buf.WriteByte(0x00)
		}
	}

	return buf.Bytes()
}

func nullTermStr(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}

	return string(b)
}
