package wavf64

import "errors"

// Kind classifies every error returned by this package. A Kind is itself an
// error so callers can match with errors.Is(err, wavf64.ErrChunkSize).
type Kind uint8

const (
	// ErrNotAFile is returned when a path does not point to a regular file.
	ErrNotAFile Kind = iota
	// ErrWrongExtension is returned when a path does not end in ".wav".
	ErrWrongExtension
	// ErrNotRIFFWave is returned when the RIFF/WAVE header is missing or inconsistent.
	ErrNotRIFFWave
	// ErrChunkSize is returned when a declared length disagrees with the buffer
	// or with values derived from the fmt chunk.
	ErrChunkSize
	// ErrChunkSizeTooLarge is returned when the RIFF size field would overflow 32 bits.
	ErrChunkSizeTooLarge
	// ErrChunkDuplication is returned when more than one fmt or data chunk exists.
	ErrChunkDuplication
	// ErrMissingChunk is returned when the fmt or data chunk is absent.
	ErrMissingChunk
	// ErrUnsupportedFormat is returned for a bad format id, channel count,
	// bit depth or sampling rate.
	ErrUnsupportedFormat
	// ErrByteLength is returned when a sample byte group has an unexpected width.
	ErrByteLength
	// ErrMatrixLength is returned when matrix rows have inconsistent lengths.
	ErrMatrixLength

	numKinds
)

var kindMessages = [...]string{
	ErrNotAFile:          "specified path is not a file",
	ErrWrongExtension:    `specified path extension is not ".wav"`,
	ErrNotRIFFWave:       "specified data is not a compatible RIFF/WAVE stream",
	ErrChunkSize:         "chunk size is wrong",
	ErrChunkSizeTooLarge: "chunk size is too large for a RIFF file",
	ErrChunkDuplication:  "chunk is duplicated",
	ErrMissingChunk:      "required chunk is missing",
	ErrUnsupportedFormat: "wave format is not supported",
	ErrByteLength:        "byte length is wrong",
	ErrMatrixLength:      "sample matrix length is wrong",
}

// Both array lengths go negative unless every Kind has a message.
var (
	_ [len(kindMessages) - int(numKinds)]struct{}
	_ [int(numKinds) - len(kindMessages)]struct{}
)

func (k Kind) Error() string {
	if int(k) >= len(kindMessages) {
		return "unknown wavf64 error"
	}

	return kindMessages[k]
}

// Error is a Kind with an optional qualifier naming the offending field or chunk.
type Error struct {
	Kind   Kind
	Detail string
}

func newError(kind Kind, detail string) *Error {
	return &Error{Kind: kind, Detail: detail}
}

func (e *Error) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}

	return e.Kind.Error() + " : " + e.Detail
}

// Unwrap exposes the Kind for errors.Is.
func (e *Error) Unwrap() error {
	return e.Kind
}

// KindOf reports the Kind carried by err, if any.
func KindOf(err error) (Kind, bool) {
	var k Kind
	if errors.As(err, &k) {
		return k, true
	}

	return 0, false
}

// DetailOf returns the qualifier attached to err, or "" when there is none.
func DetailOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Detail
	}

	return ""
}
