package dvmem

import (
	"errors"
	"fmt"

	"dynvar.org/dynvar/dvtag"
)

var (
	// ErrZeroSize is returned when a kind other than Absent is given an empty payload.
	ErrZeroSize   = errors.New("dvmem: empty payload for non-null kind")
	ErrInvalidTag = errors.New("dvmem: invalid tag")
)

// ErrSize is returned when a payload does not have the size its kind requires.
type ErrSize struct {
	Tag  dvtag.Tag
	Want int
	Have int
}

func (e ErrSize) Error() string {
	return fmt.Sprintf("dvmem: %v payload has %d bytes, want %d", e.Tag, e.Have, e.Want)
}

// ErrMalformed is returned when a payload has an acceptable size, but its contents
// are not a valid byte image for its kind.
type ErrMalformed struct {
	Tag dvtag.Tag
	Msg string
}

func (e ErrMalformed) Error() string {
	return fmt.Sprintf("dvmem: malformed %v payload: %s", e.Tag, e.Msg)
}
