package reservation

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const maxNoteLength = 1000

var ErrNoteTooLong = errors.New("special requests must be at most 1000 characters")

// Note holds the guest's special requests.
type Note struct {
	value string
}

func NewNote(value string) (Note, error) {
	value = strings.TrimSpace(value)
	if utf8.RuneCountInString(value) > maxNoteLength {
		return Note{}, ErrNoteTooLong
	}
	return Note{value: value}, nil
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
