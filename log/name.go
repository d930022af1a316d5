package log

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/runenames"
)

// ValidateName reports whether name is usable as a [Logger] name.
//
// A valid name is non-empty and contains only ASCII characters. The returned
// error is a [*CreationError] matching [ErrNameEmpty] or [ErrNameIllegal];
// for an illegal character, its cause identifies the offending rune.
func ValidateName(name string) error {
	if name == "" {
		return ErrNameEmpty
	}

	for i, r := range name {
		if r >= utf8.RuneSelf {
			return NewCreationError(ErrNameIllegal.Message, illegalRune(name, i, r))
		}
	}

	return nil
}

// ValidateNamePtr is like [ValidateName] but also rejects an absent (nil)
// name with [ErrNameAbsent].
func ValidateNamePtr(name *string) error {
	if name == nil {
		return ErrNameAbsent
	}

	return ValidateName(*name)
}

func illegalRune(name string, offset int, r rune) error {
	if _, size := utf8.DecodeRuneInString(name[offset:]); r == utf8.RuneError && size == 1 {
		return fmt.Errorf("invalid UTF-8 byte %#02x at offset %d", name[offset], offset)
	}

	return fmt.Errorf("%U %s at offset %d", r, runenames.Name(r), offset)
}
