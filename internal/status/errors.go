package status

import (
	"errors"
	"fmt"
)

// ErrNotFound is the base error for every failed lookup.
// All typed lookup errors unwrap to it, so callers can either
// discriminate with errors.As or blanket-match with errors.Is.
var ErrNotFound = errors.New("not found")

// UnknownFeatureError indicates the requested feature is not registered.
type UnknownFeatureError struct {
	Feature string
}

func (e *UnknownFeatureError) Error() string {
	return fmt.Sprintf("unknown feature: %s", e.Feature)
}

func (e *UnknownFeatureError) Unwrap() error { return ErrNotFound }

// UnknownStatusError indicates the status is not a member of the
// named feature's enumeration.
type UnknownStatusError struct {
	Feature string
	Status  string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("unknown status %q for feature %s", e.Status, e.Feature)
}

func (e *UnknownStatusError) Unwrap() error { return ErrNotFound }

// UnknownLocaleError indicates a locale outside the supported set.
type UnknownLocaleError struct {
	Locale Locale
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale: %s", e.Locale)
}

func (e *UnknownLocaleError) Unwrap() error { return ErrNotFound }

// UnknownFormatError indicates a label format outside the supported set.
type UnknownFormatError struct {
	Format Format
}

func (e *UnknownFormatError) Error() string {
	return fmt.Sprintf("unknown label format: %s", e.Format)
}

func (e *UnknownFormatError) Unwrap() error { return ErrNotFound }
