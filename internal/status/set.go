package status

import "fmt"

// Entry binds one status value to its metadata.
type Entry[S ~string] struct {
	Status S
	Meta   Metadata
}

// Set is the closed enumeration of one feature: its status values in
// registration order, their metadata, and an optional transition table.
// A Set is immutable once built and safe for concurrent use.
type Set[S ~string] struct {
	name        string
	order       []S
	meta        map[S]Metadata
	transitions map[S][]S
}

// Option configures a Set.
type Option[S ~string] func(*Set[S])

// WithTransitions attaches a transition table restricting which
// state-to-state changes are considered business-valid. Every key and
// every target must be a status defined by the entry list.
//
// The table is advisory and deliberately not acyclic: edges such as
// "reopen" (completed back to in-progress) and "uncancel" encode
// business-permitted moves, not a forward-only lifecycle. Callers add
// new features without assuming a DAG.
func WithTransitions[S ~string](table map[S][]S) Option[S] {
	return func(s *Set[S]) {
		s.transitions = table
	}
}

// NewSet builds the Set for one feature and validates it: duplicate
// statuses are rejected, every metadata entry must carry a non-empty
// icon, color, and a non-empty string for every supported locale in
// its short label, long label and description, and the transition
// table may only reference defined statuses.
func NewSet[S ~string](name string, entries []Entry[S], opts ...Option[S]) (*Set[S], error) {
	if name == "" {
		return nil, fmt.Errorf("feature name must not be empty")
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("feature %s: no statuses defined", name)
	}

	s := &Set[S]{
		name:  name,
		order: make([]S, 0, len(entries)),
		meta:  make(map[S]Metadata, len(entries)),
	}
	for _, e := range entries {
		if _, dup := s.meta[e.Status]; dup {
			return nil, fmt.Errorf("feature %s: duplicate status %q", name, string(e.Status))
		}
		if err := validateMetadata(name, string(e.Status), e.Meta); err != nil {
			return nil, err
		}
		s.order = append(s.order, e.Status)
		s.meta[e.Status] = e.Meta
	}

	for _, opt := range opts {
		opt(s)
	}

	for from, targets := range s.transitions {
		if _, ok := s.meta[from]; !ok {
			return nil, fmt.Errorf("feature %s: transition source %q is not a defined status", name, string(from))
		}
		for _, to := range targets {
			if _, ok := s.meta[to]; !ok {
				return nil, fmt.Errorf("feature %s: transition target %q from %q is not a defined status", name, string(to), string(from))
			}
		}
	}

	return s, nil
}

// MustNewSet is like NewSet but panics on error. It is intended for
// package-level tables constructed at load time.
func MustNewSet[S ~string](name string, entries []Entry[S], opts ...Option[S]) *Set[S] {
	s, err := NewSet(name, entries, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

func validateMetadata(feature, status string, m Metadata) error {
	if m.Icon == "" {
		return fmt.Errorf("feature %s: status %q has no icon", feature, status)
	}
	if m.Color == "" {
		return fmt.Errorf("feature %s: status %q has no color", feature, status)
	}
	for field, text := range map[string]Text{
		"short label": m.Short,
		"long label":  m.Long,
		"description": m.Description,
	} {
		for _, locale := range Locales() {
			if text[locale] == "" {
				return fmt.Errorf("feature %s: status %q is missing the %s %s", feature, status, locale, field)
			}
		}
	}
	return nil
}

// Name returns the feature name the Set was registered under.
func (s *Set[S]) Name() string {
	return s.name
}

// All returns every status of the feature, in registration order.
func (s *Set[S]) All() []S {
	out := make([]S, len(s.order))
	copy(out, s.order)
	return out
}

// AllMetadata returns the full metadata table of the feature.
func (s *Set[S]) AllMetadata() map[S]Metadata {
	out := make(map[S]Metadata, len(s.meta))
	for status, m := range s.meta {
		out[status] = m
	}
	return out
}

// Metadata returns the metadata attached to a status.
func (s *Set[S]) Metadata(status S) (Metadata, error) {
	m, ok := s.meta[status]
	if !ok {
		return Metadata{}, &UnknownStatusError{Feature: s.name, Status: string(status)}
	}
	return m, nil
}

// Icon returns the icon token of a status.
func (s *Set[S]) Icon(status S) (string, error) {
	m, err := s.Metadata(status)
	if err != nil {
		return "", err
	}
	return m.Icon, nil
}

// Color returns the color token of a status.
func (s *Set[S]) Color(status S) (string, error) {
	m, err := s.Metadata(status)
	if err != nil {
		return "", err
	}
	return m.Color, nil
}

// Label resolves the display label of a status for a locale and format.
// Locale and format are closed sets; values outside them are an error,
// never a silent fallback.
func (s *Set[S]) Label(status S, locale Locale, format Format) (string, error) {
	if !locale.Known() {
		return "", &UnknownLocaleError{Locale: locale}
	}
	if !format.Known() {
		return "", &UnknownFormatError{Format: format}
	}
	m, err := s.Metadata(status)
	if err != nil {
		return "", err
	}
	return m.label(format)[locale], nil
}

// Description resolves the description of a status for a locale.
func (s *Set[S]) Description(status S, locale Locale) (string, error) {
	if !locale.Known() {
		return "", &UnknownLocaleError{Locale: locale}
	}
	m, err := s.Metadata(status)
	if err != nil {
		return "", err
	}
	return m.Description[locale], nil
}

// IsValidTransition reports whether the move from one status to
// another is permitted by the feature's transition table. It returns
// false, not an error, when the source has no table entry or the
// target is absent from its set. Validation is advisory: callers are
// responsible for rejecting invalid moves themselves.
func (s *Set[S]) IsValidTransition(from, to S) bool {
	for _, target := range s.transitions[from] {
		if target == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable in one step from
// the given status, or an empty slice if it has no table entry.
func (s *Set[S]) AllowedTransitions(from S) []S {
	targets := s.transitions[from]
	out := make([]S, len(targets))
	copy(out, targets)
	return out
}
