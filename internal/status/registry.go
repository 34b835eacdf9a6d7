package status

import (
	"sort"
	"sync"
)

// Feature is the type-erased view of one feature's Set. It is what the
// registry hands out when callers look features up by name at runtime,
// for example to drive locale-aware UI from plain strings. Code that
// knows the feature at compile time should use the typed Set of the
// feature package instead.
type Feature interface {
	// Name returns the feature name (e.g. "medical-service").
	Name() string

	// Values returns every status of the feature, in registration order.
	Values() []string

	// Lookup returns the metadata attached to a status.
	Lookup(status string) (Metadata, error)

	// LookupLabel resolves a status label for a locale and format.
	LookupLabel(status string, locale Locale, format Format) (string, error)

	// LookupDescription resolves a status description for a locale.
	LookupDescription(status string, locale Locale) (string, error)

	// SearchValues returns the statuses whose labels or description in
	// the locale contain the term, case-insensitively.
	SearchValues(term string, locale Locale) ([]string, error)

	// ColorGroups partitions the statuses by color token.
	ColorGroups() map[string][]string

	// IconGroups partitions the statuses by icon token.
	IconGroups() map[string][]string

	// ValidTransition reports whether the move is permitted by the
	// feature's transition table. Features without a table permit nothing.
	ValidTransition(from, to string) bool

	// Transitions returns the statuses reachable in one step from the
	// given status.
	Transitions(from string) []string
}

var (
	featuresMu sync.RWMutex
	features   = make(map[string]Feature)
)

// Register adds a feature to the global registry. Feature packages
// call it from init; registration after process start is not supported.
func Register(f Feature) {
	featuresMu.Lock()
	defer featuresMu.Unlock()
	features[f.Name()] = f
}

// New returns the registered feature with the given name.
func New(name string) (Feature, error) {
	featuresMu.RLock()
	f, ok := features[name]
	featuresMu.RUnlock()

	if !ok {
		return nil, &UnknownFeatureError{Feature: name}
	}
	return f, nil
}

// SupportedFeatures returns all registered feature names, sorted.
// Note: feature packages must be imported to be registered.
func SupportedFeatures() []string {
	featuresMu.RLock()
	defer featuresMu.RUnlock()

	names := make([]string, 0, len(features))
	for name := range features {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// View returns the type-erased Feature backed by the Set, suitable
// for Register.
func (s *Set[S]) View() Feature {
	return view[S]{set: s}
}

type view[S ~string] struct {
	set *Set[S]
}

func (v view[S]) Name() string {
	return v.set.name
}

func (v view[S]) Values() []string {
	return toStrings(v.set.All())
}

func (v view[S]) Lookup(status string) (Metadata, error) {
	return v.set.Metadata(S(status))
}

func (v view[S]) LookupLabel(status string, locale Locale, format Format) (string, error) {
	return v.set.Label(S(status), locale, format)
}

func (v view[S]) LookupDescription(status string, locale Locale) (string, error) {
	return v.set.Description(S(status), locale)
}

func (v view[S]) SearchValues(term string, locale Locale) ([]string, error) {
	matches, err := v.set.Search(term, locale)
	if err != nil {
		return nil, err
	}
	return toStrings(matches), nil
}

func (v view[S]) ColorGroups() map[string][]string {
	return toStringGroups(v.set.GroupByColor())
}

func (v view[S]) IconGroups() map[string][]string {
	return toStringGroups(v.set.GroupByIcon())
}

func (v view[S]) ValidTransition(from, to string) bool {
	return v.set.IsValidTransition(S(from), S(to))
}

func (v view[S]) Transitions(from string) []string {
	return toStrings(v.set.AllowedTransitions(S(from)))
}

func toStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func toStringGroups[S ~string](groups map[string][]S) map[string][]string {
	out := make(map[string][]string, len(groups))
	for key, values := range groups {
		out[key] = toStrings(values)
	}
	return out
}
