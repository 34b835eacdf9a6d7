// Package common provides the shared vocabulary of the Doctorus
// applications: status metadata and transition tables for the product's
// finite-state features, the resource/action operation taxonomy used for
// permission and audit labeling, configuration parameter paths, and
// audit event types.
//
// The package supports multiple features (the medical service workflow,
// the generic boolean-flag preset, invoice payment) with a unified query
// interface for metadata, locale-aware labels, search and grouping.
//
// Basic usage:
//
//	import (
//		"github.com/DoctorusRepoOwner/common"
//		_ "github.com/DoctorusRepoOwner/common/medicalservice"
//	)
//
//	label, err := common.Label("medical-service", "pending", common.LocaleFR, common.FormatShort)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(label) // "En attente"
//
// To automatically import all features, use the all subpackage:
//
//	import (
//		"github.com/DoctorusRepoOwner/common"
//		_ "github.com/DoctorusRepoOwner/common/all"
//	)
//
// Code that knows the feature at compile time should prefer the typed
// API of the feature package (e.g. medicalservice.Set) over the
// string-keyed functions below; the typed API makes it impossible to
// look a status up in the wrong feature.
package common

import (
	"github.com/DoctorusRepoOwner/common/internal/status"
)

// Re-export types from internal/status
type (
	// Feature is the type-erased view of one registered feature.
	Feature = status.Feature

	// Metadata describes how a single status is presented.
	Metadata = status.Metadata

	// Text holds a display string per locale.
	Text = status.Text

	// Locale identifies a supported display language.
	Locale = status.Locale

	// Format selects between the short and long label of a status.
	Format = status.Format
)

// Re-export constants
const (
	LocaleUS = status.LocaleUS
	LocaleFR = status.LocaleFR

	FormatShort = status.FormatShort
	FormatLong  = status.FormatLong
)

// Re-export errors
var (
	ErrNotFound = status.ErrNotFound
)

// Error types
type (
	UnknownFeatureError = status.UnknownFeatureError
	UnknownStatusError  = status.UnknownStatusError
	UnknownLocaleError  = status.UnknownLocaleError
	UnknownFormatError  = status.UnknownFormatError
)

// New returns the registered feature with the given name.
//
// Supported features: "medical-service", "boolean-flag", "payment"
func New(name string) (Feature, error) {
	return status.New(name)
}

// SupportedFeatures returns all registered feature names.
// Note: features must be imported to be registered.
func SupportedFeatures() []string {
	return status.SupportedFeatures()
}

// Locales returns every supported locale, in declaration order.
func Locales() []Locale {
	return status.Locales()
}

// Formats returns every supported label format, in declaration order.
func Formats() []Format {
	return status.Formats()
}

// GetMetadata returns the metadata of a status within a feature.
func GetMetadata(feature, st string) (Metadata, error) {
	f, err := status.New(feature)
	if err != nil {
		return Metadata{}, err
	}
	return f.Lookup(st)
}

// GetIcon returns the icon token of a status within a feature.
func GetIcon(feature, st string) (string, error) {
	m, err := GetMetadata(feature, st)
	if err != nil {
		return "", err
	}
	return m.Icon, nil
}

// GetColor returns the color token of a status within a feature.
func GetColor(feature, st string) (string, error) {
	m, err := GetMetadata(feature, st)
	if err != nil {
		return "", err
	}
	return m.Color, nil
}

// Label resolves the display label of a status for a locale and format.
func Label(feature, st string, locale Locale, format Format) (string, error) {
	f, err := status.New(feature)
	if err != nil {
		return "", err
	}
	return f.LookupLabel(st, locale, format)
}

// Description resolves the description of a status for a locale.
func Description(feature, st string, locale Locale) (string, error) {
	f, err := status.New(feature)
	if err != nil {
		return "", err
	}
	return f.LookupDescription(st, locale)
}

// Statuses returns every status of a feature, in registration order.
func Statuses(feature string) ([]string, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	return f.Values(), nil
}

// AllMetadata returns the full metadata table of a feature.
func AllMetadata(feature string) (map[string]Metadata, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	out := make(map[string]Metadata)
	for _, st := range f.Values() {
		m, err := f.Lookup(st)
		if err != nil {
			return nil, err
		}
		out[st] = m
	}
	return out, nil
}

// Search returns the statuses of a feature whose labels or description
// in the locale contain the term, case-insensitively. An empty term
// matches every status.
func Search(feature, term string, locale Locale) ([]string, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	return f.SearchValues(term, locale)
}

// GroupByColor partitions the statuses of a feature by color token.
func GroupByColor(feature string) (map[string][]string, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	return f.ColorGroups(), nil
}

// GroupByIcon partitions the statuses of a feature by icon token.
func GroupByIcon(feature string) (map[string][]string, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	return f.IconGroups(), nil
}

// IsValidTransition reports whether the move between two statuses of a
// feature is permitted by its transition table. Unknown features permit
// nothing; the error is reserved for lookups, not validity checks.
func IsValidTransition(feature, from, to string) bool {
	f, err := status.New(feature)
	if err != nil {
		return false
	}
	return f.ValidTransition(from, to)
}

// AllowedTransitions returns the statuses of a feature reachable in one
// step from the given status.
func AllowedTransitions(feature, from string) ([]string, error) {
	f, err := status.New(feature)
	if err != nil {
		return nil, err
	}
	return f.Transitions(from), nil
}
