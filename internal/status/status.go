// Package status provides shared types and the feature registry system.
package status

// Locale identifies a supported display language.
type Locale string

const (
	LocaleUS Locale = "us-EN"
	LocaleFR Locale = "fr-FR"
)

// Locales returns every supported locale, in declaration order.
func Locales() []Locale {
	return []Locale{LocaleUS, LocaleFR}
}

// Known reports whether the locale is a member of the supported set.
func (l Locale) Known() bool {
	for _, known := range Locales() {
		if l == known {
			return true
		}
	}
	return false
}

// Format selects between the short and long label of a status.
type Format string

const (
	FormatShort Format = "short"
	FormatLong  Format = "long"
)

// Formats returns every supported label format, in declaration order.
func Formats() []Format {
	return []Format{FormatShort, FormatLong}
}

// Known reports whether the format is a member of the supported set.
func (f Format) Known() bool {
	for _, known := range Formats() {
		if f == known {
			return true
		}
	}
	return false
}

// Text holds a display string per locale.
type Text map[Locale]string

// Metadata describes how a single status is presented.
// Short, Long and Description must define a non-empty string
// for every supported locale; NewSet enforces this.
type Metadata struct {
	Icon        string
	Color       string
	Short       Text
	Long        Text
	Description Text
}

func (m Metadata) label(format Format) Text {
	if format == FormatLong {
		return m.Long
	}
	return m.Short
}
