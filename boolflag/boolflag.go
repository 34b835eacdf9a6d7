// Package boolflag defines the generic boolean-flag preset: a reusable
// two-state feature for yes/no toggles that need consistent icons,
// colors and bilingual labels across the product.
package boolflag

import "github.com/DoctorusRepoOwner/common/internal/status"

// FeatureName is the registry key of this feature.
const FeatureName = "boolean-flag"

// Status is one state of a boolean flag.
type Status string

const (
	True  Status = "true"
	False Status = "false"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// FromBool converts a bool to its flag status.
func FromBool(b bool) Status {
	if b {
		return True
	}
	return False
}

// Set holds the two flag states and their metadata. No transition
// table: a flag flips freely, so validity checks do not apply.
var Set = status.MustNewSet(FeatureName, []status.Entry[Status]{
	{
		Status: True,
		Meta: status.Metadata{
			Icon:  "toggle_on",
			Color: "#4CAF50",
			Short: status.Text{
				status.LocaleUS: "Yes",
				status.LocaleFR: "Oui",
			},
			Long: status.Text{
				status.LocaleUS: "Enabled",
				status.LocaleFR: "Activé",
			},
			Description: status.Text{
				status.LocaleUS: "The option is turned on.",
				status.LocaleFR: "L'option est activée.",
			},
		},
	},
	{
		Status: False,
		Meta: status.Metadata{
			Icon:  "toggle_off",
			Color: "#9E9E9E",
			Short: status.Text{
				status.LocaleUS: "No",
				status.LocaleFR: "Non",
			},
			Long: status.Text{
				status.LocaleUS: "Disabled",
				status.LocaleFR: "Désactivé",
			},
			Description: status.Text{
				status.LocaleUS: "The option is turned off.",
				status.LocaleFR: "L'option est désactivée.",
			},
		},
	},
})

func init() {
	status.Register(Set.View())
}

// Statuses returns both flag states, in registration order.
func Statuses() []Status {
	return Set.All()
}
