// Package payment defines the settlement statuses of an invoice.
package payment

import "github.com/DoctorusRepoOwner/common/internal/status"

// FeatureName is the registry key of this feature.
const FeatureName = "payment"

// Status is one settlement state of an invoice.
type Status string

const (
	// Unpaid indicates no payment has been recorded.
	Unpaid Status = "unpaid"
	// PartiallyPaid indicates some but not all of the amount is settled.
	PartiallyPaid Status = "partially_paid"
	// Paid indicates the full amount is settled.
	Paid Status = "paid"
	// Refunded indicates the amount was returned to the patient.
	Refunded Status = "refunded"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Set holds the settlement statuses and their metadata. Settlement is
// driven by accounting entries, not by a workflow, so there is no
// transition table.
var Set = status.MustNewSet(FeatureName, []status.Entry[Status]{
	{
		Status: Unpaid,
		Meta: status.Metadata{
			Icon:  "money_off",
			Color: "#F44336",
			Short: status.Text{
				status.LocaleUS: "Unpaid",
				status.LocaleFR: "Impayé",
			},
			Long: status.Text{
				status.LocaleUS: "Not Paid",
				status.LocaleFR: "Non réglé",
			},
			Description: status.Text{
				status.LocaleUS: "No payment has been recorded for the invoice.",
				status.LocaleFR: "Aucun règlement n'a été enregistré pour la facture.",
			},
		},
	},
	{
		Status: PartiallyPaid,
		Meta: status.Metadata{
			Icon:  "hourglass_bottom",
			Color: "#FF9800",
			Short: status.Text{
				status.LocaleUS: "Partial",
				status.LocaleFR: "Partiel",
			},
			Long: status.Text{
				status.LocaleUS: "Partially Paid",
				status.LocaleFR: "Réglé partiellement",
			},
			Description: status.Text{
				status.LocaleUS: "Part of the invoice amount is settled.",
				status.LocaleFR: "Une partie du montant de la facture est réglée.",
			},
		},
	},
	{
		Status: Paid,
		Meta: status.Metadata{
			Icon:  "paid",
			Color: "#4CAF50",
			Short: status.Text{
				status.LocaleUS: "Paid",
				status.LocaleFR: "Réglé",
			},
			Long: status.Text{
				status.LocaleUS: "Fully Paid",
				status.LocaleFR: "Réglé intégralement",
			},
			Description: status.Text{
				status.LocaleUS: "The invoice amount is fully settled.",
				status.LocaleFR: "Le montant de la facture est intégralement réglé.",
			},
		},
	},
	{
		Status: Refunded,
		Meta: status.Metadata{
			Icon:  "currency_exchange",
			Color: "#607D8B",
			Short: status.Text{
				status.LocaleUS: "Refunded",
				status.LocaleFR: "Remboursé",
			},
			Long: status.Text{
				status.LocaleUS: "Amount Refunded",
				status.LocaleFR: "Montant remboursé",
			},
			Description: status.Text{
				status.LocaleUS: "The settled amount was returned to the patient.",
				status.LocaleFR: "Le montant réglé a été restitué au patient.",
			},
		},
	},
})

func init() {
	status.Register(Set.View())
}

// Statuses returns every settlement status, in registration order.
func Statuses() []Status {
	return Set.All()
}
