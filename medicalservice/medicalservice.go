// Package medicalservice defines the workflow statuses of a medical
// service, their display metadata, and the transition table governing
// which status changes are business-valid.
//
// The transition graph is intentionally cyclic: a completed service can
// be reopened and a canceled one restored, because those are moves the
// business permits, not steps of a forward-only lifecycle. Do not assume
// a DAG when extending the table.
package medicalservice

import "github.com/DoctorusRepoOwner/common/internal/status"

// FeatureName is the registry key of this feature.
const FeatureName = "medical-service"

// Status is one state of the medical service workflow.
type Status string

const (
	// Pending indicates the service has been scheduled but the patient
	// has not arrived yet.
	Pending Status = "pending"
	// OnWaitingRoom indicates the patient has arrived and waits to be
	// taken in charge.
	OnWaitingRoom Status = "on_waiting_room"
	// InProgress indicates the practitioner is currently delivering
	// the service.
	InProgress Status = "in_progress"
	// Completed indicates the service has been delivered and closed.
	Completed Status = "completed"
	// Canceled indicates the service was called off before completion.
	Canceled Status = "canceled"
)

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// Set holds the statuses, metadata and transition table of the feature.
var Set = status.MustNewSet(FeatureName, []status.Entry[Status]{
	{
		Status: Pending,
		Meta: status.Metadata{
			Icon:  "schedule",
			Color: "#FF9800",
			Short: status.Text{
				status.LocaleUS: "Pending",
				status.LocaleFR: "En attente",
			},
			Long: status.Text{
				status.LocaleUS: "Pending Arrival",
				status.LocaleFR: "En attente d'arrivée",
			},
			Description: status.Text{
				status.LocaleUS: "The service is scheduled and the patient has not arrived yet.",
				status.LocaleFR: "La prestation est planifiée et le patient n'est pas encore arrivé.",
			},
		},
	},
	{
		Status: OnWaitingRoom,
		Meta: status.Metadata{
			Icon:  "meeting_room",
			Color: "#2196F3",
			Short: status.Text{
				status.LocaleUS: "Waiting",
				status.LocaleFR: "Salle d'attente",
			},
			Long: status.Text{
				status.LocaleUS: "In Waiting Room",
				status.LocaleFR: "En salle d'attente",
			},
			Description: status.Text{
				status.LocaleUS: "The patient has arrived and is in the waiting room.",
				status.LocaleFR: "Le patient est arrivé et se trouve en salle d'attente.",
			},
		},
	},
	{
		Status: InProgress,
		Meta: status.Metadata{
			Icon:  "medical_services",
			Color: "#9C27B0",
			Short: status.Text{
				status.LocaleUS: "In Progress",
				status.LocaleFR: "En cours",
			},
			Long: status.Text{
				status.LocaleUS: "Consultation In Progress",
				status.LocaleFR: "Consultation en cours",
			},
			Description: status.Text{
				status.LocaleUS: "The practitioner is currently seeing the patient.",
				status.LocaleFR: "Le praticien reçoit actuellement le patient.",
			},
		},
	},
	{
		Status: Completed,
		Meta: status.Metadata{
			Icon:  "check_circle",
			Color: "#4CAF50",
			Short: status.Text{
				status.LocaleUS: "Completed",
				status.LocaleFR: "Terminé",
			},
			Long: status.Text{
				status.LocaleUS: "Service Completed",
				status.LocaleFR: "Prestation terminée",
			},
			Description: status.Text{
				status.LocaleUS: "The service has been delivered and closed.",
				status.LocaleFR: "La prestation a été réalisée et clôturée.",
			},
		},
	},
	{
		Status: Canceled,
		Meta: status.Metadata{
			Icon:  "cancel",
			Color: "#F44336",
			Short: status.Text{
				status.LocaleUS: "Canceled",
				status.LocaleFR: "Annulé",
			},
			Long: status.Text{
				status.LocaleUS: "Service Canceled",
				status.LocaleFR: "Prestation annulée",
			},
			Description: status.Text{
				status.LocaleUS: "The service was called off before completion.",
				status.LocaleFR: "La prestation a été annulée avant sa réalisation.",
			},
		},
	},
}, status.WithTransitions(map[Status][]Status{
	Pending:       {OnWaitingRoom, InProgress, Canceled},
	OnWaitingRoom: {InProgress, Pending, Canceled},
	InProgress:    {Completed, Canceled},
	// Reopen: a closed service can be resumed to fix a billing or
	// charting mistake.
	Completed: {InProgress},
	// Uncancel: a canceled service goes back to pending, never
	// straight into the room.
	Canceled: {Pending},
}))

func init() {
	status.Register(Set.View())
}

// Statuses returns every workflow status, in registration order.
func Statuses() []Status {
	return Set.All()
}

// IsValidTransition reports whether the move between two workflow
// statuses is business-valid.
func IsValidTransition(from, to Status) bool {
	return Set.IsValidTransition(from, to)
}

// AllowedTransitions returns the statuses reachable in one step.
func AllowedTransitions(from Status) []Status {
	return Set.AllowedTransitions(from)
}
