// Package audit defines the audit event types shared by the Doctorus
// applications and the changed-field calculator used to populate them.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/DoctorusRepoOwner/common/operations"
)

// Event is one recorded audit entry: who performed which operation on
// what, and which fields changed.
type Event struct {
	ID         string               `json:"id"`
	Actor      string               `json:"actor"`
	Operation  operations.Operation `json:"operation"`
	Resource   operations.Resource  `json:"resource"`
	ResourceID string               `json:"resource_id"`
	OccurredAt time.Time            `json:"occurred_at"`
	Changes    []FieldChange        `json:"changes,omitempty"`
}

// NewEvent creates an audit event for an operation performed by an
// actor on one resource instance. The resource half of the operation
// is denormalized onto the event so consumers can filter without
// parsing; malformed operations leave it empty.
func NewEvent(actor string, op operations.Operation, resourceID string, changes []FieldChange) Event {
	resource, _, _ := operations.ParseOperation(string(op))
	return Event{
		ID:         uuid.NewString(),
		Actor:      actor,
		Operation:  op,
		Resource:   resource,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Changes:    changes,
	}
}
