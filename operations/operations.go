// Package operations defines the closed taxonomy of resources and
// actions composed into operation identifiers, used to label
// permissions and audit events across the Doctorus applications.
//
// An operation is the canonical string "RESOURCE:ACTION", e.g.
// "patient:create". Resources and actions are closed sets; membership
// checks scan the declared order.
package operations

import (
	"fmt"
	"regexp"
)

// Resource identifies a kind of entity an operation acts on.
type Resource string

const (
	ResourcePatient        Resource = "patient"
	ResourcePractitioner   Resource = "practitioner"
	ResourceAppointment    Resource = "appointment"
	ResourceMedicalService Resource = "medical_service"
	ResourceInvoice        Resource = "invoice"
	ResourcePayment        Resource = "payment"
	ResourceDocument       Resource = "document"
	ResourceUser           Resource = "user"
	ResourceRole           Resource = "role"
	ResourceParameter      Resource = "parameter"
)

// Action identifies what an operation does to a resource.
type Action string

const (
	ActionCreate Action = "create"
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
	ActionList   Action = "list"
	ActionExport Action = "export"
)

// Operation is a resource/action pair in canonical "RESOURCE:ACTION" form.
type Operation string

// String returns the canonical string of the operation.
func (o Operation) String() string {
	return string(o)
}

// operationPattern matches the canonical form. Both halves are
// lowercase words with underscores, joined by a single colon.
var operationPattern = regexp.MustCompile(`^([a-z][a-z_]*):([a-z][a-z_]*)$`)

// Resources returns every resource, in declaration order.
func Resources() []Resource {
	return []Resource{
		ResourcePatient,
		ResourcePractitioner,
		ResourceAppointment,
		ResourceMedicalService,
		ResourceInvoice,
		ResourcePayment,
		ResourceDocument,
		ResourceUser,
		ResourceRole,
		ResourceParameter,
	}
}

// Actions returns every action, in declaration order.
func Actions() []Action {
	return []Action{
		ActionCreate,
		ActionRead,
		ActionUpdate,
		ActionDelete,
		ActionList,
		ActionExport,
	}
}

// KnownResource reports whether the resource is a member of the taxonomy.
func KnownResource(r Resource) bool {
	for _, known := range Resources() {
		if r == known {
			return true
		}
	}
	return false
}

// KnownAction reports whether the action is a member of the taxonomy.
func KnownAction(a Action) bool {
	for _, known := range Actions() {
		if a == known {
			return true
		}
	}
	return false
}

// NewOperation composes a resource and an action into the canonical form.
func NewOperation(r Resource, a Action) Operation {
	return Operation(fmt.Sprintf("%s:%s", r, a))
}

// ParseOperation splits an operation into its resource and action.
// The form is validated; membership in the taxonomy is not, so callers
// can parse operations over custom resources and check membership
// separately with KnownResource and KnownAction.
func ParseOperation(op string) (Resource, Action, error) {
	m := operationPattern.FindStringSubmatch(op)
	if m == nil {
		return "", "", fmt.Errorf("malformed operation %q: want RESOURCE:ACTION", op)
	}
	return Resource(m[1]), Action(m[2]), nil
}

// Known reports whether the operation is well-formed and both halves
// belong to the taxonomy.
func (o Operation) Known() bool {
	r, a, err := ParseOperation(string(o))
	if err != nil {
		return false
	}
	return KnownResource(r) && KnownAction(a)
}

// AllOperations returns the full cross product of resources and
// actions, resources outermost, both in declaration order.
func AllOperations() []Operation {
	resources := Resources()
	actions := Actions()
	out := make([]Operation, 0, len(resources)*len(actions))
	for _, r := range resources {
		for _, a := range actions {
			out = append(out, NewOperation(r, a))
		}
	}
	return out
}
