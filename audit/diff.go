package audit

import (
	"fmt"
	"reflect"
	"sort"
)

// ChangeType classifies a single field change.
type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeModified ChangeType = "modified"
	ChangeRemoved  ChangeType = "removed"
)

// FieldChange records one field-level difference between two versions
// of a record.
type FieldChange struct {
	Type  ChangeType `json:"type"`
	Field string     `json:"field"`
	Old   any        `json:"old,omitempty"`
	New   any        `json:"new,omitempty"`
}

// MakeAddition returns a FieldChange for a field the new record gained.
func MakeAddition(field string, newValue any) FieldChange {
	return FieldChange{Type: ChangeAdded, Field: field, New: newValue}
}

// MakeModification returns a FieldChange for a field whose value differs.
func MakeModification(field string, oldValue, newValue any) FieldChange {
	return FieldChange{Type: ChangeModified, Field: field, Old: oldValue, New: newValue}
}

// MakeRemoval returns a FieldChange for a field the new record lost.
func MakeRemoval(field string, oldValue any) FieldChange {
	return FieldChange{Type: ChangeRemoved, Field: field, Old: oldValue}
}

// IsAddition reports whether the change added a field.
func (c FieldChange) IsAddition() bool {
	return c.Type == ChangeAdded
}

// IsModification reports whether the change modified a field.
func (c FieldChange) IsModification() bool {
	return c.Type == ChangeModified
}

// IsRemoval reports whether the change removed a field.
func (c FieldChange) IsRemoval() bool {
	return c.Type == ChangeRemoved
}

// String returns a human-readable one-line form of the change.
func (c FieldChange) String() string {
	switch c.Type {
	case ChangeAdded:
		return fmt.Sprintf("field added: %s = %v", c.Field, c.New)
	case ChangeModified:
		return fmt.Sprintf("field modified: %s = %v (was %v)", c.Field, c.New, c.Old)
	case ChangeRemoved:
		return fmt.Sprintf("field removed: %s (was %v)", c.Field, c.Old)
	default:
		return fmt.Sprintf("unknown change type %s: %s = %v (was %v)", c.Type, c.Field, c.New, c.Old)
	}
}

// ChangedFields diffs two flat records field by field. Values are
// compared by structural equality, so nested slices and maps count as
// one changed field rather than being descended into. Changes come
// back sorted by field name, making the result deterministic for
// storage and assertion.
func ChangedFields(before, after map[string]any) []FieldChange {
	fields := make(map[string]struct{}, len(before)+len(after))
	for f := range before {
		fields[f] = struct{}{}
	}
	for f := range after {
		fields[f] = struct{}{}
	}

	names := make([]string, 0, len(fields))
	for f := range fields {
		names = append(names, f)
	}
	sort.Strings(names)

	var changes []FieldChange
	for _, f := range names {
		oldValue, inBefore := before[f]
		newValue, inAfter := after[f]

		switch {
		case !inBefore:
			changes = append(changes, MakeAddition(f, newValue))
		case !inAfter:
			changes = append(changes, MakeRemoval(f, oldValue))
		case !reflect.DeepEqual(oldValue, newValue):
			changes = append(changes, MakeModification(f, oldValue, newValue))
		}
	}
	return changes
}
