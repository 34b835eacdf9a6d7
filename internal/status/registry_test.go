package status

import (
	"errors"
	"reflect"
	"testing"
)

func registerTestFeature(t *testing.T) Feature {
	t.Helper()
	s, err := NewSet("test-registry-case", testEntries(), WithTransitions(testTransitions()))
	if err != nil {
		t.Fatalf("NewSet failed: %v", err)
	}
	Register(s.View())

	f, err := New("test-registry-case")
	if err != nil {
		t.Fatalf("New failed after Register: %v", err)
	}
	return f
}

func TestNewUnknownFeature(t *testing.T) {
	_, err := New("no-such-feature")
	if err == nil {
		t.Fatal("expected error for unregistered feature")
	}

	var unknown *UnknownFeatureError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownFeatureError, got %T", err)
	}
	if unknown.Feature != "no-such-feature" {
		t.Errorf("unexpected feature in error: %q", unknown.Feature)
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("UnknownFeatureError should unwrap to ErrNotFound")
	}
}

func TestSupportedFeaturesIncludesRegistered(t *testing.T) {
	registerTestFeature(t)

	for _, name := range SupportedFeatures() {
		if name == "test-registry-case" {
			return
		}
	}
	t.Error("registered feature missing from SupportedFeatures")
}

func TestViewValues(t *testing.T) {
	f := registerTestFeature(t)

	want := []string{"open", "closed", "archived"}
	if got := f.Values(); !reflect.DeepEqual(got, want) {
		t.Errorf("Values = %v, want %v", got, want)
	}
}

func TestViewLookup(t *testing.T) {
	f := registerTestFeature(t)

	m, err := f.Lookup("open")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	if m.Icon != "folder_open" {
		t.Errorf("unexpected icon: %q", m.Icon)
	}

	_, err = f.Lookup("bogus")
	var unknownStatus *UnknownStatusError
	if !errors.As(err, &unknownStatus) {
		t.Errorf("expected UnknownStatusError, got %v", err)
	}
}

func TestViewLabelAndDescription(t *testing.T) {
	f := registerTestFeature(t)

	label, err := f.LookupLabel("closed", LocaleFR, FormatLong)
	if err != nil {
		t.Fatalf("LookupLabel failed: %v", err)
	}
	if label != "Case Closed (fr)" {
		t.Errorf("unexpected label: %q", label)
	}

	desc, err := f.LookupDescription("closed", LocaleUS)
	if err != nil {
		t.Fatalf("LookupDescription failed: %v", err)
	}
	if desc != "The case has been resolved." {
		t.Errorf("unexpected description: %q", desc)
	}
}

func TestViewSearchAndGroups(t *testing.T) {
	f := registerTestFeature(t)

	matches, err := f.SearchValues("archived", LocaleUS)
	if err != nil {
		t.Fatalf("SearchValues failed: %v", err)
	}
	if !reflect.DeepEqual(matches, []string{"archived"}) {
		t.Errorf("unexpected matches: %v", matches)
	}

	colors := f.ColorGroups()
	if !reflect.DeepEqual(colors["#4CAF50"], []string{"closed"}) {
		t.Errorf("unexpected color group: %v", colors["#4CAF50"])
	}

	icons := f.IconGroups()
	if !reflect.DeepEqual(icons["folder"], []string{"closed"}) {
		t.Errorf("unexpected icon group: %v", icons["folder"])
	}
}

func TestViewTransitions(t *testing.T) {
	f := registerTestFeature(t)

	if !f.ValidTransition("open", "closed") {
		t.Error("open -> closed should be valid through the view")
	}
	if f.ValidTransition("open", "archived") {
		t.Error("open -> archived should be invalid through the view")
	}
	if got := f.Transitions("closed"); !reflect.DeepEqual(got, []string{"open", "archived"}) {
		t.Errorf("unexpected transitions: %v", got)
	}
}
