package medicalservice

import (
	"reflect"
	"strings"
	"testing"

	"github.com/DoctorusRepoOwner/common/internal/status"
)

func TestStatusesOrder(t *testing.T) {
	want := []Status{Pending, OnWaitingRoom, InProgress, Completed, Canceled}
	if got := Statuses(); !reflect.DeepEqual(got, want) {
		t.Errorf("Statuses() = %v, want %v", got, want)
	}
}

func TestStatusesMatchMetadataTable(t *testing.T) {
	all := Statuses()
	table := Set.AllMetadata()

	if len(all) != len(table) {
		t.Fatalf("%d statuses but %d metadata entries", len(all), len(table))
	}
	seen := make(map[Status]bool, len(all))
	for _, st := range all {
		if seen[st] {
			t.Errorf("status %q listed twice", st)
		}
		seen[st] = true
		if _, ok := table[st]; !ok {
			t.Errorf("status %q has no metadata", st)
		}
	}
}

func TestEveryLabelAndDescriptionIsPopulated(t *testing.T) {
	for _, st := range Statuses() {
		for _, locale := range status.Locales() {
			for _, format := range status.Formats() {
				label, err := Set.Label(st, locale, format)
				if err != nil {
					t.Fatalf("Label(%s, %s, %s) failed: %v", st, locale, format, err)
				}
				if label == "" {
					t.Errorf("empty %s/%s label for %q", locale, format, st)
				}
			}
			desc, err := Set.Description(st, locale)
			if err != nil {
				t.Fatalf("Description(%s, %s) failed: %v", st, locale, err)
			}
			if desc == "" {
				t.Errorf("empty %s description for %q", locale, st)
			}
		}
	}
}

func TestDocumentedTransitions(t *testing.T) {
	tests := []struct {
		from Status
		to   Status
		want bool
	}{
		{Pending, OnWaitingRoom, true},
		{Pending, Completed, false},
		{Completed, InProgress, true}, // reopen
		{Canceled, Pending, true},     // uncancel
		{InProgress, Pending, false},
	}

	for _, tt := range tests {
		if got := IsValidTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("IsValidTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestAllowedTransitionsConsistency(t *testing.T) {
	for _, from := range Statuses() {
		allowed := AllowedTransitions(from)
		listed := make(map[Status]bool, len(allowed))
		for _, to := range allowed {
			listed[to] = true
			if !IsValidTransition(from, to) {
				t.Errorf("%s -> %s listed but not valid", from, to)
			}
		}
		for _, to := range Statuses() {
			if !listed[to] && IsValidTransition(from, to) {
				t.Errorf("%s -> %s valid but not listed", from, to)
			}
		}
	}
}

func TestEveryStatusHasAWayOut(t *testing.T) {
	for _, st := range Statuses() {
		if len(AllowedTransitions(st)) == 0 {
			t.Errorf("status %q is a dead end", st)
		}
	}
}

func TestSearchWaitingFindsOnlyWaitingRoom(t *testing.T) {
	got, err := Set.Search("waiting", status.LocaleUS)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(got, []Status{OnWaitingRoom}) {
		t.Errorf("Search(\"waiting\") = %v, want [on_waiting_room]", got)
	}
}

func TestNoOtherStatusTextMentionsWaiting(t *testing.T) {
	// Guards the search scenario above against future wording changes.
	for st, m := range Set.AllMetadata() {
		if st == OnWaitingRoom {
			continue
		}
		for _, text := range []string{m.Short[status.LocaleUS], m.Long[status.LocaleUS], m.Description[status.LocaleUS]} {
			if strings.Contains(strings.ToLower(text), "waiting") {
				t.Errorf("us-EN text of %q mentions \"waiting\": %q", st, text)
			}
		}
	}
}

func TestGroupByColor(t *testing.T) {
	groups := Set.GroupByColor()

	if !reflect.DeepEqual(groups["#4CAF50"], []Status{Completed}) {
		t.Errorf("unexpected #4CAF50 group: %v", groups["#4CAF50"])
	}

	seen := make(map[Status]int)
	for _, members := range groups {
		for _, st := range members {
			seen[st]++
		}
	}
	for _, st := range Statuses() {
		if seen[st] != 1 {
			t.Errorf("status %q appears %d times across color groups, want exactly once", st, seen[st])
		}
	}
}

func TestWaitingRoomLabels(t *testing.T) {
	short, err := Set.Label(OnWaitingRoom, status.LocaleUS, status.FormatShort)
	if err != nil {
		t.Fatalf("Label failed: %v", err)
	}
	if short != "Waiting" {
		t.Errorf("short label = %q, want \"Waiting\"", short)
	}

	long, err := Set.Label(OnWaitingRoom, status.LocaleUS, status.FormatLong)
	if err != nil {
		t.Fatalf("Label failed: %v", err)
	}
	if long != "In Waiting Room" {
		t.Errorf("long label = %q, want \"In Waiting Room\"", long)
	}
}

func TestLocaleAndFormatClosure(t *testing.T) {
	if _, err := Set.Label(Pending, "en-GB", status.FormatShort); err == nil {
		t.Error("expected error for unsupported locale")
	}
	if _, err := Set.Label(Pending, status.LocaleUS, "tiny"); err == nil {
		t.Error("expected error for unsupported format")
	}
	if _, err := Set.Description(Pending, "en-GB"); err == nil {
		t.Error("expected error for unsupported locale")
	}
}
