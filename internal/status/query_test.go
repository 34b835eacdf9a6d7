package status

import (
	"reflect"
	"testing"
)

func TestFilterPreservesOrder(t *testing.T) {
	s := newTestSet(t)

	got := s.Filter(func(m Metadata, st testStatus) bool {
		return st != stClosed
	})
	want := []testStatus{stOpen, stArchive}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter = %v, want %v", got, want)
	}
}

func TestFilterNoMatches(t *testing.T) {
	s := newTestSet(t)

	got := s.Filter(func(Metadata, testStatus) bool { return false })
	if len(got) != 0 {
		t.Errorf("expected no matches, got %v", got)
	}
}

func TestSearchMatchesAnyTextField(t *testing.T) {
	s := newTestSet(t)

	tests := []struct {
		term string
		want []testStatus
	}{
		// short label
		{"archived", []testStatus{stArchive}},
		// long label, case-insensitive
		{"CASE CLOSED", []testStatus{stClosed}},
		// description only
		{"records", []testStatus{stArchive}},
		// across several statuses
		{"case", []testStatus{stOpen, stClosed, stArchive}},
		{"no such text", nil},
	}

	for _, tt := range tests {
		got, err := s.Search(tt.term, LocaleUS)
		if err != nil {
			t.Fatalf("Search(%q) failed: %v", tt.term, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Search(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestSearchEmptyTermMatchesEverything(t *testing.T) {
	s := newTestSet(t)

	got, err := s.Search("", LocaleUS)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !reflect.DeepEqual(got, s.All()) {
		t.Errorf("empty term matched %v, want all statuses", got)
	}
}

func TestSearchUnknownLocale(t *testing.T) {
	s := newTestSet(t)

	_, err := s.Search("open", "pt-BR")
	if err == nil {
		t.Fatal("expected error for unknown locale")
	}
}

func TestMapCoversEveryStatus(t *testing.T) {
	s := newTestSet(t)

	got := Map(s, func(m Metadata, st testStatus) string {
		return m.Icon
	})
	want := map[testStatus]string{
		stOpen:    "folder_open",
		stClosed:  "folder",
		stArchive: "inventory",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Map = %v, want %v", got, want)
	}
}

func TestGroupByColorPartitions(t *testing.T) {
	s := newTestSet(t)

	groups := s.GroupByColor()
	if len(groups) != 3 {
		t.Fatalf("expected 3 color groups, got %d: %v", len(groups), groups)
	}
	if !reflect.DeepEqual(groups["#4CAF50"], []testStatus{stClosed}) {
		t.Errorf("unexpected #4CAF50 group: %v", groups["#4CAF50"])
	}

	// The union of all groups is exactly the status set.
	seen := make(map[testStatus]int)
	for _, members := range groups {
		for _, st := range members {
			seen[st]++
		}
	}
	for _, st := range s.All() {
		if seen[st] != 1 {
			t.Errorf("status %q appears %d times across groups, want exactly once", st, seen[st])
		}
	}
}

func TestGroupByIcon(t *testing.T) {
	s := newTestSet(t)

	groups := s.GroupByIcon()
	if !reflect.DeepEqual(groups["inventory"], []testStatus{stArchive}) {
		t.Errorf("unexpected inventory group: %v", groups["inventory"])
	}
}
