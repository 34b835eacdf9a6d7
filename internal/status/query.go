package status

import "strings"

// Filter returns the statuses whose metadata satisfies the predicate,
// preserving registration order. The predicate must not mutate shared
// state; registry data is read-only.
func (s *Set[S]) Filter(pred func(Metadata, S) bool) []S {
	var out []S
	for _, status := range s.order {
		if pred(s.meta[status], status) {
			out = append(out, status)
		}
	}
	return out
}

// Search returns the statuses whose short label, long label or
// description in the given locale contains the term, compared
// case-insensitively. An empty term matches every status.
func (s *Set[S]) Search(term string, locale Locale) ([]S, error) {
	if !locale.Known() {
		return nil, &UnknownLocaleError{Locale: locale}
	}
	term = strings.ToLower(term)
	matches := s.Filter(func(m Metadata, _ S) bool {
		for _, text := range []Text{m.Short, m.Long, m.Description} {
			if strings.Contains(strings.ToLower(text[locale]), term) {
				return true
			}
		}
		return false
	})
	return matches, nil
}

// Map applies transform to every status in the set and returns the
// results keyed by status. It is a free function because methods
// cannot introduce the result type parameter.
func Map[S ~string, U any](s *Set[S], transform func(Metadata, S) U) map[S]U {
	out := make(map[S]U, len(s.order))
	for _, status := range s.order {
		out[status] = transform(s.meta[status], status)
	}
	return out
}

// GroupByColor partitions the statuses by color token. Within each
// group, statuses appear in registration order.
func (s *Set[S]) GroupByColor() map[string][]S {
	return s.groupBy(func(m Metadata) string { return m.Color })
}

// GroupByIcon partitions the statuses by icon token. Within each
// group, statuses appear in registration order.
func (s *Set[S]) GroupByIcon() map[string][]S {
	return s.groupBy(func(m Metadata) string { return m.Icon })
}

func (s *Set[S]) groupBy(key func(Metadata) string) map[string][]S {
	out := make(map[string][]S)
	for _, status := range s.order {
		k := key(s.meta[status])
		out[k] = append(out[k], status)
	}
	return out
}
