package stats

import "github.com/samber/lo"

// Entry is a value together with how often it occurred.
type Entry struct {
	Value string
	Count int
}

// FrequencyMap counts occurrences of text values. It remembers the order in
// which values were first seen so that MostCommon is stable across runs.
type FrequencyMap struct {
	counts map[string]int
	order  []string
}

func NewFrequencyMap() *FrequencyMap {
	return &FrequencyMap{counts: make(map[string]int)}
}

func (m *FrequencyMap) Add(value string) {
	if _, ok := m.counts[value]; !ok {
		m.order = append(m.order, value)
	}
	m.counts[value]++
}

func (m *FrequencyMap) Count(value string) int {
	return m.counts[value]
}

func (m *FrequencyMap) Len() int {
	return len(m.order)
}

// MostCommon returns the value with the highest count. Among equal counts the
// value seen first wins.
func (m *FrequencyMap) MostCommon() (Entry, bool) {
	if len(m.order) == 0 {
		return Entry{}, false
	}

	value := lo.MaxBy(m.order, func(a, b string) bool {
		return m.counts[a] > m.counts[b]
	})

	return Entry{Value: value, Count: m.counts[value]}, true
}
