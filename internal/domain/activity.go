// Package domain contains the core data structures and domain logic for the application.
package domain

import "strings"

// ActivityKind distinguishes the two kinds of repository activity that earn credit.
type ActivityKind int

const (
	KindPullRequest ActivityKind = iota
	KindIssue
)

// Category is one of the fixed labels that affect scoring.
type Category string

const (
	CategoryEnhancement   Category = "enhancement"
	CategoryBug           Category = "bug"
	CategoryDocumentation Category = "documentation"
)

// CategoryFromLabel maps a raw label name to a scoring category.
// Matching is case-insensitive; labels outside the fixed taxonomy
// return false and earn no credit.
func CategoryFromLabel(name string) (Category, bool) {
	switch Category(strings.ToLower(name)) {
	case CategoryEnhancement:
		return CategoryEnhancement, true
	case CategoryBug:
		return CategoryBug, true
	case CategoryDocumentation:
		return CategoryDocumentation, true
	}
	return "", false
}

// ActivityEvent is a single unit of credited activity: one qualifying
// item (merged PR or counted issue) carrying one matching label.
// An item with several matching labels produces several events.
type ActivityEvent struct {
	Participant string
	Kind        ActivityKind
	Category    Category
}

// ActivityCounts holds the six per-participant label buckets.
type ActivityCounts struct {
	PREnhancement      int `json:"p_enhancement"`
	PRBug              int `json:"p_bug"`
	PRDocumentation    int `json:"p_documentation"`
	IssueEnhancement   int `json:"i_enhancement"`
	IssueBug           int `json:"i_bug"`
	IssueDocumentation int `json:"i_documentation"`
}

// Normalized returns a copy with every negative bucket clamped to zero.
// Malformed input is normalized here rather than rejected, so the scorer
// can rely on all counts being non-negative.
func (c ActivityCounts) Normalized() ActivityCounts {
	clamp := func(n int) int {
		if n < 0 {
			return 0
		}
		return n
	}
	return ActivityCounts{
		PREnhancement:      clamp(c.PREnhancement),
		PRBug:              clamp(c.PRBug),
		PRDocumentation:    clamp(c.PRDocumentation),
		IssueEnhancement:   clamp(c.IssueEnhancement),
		IssueBug:           clamp(c.IssueBug),
		IssueDocumentation: clamp(c.IssueDocumentation),
	}
}

// ActivitySet is the fold target for a stream of activity events.
// It remembers the order in which participants were first observed;
// that order breaks ties when scores are sorted.
type ActivitySet struct {
	order  []string
	counts map[string]ActivityCounts
}

// NewActivitySet returns an empty ActivitySet.
func NewActivitySet() *ActivitySet {
	return &ActivitySet{counts: make(map[string]ActivityCounts)}
}

// Add folds one event into the set, registering the participant on first sight.
func (s *ActivitySet) Add(ev ActivityEvent) {
	c, ok := s.counts[ev.Participant]
	if !ok {
		s.order = append(s.order, ev.Participant)
	}
	switch {
	case ev.Kind == KindPullRequest && ev.Category == CategoryEnhancement:
		c.PREnhancement++
	case ev.Kind == KindPullRequest && ev.Category == CategoryBug:
		c.PRBug++
	case ev.Kind == KindPullRequest && ev.Category == CategoryDocumentation:
		c.PRDocumentation++
	case ev.Kind == KindIssue && ev.Category == CategoryEnhancement:
		c.IssueEnhancement++
	case ev.Kind == KindIssue && ev.Category == CategoryBug:
		c.IssueBug++
	case ev.Kind == KindIssue && ev.Category == CategoryDocumentation:
		c.IssueDocumentation++
	}
	s.counts[ev.Participant] = c
}

// Counts returns the buckets for a participant, or the zero value if the
// participant was never observed.
func (s *ActivitySet) Counts(name string) ActivityCounts {
	return s.counts[name]
}

// Participants returns all observed participants in first-seen order.
func (s *ActivitySet) Participants() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of observed participants.
func (s *ActivitySet) Len() int {
	return len(s.order)
}

// Fold builds an ActivitySet from an immutable event list.
func Fold(events []ActivityEvent) *ActivitySet {
	set := NewActivitySet()
	for _, ev := range events {
		set.Add(ev)
	}
	return set
}
