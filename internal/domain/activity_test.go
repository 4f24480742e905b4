package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryFromLabel(t *testing.T) {
	testCases := []struct {
		label    string
		expected Category
		ok       bool
	}{
		{"enhancement", CategoryEnhancement, true},
		{"Bug", CategoryBug, true},
		{"DOCUMENTATION", CategoryDocumentation, true},
		{"question", "", false},
		{"", "", false},
		{"bugfix", "", false},
	}
	for _, tc := range testCases {
		category, ok := CategoryFromLabel(tc.label)
		assert.Equal(t, tc.ok, ok, "label %q", tc.label)
		assert.Equal(t, tc.expected, category, "label %q", tc.label)
	}
}

func TestActivityCounts_Normalized(t *testing.T) {
	c := ActivityCounts{
		PREnhancement:      -1,
		PRBug:              2,
		PRDocumentation:    -7,
		IssueEnhancement:   0,
		IssueBug:           -3,
		IssueDocumentation: 4,
	}
	assert.Equal(t, ActivityCounts{PRBug: 2, IssueDocumentation: 4}, c.Normalized())

	// Already-normal counts pass through untouched.
	normal := ActivityCounts{PREnhancement: 1, IssueBug: 2}
	assert.Equal(t, normal, normal.Normalized())
}

func TestFold(t *testing.T) {
	events := []ActivityEvent{
		{Participant: "alice", Kind: KindPullRequest, Category: CategoryEnhancement},
		{Participant: "bob", Kind: KindIssue, Category: CategoryDocumentation},
		{Participant: "alice", Kind: KindPullRequest, Category: CategoryEnhancement},
		{Participant: "alice", Kind: KindIssue, Category: CategoryBug},
		{Participant: "bob", Kind: KindPullRequest, Category: CategoryDocumentation},
	}
	set := Fold(events)

	assert.Equal(t, []string{"alice", "bob"}, set.Participants())
	assert.Equal(t, 2, set.Len())
	assert.Equal(t, ActivityCounts{PREnhancement: 2, IssueBug: 1}, set.Counts("alice"))
	assert.Equal(t, ActivityCounts{PRDocumentation: 1, IssueDocumentation: 1}, set.Counts("bob"))

	// Unknown participants read as all-zero counts.
	assert.Equal(t, ActivityCounts{}, set.Counts("nobody"))
}

func TestActivitySet_FirstSeenOrderSurvivesLaterEvents(t *testing.T) {
	set := NewActivitySet()
	set.Add(ActivityEvent{Participant: "late-bloomer", Kind: KindPullRequest, Category: CategoryBug})
	set.Add(ActivityEvent{Participant: "early", Kind: KindIssue, Category: CategoryEnhancement})
	set.Add(ActivityEvent{Participant: "late-bloomer", Kind: KindPullRequest, Category: CategoryEnhancement})

	assert.Equal(t, []string{"late-bloomer", "early"}, set.Participants())
}
