package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reposcore/reposcore/internal/domain"
)

func sampleScores() []domain.ParticipantScore {
	return []domain.ParticipantScore{
		{Name: "alice", ScoreBreakdown: domain.ScoreBreakdown{
			FeatBugPR: 6, DocumentPR: 12, Total: 18, Rate: 75.0,
		}},
		{Name: "bob", ScoreBreakdown: domain.ScoreBreakdown{
			FeatBugPR: 3, FeatBugIssue: 2, DocumentIssue: 1, Total: 6, Rate: 25.0,
		}},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleScores()))

	expected := "name,feat/bug PR,document PR,feat/bug issue,document issue,total,rate\n" +
		"alice,6,12,0,0,18,75.0\n" +
		"bob,3,0,2,1,6,25.0\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, nil))

	// Header only.
	assert.Equal(t, "name,feat/bug PR,document PR,feat/bug issue,document issue,total,rate\n", buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, sampleScores()))
	out := buf.String()

	// Rows appear in table order with a trailing % on the rate column.
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "75.0%")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "25.0%")
	aliceIdx := strings.Index(out, "alice")
	bobIdx := strings.Index(out, "bob")
	assert.Less(t, aliceIdx, bobIdx)

	// Summary footer over totals 18 and 6.
	assert.Contains(t, out, "participants: 2  mean: 12.0  median: 12.0")
}

func TestWriteTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteTable(&buf, nil))
	assert.NotContains(t, buf.String(), "participants:")
}

func TestWriteChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteChart(&buf, sampleScores()))
	out := buf.String()

	assert.Contains(t, out, "Repository Participation Scores")
	assert.Contains(t, out, "Total Participants: 2")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
}
