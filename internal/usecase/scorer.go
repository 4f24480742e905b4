package usecase

import (
	"log"
	"math"
	"sort"

	"github.com/reposcore/reposcore/internal/domain"
)

// Weights for the four credit components, in fixed priority order:
// feature/bug PRs outrank documentation PRs and feature/bug issues,
// which outrank documentation issues.
const (
	weightFeatBugPR     = 3
	weightDocumentPR    = 2
	weightFeatBugIssue  = 2
	weightDocumentIssue = 1
)

// Caps on credited volume. Documentation PRs count up to three times the
// feature/bug PR count (with a floor of one, so pure documentation work
// still earns up to three). Issue credit counts up to four times the
// validated PR credit, so issue activity alone cannot carry a score.
const (
	docPRCapMultiplier = 3
	issueCapMultiplier = 4
)

// Scorer converts per-participant activity counts into weighted scores and
// participation rates. It is a pure function of its input: no I/O, no state.
type Scorer struct {
	logger *log.Logger
}

// NewScorer creates a new Scorer instance.
func NewScorer(logger *log.Logger) *Scorer {
	return &Scorer{logger: logger}
}

// Score computes a breakdown for every participant in the set and returns
// the table sorted by total descending. Participants with equal totals keep
// their first-seen order. Each rate is the participant's share of the sum of
// all totals in percent, rounded to one decimal; when the sum is zero every
// rate is zero.
func (s *Scorer) Score(set *domain.ActivitySet) []domain.ParticipantScore {
	participants := set.Participants()
	s.logger.Printf("Usecase: Scoring %d participants...\n", len(participants))

	scores := make([]domain.ParticipantScore, 0, len(participants))
	totalSum := 0
	for _, name := range participants {
		breakdown := scoreCounts(set.Counts(name))
		totalSum += breakdown.Total
		scores = append(scores, domain.ParticipantScore{Name: name, ScoreBreakdown: breakdown})
	}

	if totalSum > 0 {
		for i := range scores {
			scores[i].Rate = roundRate(100 * float64(scores[i].Total) / float64(totalSum))
		}
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Total > scores[j].Total
	})

	s.logger.Println("Usecase: Scoring complete.")
	return scores
}

// scoreCounts applies the capping and weighting rules to one participant.
func scoreCounts(raw domain.ActivityCounts) domain.ScoreBreakdown {
	c := raw.Normalized()

	pFB := c.PREnhancement + c.PRBug
	pD := c.PRDocumentation
	iFB := c.IssueEnhancement + c.IssueBug
	iD := c.IssueDocumentation

	pValid := pFB + min(pD, docPRCapMultiplier*max(1, pFB))
	iValid := min(iFB+iD, issueCapMultiplier*pValid)

	pFBAt := min(pFB, pValid)
	// The documentation remainder is taken against the raw feature/bug
	// count, not the allocated one. pValid >= pFB always holds, so this
	// is exactly the credited documentation volume; subtracting pFBAt
	// instead would double-count whenever pFBAt < pFB.
	pDAt := pValid - pFB

	iFBAt := min(iFB, iValid)
	iDAt := iValid - iFBAt

	breakdown := domain.ScoreBreakdown{
		FeatBugPR:     weightFeatBugPR * pFBAt,
		DocumentPR:    weightDocumentPR * pDAt,
		FeatBugIssue:  weightFeatBugIssue * iFBAt,
		DocumentIssue: weightDocumentIssue * iDAt,
	}
	breakdown.Total = breakdown.FeatBugPR + breakdown.DocumentPR + breakdown.FeatBugIssue + breakdown.DocumentIssue
	return breakdown
}

// roundRate rounds to one decimal place, half away from zero.
func roundRate(v float64) float64 {
	return math.Round(v*10) / 10
}
