// Package calc implements the pure score aggregation rules. Functions here
// take rating data and return aggregates; no I/O, no side effects.
//
// Two different weightings are in play, deliberately:
//   - colleague and category scores weight each reviewer equally (a reviewer
//     contributes their own average exactly once, no matter how many
//     questions they answered);
//   - competency scores weight each individual rating equally (a reviewer who
//     answered more questions in a competency has proportionally more
//     influence there).
package calc

import (
	"math"
	"sort"

	assignmentModel "github.com/reviewhub/reviewcycles/internal/assignment/model"
	scoringModel "github.com/reviewhub/reviewcycles/internal/scoring/model"
)

// Label bands for the 1..4 rating scale.
const (
	LabelNotEnoughImpact   = "Not Enough Impact"
	LabelModerateImpact    = "Moderate Impact"
	LabelSignificantImpact = "Significant Impact"
	LabelOutstandingImpact = "Outstanding Impact"
)

var labelByBand = map[int]string{
	1: LabelNotEnoughImpact,
	2: LabelModerateImpact,
	3: LabelSignificantImpact,
	4: LabelOutstandingImpact,
}

// Persisted precision: colleague scores keep 4 decimal places, everything
// else 2. Rounding before storage makes recomputation byte-identical.
const (
	ColleaguePrecision = 4
	DefaultPrecision   = 2
)

// ScoreToBand rounds a score to the nearest integer band, clamped to [1, 4].
// Ties round up (half away from zero; the domain is positive).
func ScoreToBand(score float64) int {
	band := int(math.Round(score))
	if band < 1 {
		return 1
	}
	if band > 4 {
		return 4
	}
	return band
}

// ScoreToLabel maps a score to its band's label.
func ScoreToLabel(score float64) string {
	return labelByBand[ScoreToBand(score)]
}

// ReviewerAverage returns the arithmetic mean of one reviewer's ratings.
// The second return is false when the reviewer submitted no ratings.
func ReviewerAverage(ratings []assignmentModel.Rating) (float64, bool) {
	if len(ratings) == 0 {
		return 0, false
	}
	sum := 0
	for _, rating := range ratings {
		sum += rating.Value
	}
	return float64(sum) / float64(len(ratings)), true
}

// ColleagueScore aggregates completed reviewers into a single score: the mean
// of the per-reviewer averages, rounded to 4 decimal places. Each reviewer
// contributes exactly one value regardless of how many ratings they gave.
// Returns the count of contributing reviewers; ok is false when none
// contribute, in which case no score must be persisted.
func ColleagueScore(reviewers []assignmentModel.CompletedReviewer) (score float64, totalReviewers int, ok bool) {
	sum := 0.0
	for _, reviewer := range reviewers {
		avg, hasRatings := ReviewerAverage(reviewer.Ratings)
		if !hasRatings {
			continue
		}
		sum += avg
		totalReviewers++
	}

	if totalReviewers == 0 {
		return 0, 0, false
	}

	return round(sum/float64(totalReviewers), ColleaguePrecision), totalReviewers, true
}

// CompetencyScores buckets every individual rating from every completed
// reviewer by competency and averages each bucket. Ratings whose question has
// no competency mapping are dropped. Results are sorted by competency id.
func CompetencyScores(
	reviewers []assignmentModel.CompletedReviewer,
	questionToCompetency map[string]string,
) scoringModel.CompetencyScores {
	sums := make(map[string]int)
	counts := make(map[string]int)

	for _, reviewer := range reviewers {
		for _, rating := range reviewer.Ratings {
			competencyID, known := questionToCompetency[rating.QuestionID]
			if !known {
				continue
			}
			sums[competencyID] += rating.Value
			counts[competencyID]++
		}
	}

	scores := make(scoringModel.CompetencyScores, 0, len(sums))
	for competencyID, sum := range sums {
		mean := round(float64(sum)/float64(counts[competencyID]), DefaultPrecision)
		scores = append(scores, scoringModel.CompetencyScore{
			CompetencyID:  competencyID,
			Score:         mean,
			Label:         ScoreToLabel(mean),
			ResponseCount: counts[competencyID],
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		return scores[i].CompetencyID < scores[j].CompetencyID
	})
	return scores
}

// CategoryScores groups completed reviewers by category and averages the
// per-reviewer averages within each group (reviewer-weighted, consistent with
// ColleagueScore). Results follow the canonical category order.
func CategoryScores(reviewers []assignmentModel.CompletedReviewer) scoringModel.CategoryScores {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, reviewer := range reviewers {
		avg, hasRatings := ReviewerAverage(reviewer.Ratings)
		if !hasRatings {
			continue
		}
		sums[reviewer.Category] += avg
		counts[reviewer.Category]++
	}

	scores := make(scoringModel.CategoryScores, 0, len(sums))
	for category, sum := range sums {
		mean := round(sum/float64(counts[category]), DefaultPrecision)
		scores = append(scores, scoringModel.CategoryScore{
			Category:      category,
			Score:         mean,
			Label:         ScoreToLabel(mean),
			ReviewerCount: counts[category],
		})
	}

	sort.Slice(scores, func(i, j int) bool {
		ri, rj := assignmentModel.CategoryRank(scores[i].Category), assignmentModel.CategoryRank(scores[j].Category)
		if ri != rj {
			return ri < rj
		}
		return scores[i].Category < scores[j].Category
	})
	return scores
}

// SelfScore averages an employee's submitted self-assessment ratings, rounded
// to 2 decimal places; nil when nothing was submitted. Reference-only: the
// result never feeds the colleague aggregate.
func SelfScore(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := round(float64(sum)/float64(len(values)), DefaultPrecision)
	return &mean
}

// round rounds half away from zero at the given number of decimal places.
func round(x float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(x*factor) / factor
}
