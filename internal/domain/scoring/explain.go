package scoring

import (
	"fmt"
	"sort"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// explainTopN controls how many factors appear on each side of the
// explanation. With five factors, two per side keeps the lists disjoint.
const explainTopN = 2

// FactorRating pairs a factor with its computed score for reporting.
type FactorRating struct {
	Factor Factor  `json:"factor"`
	Score  float64 `json:"score"`
}

// String renders the rating the way the dashboard displays it.
func (r FactorRating) String() string {
	return fmt.Sprintf("%s (%.0f/100)", r.Factor.Label(), r.Score)
}

// Explanation lists a candidate's strongest factors and the ones with the
// most room to develop, plus a tier summary sentence.
type Explanation struct {
	Strengths []FactorRating `json:"strengths"`
	Gaps      []FactorRating `json:"gaps"`
	Summary   string         `json:"summary"`
}

// Explain computes all factor scores and reports the top strengths and
// bottom development areas. Equal scores rank in canonical factor order,
// so repeated calls always produce identical output.
func Explain(m model.Metrics, weights Weights) (Explanation, error) {
	if err := weights.Validate(); err != nil {
		return Explanation{}, err
	}
	scores := FactorScores(m)
	return explainScores(scores, weightedSum(scores, weights)), nil
}

// explainScores builds the explanation from already-computed scores.
func explainScores(scores map[Factor]float64, overall float64) Explanation {
	desc := rankFactors(scores, false)
	asc := rankFactors(scores, true)

	strengths := append([]FactorRating(nil), desc[:explainTopN]...)
	gaps := append([]FactorRating(nil), asc[:explainTopN]...)

	tier := ClassifyTier(overall)
	summary := fmt.Sprintf("%s growth potential (%.1f/100): this candidate demonstrates %s.",
		tier, overall, tierSummaries[tier])

	return Explanation{Strengths: strengths, Gaps: gaps, Summary: summary}
}

// rankFactors orders factor ratings by score, descending or ascending.
// Equal scores keep the canonical factor order, never map-iteration order.
func rankFactors(scores map[Factor]float64, ascending bool) []FactorRating {
	order := Factors()
	ranked := make([]FactorRating, 0, len(order))
	for _, f := range order {
		ranked = append(ranked, FactorRating{Factor: f, Score: scores[f]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score == ranked[j].Score {
			// Stable sort preserves the canonical seeding order.
			return false
		}
		if ascending {
			return ranked[i].Score < ranked[j].Score
		}
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
