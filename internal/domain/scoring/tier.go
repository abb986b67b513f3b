package scoring

// Tier is the qualitative bucket for an overall score.
type Tier string

// Tiers, best to worst.
const (
	TierExceptional Tier = "Exceptional"
	TierStrong      Tier = "Strong"
	TierModerate    Tier = "Moderate"
	TierDeveloping  Tier = "Developing"
	TierLimited     Tier = "Limited"
)

// Tier thresholds. Bands are inclusive on the lower bound, so every score
// in [0,100] maps to exactly one tier.
const (
	exceptionalMin = 85
	strongMin      = 70
	moderateMin    = 55
	developingMin  = 40
)

// ClassifyTier maps an overall score onto its tier.
func ClassifyTier(score float64) Tier {
	switch {
	case score >= exceptionalMin:
		return TierExceptional
	case score >= strongMin:
		return TierStrong
	case score >= moderateMin:
		return TierModerate
	case score >= developingMin:
		return TierDeveloping
	default:
		return TierLimited
	}
}

// summary is the one-line reading attached to each tier in explanations.
var tierSummaries = map[Tier]string{
	TierExceptional: "outstanding ability to learn, adapt, and evolve",
	TierStrong:      "solid potential for development and advancement",
	TierModerate:    "a moderate growth trajectory with clear room to build on",
	TierDeveloping:  "room to strengthen their growth trajectory",
	TierLimited:     "limited growth signals in the current record",
}
