package scoring

import (
	"math"
	"strings"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// Factor names one of the five growth-potential dimensions.
type Factor string

// The five recognized factors, in canonical priority order. The order is
// also the tie-break used when ranking factor scores.
const (
	LearningAgility     Factor = "learning_agility"
	SkillProgression    Factor = "skill_progression"
	Adaptability        Factor = "adaptability"
	InnovationMindset   Factor = "innovation_mindset"
	FeedbackIntegration Factor = "feedback_integration"
)

// Factors returns the canonical factor list. The returned slice is a copy.
func Factors() []Factor {
	return []Factor{
		LearningAgility,
		SkillProgression,
		Adaptability,
		InnovationMindset,
		FeedbackIntegration,
	}
}

// Label renders the factor name for display, e.g. "Learning Agility".
func (f Factor) Label() string {
	parts := strings.Split(string(f), "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// formula computes one factor's 0-100 score from a metrics snapshot.
// Each formula caps its raw inputs, rescales them to point contributions,
// combines them, and the dispatcher clamps the result to [0,100].
type formula func(m model.Metrics) float64

// formulas dispatches factor names uniformly instead of chained
// conditionals. Coefficients are the calibration anchor for the product:
// changing them changes every published score.
var formulas = map[Factor]formula{
	LearningAgility: func(m model.Metrics) float64 {
		cert := math.Min(m.Certifications*15, 40)
		course := math.Min(m.CoursesCompleted*5, 30)
		velocity := math.Max(30-m.LearningVelocity*3, 0)
		return cert + course + velocity
	},
	SkillProgression: func(m model.Metrics) float64 {
		transition := math.Min(m.RoleTransitions*20, 40)
		breadth := math.Min(m.TechStackBreadth*4, 40)
		// Fewer years to the current level means faster progression.
		growth := math.Max(30-m.SeniorityGrowth*2, 10)
		return (transition + breadth + growth) / 110 * 100
	},
	Adaptability: func(m model.Metrics) float64 {
		switches := math.Min(m.IndustrySwitches*25, 50)
		pivots := math.Min(m.DomainPivots*15, 30)
		response := m.ChallengeResponse * 2
		return switches + pivots + response
	},
	InnovationMindset: func(m model.Metrics) float64 {
		projects := math.Min(m.SideProjects*15, 45)
		contributions := math.Min(m.Contributions*8, 35)
		ip := math.Min(m.PatentsPublications*10, 20)
		return projects + contributions + ip
	},
	FeedbackIntegration: func(m model.Metrics) float64 {
		improvements := math.Min(m.PerformanceImprovements*15, 40)
		mentorship := m.MentorshipSought * 3
		awareness := m.SelfAwareness * 3
		return improvements + mentorship + awareness
	},
}
