// Package model contains domain models passed between layers.
package model

import (
	"fmt"
	"sort"
)

// Metrics is an immutable snapshot of the raw inputs feeding the five
// growth-potential factors. Values are non-negative counts or small
// interview ratings; factor formulas clamp them to realistic caps.
type Metrics struct {
	// Learning agility inputs.
	Certifications   float64 `json:"certifications"`
	CoursesCompleted float64 `json:"courses_completed"`
	LearningVelocity float64 `json:"learning_velocity"` // months between skill acquisitions, lower is better

	// Skill progression inputs.
	RoleTransitions  float64 `json:"role_transitions"`
	TechStackBreadth float64 `json:"tech_stack_breadth"`
	SeniorityGrowth  float64 `json:"seniority_growth"` // years to reach current level, lower is better

	// Adaptability inputs.
	IndustrySwitches  float64 `json:"industry_switches"`
	DomainPivots      float64 `json:"domain_pivots"`
	ChallengeResponse float64 `json:"challenge_response"` // behavioral interview rating, 0-10

	// Innovation mindset inputs.
	SideProjects        float64 `json:"side_projects"`
	Contributions       float64 `json:"contributions"`
	PatentsPublications float64 `json:"patents_publications"`

	// Feedback integration inputs.
	PerformanceImprovements float64 `json:"performance_improvements"`
	MentorshipSought        float64 `json:"mentorship_sought"` // 0-10
	SelfAwareness           float64 `json:"self_awareness"`    // 0-10
}

// metricFields maps recognized override keys to accessors on Metrics.
// Keys match the JSON wire names.
var metricFields = map[string]struct {
	get func(*Metrics) float64
	set func(*Metrics, float64)
}{
	"certifications":           {func(m *Metrics) float64 { return m.Certifications }, func(m *Metrics, v float64) { m.Certifications = v }},
	"courses_completed":        {func(m *Metrics) float64 { return m.CoursesCompleted }, func(m *Metrics, v float64) { m.CoursesCompleted = v }},
	"learning_velocity":        {func(m *Metrics) float64 { return m.LearningVelocity }, func(m *Metrics, v float64) { m.LearningVelocity = v }},
	"role_transitions":         {func(m *Metrics) float64 { return m.RoleTransitions }, func(m *Metrics, v float64) { m.RoleTransitions = v }},
	"tech_stack_breadth":       {func(m *Metrics) float64 { return m.TechStackBreadth }, func(m *Metrics, v float64) { m.TechStackBreadth = v }},
	"seniority_growth":         {func(m *Metrics) float64 { return m.SeniorityGrowth }, func(m *Metrics, v float64) { m.SeniorityGrowth = v }},
	"industry_switches":        {func(m *Metrics) float64 { return m.IndustrySwitches }, func(m *Metrics, v float64) { m.IndustrySwitches = v }},
	"domain_pivots":            {func(m *Metrics) float64 { return m.DomainPivots }, func(m *Metrics, v float64) { m.DomainPivots = v }},
	"challenge_response":       {func(m *Metrics) float64 { return m.ChallengeResponse }, func(m *Metrics, v float64) { m.ChallengeResponse = v }},
	"side_projects":            {func(m *Metrics) float64 { return m.SideProjects }, func(m *Metrics, v float64) { m.SideProjects = v }},
	"contributions":            {func(m *Metrics) float64 { return m.Contributions }, func(m *Metrics, v float64) { m.Contributions = v }},
	"patents_publications":     {func(m *Metrics) float64 { return m.PatentsPublications }, func(m *Metrics, v float64) { m.PatentsPublications = v }},
	"performance_improvements": {func(m *Metrics) float64 { return m.PerformanceImprovements }, func(m *Metrics, v float64) { m.PerformanceImprovements = v }},
	"mentorship_sought":        {func(m *Metrics) float64 { return m.MentorshipSought }, func(m *Metrics, v float64) { m.MentorshipSought = v }},
	"self_awareness":           {func(m *Metrics) float64 { return m.SelfAwareness }, func(m *Metrics, v float64) { m.SelfAwareness = v }},
}

// MetricFieldNames returns the recognized metric field names, sorted.
func MetricFieldNames() []string {
	names := make([]string, 0, len(metricFields))
	for name := range metricFields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Field returns the value of a metric field by wire name.
func (m Metrics) Field(name string) (float64, error) {
	f, ok := metricFields[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return f.get(&m), nil
}

// WithOverrides returns a copy of m with the given fields replaced.
// The receiver is never modified; unknown keys fail with ErrUnknownField
// and negative values with ErrNegativeValue, leaving no partial result.
func (m Metrics) WithOverrides(overrides map[string]float64) (Metrics, error) {
	next := m
	for name, value := range overrides {
		f, ok := metricFields[name]
		if !ok {
			return Metrics{}, fmt.Errorf("%w: %q", ErrUnknownField, name)
		}
		if value < 0 {
			return Metrics{}, fmt.Errorf("%w: %s = %v", ErrNegativeValue, name, value)
		}
		f.set(&next, value)
	}
	return next, nil
}

// TimelineEvent is a single entry in a candidate's career history.
type TimelineEvent struct {
	Year           int    `json:"year"`
	Event          string `json:"event"`
	Type           string `json:"type"` // role, certification, or achievement
	SeniorityLevel int    `json:"seniority_level"`
}

// Candidate is one assessed profile with its raw metrics and history.
type Candidate struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	Role            string          `json:"role"`
	ExperienceYears int             `json:"experience_years"`
	Background      string          `json:"background"`
	Metrics         Metrics         `json:"metrics"`
	Timeline        []TimelineEvent `json:"timeline"`
}
