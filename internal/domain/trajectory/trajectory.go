// Package trajectory analyzes career progression extracted from candidate
// timelines: promotion cadence, velocity, and a qualitative pattern.
package trajectory

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/talentlens/growthboard/internal/domain/model"
)

// Timeline event type for role changes.
const eventTypeRole = "role"

// Pattern classification thresholds.
const (
	fastVelocityMin      = 0.4
	steadyVelocityMin    = 0.25
	fastPromotionMaxYrs  = 2.5
	steadyPromotionMin   = 2.0
	steadyPromotionMax   = 4.0
	accelerationUpBand   = 0.8 // recent gaps below 80% of earlier ones
	accelerationDownBand = 1.2
)

// Acceleration classifications.
const (
	Accelerating = "accelerating"
	Decelerating = "decelerating"
	Stable       = "stable"
)

// SeniorityLabels maps timeline seniority levels to display names.
var SeniorityLabels = map[int]string{
	1: "Junior",
	2: "Mid-Level",
	3: "Senior",
	4: "Lead/Staff",
	5: "Principal/Director",
}

// Point is one role change on the seniority ladder.
type Point struct {
	Year  int    `json:"year"`
	Level int    `json:"level"`
	Event string `json:"event"`
}

// Promotion is a level increase between two consecutive role changes.
type Promotion struct {
	FromLevel int    `json:"from_level"`
	ToLevel   int    `json:"to_level"`
	Years     int    `json:"years"`
	FromYear  int    `json:"from_year"`
	ToYear    int    `json:"to_year"`
	FromRole  string `json:"from_role"`
	ToRole    string `json:"to_role"`
}

// Summary bundles every derived trajectory metric for a candidate.
type Summary struct {
	Progression  []Point     `json:"progression"`
	Promotions   []Promotion `json:"promotions"`
	Velocity     float64     `json:"velocity"`
	Acceleration string      `json:"acceleration"`
	Pattern      string      `json:"pattern"`
	Narrative    string      `json:"narrative"`
	CurrentLevel int         `json:"current_level"`
	LevelsGained int         `json:"levels_gained"`
}

// Progression extracts role changes from a timeline, sorted by year.
func Progression(timeline []model.TimelineEvent) []Point {
	points := make([]Point, 0, len(timeline))
	for _, e := range timeline {
		if e.Type != eventTypeRole {
			continue
		}
		level := e.SeniorityLevel
		if level == 0 {
			level = 2
		}
		points = append(points, Point{Year: e.Year, Level: level, Event: e.Event})
	}
	sort.SliceStable(points, func(i, j int) bool { return points[i].Year < points[j].Year })
	return points
}

// Promotions lists the level increases in a progression.
func Promotions(progression []Point) []Promotion {
	var promotions []Promotion
	for i := 0; i+1 < len(progression); i++ {
		cur, next := progression[i], progression[i+1]
		if next.Level <= cur.Level {
			continue
		}
		promotions = append(promotions, Promotion{
			FromLevel: cur.Level,
			ToLevel:   next.Level,
			Years:     next.Year - cur.Year,
			FromYear:  cur.Year,
			ToYear:    next.Year,
			FromRole:  cur.Event,
			ToRole:    next.Event,
		})
	}
	return promotions
}

// Velocity is levels gained per year of experience, two decimals.
func Velocity(progression []Point, experienceYears int) float64 {
	if len(progression) == 0 || experienceYears == 0 {
		return 0
	}
	gained := progression[len(progression)-1].Level - progression[0].Level
	return math.Round(float64(gained)/float64(experienceYears)*100) / 100
}

// AccelerationOf compares recent promotion gaps against earlier ones.
func AccelerationOf(progression []Point) string {
	promotions := Promotions(progression)
	if len(promotions) < 2 {
		return Stable
	}
	recent := meanYears(promotions[len(promotions)-2:])
	earlier := recent
	if len(promotions) > 2 {
		earlier = meanYears(promotions[:len(promotions)-2])
	}
	switch {
	case recent < earlier*accelerationUpBand:
		return Accelerating
	case recent > earlier*accelerationDownBand:
		return Decelerating
	default:
		return Stable
	}
}

// Pattern classifies the trajectory shape.
func Pattern(progression []Point, experienceYears int, promotions []Promotion) string {
	if len(progression) == 0 || len(promotions) == 0 {
		return "Early Career"
	}
	velocity := Velocity(progression, experienceYears)
	avgPromotion := meanYears(promotions)
	totalLevels := progression[len(progression)-1].Level - progression[0].Level

	switch {
	case velocity >= fastVelocityMin && avgPromotion <= fastPromotionMaxYrs:
		return "Fast Riser"
	case velocity >= steadyVelocityMin && velocity < fastVelocityMin &&
		avgPromotion >= steadyPromotionMin && avgPromotion <= steadyPromotionMax:
		return "Steady Climber"
	case totalLevels <= 1 && len(progression) >= 3:
		return "Lateral Explorer"
	case totalLevels == 0:
		return "Specialist"
	case AccelerationOf(progression) == Accelerating:
		return "Late Bloomer"
	case AccelerationOf(progression) == Decelerating:
		return "Plateaued"
	default:
		return "Developing"
	}
}

// Analyze derives the full trajectory summary for a candidate.
func Analyze(c model.Candidate) Summary {
	progression := Progression(c.Timeline)
	promotions := Promotions(progression)
	velocity := Velocity(progression, c.ExperienceYears)
	pattern := Pattern(progression, c.ExperienceYears, promotions)

	s := Summary{
		Progression:  progression,
		Promotions:   promotions,
		Velocity:     velocity,
		Acceleration: AccelerationOf(progression),
		Pattern:      pattern,
		Narrative:    narrative(c.Name, progression, promotions, pattern, velocity, c.ExperienceYears),
	}
	if len(progression) > 0 {
		s.CurrentLevel = progression[len(progression)-1].Level
		s.LevelsGained = progression[len(progression)-1].Level - progression[0].Level
	}
	return s
}

// narrative renders the trajectory as prose for the candidate report.
func narrative(name string, progression []Point, promotions []Promotion, pattern string, velocity float64, experienceYears int) string {
	if len(progression) == 0 {
		return "Insufficient career history data."
	}

	start := seniorityLabel(progression[0].Level)
	current := seniorityLabel(progression[len(progression)-1].Level)
	gained := progression[len(progression)-1].Level - progression[0].Level

	var b strings.Builder
	fmt.Fprintf(&b, "Career trajectory: %s. ", pattern)
	fmt.Fprintf(&b, "%s started as a %s professional and is currently at the %s level, advancing %d %s over %d years. ",
		name, start, current, gained, plural(gained, "level", "levels"), experienceYears)

	switch {
	case velocity >= fastVelocityMin:
		fmt.Fprintf(&b, "A trajectory velocity of %.2f levels/year represents exceptional career acceleration, significantly faster than industry averages.", velocity)
	case velocity >= steadyVelocityMin:
		fmt.Fprintf(&b, "A trajectory velocity of %.2f levels/year shows solid career progression at a healthy pace.", velocity)
	default:
		fmt.Fprintf(&b, "A trajectory velocity of %.2f levels/year indicates steady, measured growth with a focus on skill deepening.", velocity)
	}

	if len(promotions) > 0 {
		b.WriteString(" Promotion history:")
		for _, p := range promotions {
			fmt.Fprintf(&b, " %d-%d (%d %s) %s to %s;",
				p.FromYear, p.ToYear, p.Years, plural(p.Years, "year", "years"),
				seniorityLabel(p.FromLevel), seniorityLabel(p.ToLevel))
		}
		avg := meanYears(promotions)
		fmt.Fprintf(&b, " average time between promotions is %.1f years, %s", avg, promotionPaceNote(avg))
	}
	return b.String()
}

func promotionPaceNote(avgYears float64) string {
	switch {
	case avgYears <= 2:
		return "exceptionally fast and well above market pace."
	case avgYears <= 3:
		return "faster than typical industry standards."
	case avgYears <= 5:
		return "in line with standard career progression timelines."
	default:
		return "suggesting a focus on mastery before advancement."
	}
}

func seniorityLabel(level int) string {
	if label, ok := SeniorityLabels[level]; ok {
		return label
	}
	return "Unknown"
}

func meanYears(promotions []Promotion) float64 {
	if len(promotions) == 0 {
		return 0
	}
	var total float64
	for _, p := range promotions {
		total += float64(p.Years)
	}
	return total / float64(len(promotions))
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
