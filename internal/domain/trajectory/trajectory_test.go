package trajectory_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentlens/growthboard/internal/domain/model"
	"github.com/talentlens/growthboard/internal/domain/trajectory"
)

func engineerTimeline() []model.TimelineEvent {
	return []model.TimelineEvent{
		{Year: 2019, Event: "Joined as Junior Frontend Dev", Type: "role", SeniorityLevel: 1},
		{Year: 2020, Event: "AWS Certified Solutions Architect", Type: "certification", SeniorityLevel: 1},
		{Year: 2020, Event: "Transitioned to Full-Stack", Type: "role", SeniorityLevel: 2},
		{Year: 2021, Event: "Led migration to microservices", Type: "achievement", SeniorityLevel: 2},
		{Year: 2022, Event: "Promoted to Senior Engineer", Type: "role", SeniorityLevel: 3},
	}
}

func TestProgression(t *testing.T) {
	Convey("Given a mixed timeline", t, func() {
		timeline := engineerTimeline()

		Convey("When extracting the progression", func() {
			progression := trajectory.Progression(timeline)

			Convey("Then only role events are kept, sorted by year", func() {
				So(progression, ShouldHaveLength, 3)
				So(progression[0].Year, ShouldEqual, 2019)
				So(progression[0].Level, ShouldEqual, 1)
				So(progression[2].Level, ShouldEqual, 3)
			})
		})

		Convey("When a role event has no seniority level", func() {
			progression := trajectory.Progression([]model.TimelineEvent{
				{Year: 2020, Event: "Engineer", Type: "role"},
			})

			Convey("Then it defaults to mid-level", func() {
				So(progression[0].Level, ShouldEqual, 2)
			})
		})
	})
}

func TestPromotionsAndVelocity(t *testing.T) {
	Convey("Given a three-step progression", t, func() {
		progression := trajectory.Progression(engineerTimeline())

		Convey("When listing promotions", func() {
			promotions := trajectory.Promotions(progression)

			Convey("Then each level increase is captured with its gap", func() {
				So(promotions, ShouldHaveLength, 2)
				So(promotions[0].FromLevel, ShouldEqual, 1)
				So(promotions[0].ToLevel, ShouldEqual, 2)
				So(promotions[0].Years, ShouldEqual, 1)
				So(promotions[1].Years, ShouldEqual, 2)
			})
		})

		Convey("When computing velocity over six years", func() {
			So(trajectory.Velocity(progression, 6), ShouldAlmostEqual, 0.33, 0.001)
		})

		Convey("When the progression is empty or experience is zero", func() {
			So(trajectory.Velocity(nil, 6), ShouldEqual, 0)
			So(trajectory.Velocity(progression, 0), ShouldEqual, 0)
		})
	})
}

func TestPattern(t *testing.T) {
	Convey("Given progressions of different shapes", t, func() {
		Convey("When there are no promotions", func() {
			So(trajectory.Pattern(nil, 5, nil), ShouldEqual, "Early Career")
		})

		Convey("When velocity and cadence are both high", func() {
			progression := []trajectory.Point{
				{Year: 2019, Level: 1, Event: "Junior"},
				{Year: 2020, Level: 2, Event: "Mid"},
				{Year: 2022, Level: 3, Event: "Senior"},
			}
			promotions := trajectory.Promotions(progression)

			Convey("Then the candidate is a Fast Riser", func() {
				// velocity 2/4 = 0.5, average promotion gap 1.5 years
				So(trajectory.Pattern(progression, 4, promotions), ShouldEqual, "Fast Riser")
			})
		})

		Convey("When levels barely move across many roles", func() {
			progression := []trajectory.Point{
				{Year: 2015, Level: 2, Event: "Engineer"},
				{Year: 2017, Level: 2, Event: "Engineer II"},
				{Year: 2020, Level: 3, Event: "Senior"},
			}
			promotions := trajectory.Promotions(progression)

			Convey("Then the candidate is a Lateral Explorer", func() {
				// velocity 1/10 = 0.1, one promotion, total gain 1, 3 roles
				So(trajectory.Pattern(progression, 10, promotions), ShouldEqual, "Lateral Explorer")
			})
		})
	})
}

func TestAnalyze(t *testing.T) {
	Convey("Given a full candidate", t, func() {
		c := model.Candidate{
			Name:            "Sarah Chen",
			ExperienceYears: 6,
			Timeline:        engineerTimeline(),
		}

		Convey("When analyzing the trajectory", func() {
			summary := trajectory.Analyze(c)

			Convey("Then the derived metrics line up", func() {
				So(summary.CurrentLevel, ShouldEqual, 3)
				So(summary.LevelsGained, ShouldEqual, 2)
				So(summary.Velocity, ShouldAlmostEqual, 0.33, 0.001)
				So(summary.Acceleration, ShouldEqual, trajectory.Stable)
				So(summary.Promotions, ShouldHaveLength, 2)
			})

			Convey("And the narrative names the pattern and levels", func() {
				So(summary.Narrative, ShouldContainSubstring, summary.Pattern)
				So(summary.Narrative, ShouldContainSubstring, "Sarah Chen")
				So(summary.Narrative, ShouldContainSubstring, "Junior")
				So(summary.Narrative, ShouldContainSubstring, "Senior")
			})
		})

		Convey("When the candidate has no role history", func() {
			summary := trajectory.Analyze(model.Candidate{Name: "X", ExperienceYears: 2})

			Convey("Then the narrative degrades gracefully", func() {
				So(summary.Narrative, ShouldEqual, "Insufficient career history data.")
				So(summary.Pattern, ShouldEqual, "Early Career")
			})
		})
	})
}
