package scoring_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentlens/growthboard/internal/domain/model"
	"github.com/talentlens/growthboard/internal/domain/scoring"
)

func TestExplain(t *testing.T) {
	Convey("Given the sample snapshot", t, func() {
		m := sampleMetrics()
		w := scoring.DefaultWeights()

		Convey("When generating the explanation", func() {
			explanation, err := scoring.Explain(m, w)
			So(err, ShouldBeNil)

			Convey("Then the two highest factors are reported as strengths", func() {
				So(explanation.Strengths, ShouldHaveLength, 2)
				So(explanation.Strengths[0].Factor, ShouldEqual, scoring.InnovationMindset) // 100
				So(explanation.Strengths[1].Factor, ShouldEqual, scoring.Adaptability)      // 98
			})

			Convey("And the two lowest factors are reported as gaps, worst first", func() {
				So(explanation.Gaps, ShouldHaveLength, 2)
				So(explanation.Gaps[0].Factor, ShouldEqual, scoring.LearningAgility)  // 88
				So(explanation.Gaps[1].Factor, ShouldEqual, scoring.SkillProgression) // 90.9
			})

			Convey("And each entry carries its numeric score", func() {
				So(explanation.Strengths[0].Score, ShouldEqual, 100)
				So(explanation.Gaps[0].Score, ShouldEqual, 88)
			})

			Convey("And the summary names the tier", func() {
				So(explanation.Summary, ShouldContainSubstring, "Exceptional")
			})
		})

		Convey("When weights are invalid", func() {
			bad := scoring.DefaultWeights()
			bad[scoring.Adaptability] = 0

			_, err := scoring.Explain(m, bad)
			So(err, ShouldWrap, scoring.ErrInvalidWeights)
		})
	})
}

func TestExplainTieBreaking(t *testing.T) {
	Convey("Given a snapshot where three factors tie at zero", t, func() {
		// Only learning-agility and skill-progression inputs are set;
		// adaptability, innovation, and feedback all score 0.
		m := model.Metrics{
			Certifications:   1,
			CoursesCompleted: 1,
			LearningVelocity: 10,
		}
		w := scoring.DefaultWeights()

		Convey("When explaining repeatedly", func() {
			first, err := scoring.Explain(m, w)
			So(err, ShouldBeNil)

			Convey("Then tied gaps appear in canonical factor order", func() {
				So(first.Gaps[0].Factor, ShouldEqual, scoring.Adaptability)
				So(first.Gaps[1].Factor, ShouldEqual, scoring.InnovationMindset)
			})

			Convey("And every repetition produces identical output", func() {
				for i := 0; i < 20; i++ {
					again, err := scoring.Explain(m, w)
					So(err, ShouldBeNil)
					So(again, ShouldResemble, first)
				}
			})
		})
	})
}
