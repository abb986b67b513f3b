package gemini

import (
	"context"
	"errors"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/talentlens/growthboard/pkg/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Init(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

type fakeGenerator struct {
	response string
	err      error

	lastPrompt string
}

func (f *fakeGenerator) GenerateContent(_ context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestMatcherEvaluate(t *testing.T) {
	ctx := context.Background()

	Convey("Given a matcher over a fake generator", t, func() {
		gen := &fakeGenerator{response: `{"fit": true, "score": 88, "reason": "strong overlap", "message": "Good match."}`}
		m := NewMatcher(gen, logger.Get(), 0)

		Convey("When evaluating a resume", func() {
			assessment, err := m.Evaluate(ctx, "ten years of Go", `{"id":"sarah-chen"}`)
			So(err, ShouldBeNil)

			Convey("Then the verdict is parsed from the model output", func() {
				So(assessment.Fit, ShouldBeTrue)
				So(assessment.Score, ShouldEqual, 88)
				So(assessment.Reason, ShouldEqual, "strong overlap")
				So(assessment.Message, ShouldEqual, "Good match.")
				So(assessment.ID, ShouldNotBeEmpty)
				So(assessment.Raw, ShouldEqual, gen.response)
			})

			Convey("And the prompt embeds both inputs", func() {
				So(gen.lastPrompt, ShouldContainSubstring, "ten years of Go")
				So(gen.lastPrompt, ShouldContainSubstring, `{"id":"sarah-chen"}`)
				So(gen.lastPrompt, ShouldNotContainSubstring, "{{CANDIDATE_JSON}}")
				So(gen.lastPrompt, ShouldNotContainSubstring, "{{RESUME_TEXT}}")
			})
		})

		Convey("When the model wraps the verdict in a code fence", func() {
			gen.response = "```json\n{\"fit\": false, \"score\": 12, \"reason\": \"different field\"}\n```"

			assessment, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldBeNil)
			So(assessment.Fit, ShouldBeFalse)
			So(assessment.Score, ShouldEqual, 12)
		})

		Convey("When the model returns loosely typed values", func() {
			gen.response = `{"fit": "yes", "score": "73.5", "reason": 42}`

			assessment, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldBeNil)
			So(assessment.Fit, ShouldBeTrue)
			So(assessment.Score, ShouldEqual, 73.5)
			So(assessment.Reason, ShouldEqual, "42")
		})

		Convey("When the model returns something that is not JSON", func() {
			gen.response = "I cannot assess this resume."

			_, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldNotBeNil)
		})

		Convey("When the generator fails", func() {
			gen.err = errors.New("quota exceeded")

			_, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldNotBeNil)
		})

		Convey("When inputs are blank", func() {
			_, err := m.Evaluate(ctx, "  ", "{}")
			So(err, ShouldNotBeNil)

			_, err = m.Evaluate(ctx, "resume", "")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestMatcherThreshold(t *testing.T) {
	ctx := context.Background()

	Convey("Given a matcher with a minimum score of 70", t, func() {
		gen := &fakeGenerator{}
		m := NewMatcher(gen, logger.Get(), 70)

		Convey("When the model says fit but scores below the threshold", func() {
			gen.response = `{"fit": true, "score": 55, "reason": "partial overlap"}`

			assessment, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldBeNil)

			Convey("Then the verdict is forced to no-fit", func() {
				So(assessment.Fit, ShouldBeFalse)
				So(assessment.Score, ShouldEqual, 55)
			})
		})

		Convey("When the score clears the threshold", func() {
			gen.response = `{"fit": true, "score": 82, "reason": "strong"}`

			assessment, err := m.Evaluate(ctx, "resume", "{}")
			So(err, ShouldBeNil)
			So(assessment.Fit, ShouldBeTrue)
		})
	})
}

func TestExtractJSON(t *testing.T) {
	Convey("Given raw model output in different wrappers", t, func() {
		cases := map[string]string{
			`{"fit":true}`:                          `{"fit":true}`,
			"```json\n{\"fit\":true}\n```":          `{"fit":true}`,
			"```\n{\"fit\":true}\n```":              `{"fit":true}`,
			"  \n```json\n{\"fit\":true}\n```\n  ":  `{"fit":true}`,
			"`{\"fit\":true}`":                      `{"fit":true}`,
		}

		Convey("Then the JSON payload is recovered from each", func() {
			for raw, want := range cases {
				So(extractJSON(raw), ShouldEqual, want)
			}
		})
	})
}
