package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	_ "embed"

	"github.com/google/uuid"

	"github.com/talentlens/growthboard/internal/ai"
	"github.com/talentlens/growthboard/pkg/logger"
)

type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

//go:embed prompt.md
var promptTemplate string

// Matcher asks Gemini whether a resume fits a scored candidate profile and
// parses the JSON verdict.
type Matcher struct {
	generator contentGenerator
	minScore  float64
	log       logger.Logger
}

// NewMatcher builds a Matcher. A minScore above zero forces fit=false for
// verdicts scoring below it.
func NewMatcher(generator contentGenerator, log logger.Logger, minScore float64) *Matcher {
	return &Matcher{
		generator: generator,
		minScore:  minScore,
		log:       log,
	}
}

// Evaluate sends the resume and candidate report to the model and returns
// the parsed assessment.
func (m *Matcher) Evaluate(ctx context.Context, resume string, candidateJSON string) (*ai.FitAssessment, error) {
	if strings.TrimSpace(resume) == "" {
		return nil, errors.New("resume text is required")
	}
	if strings.TrimSpace(candidateJSON) == "" {
		return nil, errors.New("candidate report is required")
	}

	prompt := buildPrompt(resume, candidateJSON)
	m.log.Debug(ctx, "gemini generate content request",
		logger.Int("prompt_length", len(prompt)),
	)

	raw, err := m.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	m.log.Debug(ctx, "gemini generate content response",
		logger.Int("response_length", len(raw)),
	)

	assessment, err := parseResponse(raw)
	if err != nil {
		return nil, err
	}

	if m.minScore > 0 && !math.IsNaN(assessment.Score) && assessment.Score < m.minScore {
		m.log.Debug(ctx, "set fit to false by score threshold",
			logger.Float64("score", assessment.Score),
			logger.Float64("threshold", m.minScore),
		)
		assessment.Fit = false
	}

	assessment.ID = uuid.NewString()
	assessment.Raw = raw
	return assessment, nil
}

func buildPrompt(resume, candidateJSON string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Candidate report:\n{{CANDIDATE_JSON}}\n\nResume:\n{{RESUME_TEXT}}\n\nJSON Response:"
	}
	prompt := strings.ReplaceAll(template, "{{CANDIDATE_JSON}}", candidateJSON)
	return strings.ReplaceAll(prompt, "{{RESUME_TEXT}}", resume)
}

func parseResponse(raw string) (*ai.FitAssessment, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	score := coerceFloat(data["score"])
	if math.IsNaN(score) {
		score = 0
	}

	return &ai.FitAssessment{
		Fit:     coerceBool(data["fit"]),
		Score:   score,
		Reason:  coerceString(data["reason"]),
		Message: coerceString(data["message"]),
	}, nil
}

// extractJSON strips markdown code fences the model sometimes wraps its
// verdict in.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceBool(v any) bool {
	switch val := v.(type) {
	case bool:
		return val
	case string:
		lower := strings.ToLower(strings.TrimSpace(val))
		return lower == "true" || lower == "yes"
	case float64:
		return val != 0
	default:
		return false
	}
}

func coerceFloat(v any) float64 {
	switch val := v.(type) {
	case float64:
		return val
	case int:
		return float64(val)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return math.NaN()
		}
		return f
	default:
		return math.NaN()
	}
}

func coerceString(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case fmt.Stringer:
		return strings.TrimSpace(val.String())
	default:
		if v == nil {
			return ""
		}
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
