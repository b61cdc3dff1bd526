// Package revision builds revision summaries and study roadmaps from a
// student's progress. Content generation prefers the configured LLM and
// falls back to built-in templates when no provider is available or the
// call fails.
package revision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/abhisek/vidya/internal/adaptive"
	"github.com/abhisek/vidya/internal/llm"
)

// maxFocusTopics bounds how many weak topics a summary covers.
const maxFocusTopics = 5

// minutesPerTopic drives the recommended study time estimate.
const minutesPerTopic = 15

// NextQuiz is the recommended follow-up quiz after a revision session.
type NextQuiz struct {
	Difficulty adaptive.Difficulty `json:"difficulty"`
	Topics     []string            `json:"topics"`
}

// Summary is a complete revision pack for one subject.
type Summary struct {
	Subject              string            `json:"subject"`
	Grade                string            `json:"grade"`
	FocusTopics          []string          `json:"focus_topics"`
	TopicSummaries       map[string]string `json:"summary"`
	KeyPoints            []string          `json:"key_points"`
	PracticeTips         []string          `json:"practice_tips"`
	RecommendedStudyTime string            `json:"recommended_study_time"`
	NextQuiz             NextQuiz          `json:"next_quiz_recommendation"`

	// Generated reports whether an LLM produced the content. False means
	// the built-in templates were used.
	Generated bool `json:"generated"`
}

// Request selects what to revise. FocusTopics overrides the weak-topic
// selection when set; WeakTopics come from the student's progress record.
type Request struct {
	Subject     string
	Grade       string
	Board       string
	FocusTopics []string
	WeakTopics  []string
	Difficulty  adaptive.Difficulty
}

// Generator produces revision summaries. A nil provider is valid and
// always uses the template path.
type Generator struct {
	provider llm.Provider
}

// NewGenerator creates a Generator backed by the given provider.
func NewGenerator(provider llm.Provider) *Generator {
	return &Generator{provider: provider}
}

// Generate builds a revision summary for the request. The study-time
// estimate and next-quiz recommendation are always computed locally; only
// the prose content comes from the LLM.
func (g *Generator) Generate(ctx context.Context, req Request) Summary {
	focus := req.FocusTopics
	if len(focus) == 0 {
		focus = req.WeakTopics
		if len(focus) > maxFocusTopics {
			focus = focus[:maxFocusTopics]
		}
	}
	if len(focus) == 0 {
		focus = []string{"General Review"}
	}

	difficulty := req.Difficulty
	if !difficulty.Valid() {
		difficulty = adaptive.DifficultyEasy
	}

	s := Summary{
		Subject:              req.Subject,
		Grade:                req.Grade,
		FocusTopics:          focus,
		RecommendedStudyTime: studyTime(len(focus)),
		NextQuiz: NextQuiz{
			Difficulty: difficulty,
			Topics:     firstN(focus, 3),
		},
	}

	if g.provider != nil {
		if content, err := g.generateLLM(ctx, req, focus); err == nil {
			s.TopicSummaries = content.TopicSummaries
			s.KeyPoints = content.KeyPoints
			s.PracticeTips = content.PracticeTips
			s.Generated = true
			return s
		}
	}

	s.TopicSummaries = topicSummaries(req.Subject, focus)
	s.KeyPoints = keyPoints(req.Subject, focus)
	s.PracticeTips = practiceTips(req.Subject)
	return s
}

// llmContent is the structured payload requested from the LLM.
type llmContent struct {
	TopicSummaries map[string]string `json:"topic_summaries"`
	KeyPoints      []string          `json:"key_points"`
	PracticeTips   []string          `json:"practice_tips"`
}

func (g *Generator) generateLLM(ctx context.Context, req Request, focus []string) (*llmContent, error) {
	ctx = llm.WithPurpose(ctx, "revision_summary")

	prompt := fmt.Sprintf(
		"Create revision material for a %s grade student (%s board) studying %s.\n"+
			"Focus topics: %v.\n"+
			"Write one short summary per topic, up to 10 key points, and practical study tips. "+
			"Keep the language simple and encouraging for a school student.",
		req.Grade, req.Board, req.Subject, focus,
	)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System: "You are a study buddy for school students. You explain concepts simply and keep students motivated.",
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: prompt},
		},
		Schema:    revisionSchema(),
		MaxTokens: 1500,
	})
	if err != nil {
		return nil, err
	}

	var content llmContent
	if err := json.Unmarshal(resp.Content, &content); err != nil {
		return nil, fmt.Errorf("decode revision content: %w", err)
	}
	if len(content.TopicSummaries) == 0 {
		return nil, fmt.Errorf("empty revision content")
	}
	return &content, nil
}

func revisionSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "revision-summary",
		Description: "Revision material for a school student: per-topic summaries, key points and practice tips.",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"topic_summaries": map[string]any{
					"type":                 "object",
					"additionalProperties": map[string]any{"type": "string"},
				},
				"key_points": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string"},
					"maxItems": 10,
				},
				"practice_tips": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "string"},
				},
			},
			"required":             []string{"topic_summaries", "key_points", "practice_tips"},
			"additionalProperties": false,
		},
	}
}

func topicSummaries(subject string, topics []string) map[string]string {
	summaries := make(map[string]string, len(topics))
	for _, topic := range topics {
		switch subject {
		case "math":
			summaries[topic] = fmt.Sprintf("Review %s: Practice problems step by step, understand formulas, and solve examples.", topic)
		case "science":
			summaries[topic] = fmt.Sprintf("Study %s: Read concepts, understand processes, and relate to real-world examples.", topic)
		case "social":
			summaries[topic] = fmt.Sprintf("Learn about %s: Remember key facts, dates, and understand cause-and-effect relationships.", topic)
		case "english":
			summaries[topic] = fmt.Sprintf("Practice %s: Read examples, understand rules, and apply in writing and speaking.", topic)
		default:
			summaries[topic] = fmt.Sprintf("Review the key concepts and practice problems related to %s.", topic)
		}
	}
	return summaries
}

func keyPoints(subject string, topics []string) []string {
	var points []string
	for _, topic := range topics {
		switch subject {
		case "math":
			points = append(points,
				fmt.Sprintf("Practice %s problems daily", topic),
				fmt.Sprintf("Understand the logic behind %s formulas", topic),
				fmt.Sprintf("Use visual aids for %s concepts", topic),
			)
		case "science":
			points = append(points,
				fmt.Sprintf("Observe %s in everyday life", topic),
				fmt.Sprintf("Conduct simple experiments related to %s", topic),
				fmt.Sprintf("Draw diagrams to understand %s", topic),
			)
		case "social":
			points = append(points,
				fmt.Sprintf("Make a timeline of events in %s", topic),
				fmt.Sprintf("Relate %s to places and people you know", topic),
			)
		case "english":
			points = append(points,
				fmt.Sprintf("Read a passage using %s every day", topic),
				fmt.Sprintf("Write two sentences applying %s", topic),
			)
		default:
			points = append(points, fmt.Sprintf("Revise your notes on %s", topic))
		}
	}
	return firstN(points, 10)
}

func practiceTips(subject string) []string {
	tips := []string{
		"Study in short, focused sessions (20-30 minutes)",
		"Take breaks between study sessions",
		"Review previous day's learning before starting new topics",
		"Practice explaining concepts out loud",
		"Use flashcards for quick revision",
	}
	switch subject {
	case "math":
		tips = append(tips,
			"Solve problems without looking at solutions first",
			"Check your answers by working backwards",
			"Practice mental math daily",
		)
	case "science":
		tips = append(tips,
			"Connect new concepts to what you already know",
			"Watch educational videos for visual learning",
			"Ask 'why' and 'how' questions",
		)
	}
	return tips
}

// studyTime formats the recommended study duration for n topics.
func studyTime(n int) string {
	total := n * minutesPerTopic
	if total < 60 {
		return fmt.Sprintf("%d minutes", total)
	}
	hours := total / 60
	minutes := total % 60
	if minutes > 0 {
		return fmt.Sprintf("%d hour(s) %d minutes", hours, minutes)
	}
	return fmt.Sprintf("%d hour(s)", hours)
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
