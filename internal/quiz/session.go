package quiz

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/vidya/internal/adaptive"
	"github.com/abhisek/vidya/internal/quizbank"
)

// DefaultLength is the number of questions in a quiz unless overridden.
const DefaultLength = 10

// DifficultyAuto asks the builder to resolve the tier from the student's
// progress history before filtering the pool.
const DifficultyAuto = "auto"

// ErrAlreadySubmitted is returned when a session receives a second
// submission. Sessions are single-use.
var ErrAlreadySubmitted = errors.New("quiz session already submitted")

// Session is one generated quiz. Questions are selected once at creation;
// answers are filled exactly once at submission.
type Session struct {
	ID            string
	Grade         string
	Board         string
	Subject       string
	Questions     []quizbank.Question
	UserAnswers   []int
	Score         int
	Difficulty    adaptive.Difficulty
	TopicsCovered []string
	CreatedAt     time.Time
	TimeTaken     float64 // seconds, set at submission

	submitted bool
}

// TotalQuestions returns the number of questions in the session.
func (s *Session) TotalQuestions() int {
	return len(s.Questions)
}

// Submitted reports whether the session has received its submission.
func (s *Session) Submitted() bool {
	return s.submitted
}

// Submit records the student's answers and elapsed time. A session accepts
// exactly one submission; later calls fail without mutating anything.
func (s *Session) Submit(answers []int, timeTaken float64) error {
	if s.submitted {
		return ErrAlreadySubmitted
	}
	s.UserAnswers = answers
	s.TimeTaken = timeTaken
	s.submitted = true
	return nil
}

// Builder assembles quiz sessions from the question bank and the adaptive
// difficulty policy. The random source is injected so selection is
// reproducible in tests.
type Builder struct {
	rng *rand.Rand
	now func() time.Time
}

// NewBuilder creates a Builder with the given random source. A nil source
// gets a time-seeded one.
func NewBuilder(rng *rand.Rand) *Builder {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Builder{rng: rng, now: time.Now}
}

// WithClock overrides the builder's clock. Test-only.
func (b *Builder) WithClock(now func() time.Time) *Builder {
	b.now = now
	return b
}

// Request describes the quiz to build.
type Request struct {
	Grade        string
	Board        string
	Subject      string
	Difficulty   string // tier name or "auto"
	NumQuestions int    // 0 means DefaultLength
	Topics       []string
	History      adaptive.History // progress view for "auto" resolution
}

// Generate builds a new open session. Content gaps never fail the build:
// an empty pool degrades to the all-grades subject pool and finally to a
// single placeholder question.
func (b *Builder) Generate(req Request) *Session {
	numQuestions := req.NumQuestions
	if numQuestions <= 0 {
		numQuestions = DefaultLength
	}

	difficulty := adaptive.Difficulty(req.Difficulty)
	if req.Difficulty == DifficultyAuto || req.Difficulty == "" {
		difficulty = adaptive.NextDifficulty(req.History)
	} else if !difficulty.Valid() {
		difficulty = adaptive.DifficultyEasy
	}

	pool := filterTopics(quizbank.GetByDifficulty(req.Subject, req.Grade, difficulty), req.Topics)
	if len(pool) == 0 {
		pool = filterTopics(quizbank.GetSubject(req.Subject), req.Topics)
	}
	if len(pool) == 0 {
		pool = []quizbank.Question{placeholderQuestion(req.Subject)}
	}

	selected := b.selectQuestions(pool, numQuestions)

	return &Session{
		ID:            newSessionID(b.now()),
		Grade:         req.Grade,
		Board:         req.Board,
		Subject:       req.Subject,
		Questions:     selected,
		Difficulty:    difficulty,
		TopicsCovered: coveredTopics(selected),
		CreatedAt:     b.now(),
	}
}

// selectQuestions picks up to numQuestions from the pool with a topic
// diversity guarantee: every topic contributes at least one question before
// leftovers fill the remaining slots.
func (b *Builder) selectQuestions(pool []quizbank.Question, numQuestions int) []quizbank.Question {
	if len(pool) <= numQuestions {
		out := make([]quizbank.Question, len(pool))
		copy(out, pool)
		return out
	}

	byTopic := make(map[string][]quizbank.Question)
	var topics []string
	for _, q := range pool {
		if _, ok := byTopic[q.Topic]; !ok {
			topics = append(topics, q.Topic)
		}
		byTopic[q.Topic] = append(byTopic[q.Topic], q)
	}
	sort.Strings(topics)

	perTopic := numQuestions / len(topics)
	if perTopic < 1 {
		perTopic = 1
	}

	picked := make(map[string]bool)
	var selected []quizbank.Question
	for _, topic := range topics {
		group := byTopic[topic]
		take := perTopic
		if take > len(group) {
			take = len(group)
		}
		for _, q := range b.sample(group, take) {
			selected = append(selected, q)
			picked[q.ID] = true
		}
	}

	if remaining := numQuestions - len(selected); remaining > 0 {
		var leftover []quizbank.Question
		for _, q := range pool {
			if !picked[q.ID] {
				leftover = append(leftover, q)
			}
		}
		if remaining > len(leftover) {
			remaining = len(leftover)
		}
		selected = append(selected, b.sample(leftover, remaining)...)
	}

	if len(selected) > numQuestions {
		selected = selected[:numQuestions]
	}
	return selected
}

// sample draws n questions without replacement.
func (b *Builder) sample(group []quizbank.Question, n int) []quizbank.Question {
	idx := b.rng.Perm(len(group))
	out := make([]quizbank.Question, 0, n)
	for _, i := range idx[:n] {
		out = append(out, group[i])
	}
	return out
}

func filterTopics(pool []quizbank.Question, topics []string) []quizbank.Question {
	if len(topics) == 0 {
		return pool
	}
	want := make(map[string]bool, len(topics))
	for _, t := range topics {
		want[t] = true
	}
	var out []quizbank.Question
	for _, q := range pool {
		if want[q.Topic] {
			out = append(out, q)
		}
	}
	return out
}

func coveredTopics(questions []quizbank.Question) []string {
	seen := make(map[string]bool)
	var out []string
	for _, q := range questions {
		if !seen[q.Topic] {
			seen[q.Topic] = true
			out = append(out, q.Topic)
		}
	}
	sort.Strings(out)
	return out
}

// placeholderQuestion keeps a session structurally valid when no content
// exists for the subject at all.
func placeholderQuestion(subject string) quizbank.Question {
	return quizbank.Question{
		ID:            "placeholder_1",
		Text:          fmt.Sprintf("This is a sample question for %s. What is your favorite topic in %s?", subject, subject),
		Options:       [quizbank.OptionCount]string{"Option A", "Option B", "Option C", "Option D"},
		CorrectAnswer: 0,
		Explanation:   "This is a sample explanation.",
		Difficulty:    adaptive.DifficultyEasy,
		Topic:         "General",
		Type:          quizbank.TypeMCQ,
	}
}

// newSessionID builds a unique session id: timestamp for readability plus a
// random suffix for uniqueness.
func newSessionID(now time.Time) string {
	return fmt.Sprintf("quiz_%s_%s", now.Format("20060102_150405"), uuid.NewString()[:8])
}
