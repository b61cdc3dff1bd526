package quizbank

import (
	"sort"
	"strings"

	"github.com/abhisek/vidya/internal/adaptive"
)

// bank holds the curated question pool with precomputed indices.
type bank struct {
	questions []Question
	bySubject map[string][]Question
	byKey     map[subjectGrade][]Question
	subjects  []string
}

type subjectGrade struct {
	subject string
	grade   string
}

// canonicalSubject maps a subject to its lookup key. Keys are lowercase;
// "Social Studies" collapses to "social" so the bank, syllabus index, and
// API payloads all speak the same vocabulary.
func canonicalSubject(subject string) string {
	s := strings.ToLower(strings.TrimSpace(subject))
	if s == "social studies" {
		return "social"
	}
	return s
}

// b is the package-level bank singleton, set by init() in seed.go.
var b *bank

// buildBank constructs the bank and its indices from a slice of questions.
// It panics on an invalid seed; the catalog is compile-time data and a bad
// entry is a programming error.
func buildBank(entries []seedEntry) *bank {
	bk := &bank{
		bySubject: make(map[string][]Question),
		byKey:     make(map[subjectGrade][]Question),
	}

	for _, e := range entries {
		subject := canonicalSubject(e.subject)
		for _, q := range e.questions {
			if err := q.Validate(); err != nil {
				panic("quizbank: " + err.Error())
			}
			bk.questions = append(bk.questions, q)
			bk.bySubject[subject] = append(bk.bySubject[subject], q)
			key := subjectGrade{subject: subject, grade: e.grade}
			bk.byKey[key] = append(bk.byKey[key], q)
		}
	}

	for s := range bk.bySubject {
		bk.subjects = append(bk.subjects, s)
	}
	sort.Strings(bk.subjects)

	return bk
}

// Subjects returns all subjects with curated questions, sorted.
func Subjects() []string {
	out := make([]string, len(b.subjects))
	copy(out, b.subjects)
	return out
}

// Get returns the curated questions for a subject and grade. The returned
// slice is a copy; callers may reorder it freely. An unknown combination
// yields an empty slice, never an error — the quiz builder degrades through
// its fallback chain instead.
func Get(subject, grade string) []Question {
	qs := b.byKey[subjectGrade{subject: canonicalSubject(subject), grade: grade}]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// GetByDifficulty returns the subject+grade pool filtered to one tier.
func GetByDifficulty(subject, grade string, difficulty adaptive.Difficulty) []Question {
	var out []Question
	for _, q := range b.byKey[subjectGrade{subject: canonicalSubject(subject), grade: grade}] {
		if q.Difficulty == difficulty {
			out = append(out, q)
		}
	}
	return out
}

// GetSubject returns every curated question for a subject across all grades.
// This is the degraded-availability pool used when a grade has no questions.
func GetSubject(subject string) []Question {
	qs := b.bySubject[canonicalSubject(subject)]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// Topics returns the distinct topic labels for a subject and grade, sorted.
func Topics(subject, grade string) []string {
	seen := make(map[string]bool)
	for _, q := range b.byKey[subjectGrade{subject: canonicalSubject(subject), grade: grade}] {
		seen[q.Topic] = true
	}
	out := make([]string, 0, len(seen))
	for topic := range seen {
		out = append(out, topic)
	}
	sort.Strings(out)
	return out
}

// Size returns the total number of curated questions.
func Size() int {
	return len(b.questions)
}
