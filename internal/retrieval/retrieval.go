// Package retrieval indexes syllabus content and answers keyword queries
// over it. The index is built from built-in syllabus outlines per board,
// grade and subject; scoring is plain term matching so results are fully
// deterministic.
package retrieval

import (
	"sort"
	"strings"
)

// DefaultTopK bounds query results when the caller passes topK <= 0.
const DefaultTopK = 5

// maxTopics caps the topic list extracted from a syllabus.
const maxTopics = 20

// Chunk is one indexed piece of syllabus content.
type Chunk struct {
	Text    string `json:"text"`
	Board   string `json:"board"`
	Grade   string `json:"grade"`
	Subject string `json:"subject"`
}

// Result is a chunk with its relevance score for a query.
type Result struct {
	Chunk
	Score float64 `json:"score"`
}

// Filters restricts a query to matching chunks. Empty fields match
// everything. Matching is case-insensitive.
type Filters struct {
	Board   string
	Grade   string
	Subject string
}

func (f Filters) match(c Chunk) bool {
	if f.Board != "" && !strings.EqualFold(f.Board, c.Board) {
		return false
	}
	if f.Grade != "" && !strings.EqualFold(f.Grade, c.Grade) {
		return false
	}
	if f.Subject != "" && !strings.EqualFold(f.Subject, c.Subject) {
		return false
	}
	return true
}

// Index holds the searchable syllabus chunks.
type Index struct {
	chunks []Chunk
}

// Boards lists the education boards the built-in syllabi cover.
func Boards() []string {
	return []string{"CBSE", "ICSE", "Karnataka State Board"}
}

// Grades lists the grades the built-in syllabi cover.
func Grades() []string {
	return []string{"5th", "6th", "7th", "8th"}
}

// NewIndex builds an index seeded with the built-in syllabus outlines for
// every board, grade and subject combination.
func NewIndex() *Index {
	idx := &Index{}
	for _, board := range Boards() {
		for _, grade := range Grades() {
			for subject := range syllabusTemplates {
				idx.AddDocument(board, grade, subject, renderSyllabus(board, grade, subject))
			}
		}
	}
	return idx
}

// AddDocument splits a syllabus document into section chunks and indexes
// them. Sections are separated by blank lines.
func (idx *Index) AddDocument(board, grade, subject, text string) {
	for _, section := range strings.Split(text, "\n\n") {
		section = strings.TrimSpace(section)
		if section == "" {
			continue
		}
		idx.chunks = append(idx.chunks, Chunk{
			Text:    section,
			Board:   board,
			Grade:   grade,
			Subject: subject,
		})
	}
}

// Size returns the number of indexed chunks.
func (idx *Index) Size() int {
	return len(idx.chunks)
}

// Query scores every chunk passing the filters against the query terms
// and returns the topK best matches, highest score first. Chunks with no
// matching term are omitted. Equal scores keep index order.
func (idx *Index) Query(query string, filters Filters, topK int) []Result {
	if topK <= 0 {
		topK = DefaultTopK
	}

	terms := tokenize(query)
	if len(terms) == 0 {
		return nil
	}

	var results []Result
	for _, c := range idx.chunks {
		if !filters.match(c) {
			continue
		}
		score := scoreChunk(c.Text, terms)
		if score == 0 {
			continue
		}
		results = append(results, Result{Chunk: c, Score: score})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// Topics extracts heading lines (chapter, unit, topic, lesson) from the
// syllabus matching the filters. The list is sorted and capped.
func (idx *Index) Topics(board, grade, subject string) []string {
	filters := Filters{Board: board, Grade: grade, Subject: subject}
	seen := make(map[string]bool)

	for _, c := range idx.chunks {
		if !filters.match(c) {
			continue
		}
		for _, line := range strings.Split(c.Text, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || len(line) >= 100 {
				continue
			}
			if isHeading(line) {
				seen[line] = true
			}
		}
	}

	topics := make([]string, 0, len(seen))
	for t := range seen {
		topics = append(topics, t)
	}
	sort.Strings(topics)
	if len(topics) > maxTopics {
		topics = topics[:maxTopics]
	}
	return topics
}

func isHeading(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range []string{"chapter", "unit", "topic", "lesson", "part"} {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// scoreChunk counts query term occurrences, normalized by chunk length so
// short focused sections outrank long ones with a stray mention.
func scoreChunk(text string, terms []string) float64 {
	words := tokenize(text)
	if len(words) == 0 {
		return 0
	}

	counts := make(map[string]int, len(words))
	for _, w := range words {
		counts[w]++
	}

	matched := 0
	for _, t := range terms {
		matched += counts[t]
	}
	if matched == 0 {
		return 0
	}
	return float64(matched) / float64(len(words))
}

func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
