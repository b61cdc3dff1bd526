// Package backend is the facade the CLI and HTTP API talk to. It wires the
// quiz builder, progress tracking, gamification ledger, shop, retrieval
// index and revision generator together, and owns per-student
// serialization: all mutations for one student run under that student's
// lock so coin updates never interleave.
package backend

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"sync"
	"time"

	"github.com/abhisek/vidya/internal/achievements"
	"github.com/abhisek/vidya/internal/attention"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/llm"
	"github.com/abhisek/vidya/internal/perks"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/quiz"
	"github.com/abhisek/vidya/internal/retrieval"
	"github.com/abhisek/vidya/internal/revision"
	"github.com/abhisek/vidya/internal/store"
)

// Options configures a Backend. Store is required; Provider and Rng are
// optional (nil Provider disables LLM content, nil Rng gets a time seed).
type Options struct {
	Store    *store.Store
	Provider llm.Provider
	Rng      *rand.Rand
	Now      func() time.Time
}

// videoSession tracks one in-flight video watch.
type videoSession struct {
	URL     string
	Title   string
	Started time.Time
}

// studentState serializes operations for one student and holds their
// in-flight session state.
type studentState struct {
	mu         sync.Mutex
	activeQuiz *quiz.Session
	video      *videoSession
}

// Backend is the application facade.
type Backend struct {
	profiles  store.ProfileRepo
	progress  store.ProgressRepo
	events    store.EventRepo
	ledger    *ledger.Service
	shop      *perks.Shop
	builder   *quiz.Builder
	generator *revision.Generator
	index     *retrieval.Index
	monitor   *attention.Monitor
	now       func() time.Time

	mu       sync.Mutex
	students map[string]*studentState
}

// New creates a Backend over the given store.
func New(opts Options) *Backend {
	rng := opts.Rng
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>7))
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	events := opts.Store.EventRepo()
	svc := ledger.NewService(achievements.NewEvaluator(), events, rng).WithClock(now)

	return &Backend{
		profiles:  opts.Store.ProfileRepo(),
		progress:  opts.Store.ProgressRepo(),
		events:    events,
		ledger:    svc,
		shop:      perks.NewShop(svc),
		builder:   quiz.NewBuilder(rng).WithClock(now),
		generator: revision.NewGenerator(opts.Provider),
		index:     retrieval.NewIndex(),
		monitor:   attention.NewMonitor(rng),
		now:       now,
		students:  make(map[string]*studentState),
	}
}

// Boards lists the supported education boards.
func (b *Backend) Boards() []string { return retrieval.Boards() }

// Grades lists the supported grade levels.
func (b *Backend) Grades() []string { return retrieval.Grades() }

// SyllabusTopics returns curriculum topic headings for a board, grade
// and subject.
func (b *Backend) SyllabusTopics(board, grade, subject string) []string {
	return b.index.Topics(board, grade, subject)
}

// SearchSyllabus runs a keyword search over the indexed curriculum.
func (b *Backend) SearchSyllabus(query string, f retrieval.Filters, topK int) []retrieval.Result {
	return b.index.Query(query, f, topK)
}

// student returns the state for a student id, creating it on first use.
func (b *Backend) student(id string) *studentState {
	b.mu.Lock()
	defer b.mu.Unlock()
	s, ok := b.students[id]
	if !ok {
		s = &studentState{}
		b.students[id] = s
	}
	return s
}

// loadProfile reads a student's profile, falling back to a fresh in-memory
// profile when the read fails or none exists yet. Reads never fail the
// caller; the warning goes to stderr.
func (b *Backend) loadProfile(ctx context.Context, studentID string) *ledger.Profile {
	p, err := b.profiles.Get(ctx, studentID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load profile %s: %v\n", studentID, err)
	}
	if p == nil {
		p = ledger.NewProfile(studentID)
	}
	return p
}

// saveProfile persists a profile. Write failures are surfaced so callers
// can warn the user.
func (b *Backend) saveProfile(ctx context.Context, p *ledger.Profile) error {
	if err := b.profiles.Save(ctx, p); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// loadRecord reads a progress record, falling back to an empty record.
func (b *Backend) loadRecord(ctx context.Context, studentID string, key progress.Key) *progress.Record {
	rec, err := b.progress.Get(ctx, studentID, key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: load progress %s/%s: %v\n", key.Subject, key.Grade, err)
	}
	if rec == nil {
		rec = progress.NewRecord(key)
	}
	return rec
}
