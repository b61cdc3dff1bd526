package backend

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/vidya/internal/attention"
	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/progress"
	"github.com/abhisek/vidya/internal/revision"
)

// videoBaseCoins is the base reward for finishing a video lesson.
const videoBaseCoins = 20

// revisionWeakCut marks a topic as needing revision.
const revisionWeakCut = 70.0

// GenerateRoadmap builds the personalized study roadmap for a subject.
func (b *Backend) GenerateRoadmap(ctx context.Context, studentID, grade, board, subject string) (string, error) {
	if grade == "" || board == "" || subject == "" {
		return "", fmt.Errorf("please select a grade, board, and subject to create a roadmap")
	}

	p := b.loadProfile(ctx, studentID)
	rec := b.loadRecord(ctx, studentID, progress.Key{Subject: subject, Grade: grade})

	return revision.BuildRoadmap(revision.RoadmapInput{
		Subject:      subject,
		Grade:        grade,
		Board:        board,
		Topics:       b.index.Topics(board, grade, subject),
		WeakTopics:   rec.WeakTopics(),
		Level:        p.Level,
		TotalQuizzes: p.TotalQuizzes,
		TotalCoins:   p.TotalCoins,
		StreakDays:   p.StreakDays,
	}), nil
}

// RevisionSummary builds a revision pack, focusing on the given topics or
// the student's topics scoring under the revision cut.
func (b *Backend) RevisionSummary(ctx context.Context, studentID, grade, board, subject string, focusTopics []string) (revision.Summary, error) {
	if grade == "" || board == "" || subject == "" {
		return revision.Summary{}, fmt.Errorf("please set up your learning session first")
	}

	rec := b.loadRecord(ctx, studentID, progress.Key{Subject: subject, Grade: grade})

	return b.generator.Generate(ctx, revision.Request{
		Subject:     subject,
		Grade:       grade,
		Board:       board,
		FocusTopics: focusTopics,
		WeakTopics:  rec.TopicsBelow(revisionWeakCut),
		Difficulty:  rec.CurrentDifficulty,
	}), nil
}

// VideoResult reports a completed video session.
type VideoResult struct {
	CoinsEarned      int                `json:"coins_earned"`
	WatchTimeMinutes float64            `json:"watch_time_minutes"`
	AttentionLevel   float64            `json:"attention_level"`
	AttentionBonus   float64            `json:"attention_bonus"`
	Award            ledger.AwardResult `json:"gamification"`
}

// StartVideoSession opens a video session with attention tracking.
// Returns an error when a session is already running.
func (b *Backend) StartVideoSession(ctx context.Context, studentID, url, title string) error {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.video != nil {
		return fmt.Errorf("a video session is already running")
	}
	st.video = &videoSession{URL: url, Title: title, Started: b.now()}
	// Sampling must outlive the caller: over HTTP the request context is
	// canceled as soon as the start call responds. CompleteVideoSession
	// stops the monitor.
	b.monitor.Start(context.Background(), attention.DefaultSampleInterval)
	return nil
}

// CompleteVideoSession closes the active video session, awarding coins
// scaled by how attentive the student stayed.
func (b *Backend) CompleteVideoSession(ctx context.Context, studentID string) (*VideoResult, error) {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.video == nil {
		return nil, fmt.Errorf("no active video session")
	}
	video := st.video
	st.video = nil

	watchMinutes := b.now().Sub(video.Started).Minutes()
	level := b.monitor.Level()
	b.monitor.Stop()

	bonus := 1.0
	switch {
	case level >= 80:
		bonus = 1.5
	case level >= 60:
		bonus = 1.2
	}

	p := b.loadProfile(ctx, studentID)
	coins := int(float64(videoBaseCoins) * bonus)
	award := b.ledger.AwardCoins(ctx, p, coins,
		fmt.Sprintf("Video completion: %s", video.Title), nil)
	unlocks := b.ledger.UpdateActivity(ctx, p, ledger.ActivityVideo, ledger.ActivityData{Minutes: int(watchMinutes)})
	award.NewAchievements = append(award.NewAchievements, unlocks...)
	award.CurrentCoins = p.CurrentCoins
	award.TotalCoins = p.TotalCoins
	award.Level = p.Level

	if err := b.saveProfile(ctx, p); err != nil {
		return nil, err
	}

	return &VideoResult{
		CoinsEarned:      coins,
		WatchTimeMinutes: round1(watchMinutes),
		AttentionLevel:   round1(level),
		AttentionBonus:   bonus,
		Award:            award,
	}, nil
}

// RecordStudyTime adds study minutes to the student's counters.
func (b *Backend) RecordStudyTime(ctx context.Context, studentID string, d time.Duration) error {
	st := b.student(studentID)
	st.mu.Lock()
	defer st.mu.Unlock()

	p := b.loadProfile(ctx, studentID)
	b.ledger.UpdateActivity(ctx, p, ledger.ActivityStudy, ledger.ActivityData{Minutes: int(d.Minutes())})
	return b.saveProfile(ctx, p)
}

// AttentionLevel returns the live attention percentage.
func (b *Backend) AttentionLevel() float64 {
	return b.monitor.Level()
}

// AttentionReport returns the aggregated attention report.
func (b *Backend) AttentionReport() attention.Report {
	return b.monitor.Report()
}

