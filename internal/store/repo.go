package store

import (
	"context"
	"time"

	"github.com/abhisek/vidya/internal/ledger"
	"github.com/abhisek/vidya/internal/progress"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	Before    int64     // sequence < Before
	From      time.Time // timestamp >= From
	To        time.Time // timestamp <= To
	StudentID string    // restrict to one student ("" = all)
}

// ProfileRepo persists gamification profiles as JSON documents keyed by
// student id.
type ProfileRepo interface {
	// Save upserts a profile document.
	Save(ctx context.Context, p *ledger.Profile) error

	// Get loads one profile, or nil if the student has none yet.
	Get(ctx context.Context, studentID string) (*ledger.Profile, error)

	// List returns every stored profile. Used by the leaderboard.
	List(ctx context.Context) ([]*ledger.Profile, error)
}

// ProgressRepo persists per-subject progress records as JSON documents.
type ProgressRepo interface {
	// Save upserts the record for its student/subject/grade.
	Save(ctx context.Context, studentID string, rec *progress.Record) error

	// Get loads one record, or nil if none exists yet.
	Get(ctx context.Context, studentID string, key progress.Key) (*progress.Record, error)

	// ListForStudent returns all of a student's records.
	ListForStudent(ctx context.Context, studentID string) ([]*progress.Record, error)
}

// QuizEventData captures one completed quiz.
type QuizEventData struct {
	StudentID  string
	SessionID  string
	Subject    string
	Grade      string
	Difficulty string
	Score      int
	Total      int
	Percentage float64
	TimeTaken  float64
}

// QuizEventRecord is a stored quiz event.
type QuizEventRecord struct {
	QuizEventData
	Sequence  int64
	Timestamp time.Time
}

// CoinEventRecord is a stored coin movement.
type CoinEventRecord struct {
	ledger.CoinEventData
	Sequence  int64
	Timestamp time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	LLMRequestEventData
	ID        int
	Sequence  int64
	Timestamp time.Time
}

// LLMUsageStat aggregates LLM calls grouped by purpose.
type LLMUsageStat struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM calls grouped by model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to domain events. All event
// types share one sequence, so cross-type ordering is well defined.
type EventRepo interface {
	// AppendQuizEvent records a completed quiz.
	AppendQuizEvent(ctx context.Context, data QuizEventData) error

	// QueryQuizEvents returns quiz events, most recent first.
	QueryQuizEvents(ctx context.Context, opts QueryOpts) ([]QuizEventRecord, error)

	// AppendCoinEvent records a coin movement.
	AppendCoinEvent(ctx context.Context, data ledger.CoinEventData) error

	// QueryCoinEvents returns coin events, most recent first.
	QueryCoinEvents(ctx context.Context, opts QueryOpts) ([]CoinEventRecord, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, most recent first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent loads one LLM event by id, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStat, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
