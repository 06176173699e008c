package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
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

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage for a purpose or a model.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// AnswerEventData captures one submitted answer.
type AnswerEventData struct {
	SessionID     string
	UserID        string
	Skill         string
	QuestionType  string
	Difficulty    string
	Source        string
	QuestionText  string
	CorrectAnswer string
	Submitted     string
	Correct       bool
	Score         int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	AnswerEventData
}

// AnswerStats aggregates answer events for one skill.
type AnswerStats struct {
	Skill    string
	Answers  int
	Correct  int
	Users    int
	Accuracy float64
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)

	// LLMUsageByModel aggregates token usage grouped by model.
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendAnswerEvent records a submitted answer.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns answer events, newest first.
	QueryAnswerEvents(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)

	// AnswerStatsBySkill aggregates answer events per skill.
	AnswerStatsBySkill(ctx context.Context) ([]AnswerStats, error)
}
