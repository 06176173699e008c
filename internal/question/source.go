package question

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/abhisek/bandwise/internal/skill"
)

// ErrGeneratorUnconfigured is returned by a GeneratedSource without a
// Generator.
var ErrGeneratorUnconfigured = errors.New("question generator not configured")

// ErrNoSources is returned by an empty FirstOf chain.
var ErrNoSources = errors.New("no question sources")

// Request names the question a caller wants.
type Request struct {
	Skill      skill.Skill
	Type       string
	Difficulty skill.Difficulty
	Prior      []string
}

// Source produces a question for a request.
type Source interface {
	Fetch(ctx context.Context, req Request) (Question, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context, req Request) (Question, error)

func (f SourceFunc) Fetch(ctx context.Context, req Request) (Question, error) {
	return f(ctx, req)
}

type firstOf []Source

// FirstOf tries each source in order and returns the first success. When
// every source fails, the last error is returned.
func FirstOf(sources ...Source) Source {
	return firstOf(sources)
}

func (f firstOf) Fetch(ctx context.Context, req Request) (Question, error) {
	err := ErrNoSources
	for _, s := range f {
		var q Question
		q, err = s.Fetch(ctx, req)
		if err == nil {
			return q, nil
		}
	}
	return Question{}, err
}

// GeneratedSource asks a Generator for a fresh question, bounded by Timeout.
type GeneratedSource struct {
	Generator Generator
	Timeout   time.Duration // 0 = caller's deadline only
}

func (s *GeneratedSource) Fetch(ctx context.Context, req Request) (Question, error) {
	if s.Generator == nil {
		return Question{}, ErrGeneratorUnconfigured
	}
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	q, err := s.Generator.Generate(ctx, GenerateInput{
		Skill:          req.Skill,
		Type:           req.Type,
		Difficulty:     req.Difficulty,
		PriorQuestions: req.Prior,
	})
	if err != nil {
		return Question{}, err
	}
	return *q, nil
}

// ArchivedSource serves questions from an Archive. It never fails.
type ArchivedSource struct {
	Archive *Archive

	// IgnoreType drops the type filter, as the generation fallback does.
	IgnoreType bool
}

func (s *ArchivedSource) Fetch(_ context.Context, req Request) (Question, error) {
	typ := req.Type
	if s.IgnoreType {
		typ = ""
	}
	return s.Archive.Fetch(req.Skill, typ), nil
}

// Acquirer builds the two acquisition chains.
type Acquirer struct {
	archived  Source
	generated Source
	logger    *slog.Logger
}

// NewAcquirer wires archive and generator. gen may be nil, in which case
// generation requests are served from the archive.
func NewAcquirer(archive *Archive, gen Generator, timeout time.Duration, logger *slog.Logger) *Acquirer {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	a := &Acquirer{
		archived: &ArchivedSource{Archive: archive},
		logger:   logger,
	}
	generated := &GeneratedSource{Generator: gen, Timeout: timeout}
	a.generated = FirstOf(
		SourceFunc(func(ctx context.Context, req Request) (Question, error) {
			q, err := generated.Fetch(ctx, req)
			if err != nil {
				a.logger.Warn("question generation failed, using archive",
					"skill", req.Skill, "type", req.Type, "error", err)
			}
			return q, err
		}),
		&ArchivedSource{Archive: archive, IgnoreType: true},
	)
	return a
}

// Archived returns an archived question; type is advisory.
func (a *Acquirer) Archived(ctx context.Context, sk skill.Skill, questionType string) Question {
	return a.fetch(ctx, a.archived, Request{Skill: sk, Type: questionType})
}

// Generated returns a generated question, or an archived one of the same
// skill when generation fails or times out.
func (a *Acquirer) Generated(ctx context.Context, req Request) Question {
	return a.fetch(ctx, a.generated, req)
}

func (a *Acquirer) fetch(ctx context.Context, src Source, req Request) Question {
	q, err := src.Fetch(ctx, req)
	if err != nil {
		// Unreachable with an archive at the end of the chain.
		a.logger.Error("question acquisition failed", "skill", req.Skill, "error", err)
		return Sentinel(req.Skill)
	}
	return q
}
