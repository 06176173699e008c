package question

import (
	"math/rand/v2"
	"sync"

	"github.com/abhisek/bandwise/internal/skill"
)

// Archive selects archived questions at random.
type Archive struct {
	repo Repository

	mu  sync.Mutex
	rnd *rand.Rand // nil = package-level source
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*Archive)

// WithRand makes selection deterministic. Used by tests.
func WithRand(r *rand.Rand) ArchiveOption {
	return func(a *Archive) { a.rnd = r }
}

// NewArchive creates an Archive over repo.
func NewArchive(repo Repository, opts ...ArchiveOption) *Archive {
	a := &Archive{repo: repo}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Fetch returns a uniformly random question of the skill. questionType
// narrows the choice only when at least one question of that type exists.
// A skill without any archived questions yields the sentinel question.
func (a *Archive) Fetch(sk skill.Skill, questionType string) Question {
	candidates := a.repo.Query(sk, questionType)
	if len(candidates) == 0 && questionType != "" {
		candidates = a.repo.Query(sk, "")
	}
	if len(candidates) == 0 {
		return Sentinel(sk)
	}
	return candidates[a.intN(len(candidates))]
}

func (a *Archive) intN(n int) int {
	if a.rnd == nil {
		return rand.IntN(n)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.rnd.IntN(n)
}
