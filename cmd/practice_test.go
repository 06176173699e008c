package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/session"
	"github.com/abhisek/bandwise/internal/skill"
)

func newPracticeLoop(t *testing.T, out *bytes.Buffer) *practiceLoop {
	t.Helper()
	catalog, err := question.LoadCatalog(strings.NewReader(`
reading:
  - type: True/False/Not Given
    question: The author visited Cairo in 2010.
    answer: "True"
    passage: In 2010 the author spent a month in Cairo.
`))
	require.NoError(t, err)
	acq := question.NewAcquirer(question.NewArchive(catalog), nil, time.Second, nil)
	svc := session.NewService(session.NewStore(session.RetentionPolicy{}), acq, session.Options{})
	s, err := svc.Session("tester")
	require.NoError(t, err)
	return &practiceLoop{svc: svc, s: s, sk: skill.Reading, out: out}
}

func TestPracticeLoopGradesAnswers(t *testing.T) {
	var out bytes.Buffer
	p := newPracticeLoop(t, &out)

	in := strings.NewReader("true\nfalse\n:score\n:quit\n")
	require.NoError(t, p.run(context.Background(), in))

	text := out.String()
	assert.Contains(t, text, "The author visited Cairo in 2010.")
	assert.Contains(t, text, "Correct")
	assert.Contains(t, text, "Incorrect")
	assert.Contains(t, text, "Projected bands")

	h := p.svc.History(p.s)
	assert.Equal(t, []int{1, 0}, h[skill.Reading])
}

func TestPracticeLoopCommands(t *testing.T) {
	var out bytes.Buffer
	p := newPracticeLoop(t, &out)

	in := strings.NewReader(":help\n:lang ar\n:skip\n:lang fr\n:bogus\n")
	require.NoError(t, p.run(context.Background(), in))

	text := out.String()
	assert.Contains(t, text, ":skip")
	assert.Contains(t, text, "Display language: arabic")
	assert.Contains(t, text, "[Arabic: The author visited Cairo in 2010.]")
	assert.Contains(t, text, "unknown display language")
	assert.Contains(t, text, "unknown command :bogus")
	assert.Empty(t, p.svc.History(p.s))
}
