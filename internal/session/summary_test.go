package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bandwise/internal/skill"
)

func answerListening(t *testing.T, svc *Service, s *Session, answers ...string) {
	t.Helper()
	for _, a := range answers {
		_, err := svc.StartPractice(context.Background(), s, skill.Listening)
		require.NoError(t, err)
		_, err = svc.SubmitAnswer(context.Background(), s, a)
		require.NoError(t, err)
	}
}

func TestProjectionAndPlanFromSession(t *testing.T) {
	svc := newTestService(t, nil, Options{})
	s := mustSession(t, svc, "u")

	assert.Equal(t, 5.0, svc.Projection(s).OverallBand)
	assert.Equal(t, skill.Intermediate, svc.Level(s))

	answerListening(t, svc, s, "B", "B", "B", "B")
	p := svc.Projection(s)
	assert.Equal(t, 9.0, p.OverallBand)
	require.Len(t, p.Strengths, 1)
	assert.Equal(t, skill.Listening, p.Strengths[0].Skill)

	plan, err := svc.StudyPlan(s, 7.5, 3)
	require.NoError(t, err)
	assert.Equal(t, skill.Advanced, plan.CurrentLevel)
	assert.Len(t, plan.WeeklyGoals, 3)

	_, err = svc.StudyPlan(s, 10, 3)
	assert.Error(t, err)
}

func TestScoreSummary(t *testing.T) {
	svc := newTestService(t, nil, Options{})
	s := mustSession(t, svc, "u")

	assert.Empty(t, svc.ScoreSummary(s))

	answerListening(t, svc, s, "A", "B", "B", "A", "B", "B", "B")
	sum := svc.ScoreSummary(s)
	require.Len(t, sum, 1)
	assert.Equal(t, skill.Listening, sum[0].Skill)
	assert.Equal(t, 7, sum[0].Count)
	assert.InDelta(t, 5.0/7.0, sum[0].Average, 1e-9)
	assert.Equal(t, []int{1, 0, 1, 1, 1}, sum[0].Recent)
}

func TestDashboard(t *testing.T) {
	svc := newTestService(t, nil, Options{})
	s := mustSession(t, svc, "u")

	d := svc.Dashboard(s)
	assert.Equal(t, 0, d.TotalQuestions)
	assert.Equal(t, 5.0, d.PredictedBand)

	day1 := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }
	answerListening(t, svc, s, "B", "A")
	svc.now = func() time.Time { return day1.Add(24 * time.Hour) }
	answerListening(t, svc, s, "B", "B")

	d = svc.Dashboard(s)
	assert.Equal(t, 4, d.TotalQuestions)
	assert.InDelta(t, 0.75, d.Accuracy, 1e-9)
	assert.Equal(t, 2, d.PracticeDays)
	// 3/4 -> 6.75 -> 7.0
	assert.Equal(t, 7.0, d.PredictedBand)
	assert.Equal(t, "intermediate", d.Level)
}
