package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	catalog, err := question.LoadCatalog(strings.NewReader(`
listening:
  - type: Multiple Choice
    question: What time does the library close on weekends?
    options: ["A) 6:00 PM", "B) 8:00 PM"]
    answer: B
writing:
  - type: Task 2
    question: Discuss both views.
`))
	require.NoError(t, err)
	acq := question.NewAcquirer(question.NewArchive(catalog), nil, time.Second, nil)
	svc := session.NewService(session.NewStore(session.RetentionPolicy{}), acq, session.Options{})
	return NewRouter(svc, Options{CORSOrigins: []string{"https://dash.example"}})
}

func do(t *testing.T, r http.Handler, method, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	}
	return w, out
}

func TestHealthAndRequestID(t *testing.T) {
	r := newTestRouter(t)
	w, body := do(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestPracticeAnswerFlow(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/v1/users/u1/answer", map[string]string{"answer": "B"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, body["error"], "no pending question")

	w, body = do(t, r, http.MethodPost, "/v1/users/u1/practice", map[string]string{"skill": "Listening"})
	require.Equal(t, http.StatusOK, w.Code)
	q := body["question"].(map[string]any)
	assert.Equal(t, "listening", q["skill"])
	assert.Equal(t, "archive", q["origin"])

	w, _ = do(t, r, http.MethodGet, "/v1/users/u1/question", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = do(t, r, http.MethodPost, "/v1/users/u1/answer", map[string]string{"answer": " b "})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["is_correct"])
	assert.Equal(t, float64(1), body["score"])

	w, _ = do(t, r, http.MethodGet, "/v1/users/u1/question", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, body = do(t, r, http.MethodGet, "/v1/users/u1/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{float64(1)}, body["history"].(map[string]any)["listening"])

	w, body = do(t, r, http.MethodGet, "/v1/users/u1/projection", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 9.0, body["overall_band"])

	w, body = do(t, r, http.MethodGet, "/v1/users/u1/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), body["total_questions"])

	w, body = do(t, r, http.MethodGet, "/v1/users/u1/scores", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["skills"], 1)

	// Sessions are per user.
	w, body = do(t, r, http.MethodGet, "/v1/users/u2/history", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, body["history"])
}

func TestQuestionEndpoints(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPost, "/v1/users/u/questions/archived", map[string]string{"skill": "listening", "type": "NonexistentType"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Multiple Choice", body["question"].(map[string]any)["type"])

	// No generator configured: served from the archive.
	w, body = do(t, r, http.MethodPost, "/v1/users/u/questions/generated", map[string]string{"skill": "writing", "difficulty": "hard"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "archive", body["question"].(map[string]any)["origin"])

	w, body = do(t, r, http.MethodPost, "/v1/users/u/questions/archived", map[string]string{"skill": "speaking"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "sentinel", body["question"].(map[string]any)["origin"])

	w, _ = do(t, r, http.MethodPost, "/v1/users/u/skip", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBadRequests(t *testing.T) {
	r := newTestRouter(t)
	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
	}{
		{"unknown skill", http.MethodPost, "/v1/users/u/practice", map[string]string{"skill": "cooking"}, http.StatusBadRequest},
		{"unknown difficulty", http.MethodPost, "/v1/users/u/questions/generated", map[string]string{"skill": "reading", "difficulty": "brutal"}, http.StatusBadRequest},
		{"skip before practice", http.MethodPost, "/v1/users/u/skip", nil, http.StatusConflict},
		{"bad plan target", http.MethodGet, "/v1/users/u/plan?target=12", nil, http.StatusBadRequest},
		{"NaN plan target", http.MethodGet, "/v1/users/u/plan?target=NaN", nil, http.StatusBadRequest},
		{"non-numeric weeks", http.MethodGet, "/v1/users/u/plan?weeks=many", nil, http.StatusBadRequest},
		{"unknown language", http.MethodPut, "/v1/users/u/language", map[string]string{"language": "french"}, http.StatusBadRequest},
		{"blank user", http.MethodGet, "/v1/users/%20/history", nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := do(t, r, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, w.Code)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestPlanDefaults(t *testing.T) {
	r := newTestRouter(t)
	w, body := do(t, r, http.MethodGet, "/v1/users/u/plan", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7.0, body["target_band"])
	assert.Equal(t, float64(8), body["duration_weeks"])
	assert.Equal(t, "intermediate", body["current_level"])
	assert.Len(t, body["weekly_goals"], 8)
}

func TestLanguageAndTranslate(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodPut, "/v1/users/u/language", map[string]string{"language": "ar"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "arabic", body["display_language"])

	w, body = do(t, r, http.MethodPost, "/v1/users/u/practice", map[string]string{"skill": "writing"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[Arabic: Discuss both views.]", body["question"].(map[string]any)["translated_prompt"])

	w, body = do(t, r, http.MethodPost, "/v1/translate", map[string]string{"text": "Reading"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "القراءة", body["translation"])

	w, body = do(t, r, http.MethodPost, "/v1/translate", map[string]string{"text": "Reading", "target": "english"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Reading", body["translation"])
}

func TestSyllabusAndVocabulary(t *testing.T) {
	r := newTestRouter(t)

	w, body := do(t, r, http.MethodGet, "/v1/syllabus", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["sections"], 4)

	w, body = do(t, r, http.MethodGet, "/v1/vocabulary/unknown", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "intermediate", body["level"])
}

func TestCORS(t *testing.T) {
	r := newTestRouter(t)
	req := httptest.NewRequest(http.MethodOptions, "/v1/syllabus", nil)
	req.Header.Set("Origin", "https://dash.example")
	req.Header.Set("Access-Control-Request-Method", "GET")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://dash.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/v1/syllabus", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusConflict, statusFor(session.ErrNoPracticeSkill))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
