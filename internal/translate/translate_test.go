package translate

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"

	"github.com/abhisek/bandwise/internal/llm"
)

type failing struct{ err error }

func (f failing) Translate(context.Context, string) (string, error) { return "", f.err }

type fixed string

func (f fixed) Translate(context.Context, string) (string, error) { return string(f), nil }

func TestPhrasebook(t *testing.T) {
	p := Phrasebook{}
	ctx := context.Background()

	got, err := p.Translate(ctx, "Multiple Choice")
	require.NoError(t, err)
	assert.Equal(t, "اختيار متعدد", got)

	got, err = p.Translate(ctx, "  reading ")
	require.NoError(t, err)
	assert.Equal(t, "القراءة", got)

	got, err = p.Translate(ctx, "Describe your hometown.")
	require.NoError(t, err)
	assert.Equal(t, "[Arabic: Describe your hometown.]", got)
}

func TestChainFirstSuccessWins(t *testing.T) {
	c := NewChain(failing{errors.New("down")}, fixed("first"), fixed("second"))
	got, err := c.Translate(context.Background(), "x")
	require.NoError(t, err)
	assert.Equal(t, "first", got)
}

func TestChainFallsBackToPhrasebook(t *testing.T) {
	c := NewChain(failing{ErrUnavailable}, nil, Phrasebook{})
	got, err := c.Translate(context.Background(), "Hard")
	require.NoError(t, err)
	assert.Equal(t, "صعب", got)
}

func TestChainAllFail(t *testing.T) {
	boom := errors.New("boom")
	_, err := NewChain(failing{boom}).Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, boom)

	_, err = NewChain().Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewGoogleWithoutKey(t *testing.T) {
	g, err := NewGoogle(context.Background(), "")
	require.NoError(t, err)
	assert.Nil(t, g)
}

func newTestGoogle(t *testing.T, key string, h http.HandlerFunc) *Google {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	g, err := NewGoogle(context.Background(), key, option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = g.Close() })
	return g
}

func TestGoogleTranslate(t *testing.T) {
	g := newTestGoogle(t, "k", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "k", r.FormValue("key"))
		assert.Equal(t, "Good morning", r.FormValue("q"))
		assert.Equal(t, "en", r.FormValue("source"))
		assert.Equal(t, "ar", r.FormValue("target"))
		assert.Equal(t, "text", r.FormValue("format"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[{"translatedText":"صباح الخير"}]}}`))
	})

	got, err := g.Translate(context.Background(), "Good morning")
	require.NoError(t, err)
	assert.Equal(t, "صباح الخير", got)
}

func TestGoogleAPIError(t *testing.T) {
	g := newTestGoogle(t, "bad", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403,"message":"API key not valid"}}`))
	})

	_, err := g.Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestGoogleEmptyResponse(t *testing.T) {
	g := newTestGoogle(t, "k", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":{"translations":[]}}`))
	})

	_, err := g.Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestGoogleNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	g, err := NewGoogle(context.Background(), "k", option.WithEndpoint(srv.URL+"/"))
	require.NoError(t, err)
	_, err = g.Translate(context.Background(), "x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestLLMTranslate(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"translation":"مرحبا"}`)})
	tr := NewLLM(mock)

	got, err := tr.Translate(context.Background(), "Hello")
	require.NoError(t, err)
	assert.Equal(t, "مرحبا", got)

	require.Len(t, mock.Calls, 1)
	assert.Equal(t, "translation", mock.Calls[0].Schema.Name)
	assert.Equal(t, "Hello", mock.Calls[0].Messages[0].Content)
	assert.Equal(t, llm.PurposeTranslate, mock.Purposes[0])
	assert.Zero(t, mock.Calls[0].MaxTokens, "budget comes from the translate profile")
}

func TestLLMTranslateFailures(t *testing.T) {
	mock := llm.NewMockProvider(
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
		llm.MockResponse{Content: json.RawMessage(`{"translation":"  "}`)},
	)
	tr := NewLLM(mock)

	_, err := tr.Translate(context.Background(), "a")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = tr.Translate(context.Background(), "b")
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Nil(t, NewLLM(nil))
}
