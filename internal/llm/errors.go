package llm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// ErrRateLimit is a 429 from the backend. RetryAfter is zero when the
// backend sent no Retry-After header.
type ErrRateLimit struct {
	RetryAfter time.Duration
	Err        error
}

func (e *ErrRateLimit) Error() string {
	if e.RetryAfter > 0 {
		return fmt.Sprintf("llm rate limited, retry in %s: %v", e.RetryAfter, e.Err)
	}
	return fmt.Sprintf("llm rate limited: %v", e.Err)
}

func (e *ErrRateLimit) Unwrap() error { return e.Err }

// ErrInvalidResponse means the reply was not JSON matching the schema.
type ErrInvalidResponse struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidResponse) Error() string {
	return fmt.Sprintf("llm reply rejected: %v", e.Err)
}

func (e *ErrInvalidResponse) Unwrap() error { return e.Err }

// ErrProviderUnavailable covers outages, network failures and an empty
// mock queue.
type ErrProviderUnavailable struct {
	Err error
}

func (e *ErrProviderUnavailable) Error() string {
	if e.Err == nil {
		return "llm provider unavailable"
	}
	return "llm provider unavailable: " + e.Err.Error()
}

func (e *ErrProviderUnavailable) Unwrap() error { return e.Err }

// ErrTruncated means a structured reply stopped at the token budget, so
// its JSON is incomplete. Raising the purpose budget is the fix; retrying
// is not.
type ErrTruncated struct {
	Content   json.RawMessage
	MaxTokens int
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("llm reply truncated at %d tokens", e.MaxTokens)
}

// classifyStatus maps an HTTP status from any backend SDK onto the error
// types above. resp may be nil.
func classifyStatus(status int, resp *http.Response, err error) error {
	if status == http.StatusTooManyRequests {
		return &ErrRateLimit{RetryAfter: retryAfter(resp), Err: err}
	}
	return &ErrProviderUnavailable{Err: err}
}

func retryAfter(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}
