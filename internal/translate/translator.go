// Package translate renders English practice content in Arabic.
package translate

import (
	"context"
	"errors"
)

// ErrUnavailable reports that a translator is not configured or failed.
var ErrUnavailable = errors.New("translation unavailable")

// Translator converts English text to the secondary display language.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Chain tries translators in order; the first success wins.
type Chain []Translator

// NewChain skips nil interface values. A typed nil pointer is not skipped.
func NewChain(translators ...Translator) Chain {
	c := make(Chain, 0, len(translators))
	for _, t := range translators {
		if t != nil {
			c = append(c, t)
		}
	}
	return c
}

// Translate implements Translator. When every translator fails the last
// error is returned, wrapped in ErrUnavailable.
func (c Chain) Translate(ctx context.Context, text string) (string, error) {
	var lastErr error
	for _, t := range c {
		out, err := t.Translate(ctx, text)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		return "", ErrUnavailable
	}
	if errors.Is(lastErr, ErrUnavailable) {
		return "", lastErr
	}
	return "", errors.Join(ErrUnavailable, lastErr)
}
