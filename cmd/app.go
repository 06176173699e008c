package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/abhisek/bandwise/internal/llm"
	"github.com/abhisek/bandwise/internal/question"
	"github.com/abhisek/bandwise/internal/session"
	"github.com/abhisek/bandwise/internal/store"
	"github.com/abhisek/bandwise/internal/translate"
)

// buildService wires the archive, the optional LLM generator and the
// translation chain into a practice service. Without an LLM provider the
// service still works: generation falls back to the archive and translation
// to Google or the phrasebook.
func buildService(ctx context.Context, st *store.Store, logger *slog.Logger) (*session.Service, error) {
	catalog, err := question.DefaultCatalog()
	if err != nil {
		return nil, fmt.Errorf("load question archive: %w", err)
	}

	var events store.EventRepo
	if st != nil {
		events = st.EventRepo()
	}

	var (
		gen         question.Generator
		translators []translate.Translator
	)
	g, err := translate.NewGoogle(ctx, cfg.GoogleTranslateKey)
	if err != nil {
		logger.Warn("Google translation unavailable", "error", err)
	} else if g != nil {
		translators = append(translators, g)
	}

	provider, err := llm.NewProviderFromEnv(ctx, events, logger)
	if err != nil {
		logger.Warn("LLM provider not configured, AI features unavailable", "error", err)
	} else {
		gen = question.NewLLMGenerator(provider, question.DefaultConfig())
		translators = append(translators, translate.NewLLM(provider))
	}
	translators = append(translators, translate.Phrasebook{})

	acq := question.NewAcquirer(question.NewArchive(catalog), gen, cfg.ExternalTimeout, logger)
	sessions := session.NewStore(session.RetentionPolicy{
		HistoryCap: cfg.HistoryCap,
		IdleTTL:    cfg.SessionTTL,
	})
	return session.NewService(sessions, acq, session.Options{
		Translator:      translate.NewChain(translators...),
		Events:          events,
		ExternalTimeout: cfg.ExternalTimeout,
		Logger:          logger,
	}), nil
}
