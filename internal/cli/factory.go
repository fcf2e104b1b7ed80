package cli

import (
	"context"
	"fmt"
	"io"

	"ltask/internal/config"
	"ltask/internal/logging"
	"ltask/internal/output"
	"ltask/internal/persist"
	"ltask/internal/persist/filekv"
	"ltask/internal/persist/memkv"
	"ltask/internal/persist/sqlitekv"
	"ltask/internal/prompt"
	"ltask/internal/session"
	"ltask/internal/store"
)

// OpenBackend opens the persistence backend selected by cfg.Backend.
func OpenBackend(ctx context.Context, cfg *config.Config) (persist.Backend, error) {
	switch cfg.Backend {
	case config.BackendFile:
		return filekv.New(cfg.Dir), nil
	case config.BackendSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("create config dir: %w", err)
		}
		return sqlitekv.Open(ctx, cfg.DatabasePath())
	case config.BackendMemory:
		return memkv.New(0), nil
	}
	return nil, fmt.Errorf("%w: unknown backend: %s", config.ErrInvalid, cfg.Backend)
}

// DefaultFactory builds a terminal session: views and confirmations go to
// out, logs go to errOut, answers are read from in.
func DefaultFactory(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*session.Session, error) {
	log := logging.New(errOut, cfg)

	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("backend", cfg.Backend).Str("key", cfg.StorageKey).Msg("storage opened")

	sess, err := session.New(ctx, session.Options{
		Backend:    backend,
		Key:        cfg.StorageKey,
		Renderer:   output.NewRenderer(out, output.Options{Quiet: cfg.Quiet}),
		Confirmer:  prompt.New(in, out),
		OnComplete: []store.CompletionHandler{output.NewCelebrator(out, cfg.Quiet)},
		Logger:     log,
	})
	if err != nil {
		_ = backend.Close()
		return nil, err
	}
	return sess, nil
}
