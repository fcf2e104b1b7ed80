package persist

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"ltask/internal/task"
)

// Adapter serializes the whole task collection to a Backend.
// Loading never fails: missing or corrupt data yields an empty collection.
type Adapter struct {
	backend Backend
	key     string
	log     zerolog.Logger
}

// NewAdapter creates an adapter writing under key.
// An empty key selects DefaultKey.
func NewAdapter(backend Backend, key string, log zerolog.Logger) *Adapter {
	if key == "" {
		key = DefaultKey
	}
	return &Adapter{
		backend: backend,
		key:     key,
		log:     log.With().Str("component", "persist").Str("key", key).Logger(),
	}
}

// Load reads the stored collection.
// Tasks stored without an ID are assigned one.
func (a *Adapter) Load(ctx context.Context) task.Collection {
	raw, ok, err := a.backend.Get(ctx, a.key)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to read tasks, starting empty")
		return task.Collection{}
	}
	if !ok || raw == "" {
		a.log.Debug().Msg("no stored tasks")
		return task.Collection{}
	}

	tasks, err := Decode(raw)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to parse stored tasks, starting empty")
		return task.Collection{}
	}

	for i := range tasks {
		if tasks[i].ID == "" {
			tasks[i].ID = task.NewID()
		}
	}

	a.log.Debug().Int("count", len(tasks)).Msg("loaded tasks")
	return tasks
}

// Save writes the full collection.
// A failed write is logged and returned; callers keep their in-memory state.
func (a *Adapter) Save(ctx context.Context, tasks task.Collection) error {
	raw, err := Encode(tasks)
	if err != nil {
		a.log.Error().Err(err).Msg("failed to encode tasks")
		return err
	}
	if err := a.backend.Set(ctx, a.key, raw); err != nil {
		a.log.Error().Err(err).Int("count", len(tasks)).Msg("failed to save tasks")
		return fmt.Errorf("save tasks: %w", err)
	}
	a.log.Debug().Int("count", len(tasks)).Msg("saved tasks")
	return nil
}

// Encode serializes a collection as a JSON array.
// A nil collection encodes as "[]".
func Encode(tasks task.Collection) (string, error) {
	if tasks == nil {
		tasks = task.Collection{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return "", fmt.Errorf("encode tasks: %w", err)
	}
	return string(data), nil
}

// Decode parses a JSON array of tasks.
// JSON null decodes to an empty collection.
func Decode(raw string) (task.Collection, error) {
	var tasks task.Collection
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil, fmt.Errorf("decode tasks: %w", err)
	}
	if tasks == nil {
		tasks = task.Collection{}
	}
	return tasks, nil
}
