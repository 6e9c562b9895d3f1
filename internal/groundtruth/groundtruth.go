// Package groundtruth holds the human-assigned labels the evaluation engine
// scores against. The store is read-only once loaded and lives entirely in
// memory for the run.
package groundtruth

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"commenteval/internal/models"
)

type Store struct {
	labels map[models.TaskName]map[int]int
}

func NewStore() *Store {
	return &Store{labels: make(map[models.TaskName]map[int]int)}
}

// SetTask copies the given labels in; later mutation of the argument does
// not leak into the store.
func (s *Store) SetTask(task models.TaskName, labels map[int]int) {
	copied := make(map[int]int, len(labels))
	for id, label := range labels {
		copied[id] = label
	}
	s.labels[task] = copied
}

// Labels returns a copy of the per-task mapping; missing tasks yield an
// empty map, not nil.
func (s *Store) Labels(task models.TaskName) map[int]int {
	copied := make(map[int]int, len(s.labels[task]))
	for id, label := range s.labels[task] {
		copied[id] = label
	}
	return copied
}

// LoadFile reads ground truth from a JSON object of the form
// {"sentiment": {"0": 1, "1": -1}, "respond": {"0": 1}}.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("[GroundTruth] failed to read labels: %w", err)
	}

	var raw map[string]map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("[GroundTruth] failed to parse labels: %w", err)
	}

	store := NewStore()
	for taskName, byID := range raw {
		labels := make(map[int]int, len(byID))
		for idStr, label := range byID {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return nil, fmt.Errorf("[GroundTruth] bad input id %q for task %s: %w", idStr, taskName, err)
			}
			labels[id] = label
		}
		store.SetTask(models.TaskName(taskName), labels)
	}

	slog.Info("[GroundTruth] Loaded human labels",
		slog.String("path", path),
		slog.Int("tasks", len(raw)))
	return store, nil
}
