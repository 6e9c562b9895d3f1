// Package source is the upstream collaborator boundary: it hands the
// pipeline a table of (id, text) records and knows nothing about how the
// threads were collected.
package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

type Fetcher interface {
	FetchInputs(ctx context.Context) ([]models.InputRecord, error)
}

// FormatThread combines a business post and one member comment into the
// role-marked text the prompts wrap.
func FormatThread(post, comment string) string {
	return normalize.BusinessMarker + " " + post + "\n" + normalize.MemberMarker + " " + comment
}

// threadRecord is the on-disk shape produced by the collection layer.
type threadRecord struct {
	ID      int    `json:"id"`
	Post    string `json:"post"`
	Comment string `json:"comment"`
}

// FileSource reads a JSON array of thread records and formats them into
// InputRecords.
type FileSource struct {
	Path string
}

func (f *FileSource) FetchInputs(ctx context.Context) ([]models.InputRecord, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("[FileSource] failed to read inputs: %w", err)
	}

	var threads []threadRecord
	if err := json.Unmarshal(data, &threads); err != nil {
		return nil, fmt.Errorf("[FileSource] failed to parse inputs: %w", err)
	}

	records := make([]models.InputRecord, 0, len(threads))
	for _, t := range threads {
		records = append(records, models.InputRecord{
			ID:   t.ID,
			Text: FormatThread(t.Post, t.Comment),
		})
	}

	slog.Info("[FileSource] Loaded input records",
		slog.String("path", f.Path),
		slog.Int("count", len(records)))
	return records, nil
}

// StaticSource serves a fixed record set, mainly for tests and dry runs.
type StaticSource struct {
	Records []models.InputRecord
}

func (s *StaticSource) FetchInputs(ctx context.Context) ([]models.InputRecord, error) {
	return append([]models.InputRecord(nil), s.Records...), nil
}
