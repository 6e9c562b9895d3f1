package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

func TestFormatThread(t *testing.T) {
	text := FormatThread("Grand opening this Saturday!", "Can't wait 🎉")

	assert.Equal(t,
		normalize.BusinessMarker+" Grand opening this Saturday!\n"+normalize.MemberMarker+" Can't wait 🎉",
		text)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.json")
	payload := `[
		{"id": 0, "post": "New hours starting Monday", "comment": "Finally!"},
		{"id": 1, "post": "Sale ends tonight", "comment": "Missed it again..."}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	src := &FileSource{Path: path}
	inputs, err := src.FetchInputs(context.Background())
	require.NoError(t, err)

	require.Len(t, inputs, 2)
	assert.Equal(t, 0, inputs[0].ID)
	assert.Contains(t, inputs[0].Text, normalize.BusinessMarker+" New hours starting Monday")
	assert.Contains(t, inputs[0].Text, normalize.MemberMarker+" Finally!")
	assert.Equal(t, 1, inputs[1].ID)
}

func TestFileSourceMissingFile(t *testing.T) {
	src := &FileSource{Path: filepath.Join(t.TempDir(), "nope.json")}
	_, err := src.FetchInputs(context.Background())
	assert.Error(t, err)
}

func TestFileSourceBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	src := &FileSource{Path: path}
	_, err := src.FetchInputs(context.Background())
	assert.Error(t, err)
}

func TestStaticSourceCopies(t *testing.T) {
	records := []models.InputRecord{{ID: 1, Text: "[MEMBER] hi"}}
	src := &StaticSource{Records: records}

	got, err := src.FetchInputs(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)

	got[0].Text = "mutated"
	assert.Equal(t, "[MEMBER] hi", records[0].Text)
}
