// Package orchestrator drives all classification tasks over a batch of
// inputs, strictly sequentially so the failure count and the partial-result
// boundary are deterministic.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"

	"commenteval/internal/models"
	"commenteval/internal/prompts"
	"commenteval/internal/runner"
)

// FailureThreshold bounds wasted calls when the provider is systematically
// failing: once the batch-wide failure count exceeds it, the run aborts and
// returns whatever was gathered.
const FailureThreshold = 3

const defaultMaxTokens = 16

// Deterministic temperature so repeated runs over the same inputs are
// reproducible modulo provider-side nondeterminism.
const batchTemperature = 0.0

type Orchestrator struct {
	gen       runner.Generator
	maxTokens int
}

func New(gen runner.Generator) *Orchestrator {
	return &Orchestrator{gen: gen, maxTokens: defaultMaxTokens}
}

// RunBatch runs every task over every input in order. A provider failure
// abandons the whole input, not just the failing task; once Failures exceeds
// FailureThreshold the remaining inputs are not attempted. The returned
// BatchRun is always well formed, possibly smaller than the input set.
func (o *Orchestrator) RunBatch(ctx context.Context, inputs []models.InputRecord, tasks []models.TaskDefinition) models.BatchRun {
	slog.Info("[Orchestrator] Starting batch run",
		slog.Int("inputs", len(inputs)),
		slog.Int("tasks", len(tasks)))

	run := models.BatchRun{
		Predictions: make(map[int]map[models.TaskName]models.RawPrediction, len(inputs)),
	}

	for _, rec := range inputs {
		taskPreds, err := o.runInput(ctx, rec, tasks)
		if err != nil {
			var templateErr *prompts.TemplateError
			if errors.As(err, &templateErr) {
				slog.Warn("[Orchestrator] Skipping input, prompt construction failed",
					slog.Int("input_id", rec.ID),
					slog.String("reason", templateErr.Reason))
				run.Skipped = append(run.Skipped, models.SkippedInput{
					InputID: rec.ID,
					Reason:  templateErr.Reason,
				})
				continue
			}

			run.Failures++
			slog.Warn("[Orchestrator] Abandoning input after provider failure",
				slog.Int("input_id", rec.ID),
				slog.Int("failures", run.Failures),
				slog.String("error", err.Error()))

			if run.Failures > FailureThreshold {
				run.Aborted = true
				slog.Error("[Orchestrator] Failure threshold exceeded, returning partial results",
					slog.Int("failures", run.Failures),
					slog.Int("gathered", len(run.Predictions)),
					slog.Int("inputs", len(inputs)))
				break
			}
			continue
		}

		run.Predictions[rec.ID] = taskPreds
	}

	slog.Info("[Orchestrator] Batch run finished",
		slog.Int("gathered", len(run.Predictions)),
		slog.Int("failures", run.Failures),
		slog.Int("skipped", len(run.Skipped)))
	return run
}

// runInput runs the full task set for one record. The task map is only
// committed by the caller when every task succeeded, which keeps per-input
// abandonment atomic.
func (o *Orchestrator) runInput(ctx context.Context, rec models.InputRecord, tasks []models.TaskDefinition) (map[models.TaskName]models.RawPrediction, error) {
	taskPreds := make(map[models.TaskName]models.RawPrediction, len(tasks))

	for _, task := range tasks {
		prompt, err := prompts.Build(task, rec)
		if err != nil {
			return nil, err
		}

		raw, err := o.gen.Invoke(ctx, prompt, o.maxTokens, batchTemperature)
		if err != nil {
			return nil, err
		}

		taskPreds[task.Name] = models.RawPrediction{
			InputID: rec.ID,
			Task:    task.Name,
			RawText: raw,
		}
	}

	return taskPreds, nil
}
