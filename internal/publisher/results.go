// Package publisher pushes the pipeline's outputs to Kafka for downstream
// rendering. Publishing is optional; the pipeline's own contract is the
// in-memory tables.
package publisher

import (
	"fmt"
	"log/slog"

	"commenteval/internal/clients/kafka_client"
	"commenteval/internal/models"
	"commenteval/internal/utils"
)

type ResultsPublisher struct {
	runID  string
	buffer *utils.BatchBuffer[models.NormalizedPrediction]
}

func NewResultsPublisher(runID string) *ResultsPublisher {
	return &ResultsPublisher{
		runID:  runID,
		buffer: utils.NewBatchBuffer[models.NormalizedPrediction](),
	}
}

// Add buffers a prediction, flushing once the batch size is reached.
func (p *ResultsPublisher) Add(pred models.NormalizedPrediction) error {
	p.buffer.Add(pred)
	if p.buffer.Size() >= kafka_client.BATCH_SIZE {
		return p.Flush()
	}
	return nil
}

// Flush publishes any buffered predictions as a single batch message.
func (p *ResultsPublisher) Flush() error {
	batch := p.buffer.GetAndClear()
	if len(batch) == 0 {
		return nil
	}

	payload := struct {
		RunID       string                        `json:"run_id"`
		Predictions []models.NormalizedPrediction `json:"predictions"`
	}{RunID: p.runID, Predictions: batch}

	if err := kafka_client.PublishJSON(kafka_client.KAFKA_TOPIC_PREDICTIONS, p.runID, payload); err != nil {
		return fmt.Errorf("[ResultsPublisher] failed to publish predictions: %w", err)
	}

	slog.Info("[ResultsPublisher] Published prediction batch",
		slog.String("run_id", p.runID),
		slog.Int("batch_size", len(batch)))
	return nil
}

// PublishEvaluation sends one task's scored result.
func (p *ResultsPublisher) PublishEvaluation(result models.EvaluationResult) error {
	key := p.runID + ":" + string(result.Task)
	if err := kafka_client.PublishJSON(kafka_client.KAFKA_TOPIC_EVALUATIONS, key, result); err != nil {
		return fmt.Errorf("[ResultsPublisher] failed to publish evaluation: %w", err)
	}

	slog.Info("[ResultsPublisher] Published evaluation result",
		slog.String("run_id", p.runID),
		slog.String("task", string(result.Task)))
	return nil
}
