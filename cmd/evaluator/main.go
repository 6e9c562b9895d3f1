package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/openai/openai-go"

	"commenteval/config"
	"commenteval/internal/baseline"
	"commenteval/internal/clients"
	"commenteval/internal/clients/kafka_client"
	"commenteval/internal/evaluation"
	"commenteval/internal/groundtruth"
	"commenteval/internal/logging"
	"commenteval/internal/models"
	"commenteval/internal/monitoring"
	"commenteval/internal/normalize"
	"commenteval/internal/orchestrator"
	"commenteval/internal/prompts"
	"commenteval/internal/publisher"
	"commenteval/internal/runner"
	"commenteval/internal/source"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inputsPath := envOr("INPUTS_FILE", "data/inputs.json")
	truthPath := envOr("GROUND_TRUTH_FILE", "data/ground_truth.json")

	var fetcher source.Fetcher = &source.FileSource{Path: inputsPath}
	inputs, err := fetcher.FetchInputs(ctx)
	if err != nil {
		slog.Error("[Evaluator] Failed to load inputs", slog.String("error", err.Error()))
		os.Exit(1)
	}

	truth, err := groundtruth.LoadFile(truthPath)
	if err != nil {
		slog.Error("[Evaluator] Failed to load ground truth", slog.String("error", err.Error()))
		os.Exit(1)
	}

	model := openai.ChatModel(envOr("OPENAI_MODEL", string(openai.ChatModelGPT4oMini)))
	var gen runner.Generator = runner.NewOpenAIRunner(model)

	if os.Getenv("VALKEY_INIT_ADDRESS") != "" {
		clients.InitValkey()
		defer clients.CloseValkey()
		gen = &runner.CachedGenerator{Inner: gen, Cache: clients.GetValkeyClient()}
		slog.Info("[Evaluator] Prediction cache enabled")
	}

	if !monitoring.ProviderPreflight(ctx, gen) {
		slog.Error("[Evaluator] Provider preflight failed, not starting batch")
		os.Exit(1)
	}

	run := orchestrator.New(gen).RunBatch(ctx, inputs, prompts.AllTasks())
	if run.Aborted {
		slog.Warn("[Evaluator] Batch aborted early, evaluating partial results",
			slog.Int("gathered", len(run.Predictions)),
			slog.Int("inputs", len(inputs)))
	}

	var normalized []models.NormalizedPrediction
	for _, task := range []models.TaskName{models.TaskSentiment, models.TaskEmotion, models.TaskRespond} {
		for _, pred := range run.TaskPredictions(task) {
			normalized = append(normalized, models.NormalizedPrediction{
				InputID: pred.InputID,
				Task:    pred.Task,
				Label:   normalize.Normalize(pred.RawText),
			})
		}
	}

	var pub *publisher.ResultsPublisher
	if os.Getenv("KAFKA_BROKER") != "" {
		if err := kafka_client.InitKafkaProducer(); err != nil {
			slog.Warn("[Evaluator] Kafka unavailable, skipping result publishing",
				slog.String("error", err.Error()))
		} else {
			defer kafka_client.CloseKafkaProducer()
			pub = publisher.NewResultsPublisher(time.Now().UTC().Format("20060102T150405Z"))
			for _, pred := range normalized {
				if err := pub.Add(pred); err != nil {
					slog.Warn("[Evaluator] Failed to publish prediction",
						slog.String("error", err.Error()))
				}
			}
			if err := pub.Flush(); err != nil {
				slog.Warn("[Evaluator] Failed to flush predictions",
					slog.String("error", err.Error()))
			}
		}
	}

	for _, task := range []models.TaskName{models.TaskSentiment, models.TaskRespond} {
		result, err := evaluation.Evaluate(normalized, truth.Labels(task), task, evaluation.Options{})
		if err != nil {
			slog.Error("[Evaluator] Evaluation failed",
				slog.String("task", string(task)),
				slog.String("error", err.Error()))
			continue
		}
		reportResult("model", result)
		if pub != nil {
			if err := pub.PublishEvaluation(result); err != nil {
				slog.Warn("[Evaluator] Failed to publish evaluation",
					slog.String("error", err.Error()))
			}
		}
	}

	baselineResult, err := evaluation.Evaluate(
		baseline.Annotate(inputs),
		truth.Labels(models.TaskSentiment),
		models.TaskSentiment,
		evaluation.Options{},
	)
	if err != nil {
		slog.Error("[Evaluator] Baseline evaluation failed", slog.String("error", err.Error()))
	} else {
		reportResult("vader-baseline", baselineResult)
	}
}

func reportResult(annotator string, r models.EvaluationResult) {
	slog.Info("[Evaluator] Task scored",
		slog.String("annotator", annotator),
		slog.String("task", string(r.Task)),
		slog.Float64("accuracy", r.Accuracy),
		slog.Int("joined", len(r.PerRecord)),
		slog.Int("disagreements", len(r.Disagreements())))

	for i, name := range r.Confusion.Names {
		row := make([]any, 0, len(r.Confusion.Counts[i]))
		for _, n := range r.Confusion.Counts[i] {
			row = append(row, n)
		}
		slog.Info("[Evaluator] Confusion row",
			slog.String("task", string(r.Task)),
			slog.String("human_label", name),
			slog.Any("predicted_counts", row))
	}

	for _, rec := range r.Disagreements() {
		slog.Debug("[Evaluator] Disagreement",
			slog.String("task", string(r.Task)),
			slog.Int("input_id", rec.InputID),
			slog.Int("predicted", rec.PredictedLabel),
			slog.Int("human", rec.HumanLabel))
	}
}

func envOr(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
