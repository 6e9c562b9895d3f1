package kafka_client

const (
	KAFKA_TOPIC_PREDICTIONS = "comment-predictions"  // normalized predictions, one batch per run
	KAFKA_TOPIC_EVALUATIONS = "evaluation-results"   // per-task accuracy + confusion matrix
)

const (
	BATCH_SIZE  = 50
	MAX_RETRIES = 3
)
