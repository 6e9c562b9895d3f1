package prompts

import "commenteval/internal/models"

// Instruction text for the three classification tasks. sentiment and respond
// are closed-label; emotion is open vocabulary and is never scored.
const (
	sentimentInstruction = "Classify the overall sentiment of the member comment toward the business as exactly one of: Positive, Neutral, Negative. Reply with the single label and nothing else."
	emotionInstruction   = "Name the single dominant emotion expressed in the member comment. Reply with exactly one word."
	respondInstruction   = "Decide whether the business should post a reply to the member comment. Reply with exactly Yes or No."
)

func SentimentTask() models.TaskDefinition {
	return models.TaskDefinition{
		Name:          models.TaskSentiment,
		Instruction:   sentimentInstruction,
		AllowedLabels: []string{"Positive", "Neutral", "Negative"},
	}
}

func EmotionTask() models.TaskDefinition {
	return models.TaskDefinition{
		Name:        models.TaskEmotion,
		Instruction: emotionInstruction,
	}
}

func RespondTask() models.TaskDefinition {
	return models.TaskDefinition{
		Name:          models.TaskRespond,
		Instruction:   respondInstruction,
		AllowedLabels: []string{"Yes", "No"},
	}
}

// AllTasks returns the task set in batch execution order.
func AllTasks() []models.TaskDefinition {
	return []models.TaskDefinition{SentimentTask(), EmotionTask(), RespondTask()}
}
