package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

func TestMapLabelSentiment(t *testing.T) {
	testCases := []struct {
		label string
		want  int
	}{
		{"Positive", 1},
		{"Neutral", 0},
		{"Negative", -1},
		{"?", 0},
		{"positive", 0}, // case-sensitive
		{"something else", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		got, err := MapLabel(models.TaskSentiment, tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestMapLabelRespond(t *testing.T) {
	testCases := []struct {
		label string
		want  int
	}{
		{"Yes", 1},
		{"No", 0},
		{"yes", 0}, // exact match only
		{"Yes please", 0},
		{"?", 0},
		{"", 0},
	}

	for _, tc := range testCases {
		got, err := MapLabel(models.TaskRespond, tc.label)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "label %q", tc.label)
	}
}

func TestMapLabelOpenVocabulary(t *testing.T) {
	_, err := MapLabel(models.TaskEmotion, "joy")
	assert.Error(t, err)
}

func TestEvaluateOpenVocabularyTask(t *testing.T) {
	_, err := Evaluate(nil, map[int]int{}, models.TaskEmotion, Options{})
	assert.Error(t, err)
}

func sentimentPreds(labels []string) []models.NormalizedPrediction {
	preds := make([]models.NormalizedPrediction, len(labels))
	for i, label := range labels {
		preds[i] = models.NormalizedPrediction{InputID: i, Task: models.TaskSentiment, Label: label}
	}
	return preds
}

// 19-record sentiment run: all Positive except two Neutral replies at
// indexes 8 and 13. 14 of 19 agree with the human labels.
func TestEvaluateSentimentScenario(t *testing.T) {
	human := []int{1, 1, -1, -1, 1, 1, 0, -1, 0, 1, 1, 1, 1, 0, 1, 1, 1, 1, 0}
	truth := make(map[int]int, len(human))
	for i, label := range human {
		truth[i] = label
	}

	labels := make([]string, len(human))
	for i := range labels {
		labels[i] = "Positive"
	}
	labels[8] = "Neutral"
	labels[13] = "Neutral"

	result, err := Evaluate(sentimentPreds(labels), truth, models.TaskSentiment, Options{})
	require.NoError(t, err)

	assert.Len(t, result.PerRecord, 19)
	assert.InDelta(t, 14.0/19.0, result.Accuracy, 1e-9)
	assert.Len(t, result.Disagreements(), 5)
	assert.Equal(t, 19, result.Confusion.Total())
	assert.Equal(t, []int{-1, 0, 1}, result.Confusion.Labels)
	assert.Equal(t, []string{"Negative", "Neutral", "Positive"}, result.Confusion.Names)
}

// 19-record respond run: 7 Yes, 12 No (some with the trailing period the
// normalizer strips), one mismatch at index 17. 18 of 19 agree.
func TestEvaluateRespondScenario(t *testing.T) {
	yesAt := map[int]bool{1: true, 4: true, 7: true, 10: true, 13: true, 16: true, 17: true}

	truth := make(map[int]int, 19)
	raw := make([]string, 19)
	for i := 0; i < 19; i++ {
		if yesAt[i] {
			truth[i] = 1
			raw[i] = "Yes"
		} else {
			truth[i] = 0
			if i%2 == 0 {
				raw[i] = "No."
			} else {
				raw[i] = "No"
			}
		}
	}
	// the one disagreement: model said Yes, annotator said no
	truth[17] = 0

	preds := make([]models.NormalizedPrediction, 19)
	for i, r := range raw {
		preds[i] = models.NormalizedPrediction{
			InputID: i,
			Task:    models.TaskRespond,
			Label:   normalize.Normalize(r),
		}
	}

	result, err := Evaluate(preds, truth, models.TaskRespond, Options{})
	require.NoError(t, err)

	assert.Len(t, result.PerRecord, 19)
	assert.InDelta(t, 18.0/19.0, result.Accuracy, 1e-9)
	assert.Equal(t, 19, result.Confusion.Total())
	assert.Equal(t, []int{0, 1}, result.Confusion.Labels)
	assert.Equal(t, []string{"No", "Yes"}, result.Confusion.Names)

	wrong := result.Disagreements()
	require.Len(t, wrong, 1)
	assert.Equal(t, 17, wrong[0].InputID)
	assert.Equal(t, 1, wrong[0].PredictedLabel)
	assert.Equal(t, 0, wrong[0].HumanLabel)
}

func TestEvaluatePartialCoverage(t *testing.T) {
	preds := sentimentPreds([]string{"Positive", "Negative", "Neutral"})
	// no human label for input 1; prediction missing for input 9
	truth := map[int]int{0: 1, 2: 0, 9: 1}

	result, err := Evaluate(preds, truth, models.TaskSentiment, Options{})
	require.NoError(t, err)

	assert.Len(t, result.PerRecord, 2)
	assert.Equal(t, 1.0, result.Accuracy)
	assert.Equal(t, 2, result.Confusion.Total())
}

func TestEvaluateUnknownPolicies(t *testing.T) {
	preds := sentimentPreds([]string{"Positive", "?", "Negative"})
	truth := map[int]int{0: 1, 1: 0, 2: -1}

	folded, err := Evaluate(preds, truth, models.TaskSentiment, Options{Unknown: UnknownFoldToZero})
	require.NoError(t, err)
	// the sentinel scores as Neutral under the reference policy
	assert.Len(t, folded.PerRecord, 3)
	assert.Equal(t, 1.0, folded.Accuracy)

	excluded, err := Evaluate(preds, truth, models.TaskSentiment, Options{Unknown: UnknownExclude})
	require.NoError(t, err)
	assert.Len(t, excluded.PerRecord, 2)
	assert.Equal(t, 1.0, excluded.Accuracy)
	assert.Equal(t, 2, excluded.Confusion.Total())
}

func TestEvaluateEmptyJoin(t *testing.T) {
	result, err := Evaluate(sentimentPreds([]string{"Positive"}), map[int]int{5: 1}, models.TaskSentiment, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.PerRecord)
	assert.Zero(t, result.Accuracy)
	assert.Zero(t, result.Confusion.Total())
}

func TestEvaluateFiltersOtherTasks(t *testing.T) {
	preds := []models.NormalizedPrediction{
		{InputID: 0, Task: models.TaskSentiment, Label: "Positive"},
		{InputID: 0, Task: models.TaskRespond, Label: "Yes"},
	}
	truth := map[int]int{0: 1}

	result, err := Evaluate(preds, truth, models.TaskSentiment, Options{})
	require.NoError(t, err)
	assert.Len(t, result.PerRecord, 1)
}

func TestConfusionMatrixCells(t *testing.T) {
	preds := sentimentPreds([]string{"Positive", "Positive", "Negative", "Neutral"})
	truth := map[int]int{0: 1, 1: -1, 2: -1, 3: 0}

	result, err := Evaluate(preds, truth, models.TaskSentiment, Options{})
	require.NoError(t, err)

	require.Equal(t, []int{-1, 0, 1}, result.Confusion.Labels)
	// rows are human labels, columns predicted
	assert.Equal(t, 1, result.Confusion.Counts[0][0]) // human Negative, predicted Negative
	assert.Equal(t, 1, result.Confusion.Counts[0][2]) // human Negative, predicted Positive
	assert.Equal(t, 1, result.Confusion.Counts[1][1]) // human Neutral, predicted Neutral
	assert.Equal(t, 1, result.Confusion.Counts[2][2]) // human Positive, predicted Positive
	assert.Equal(t, 4, result.Confusion.Total())
}
