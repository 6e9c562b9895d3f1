// Package baseline produces offline sentiment labels with VADER so the
// provider's predictions can be compared against a model-free reference
// through the same evaluation engine.
package baseline

import (
	"regexp"
	"strings"

	"github.com/jonreiter/govader"
	"github.com/russross/blackfriday/v2"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

var analyzer = govader.NewSentimentIntensityAnalyzer()

func RemoveLinks(input string) string {
	linkPattern := regexp.MustCompile(`\[(.*?)\]\((https?:\/\/[^\s\)]+)\)`)
	input = linkPattern.ReplaceAllString(input, "$1") // Keep only the text

	urlPattern := regexp.MustCompile(`https?://\S+|www\.\S+`)
	input = urlPattern.ReplaceAllString(input, "")

	return input
}

func ConvertMarkdownToText(input string) string {
	output := blackfriday.Run([]byte(input), blackfriday.WithNoExtensions())
	plainText := strings.Join(strings.Fields(string(output)), " ")

	return RemoveLinks(plainText)
}

// memberText isolates the member comment from the role-marked thread so the
// business post's own wording does not skew the score.
func memberText(text string) string {
	if _, after, found := strings.Cut(text, normalize.MemberMarker); found {
		return strings.TrimSpace(after)
	}
	return text
}

// AnalyzeComment scores one thread's member comment and maps the compound
// score onto the sentiment label space.
func AnalyzeComment(text string) (float64, string) {
	plainText := ConvertMarkdownToText(memberText(text))

	sentiment := analyzer.PolarityScores(plainText)
	score := sentiment.Compound

	var label string
	if score >= 0.20 {
		label = "Positive"
	} else if score <= -0.20 {
		label = "Negative"
	} else {
		label = "Neutral"
	}

	return score, label
}

// Annotate runs VADER over the batch and returns sentiment predictions in
// the same shape the provider path produces.
func Annotate(inputs []models.InputRecord) []models.NormalizedPrediction {
	preds := make([]models.NormalizedPrediction, 0, len(inputs))
	for _, rec := range inputs {
		_, label := AnalyzeComment(rec.Text)
		preds = append(preds, models.NormalizedPrediction{
			InputID: rec.ID,
			Task:    models.TaskSentiment,
			Label:   label,
		})
	}
	return preds
}
