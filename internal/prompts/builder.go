package prompts

import (
	"fmt"
	"strings"

	"commenteval/internal/models"
	"commenteval/internal/normalize"
)

const personaPreamble = "You are a social media analyst for a small business. " +
	"You will be shown a Facebook post written by the business (marked " +
	normalize.BusinessMarker + ") and one comment left by a group member (marked " +
	normalize.MemberMarker + ")."

const uncertaintyFallback = `If you are not confident in your answer, reply with exactly "?" and nothing else.`

// TemplateError means prompt construction failed for one record. The record
// is surfaced as "not attempted"; it is never silently dropped.
type TemplateError struct {
	InputID int
	Reason  string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("prompt template: input %d: %s", e.InputID, e.Reason)
}

// Build assembles the full prompt for one task over one record: persona
// preamble, task instruction, the record text wrapped verbatim in a triple
// backtick fence, and the uncertainty fallback. The fence keeps quotes,
// hashtags and emoji in the text from reading as instructions.
func Build(task models.TaskDefinition, rec models.InputRecord) (string, error) {
	if strings.TrimSpace(rec.Text) == "" {
		return "", &TemplateError{InputID: rec.ID, Reason: "text field is empty"}
	}

	var b strings.Builder
	b.WriteString(personaPreamble)
	b.WriteString("\n\n")
	b.WriteString(task.Instruction)
	b.WriteString("\n\n```\n")
	b.WriteString(rec.Text)
	b.WriteString("\n```\n\n")
	b.WriteString(uncertaintyFallback)
	return b.String(), nil
}
