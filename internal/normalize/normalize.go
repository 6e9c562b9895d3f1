package normalize

import "strings"

// Role markers the collection layer embeds in InputRecord.Text. The model
// occasionally echoes them back, so normalization maps them to the short
// display tags used in reports.
const (
	BusinessMarker = "[BUSINESS]"
	MemberMarker   = "[MEMBER]"
)

// Sentinel is the literal reply the prompts mandate when the model is not
// confident. Normalization must pass it through untouched.
const Sentinel = "?"

// trailing sentence punctuation stripped so "No." scores as "No"; the
// sentinel '?' is deliberately not in this set
const trailingPunct = ".,!;:"

var markerReplacer = strings.NewReplacer(
	BusinessMarker, "Business:",
	MemberMarker, "Member:",
)

// Normalize turns a raw model reply into a comparable label: outer
// whitespace trimmed, embedded newlines collapsed to single spaces, echoed
// role markers replaced with display tags, trailing sentence punctuation
// dropped. Pure and idempotent.
func Normalize(raw string) string {
	s := strings.Join(strings.Fields(raw), " ")
	s = markerReplacer.Replace(s)
	s = strings.TrimRight(s, trailingPunct)
	return strings.TrimSpace(s)
}
