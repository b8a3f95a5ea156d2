package booking

import (
	"regexp"
	"strings"

	"github.com/divanshu1993/babli-bua-wedding-assistant/internal/models"
)

// phonePattern matches an optional leading + followed by 10 to 13 digits,
// tolerating a single space or dash between digits (e.g. "+91 98765 43210").
var phonePattern = regexp.MustCompile(`\+?\d(?:[ -]?\d){9,12}`)

var nonDigit = regexp.MustCompile(`\D`)

// Outcome classifies the result of a booking lookup.
type Outcome int

const (
	// NoPhoneMentioned means the message contained nothing phone-like.
	NoPhoneMentioned Outcome = iota
	// NotFound means a phone was mentioned but no guest's number ends with it.
	NotFound
	// Match means a guest booking was found.
	Match
)

// Result carries the lookup outcome, the normalized phone extracted from the
// message (empty when none was found), and the matched guest when Outcome is Match.
type Result struct {
	Outcome Outcome
	Phone   string
	Guest   *models.GuestBooking
}

// NormalizePhone strips every non-digit rune. Applying it to an already
// digits-only string returns the string unchanged.
func NormalizePhone(s string) string {
	return nonDigit.ReplaceAllString(s, "")
}

// ExtractPhone returns the first phone-like substring of message in
// normalized form, or "" when the message mentions no phone number.
func ExtractPhone(message string) string {
	m := phonePattern.FindString(message)
	if m == "" {
		return ""
	}
	return NormalizePhone(m)
}

// Resolve looks up the guest booking referenced by the message. Only the
// first phone-like substring is considered. A guest matches when its stored
// phone, normalized, is non-empty and ends with the normalized query; the
// query being longer than the stored number is never a match. With several
// matching guests the first in roster order wins.
func Resolve(message string, guests []models.GuestBooking) Result {
	query := ExtractPhone(message)
	if query == "" {
		return Result{Outcome: NoPhoneMentioned}
	}

	for i := range guests {
		stored := NormalizePhone(guests[i].Phone)
		if stored == "" {
			continue
		}
		if strings.HasSuffix(stored, query) {
			return Result{Outcome: Match, Phone: query, Guest: &guests[i]}
		}
	}
	return Result{Outcome: NotFound, Phone: query}
}
