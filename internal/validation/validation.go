// Package validation holds the pure field validators behind every create/edit
// form. Each validator takes raw field input and returns a user-displayable
// message, or "" when the field is acceptable. Validators never panic and
// never touch storage; relational checks (dorsal uniqueness) take the current
// collection as an argument.
package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"vestuario/internal/models"
)

const (
	MinNameLen = 3
	MaxNameLen = 40

	MinAge = 16
	MaxAge = 40

	MinDorsal = 1
	MaxDorsal = 99

	MinDurationMin = 5
	MaxDurationMin = 300

	MinPasswordLen = 4

	// DateLayout is the only accepted date shape, dd/MM/yyyy.
	DateLayout = "02/01/2006"
)

var (
	personNameRe   = regexp.MustCompile(`^[A-Za-zÁÉÍÓÚÜÑáéíóúüñ' -]+$`)
	doubleSpacesRe = regexp.MustCompile(`\s{2,}`)
	dateShapeRe    = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)
	emailRe        = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

// PlayerName checks a player name: non-blank, length in [3,40], no doubled
// internal spaces, letters (accented included), spaces, apostrophe and hyphen.
func PlayerName(raw string) string {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "Name is required."
	case len([]rune(name)) < MinNameLen:
		return fmt.Sprintf("Name must be at least %d characters.", MinNameLen)
	case len([]rune(name)) > MaxNameLen:
		return fmt.Sprintf("Name cannot exceed %d characters.", MaxNameLen)
	case doubleSpacesRe.MatchString(name):
		return "Avoid double spaces."
	case !personNameRe.MatchString(name):
		return "Only letters and spaces (' and - allowed)."
	}
	return ""
}

// SessionName checks a training session name: non-blank, length in [3,40],
// and at least one letter or digit. Session names allow numbering
// ("Sprints 2"), so the character set is looser than PlayerName.
func SessionName(raw string) string {
	name := strings.TrimSpace(raw)
	switch {
	case name == "":
		return "Name is required."
	case len([]rune(name)) < MinNameLen:
		return fmt.Sprintf("Minimum %d characters.", MinNameLen)
	case len([]rune(name)) > MaxNameLen:
		return fmt.Sprintf("Maximum %d characters.", MaxNameLen)
	}
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return ""
		}
	}
	return "Must contain letters or digits."
}

// Age checks a raw age field: required, numeric, within [16,40].
func Age(raw string) string {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return "Age is required."
	}
	v, err := strconv.Atoi(txt)
	if err != nil {
		return "Enter a valid age."
	}
	if v < MinAge || v > MaxAge {
		return fmt.Sprintf("Age must be between %d and %d.", MinAge, MaxAge)
	}
	return ""
}

// DorsalUnique fails when any other player in the roster already wears the
// number. The record being edited excludes itself by ID.
func DorsalUnique(number int, selfID string, roster []models.Player) string {
	for _, p := range roster {
		if p.ID != selfID && p.Number == number {
			return fmt.Sprintf("Number #%d is already assigned to another player.", number)
		}
	}
	return ""
}

// Date checks a raw date field: strict dd/MM/yyyy shape, calendar-correct
// (rejects 30/02 and the like), and, unless allowPast is set, not before the
// day of now. Editing an existing record passes allowPast=true so historic
// dates stay valid.
func Date(raw string, allowPast bool, now time.Time) string {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return "Date is required."
	}
	if !dateShapeRe.MatchString(txt) {
		return "Invalid format. Use dd/MM/yyyy."
	}
	day, err := time.Parse(DateLayout, txt)
	if err != nil {
		return "Invalid date. Check day/month."
	}
	if !allowPast {
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if day.Before(today) {
			return "Date cannot be earlier than today."
		}
	}
	return ""
}

// Duration checks a raw duration field: required, numeric, within [5,300] minutes.
func Duration(raw string) string {
	txt := strings.TrimSpace(raw)
	if txt == "" {
		return "Duration is required."
	}
	minutes, err := strconv.Atoi(txt)
	if err != nil {
		return "Must be a number."
	}
	if minutes < MinDurationMin {
		return fmt.Sprintf("Minimum %d minutes.", MinDurationMin)
	}
	if minutes > MaxDurationMin {
		return fmt.Sprintf("Maximum %d minutes.", MaxDurationMin)
	}
	return ""
}

// DeriveResult computes the match result from the scoreline. Total function,
// recomputed whenever either score changes.
func DeriveResult(goalsFor, goalsAgainst int) models.MatchResult {
	switch {
	case goalsFor > goalsAgainst:
		return models.ResultWin
	case goalsFor == goalsAgainst:
		return models.ResultDraw
	default:
		return models.ResultLoss
	}
}

// DisplayName checks an account display name: at least 3 characters trimmed.
func DisplayName(raw string) string {
	if len([]rune(strings.TrimSpace(raw))) < MinNameLen {
		return fmt.Sprintf("Name must be at least %d characters.", MinNameLen)
	}
	return ""
}

// Email checks a raw email against a standard local@domain.tld shape. The
// input is normalized (trimmed, lower-cased) before matching, same as storage.
func Email(raw string) string {
	if !emailRe.MatchString(NormalizeEmail(raw)) {
		return "Enter a valid email address."
	}
	return ""
}

// Password checks a raw password: at least 4 characters.
func Password(raw string) string {
	if len([]rune(raw)) < MinPasswordLen {
		return fmt.Sprintf("Password must be at least %d characters.", MinPasswordLen)
	}
	return ""
}

// NormalizeEmail trims surrounding whitespace and lower-cases the address.
// Every store lookup and comparison uses this form.
func NormalizeEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
