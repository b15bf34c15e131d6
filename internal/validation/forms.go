package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"vestuario/internal/models"
)

// FieldErrors is the per-field error map handed back across the form
// submission boundary. It doubles as an error so services can refuse a save
// while any field is invalid.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(e))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e[f]))
	}
	return strings.Join(parts, "; ")
}

// The form checkers aggregate the per-field validators the way the edit
// screens do: every relevant field is evaluated, the result is an overall
// ok flag plus a field -> message map for everything that failed. A save
// must be refused while ok is false.

// PlayerForm carries the raw player form fields.
type PlayerForm struct {
	SelfID string // empty when creating
	Name   string
	Age    string
	Number int
}

// CheckPlayerForm validates a player form against the user's current roster.
func CheckPlayerForm(f PlayerForm, roster []models.Player) (bool, map[string]string) {
	errs := make(map[string]string)
	if msg := PlayerName(f.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Age(f.Age); msg != "" {
		errs["age"] = msg
	}
	if msg := DorsalUnique(f.Number, f.SelfID, roster); msg != "" {
		errs["number"] = msg
	}
	return len(errs) == 0, errs
}

// MatchForm carries the raw match form fields. The result is derived, not
// validated: DeriveResult is total.
type MatchForm struct {
	Rival   string
	Date    string
	Editing bool
}

// CheckMatchForm validates a match form. now anchors the past-date check.
func CheckMatchForm(f MatchForm, now time.Time) (bool, map[string]string) {
	errs := make(map[string]string)
	if msg := PlayerName(f.Rival); msg != "" {
		errs["rival"] = msg
	}
	if msg := Date(f.Date, f.Editing, now); msg != "" {
		errs["date"] = msg
	}
	return len(errs) == 0, errs
}

// TrainingForm carries the raw training form fields.
type TrainingForm struct {
	Name     string
	Date     string
	Duration string
	Editing  bool
}

// CheckTrainingForm validates a training form. now anchors the past-date check.
func CheckTrainingForm(f TrainingForm, now time.Time) (bool, map[string]string) {
	errs := make(map[string]string)
	if msg := SessionName(f.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Date(f.Date, f.Editing, now); msg != "" {
		errs["date"] = msg
	}
	if msg := Duration(f.Duration); msg != "" {
		errs["duration"] = msg
	}
	return len(errs) == 0, errs
}

// RegisterForm carries the raw registration fields.
type RegisterForm struct {
	Name     string
	Email    string
	Password string
}

// CheckRegisterForm validates the registration fields.
func CheckRegisterForm(f RegisterForm) (bool, map[string]string) {
	errs := make(map[string]string)
	if msg := DisplayName(f.Name); msg != "" {
		errs["name"] = msg
	}
	if msg := Email(f.Email); msg != "" {
		errs["email"] = msg
	}
	if msg := Password(f.Password); msg != "" {
		errs["password"] = msg
	}
	return len(errs) == 0, errs
}
