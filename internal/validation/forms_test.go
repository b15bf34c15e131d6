package validation_test

import (
	"testing"
	"time"

	"vestuario/internal/models"
	"vestuario/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestCheckPlayerForm(t *testing.T) {
	roster := []models.Player{{ID: "p1", Name: "Uno", Number: 7}}

	ok, errs := validation.CheckPlayerForm(validation.PlayerForm{
		Name:   "Sergio Ramos",
		Age:    "30",
		Number: 4,
	}, roster)
	assert.True(t, ok)
	assert.Empty(t, errs)

	// Every failing field is reported, not just the first
	ok, errs = validation.CheckPlayerForm(validation.PlayerForm{
		Name:   "X",
		Age:    "12",
		Number: 7,
	}, roster)
	assert.False(t, ok)
	assert.Len(t, errs, 3)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "age")
	assert.Contains(t, errs, "number")

	// Editing p1 with its own number passes the uniqueness check
	ok, errs = validation.CheckPlayerForm(validation.PlayerForm{
		SelfID: "p1",
		Name:   "Uno Renombrado",
		Age:    "28",
		Number: 7,
	}, roster)
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestCheckMatchForm(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	ok, errs := validation.CheckMatchForm(validation.MatchForm{
		Rival: "Rayo Norte",
		Date:  "20/03/2026",
	}, now)
	assert.True(t, ok)
	assert.Empty(t, errs)

	// Past date fails on create...
	ok, errs = validation.CheckMatchForm(validation.MatchForm{
		Rival: "Rayo Norte",
		Date:  "01/01/2020",
	}, now)
	assert.False(t, ok)
	assert.Contains(t, errs, "date")

	// ...but passes on edit
	ok, _ = validation.CheckMatchForm(validation.MatchForm{
		Rival:   "Rayo Norte",
		Date:    "01/01/2020",
		Editing: true,
	}, now)
	assert.True(t, ok)
}

func TestCheckTrainingForm(t *testing.T) {
	now := time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

	ok, errs := validation.CheckTrainingForm(validation.TrainingForm{
		Name:     "Circuito 3",
		Date:     "16/03/2026",
		Duration: "60",
	}, now)
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = validation.CheckTrainingForm(validation.TrainingForm{
		Name:     "X",
		Date:     "30/02/2026",
		Duration: "2",
	}, now)
	assert.False(t, ok)
	assert.Len(t, errs, 3)
}

func TestCheckRegisterForm(t *testing.T) {
	ok, errs := validation.CheckRegisterForm(validation.RegisterForm{
		Name:     "Ana",
		Email:    "ana@club.es",
		Password: "1234",
	})
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = validation.CheckRegisterForm(validation.RegisterForm{
		Name:     "A",
		Email:    "not-an-email",
		Password: "12",
	})
	assert.False(t, ok)
	assert.Len(t, errs, 3)
}

func TestFieldErrorsError(t *testing.T) {
	errs := validation.FieldErrors{"name": "Name is required.", "age": "Enter a valid age."}
	// Fields are sorted so the message is stable
	assert.Equal(t, "age: Enter a valid age.; name: Name is required.", errs.Error())
}
