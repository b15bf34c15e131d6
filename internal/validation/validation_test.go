package validation_test

import (
	"testing"
	"time"

	"vestuario/internal/models"
	"vestuario/internal/validation"

	"github.com/stretchr/testify/assert"
)

func TestPlayerName(t *testing.T) {
	// Valid names, accents and separators included
	assert.Empty(t, validation.PlayerName("Sergio Ramos"))
	assert.Empty(t, validation.PlayerName("  Iñaki Peña  "))
	assert.Empty(t, validation.PlayerName("N'Golo Kanté"))
	assert.Empty(t, validation.PlayerName("Jean-Pierre"))

	// Required
	assert.Equal(t, "Name is required.", validation.PlayerName(""))
	assert.Equal(t, "Name is required.", validation.PlayerName("   "))

	// Length bounds apply after trimming
	assert.Contains(t, validation.PlayerName("Al"), "at least 3")
	assert.Empty(t, validation.PlayerName("Ali"))
	long := "Maximiliano Alejandro Fernandez Gutierrez"
	assert.Contains(t, validation.PlayerName(long), "cannot exceed 40")

	// Doubled spaces and foreign characters
	assert.Equal(t, "Avoid double spaces.", validation.PlayerName("Juan  Perez"))
	assert.Equal(t, "Only letters and spaces (' and - allowed).", validation.PlayerName("Player 10"))
	assert.Equal(t, "Only letters and spaces (' and - allowed).", validation.PlayerName("Juan_Perez"))
}

func TestSessionName(t *testing.T) {
	// Digits are fine in session names
	assert.Empty(t, validation.SessionName("Sprints 2"))
	assert.Empty(t, validation.SessionName("  Rondos  "))

	assert.Equal(t, "Name is required.", validation.SessionName("   "))
	assert.Equal(t, "Minimum 3 characters.", validation.SessionName("Ab"))
	assert.Equal(t, "Must contain letters or digits.", validation.SessionName("---"))
}

func TestAge(t *testing.T) {
	assert.Empty(t, validation.Age("16"))
	assert.Empty(t, validation.Age("40"))
	assert.Empty(t, validation.Age(" 25 "))

	assert.Equal(t, "Age is required.", validation.Age(""))
	assert.Equal(t, "Enter a valid age.", validation.Age("abc"))
	assert.Equal(t, "Age must be between 16 and 40.", validation.Age("15"))
	assert.Equal(t, "Age must be between 16 and 40.", validation.Age("41"))
}

func TestDorsalUnique(t *testing.T) {
	roster := []models.Player{
		{ID: "p1", Name: "Uno", Number: 7},
		{ID: "p2", Name: "Dos", Number: 9},
	}

	// Free number
	assert.Empty(t, validation.DorsalUnique(10, "", roster))

	// Taken by another player
	assert.Equal(t, "Number #7 is already assigned to another player.",
		validation.DorsalUnique(7, "", roster))

	// Editing a player keeps its own number valid
	assert.Empty(t, validation.DorsalUnique(7, "p1", roster))
	assert.NotEmpty(t, validation.DorsalUnique(9, "p1", roster))
}

func TestDate(t *testing.T) {
	now := time.Date(2026, time.March, 15, 10, 0, 0, 0, time.UTC)

	assert.Empty(t, validation.Date("15/03/2026", false, now))
	assert.Empty(t, validation.Date("01/01/2027", false, now))

	assert.Equal(t, "Date is required.", validation.Date("", false, now))
	assert.Equal(t, "Invalid format. Use dd/MM/yyyy.", validation.Date("2026-03-15", false, now))
	assert.Equal(t, "Invalid format. Use dd/MM/yyyy.", validation.Date("1/1/2026", false, now))

	// Calendar-correct: February never has 30 days
	assert.Equal(t, "Invalid date. Check day/month.", validation.Date("30/02/2026", false, now))
	assert.Equal(t, "Invalid date. Check day/month.", validation.Date("31/04/2026", false, now))

	// Past dates are rejected on create but accepted on edit
	assert.Equal(t, "Date cannot be earlier than today.", validation.Date("01/01/2020", false, now))
	assert.Empty(t, validation.Date("01/01/2020", true, now))

	// Today itself is never "earlier than today"
	assert.Empty(t, validation.Date("15/03/2026", false, now))
}

func TestDuration(t *testing.T) {
	assert.Empty(t, validation.Duration("5"))
	assert.Empty(t, validation.Duration("300"))
	assert.Empty(t, validation.Duration(" 90 "))

	assert.Equal(t, "Duration is required.", validation.Duration(""))
	assert.Equal(t, "Must be a number.", validation.Duration("an hour"))
	assert.Equal(t, "Minimum 5 minutes.", validation.Duration("4"))
	assert.Equal(t, "Maximum 300 minutes.", validation.Duration("301"))
}

func TestDeriveResult(t *testing.T) {
	assert.Equal(t, models.ResultWin, validation.DeriveResult(3, 1))
	assert.Equal(t, models.ResultWin, validation.DeriveResult(1, 0))
	assert.Equal(t, models.ResultDraw, validation.DeriveResult(0, 0))
	assert.Equal(t, models.ResultDraw, validation.DeriveResult(2, 2))
	assert.Equal(t, models.ResultLoss, validation.DeriveResult(0, 1))
	assert.Equal(t, models.ResultLoss, validation.DeriveResult(1, 4))
}

func TestDisplayName(t *testing.T) {
	assert.Empty(t, validation.DisplayName("Ana"))
	assert.NotEmpty(t, validation.DisplayName("Al"))
	assert.NotEmpty(t, validation.DisplayName("  A  "))
}

func TestEmail(t *testing.T) {
	assert.Empty(t, validation.Email("user@gmail.com"))
	assert.Empty(t, validation.Email("  USER@Gmail.COM  ")) // normalized before matching
	assert.Empty(t, validation.Email("a.b+c@sub.domain.org"))

	assert.Equal(t, "Enter a valid email address.", validation.Email(""))
	assert.Equal(t, "Enter a valid email address.", validation.Email("user"))
	assert.Equal(t, "Enter a valid email address.", validation.Email("user@"))
	assert.Equal(t, "Enter a valid email address.", validation.Email("user@domain"))
	assert.Equal(t, "Enter a valid email address.", validation.Email("user@domain.c"))
}

func TestPassword(t *testing.T) {
	assert.Empty(t, validation.Password("1234"))
	assert.Empty(t, validation.Password("longer password"))
	assert.Equal(t, "Password must be at least 4 characters.", validation.Password("123"))
	assert.Equal(t, "Password must be at least 4 characters.", validation.Password(""))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "user@gmail.com", validation.NormalizeEmail("  User@GMAIL.com "))
	assert.Equal(t, "user@gmail.com", validation.NormalizeEmail("user@gmail.com"))
}
