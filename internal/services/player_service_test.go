package services_test

import (
	"testing"
	"time"

	apperrors "vestuario/internal/errors"
	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/services"
	"vestuario/internal/validation"
	"vestuario/internal/watch"
	"vestuario/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playerFixture(name string, number int) models.Player {
	return models.Player{
		Name:     name,
		Position: models.PositionDefender,
		Age:      25,
		Number:   number,
		Rating:   80,
		Status:   models.StatusStarter,
	}
}

func TestPlayerService_SaveCreatesAndLists(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	first, err := svc.SavePlayer("u1", playerFixture("Sergio Ramos", 4))
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)

	second, err := svc.SavePlayer("u1", playerFixture("Iker Casillas", 1))
	require.NoError(t, err)

	// Newest first
	roster, err := svc.ListPlayers("u1")
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, second.ID, roster[0].ID)
	assert.Equal(t, first.ID, roster[1].ID)

	// Other users see nothing
	other, err := svc.ListPlayers("u2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestPlayerService_SaveValidates(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	bad := playerFixture("X", 4)
	bad.Age = 12
	_, err := svc.SavePlayer("u1", bad)
	require.Error(t, err)

	var fieldErrs validation.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "age")
}

func TestPlayerService_DorsalClash(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	created, err := svc.SavePlayer("u1", playerFixture("Sergio Ramos", 4))
	require.NoError(t, err)

	// A second player with the same number is a uniqueness violation
	_, err = svc.SavePlayer("u1", playerFixture("Raul Albiol", 4))
	assert.ErrorIs(t, err, apperrors.ErrUniquenessViolation)

	// Editing the player keeps its own number valid
	created.Name = "Sergio Ramos Garcia"
	updated, err := svc.SavePlayer("u1", *created)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Sergio Ramos Garcia", updated.Name)

	// Another user can reuse the number freely
	_, err = svc.SavePlayer("u2", playerFixture("Otro Cuatro", 4))
	assert.NoError(t, err)
}

func TestPlayerService_SaveNormalizes(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	p := playerFixture("  Luka Modric  ", 10)
	p.Rating = 150
	p.Position = ""
	p.Status = ""
	saved, err := svc.SavePlayer("u1", p)
	require.NoError(t, err)

	assert.Equal(t, "Luka Modric", saved.Name)
	assert.Equal(t, 99, saved.Rating) // clamped into [40,99]
	assert.Equal(t, models.PositionMidfielder, saved.Position)
	assert.Equal(t, models.StatusStarter, saved.Status)

	low := playerFixture("Portero Suplente", 13)
	low.Rating = 10
	saved, err = svc.SavePlayer("u1", low)
	require.NoError(t, err)
	assert.Equal(t, 40, saved.Rating)
}

func TestPlayerService_EditKeepsCreationTime(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	created, err := svc.SavePlayer("u1", playerFixture("Sergio Ramos", 4))
	require.NoError(t, err)

	// Stamp the stored record the way the real store does on insert.
	createdAt := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	created.CreatedAt = createdAt
	require.NoError(t, repo.Update(created))

	// Edits arrive as body-shaped structs without timestamps; the stored
	// creation time must survive.
	edit := playerFixture("Sergio Ramos Garcia", 4)
	edit.ID = created.ID
	saved, err := svc.SavePlayer("u1", edit)
	require.NoError(t, err)
	assert.True(t, saved.CreatedAt.Equal(createdAt))

	stored, err := svc.GetPlayer("u1", created.ID)
	require.NoError(t, err)
	assert.True(t, stored.CreatedAt.Equal(createdAt))
	assert.Equal(t, "Sergio Ramos Garcia", stored.Name)
}

func TestPlayerService_EditUnknownID(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	svc := services.NewPlayerService(repo, nil, nil)

	ghost := playerFixture("Jugador Fantasma", 8)
	ghost.ID = "11111111-2222-3333-4444-555555555555"
	_, err := svc.SavePlayer("u1", ghost)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPlayerService_DeleteNotifies(t *testing.T) {
	repo := repositories.NewMockPlayerRepository()
	hub := watch.NewHub()
	publisher := &capturePublisher{}
	svc := services.NewPlayerService(repo, hub, publisher)

	ticks, cancel := hub.Subscribe("u1", watch.Players)
	defer cancel()

	saved, err := svc.SavePlayer("u1", playerFixture("Sergio Ramos", 4))
	require.NoError(t, err)
	assert.Len(t, ticks, 1)
	<-ticks

	err = svc.DeletePlayer("u1", saved.ID)
	require.NoError(t, err)
	assert.Len(t, ticks, 1)

	assert.Equal(t, []string{events.PlayerSaved, events.PlayerDeleted}, publisher.keys)

	// A user cannot delete someone else's player
	again, err := svc.SavePlayer("u1", playerFixture("Iker Casillas", 1))
	require.NoError(t, err)
	err = svc.DeletePlayer("u2", again.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
