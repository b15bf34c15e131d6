package services_test

import (
	"testing"

	"vestuario/internal/models"
	"vestuario/internal/repositories"
	"vestuario/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsService_SummaryEmpty(t *testing.T) {
	svc := services.NewStatsService(
		repositories.NewMockPlayerRepository(),
		repositories.NewMockMatchRepository(),
		repositories.NewMockTrainingRepository(),
	)

	stats, err := svc.Summary("u1")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalPlayers)
	assert.Zero(t, stats.AvgRating)
	assert.Nil(t, stats.BestPlayer)
	assert.Zero(t, stats.TotalMatches)
	assert.Nil(t, stats.LastMatch)
	assert.Zero(t, stats.TotalTrainings)
	assert.Nil(t, stats.LastTraining)
}

func TestStatsService_Summary(t *testing.T) {
	playerRepo := repositories.NewMockPlayerRepository()
	matchRepo := repositories.NewMockMatchRepository()
	trainingRepo := repositories.NewMockTrainingRepository()

	playerSvc := services.NewPlayerService(playerRepo, nil, nil)
	matchSvc := services.NewMatchService(matchRepo, nil, nil)
	trainingSvc := services.NewTrainingService(trainingRepo, nil, nil)

	squad := []models.Player{
		{Name: "Portero Uno", Position: models.PositionGoalkeeper, Age: 28, Number: 1, Rating: 80, Status: models.StatusStarter},
		{Name: "Central Dos", Position: models.PositionDefender, Age: 30, Number: 2, Rating: 90, Status: models.StatusStarter},
		{Name: "Extremo Tres", Position: models.PositionForward, Age: 22, Number: 11, Rating: 70, Status: models.StatusSubstitute},
		{Name: "Medio Cuatro", Position: models.PositionMidfielder, Age: 26, Number: 8, Rating: 76, Status: models.StatusInjured},
	}
	for _, p := range squad {
		_, err := playerSvc.SavePlayer("u1", p)
		require.NoError(t, err)
	}

	matches := []models.Match{
		matchFixture("Rayo Norte", 3, 1),
		matchFixture("Atletico Sur", 1, 1),
		matchFixture("Deportivo Este", 0, 2),
	}
	matches[1].Competition = models.CompetitionCup
	matches[2].Competition = models.CompetitionFriendly
	var lastMatchID string
	for _, m := range matches {
		saved, err := matchSvc.SaveMatch("u1", m)
		require.NoError(t, err)
		lastMatchID = saved.ID
	}

	var lastTrainingID string
	for _, tr := range []models.Training{trainingFixture("Rondos", 60), trainingFixture("Sprints 2", 30)} {
		saved, err := trainingSvc.SaveTraining("u1", tr)
		require.NoError(t, err)
		lastTrainingID = saved.ID
	}

	svc := services.NewStatsService(playerRepo, matchRepo, trainingRepo)
	stats, err := svc.Summary("u1")
	require.NoError(t, err)

	assert.Equal(t, 4, stats.TotalPlayers)
	assert.Equal(t, 2, stats.Starters)
	assert.Equal(t, 1, stats.Substitutes)
	assert.Equal(t, 1, stats.Injured)
	assert.InDelta(t, 79.0, stats.AvgRating, 0.001)
	require.NotNil(t, stats.BestPlayer)
	assert.Equal(t, "Central Dos", stats.BestPlayer.Name)

	assert.Equal(t, 3, stats.TotalMatches)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 1, stats.Draws)
	assert.Equal(t, 1, stats.Losses)
	assert.Equal(t, 4, stats.GoalsFor)
	assert.Equal(t, 4, stats.GoalsAgainst)
	assert.Equal(t, 1, stats.LeagueCount)
	assert.Equal(t, 1, stats.CupCount)
	assert.Equal(t, 1, stats.FriendlyCount)
	require.NotNil(t, stats.LastMatch)
	assert.Equal(t, lastMatchID, stats.LastMatch.ID)

	assert.Equal(t, 2, stats.TotalTrainings)
	assert.Equal(t, 90, stats.TotalMinutes)
	assert.InDelta(t, 45.0, stats.AvgMinutes, 0.001)
	require.NotNil(t, stats.LastTraining)
	assert.Equal(t, lastTrainingID, stats.LastTraining.ID)

	// Another user's dashboard is untouched
	empty, err := svc.Summary("u2")
	require.NoError(t, err)
	assert.Zero(t, empty.TotalPlayers)
}
