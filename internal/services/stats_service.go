package services

import (
	"vestuario/internal/models"
	"vestuario/internal/repositories"
)

// TeamStats is the aggregated dashboard read model for one user.
type TeamStats struct {
	// Squad
	TotalPlayers int            `json:"total_players"`
	Starters     int            `json:"starters"`
	Substitutes  int            `json:"substitutes"`
	Injured      int            `json:"injured"`
	AvgRating    float64        `json:"avg_rating"`
	BestPlayer   *models.Player `json:"best_player,omitempty"`

	// Matches
	TotalMatches  int           `json:"total_matches"`
	Wins          int           `json:"wins"`
	Draws         int           `json:"draws"`
	Losses        int           `json:"losses"`
	GoalsFor      int           `json:"goals_for"`
	GoalsAgainst  int           `json:"goals_against"`
	LeagueCount   int           `json:"league_count"`
	CupCount      int           `json:"cup_count"`
	FriendlyCount int           `json:"friendly_count"`
	LastMatch     *models.Match `json:"last_match,omitempty"`

	// Trainings
	TotalTrainings int              `json:"total_trainings"`
	TotalMinutes   int              `json:"total_minutes"`
	AvgMinutes     float64          `json:"avg_minutes"`
	LastTraining   *models.Training `json:"last_training,omitempty"`
}

// StatsService aggregates roster, match and training figures for the
// dashboard.
type StatsService struct {
	playerRepo   repositories.PlayerRepository
	matchRepo    repositories.MatchRepository
	trainingRepo repositories.TrainingRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	playerRepo repositories.PlayerRepository,
	matchRepo repositories.MatchRepository,
	trainingRepo repositories.TrainingRepository,
) *StatsService {
	return &StatsService{
		playerRepo:   playerRepo,
		matchRepo:    matchRepo,
		trainingRepo: trainingRepo,
	}
}

// Summary computes the dashboard figures for one user. Lists come back newest
// first, so the first element is the most recent record.
func (s *StatsService) Summary(userID string) (*TeamStats, error) {
	players, err := s.playerRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	trainings, err := s.trainingRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := &TeamStats{
		TotalPlayers:   len(players),
		TotalMatches:   len(matches),
		TotalTrainings: len(trainings),
	}

	ratingSum := 0
	for i := range players {
		p := &players[i]
		switch p.Status {
		case models.StatusStarter:
			stats.Starters++
		case models.StatusSubstitute:
			stats.Substitutes++
		case models.StatusInjured:
			stats.Injured++
		}
		ratingSum += p.Rating
		if stats.BestPlayer == nil || p.Rating > stats.BestPlayer.Rating {
			stats.BestPlayer = p
		}
	}
	if len(players) > 0 {
		stats.AvgRating = float64(ratingSum) / float64(len(players))
	}

	for i := range matches {
		m := &matches[i]
		switch m.Result {
		case models.ResultWin:
			stats.Wins++
		case models.ResultDraw:
			stats.Draws++
		case models.ResultLoss:
			stats.Losses++
		}
		stats.GoalsFor += m.GoalsFor
		stats.GoalsAgainst += m.GoalsAgainst
		switch m.Competition {
		case models.CompetitionLeague:
			stats.LeagueCount++
		case models.CompetitionCup:
			stats.CupCount++
		case models.CompetitionFriendly:
			stats.FriendlyCount++
		}
	}
	if len(matches) > 0 {
		stats.LastMatch = &matches[0]
	}

	for i := range trainings {
		stats.TotalMinutes += trainings[i].DurationMin
	}
	if len(trainings) > 0 {
		stats.AvgMinutes = float64(stats.TotalMinutes) / float64(len(trainings))
		stats.LastTraining = &trainings[0]
	}

	return stats, nil
}
