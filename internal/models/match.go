package models

import "gorm.io/gorm"

// Competition classifies the fixture a match belongs to.
type Competition string

const (
	CompetitionLeague   Competition = "LIGA"
	CompetitionCup      Competition = "COPA"
	CompetitionFriendly Competition = "AMISTOSO"
)

// MatchResult is derived from the scoreline, never set directly.
type MatchResult string

const (
	ResultWin  MatchResult = "VICTORIA"
	ResultDraw MatchResult = "EMPATE"
	ResultLoss MatchResult = "DERROTA"
)

// Match represents one played fixture owned by a single user.
type Match struct {
	ID           string      `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID       string      `json:"user_id" gorm:"index;type:varchar(36)"`
	Rival        string      `json:"rival" validate:"required,min=3,max=40"`
	DateText     string      `json:"date_text" gorm:"column:date_text"` // dd/MM/yyyy
	Competition  Competition `json:"competition" validate:"required,oneof=LIGA COPA AMISTOSO"`
	GoalsFor     int         `json:"goals_for" validate:"gte=0"`
	GoalsAgainst int         `json:"goals_against" validate:"gte=0"`
	Result       MatchResult `json:"result"`
	User         User        `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
