package models

import "gorm.io/gorm"

// PlayerPosition is the field position of a player.
type PlayerPosition string

const (
	PositionGoalkeeper PlayerPosition = "POR"
	PositionDefender   PlayerPosition = "DEF"
	PositionMidfielder PlayerPosition = "MED"
	PositionForward    PlayerPosition = "DEL"
)

// PlayerStatus is the availability of a player within the squad.
type PlayerStatus string

const (
	StatusStarter    PlayerStatus = "TITULAR"
	StatusSubstitute PlayerStatus = "SUPLENTE"
	StatusInjured    PlayerStatus = "LESIONADO"
)

// Player represents one roster entry owned by a single user.
type Player struct {
	ID         string         `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID     string         `json:"user_id" gorm:"index;type:varchar(36)"`
	Name       string         `json:"name" validate:"required,min=3,max=40"`
	Position   PlayerPosition `json:"position" validate:"required,oneof=POR DEF MED DEL"`
	Age        int            `json:"age" validate:"gte=16,lte=40"`
	Number     int            `json:"number" validate:"gte=1,lte=99"` // dorsal
	Rating     int            `json:"rating" validate:"gte=40,lte=99"`
	Status     PlayerStatus   `json:"status" validate:"required,oneof=TITULAR SUPLENTE LESIONADO"`
	User       User           `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	gorm.Model                // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
