package models

import "gorm.io/gorm"

// TrainingType classifies a training session.
type TrainingType string

const (
	TrainingStrength  TrainingType = "FUERZA"
	TrainingEndurance TrainingType = "RESISTENCIA"
	TrainingSpeed     TrainingType = "VELOCIDAD"
	TrainingTechnique TrainingType = "TECNICA"
	TrainingRecovery  TrainingType = "RECUPERACION"
)

// Training represents one training session owned by a single user.
type Training struct {
	ID          string       `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string       `json:"user_id" gorm:"index;type:varchar(36)"`
	Name        string       `json:"name" validate:"required,min=3,max=40"`
	DateText    string       `json:"date_text" gorm:"column:date_text"` // dd/MM/yyyy
	DurationMin int          `json:"duration_min" validate:"gte=5,lte=300"`
	Type        TrainingType `json:"type" validate:"required,oneof=FUERZA RESISTENCIA VELOCIDAD TECNICA RECUPERACION"`
	User        User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	gorm.Model               // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
