package model

import (
	"time"

	"github.com/google/uuid"
)

// reviews — отзывы о ситтере. Неизменяемы после создания:
// движок поиска их только читает.
type Review struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	SitterID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Автор отзыва (владелец животного).
	OwnerID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Оценка 1–5.
	Rating int `gorm:"not null"`

	Comment string `gorm:"type:text"`

	CreatedAt time.Time `gorm:"not null;default:now();index"`

	// Навигационные поля
	Sitter *Sitter `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Owner  *User   `gorm:"foreignKey:OwnerID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}
