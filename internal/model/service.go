package model

import (
	"time"

	"github.com/google/uuid"
)

// Вид услуги ситтера.
type ServiceKind string

const (
	ServiceKindBoarding     ServiceKind = "boarding"
	ServiceKindDaycare      ServiceKind = "daycare"
	ServiceKindWalking      ServiceKind = "walking"
	ServiceKindHouseSitting ServiceKind = "house_sitting"
	ServiceKindDropIn       ServiceKind = "drop_in"
)

// sitter_services — предложения услуг ситтера. Ноль и более на ситтера.
type SitterService struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	SitterID uuid.UUID `gorm:"type:uuid;not null;index"`

	Service ServiceKind `gorm:"type:varchar(32);not null;index"`

	// Цена в минорных единицах валюты.
	PriceCents int64 `gorm:"type:bigint;not null"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Sitter *Sitter `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
