package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// availabilities — по одной записи на пару (ситтер, календарный день).
// Отсутствие записи на день трактуется как "недоступен".
type Availability struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	SitterID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_sitter_date"`

	// Чистая дата без времени — datatypes.Date
	Date datatypes.Date `gorm:"type:date;not null;uniqueIndex:uniq_sitter_date;index"`

	IsAvailable bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	Sitter *Sitter `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
