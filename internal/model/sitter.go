package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sitter — исполнитель услуг по уходу за животными.
// Привязан к базе пользователей через UserID. Координаты точки
// обслуживания фиксированы, радиус обслуживания индивидуальный.
type Sitter struct {
	ID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`

	// Внешний ключ на таблицу пользователей.
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`

	// Краткое описание, специализация и т.п.
	Bio string `gorm:"type:text"`

	// Тарифы в минорных единицах валюты (центах). Внутри движка
	// только целые центы, в доллары конвертируем на границе ответа.
	RateBoardingCents *int64 `gorm:"type:bigint"`
	RateDaycareCents  *int64 `gorm:"type:bigint"`

	// Среднее время ответа в минутах.
	ResponseTimeMin *int64 `gorm:"type:bigint"`

	// Доля повторных клиентов в процентах.
	RepeatClientPct *int64 `gorm:"type:bigint"`

	// Радиус обслуживания в километрах.
	RadiusKm float64 `gorm:"type:double precision;not null"`

	// Координаты точки обслуживания в градусах.
	Lat float64 `gorm:"type:double precision;not null;index"`
	Lng float64 `gorm:"type:double precision;not null;index"`

	CreatedAt time.Time `gorm:"not null;default:now()"`
	UpdatedAt time.Time `gorm:"not null;default:now()"`

	// Навигационные поля для GORM (опционально, но удобно для Preload).
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	Services []SitterService `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Reviews  []Review        `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Days     []Availability  `gorm:"foreignKey:SitterID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// DisplayName — имя ситтера для выдачи: имя пользователя,
// иначе "Sitter <короткий id>".
func (s *Sitter) DisplayName() string {
	if name := s.User.PublicName(); name != "" {
		return name
	}
	return fmt.Sprintf("Sitter %s", s.ID.String()[:8])
}

// ImageURL — путь до аватара ситтера, генерируется по ID.
func (s *Sitter) ImageURL() string {
	return fmt.Sprintf("/assets/sitters/%s.jpg", s.ID)
}
