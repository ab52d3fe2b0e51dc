package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию всех сущностей поискового ядра.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Sitter{},
		&SitterService{},
		&Availability{},
		&Review{},
	)
}
