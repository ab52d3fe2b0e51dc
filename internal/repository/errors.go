package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound — запрошенной записи не существует. Отличается от
// пустого списка: пустая выдача — валидный результат, ErrNotFound — нет.
var ErrNotFound = errors.New("record not found")

// mapErr переводит ошибки GORM в ошибки слоя репозиториев.
func mapErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
