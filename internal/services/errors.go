package services

import (
	"errors"

	"gorm.io/gorm"
)

// isDuplicate reports whether err is a unique-index violation. It relies on
// gorm.Config.TranslateError so every driver surfaces gorm.ErrDuplicatedKey.
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
