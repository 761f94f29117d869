package service

import (
	"errors"

	"gorm.io/gorm"
)

// mapNotFound translates the store-level missing-row error into the service
// sentinel; other errors pass through unchanged.
func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
