package repos

import (
	"time"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func BlacklistToken(jti string, expiresAt time.Time) error {
	return db.DB.Create(&models.BlacklistedToken{JTI: jti, ExpiresAt: expiresAt}).Error
}

func IsTokenBlacklisted(jti string) (bool, error) {
	var count int64
	err := db.DB.Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error
	return count > 0, err
}
