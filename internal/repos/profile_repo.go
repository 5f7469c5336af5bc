package repos

import (
	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

// ProfileForUser looks a profile up by its owner, never by path id.
func ProfileForUser(userID uint) (models.Profile, error) {
	var profile models.Profile
	err := db.DB.Preload("User").Where("user_id = ?", userID).First(&profile).Error
	return profile, err
}

func SaveProfile(profile *models.Profile) error {
	return db.DB.Save(profile).Error
}
