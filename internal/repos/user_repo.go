package repos

import (
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/hooks"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

// CreateUser inserts the user and provisions their profile in one
// transaction. The profile hook failing aborts the signup; it is never
// retried, so a user can only ever end up with exactly one profile.
func CreateUser(user *models.User) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		return hooks.UserCreated(tx, user)
	})
}

func SaveUser(user *models.User) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(user).Error; err != nil {
			return err
		}
		return hooks.UserSaved(tx, user)
	})
}

func UserByID(id uint) (models.User, error) {
	var user models.User
	err := db.DB.First(&user, id).Error
	return user, err
}

func UserByUsername(username string) (models.User, error) {
	var user models.User
	err := db.DB.Where("username = ?", username).First(&user).Error
	return user, err
}

func ListUsers() ([]models.User, error) {
	var users []models.User
	err := db.DB.Find(&users).Error
	return users, err
}
