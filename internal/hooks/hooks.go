package hooks

import (
	"log/slog"

	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

// Lifecycle hooks are invoked synchronously by the repository layer. There is
// no event bus: the caller decides when a hook runs relative to its own
// transaction, which keeps ordering and failure semantics explicit.

// UserCreated provisions the empty profile owned by a freshly created user.
// It runs inside the same transaction as the user insert, so a hook failure
// rolls the whole signup back and can never leave a user without a profile
// or create a duplicate on retry.
func UserCreated(tx *gorm.DB, user *models.User) error {
	profile := models.Profile{UserID: user.ID, Gender: models.GenderMale}
	if err := tx.Create(&profile).Error; err != nil {
		return err
	}
	slog.Info("profile created for user", "username", user.Username)
	return nil
}

// UserSaved re-saves the linked profile. A no-op when nothing changed.
func UserSaved(tx *gorm.DB, user *models.User) error {
	var profile models.Profile
	if err := tx.Where("user_id = ?", user.ID).First(&profile).Error; err != nil {
		return err
	}
	if err := tx.Save(&profile).Error; err != nil {
		return err
	}
	slog.Info("profile saved for user", "username", user.Username)
	return nil
}

// ProviderCreated logs the creation. Observability only.
func ProviderCreated(provider *models.Provider) {
	slog.Info("new provider created", "name", provider.Name)
}

// CategoryDeleting runs before the cascade removes the category's products.
// Dependents must still be queryable here, so it enumerates them first and
// emits one audit entry each.
func CategoryDeleting(tx *gorm.DB, category *models.Category) error {
	var products []models.Product
	if err := tx.Where("category_id = ?", category.ID).Find(&products).Error; err != nil {
		return err
	}
	for _, p := range products {
		audit.CascadeDelete("category", category.Name, p.Name, p.Price)
	}
	return nil
}

// ProviderDeleting is the provider counterpart of CategoryDeleting.
func ProviderDeleting(tx *gorm.DB, provider *models.Provider) error {
	var products []models.Product
	if err := tx.Where("provider_id = ?", provider.ID).Find(&products).Error; err != nil {
		return err
	}
	for _, p := range products {
		audit.CascadeDelete("provider", provider.Name, p.Name, p.Price)
	}
	return nil
}
