package repos

import (
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/hooks"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func ListProviders() ([]models.Provider, error) {
	var providers []models.Provider
	err := db.DB.Find(&providers).Error
	return providers, err
}

func GetProvider(id uint) (models.Provider, error) {
	var provider models.Provider
	err := db.DB.First(&provider, id).Error
	return provider, err
}

func CreateProvider(provider *models.Provider) error {
	if err := db.DB.Create(provider).Error; err != nil {
		return err
	}
	hooks.ProviderCreated(provider)
	return nil
}

func SaveProvider(provider *models.Provider) error {
	return db.DB.Save(provider).Error
}

// DeleteProvider cascades to dependent products the same way DeleteCategory
// does.
func DeleteProvider(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var provider models.Provider
		if err := tx.First(&provider, id).Error; err != nil {
			return err
		}
		if err := hooks.ProviderDeleting(tx, &provider); err != nil {
			return err
		}
		if err := tx.Where("provider_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&provider).Error
	})
}

func ProductsForProvider(providerID uint) ([]models.Product, error) {
	var products []models.Product
	err := db.DB.Where("provider_id = ?", providerID).Find(&products).Error
	return products, err
}
