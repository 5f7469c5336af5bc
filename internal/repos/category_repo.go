package repos

import (
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/hooks"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := db.DB.Find(&categories).Error
	return categories, err
}

func GetCategory(id uint) (models.Category, error) {
	var category models.Category
	err := db.DB.First(&category, id).Error
	return category, err
}

func CreateCategory(category *models.Category) error {
	return db.DB.Create(category).Error
}

func SaveCategory(category *models.Category) error {
	return db.DB.Save(category).Error
}

// DeleteCategory removes the category and cascades to its products in one
// transaction. The pre-delete hook runs while the products are still
// queryable.
func DeleteCategory(id uint) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		if err := tx.First(&category, id).Error; err != nil {
			return err
		}
		if err := hooks.CategoryDeleting(tx, &category); err != nil {
			return err
		}
		if err := tx.Where("category_id = ?", id).Delete(&models.Product{}).Error; err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
}

// ProductsForCategory is the derived collection behind the nested endpoint,
// ordered by ascending price.
func ProductsForCategory(categoryID uint) ([]models.Product, error) {
	var products []models.Product
	err := db.DB.Where("category_id = ?", categoryID).Order("price asc").Find(&products).Error
	return products, err
}
