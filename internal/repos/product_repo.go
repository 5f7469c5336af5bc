package repos

import (
	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func ListProducts() ([]models.Product, error) {
	var products []models.Product
	err := db.DB.Preload("Category").Preload("Provider").Find(&products).Error
	return products, err
}

func GetProduct(id uint) (models.Product, error) {
	var product models.Product
	err := db.DB.Preload("Category").Preload("Provider").First(&product, id).Error
	return product, err
}

func CreateProduct(product *models.Product) error {
	return db.DB.Create(product).Error
}

func SaveProduct(product *models.Product) error {
	return db.DB.Save(product).Error
}

func DeleteProduct(id uint) error {
	var product models.Product
	if err := db.DB.First(&product, id).Error; err != nil {
		return err
	}
	return db.DB.Delete(&product).Error
}
