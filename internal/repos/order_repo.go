package repos

import (
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

// Orders are always read and written through the owner scope. An id that
// exists but belongs to someone else is indistinguishable from a missing row,
// so ownership never leaks through error codes.

func ListOrdersForUser(userID uint) ([]models.Order, error) {
	var orders []models.Order
	err := db.DB.Where("user_id = ?", userID).Find(&orders).Error
	return orders, err
}

func GetOrderForUser(id, userID uint) (models.Order, error) {
	var order models.Order
	err := db.DB.Where("user_id = ?", userID).First(&order, id).Error
	return order, err
}

func CreateOrder(order *models.Order) error {
	return db.DB.Create(order).Error
}

func SaveOrder(order *models.Order) error {
	return db.DB.Save(order).Error
}

func DeleteOrderForUser(id, userID uint) error {
	res := db.DB.Where("user_id = ?", userID).Delete(&models.Order{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
