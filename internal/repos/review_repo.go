package repos

import (
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/db"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
)

func ListReviews() ([]models.Review, error) {
	var reviews []models.Review
	err := db.DB.Preload("Author").Find(&reviews).Error
	return reviews, err
}

func GetReview(id uint) (models.Review, error) {
	var review models.Review
	err := db.DB.Preload("Author").First(&review, id).Error
	return review, err
}

// GetReviewForAuthor applies the owner scope; mutations go through this, not
// GetReview.
func GetReviewForAuthor(id, userID uint) (models.Review, error) {
	var review models.Review
	err := db.DB.Where("author_id = ?", userID).First(&review, id).Error
	return review, err
}

func CreateReview(review *models.Review) error {
	return db.DB.Create(review).Error
}

func SaveReview(review *models.Review) error {
	return db.DB.Save(review).Error
}

func DeleteReviewForAuthor(id, userID uint) error {
	res := db.DB.Where("author_id = ?", userID).Delete(&models.Review{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
