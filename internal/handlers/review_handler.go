package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/auth"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/utils"
)

type ReviewRequest struct {
	Text string `json:"text" binding:"required"`
}

func ListReviews(c *gin.Context) {
	reviews, err := repos.ListReviews()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reviews)
}

func GetReview(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}

	review, err := repos.GetReview(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}
	c.JSON(http.StatusOK, review)
}

func CreateReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review := models.Review{Text: req.Text, AuthorID: &user.ID}
	if err := repos.CreateReview(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("review", review.ID, actor(c), "create")
	c.JSON(http.StatusCreated, review)
}

// UpdateReview and DeleteReview go through the author scope: another user's
// review answers 404.
func UpdateReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	review, err := repos.GetReviewForAuthor(id, user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}

	review.Text = req.Text
	if err := repos.SaveReview(&review); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("review", review.ID, actor(c), "update")
	c.JSON(http.StatusOK, review)
}

func DeleteReview(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
		return
	}

	if err := repos.DeleteReviewForAuthor(id, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "review not found"})
			return
		}
		slog.Error("review cannot be deleted", "id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	audit.Record("review", id, actor(c), "delete")
	c.JSON(http.StatusOK, gin.H{})
}
