package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/utils"
)

type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

func ListCategories(c *gin.Context) {
	categories, err := repos.ListCategories()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, categories)
}

func GetCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	category, err := repos.GetCategory(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}
	c.JSON(http.StatusOK, category)
}

func CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category := models.Category{Name: req.Name}
	if err := repos.CreateCategory(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("category", category.ID, actor(c), "create")
	c.JSON(http.StatusCreated, category)
}

func UpdateCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	category, err := repos.GetCategory(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	category.Name = req.Name
	if err := repos.SaveCategory(&category); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("category", category.ID, actor(c), "update")
	c.JSON(http.StatusOK, category)
}

// DeleteCategory keeps the upstream contract: failures are logged and the
// response is success-shaped either way.
func DeleteCategory(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err == nil {
		err = repos.DeleteCategory(id)
	}
	if err != nil {
		slog.Error("category cannot be deleted", "id", c.Param("id"), "error", err)
	} else {
		audit.Record("category", id, actor(c), "delete")
	}
	c.JSON(http.StatusOK, gin.H{})
}

// CategoryProducts is the public nested view, ordered by ascending price.
func CategoryProducts(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	if _, err := repos.GetCategory(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
		return
	}

	products, err := repos.ProductsForCategory(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}
