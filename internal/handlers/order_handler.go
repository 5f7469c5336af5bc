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
	"github.com/ukozhakova/Django2021-Endterm/internal/notifier"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/utils"
	"github.com/ukozhakova/Django2021-Endterm/internal/validators"
)

type OrderRequest struct {
	ProductName string `json:"product_name"`
	Count       int    `json:"count"`
}

// Orders are owner-scoped on every operation. A row belonging to another
// user answers 404, never 403, so existence does not leak.

func ListOrders(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	orders, err := repos.ListOrdersForUser(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrder(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	order, err := repos.GetOrderForUser(id, user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func CreateOrder(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if errs := validators.Order(req.Count); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	order := models.Order{
		UserID:      user.ID,
		ProductName: req.ProductName,
		Count:       req.Count,
	}
	if order.ProductName == "" {
		order.ProductName = "TIE-DYE CROP TOP"
	}

	if err := repos.CreateOrder(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("order", order.ID, actor(c), "create")

	go func(email, firstName string, order models.Order) {
		if err := notifier.SendOrderEmail(email, firstName, order.ID, order.ProductName, order.Count); err != nil {
			slog.Error("order confirmation email failed", "order", order.ID, "error", err)
		}
	}(user.Email, user.FirstName, order)

	c.JSON(http.StatusCreated, order)
}

func UpdateOrder(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	var req OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if errs := validators.Order(req.Count); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	order, err := repos.GetOrderForUser(id, user.ID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	if req.ProductName != "" {
		order.ProductName = req.ProductName
	}
	order.Count = req.Count
	if err := repos.SaveOrder(&order); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("order", order.ID, actor(c), "update")
	c.JSON(http.StatusOK, order)
}

func DeleteOrder(c *gin.Context) {
	user, _ := auth.CurrentUser(c)

	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	if err := repos.DeleteOrderForUser(id, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		slog.Error("order cannot be deleted", "id", id, "error", err)
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	audit.Record("order", id, actor(c), "delete")
	c.JSON(http.StatusOK, gin.H{})
}
