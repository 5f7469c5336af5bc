package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ukozhakova/Django2021-Endterm/internal/audit"
	"github.com/ukozhakova/Django2021-Endterm/internal/models"
	"github.com/ukozhakova/Django2021-Endterm/internal/repos"
	"github.com/ukozhakova/Django2021-Endterm/internal/utils"
	"github.com/ukozhakova/Django2021-Endterm/internal/validators"
)

func ListProducts(c *gin.Context) {
	products, err := repos.ListProducts()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, products)
}

func GetProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	product, err := repos.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct reads a multipart form: name, description, price,
// category_id, optional provider_id and optional image file. A dangling
// category or provider reference is a client error, surfaced with the other
// field errors.
func CreateProduct(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")

	errs := validators.Errors{}

	price, err := strconv.Atoi(c.PostForm("price"))
	if err != nil {
		errs["price"] = "Price should be positive number"
	}
	for field, reason := range validators.Product(name, description, price) {
		errs[field] = reason
	}

	var categoryID uint
	if id, err := utils.ParseUintParam(c.PostForm("category_id")); err != nil {
		errs["category"] = "This field is required"
	} else if _, err := repos.GetCategory(id); err != nil {
		errs["category"] = "category does not exist"
	} else {
		categoryID = id
	}

	var providerID *uint
	if raw, ok := c.GetPostForm("provider_id"); ok && raw != "" {
		if id, err := utils.ParseUintParam(raw); err != nil {
			errs["provider"] = "provider does not exist"
		} else if _, err := repos.GetProvider(id); err != nil {
			errs["provider"] = "provider does not exist"
		} else {
			providerID = &id
		}
	}

	file, fileErr := c.FormFile("image")
	if fileErr == nil {
		for field, reason := range validators.Image(file.Filename, file.Size) {
			errs[field] = reason
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	var image string
	if fileErr == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer src.Close()
		image, err = Store.Save(c.Request.Context(), "products", file.Filename, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	product := models.Product{
		Name:        name,
		Description: description,
		Price:       price,
		Image:       image,
		CategoryID:  categoryID,
		ProviderID:  providerID,
	}
	if err := repos.CreateProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	created, err := repos.GetProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product with relations"})
		return
	}

	audit.Record("product", product.ID, actor(c), "create")
	c.JSON(http.StatusCreated, created)
}

// UpdateProduct applies partial-field semantics: only fields present in the
// form change, everything else keeps its prior value. The validation rules
// run against the resulting entity.
func UpdateProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	product, err := repos.GetProduct(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	errs := validators.Errors{}

	if name, ok := c.GetPostForm("name"); ok {
		product.Name = name
	}
	if description, ok := c.GetPostForm("description"); ok {
		product.Description = description
	}
	if raw, ok := c.GetPostForm("price"); ok {
		if price, err := strconv.Atoi(raw); err != nil {
			errs["price"] = "Price should be positive number"
		} else {
			product.Price = price
		}
	}
	if raw, ok := c.GetPostForm("category_id"); ok {
		if cid, err := utils.ParseUintParam(raw); err != nil {
			errs["category"] = "category does not exist"
		} else if _, err := repos.GetCategory(cid); err != nil {
			errs["category"] = "category does not exist"
		} else {
			product.CategoryID = cid
			product.Category = nil
		}
	}
	if raw, ok := c.GetPostForm("provider_id"); ok {
		if raw == "" {
			product.ProviderID = nil
			product.Provider = nil
		} else if pid, err := utils.ParseUintParam(raw); err != nil {
			errs["provider"] = "provider does not exist"
		} else if _, err := repos.GetProvider(pid); err != nil {
			errs["provider"] = "provider does not exist"
		} else {
			product.ProviderID = &pid
			product.Provider = nil
		}
	}

	for field, reason := range validators.Product(product.Name, product.Description, product.Price) {
		errs[field] = reason
	}

	file, fileErr := c.FormFile("image")
	if fileErr == nil {
		for field, reason := range validators.Image(file.Filename, file.Size) {
			errs[field] = reason
		}
	}

	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	if fileErr == nil {
		src, err := file.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		defer src.Close()
		product.Image, err = Store.Save(c.Request.Context(), "products", file.Filename, src)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}

	// associations are re-read below; never write them back through Save
	product.Category = nil
	product.Provider = nil
	if err := repos.SaveProduct(&product); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	updated, err := repos.GetProduct(product.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve product with relations"})
		return
	}

	audit.Record("product", product.ID, actor(c), "update")
	c.JSON(http.StatusOK, updated)
}

func DeleteProduct(c *gin.Context) {
	id, err := utils.ParseUintParam(c.Param("id"))
	if err == nil {
		err = repos.DeleteProduct(id)
	}
	if err != nil {
		slog.Error("product cannot be deleted", "id", c.Param("id"), "error", err)
	} else {
		audit.Record("product", id, actor(c), "delete")
	}
	c.JSON(http.StatusOK, gin.H{})
}
