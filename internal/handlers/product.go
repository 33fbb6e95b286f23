package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/services"
	"github.com/shopbench/storefront-api/internal/types"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

func (ph *ProductHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	category := c.Query("category")
	products, err := ph.productService.List(c.Request.Context(), category, limit, offset)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, products)
}

func (ph *ProductHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product, err := ph.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, product)
}

func (ph *ProductHandler) Create(c *gin.Context) {
	var product types.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := ph.productService.Create(c.Request.Context(), &product)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ph *ProductHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var product types.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	product.ID = id
	updated, err := ph.productService.Update(c.Request.Context(), &product)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			RespondServiceError(c, err)
			return
		}
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	RespondOK(c, updated)
}

func (ph *ProductHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := ph.productService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Product deleted successfully"})
}
