package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

type createOrderRequest struct {
	UserID      uint                     `json:"user_id"`
	TotalAmount decimal.Decimal          `json:"total_amount"`
	Status      string                   `json:"status"`
	Items       []createOrderItemRequest `json:"items"`
}

type createOrderItemRequest struct {
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

func (oh *OrderHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	status := c.Query("status")
	orders, err := oh.orderService.List(c.Request.Context(), status, limit, offset)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, orders)
}

func (oh *OrderHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	order, err := oh.orderService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, order)
}

func (oh *OrderHandler) GetItems(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	items, err := oh.orderService.GetItems(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, items)
}

func (oh *OrderHandler) Create(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	input := services.CreateOrderInput{
		UserID:      req.UserID,
		TotalAmount: req.TotalAmount,
		Status:      req.Status,
	}
	for _, item := range req.Items {
		input.Items = append(input.Items, services.CreateOrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}
	created, err := oh.orderService.Create(c.Request.Context(), input)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (oh *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	updated, err := oh.orderService.UpdateStatus(c.Request.Context(), id, req.Status)
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

func (oh *OrderHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := oh.orderService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Order deleted successfully"})
}
