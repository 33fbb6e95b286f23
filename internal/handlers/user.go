package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/shopbench/storefront-api/internal/services"
	"github.com/shopbench/storefront-api/internal/types"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (uh *UserHandler) List(c *gin.Context) {
	limit, offset, err := pageParams(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	users, err := uh.userService.List(c.Request.Context(), limit, offset)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, users)
}

func (uh *UserHandler) Get(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	user, err := uh.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, user)
}

func (uh *UserHandler) Create(c *gin.Context) {
	var user types.User
	if err := c.ShouldBindJSON(&user); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	created, err := uh.userService.Create(c.Request.Context(), &user)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (uh *UserHandler) Update(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	var user types.User
	if err := c.ShouldBindJSON(&user); err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	user.ID = id
	updated, err := uh.userService.Update(c.Request.Context(), &user)
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

func (uh *UserHandler) Delete(c *gin.Context) {
	id, err := idParam(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := uh.userService.Delete(c.Request.Context(), id); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "User deleted successfully"})
}
