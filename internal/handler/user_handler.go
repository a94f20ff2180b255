package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/service"
	"yourssu.com/blog/pkg/response"
	"yourssu.com/blog/pkg/validator"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) Join(c *gin.Context) {
	var req dto.UserJoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	res, err := h.service.Join(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *UserHandler) Delete(c *gin.Context) {
	var req dto.UserDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
