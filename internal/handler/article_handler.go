package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/service"
	"yourssu.com/blog/pkg/apperror"
	"yourssu.com/blog/pkg/response"
	"yourssu.com/blog/pkg/validator"
)

type ArticleHandler struct {
	service service.ArticleService
}

func NewArticleHandler(service service.ArticleService) *ArticleHandler {
	return &ArticleHandler{service: service}
}

func (h *ArticleHandler) Create(c *gin.Context) {
	var req dto.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *ArticleHandler) Update(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		return
	}

	var req dto.UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), articleID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		return
	}

	var req dto.DeleteArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), articleID, req); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// pathID parses a numeric path parameter, writing the error response itself
// when the value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		response.Error(c, apperror.New(http.StatusBadRequest, "invalid "+name, nil))
		return 0, false
	}
	return uint(id), true
}
