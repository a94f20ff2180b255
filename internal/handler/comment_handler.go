package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"yourssu.com/blog/internal/dto"
	"yourssu.com/blog/internal/service"
	"yourssu.com/blog/pkg/response"
	"yourssu.com/blog/pkg/validator"
)

type CommentHandler struct {
	service service.CommentService
}

func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

func (h *CommentHandler) Create(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	res, err := h.service.Create(c.Request.Context(), articleID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, res)
}

func (h *CommentHandler) Update(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	res, err := h.service.Update(c.Request.Context(), articleID, commentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

func (h *CommentHandler) Delete(c *gin.Context) {
	articleID, ok := pathID(c, "articleId")
	if !ok {
		return
	}
	commentID, ok := pathID(c, "commentId")
	if !ok {
		return
	}

	var req dto.DeleteCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorMessage(c, http.StatusBadRequest, validator.FirstErrorMessage(err))
		return
	}

	if err := h.service.Delete(c.Request.Context(), articleID, commentID, req); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
