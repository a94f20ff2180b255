package dto

type CreateCommentRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
}

type UpdateCommentRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
}

type DeleteCommentRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

type CommentResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Content string `json:"content"`
}
