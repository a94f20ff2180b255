package dto

type CreateArticleRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Title    string `json:"title" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
}

type UpdateArticleRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Title    string `json:"title" binding:"required,notblank"`
	Content  string `json:"content" binding:"required,notblank"`
}

type DeleteArticleRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

// ArticleResponse never exposes the owner beyond their email.
type ArticleResponse struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
