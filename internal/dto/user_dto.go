package dto

type UserJoinRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
	Username string `json:"username" binding:"required,notblank"`
}

type UserDeleteRequest struct {
	Email    string `json:"email" binding:"required,notblank"`
	Password string `json:"password" binding:"required,notblank"`
}

type UserJoinResponse struct {
	Email    string `json:"email"`
	Username string `json:"username"`
}
