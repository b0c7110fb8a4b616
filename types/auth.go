package types

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Role   string `json:"role"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	Token  string `json:"token"`
}

type PhoneLoginRequest struct {
	Phone string `json:"phone" binding:"required"`
}
