package dto

import (
	"time"
)

// LoginRequest - credentials for POST /api/auth/login
type LoginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

// RegisterRequest - new account, admin only
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=6,max=200"`
	Name     string `json:"name" validate:"required,min=1,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

// UserResponse - account data without the password hash
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginResponse - session token and the authenticated user
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateBranchRequest - new branch
type CreateBranchRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Color string `json:"color" validate:"omitempty,max=20"`
}

// UpdateBranchRequest - partial branch update
type UpdateBranchRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=200"`
	Color *string `json:"color" validate:"omitempty,min=1,max=20"`
}

// BranchResponse - branch data
type BranchResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateEmployeeRequest - new employee with optional fixed targets
type CreateEmployeeRequest struct {
	BranchID       int64   `json:"branch_id" validate:"required,min=1"`
	Name           string  `json:"name" validate:"required,min=1,max=200"`
	TargetFacebook float64 `json:"target_facebook" validate:"gte=0"`
	TargetShopee   float64 `json:"target_shopee" validate:"gte=0"`
	TargetLazada   float64 `json:"target_lazada" validate:"gte=0"`
}

// UpdateEmployeeRequest - partial employee update
type UpdateEmployeeRequest struct {
	BranchID       *int64   `json:"branch_id" validate:"omitempty,min=1"`
	Name           *string  `json:"name" validate:"omitempty,min=1,max=200"`
	TargetFacebook *float64 `json:"target_facebook" validate:"omitempty,gte=0"`
	TargetShopee   *float64 `json:"target_shopee" validate:"omitempty,gte=0"`
	TargetLazada   *float64 `json:"target_lazada" validate:"omitempty,gte=0"`
}

// EmployeeResponse - employee data with the owning branch name
type EmployeeResponse struct {
	ID             int64     `json:"id"`
	BranchID       int64     `json:"branch_id"`
	BranchName     string    `json:"branch_name"`
	Name           string    `json:"name"`
	TargetFacebook float64   `json:"target_facebook"`
	TargetShopee   float64   `json:"target_shopee"`
	TargetLazada   float64   `json:"target_lazada"`
	CreatedAt      time.Time `json:"created_at"`
}

// SaleRequest - sets an employee's sales on one channel for one month
type SaleRequest struct {
	EmployeeID int64    `json:"employee_id" validate:"required,min=1"`
	Channel    string   `json:"channel" validate:"required,oneof=facebook shopee lazada"`
	Amount     *float64 `json:"amount" validate:"required,gte=0"`
	Year       int      `json:"year" validate:"required,min=1,max=9999"`
	Month      int      `json:"month" validate:"required,min=1,max=12"`
}

// SaleResponse - stored sales figure
type SaleResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Channel    string    `json:"channel"`
	Amount     float64   `json:"amount"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ExpenseRequest - sets an employee's expense of one type for one month
type ExpenseRequest struct {
	EmployeeID int64    `json:"employee_id" validate:"required,min=1"`
	Type       string   `json:"type" validate:"required,oneof=cost ads fees"`
	Amount     *float64 `json:"amount" validate:"required,gte=0"`
	Year       int      `json:"year" validate:"required,min=1,max=9999"`
	Month      int      `json:"month" validate:"required,min=1,max=12"`
}

// ExpenseResponse - stored expense figure
type ExpenseResponse struct {
	ID         int64     `json:"id"`
	EmployeeID int64     `json:"employee_id"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Year       int       `json:"year"`
	Month      int       `json:"month"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TargetRequest - sets an employee's per-channel target for one month
type TargetRequest struct {
	EmployeeID int64   `json:"employee_id" validate:"required,min=1"`
	Year       int     `json:"year" validate:"required,min=1,max=9999"`
	Month      int     `json:"month" validate:"required,min=1,max=12"`
	Facebook   float64 `json:"facebook" validate:"gte=0"`
	Shopee     float64 `json:"shopee" validate:"gte=0"`
	Lazada     float64 `json:"lazada" validate:"gte=0"`
}

// TargetResponse - an employee's target for one month
type TargetResponse struct {
	EmployeeID int64   `json:"employee_id"`
	Year       int     `json:"year"`
	Month      int     `json:"month"`
	Facebook   float64 `json:"facebook"`
	Shopee     float64 `json:"shopee"`
	Lazada     float64 `json:"lazada"`
	Total      float64 `json:"total"`
}

// ErrorResponse - standard error body
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
