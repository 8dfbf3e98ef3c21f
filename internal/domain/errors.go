package domain

import "errors"

// Business errors
var (
	ErrInvalidPeriod         = errors.New("invalid period: month must be 1-12 and year must be positive")
	ErrRepositoryUnavailable = errors.New("repository unavailable")

	ErrBranchNotFound     = errors.New("branch not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidChannel     = errors.New("channel must be one of facebook, shopee, lazada")
	ErrInvalidExpenseType = errors.New("expense type must be one of cost, ads, fees")
	ErrNegativeAmount     = errors.New("amount must not be negative")
	ErrInvalidRole        = errors.New("role must be admin or user")

	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = errors.New("username already exists")
)
