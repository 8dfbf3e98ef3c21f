package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Channel is a sales channel.
type Channel string

const (
	ChannelFacebook Channel = "facebook"
	ChannelShopee   Channel = "shopee"
	ChannelLazada   Channel = "lazada"
)

// Channels lists every channel in display order.
var Channels = []Channel{ChannelFacebook, ChannelShopee, ChannelLazada}

// Valid reports whether c belongs to the closed channel set.
func (c Channel) Valid() bool {
	switch c {
	case ChannelFacebook, ChannelShopee, ChannelLazada:
		return true
	}
	return false
}

// ExpenseType is a category of expense.
type ExpenseType string

const (
	ExpenseCost ExpenseType = "cost"
	ExpenseAds  ExpenseType = "ads"
	ExpenseFees ExpenseType = "fees"
)

// ExpenseTypes lists every expense type in display order.
var ExpenseTypes = []ExpenseType{ExpenseCost, ExpenseAds, ExpenseFees}

// Valid reports whether t belongs to the closed expense type set.
func (t ExpenseType) Valid() bool {
	switch t {
	case ExpenseCost, ExpenseAds, ExpenseFees:
		return true
	}
	return false
}

// Role is a user role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Branch is a retail branch. It owns its employees.
type Branch struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"type:varchar(200);not null"`
	Color     string    `json:"color" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Employees []Employee `json:"employees,omitempty" gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE"`
}

// TableName sets the gorm table name
func (Branch) TableName() string {
	return "branches"
}

// Employee is a sales employee. The Target* fields are the fixed per-channel
// targets and are only read when targets are configured in fixed mode.
type Employee struct {
	ID             int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	BranchID       int64           `json:"branch_id" gorm:"not null;index"`
	Name           string          `json:"name" gorm:"type:varchar(200);not null"`
	TargetFacebook decimal.Decimal `json:"target_facebook" gorm:"type:numeric(14,2);not null"`
	TargetShopee   decimal.Decimal `json:"target_shopee" gorm:"type:numeric(14,2);not null"`
	TargetLazada   decimal.Decimal `json:"target_lazada" gorm:"type:numeric(14,2);not null"`
	CreatedAt      time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt      time.Time       `json:"updated_at" gorm:"autoUpdateTime"`

	Branch *Branch `json:"-" gorm:"foreignKey:BranchID"`
}

// TableName sets the gorm table name
func (Employee) TableName() string {
	return "employees"
}

// FixedTarget returns the employee's fixed target fields as a TargetSpec.
func (e *Employee) FixedTarget() TargetSpec {
	return TargetSpec{
		Facebook: e.TargetFacebook,
		Shopee:   e.TargetShopee,
		Lazada:   e.TargetLazada,
	}
}

// TargetSpec is a per-channel sales target.
type TargetSpec struct {
	Facebook decimal.Decimal `json:"facebook"`
	Shopee   decimal.Decimal `json:"shopee"`
	Lazada   decimal.Decimal `json:"lazada"`
}

// Validate rejects negative channel targets.
func (t TargetSpec) Validate() error {
	if t.Facebook.IsNegative() || t.Shopee.IsNegative() || t.Lazada.IsNegative() {
		return ErrNegativeAmount
	}
	return nil
}

// MonthlyTarget is a target for one employee in one period.
// (employee_id, year, month) is unique.
type MonthlyTarget struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64           `json:"employee_id" gorm:"not null;uniqueIndex:ux_monthly_targets_period"`
	Year       int             `json:"year" gorm:"not null;uniqueIndex:ux_monthly_targets_period"`
	Month      int             `json:"month" gorm:"not null;uniqueIndex:ux_monthly_targets_period"`
	Facebook   decimal.Decimal `json:"facebook" gorm:"type:numeric(14,2);not null"`
	Shopee     decimal.Decimal `json:"shopee" gorm:"type:numeric(14,2);not null"`
	Lazada     decimal.Decimal `json:"lazada" gorm:"type:numeric(14,2);not null"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the gorm table name
func (MonthlyTarget) TableName() string {
	return "monthly_targets"
}

// Spec returns the target amounts of the row.
func (t *MonthlyTarget) Spec() TargetSpec {
	return TargetSpec{Facebook: t.Facebook, Shopee: t.Shopee, Lazada: t.Lazada}
}

// Sale is the amount sold by an employee on one channel in one period.
// (employee_id, channel, year, month) is unique; later submissions replace the amount.
type Sale struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64           `json:"employee_id" gorm:"not null;uniqueIndex:ux_sales_period"`
	Channel    Channel         `json:"channel" gorm:"type:varchar(20);not null;uniqueIndex:ux_sales_period"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	Year       int             `json:"year" gorm:"not null;uniqueIndex:ux_sales_period"`
	Month      int             `json:"month" gorm:"not null;uniqueIndex:ux_sales_period"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the gorm table name
func (Sale) TableName() string {
	return "sales"
}

// Expense is the amount spent by an employee on one expense type in one period.
// (employee_id, type, year, month) is unique; later submissions replace the amount.
type Expense struct {
	ID         int64           `json:"id" gorm:"primaryKey;autoIncrement"`
	EmployeeID int64           `json:"employee_id" gorm:"not null;uniqueIndex:ux_expenses_period"`
	Type       ExpenseType     `json:"type" gorm:"type:varchar(20);not null;uniqueIndex:ux_expenses_period"`
	Amount     decimal.Decimal `json:"amount" gorm:"type:numeric(14,2);not null"`
	Year       int             `json:"year" gorm:"not null;uniqueIndex:ux_expenses_period"`
	Month      int             `json:"month" gorm:"not null;uniqueIndex:ux_expenses_period"`
	CreatedAt  time.Time       `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time       `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the gorm table name
func (Expense) TableName() string {
	return "expenses"
}

// User is an account allowed to use the dashboard.
type User struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	Username     string    `json:"username" gorm:"type:varchar(100);not null;uniqueIndex"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255);not null"`
	Name         string    `json:"name" gorm:"type:varchar(200);not null"`
	Role         Role      `json:"role" gorm:"type:varchar(20);not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName sets the gorm table name
func (User) TableName() string {
	return "users"
}
