package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint            `gorm:"index;not null;column:user_id" json:"user_id"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2);not null;column:total_amount" json:"total_amount"`
	Status      string          `gorm:"index;not null;default:pending;column:status" json:"status"`
	OrderDate   time.Time       `gorm:"not null;column:order_date" json:"order_date"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (Order) TableName() string {
	return "orders"
}
