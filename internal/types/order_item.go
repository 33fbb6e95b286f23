package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// Price is the unit price of the line at the time the order was placed,
// not a reference to the product's current price.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint            `gorm:"index;not null;column:order_id" json:"order_id"`
	ProductID uint            `gorm:"index;not null;column:product_id" json:"product_id"`
	Quantity  int             `gorm:"not null;column:quantity" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	CreatedAt time.Time       `gorm:"not null" json:"created_at"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
