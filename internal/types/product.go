package types

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null;column:name" json:"name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null;column:price" json:"price"`
	Category    *string         `gorm:"index;column:category" json:"category"`
	Stock       int             `gorm:"not null;default:0;column:stock" json:"stock"`
	Description string          `gorm:"column:description" json:"description"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
