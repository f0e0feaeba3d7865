package models

import "time"

// Order references exactly one customer. Orders whose customer_id does not
// resolve are excluded from every join-based listing and aggregate.
type Order struct {
	ID              int64     `gorm:"primaryKey" json:"id"`
	CustomerID      int64     `gorm:"not null;index" json:"customer_id"`
	Customer        *Customer `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	OrderDate       time.Time `gorm:"type:date;not null" json:"order_date"`
	Total           float64   `gorm:"type:decimal(10,2);not null" json:"total"`
	Status          string    `gorm:"size:50;default:pending" json:"status"`
	ShippingAddress string    `json:"shipping_address"`
	PaymentMethod   string    `gorm:"size:50" json:"payment_method"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	CustomerName  string `gorm:"-:migration;->" json:"customer_name"`
	CustomerEmail string `gorm:"-:migration;->" json:"customer_email"`
}

// TableName keeps the table name aligned with the seeded schema.
func (Order) TableName() string { return "orders" }
