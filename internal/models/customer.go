package models

import "time"

// Customer is a top-level record owned by the store. OrderCount and TotalSpent
// are never persisted; listings recompute them from current order rows.
type Customer struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Phone     string    `gorm:"size:20" json:"phone"`
	Address   string    `json:"address"`
	City      string    `gorm:"size:100" json:"city"`
	Country   string    `gorm:"size:100" json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	OrderCount int64   `gorm:"-:migration;->" json:"order_count"`
	TotalSpent float64 `gorm:"-:migration;->" json:"total_spent"`
}

// TableName keeps the table name aligned with the seeded schema.
func (Customer) TableName() string { return "customers" }
