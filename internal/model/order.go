package model

import "time"

// OrderDefaultStatus is assigned to every new order.
const OrderDefaultStatus = "Pending"

// Order is a cafeteria order placed against a menu item. ItemID is not
// checked against the menu; dangling references are tolerated.
type Order struct {
	Record
	ItemID       string    `json:"itemId" gorm:"size:36;not null"`
	ItemName     string    `json:"itemName" gorm:"size:255;not null"`
	Price        float64   `json:"price" gorm:"not null"`
	CustomerName string    `json:"customerName" gorm:"size:255;not null"`
	OrderTime    time.Time `json:"orderTime"`
	Status       string    `json:"status" gorm:"size:32"`
}
