// SPDX-License-Identifier: GPL-3.0-only

package models

import (
	"time"

	"gorm.io/gorm"
)

var AllModels []any

type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderApproved  OrderStatus = "APPROVED"
	OrderRejected  OrderStatus = "REJECTED"
	OrderDelivered OrderStatus = "DELIVERED"
)

var OrderStatuses = []OrderStatus{OrderPending, OrderApproved, OrderRejected, OrderDelivered}

type Order struct {
	ID              uint        `gorm:"primaryKey"`
	Reference       string      `gorm:"size:64;not null;uniqueIndex"`
	FullName        string      `gorm:"size:100;not null"`
	Email           string      `gorm:"size:255;not null"`
	Phone           string      `gorm:"size:11;not null"`
	Operator        string      `gorm:"size:16;not null"`
	Organization    *string     `gorm:"size:150;default:null"`
	DeliveryAddress string      `gorm:"type:text;not null"`
	TotalQuantity   int         `gorm:"not null"`
	TotalAmount     int64       `gorm:"not null"`
	Status          OrderStatus `gorm:"size:16;not null;default:PENDING;index"`
	Items           []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

type OrderItem struct {
	ID           uint `gorm:"primaryKey"`
	OrderID      uint `gorm:"not null;index"`
	Denomination int  `gorm:"not null"`
	Quantity     int  `gorm:"not null"`
}

func init() {
	AllModels = append(AllModels, &Order{}, &OrderItem{})
}
