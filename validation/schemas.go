// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"strconv"

	"github.com/go-playground/validator/v10"
)

const (
	// MinOrderQuantity is the smallest number of cards an order may contain, and also
	// the smallest quantity of ₦2,000 cards when that denomination is ordered.
	MinOrderQuantity = 100

	restrictedDenomination = "2000"
)

// Denominations lists the card face values in Naira.
var Denominations = []string{"100", "200", "500", "1000", "2000", "5000"}

type OrderItem struct {
	Denomination string `json:"denomination" validate:"required,oneof=100 200 500 1000 2000 5000"`
	Quantity     int    `json:"quantity" validate:"required,min=1,max=100000"`
}

// Value is the face value of one card of this line, in Naira.
func (i OrderItem) Value() int {
	v, err := strconv.Atoi(i.Denomination)
	if err != nil {
		return 0
	}
	return v
}

type OrderRequest struct {
	FullName        string      `json:"full_name" validate:"required,min=2,max=100"`
	Email           string      `json:"email" validate:"required,email"`
	Phone           string      `json:"phone" validate:"required,ngphone"`
	Organization    string      `json:"organization" validate:"max=150"`
	DeliveryAddress string      `json:"delivery_address" validate:"required,min=10,max=300"`
	Items           []OrderItem `json:"items" validate:"required,min=1,dive"`
}

func (o OrderRequest) TotalQuantity() int {
	total := 0
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}

// TotalAmount is the face value of the whole order in Naira.
func (o OrderRequest) TotalAmount() int64 {
	var total int64
	for _, item := range o.Items {
		total += int64(item.Value()) * int64(item.Quantity)
	}
	return total
}

// orderStructLevel enforces the aggregate minimum and, independently, the minimum
// for ₦2,000 cards. Both report on the items array.
func orderStructLevel(sl validator.StructLevel) {
	order := sl.Current().Interface().(OrderRequest)
	if len(order.Items) == 0 {
		return
	}

	restricted, hasRestricted := 0, false
	for _, item := range order.Items {
		if item.Denomination == restrictedDenomination {
			hasRestricted = true
			restricted += item.Quantity
		}
	}

	if order.TotalQuantity() < MinOrderQuantity {
		sl.ReportError(order.Items, "items", "Items", tagMinTotal, strconv.Itoa(MinOrderQuantity))
	}
	if hasRestricted && restricted < MinOrderQuantity {
		sl.ReportError(order.Items, "items", "Items", tagMinDenomination, restrictedDenomination)
	}
}

type RedemptionRequest struct {
	SerialNumber  string `json:"serial_number" validate:"required,serial"`
	CardCode      string `json:"card_code" validate:"required,cardcode"`
	FullName      string `json:"full_name" validate:"required,min=2,max=100"`
	Phone         string `json:"phone" validate:"required,ngphone"`
	BankName      string `json:"bank_name" validate:"required,max=100"`
	AccountNumber string `json:"account_number" validate:"required,len=10,digits"`
	AccountName   string `json:"account_name" validate:"required,max=100"`
	BVN           string `json:"bvn" validate:"required,len=11,digits"`
	NIN           string `json:"nin" validate:"required,len=11,digits"`
}
