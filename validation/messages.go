// SPDX-License-Identifier: GPL-3.0-only

package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	tagMinTotal        = "min_total"
	tagMinDenomination = "min_denomination"
)

var fieldMessages = map[string]string{
	"full_name":                   "Full name must be between 2 and 100 characters",
	"email":                       "Enter a valid email address",
	"phone":                       "Enter a valid Nigerian phone number (11 digits starting with 07, 08 or 09)",
	"organization":                "Organization must be at most 150 characters",
	"delivery_address":            "Delivery address must be between 10 and 300 characters",
	"items.denomination":          "Select a valid card denomination",
	"items.quantity":              "Quantity must be between 1 and 100000",
	"serial_number":               "Serial number must look like AB-123456",
	"card_code":                   "Card code must look like ABC-1234-5678-9ABC",
	"bank_name":                   "Bank name is required",
	"account_number":              "Account number must be exactly 10 digits",
	"account_name":                "Account name is required",
	"bvn":                         "BVN must be exactly 11 digits",
	"nin":                         "NIN must be exactly 11 digits",
	"items:required":              "Add at least one denomination to your order",
	"items:min":                   "Add at least one denomination to your order",
	"items:" + tagMinTotal:        "An order must contain at least 100 cards in total",
	"items:" + tagMinDenomination: "₦2,000 cards must be ordered in quantities of at least 100",
}

func message(path string, fe validator.FieldError) string {
	key := messageKey(path)
	if msg, ok := fieldMessages[key+":"+fe.Tag()]; ok {
		return msg
	}
	if msg, ok := fieldMessages[key]; ok {
		return msg
	}
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "len":
		return fmt.Sprintf("Must be exactly %s characters", fe.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	default:
		return "Invalid value"
	}
}
