// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"time"

	"scratchcard-server/network"
	"scratchcard-server/store"
	"scratchcard-server/validation"
)

// swagger:model GenericResponse
type GenericResponse struct {
	// Message describing the result of the operation
	Message string `json:"message" example:"Operation successful"`
}

// swagger:model ValidationErrorResponse
type ValidationErrorResponse struct {
	// Summary of the failure
	Message string `json:"message" example:"Some fields are invalid"`
	// Per-field messages keyed by JSON path
	Errors validation.FieldErrors `json:"errors"`
}

// swagger:model PhoneRequest
type PhoneRequest struct {
	// Nigerian phone number in any common spelling
	Phone string `json:"phone" example:"0803 123 4567"`
}

// swagger:model DetectPhoneResponse
type DetectPhoneResponse struct {
	network.DetectionResult
	// E.164 form, only set for valid numbers
	International string `json:"international,omitempty" example:"+2348031234567"`
}

// swagger:model FormatPhoneResponse
type FormatPhoneResponse struct {
	// Digits only, at most 11
	Formatted string `json:"formatted" example:"08031234567"`
	// Grouped for display
	Display string `json:"display" example:"0803-123-4567"`
}

// swagger:model CardRequest
type CardRequest struct {
	// Serial number as typed on the card
	SerialNumber string `json:"serial_number" example:"ab123456"`
	// Scratch code as typed on the card
	CardCode string `json:"card_code" example:"a1b2c3d4e5f6g7h"`
}

// swagger:model FormatCardResponse
type FormatCardResponse struct {
	SerialNumber string `json:"serial_number" example:"AB-123456"`
	CardCode     string `json:"card_code" example:"A1B-2C3D-4E5F-6G7H"`
}

// swagger:model ValidateCardResponse
type ValidateCardResponse struct {
	SerialNumberValid bool `json:"serial_number_valid" example:"true"`
	CardCodeValid     bool `json:"card_code_valid" example:"true"`
}

// swagger:model OrderItemResponse
type OrderItemResponse struct {
	Denomination int `json:"denomination" example:"2000"`
	Quantity     int `json:"quantity" example:"150"`
}

// swagger:model OrderResponse
type OrderResponse struct {
	// Reference quoted in all correspondence about the order
	Reference       string              `json:"reference" example:"ORD-9F3A1C2B7E4D"`
	FullName        string              `json:"full_name" example:"Ada Obi"`
	Email           string              `json:"email" example:"ada@example.com"`
	Phone           string              `json:"phone" example:"08031234567"`
	Operator        string              `json:"operator" example:"MTN"`
	Organization    *string             `json:"organization,omitempty" example:"Acme Ltd"`
	DeliveryAddress string              `json:"delivery_address" example:"12 Marina Road, Lagos"`
	Items           []OrderItemResponse `json:"items"`
	TotalQuantity   int                 `json:"total_quantity" example:"150"`
	TotalAmount     int64               `json:"total_amount" example:"300000"`
	Status          string              `json:"status" example:"PENDING"`
	CreatedAt       string              `json:"created_at" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful creation
	Message string `json:"message,omitempty" example:"Order placed successfully"`
}

// swagger:model UpdateOrderStatusRequest
type UpdateOrderStatusRequest struct {
	// One of PENDING, APPROVED, REJECTED, DELIVERED
	// required: true
	Status string `json:"status" example:"APPROVED"`
}

// swagger:model RedemptionResponse
type RedemptionResponse struct {
	Reference     string `json:"reference" example:"RDM-0A1B2C3D4E5F"`
	SerialNumber  string `json:"serial_number" example:"AB-123456"`
	FullName      string `json:"full_name" example:"Ada Obi"`
	Phone         string `json:"phone" example:"08031234567"`
	Operator      string `json:"operator" example:"MTN"`
	BankName      string `json:"bank_name" example:"First Bank"`
	AccountNumber string `json:"account_number" example:"0123456789"`
	AccountName   string `json:"account_name" example:"Ada Obi"`
	Status        string `json:"status" example:"PENDING"`
	CreatedAt     string `json:"created_at" example:"2023-10-01T12:00:00Z"`
	// Message indicating successful creation
	Message string `json:"message,omitempty" example:"Redemption submitted successfully"`
}

// swagger:model DraftRequest
type DraftRequest struct {
	// Current form values of the flow
	Values json.RawMessage `json:"values" swaggertype:"object"`
}

// swagger:model DraftResponse
type DraftResponse struct {
	Flow      string `json:"flow" example:"order"`
	Version   int    `json:"version" example:"1"`
	Step      int    `json:"step" example:"2"`
	Steps     int    `json:"steps" example:"3"`
	StepName  string `json:"step_name" example:"items"`
	Submitted bool   `json:"submitted" example:"false"`
	// Form values saved with the draft
	Values json.RawMessage `json:"values" swaggertype:"object"`
	// Reference of the order or redemption created on submit
	Reference string `json:"reference,omitempty" example:"ORD-9F3A1C2B7E4D"`
	// Set when a stored draft from an incompatible version was thrown away
	Discarded bool `json:"discarded,omitempty" example:"false"`
}

// swagger:model AdminLoginRequest
type AdminLoginRequest struct {
	// Dashboard password
	// required: true
	Password string `json:"password" example:"MySecretPassword@123"`
}

// swagger:model AdminLoginResponse
type AdminLoginResponse struct {
	// Bearer token for the admin endpoints
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	// Token expiry
	ExpiresAt string `json:"expires_at" example:"2023-10-01T12:00:00Z"`
	Message   string `json:"message" example:"Login successful"`
}

// swagger:model PaginationDetails
type PaginationDetails struct {
	// Current page number
	Page int `json:"page" example:"1"`
	// Number of items per page
	PageSize int `json:"page_size" example:"20"`
	// Total number of records
	TotalRecords int64 `json:"total_records" example:"100"`
	// Total number of pages
	TotalPages int `json:"total_pages" example:"5"`
}

// swagger:model OrderListResponse
type OrderListResponse struct {
	Data       []OrderResponse   `json:"data"`
	Pagination PaginationDetails `json:"pagination"`
	Message    string            `json:"message" example:"Orders retrieved successfully"`
}

// swagger:model RedemptionListResponse
type RedemptionListResponse struct {
	Data       []RedemptionResponse `json:"data"`
	Pagination PaginationDetails    `json:"pagination"`
	Message    string               `json:"message" example:"Redemptions retrieved successfully"`
}

// swagger:model EventLogResponse
type EventLogResponse struct {
	EID         string  `json:"eid" example:"b3e1f0a2-9c1d-4e5f-8a7b-6c5d4e3f2a1b"`
	Category    string  `json:"category" example:"ORDER"`
	Status      string  `json:"status" example:"QUEUED"`
	Reference   string  `json:"reference" example:"ORD-9F3A1C2B7E4D"`
	RoutingKey  *string `json:"routing_key" example:"order.placed"`
	Description *string `json:"description" example:"connection refused"`
	To          *string `json:"to" example:"ada@example.com"`
	Carrier     *string `json:"carrier" example:"MTN"`
	CreatedAt   string  `json:"created_at" example:"2023-10-01T12:00:00Z"`
}

// swagger:model EventLogListResponse
type EventLogListResponse struct {
	Data    []EventLogResponse `json:"data"`
	Message string             `json:"message" example:"Event logs retrieved successfully"`
}

// swagger:model SummaryResponse
type SummaryResponse struct {
	Orders      store.OrderTotals      `json:"orders"`
	Redemptions store.RedemptionTotals `json:"redemptions"`
	Message     string                 `json:"message" example:"Summary retrieved successfully"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
