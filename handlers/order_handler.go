// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"scratchcard-server/crypto"
	"scratchcard-server/models"
	"scratchcard-server/network"
	"scratchcard-server/rabbitmq"
	"scratchcard-server/store"
	"scratchcard-server/validation"
)

const orderReferencePrefix = "ORD"

// CreateOrderHandler godoc
// @Summary      Place a bulk card order
// @Description  Validates and stores an order of at least 100 cards, then publishes order.placed.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        orderRequest  body  validation.OrderRequest  true  "Order payload"
// @Success      201 {object} OrderResponse           "Order placed"
// @Failure      400 {object} echo.HTTPError          "Bad request, malformed payload"
// @Failure      422 {object} ValidationErrorResponse "One or more fields are invalid"
// @Failure      500 {object} echo.HTTPError          "Internal server error"
// @Router       /v1/orders [post]
func (h *Handler) CreateOrderHandler(c echo.Context) error {
	var req validation.OrderRequest
	if err := c.Bind(&req); err != nil {
		c.Logger().Error("Invalid order request payload:", err)
		return errInvalidPayload
	}

	order, err := h.placeOrder(c.Request().Context(), c.Logger(), req)
	if err != nil {
		return respondError(c, err)
	}

	res := orderResponse(order)
	res.Message = "Order placed successfully"
	return c.JSON(http.StatusCreated, res)
}

// placeOrder validates req, stores it and announces it. It is shared by the direct
// endpoint and the order wizard's submit.
func (h *Handler) placeOrder(ctx context.Context, logger echo.Logger, req validation.OrderRequest) (*models.Order, error) {
	req = trimOrder(req)
	if err := h.Validator.Validate(&req); err != nil {
		return nil, err
	}

	reference, err := crypto.GenerateReference(orderReferencePrefix)
	if err != nil {
		return nil, err
	}

	phone := network.FormatPhone(req.Phone)
	operator := h.Detector.Detect(phone).Operator

	order := &models.Order{
		Reference:       reference,
		FullName:        req.FullName,
		Email:           req.Email,
		Phone:           phone,
		Operator:        operator.String(),
		DeliveryAddress: req.DeliveryAddress,
		TotalQuantity:   req.TotalQuantity(),
		TotalAmount:     req.TotalAmount(),
		Status:          models.OrderPending,
	}
	if req.Organization != "" {
		order.Organization = &req.Organization
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, models.OrderItem{
			Denomination: item.Value(),
			Quantity:     item.Quantity,
		})
	}

	if err := h.Store.Orders.Create(ctx, order); err != nil {
		return nil, err
	}
	logger.Infof("Order %s placed: %d cards, %d NGN", order.Reference, order.TotalQuantity, order.TotalAmount)

	h.publishEvent(ctx, logger, models.OrderEvent, rabbitmq.OrderPlaced, order.Reference, order.Email, order.Operator,
		rabbitmq.OrderPlacedData{
			FullName:      order.FullName,
			Email:         order.Email,
			Phone:         order.Phone,
			Operator:      order.Operator,
			TotalQuantity: order.TotalQuantity,
			TotalAmount:   order.TotalAmount,
		})

	return order, nil
}

// GetOrderHandler godoc
// @Summary      Get an order
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string  true  "Order reference"
// @Success      200 {object} OrderResponse  "Order"
// @Failure      401 {object} echo.HTTPError "Unauthorized"
// @Failure      404 {object} echo.HTTPError "Order not found"
// @Failure      500 {object} echo.HTTPError "Internal server error"
// @Router       /v1/admin/orders/{reference} [get]
func (h *Handler) GetOrderHandler(c echo.Context) error {
	order, err := h.Store.Orders.Get(c.Request().Context(), c.Param("reference"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &echo.HTTPError{Code: http.StatusNotFound, Message: "Order not found"}
		}
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orderResponse(order))
}

// UpdateOrderStatusHandler godoc
// @Summary      Change an order's status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string                     true  "Order reference"
// @Param        request    body  UpdateOrderStatusRequest   true  "New status"
// @Success      200 {object} GenericResponse "Status updated"
// @Failure      400 {object} echo.HTTPError  "Unknown status"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      404 {object} echo.HTTPError  "Order not found"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/orders/{reference}/status [put]
func (h *Handler) UpdateOrderStatusHandler(c echo.Context) error {
	logger := c.Logger()

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid order status payload:", err)
		return errInvalidPayload
	}

	status, ok := parseOrderStatus(req.Status)
	if !ok {
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "status must be one of PENDING, APPROVED, REJECTED or DELIVERED",
		}
	}

	reference := c.Param("reference")
	if err := h.Store.Orders.UpdateStatus(c.Request().Context(), reference, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return &echo.HTTPError{Code: http.StatusNotFound, Message: "Order not found"}
		}
		return respondError(c, err)
	}

	logger.Infof("Order %s moved to %s", reference, status)
	return c.JSON(http.StatusOK, GenericResponse{Message: "Order status updated successfully"})
}

// ListOrdersHandler godoc
// @Summary      List orders
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page       query  int     false  "Page number (default 1)"
// @Param        page_size  query  int     false  "Page size (default 20, max 100)"
// @Param        status     query  string  false  "Filter by status"
// @Success      200 {object} OrderListResponse "Orders, newest first"
// @Failure      401 {object} echo.HTTPError    "Unauthorized"
// @Failure      500 {object} echo.HTTPError    "Internal server error"
// @Router       /v1/admin/orders [get]
func (h *Handler) ListOrdersHandler(c echo.Context) error {
	opts := listOptions(c)
	orders, total, err := h.Store.Orders.List(c.Request().Context(), opts)
	if err != nil {
		return respondError(c, err)
	}

	data := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		data = append(data, orderResponse(&orders[i]))
	}
	return c.JSON(http.StatusOK, OrderListResponse{
		Data:       data,
		Pagination: paginate(opts, total),
		Message:    "Orders retrieved successfully",
	})
}

func orderResponse(o *models.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{Denomination: item.Denomination, Quantity: item.Quantity})
	}
	return OrderResponse{
		Reference:       o.Reference,
		FullName:        o.FullName,
		Email:           o.Email,
		Phone:           o.Phone,
		Operator:        o.Operator,
		Organization:    o.Organization,
		DeliveryAddress: o.DeliveryAddress,
		Items:           items,
		TotalQuantity:   o.TotalQuantity,
		TotalAmount:     o.TotalAmount,
		Status:          string(o.Status),
		CreatedAt:       formatTime(o.CreatedAt),
	}
}

func trimOrder(req validation.OrderRequest) validation.OrderRequest {
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Organization = strings.TrimSpace(req.Organization)
	req.DeliveryAddress = strings.TrimSpace(req.DeliveryAddress)
	items := make([]validation.OrderItem, len(req.Items))
	for i, item := range req.Items {
		item.Denomination = strings.TrimSpace(item.Denomination)
		if v, err := strconv.Atoi(item.Denomination); err == nil {
			item.Denomination = strconv.Itoa(v)
		}
		items[i] = item
	}
	if req.Items != nil {
		req.Items = items
	}
	return req
}

func parseOrderStatus(s string) (models.OrderStatus, bool) {
	for _, status := range models.OrderStatuses {
		if strings.EqualFold(s, string(status)) {
			return status, true
		}
	}
	return "", false
}
