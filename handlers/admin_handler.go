// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"scratchcard-server/middlewares"
)

var errBadCredentials = &echo.HTTPError{
	Code:    http.StatusUnauthorized,
	Message: "Credentials are incorrect, please check your password",
}

// AdminLoginHandler godoc
// @Summary      Login to the dashboard
// @Description  Exchanges the dashboard password for a bearer token.
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        loginRequest  body  AdminLoginRequest  true  "Login request payload"
// @Success      200 {object} AdminLoginResponse "Login successful"
// @Failure      400 {object} echo.HTTPError     "Bad request, missing required fields"
// @Failure      401 {object} echo.HTTPError     "Unauthorized"
// @Failure      500 {object} echo.HTTPError     "Internal server error"
// @Router       /v1/admin/login [post]
func (h *Handler) AdminLoginHandler(c echo.Context) error {
	logger := c.Logger()

	var req AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Invalid login request payload:", err)
		return echo.ErrBadRequest
	}

	if req.Password == "" {
		logger.Error("Password is required.")
		return &echo.HTTPError{
			Code:    http.StatusBadRequest,
			Message: "password field is required",
		}
	}

	if h.AdminPasswordHash == "" {
		logger.Error("ADMIN_PASSWORD_HASH is not configured, dashboard login is disabled.")
		return errBadCredentials
	}

	if err := h.Crypto.Verify(req.Password, h.AdminPasswordHash); err != nil {
		logger.Error("Password verification failed.")
		return errBadCredentials
	}

	token, expiresAt, err := middlewares.IssueAdminToken(h.Auth, time.Now())
	if err != nil {
		logger.Errorf("Failed to sign token: %v", err)
		return echo.ErrInternalServerError
	}

	return c.JSON(http.StatusOK, AdminLoginResponse{
		Token:     token,
		ExpiresAt: formatTime(expiresAt),
		Message:   "Login successful",
	})
}

// SummaryHandler godoc
// @Summary      Dashboard figures
// @Description  Order and redemption totals with breakdowns by status and operator.
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} SummaryResponse "Summary"
// @Failure      401 {object} echo.HTTPError  "Unauthorized"
// @Failure      500 {object} echo.HTTPError  "Internal server error"
// @Router       /v1/admin/summary [get]
func (h *Handler) SummaryHandler(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.Store.Orders.Totals(ctx)
	if err != nil {
		return respondError(c, err)
	}
	redemptions, err := h.Store.Redemptions.Totals(ctx)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, SummaryResponse{
		Orders:      orders,
		Redemptions: redemptions,
		Message:     "Summary retrieved successfully",
	})
}

// GetEventLogsHandler godoc
// @Summary      Events recorded for an order or redemption
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        reference  path  string  true  "Order or redemption reference"
// @Success      200 {object} EventLogListResponse "Events, oldest first"
// @Failure      401 {object} echo.HTTPError       "Unauthorized"
// @Failure      500 {object} echo.HTTPError       "Internal server error"
// @Router       /v1/admin/events/{reference} [get]
func (h *Handler) GetEventLogsHandler(c echo.Context) error {
	events, err := h.Store.Events.ForReference(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return respondError(c, err)
	}

	data := make([]EventLogResponse, 0, len(events))
	for _, e := range events {
		data = append(data, EventLogResponse{
			EID:         e.EID.String(),
			Category:    string(e.Category),
			Status:      string(e.Status),
			Reference:   e.Reference,
			RoutingKey:  e.RoutingKey,
			Description: e.Description,
			To:          e.To,
			Carrier:     e.Carrier,
			CreatedAt:   formatTime(e.CreatedAt),
		})
	}
	return c.JSON(http.StatusOK, EventLogListResponse{
		Data:    data,
		Message: "Event logs retrieved successfully",
	})
}
