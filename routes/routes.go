// SPDX-License-Identifier: GPL-3.0-only

package routes

import (
	"github.com/labstack/echo/v4"

	"scratchcard-server/commons"
	"scratchcard-server/handlers"
	"scratchcard-server/middlewares"
)

func RegisterRoutes(e *echo.Echo, h *handlers.Handler) {
	commons.Logger.Debug("Registering v1 routes")
	e.Validator = h.Validator

	api_v1 := e.Group("/v1")
	api_v1.POST("/phone/detect", h.DetectPhoneHandler)
	api_v1.POST("/phone/format", h.FormatPhoneHandler)
	api_v1.POST("/cards/format", h.FormatCardHandler)
	api_v1.POST("/cards/validate", h.ValidateCardHandler)
	api_v1.POST("/orders", h.CreateOrderHandler)
	api_v1.POST("/redemptions", h.CreateRedemptionHandler)

	api_v1.GET("/drafts/:flow/:key", h.GetDraftHandler)
	api_v1.PUT("/drafts/:flow/:key", h.SaveDraftHandler)
	api_v1.DELETE("/drafts/:flow/:key", h.ResetDraftHandler)
	api_v1.POST("/drafts/:flow/:key/next", h.NextDraftHandler)
	api_v1.POST("/drafts/:flow/:key/prev", h.PrevDraftHandler)
	api_v1.POST("/drafts/:flow/:key/submit", h.SubmitDraftHandler)

	api_v1.POST("/admin/login", h.AdminLoginHandler)
	admin := api_v1.Group("/admin", middlewares.VerifyAdminMiddleware(h.Auth))
	admin.GET("/orders", h.ListOrdersHandler)
	admin.GET("/orders/:reference", h.GetOrderHandler)
	admin.PUT("/orders/:reference/status", h.UpdateOrderStatusHandler)
	admin.GET("/redemptions", h.ListRedemptionsHandler)
	admin.GET("/events/:reference", h.GetEventLogsHandler)
	admin.GET("/summary", h.SummaryHandler)
	commons.Logger.Info("v1 routes registered successfully")
}
