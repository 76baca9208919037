// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"context"

	"github.com/labstack/echo/v4"

	"scratchcard-server/models"
	"scratchcard-server/rabbitmq"
)

// publishEvent sends an event for reference and records the outcome in the event log.
// A failed publish is logged, never returned: the request that caused it has already
// been stored.
func (h *Handler) publishEvent(
	ctx context.Context,
	logger echo.Logger,
	category models.EventCategory,
	routingKey string,
	reference string,
	to string,
	carrier string,
	data any,
) {
	event := rabbitmq.NewEvent(routingKey, reference, data)

	eventLog := models.EventLog{
		Category:   category,
		Status:     models.Queued,
		Reference:  reference,
		RoutingKey: &routingKey,
		To:         &to,
		Carrier:    &carrier,
	}
	if err := h.Publisher.Publish(ctx, routingKey, event); err != nil {
		logger.Errorf("Failed to publish %s for %s: %v", routingKey, reference, err)
		description := err.Error()
		eventLog.Status = models.Failed
		eventLog.Description = &description
	}

	if err := h.Store.Events.Log(ctx, eventLog); err != nil {
		logger.Errorf("Failed to record %s event for %s: %v", routingKey, reference, err)
	}
}
