// SPDX-License-Identifier: GPL-3.0-only

package notifications

import (
	"scratchcard-server/rabbitmq"
)

// OrderPlacedEmail is the acknowledgement sent to whoever placed an order.
func OrderPlacedEmail(reference string, order rabbitmq.OrderPlacedData) NotificationData {
	name := order.FullName
	return NotificationData{
		To:       order.Email,
		ToName:   &name,
		Subject:  "We received your scratch card order " + reference,
		Template: OrderPlacedTemplate,
		Variables: map[string]any{
			"reference":      reference,
			"full_name":      order.FullName,
			"phone":          order.Phone,
			"total_quantity": order.TotalQuantity,
			"total_amount":   order.TotalAmount,
		},
	}
}
