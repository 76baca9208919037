// SPDX-License-Identifier: GPL-3.0-only

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scratchcard-server/notifications"
	"scratchcard-server/rabbitmq"
)

func toEnvelope(t *testing.T, event rabbitmq.Event) envelope {
	t.Helper()
	raw, err := json.Marshal(event)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	return env
}

func TestProcessOrderPlaced(t *testing.T) {
	c := &Consumer{config: Config{SendEmails: true, Provider: notifications.Mock}}
	event := rabbitmq.NewEvent(rabbitmq.OrderPlaced, "ORD-1", rabbitmq.OrderPlacedData{
		FullName:      "Ada Obi",
		Email:         "ada@example.com",
		TotalQuantity: 100,
		TotalAmount:   200000,
	})
	assert.NoError(t, c.process(toEnvelope(t, event)))

	c.config.Provider = "unknown"
	assert.Error(t, c.process(toEnvelope(t, event)), "an unusable provider must requeue the event")

	c.config.SendEmails = false
	assert.NoError(t, c.process(toEnvelope(t, event)))
}

func TestProcessRejectsUndecodableData(t *testing.T) {
	c := &Consumer{config: Config{SendEmails: true, Provider: notifications.Mock}}
	env := envelope{Type: rabbitmq.RedemptionSubmitted, Reference: "RDM-1", Data: json.RawMessage(`[1,2]`)}
	assert.Error(t, c.process(env))

	env.Type = "something.else"
	assert.NoError(t, c.process(env))
}
