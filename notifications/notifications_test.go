// SPDX-License-Identifier: GPL-3.0-only

package notifications

import (
	"strings"
	"testing"

	"scratchcard-server/rabbitmq"
)

func sampleOrder() rabbitmq.OrderPlacedData {
	return rabbitmq.OrderPlacedData{
		FullName:      "Ada <Obi>",
		Email:         "ada@example.com",
		Phone:         "08031234567",
		Operator:      "MTN",
		TotalQuantity: 150,
		TotalAmount:   225000,
	}
}

func TestOrderPlacedEmailRenders(t *testing.T) {
	data := OrderPlacedEmail("ORD-ABC123", sampleOrder())
	if data.To != "ada@example.com" {
		t.Errorf("Expected recipient ada@example.com, got %s", data.To)
	}
	if !strings.Contains(data.Subject, "ORD-ABC123") {
		t.Errorf("Expected subject to carry the reference, got %q", data.Subject)
	}

	body, err := RenderTemplate(data.Template, data.Variables)
	if err != nil {
		t.Fatalf("Failed to render template: %v", err)
	}
	for _, want := range []string{"ORD-ABC123", "150", "225000", "08031234567", "Ada &lt;Obi&gt;"} {
		if !strings.Contains(body, want) {
			t.Errorf("Expected rendered body to contain %q", want)
		}
	}
}

func TestRenderTemplateMissing(t *testing.T) {
	if _, err := RenderTemplate("does_not_exist", nil); err == nil {
		t.Error("Expected an error for a missing template")
	}
}

func TestDispatchNotification(t *testing.T) {
	data := OrderPlacedEmail("ORD-ABC123", sampleOrder())
	if err := DispatchNotification(Email, Mock, data); err != nil {
		t.Errorf("Mock dispatch failed: %v", err)
	}
	if err := DispatchNotification(Email, "pigeon", data); err == nil {
		t.Error("Expected an error for an unknown provider")
	}
	if err := DispatchNotification("SMS", Mock, data); err == nil {
		t.Error("Expected an error for an unknown notification type")
	}
}

func TestProviderFromEnv(t *testing.T) {
	t.Setenv("MOCK_EMAIL_NOTIFICATIONS", "")
	t.Setenv("EMAIL_PROVIDER", "smtp")
	if p := ProviderFromEnv(); p != SMTP {
		t.Errorf("Expected smtp, got %s", p)
	}
	t.Setenv("MOCK_EMAIL_NOTIFICATIONS", "true")
	if p := ProviderFromEnv(); p != Mock {
		t.Errorf("Expected mock, got %s", p)
	}
}
