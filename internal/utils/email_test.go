package utils

import (
	"strings"
	"testing"

	"moesjerky_back_end/internal/models"
)

func TestGenerateOrderConfirmationHTML(t *testing.T) {
	order := models.Order{
		OrderNumber:  1001,
		Amount:       19.98,
		DeliveryDate: "2024-07-01",
		Cart: []interface{}{
			map[string]interface{}{"item": "Jerky", "qty": float64(2)},
		},
	}

	html := GenerateOrderConfirmationHTML(order)

	for _, want := range []string{"#1001", "Jerky", ">2<", "$19.98", "2024-07-01"} {
		if !strings.Contains(html, want) {
			t.Errorf("confirmation HTML missing %q", want)
		}
	}
}

func TestGenerateOrderConfirmationHTMLSkipsMalformedLines(t *testing.T) {
	order := models.Order{
		OrderNumber: 1002,
		Cart: []interface{}{
			"not a map",
			map[string]interface{}{"name": "Spicy Jerky", "quantity": float64(1)},
		},
	}

	html := GenerateOrderConfirmationHTML(order)

	if !strings.Contains(html, "Spicy Jerky") {
		t.Error("confirmation HTML missing the valid cart line")
	}
}

func TestSendOrderConfirmationEmailSkipsWithoutSMTP(t *testing.T) {
	t.Setenv("SMTP_HOST", "")

	if err := SendOrderConfirmationEmail("a@example.com", models.Order{OrderNumber: 1001}); err != nil {
		t.Errorf("err = %v, want nil when SMTP is not configured", err)
	}
}
