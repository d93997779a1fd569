package services

import (
	"context"
	"strings"
	"testing"

	"github.com/deep-computers/dc-orders/internal/config"
	"github.com/deep-computers/dc-orders/internal/domain"
)

func TestSendUnconfiguredFails(t *testing.T) {
	mailer := NewMailer(config.Config{})
	err := mailer.Send(context.Background(), domain.OrderRecord{OrderID: "PR-123456-001"})
	if err == nil {
		t.Fatal("unconfigured mailer must fail so the fallback path engages")
	}
}

func TestBusinessBody(t *testing.T) {
	rec := domain.OrderRecord{
		OrderID:   "DC-B-12345678-042",
		OrderType: domain.OrderTypeBinding,
		Contact:   domain.ContactInfo{Name: "Priya", Phone: "9876500000"},
		Details: domain.OrderDetails{
			Print: &domain.PrintDetails{
				PaperGrade:   domain.Paper80GSM,
				BWPages:      40,
				Copies:       2,
				BindingStyle: domain.BindingHardNormal,
				CoverPrint:   domain.CoverSimple,
				TotalPrice:   560,
				FileLinks:    []string{"https://drive.example/report"},
				PaymentProof: "https://drive.example/pay.png",
			},
		},
		Timestamp: "2026-03-14T10:30:00Z",
	}

	body := businessBody(rec)
	for _, want := range []string{
		"DC-B-12345678-042",
		"Priya",
		"9876500000",
		"hard-normal",
		"cover: simple",
		"₹560",
		"https://drive.example/report",
		"https://drive.example/pay.png",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
}
