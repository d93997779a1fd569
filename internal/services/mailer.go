package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	gomail "gopkg.in/gomail.v2"

	"github.com/deep-computers/dc-orders/internal/config"
	"github.com/deep-computers/dc-orders/internal/domain"
)

// Mailer delivers order notifications over SMTP: one message to the
// business inbox and one best-effort confirmation to the customer. A
// failed customer confirmation never fails the submission.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	sender   string
	inbox    string
}

func NewMailer(cfg config.Config) *Mailer {
	return &Mailer{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		sender:   cfg.SMTP.Sender,
		inbox:    cfg.SMTP.BusinessInbox,
	}
}

// Send implements forms.Notifier.
func (m *Mailer) Send(ctx context.Context, rec domain.OrderRecord) error {
	if err := m.ensureConfigured(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)

	notify := gomail.NewMessage()
	notify.SetHeader("From", m.sender)
	notify.SetHeader("To", m.inbox)
	notify.SetHeader("Subject", fmt.Sprintf("New %s order %s", rec.OrderType, rec.OrderID))
	notify.SetBody("text/plain", businessBody(rec))

	if err := dialer.DialAndSend(notify); err != nil {
		return fmt.Errorf("send order notification: %w", err)
	}

	if rec.Contact.Email != "" {
		confirm := gomail.NewMessage()
		confirm.SetHeader("From", m.sender)
		confirm.SetHeader("To", rec.Contact.Email)
		confirm.SetHeader("Subject", fmt.Sprintf("Your order %s is confirmed", rec.OrderID))
		confirm.SetBody("text/plain", customerBody(rec))

		if err := dialer.DialAndSend(confirm); err != nil {
			log.Printf("order %s: customer confirmation failed: %v", rec.OrderID, err)
		}
	}

	return nil
}

func (m *Mailer) ensureConfigured() error {
	if m.host == "" || m.sender == "" || m.inbox == "" {
		return errors.New("smtp is not configured")
	}
	return nil
}

func businessBody(rec domain.OrderRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Order ID: %s\n", rec.OrderID)
	fmt.Fprintf(&b, "Type: %s\n", rec.OrderType)
	fmt.Fprintf(&b, "Placed: %s\n\n", rec.Timestamp)

	fmt.Fprintf(&b, "Customer: %s\n", rec.Contact.Name)
	if rec.Contact.Email != "" {
		fmt.Fprintf(&b, "Email: %s\n", rec.Contact.Email)
	}
	if rec.Contact.Phone != "" {
		fmt.Fprintf(&b, "Phone: %s\n", rec.Contact.Phone)
	}
	b.WriteString("\n")

	switch {
	case rec.Details.Print != nil:
		d := rec.Details.Print
		fmt.Fprintf(&b, "Paper: %s\n", d.PaperGrade)
		fmt.Fprintf(&b, "Pages: %d BW + %d color x %d copies\n", d.BWPages, d.ColorPages, d.Copies)
		if d.BindingStyle != "" {
			fmt.Fprintf(&b, "Binding: %s", d.BindingStyle)
			if d.CoverPrint != "" && d.CoverPrint != domain.CoverNone {
				fmt.Fprintf(&b, " (cover: %s)", d.CoverPrint)
			}
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "Total: ₹%d\n", d.TotalPrice)
		writeLinks(&b, d.FileLinks, d.PaymentProof, d.SpecialInstructions)
	case rec.Details.Plagiarism != nil:
		d := rec.Details.Plagiarism
		fmt.Fprintf(&b, "Pages: %d (%s)\n", d.TotalPages, d.PageRange)
		for _, line := range d.ServiceSummary {
			fmt.Fprintf(&b, "  %s\n", line)
		}
		fmt.Fprintf(&b, "Total: ₹%d\n", d.TotalPrice)
		writeLinks(&b, d.FileLinks, d.PaymentProof, d.SpecialInstructions)
	}

	return b.String()
}

func writeLinks(b *strings.Builder, links []string, proof, instructions string) {
	b.WriteString("\nFiles:\n")
	for _, link := range links {
		fmt.Fprintf(b, "  %s\n", link)
	}
	fmt.Fprintf(b, "Payment proof: %s\n", proof)
	if instructions != "" {
		fmt.Fprintf(b, "Instructions: %s\n", instructions)
	}
}

func customerBody(rec domain.OrderRecord) string {
	return fmt.Sprintf(
		"Hi %s,\n\nThank you for your order. Your order id is %s (total ₹%d).\nWe will reach out once it is ready.\n\nDeep Computers\n",
		rec.Contact.Name, rec.OrderID, rec.Details.TotalPrice(),
	)
}
