package order

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/deep-computers/dc-orders/internal/domain"
	"github.com/deep-computers/dc-orders/internal/pricing"
)

// NewOrderID generates the display identifier for an order. Each order
// type owns its own scheme:
//
//	print       PR-<ts6>-<rand3>
//	binding     DC-B-<ts8>-<rand3>
//	plagiarism  DC-PL-<ts8>-<rand3>
//	ai          DC-AI-<ts8>-<rand3>
//
// The id is timestamp+random, not unique by construction; it is a display
// identifier, not a security token.
func NewOrderID(t domain.OrderType, now time.Time) string {
	ms := fmt.Sprintf("%d", now.UnixMilli())
	suffix := fmt.Sprintf("%03d", rand.Intn(1000))

	switch t {
	case domain.OrderTypePrint:
		return fmt.Sprintf("PR-%s-%s", lastDigits(ms, 6), suffix)
	case domain.OrderTypeBinding:
		return fmt.Sprintf("DC-B-%s-%s", lastDigits(ms, 8), suffix)
	case domain.OrderTypeAI:
		return fmt.Sprintf("DC-AI-%s-%s", lastDigits(ms, 8), suffix)
	default:
		return fmt.Sprintf("DC-PL-%s-%s", lastDigits(ms, 8), suffix)
	}
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}

// DisplayName resolves the name used on notifications: the entered name,
// or the email local-part when the customer left the name blank.
func DisplayName(c domain.ContactInfo) string {
	if name := strings.TrimSpace(c.Name); name != "" {
		return name
	}
	if at := strings.Index(c.Email, "@"); at > 0 {
		return c.Email[:at]
	}
	return "Customer"
}

// PrintSpec is everything the assembler needs to build a print or binding
// order record.
type PrintSpec struct {
	Type         domain.OrderType
	Files        []domain.FileReference
	PaperGrade   domain.PaperGrade
	BWPages      int
	ColorPages   int
	Copies       int
	BindingStyle domain.BindingStyle
	CoverPrint   domain.CoverPrint
	PaymentProof string
	Instructions string
	Contact      domain.ContactInfo
	Breakdown    *domain.PrintBreakdown
}

// AssemblePrint builds the canonical record for a print/binding order.
// Pure transform, no I/O; callers pass the submission instant.
func AssemblePrint(spec PrintSpec, now time.Time) domain.OrderRecord {
	total := 0
	if spec.Breakdown != nil {
		total = spec.Breakdown.TotalPrice
	}

	details := &domain.PrintDetails{
		PaperGrade:          spec.PaperGrade,
		BWPages:             spec.BWPages,
		ColorPages:          spec.ColorPages,
		Copies:              spec.Copies,
		TotalPrice:          total,
		FileLinks:           fileLinks(spec.Files),
		PaymentProof:        spec.PaymentProof,
		SpecialInstructions: spec.Instructions,
	}
	if spec.Type == domain.OrderTypeBinding {
		details.BindingStyle = spec.BindingStyle
		details.CoverPrint = spec.CoverPrint
	}

	contact := spec.Contact
	contact.Name = DisplayName(contact)

	return domain.OrderRecord{
		OrderID:          NewOrderID(spec.Type, now),
		OrderType:        spec.Type,
		Contact:          contact,
		Details:          domain.OrderDetails{Print: details},
		FileNames:        fileNames(spec.Files),
		PaymentProofName: spec.PaymentProof,
		Timestamp:        now.UTC().Format(time.RFC3339),
	}
}

// PlagiarismSpec is the assembler input for plagiarism/ai orders.
type PlagiarismSpec struct {
	Files        []domain.FileReference
	Selection    domain.ServiceSelection
	PaymentProof string
	Instructions string
	Contact      domain.ContactInfo
	Breakdown    *domain.PlagiarismBreakdown
}

// AssemblePlagiarism builds the canonical record for a plagiarism/ai
// order. The order type is ai when only AI services are selected.
func AssemblePlagiarism(spec PlagiarismSpec, now time.Time) domain.OrderRecord {
	orderType := domain.OrderTypePlagiarism
	if spec.Selection.AIOnly() {
		orderType = domain.OrderTypeAI
	}

	details := &domain.PlagiarismDetails{
		Selection:           spec.Selection,
		PaymentProof:        spec.PaymentProof,
		SpecialInstructions: spec.Instructions,
		FileLinks:           fileLinks(spec.Files),
	}
	if spec.Breakdown != nil {
		details.TotalPages = spec.Breakdown.TotalPages
		details.PageRange = spec.Breakdown.PageRange
		details.ServiceSummary = pricing.ServiceSummary(spec.Breakdown)
		details.TotalPrice = spec.Breakdown.TotalPrice
	}

	contact := spec.Contact
	contact.Name = DisplayName(contact)

	return domain.OrderRecord{
		OrderID:          NewOrderID(orderType, now),
		OrderType:        orderType,
		Contact:          contact,
		Details:          domain.OrderDetails{Plagiarism: details},
		FileNames:        fileNames(spec.Files),
		PaymentProofName: spec.PaymentProof,
		Timestamp:        now.UTC().Format(time.RFC3339),
	}
}

func fileLinks(files []domain.FileReference) []string {
	links := make([]string, 0, len(files))
	for _, f := range files {
		links = append(links, f.URL)
	}
	return links
}

func fileNames(files []domain.FileReference) []string {
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return names
}
