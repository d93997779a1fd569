package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/deep-computers/dc-orders/internal/domain"
)

type PDFService struct{}

func NewPDFService() *PDFService {
	return &PDFService{}
}

// GenerateSummary writes a printable specification sheet for an archived
// order. gofpdf's core fonts are latin-1 only, so amounts use "Rs." here
// instead of the rupee sign.
func (s *PDFService) GenerateSummary(ord domain.ArchivedOrder, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("ensure pdf directory: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Order %s", ord.OrderID), false)
	pdf.SetAuthor("Deep Computers", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Order %s", ord.OrderID))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, fmt.Sprintf("Type: %s", ord.OrderType))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Placed: %s", ord.Timestamp))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Archived: %s", time.Unix(ord.ArchivedAt, 0).Format("02/01/2006 15:04")))
	pdf.Ln(12)

	s.writeContact(pdf, ord.Contact)
	pdf.Ln(8)

	switch {
	case ord.Details.Print != nil:
		s.writePrintSpec(pdf, ord.Details.Print)
	case ord.Details.Plagiarism != nil:
		s.writePlagiarismSpec(pdf, ord.Details.Plagiarism)
	}

	pdf.Ln(8)
	s.writeSection(pdf, "Files", ord.FileNames)
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, fmt.Sprintf("Payment proof: %s", ord.PaymentProofName), "", "L", false)

	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}

	return nil
}

func (s *PDFService) writeContact(pdf *gofpdf.Fpdf, c domain.ContactInfo) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "Customer")
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 6, c.Name)
	pdf.Ln(6)
	if c.Email != "" {
		pdf.Cell(0, 6, c.Email)
		pdf.Ln(6)
	}
	if c.Phone != "" {
		pdf.Cell(0, 6, c.Phone)
		pdf.Ln(6)
	}
}

func (s *PDFService) writePrintSpec(pdf *gofpdf.Fpdf, d *domain.PrintDetails) {
	lines := []string{
		fmt.Sprintf("Paper grade: %s", d.PaperGrade),
		fmt.Sprintf("Pages: %d BW + %d color", d.BWPages, d.ColorPages),
		fmt.Sprintf("Copies: %d", d.Copies),
	}
	if d.BindingStyle != "" {
		lines = append(lines, fmt.Sprintf("Binding: %s", d.BindingStyle))
		if d.CoverPrint != "" && d.CoverPrint != domain.CoverNone {
			lines = append(lines, fmt.Sprintf("Cover print: %s", d.CoverPrint))
		}
	}
	lines = append(lines, fmt.Sprintf("Total: Rs. %d", d.TotalPrice))
	if d.SpecialInstructions != "" {
		lines = append(lines, fmt.Sprintf("Instructions: %s", d.SpecialInstructions))
	}
	s.writeSection(pdf, "Specification", lines)
}

func (s *PDFService) writePlagiarismSpec(pdf *gofpdf.Fpdf, d *domain.PlagiarismDetails) {
	lines := []string{
		fmt.Sprintf("Pages: %d (%s)", d.TotalPages, d.PageRange),
	}
	for _, svc := range d.ServiceSummary {
		lines = append(lines, strings.ReplaceAll(svc, "₹", "Rs. "))
	}
	lines = append(lines, fmt.Sprintf("Total: Rs. %d", d.TotalPrice))
	if d.SpecialInstructions != "" {
		lines = append(lines, fmt.Sprintf("Instructions: %s", d.SpecialInstructions))
	}
	s.writeSection(pdf, "Specification", lines)
}

func (s *PDFService) writeSection(pdf *gofpdf.Fpdf, title string, lines []string) {
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, title)
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 12)
	if len(lines) == 0 {
		pdf.MultiCell(0, 6, "(none)", "", "L", false)
		return
	}
	for _, line := range lines {
		pdf.MultiCell(0, 6, line, "", "L", false)
	}
}
