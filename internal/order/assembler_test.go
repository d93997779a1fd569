package order

import (
	"regexp"
	"testing"
	"time"

	"github.com/deep-computers/dc-orders/internal/domain"
)

var now = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func TestOrderIDFormats(t *testing.T) {
	cases := []struct {
		orderType domain.OrderType
		pattern   string
	}{
		{domain.OrderTypePrint, `^PR-\d{6}-\d{3}$`},
		{domain.OrderTypeBinding, `^DC-B-\d{8}-\d{3}$`},
		{domain.OrderTypePlagiarism, `^DC-PL-\d{8}-\d{3}$`},
		{domain.OrderTypeAI, `^DC-AI-\d{8}-\d{3}$`},
	}
	for _, tc := range cases {
		id := NewOrderID(tc.orderType, now)
		if !regexp.MustCompile(tc.pattern).MatchString(id) {
			t.Errorf("%s id %q does not match %s", tc.orderType, id, tc.pattern)
		}
	}
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		contact domain.ContactInfo
		want    string
	}{
		{domain.ContactInfo{Name: "Priya"}, "Priya"},
		{domain.ContactInfo{Email: "sam.k@example.com"}, "sam.k"},
		{domain.ContactInfo{Phone: "987"}, "Customer"},
	}
	for _, tc := range cases {
		if got := DisplayName(tc.contact); got != tc.want {
			t.Errorf("DisplayName(%+v) = %q, want %q", tc.contact, got, tc.want)
		}
	}
}

func TestAssemblePrint(t *testing.T) {
	spec := PrintSpec{
		Type:       domain.OrderTypePrint,
		Files:      []domain.FileReference{{Name: "notes.pdf", URL: "https://drive.example/n"}},
		PaperGrade: domain.PaperNormal,
		BWPages:    10,
		Copies:     1,
		Contact:    domain.ContactInfo{Email: "dev@example.com"},
		Breakdown:  &domain.PrintBreakdown{TotalPrice: 10},
	}

	rec := AssemblePrint(spec, now)
	if rec.OrderType != domain.OrderTypePrint {
		t.Fatalf("unexpected type %s", rec.OrderType)
	}
	if rec.Details.Print == nil || rec.Details.Plagiarism != nil {
		t.Fatal("exactly the print variant must be set")
	}
	if rec.Details.Print.TotalPrice != 10 {
		t.Fatalf("breakdown total must be embedded, got %d", rec.Details.Print.TotalPrice)
	}
	if rec.Contact.Name != "dev" {
		t.Fatalf("name should derive from the email local-part, got %q", rec.Contact.Name)
	}
	if rec.Timestamp != now.Format(time.RFC3339) {
		t.Fatalf("timestamp should be ISO-8601, got %q", rec.Timestamp)
	}
	if len(rec.FileNames) != 1 || rec.FileNames[0] != "notes.pdf" {
		t.Fatalf("file names should be copied, got %v", rec.FileNames)
	}
	if len(rec.Details.Print.FileLinks) != 1 || rec.Details.Print.FileLinks[0] != "https://drive.example/n" {
		t.Fatalf("file links should be copied, got %v", rec.Details.Print.FileLinks)
	}
}

func TestAssemblePrintNilBreakdown(t *testing.T) {
	rec := AssemblePrint(PrintSpec{Type: domain.OrderTypePrint}, now)
	if rec.Details.Print.TotalPrice != 0 {
		t.Fatalf("nil breakdown assembles at zero, got %d", rec.Details.Print.TotalPrice)
	}
}

func TestAssembleBindingCarriesStyle(t *testing.T) {
	spec := PrintSpec{
		Type:         domain.OrderTypeBinding,
		BindingStyle: domain.BindingHardEmboss,
		CoverPrint:   domain.CoverSimple,
	}
	rec := AssemblePrint(spec, now)
	if rec.Details.Print.BindingStyle != domain.BindingHardEmboss {
		t.Fatalf("binding style missing: %+v", rec.Details.Print)
	}
}

func TestAssemblePlagiarismTypeSwitch(t *testing.T) {
	base := PlagiarismSpec{
		Files:     []domain.FileReference{{Name: "a.pdf", URL: "u", TotalPages: 40}},
		Contact:   domain.ContactInfo{Phone: "987"},
		Breakdown: &domain.PlagiarismBreakdown{TotalPages: 40, PageRange: "1-50", TotalPrice: 999},
	}

	base.Selection = domain.ServiceSelection{PlagiarismCheck: true, AICheck: true}
	rec := AssemblePlagiarism(base, now)
	if rec.OrderType != domain.OrderTypePlagiarism {
		t.Fatalf("mixed selection should stay plagiarism, got %s", rec.OrderType)
	}

	base.Selection = domain.ServiceSelection{AIRemoval: true}
	rec = AssemblePlagiarism(base, now)
	if rec.OrderType != domain.OrderTypeAI {
		t.Fatalf("AI-only selection should switch to ai, got %s", rec.OrderType)
	}
	if rec.Details.Plagiarism.TotalPrice != 999 {
		t.Fatalf("breakdown total must be embedded, got %d", rec.Details.Plagiarism.TotalPrice)
	}
}
