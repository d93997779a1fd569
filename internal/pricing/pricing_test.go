package pricing

import (
	"reflect"
	"testing"

	"github.com/deep-computers/dc-orders/internal/domain"
)

func oneFile() []domain.FileReference {
	return []domain.FileReference{{ID: "f1", Name: "thesis.pdf", URL: "https://drive.example/abc"}}
}

func TestQuotePrintNoFiles(t *testing.T) {
	b := QuotePrint(PrintInput{PaperGrade: domain.PaperNormal, BWPages: 10, Copies: 2})
	if b != nil {
		t.Fatalf("expected nil breakdown without files, got %+v", b)
	}
}

func TestQuotePrintNormalGrade(t *testing.T) {
	b := QuotePrint(PrintInput{Files: oneFile(), PaperGrade: domain.PaperNormal, BWPages: 10, Copies: 1})
	if b == nil {
		t.Fatal("expected breakdown")
	}
	if b.PrintPrice != 10 || b.TotalPrice != 10 {
		t.Fatalf("normal 10 BW x 1 copy: want 10/10, got %d/%d", b.PrintPrice, b.TotalPrice)
	}
}

func TestQuotePrint100GSMColor(t *testing.T) {
	b := QuotePrint(PrintInput{Files: oneFile(), PaperGrade: domain.Paper100GSM, ColorPages: 20, Copies: 2})
	if b == nil {
		t.Fatal("expected breakdown")
	}
	if b.PrintPrice != 280 {
		t.Fatalf("100gsm 20 color x 2 copies: want 280, got %d", b.PrintPrice)
	}
	if b.ColorPages != 40 || b.TotalPages != 40 {
		t.Fatalf("page totals should be multiplied by copies, got color=%d total=%d", b.ColorPages, b.TotalPages)
	}
}

func TestQuotePrintMatchesRateTable(t *testing.T) {
	for grade, rate := range printRates {
		b := QuotePrint(PrintInput{Files: oneFile(), PaperGrade: grade, BWPages: 3, ColorPages: 2, Copies: 2})
		want := 3*rate.BW*2 + 2*rate.Color*2
		if b.PrintPrice != want {
			t.Errorf("grade %s: want %d, got %d", grade, want, b.PrintPrice)
		}
	}
}

func TestQuotePrintZeroPagesWithFiles(t *testing.T) {
	b := QuotePrint(PrintInput{Files: oneFile(), PaperGrade: domain.PaperNormal})
	if b == nil {
		t.Fatal("files present: breakdown should be computed even at zero pages")
	}
	if b.TotalPrice != 0 {
		t.Fatalf("zero pages should price at zero, got %d", b.TotalPrice)
	}
}

func TestQuotePrintBindingAndCover(t *testing.T) {
	b := QuotePrint(PrintInput{
		Files:        oneFile(),
		PaperGrade:   domain.PaperNormal,
		BWPages:      10,
		Copies:       2,
		BindingStyle: domain.BindingHardNormal,
		CoverPrint:   domain.CoverPremium,
	})
	if b.BindingPrice != bindingPrices[domain.BindingHardNormal]*2 {
		t.Fatalf("binding price: got %d", b.BindingPrice)
	}
	if b.CoverPrice != coverPrices[domain.CoverPremium]*2 {
		t.Fatalf("cover price: got %d", b.CoverPrice)
	}
	if b.TotalPrice != b.PrintPrice+b.BindingPrice+b.CoverPrice {
		t.Fatalf("total must be the sum of line items: %+v", b)
	}
}

func TestCoverOnlyOnHardBinding(t *testing.T) {
	b := QuotePrint(PrintInput{
		Files:        oneFile(),
		PaperGrade:   domain.PaperNormal,
		BWPages:      10,
		Copies:       1,
		BindingStyle: domain.BindingSpiral,
		CoverPrint:   domain.CoverPremium,
	})
	if b.CoverPrice != 0 {
		t.Fatalf("spiral binding must not charge a cover, got %d", b.CoverPrice)
	}
}

func TestQuotePrintIdempotent(t *testing.T) {
	in := PrintInput{Files: oneFile(), PaperGrade: domain.Paper90GSM, BWPages: 7, ColorPages: 3, Copies: 2}
	first := QuotePrint(in)
	second := QuotePrint(in)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs must price identically: %+v vs %+v", first, second)
	}
}

func TestPageRangeBands(t *testing.T) {
	cases := []struct {
		pages int
		want  string
	}{
		{0, Range1To50},
		{1, Range1To50},
		{50, Range1To50},
		{51, Range51To100},
		{100, Range51To100},
		{101, Range101To150},
		{120, Range101To150},
		{150, Range101To150},
		{151, Range151Plus},
		{1000, Range151Plus},
	}
	for _, tc := range cases {
		if got := PageRange(tc.pages); got != tc.want {
			t.Errorf("PageRange(%d) = %s, want %s", tc.pages, got, tc.want)
		}
	}
}

func TestQuotePlagiarismAnchor(t *testing.T) {
	files := []domain.FileReference{
		{ID: "f1", Name: "a.pdf", URL: "https://drive.example/a", TotalPages: 70},
		{ID: "f2", Name: "b.pdf", URL: "https://drive.example/b", TotalPages: 50},
	}
	b := QuotePlagiarism(files, domain.ServiceSelection{PlagiarismCheck: true})
	if b == nil {
		t.Fatal("expected breakdown")
	}
	if b.TotalPages != 120 || b.PageRange != Range101To150 {
		t.Fatalf("120 pages should bucket to 101-150, got %d/%s", b.TotalPages, b.PageRange)
	}
	if b.TotalPrice != 1099 {
		t.Fatalf("plagiarism check at 101-150: want 1099, got %d", b.TotalPrice)
	}
}

func TestQuotePlagiarismSumsSelectedServices(t *testing.T) {
	files := []domain.FileReference{{ID: "f1", URL: "u", TotalPages: 30}}
	sel := domain.ServiceSelection{PlagiarismCheck: true, AIRemoval: true}
	b := QuotePlagiarism(files, sel)
	want := plagiarismPrices[ServicePlagiarismCheck][Range1To50] + plagiarismPrices[ServiceAIRemoval][Range1To50]
	if b.TotalPrice != want {
		t.Fatalf("want %d, got %d", want, b.TotalPrice)
	}
	if len(b.Services) != 2 {
		t.Fatalf("want 2 service lines, got %d", len(b.Services))
	}
}

func TestQuotePlagiarismNoFiles(t *testing.T) {
	if b := QuotePlagiarism(nil, domain.ServiceSelection{PlagiarismCheck: true}); b != nil {
		t.Fatalf("expected nil breakdown without files, got %+v", b)
	}
}

func TestServiceSummaryLines(t *testing.T) {
	files := []domain.FileReference{{ID: "f1", URL: "u", TotalPages: 10}}
	b := QuotePlagiarism(files, domain.ServiceSelection{AICheck: true})
	lines := ServiceSummary(b)
	if len(lines) != 1 || lines[0] != "AI Check: ₹399" {
		t.Fatalf("unexpected summary: %v", lines)
	}
}

func TestParsePages(t *testing.T) {
	cases := map[string]int{
		"12":   12,
		" 7 ":  7,
		"":     0,
		"abc":  0,
		"-3":   0,
		"12.5": 0,
	}
	for raw, want := range cases {
		if got := ParsePages(raw); got != want {
			t.Errorf("ParsePages(%q) = %d, want %d", raw, got, want)
		}
	}
}
