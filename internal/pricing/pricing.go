package pricing

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/deep-computers/dc-orders/internal/domain"
)

// Per-page print rates in rupees, keyed by paper grade.
type pageRate struct {
	BW    int
	Color int
}

var printRates = map[domain.PaperGrade]pageRate{
	domain.PaperNormal: {BW: 1, Color: 5},
	domain.Paper80GSM:  {BW: 2, Color: 5},
	domain.Paper90GSM:  {BW: 2, Color: 6},
	domain.Paper100GSM: {BW: 3, Color: 7},
}

// Flat per-copy binding prices in rupees.
var bindingPrices = map[domain.BindingStyle]int{
	domain.BindingSpiral:     40,
	domain.BindingSoft:       100,
	domain.BindingHardNormal: 150,
	domain.BindingHardEmboss: 250,
}

// Flat per-copy cover surcharge, applicable to hard binding only.
var coverPrices = map[domain.CoverPrint]int{
	domain.CoverNone:    0,
	domain.CoverSimple:  50,
	domain.CoverPremium: 100,
}

// Page-range bands for plagiarism services.
const (
	Range1To50    = "1-50"
	Range51To100  = "51-100"
	Range101To150 = "101-150"
	Range151Plus  = "151+"
)

// Display names of the four academic services.
const (
	ServicePlagiarismCheck   = "Plagiarism Check"
	ServicePlagiarismRemoval = "Plagiarism Removal"
	ServiceAICheck           = "AI Check"
	ServiceAIRemoval         = "AI Removal"
)

// Flat service prices in rupees per page-range band.
var plagiarismPrices = map[string]map[string]int{
	ServicePlagiarismCheck: {
		Range1To50:    699,
		Range51To100:  899,
		Range101To150: 1099,
		Range151Plus:  1499,
	},
	ServicePlagiarismRemoval: {
		Range1To50:    1499,
		Range51To100:  1999,
		Range101To150: 2499,
		Range151Plus:  2999,
	},
	ServiceAICheck: {
		Range1To50:    399,
		Range51To100:  599,
		Range101To150: 799,
		Range151Plus:  999,
	},
	ServiceAIRemoval: {
		Range1To50:    999,
		Range51To100:  1399,
		Range101To150: 1799,
		Range151Plus:  2199,
	},
}

// PrintInput is everything the print/binding calculator looks at.
type PrintInput struct {
	Files      []domain.FileReference
	PaperGrade domain.PaperGrade
	BWPages    int
	ColorPages int
	Copies     int
	// Binding fields are zero-valued on plain print orders.
	BindingStyle domain.BindingStyle
	CoverPrint   domain.CoverPrint
}

// QuotePrint prices a print or binding order. It returns nil when no file
// has been added: no pricing is shown without at least one file reference.
// It never fails; out-of-table grades fall back to the normal rate.
func QuotePrint(in PrintInput) *domain.PrintBreakdown {
	if len(in.Files) == 0 {
		return nil
	}

	copies := in.Copies
	if copies < 1 {
		copies = 1
	}

	rate, ok := printRates[in.PaperGrade]
	if !ok {
		rate = printRates[domain.PaperNormal]
	}

	bw := clampPages(in.BWPages)
	color := clampPages(in.ColorPages)

	b := &domain.PrintBreakdown{
		BWPages:    bw * copies,
		ColorPages: color * copies,
		TotalPages: (bw + color) * copies,
		PrintPrice: bw*rate.BW*copies + color*rate.Color*copies,
	}

	if in.BindingStyle != "" {
		b.BindingPrice = bindingPrices[in.BindingStyle] * copies
		if IsHardBinding(in.BindingStyle) {
			b.CoverPrice = coverPrices[in.CoverPrint] * copies
		}
	}

	b.TotalPrice = b.PrintPrice + b.BindingPrice + b.CoverPrice
	return b
}

// IsHardBinding reports whether a style accepts a cover-print surcharge.
func IsHardBinding(style domain.BindingStyle) bool {
	return style == domain.BindingHardNormal || style == domain.BindingHardEmboss
}

// QuotePlagiarism prices a plagiarism/ai order from the per-file page
// counts and the current service selection. Nil when no file was added.
func QuotePlagiarism(files []domain.FileReference, sel domain.ServiceSelection) *domain.PlagiarismBreakdown {
	if len(files) == 0 {
		return nil
	}

	total := 0
	for _, f := range files {
		total += clampPages(f.TotalPages)
	}

	band := PageRange(total)
	b := &domain.PlagiarismBreakdown{
		TotalPages: total,
		PageRange:  band,
	}

	for _, name := range selectedServices(sel) {
		price := plagiarismPrices[name][band]
		b.Services = append(b.Services, domain.ServiceLine{Name: name, Price: price})
		b.TotalPrice += price
	}

	return b
}

// PageRange buckets a page count into one of the four bands. Thresholds
// are evaluated highest first, exclusive above 50/100/150.
func PageRange(pages int) string {
	switch {
	case pages > 150:
		return Range151Plus
	case pages > 100:
		return Range101To150
	case pages > 50:
		return Range51To100
	default:
		return Range1To50
	}
}

// ServiceSummary renders the "ServiceName: ₹price" lines shown on the
// plagiarism form.
func ServiceSummary(b *domain.PlagiarismBreakdown) []string {
	if b == nil {
		return nil
	}
	lines := make([]string, 0, len(b.Services))
	for _, svc := range b.Services {
		lines = append(lines, fmt.Sprintf("%s: ₹%d", svc.Name, svc.Price))
	}
	return lines
}

func selectedServices(sel domain.ServiceSelection) []string {
	var names []string
	if sel.PlagiarismCheck {
		names = append(names, ServicePlagiarismCheck)
	}
	if sel.PlagiarismRemoval {
		names = append(names, ServicePlagiarismRemoval)
	}
	if sel.AICheck {
		names = append(names, ServiceAICheck)
	}
	if sel.AIRemoval {
		names = append(names, ServiceAIRemoval)
	}
	return names
}

// ParsePages coerces a free-text page count to a non-negative integer,
// falling back to 0 on anything unparseable.
func ParsePages(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func clampPages(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
