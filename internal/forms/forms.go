package forms

import (
	"strings"

	"github.com/google/uuid"

	"github.com/deep-computers/dc-orders/internal/domain"
	"github.com/deep-computers/dc-orders/internal/pricing"
)

// Validation messages shared across the three forms.
const (
	ErrNoFiles         = "add at least one file URL"
	ErrNoPages         = "specify at least one page to print"
	ErrNoFilePages     = "enter the page count for every added file"
	ErrNoPaymentProof  = "provide payment proof URL"
	ErrNoContact       = "provide either email or phone"
	ErrEmbossMinCopies = "emboss binding requires minimum 4 copies"
	ErrNoService       = "select at least one service"
)

// Form is the slice of behaviour the submission session needs from any of
// the three order forms.
type Form interface {
	// Errors returns the current validation error list. Empty means the
	// form may be submitted.
	Errors() []string
	// Assemble builds the canonical order record from the current state.
	Assemble() domain.OrderRecord
	// Reset clears all user input, returning the form to its defaults.
	Reset()
}

// PrintForm owns the mutable state of a print order. Every priced input
// change re-runs the calculator and the validators synchronously, so the
// breakdown and error list are always current.
type PrintForm struct {
	files        []domain.FileReference
	grade        domain.PaperGrade
	bwPages      int
	colorPages   int
	copies       int
	paymentProof string
	contact      domain.ContactInfo
	instructions string

	breakdown *domain.PrintBreakdown
	errors    []string
}

// NewPrintForm returns an empty print form with default options.
func NewPrintForm() *PrintForm {
	f := &PrintForm{grade: domain.PaperNormal, copies: 1}
	f.refresh()
	return f
}

// AddFile appends a file reference, generating an id when the caller did
// not supply one.
func (f *PrintForm) AddFile(ref domain.FileReference) {
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	f.files = append(f.files, ref)
	f.refresh()
}

// RemoveFile deletes the file row with the given id. Unknown ids are a
// no-op.
func (f *PrintForm) RemoveFile(id string) {
	for i, ref := range f.files {
		if ref.ID == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			break
		}
	}
	f.refresh()
}

func (f *PrintForm) SetPaperGrade(grade domain.PaperGrade) {
	f.grade = grade
	f.refresh()
}

func (f *PrintForm) SetPages(bw, color int) {
	f.bwPages, f.colorPages = bw, color
	f.refresh()
}

func (f *PrintForm) SetCopies(copies int) {
	f.copies = copies
	f.refresh()
}

func (f *PrintForm) SetPaymentProof(url string) {
	f.paymentProof = url
	f.refresh()
}

func (f *PrintForm) SetContact(c domain.ContactInfo) {
	f.contact = c
	f.refresh()
}

func (f *PrintForm) SetInstructions(text string) {
	f.instructions = text
}

// Breakdown returns the current pricing, nil while no file is attached.
func (f *PrintForm) Breakdown() *domain.PrintBreakdown { return f.breakdown }

func (f *PrintForm) Errors() []string { return f.errors }

func (f *PrintForm) Reset() {
	*f = PrintForm{grade: domain.PaperNormal, copies: 1}
	f.refresh()
}

func (f *PrintForm) refresh() {
	f.breakdown = pricing.QuotePrint(f.pricingInput())
	f.errors = f.validate()
}

func (f *PrintForm) pricingInput() pricing.PrintInput {
	return pricing.PrintInput{
		Files:      f.files,
		PaperGrade: f.grade,
		BWPages:    f.bwPages,
		ColorPages: f.colorPages,
		Copies:     f.copies,
	}
}

func (f *PrintForm) validate() []string {
	var errs []string
	if len(f.files) == 0 {
		errs = append(errs, ErrNoFiles)
	}
	if f.bwPages+f.colorPages <= 0 {
		errs = append(errs, ErrNoPages)
	}
	if strings.TrimSpace(f.paymentProof) == "" {
		errs = append(errs, ErrNoPaymentProof)
	}
	if missingContact(f.contact) {
		errs = append(errs, ErrNoContact)
	}
	return errs
}

// BindingForm is a print form with a binding style and an optional cover
// surcharge. The cover only prices on hard binding styles.
type BindingForm struct {
	PrintForm
	style domain.BindingStyle
	cover domain.CoverPrint
}

// NewBindingForm returns an empty binding form defaulting to spiral.
func NewBindingForm() *BindingForm {
	f := &BindingForm{style: domain.BindingSpiral, cover: domain.CoverNone}
	f.PrintForm.grade = domain.PaperNormal
	f.PrintForm.copies = 1
	f.refresh()
	return f
}

func (f *BindingForm) SetBindingStyle(style domain.BindingStyle) {
	f.style = style
	f.refresh()
}

func (f *BindingForm) SetCoverPrint(cover domain.CoverPrint) {
	f.cover = cover
	f.refresh()
}

func (f *BindingForm) Reset() {
	*f = BindingForm{style: domain.BindingSpiral, cover: domain.CoverNone}
	f.PrintForm.grade = domain.PaperNormal
	f.PrintForm.copies = 1
	f.refresh()
}

func (f *BindingForm) refresh() {
	in := f.pricingInput()
	in.BindingStyle = f.style
	in.CoverPrint = f.cover
	f.breakdown = pricing.QuotePrint(in)
	f.errors = f.validate()
}

func (f *BindingForm) validate() []string {
	errs := f.PrintForm.validate()
	if f.style == domain.BindingHardEmboss && f.copies < domain.EmbossMinCopies {
		errs = append(errs, ErrEmbossMinCopies)
	}
	return errs
}

// Setter overrides keep binding recalculation on the extended input.

func (f *BindingForm) AddFile(ref domain.FileReference) {
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	f.files = append(f.files, ref)
	f.refresh()
}

func (f *BindingForm) RemoveFile(id string) {
	for i, ref := range f.files {
		if ref.ID == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			break
		}
	}
	f.refresh()
}

func (f *BindingForm) SetPaperGrade(grade domain.PaperGrade) {
	f.grade = grade
	f.refresh()
}

func (f *BindingForm) SetPages(bw, color int) {
	f.bwPages, f.colorPages = bw, color
	f.refresh()
}

func (f *BindingForm) SetCopies(copies int) {
	f.copies = copies
	f.refresh()
}

func (f *BindingForm) SetPaymentProof(url string) {
	f.paymentProof = url
	f.refresh()
}

func (f *BindingForm) SetContact(c domain.ContactInfo) {
	f.contact = c
	f.refresh()
}

// PlagiarismForm owns the state of a plagiarism/ai order: files with
// per-file page counts, the four service flags, payment proof and contact.
type PlagiarismForm struct {
	files        []domain.FileReference
	selection    domain.ServiceSelection
	paymentProof string
	contact      domain.ContactInfo
	instructions string

	breakdown *domain.PlagiarismBreakdown
	errors    []string
}

// NewPlagiarismForm starts with the traditional plagiarism check selected,
// satisfying the at-least-one-service invariant from the first render.
func NewPlagiarismForm() *PlagiarismForm {
	f := &PlagiarismForm{selection: domain.ServiceSelection{PlagiarismCheck: true}}
	f.refresh()
	return f
}

func (f *PlagiarismForm) AddFile(ref domain.FileReference) {
	if ref.ID == "" {
		ref.ID = uuid.NewString()
	}
	f.files = append(f.files, ref)
	f.refresh()
}

func (f *PlagiarismForm) RemoveFile(id string) {
	for i, ref := range f.files {
		if ref.ID == id {
			f.files = append(f.files[:i], f.files[i+1:]...)
			break
		}
	}
	f.refresh()
}

// SetFilePages edits a file's page count in place.
func (f *PlagiarismForm) SetFilePages(id string, pages int) {
	for i := range f.files {
		if f.files[i].ID == id {
			f.files[i].TotalPages = pages
			break
		}
	}
	f.refresh()
}

// Selection returns the current service flags.
func (f *PlagiarismForm) Selection() domain.ServiceSelection { return f.selection }

// SetService toggles one of the four service flags. Turning a flag on
// forces the mutually exclusive flag of the same category off; turning the
// last selected service off is rejected as a no-op.
func (f *PlagiarismForm) SetService(name string, on bool) {
	next := f.selection
	switch name {
	case pricing.ServicePlagiarismCheck:
		next.PlagiarismCheck = on
		if on {
			next.PlagiarismRemoval = false
		}
	case pricing.ServicePlagiarismRemoval:
		next.PlagiarismRemoval = on
		if on {
			next.PlagiarismCheck = false
		}
	case pricing.ServiceAICheck:
		next.AICheck = on
		if on {
			next.AIRemoval = false
		}
	case pricing.ServiceAIRemoval:
		next.AIRemoval = on
		if on {
			next.AICheck = false
		}
	default:
		return
	}

	if next.Count() == 0 {
		return
	}

	f.selection = next
	f.refresh()
}

// SetSelection replaces the service flags wholesale, as a submitted
// payload does. Removal wins over Check within a category; an empty
// selection is rejected as a no-op.
func (f *PlagiarismForm) SetSelection(sel domain.ServiceSelection) {
	if sel.PlagiarismRemoval {
		sel.PlagiarismCheck = false
	}
	if sel.AIRemoval {
		sel.AICheck = false
	}
	if sel.Count() == 0 {
		return
	}
	f.selection = sel
	f.refresh()
}

func (f *PlagiarismForm) SetPaymentProof(url string) {
	f.paymentProof = url
	f.refresh()
}

func (f *PlagiarismForm) SetContact(c domain.ContactInfo) {
	f.contact = c
	f.refresh()
}

func (f *PlagiarismForm) SetInstructions(text string) {
	f.instructions = text
}

func (f *PlagiarismForm) Breakdown() *domain.PlagiarismBreakdown { return f.breakdown }

func (f *PlagiarismForm) Errors() []string { return f.errors }

func (f *PlagiarismForm) Reset() {
	*f = PlagiarismForm{selection: domain.ServiceSelection{PlagiarismCheck: true}}
	f.refresh()
}

func (f *PlagiarismForm) refresh() {
	f.breakdown = pricing.QuotePlagiarism(f.files, f.selection)
	f.errors = f.validate()
}

func (f *PlagiarismForm) validate() []string {
	var errs []string
	if len(f.files) == 0 {
		errs = append(errs, ErrNoFiles)
	}
	pagesMissing := false
	for _, ref := range f.files {
		if ref.TotalPages <= 0 {
			pagesMissing = true
			break
		}
	}
	if pagesMissing {
		errs = append(errs, ErrNoFilePages)
	}
	if f.selection.Count() == 0 {
		errs = append(errs, ErrNoService)
	}
	if strings.TrimSpace(f.paymentProof) == "" {
		errs = append(errs, ErrNoPaymentProof)
	}
	if missingContact(f.contact) {
		errs = append(errs, ErrNoContact)
	}
	return errs
}

func missingContact(c domain.ContactInfo) bool {
	return strings.TrimSpace(c.Email) == "" && strings.TrimSpace(c.Phone) == ""
}
