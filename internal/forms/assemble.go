package forms

import (
	"time"

	"github.com/deep-computers/dc-orders/internal/domain"
	"github.com/deep-computers/dc-orders/internal/order"
)

func (f *PrintForm) Assemble() domain.OrderRecord {
	return order.AssemblePrint(order.PrintSpec{
		Type:         domain.OrderTypePrint,
		Files:        f.files,
		PaperGrade:   f.grade,
		BWPages:      f.bwPages,
		ColorPages:   f.colorPages,
		Copies:       f.copies,
		PaymentProof: f.paymentProof,
		Instructions: f.instructions,
		Contact:      f.contact,
		Breakdown:    f.breakdown,
	}, time.Now())
}

func (f *BindingForm) Assemble() domain.OrderRecord {
	return order.AssemblePrint(order.PrintSpec{
		Type:         domain.OrderTypeBinding,
		Files:        f.files,
		PaperGrade:   f.grade,
		BWPages:      f.bwPages,
		ColorPages:   f.colorPages,
		Copies:       f.copies,
		BindingStyle: f.style,
		CoverPrint:   f.cover,
		PaymentProof: f.paymentProof,
		Instructions: f.instructions,
		Contact:      f.contact,
		Breakdown:    f.breakdown,
	}, time.Now())
}

func (f *PlagiarismForm) Assemble() domain.OrderRecord {
	return order.AssemblePlagiarism(order.PlagiarismSpec{
		Files:        f.files,
		Selection:    f.selection,
		PaymentProof: f.paymentProof,
		Instructions: f.instructions,
		Contact:      f.contact,
		Breakdown:    f.breakdown,
	}, time.Now())
}
