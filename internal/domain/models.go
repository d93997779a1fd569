package domain

// OrderType selects the specification fields and pricing table that apply
// to an order.
type OrderType string

const (
	OrderTypePrint      OrderType = "print"
	OrderTypeBinding    OrderType = "binding"
	OrderTypePlagiarism OrderType = "plagiarism"
	OrderTypeAI         OrderType = "ai"
)

// PaperGrade is the paper quality an order is printed on.
type PaperGrade string

const (
	PaperNormal PaperGrade = "normal"
	Paper80GSM  PaperGrade = "80gsm"
	Paper90GSM  PaperGrade = "90gsm"
	Paper100GSM PaperGrade = "100gsm"
)

// BindingStyle is the binding finish applied per copy.
type BindingStyle string

const (
	BindingSpiral     BindingStyle = "spiral"
	BindingSoft       BindingStyle = "soft"
	BindingHardNormal BindingStyle = "hard-normal"
	BindingHardEmboss BindingStyle = "hard-emboss"
)

// EmbossMinCopies is the minimum copy count accepted for emboss binding.
const EmbossMinCopies = 4

// CoverPrint is the optional cover surcharge tier, valid only for hard
// binding styles.
type CoverPrint string

const (
	CoverNone    CoverPrint = "none"
	CoverSimple  CoverPrint = "simple"
	CoverPremium CoverPrint = "premium"
)

// FileReference points at an externally hosted document. Files are never
// uploaded to this service; the customer pastes a share link plus a label.
type FileReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	// TotalPages is only meaningful for plagiarism orders, where page
	// counts are entered per file.
	TotalPages int `json:"totalPages,omitempty"`
}

// ServiceSelection holds the four independent plagiarism service flags.
// At least one flag is true at all times; Check and Removal are mutually
// exclusive within a category.
type ServiceSelection struct {
	PlagiarismCheck   bool `json:"plagiarismCheck"`
	PlagiarismRemoval bool `json:"plagiarismRemoval"`
	AICheck           bool `json:"aiCheck"`
	AIRemoval         bool `json:"aiRemoval"`
}

// Count returns how many services are selected.
func (s ServiceSelection) Count() int {
	n := 0
	for _, on := range []bool{s.PlagiarismCheck, s.PlagiarismRemoval, s.AICheck, s.AIRemoval} {
		if on {
			n++
		}
	}
	return n
}

// AIOnly reports whether only AI services are selected, which switches the
// order type (and id prefix) from plagiarism to ai.
func (s ServiceSelection) AIOnly() bool {
	return (s.AICheck || s.AIRemoval) && !s.PlagiarismCheck && !s.PlagiarismRemoval
}

// ContactInfo carries the customer's reachability details. At least one of
// Email and Phone must be present; Name defaults to the email local-part.
type ContactInfo struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// PrintBreakdown is the itemized price for print and binding orders.
// Page totals are multiplied by the copy count.
type PrintBreakdown struct {
	BWPages      int `json:"bwPages"`
	ColorPages   int `json:"colorPages"`
	TotalPages   int `json:"totalPages"`
	PrintPrice   int `json:"printPrice"`
	BindingPrice int `json:"bindingPrice,omitempty"`
	CoverPrice   int `json:"coverPrice,omitempty"`
	TotalPrice   int `json:"totalPrice"`
}

// ServiceLine is one priced service entry of a plagiarism quote.
type ServiceLine struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// PlagiarismBreakdown is the itemized price for plagiarism/ai orders.
type PlagiarismBreakdown struct {
	TotalPages int           `json:"totalPages"`
	PageRange  string        `json:"pageRange"`
	Services   []ServiceLine `json:"services"`
	TotalPrice int           `json:"totalPrice"`
}

// PrintDetails is the specification payload of a print or binding order.
type PrintDetails struct {
	PaperGrade          PaperGrade   `json:"paperGrade"`
	BWPages             int          `json:"bwPages"`
	ColorPages          int          `json:"colorPages"`
	Copies              int          `json:"copies"`
	BindingStyle        BindingStyle `json:"bindingStyle,omitempty"`
	CoverPrint          CoverPrint   `json:"coverPrint,omitempty"`
	TotalPrice          int          `json:"totalPrice"`
	FileLinks           []string     `json:"fileLinks"`
	PaymentProof        string       `json:"paymentProof"`
	SpecialInstructions string       `json:"specialInstructions,omitempty"`
}

// PlagiarismDetails is the specification payload of a plagiarism/ai order.
type PlagiarismDetails struct {
	Selection           ServiceSelection `json:"selection"`
	TotalPages          int              `json:"totalPages"`
	PageRange           string           `json:"pageRange"`
	ServiceSummary      []string         `json:"serviceSummary"`
	TotalPrice          int              `json:"totalPrice"`
	FileLinks           []string         `json:"fileLinks"`
	PaymentProof        string           `json:"paymentProof"`
	SpecialInstructions string           `json:"specialInstructions,omitempty"`
}

// OrderDetails is the tagged union of per-type specification payloads.
// Exactly one variant is non-nil, matching the order type.
type OrderDetails struct {
	Print      *PrintDetails      `json:"print,omitempty"`
	Plagiarism *PlagiarismDetails `json:"plagiarism,omitempty"`
}

// TotalPrice returns the total of whichever variant is set.
func (d OrderDetails) TotalPrice() int {
	switch {
	case d.Print != nil:
		return d.Print.TotalPrice
	case d.Plagiarism != nil:
		return d.Plagiarism.TotalPrice
	}
	return 0
}

// OrderRecord is the canonical submission unit. It is assembled once per
// submit attempt and never mutated afterwards; a resubmission builds a
// fresh record with a fresh id.
type OrderRecord struct {
	OrderID          string       `json:"orderId"`
	OrderType        OrderType    `json:"orderType"`
	Contact          ContactInfo  `json:"contactInfo"`
	Details          OrderDetails `json:"orderDetails"`
	FileNames        []string     `json:"fileNames"`
	PaymentProofName string       `json:"paymentProofName"`
	Timestamp        string       `json:"timestamp"`
}

// Delivery status of an archived order.
const (
	DeliverySent     = "sent"
	DeliveryFallback = "fallback"
)

// ArchivedOrder is an OrderRecord plus local delivery bookkeeping. Orders
// that went through the fallback path are kept so the business can
// reconcile them against manual WhatsApp follow-ups.
type ArchivedOrder struct {
	OrderRecord
	DeliveryStatus string `json:"deliveryStatus"`
	ArchivedAt     int64  `json:"archivedAt"`
}
