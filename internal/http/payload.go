package http

import (
	"strconv"
	"strings"

	"github.com/deep-computers/dc-orders/internal/domain"
)

// flexInt accepts a JSON number or a free-text string. The order forms are
// text inputs, so anything unparseable coerces to 0 instead of failing the
// request.
type flexInt int

func (n *flexInt) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		*n = 0
		return nil
	}
	*n = flexInt(v)
	return nil
}

type filePayload struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	URL        string  `json:"url"`
	TotalPages flexInt `json:"totalPages"`
}

func (p filePayload) ref() domain.FileReference {
	return domain.FileReference{
		ID:         p.ID,
		Name:       p.Name,
		URL:        p.URL,
		TotalPages: int(p.TotalPages),
	}
}

type contactPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (p contactPayload) info() domain.ContactInfo {
	return domain.ContactInfo{Name: p.Name, Email: p.Email, Phone: p.Phone}
}

type printPayload struct {
	Files        []filePayload  `json:"files"`
	PaperGrade   string         `json:"paperGrade"`
	BWPages      flexInt        `json:"bwPages"`
	ColorPages   flexInt        `json:"colorPages"`
	Copies       flexInt        `json:"copies"`
	BindingStyle string         `json:"bindingStyle"`
	CoverPrint   string         `json:"coverPrint"`
	PaymentProof string         `json:"paymentProofUrl"`
	Instructions string         `json:"specialInstructions"`
	Contact      contactPayload `json:"contact"`
}

type plagiarismPayload struct {
	Files        []filePayload           `json:"files"`
	Services     domain.ServiceSelection `json:"services"`
	PaymentProof string                  `json:"paymentProofUrl"`
	Instructions string                  `json:"specialInstructions"`
	Contact      contactPayload          `json:"contact"`
}
