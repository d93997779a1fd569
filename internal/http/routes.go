package http

import (
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/deep-computers/dc-orders/internal/config"
	"github.com/deep-computers/dc-orders/internal/domain"
	"github.com/deep-computers/dc-orders/internal/forms"
	"github.com/deep-computers/dc-orders/internal/services"
	"github.com/deep-computers/dc-orders/internal/storage"
)

type API struct {
	cfg    config.Config
	store  *storage.Store
	files  *storage.FileManager
	mailer forms.Notifier
	pdf    *services.PDFService
	share  *services.ShareService
}

func NewAPI(cfg config.Config, store *storage.Store, fm *storage.FileManager, mailer forms.Notifier, pdf *services.PDFService, share *services.ShareService) *API {
	return &API{cfg: cfg, store: store, files: fm, mailer: mailer, pdf: pdf, share: share}
}

func registerRoutes(r *gin.Engine, api *API) {
	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", api.handleHealth)

		apiGroup.POST("/quotes/print", api.handleQuotePrint)
		apiGroup.POST("/quotes/binding", api.handleQuoteBinding)
		apiGroup.POST("/quotes/plagiarism", api.handleQuotePlagiarism)

		apiGroup.POST("/orders/print", api.handleSubmitPrint)
		apiGroup.POST("/orders/binding", api.handleSubmitBinding)
		apiGroup.POST("/orders/plagiarism", api.handleSubmitPlagiarism)

		apiGroup.GET("/orders", api.handleListOrders)
		apiGroup.GET("/orders/:id", api.handleGetOrder)
		apiGroup.POST("/orders/:id/share", api.handleShareOrder)
	}

	r.GET("/summary/:id", api.handleServeSummary)
}

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Quotes run the calculator only. Pricing is nullable: without a file the
// response carries "pricing": null, which is not an error.

func (a *API) handleQuotePrint(c *gin.Context) {
	var payload printPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	form := a.buildPrintForm(payload)
	c.JSON(http.StatusOK, gin.H{"pricing": form.Breakdown(), "errors": form.Errors()})
}

func (a *API) handleQuoteBinding(c *gin.Context) {
	var payload printPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	form := a.buildBindingForm(payload)
	c.JSON(http.StatusOK, gin.H{"pricing": form.Breakdown(), "errors": form.Errors()})
}

func (a *API) handleQuotePlagiarism(c *gin.Context) {
	var payload plagiarismPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}

	form := a.buildPlagiarismForm(payload)
	c.JSON(http.StatusOK, gin.H{"pricing": form.Breakdown(), "errors": form.Errors()})
}

func (a *API) handleSubmitPrint(c *gin.Context) {
	var payload printPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	a.submit(c, a.buildPrintForm(payload))
}

func (a *API) handleSubmitBinding(c *gin.Context) {
	var payload printPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	a.submit(c, a.buildBindingForm(payload))
}

func (a *API) handleSubmitPlagiarism(c *gin.Context) {
	var payload plagiarismPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	a.submit(c, a.buildPlagiarismForm(payload))
}

// submit drives one form through the session pipeline. Validation failures
// never reach the mailer; a mailer failure still yields a submitted
// response through the fallback path.
func (a *API) submit(c *gin.Context, form forms.Form) {
	session := forms.NewSession(form, a.mailer, a.cfg.WhatsAppNumber)

	result, rec := session.Submit(c.Request.Context())
	if result.Status == "invalid" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": result.Errors})
		return
	}

	status := domain.DeliverySent
	if result.Fallback {
		status = domain.DeliveryFallback
	}

	archived, err := a.store.Record(rec, status)
	if err != nil {
		// The customer already has an order id; losing the local ledger
		// entry is the business's problem, not theirs.
		log.Printf("order %s: archive failed: %v", rec.OrderID, err)
	} else if genErr := a.pdf.GenerateSummary(archived, a.files.SummaryPath(rec.OrderID)); genErr != nil {
		log.Printf("order %s: summary pdf failed: %v", rec.OrderID, genErr)
	}

	c.JSON(http.StatusCreated, result)
}

func (a *API) handleListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, a.store.List())
}

func (a *API) handleGetOrder(c *gin.Context) {
	ord, err := a.store.Get(c.Param("id"))
	if err != nil {
		respondMessage(c, http.StatusNotFound, "order not found")
		return
	}
	c.JSON(http.StatusOK, ord)
}

func (a *API) handleShareOrder(c *gin.Context) {
	orderID := c.Param("id")
	ord, err := a.store.Get(orderID)
	if err != nil {
		respondMessage(c, http.StatusNotFound, "order not found")
		return
	}

	summaryPath := a.files.SummaryPath(orderID)
	if _, err := os.Stat(summaryPath); err != nil {
		if genErr := a.pdf.GenerateSummary(ord, summaryPath); genErr != nil {
			respondError(c, http.StatusInternalServerError, genErr)
			return
		}
	}

	url, expiresAt, err := a.share.Generate(orderID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "expiresAt": expiresAt.UTC()})
}

func (a *API) handleServeSummary(c *gin.Context) {
	orderID := c.Param("id")
	expiresParam := c.Query("exp")
	signature := c.Query("sig")

	if expiresParam == "" || signature == "" {
		respondMessage(c, http.StatusBadRequest, "missing signature")
		return
	}

	expires, err := strconv.ParseInt(expiresParam, 10, 64)
	if err != nil {
		respondMessage(c, http.StatusBadRequest, "invalid expiration")
		return
	}

	if expires < time.Now().Unix() {
		respondMessage(c, http.StatusGone, "link expired")
		return
	}

	if !a.share.Validate(c.Request.URL.Path, expires, signature) {
		respondMessage(c, http.StatusForbidden, "invalid signature")
		return
	}

	summaryPath := a.files.SummaryPath(orderID)
	if _, err := os.Stat(summaryPath); err != nil {
		respondMessage(c, http.StatusNotFound, "summary not found")
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.FileAttachment(summaryPath, orderID+".pdf")
}

func (a *API) buildPrintForm(p printPayload) *forms.PrintForm {
	form := forms.NewPrintForm()
	for _, f := range p.Files {
		form.AddFile(f.ref())
	}
	if p.PaperGrade != "" {
		form.SetPaperGrade(domain.PaperGrade(p.PaperGrade))
	}
	form.SetPages(int(p.BWPages), int(p.ColorPages))
	if p.Copies > 0 {
		form.SetCopies(int(p.Copies))
	}
	form.SetPaymentProof(p.PaymentProof)
	form.SetContact(p.Contact.info())
	form.SetInstructions(p.Instructions)
	return form
}

func (a *API) buildBindingForm(p printPayload) *forms.BindingForm {
	form := forms.NewBindingForm()
	for _, f := range p.Files {
		form.AddFile(f.ref())
	}
	if p.PaperGrade != "" {
		form.SetPaperGrade(domain.PaperGrade(p.PaperGrade))
	}
	form.SetPages(int(p.BWPages), int(p.ColorPages))
	if p.Copies > 0 {
		form.SetCopies(int(p.Copies))
	}
	if p.BindingStyle != "" {
		form.SetBindingStyle(domain.BindingStyle(p.BindingStyle))
	}
	if p.CoverPrint != "" {
		form.SetCoverPrint(domain.CoverPrint(p.CoverPrint))
	}
	form.SetPaymentProof(p.PaymentProof)
	form.SetContact(p.Contact.info())
	form.SetInstructions(p.Instructions)
	return form
}

func (a *API) buildPlagiarismForm(p plagiarismPayload) *forms.PlagiarismForm {
	form := forms.NewPlagiarismForm()
	for _, f := range p.Files {
		form.AddFile(f.ref())
	}
	form.SetSelection(p.Services)
	form.SetPaymentProof(p.PaymentProof)
	form.SetContact(p.Contact.info())
	form.SetInstructions(p.Instructions)
	return form
}

func respondError(c *gin.Context, status int, err error) {
	respondMessage(c, status, err.Error())
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
