// Package invoice assembles and renders downloadable PDF invoices from a
// client, one of its jobs and the company letterhead settings.
//
// Generation is a staged pipeline: validate -> layout -> render -> write.
// Every stage failure is wrapped with the stage name, and any temporary
// file created for the output is removed on all failure paths.
package invoice

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/aurimasv/vitrina/internal/models"
)

// Language selects the invoice label set.
type Language string

const (
	LangEnglish    Language = "en"
	LangLithuanian Language = "lt"
)

var (
	// ErrNoJobSelected is returned when the request carries no job id.
	ErrNoJobSelected = errors.New("no job selected")

	// ErrJobNotFound is returned when the job id does not belong to the
	// client's job list.
	ErrJobNotFound = errors.New("selected job does not belong to the client")
)

// labels is the fixed translation table of an invoice. Any language other
// than the two supported ones falls back to English.
type labels struct {
	Title       string
	InvoiceNo   string
	Date        string
	BillTo      string
	Description string
	ServiceDate string
	Amount      string
	Notes       string
	Total       string
	BankDetails string
	BankAccount string
	BankCode    string
	PaymentDue  string
	ThankYou    string
}

var translations = map[Language]labels{
	LangEnglish: {
		Title:       "INVOICE",
		InvoiceNo:   "Invoice #",
		Date:        "Date",
		BillTo:      "BILL TO",
		Description: "Description",
		ServiceDate: "Service date",
		Amount:      "Amount",
		Notes:       "Notes",
		Total:       "TOTAL",
		BankDetails: "Bank details",
		BankAccount: "Account",
		BankCode:    "Bank code",
		PaymentDue:  "Payment due",
		ThankYou:    "Thank you for your business!",
	},
	LangLithuanian: {
		Title:       "SĄSKAITA FAKTŪRA",
		InvoiceNo:   "Sąskaitos Nr.",
		Date:        "Data",
		BillTo:      "PIRKĖJAS",
		Description: "Aprašymas",
		ServiceDate: "Paslaugos data",
		Amount:      "Suma",
		Notes:       "Pastabos",
		Total:       "IŠ VISO",
		BankDetails: "Banko rekvizitai",
		BankAccount: "Sąskaitos numeris",
		BankCode:    "Banko kodas",
		PaymentDue:  "Apmokėti iki",
		ThankYou:    "Ačiū už Jūsų užsakymą!",
	},
}

func labelsFor(lang Language) labels {
	if l, ok := translations[lang]; ok {
		return l
	}
	return translations[LangEnglish]
}

// Request carries everything needed to produce one invoice.
type Request struct {
	Client      models.Client
	JobID       string
	Description string
	Notes       string
	PaymentDue  string
	Lang        Language
	Settings    models.CompanySettings
}

// LineItem is the single service row of the invoice table.
type LineItem struct {
	Description string
	ServiceDate string
	Amount      float64
}

// Document is a fully laid-out invoice, independent of the renderer.
type Document struct {
	Number     string
	Date       string
	Labels     labels
	Company    models.CompanySettings
	BillTo     []string
	Item       LineItem
	Notes      string
	Total      float64
	ShowBank   bool
	PaymentDue string
	ThankYou   string
}

// Composer builds invoice documents. The clock is injectable because invoice
// numbers are derived from it; note they carry no uniqueness guarantee below
// millisecond resolution.
type Composer struct {
	now func() time.Time
}

// NewComposer returns a composer using the given clock, or time.Now when nil.
func NewComposer(now func() time.Time) *Composer {
	if now == nil {
		now = time.Now
	}
	return &Composer{now: now}
}

// Compose validates the request and lays out the document. It fails before
// any rendering work when the job selection is missing or wrong.
func (c *Composer) Compose(req Request) (*Document, error) {
	job, err := selectJob(req.Client, req.JobID)
	if err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}

	now := c.now()
	l := labelsFor(req.Lang)

	desc := req.Description
	if desc == "" {
		desc = req.Settings.DefaultService
	}

	doc := &Document{
		Number:  "INV-" + strconv.FormatInt(now.UnixMilli(), 10),
		Date:    now.Format("02/01/2006"),
		Labels:  l,
		Company: req.Settings,
		BillTo:  billToLines(req.Client),
		Item: LineItem{
			Description: desc,
			ServiceDate: job.Date.Format("02/01/2006"),
			Amount:      job.Price,
		},
		Notes:      req.Notes,
		Total:      job.Price,
		ShowBank:   req.Settings.BankName != "" || req.Settings.BankAccount != "",
		PaymentDue: req.PaymentDue,
		ThankYou:   l.ThankYou,
	}
	return doc, nil
}

// Filename is the download name for an invoice of the given client: spaces in
// the client name become dashes, suffixed with the composer's current unix
// millisecond timestamp.
func (c *Composer) Filename(clientName string) string {
	name := strings.Join(strings.Fields(clientName), "-")
	return fmt.Sprintf("invoice-%s-%d.pdf", name, c.now().UnixMilli())
}

func selectJob(client models.Client, jobID string) (*models.Job, error) {
	if jobID == "" {
		return nil, ErrNoJobSelected
	}
	for i := range client.Jobs {
		if client.Jobs[i].ID == jobID {
			return &client.Jobs[i], nil
		}
	}
	return nil, ErrJobNotFound
}

func billToLines(client models.Client) []string {
	lines := []string{client.Name}
	for _, s := range []string{client.Address, client.Phone, client.Email} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}
