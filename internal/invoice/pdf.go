package invoice

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
)

// Page geometry in millimeters. The slightly short page height matches the
// fixed-height pagination of the document this renderer replaces.
const (
	pageWidth  = 210
	pageHeight = 295
	margin     = 15
)

// Render rasterizes a laid-out document into a PDF written to w. Pagination
// across fixed-height pages is handled by the renderer's auto page break.
func (c *Composer) Render(doc *Document, w io.Writer) error {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: pageWidth, Ht: pageHeight},
	})
	defer pdf.Close()

	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(true, margin)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("cp1257")
	usable := float64(pageWidth - 2*margin)

	// Letterhead: optional logo, company name and contact lines.
	y := pdf.GetY()
	if doc.Company.LogoDataURI != "" {
		if err := drawLogo(pdf, doc.Company.LogoDataURI); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		pdf.SetXY(margin+40, y)
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(usable, 8, tr(doc.Company.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range companyLines(doc) {
		if doc.Company.LogoDataURI != "" {
			pdf.SetX(margin + 40)
		}
		pdf.CellFormat(usable, 4.5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Title, number and date.
	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(usable, 10, tr(doc.Labels.Title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(usable/2, 6, tr(doc.Labels.InvoiceNo+": "+doc.Number), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 6, tr(doc.Labels.Date+": "+doc.Date), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Bill-to block.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(usable, 6, tr(doc.Labels.BillTo), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range doc.BillTo {
		pdf.CellFormat(usable, 5, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(6)

	// Single line-item table.
	descW := usable * 0.5
	dateW := usable * 0.25
	amountW := usable * 0.25
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(descW, 7, tr(doc.Labels.Description), "1", 0, "L", true, 0, "")
	pdf.CellFormat(dateW, 7, tr(doc.Labels.ServiceDate), "1", 0, "C", true, 0, "")
	pdf.CellFormat(amountW, 7, tr(doc.Labels.Amount), "1", 1, "R", true, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(descW, 7, tr(doc.Item.Description), "1", 0, "L", false, 0, "")
	pdf.CellFormat(dateW, 7, doc.Item.ServiceDate, "1", 0, "C", false, 0, "")
	pdf.CellFormat(amountW, 7, formatAmount(doc.Item.Amount), "1", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Total line, right-aligned under the amount column.
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(descW+dateW, 7, tr(doc.Labels.Total), "", 0, "R", false, 0, "")
	pdf.CellFormat(amountW, 7, formatAmount(doc.Total), "T", 1, "R", false, 0, "")
	pdf.Ln(4)

	if doc.Notes != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(usable, 6, tr(doc.Labels.Notes), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(usable, 5, tr(doc.Notes), "", "L", false)
		pdf.Ln(4)
	}

	if doc.ShowBank {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(usable, 6, tr(doc.Labels.BankDetails), "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		if doc.Company.BankName != "" {
			pdf.CellFormat(usable, 5, tr(doc.Company.BankName), "", 1, "L", false, 0, "")
		}
		if doc.Company.BankAccount != "" {
			pdf.CellFormat(usable, 5, tr(doc.Labels.BankAccount+": "+doc.Company.BankAccount), "", 1, "L", false, 0, "")
		}
		if doc.Company.BankCode != "" {
			pdf.CellFormat(usable, 5, tr(doc.Labels.BankCode+": "+doc.Company.BankCode), "", 1, "L", false, 0, "")
		}
		pdf.Ln(4)
	}

	if doc.PaymentDue != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(usable, 6, tr(doc.Labels.PaymentDue+": "+doc.PaymentDue), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 11)
	pdf.CellFormat(usable, 8, tr(doc.ThankYou), "", 1, "C", false, 0, "")

	if pdf.Err() {
		return fmt.Errorf("render: %w", pdf.Error())
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Generate runs the full pipeline and writes the invoice into dir under its
// download filename. The output goes through a temporary file which is
// removed on every failure path.
func (c *Composer) Generate(req Request, dir string) (string, error) {
	doc, err := c.Compose(req)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(dir, ".invoice-*.pdf")
	if err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	tmpName := tmp.Name()

	if err := c.Render(doc, tmp); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write: %w", err)
	}

	final := filepath.Join(dir, c.Filename(req.Client.Name))
	if err := os.Rename(tmpName, final); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("write: %w", err)
	}
	return final, nil
}

// drawLogo decodes a data-URI image and places it at the top left corner.
func drawLogo(pdf *fpdf.Fpdf, dataURI string) error {
	imgType, data, err := decodeDataURI(dataURI)
	if err != nil {
		return fmt.Errorf("logo: %w", err)
	}
	opts := fpdf.ImageOptions{ImageType: imgType, ReadDpi: true}
	pdf.RegisterImageOptionsReader("company-logo", opts, bytes.NewReader(data))
	pdf.ImageOptions("company-logo", margin, margin, 32, 0, false, opts, 0, "")
	return nil
}

// decodeDataURI splits a base64 image data URI into its renderer image type
// and raw bytes.
func decodeDataURI(uri string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, fmt.Errorf("not a data URI")
	}
	meta, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, fmt.Errorf("missing base64 payload")
	}
	var imgType string
	switch meta {
	case "image/png":
		imgType = "PNG"
	case "image/jpeg", "image/jpg":
		imgType = "JPG"
	case "image/gif":
		imgType = "GIF"
	default:
		return "", nil, fmt.Errorf("unsupported image type %q", meta)
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("decode image: %w", err)
	}
	return imgType, data, nil
}

// companyLines returns the letterhead contact lines under the company name,
// skipping fields that are not configured.
func companyLines(doc *Document) []string {
	var lines []string
	for _, s := range []string{doc.Company.Address, doc.Company.Phone, doc.Company.Email, doc.Company.Website} {
		if s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f EUR", v)
}
