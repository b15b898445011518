// Package templates renders the printable HTML for each document type from
// its presentation model. Templates are embedded so the binary is
// self-contained and output is deterministic for a given view.
package templates

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strconv"

	"tarapurtransport/views"
)

//go:embed *.html
var files embed.FS

// minInvoiceRows keeps the invoice goods table visually full even for a
// single-line consignment.
const minInvoiceRows = 10

var funcs = template.FuncMap{
	// money prints an amount with exactly two decimals.
	"money": func(v float64) string {
		return strconv.FormatFloat(v, 'f', 2, 64)
	},
	// padRows extends a goods table with nil filler rows up to min.
	"padRows": func(rows []views.InvoiceGoodsRow, min int) []*views.InvoiceGoodsRow {
		out := make([]*views.InvoiceGoodsRow, 0, max(len(rows), min))
		for i := range rows {
			out = append(out, &rows[i])
		}
		for len(out) < min {
			out = append(out, nil)
		}
		return out
	},
	// dataURI marks an embedded data: URL as safe for img src.
	"dataURI": func(s string) template.URL {
		return template.URL(s)
	},
}

var set = template.Must(template.New("documents").Funcs(funcs).ParseFS(files, "*.html"))

func render(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := set.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.String(), nil
}

// RenderInvoice produces the invoice HTML document.
func RenderInvoice(v views.InvoiceView) (string, error) {
	return render("invoice.html", v)
}

// RenderLorryReceipt produces the lorry receipt HTML document with one copy
// per title in v.CopyTitles.
func RenderLorryReceipt(v views.LorryReceiptView) (string, error) {
	return render("lorry_receipt.html", v)
}

// RenderQuotation produces the quotation HTML document.
func RenderQuotation(v views.QuotationView) (string, error) {
	return render("quotation.html", v)
}
