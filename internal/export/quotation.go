package export

import (
	"fmt"
	"strings"
	"time"

	"sales-portal/internal/core"

	"github.com/shopspring/decimal"
)

// Quotation is a per-customer quote built from the customer's live
// reservations. Line totals and the grand total are computed here; the
// renderers below only format.
type Quotation struct {
	CustomerName string
	Date         time.Time
	Lines        []QuotationLine
	GrandTotal   decimal.Decimal
}

// QuotationLine is one quoted reservation with its extended total.
type QuotationLine struct {
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// BuildQuotation computes a quotation for one customer group. Each line total
// is quantity × unit price; the grand total is the sum of the line totals.
func BuildQuotation(group core.CustomerReservations, date time.Time) Quotation {
	q := Quotation{CustomerName: group.CustomerName, Date: date}
	for _, line := range group.Lines {
		total := line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		q.Lines = append(q.Lines, QuotationLine{
			ProductName: line.ProductName,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			LineTotal:   total,
		})
		q.GrandTotal = q.GrandTotal.Add(total)
	}
	return q
}

// FileName returns the quotation's export file name, spaces replaced so the
// customer name stays a single path segment.
func (q Quotation) FileName(ext string) string {
	return fmt.Sprintf("Quotation-%s.%s", strings.ReplaceAll(q.CustomerName, " ", "_"), ext)
}

// RenderHTML renders the quotation as a printable HTML document.
func RenderHTML(q Quotation) string {
	var b strings.Builder
	b.WriteString("<html><head><meta charset=\"utf-8\"><style>")
	b.WriteString("body{font-family:sans-serif;margin:24px;}h1{font-size:22px;margin-bottom:4px;}table{width:100%;border-collapse:collapse;margin-top:16px;}th,td{border:1px solid #ddd;padding:6px;text-align:right;}th{background:#f5f5f5;}td.name,th.name{text-align:left;}p.total{font-size:16px;font-weight:bold;margin-top:16px;}")
	b.WriteString("</style></head><body>")
	b.WriteString("<h1>Quotation</h1>")
	b.WriteString("<p>Sales Portal Pro</p>")
	b.WriteString(fmt.Sprintf("<p>For: %s</p>", htmlEscape(q.CustomerName)))
	b.WriteString(fmt.Sprintf("<p>Date: %s</p>", q.Date.Format("2006-01-02")))

	b.WriteString("<table><thead><tr><th class=\"name\">Product</th><th>Quantity</th><th>Unit Price</th><th>Total</th></tr></thead><tbody>")
	for _, line := range q.Lines {
		b.WriteString("<tr><td class=\"name\">")
		b.WriteString(htmlEscape(line.ProductName))
		b.WriteString("</td><td>")
		b.WriteString(fmt.Sprintf("%d", line.Quantity))
		b.WriteString("</td><td>$")
		b.WriteString(line.UnitPrice.StringFixed(2))
		b.WriteString("</td><td>$")
		b.WriteString(line.LineTotal.StringFixed(2))
		b.WriteString("</td></tr>")
	}
	b.WriteString("</tbody></table>")

	b.WriteString(fmt.Sprintf("<p class=\"total\">Grand Total: $%s</p>", q.GrandTotal.StringFixed(2)))
	b.WriteString("</body></html>")
	return b.String()
}

func htmlEscape(v string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"\"", "&quot;",
		"'", "&#39;",
	)
	return replacer.Replace(v)
}
