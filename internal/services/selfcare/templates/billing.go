package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

// BillingPage renders the invoice history table. Download links are inert.
func BillingPage(tr i18n.Translator, invoices []InvoiceRow) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("h2", tr.T("billingHeading"))
		h.open("div", "class", "card")
		h.element("h4", tr.T("invoiceHistory"))
		h.open("table", "class", "data-table")
		h.raw("<thead><tr>")
		for _, key := range []string{"invoiceId", "invoiceDate", "invoiceAmount", "invoiceStatus", "invoiceAction"} {
			h.element("th", tr.T(key))
		}
		h.raw("</tr></thead><tbody>")
		if len(invoices) == 0 {
			h.raw("<tr>")
			h.element("td", tr.T("noBillingHistory"), "colspan", "5")
			h.raw("</tr>")
		}
		for _, invoice := range invoices {
			h.raw("<tr>")
			h.element("td", invoice.ID)
			h.element("td", invoice.Date)
			h.element("td", invoice.Amount)
			h.raw("<td>")
			h.element("span", invoice.StatusLabel(tr), "class", "status-badge "+invoice.StatusClass)
			h.raw("</td><td>")
			h.element("a", tr.T("download"), "href", "#", "class", "btn btn-small", "download", boolAttr)
			h.raw("</td></tr>")
		}
		h.raw("</tbody>")
		h.close("table")
		h.close("div")
		return h.err
	})
}
