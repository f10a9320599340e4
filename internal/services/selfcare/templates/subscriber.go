package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// SubscriberDetailsPage renders usage and call history for one subscriber.
func SubscriberDetailsPage(tr i18n.Translator, view SubscriberView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("a", tr.T("backToDashboard"), "href", routepath.Dashboard, "class", "back-link")
		h.element("h2", tr.T("subscriberDetailsHeading"))
		h.open("div", "class", "grid-container details-grid")

		h.open("div", "class", "card")
		h.component(ctx, subscriberSummary(tr, view))
		h.close("div")

		h.open("div", "class", "card")
		h.element("h4", tr.T("callHistoryHeading"))
		h.open("table", "class", "data-table")
		h.raw("<thead><tr>")
		h.element("th", tr.T("callDate"))
		h.element("th", tr.T("callTo"))
		h.element("th", tr.T("callDuration"))
		h.raw("</tr></thead><tbody>")
		if len(view.Calls) == 0 {
			h.raw("<tr>")
			h.element("td", tr.T("noCallHistory"), "colspan", "3")
			h.raw("</tr>")
		}
		for _, call := range view.Calls {
			h.raw("<tr>")
			h.element("td", call.Date)
			h.element("td", call.To)
			h.element("td", call.Duration)
			h.raw("</tr>")
		}
		h.raw("</tbody>")
		h.close("table")
		h.close("div")

		h.close("div")
		return h.err
	})
}
