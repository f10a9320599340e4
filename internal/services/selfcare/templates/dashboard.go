package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// SubscriberIDField is the form field carrying the selected subscriber.
const SubscriberIDField = "subscriber_id"

// DashboardPage renders one clickable card per subscriber, in order.
func DashboardPage(tr i18n.Translator, subscribers []SubscriberView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("h2", tr.T("dashboardHeading"))
		h.open("div", "id", "subscribers-list", "class", "grid-container")
		for _, subscriber := range subscribers {
			h.component(ctx, subscriberCard(tr, subscriber))
		}
		h.close("div")
		return h.err
	})
}

func subscriberCard(tr i18n.Translator, view SubscriberView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("form", "method", "post", "action", routepath.SubscriberSelect, "class", "card clickable", "data-subscriber-id", view.ID)
		h.open("input", "type", "hidden", "name", SubscriberIDField, "value", view.ID)
		h.component(ctx, subscriberSummary(tr, view))
		h.open("div", "class", "products-section")
		h.element("h5", tr.T("productsHeading"))
		h.raw("<ul>")
		if len(view.Products) == 0 {
			h.element("li", tr.T("noProducts"))
		}
		for _, product := range view.Products {
			h.element("li", product)
		}
		h.raw("</ul>")
		h.close("div")
		h.element("button", tr.T("viewDetails"), "type", "submit", "class", "btn btn-small card-select")
		h.close("form")
		return h.err
	})
}
