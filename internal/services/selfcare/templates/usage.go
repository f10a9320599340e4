package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

// subscriberSummary renders name, MSISDN, plan and the three usage bars.
func subscriberSummary(tr i18n.Translator, view SubscriberView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("h4", view.Name)
		h.raw("<p>")
		h.element("strong", tr.T("msisdnLabel")+":")
		h.text(" " + view.MSISDN)
		h.raw("</p><p>")
		h.element("strong", tr.T("planLabel")+":")
		h.text(" " + view.Plan)
		h.raw("</p>")
		h.open("div", "class", "usage-section")
		h.element("h5", tr.T("usageHeading"))
		for _, bar := range view.Usage {
			h.component(ctx, UsageMeter(tr, bar))
		}
		h.close("div")
		return h.err
	})
}

// UsageMeter renders one "{label}: used/total unit" line and its fill bar.
func UsageMeter(tr i18n.Translator, bar UsageBar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.open("div", "class", "usage-bar-container")
		h.element("span", tr.T("usageLine",
			i18n.R("label", tr.T(bar.LabelKey)),
			i18n.R("used", bar.Used),
			i18n.R("total", bar.Total),
			i18n.R("unit", bar.Unit),
		))
		h.open("div", "class", "usage-bar")
		h.open("div", "class", "usage-bar-fill", "style", "width: "+bar.Width+"%;")
		h.close("div")
		h.close("div")
		h.close("div")
		return h.err
	})
}
