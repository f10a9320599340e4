package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
)

// ShopPage renders the product grid. "Add to plan" does nothing.
func ShopPage(tr i18n.Translator, products []ProductCard) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(w)
		h.element("h2", tr.T("shopHeading"))
		h.element("p", tr.T("shopIntro"))
		h.open("div", "id", "product-list", "class", "grid-container")
		for _, product := range products {
			h.open("div", "class", "card product-card")
			h.element("h4", product.Name)
			h.element("p", product.Description)
			h.element("div", tr.T("pricePerMonth", i18n.R("price", product.Price)), "class", "product-price")
			h.element("button", tr.T("addToPlan"), "type", "button", "class", "btn")
			h.close("div")
		}
		h.close("div")
		return h.err
	})
}
