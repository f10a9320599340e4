package templates

import (
	"math"
	"math/big"
	"strings"
	"unicode"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/fixture"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/langcookie"
	"github.com/haqatak/telcoco/internal/services/selfcare/routepath"
)

// UsageBar is one usage meter.
type UsageBar struct {
	LabelKey string
	Used     string
	Total    string
	Unit     string
	// Width is the fill width as a CSS percentage number, e.g. "30". It may
	// be "NaN" or "Infinity" when the allowance is zero.
	Width string
}

// CallRow is one call history row.
type CallRow struct {
	Date     string
	To       string
	Duration string
}

// SubscriberView is a subscriber card or detail page.
type SubscriberView struct {
	ID       string
	Name     string
	MSISDN   string
	Plan     string
	Usage    []UsageBar
	Products []string
	Calls    []CallRow
}

// InvoiceRow is one billing table row.
type InvoiceRow struct {
	ID          string
	Date        string
	Amount      string
	StatusClass string
	// StatusKey is the translation key of the status label; Status is the
	// fallback when the key has no translation.
	StatusKey string
	Status    string
}

// ProductCard is one shop catalog card.
type ProductCard struct {
	Name        string
	Description string
	Price       string
}

// ProfileView is the profile form.
type ProfileView struct {
	Name      string
	Username  string
	Address   string
	PrefEmail bool
	PrefSMS   bool
}

// HeaderView is the authenticated page chrome.
type HeaderView struct {
	UserName    string
	Active      routepath.Route
	CurrentPath string
	Languages   []langcookie.LanguageOption
}

// Notice is a one-shot alert banner.
type Notice struct {
	Kind    string
	Message string
}

// NewUsageBar builds a meter from fixture usage.
func NewUsageBar(labelKey string, usage fixture.Usage) UsageBar {
	return UsageBar{
		LabelKey: labelKey,
		Used:     fixture.FormatNumber(usage.Used),
		Total:    fixture.FormatNumber(usage.Total),
		Unit:     usage.Unit,
		Width:    fixture.FormatNumber(usage.Percent()),
	}
}

// NewSubscriberView builds a subscriber view in fixture order.
func NewSubscriberView(subscriber fixture.Subscriber) SubscriberView {
	view := SubscriberView{
		ID:     subscriber.ID.String(),
		Name:   subscriber.Name,
		MSISDN: subscriber.MSISDN,
		Plan:   subscriber.Plan,
		Usage: []UsageBar{
			NewUsageBar("dataUsage", subscriber.DataUsage),
			NewUsageBar("callUsage", subscriber.CallUsage),
			NewUsageBar("smsUsage", subscriber.SMSUsage),
		},
		Products: append([]string(nil), subscriber.Products...),
	}
	for _, call := range subscriber.CallHistory {
		view.Calls = append(view.Calls, CallRow{Date: call.Date, To: call.To, Duration: call.Duration})
	}
	return view
}

// NewSubscriberViews maps every subscriber of user.
func NewSubscriberViews(user fixture.User) []SubscriberView {
	out := make([]SubscriberView, 0, len(user.Subscribers))
	for _, subscriber := range user.Subscribers {
		out = append(out, NewSubscriberView(subscriber))
	}
	return out
}

// NewInvoiceRows maps a billing history.
func NewInvoiceRows(invoices []fixture.Invoice) []InvoiceRow {
	out := make([]InvoiceRow, 0, len(invoices))
	for _, invoice := range invoices {
		lower := strings.ToLower(invoice.Status)
		out = append(out, InvoiceRow{
			ID:          invoice.ID,
			Date:        invoice.Date,
			Amount:      "$" + money(invoice.Amount),
			StatusClass: "status-" + lower,
			StatusKey:   "status" + upperFirst(lower),
			Status:      invoice.Status,
		})
	}
	return out
}

// NewProductCards maps the shop catalog.
func NewProductCards(products []fixture.Product) []ProductCard {
	out := make([]ProductCard, 0, len(products))
	for _, product := range products {
		out = append(out, ProductCard{
			Name:        product.Name,
			Description: product.Description,
			Price:       money(product.Price),
		})
	}
	return out
}

// NewProfileView maps the profile form fields.
func NewProfileView(user fixture.User) ProfileView {
	return ProfileView{
		Name:      user.Name,
		Username:  user.Username,
		Address:   user.Address,
		PrefEmail: user.ContactPrefs.Email,
		PrefSMS:   user.ContactPrefs.SMS,
	}
}

// StatusLabel returns the localized status, or the raw status when the
// catalog has no entry for it.
func (row InvoiceRow) StatusLabel(tr i18n.Translator) string {
	if row.StatusKey == "" {
		return row.Status
	}
	if label := tr.T(row.StatusKey); label != row.StatusKey {
		return label
	}
	return row.Status
}

// money renders value with two decimals. Rounding works on the exact binary
// value and sends an exact half-cent tie away from zero, so 0.125 becomes
// "0.13" while 1.005 (stored just below the tie) stays "1.00".
func money(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || math.Abs(value) >= 1e21 {
		return fixture.FormatNumber(value)
	}
	exact := new(big.Rat).SetFloat64(value)
	exact.Abs(exact)
	exact.Mul(exact, big.NewRat(100, 1))

	cents, remainder := new(big.Int).QuoRem(exact.Num(), exact.Denom(), new(big.Int))
	if remainder.Lsh(remainder, 1).Cmp(exact.Denom()) >= 0 {
		cents.Add(cents, big.NewInt(1))
	}

	digits := cents.String()
	if len(digits) < 3 {
		digits = strings.Repeat("0", 3-len(digits)) + digits
	}
	out := digits[:len(digits)-2] + "." + digits[len(digits)-2:]
	if value < 0 {
		out = "-" + out
	}
	return out
}

func upperFirst(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
