// Package fixture models the read-only account document the selfcare pages
// render from, and the sources that load it.
package fixture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Document is the whole fixture: every user and the shop catalog.
type Document struct {
	Users    []User    `json:"users" validate:"dive"`
	Products []Product `json:"products" validate:"dive"`
}

// User is one account holder.
type User struct {
	Username       string       `json:"username" validate:"required"`
	Name           string       `json:"name"`
	Address        string       `json:"address"`
	ContactPrefs   ContactPrefs `json:"contact_prefs"`
	BillingHistory []Invoice    `json:"billing_history" validate:"dive"`
	Subscribers    []Subscriber `json:"subscribers" validate:"dive"`
}

// ContactPrefs holds the notification opt-ins shown on the profile page.
type ContactPrefs struct {
	Email bool `json:"email"`
	SMS   bool `json:"sms"`
}

// Subscriber is one line (phone, tablet, router) under a user.
type Subscriber struct {
	ID          SubscriberID `json:"id" validate:"required"`
	Name        string       `json:"name"`
	MSISDN      string       `json:"msisdn"`
	Plan        string       `json:"plan"`
	DataUsage   Usage        `json:"data_usage"`
	CallUsage   Usage        `json:"call_usage"`
	SMSUsage    Usage        `json:"sms_usage"`
	Products    []string     `json:"products"`
	CallHistory []CallRecord `json:"call_history"`
}

// Usage is consumption against an allowance.
type Usage struct {
	Used  float64 `json:"used"`
	Total float64 `json:"total"`
	Unit  string  `json:"unit"`
}

// Percent returns used*100/total. The value is not clamped, and a zero total
// yields NaN or ±Inf.
func (u Usage) Percent() float64 {
	return u.Used * 100 / u.Total
}

// Invoice is one billing history entry.
type Invoice struct {
	ID     string  `json:"id" validate:"required"`
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
	Status string  `json:"status"`
}

// CallRecord is one outgoing call. Duration is a display string.
type CallRecord struct {
	Date     string `json:"date"`
	To       string `json:"to"`
	Duration string `json:"duration"`
}

// Product is one shop catalog entry.
type Product struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

// FindUser returns the first user whose username equals username exactly.
func (d Document) FindUser(username string) (User, bool) {
	for _, user := range d.Users {
		if user.Username == username {
			return user, true
		}
	}
	return User{}, false
}

// FindSubscriber returns the first subscriber whose id loosely equals the
// stored selection.
func (u User) FindSubscriber(selected string) (Subscriber, bool) {
	for _, subscriber := range u.Subscribers {
		if subscriber.ID.LooseEquals(selected) {
			return subscriber, true
		}
	}
	return Subscriber{}, false
}

// SubscriberID is a subscriber identifier that the fixture may carry as either
// a JSON string or a JSON number.
type SubscriberID struct {
	raw     string
	numeric bool
}

// StringID builds a string-typed id.
func StringID(value string) SubscriberID {
	return SubscriberID{raw: value}
}

// NumericID builds a number-typed id.
func NumericID(value float64) SubscriberID {
	return SubscriberID{raw: FormatNumber(value), numeric: true}
}

// IsZero reports whether the id was never set.
func (id SubscriberID) IsZero() bool {
	return id.raw == "" && !id.numeric
}

// Numeric reports whether the fixture stored the id as a number.
func (id SubscriberID) Numeric() bool {
	return id.numeric
}

// String renders the id the way it is stored in the session selection.
func (id SubscriberID) String() string {
	if id.numeric {
		value, err := strconv.ParseFloat(id.raw, 64)
		if err == nil {
			return FormatNumber(value)
		}
	}
	return id.raw
}

// LooseEquals compares the id against a stored selection string. Numeric ids
// compare by numeric value after converting the selection, so "2" and " 2.0 "
// both match 2. String ids compare exactly.
func (id SubscriberID) LooseEquals(stored string) bool {
	if !id.numeric {
		return id.raw == stored
	}
	want, err := strconv.ParseFloat(id.raw, 64)
	if err != nil {
		return false
	}
	got := looseNumber(stored)
	return got == want
}

// UnmarshalJSON accepts a JSON string or number.
func (id *SubscriberID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = SubscriberID{}
		return nil
	}
	if data[0] == '"' {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return fmt.Errorf("subscriber id: %w", err)
		}
		*id = SubscriberID{raw: value}
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("subscriber id must be a string or number: %w", err)
	}
	*id = SubscriberID{raw: number.String(), numeric: true}
	return nil
}

// MarshalJSON writes the id back in its original JSON type.
func (id SubscriberID) MarshalJSON() ([]byte, error) {
	if id.numeric {
		return []byte(id.raw), nil
	}
	return json.Marshal(id.raw)
}

// looseNumber converts a selection string to a number the way a browser does
// for `==` against a number: surrounding space is ignored, an empty string is
// zero and anything unparseable is NaN.
func looseNumber(raw string) float64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0
	}
	switch trimmed {
	case "Infinity", "+Infinity":
		return math.Inf(1)
	case "-Infinity":
		return math.Inf(-1)
	}
	lower := strings.ToLower(trimmed)
	if strings.Contains(lower, "inf") || strings.Contains(lower, "nan") || strings.Contains(lower, "_") {
		return math.NaN()
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return math.NaN()
	}
	return value
}

// FormatNumber renders a number the way page copy and style widths expect:
// shortest round-trip digits, with NaN and Infinity spelled out. Magnitudes
// from 1e21 up and below 1e-6 switch to exponent form ("1e+21", "1.5e-7").
func FormatNumber(value float64) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	if value == 0 {
		return "0"
	}
	if abs := math.Abs(value); abs >= 1e21 || abs < 1e-6 {
		mantissa, exponent, _ := strings.Cut(strconv.FormatFloat(value, 'e', -1, 64), "e")
		power, err := strconv.Atoi(exponent)
		if err != nil {
			return mantissa + "e" + exponent
		}
		if power < 0 {
			return mantissa + "e-" + strconv.Itoa(-power)
		}
		return mantissa + "e+" + strconv.Itoa(power)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
