package fixture

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedSourceLoadsUsersInOrder(t *testing.T) {
	t.Parallel()

	doc, err := EmbeddedSource{}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	user, ok := doc.FindUser("john.doe")
	if !ok {
		t.Fatal("expected john.doe in embedded fixture")
	}
	if got := len(user.Subscribers); got != 3 {
		t.Fatalf("subscribers = %d, want 3", got)
	}
	if got := user.Subscribers[0].ID.String(); got != "1" {
		t.Fatalf("first subscriber id = %q, want %q", got, "1")
	}
	if got := user.Subscribers[2].ID.String(); got != "sub-3" {
		t.Fatalf("third subscriber id = %q, want %q", got, "sub-3")
	}
	if len(doc.Products) == 0 {
		t.Fatal("expected products in embedded fixture")
	}
}

func TestFindUserRequiresExactUsername(t *testing.T) {
	t.Parallel()

	doc := Document{Users: []User{{Username: "ann", Name: "First"}, {Username: "ann", Name: "Second"}}}
	user, ok := doc.FindUser("ann")
	if !ok || user.Name != "First" {
		t.Fatalf("FindUser(ann) = %+v, %v; want first match", user, ok)
	}
	if _, ok := doc.FindUser("alice"); ok {
		t.Fatal("expected alice to be missing")
	}
	if _, ok := doc.FindUser("ANN"); ok {
		t.Fatal("expected case-sensitive match")
	}
}

func TestSubscriberIDLooseEquality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		id     SubscriberID
		stored string
		want   bool
	}{
		{name: "numeric matches string", id: NumericID(2), stored: "2", want: true},
		{name: "numeric matches padded", id: NumericID(2), stored: " 2.0 ", want: true},
		{name: "numeric rejects other", id: NumericID(2), stored: "3", want: false},
		{name: "numeric rejects text", id: NumericID(2), stored: "two", want: false},
		{name: "zero matches empty", id: NumericID(0), stored: "", want: true},
		{name: "string exact", id: StringID("sub-3"), stored: "sub-3", want: true},
		{name: "string no trim", id: StringID("sub-3"), stored: " sub-3", want: false},
		{name: "string two is not numeric", id: StringID("2"), stored: "2.0", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.id.LooseEquals(tc.stored); got != tc.want {
				t.Fatalf("LooseEquals(%q) = %v, want %v", tc.stored, got, tc.want)
			}
		})
	}
}

func TestSubscriberIDUnmarshalAcceptsStringAndNumber(t *testing.T) {
	t.Parallel()

	var ids []SubscriberID
	if err := json.Unmarshal([]byte(`[2, "2", 2.5]`), &ids); err != nil {
		t.Fatalf("unmarshal ids: %v", err)
	}
	if !ids[0].Numeric() || ids[1].Numeric() || !ids[2].Numeric() {
		t.Fatalf("numeric flags = %v %v %v, want true false true", ids[0].Numeric(), ids[1].Numeric(), ids[2].Numeric())
	}
	if got := ids[2].String(); got != "2.5" {
		t.Fatalf("String() = %q, want %q", got, "2.5")
	}
	var bad SubscriberID
	if err := json.Unmarshal([]byte(`{"id":1}`), &bad); err == nil {
		t.Fatal("expected object id to be rejected")
	}
}

func TestSubscriberIDMarshalKeepsType(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal([]SubscriberID{NumericID(7), StringID("7")})
	if err != nil {
		t.Fatalf("marshal ids: %v", err)
	}
	if got := string(data); got != `[7,"7"]` {
		t.Fatalf("marshal = %s, want %s", got, `[7,"7"]`)
	}
}

func TestFindSubscriberUsesLooseEquality(t *testing.T) {
	t.Parallel()

	user := User{Subscribers: []Subscriber{
		{ID: NumericID(1), Name: "one"},
		{ID: NumericID(2), Name: "two"},
	}}
	subscriber, ok := user.FindSubscriber("2")
	if !ok || subscriber.Name != "two" {
		t.Fatalf("FindSubscriber(2) = %+v, %v; want two", subscriber, ok)
	}
	if _, ok := user.FindSubscriber("9"); ok {
		t.Fatal("expected unresolved subscriber")
	}
}

func TestUsagePercent(t *testing.T) {
	t.Parallel()

	if got := (Usage{Used: 3, Total: 10}).Percent(); got != 30 {
		t.Fatalf("Percent() = %v, want 30", got)
	}
	if got := (Usage{Used: 15, Total: 10}).Percent(); got != 150 {
		t.Fatalf("Percent() = %v, want unclamped 150", got)
	}
	if got := (Usage{Used: 3, Total: 0}).Percent(); !math.IsInf(got, 1) {
		t.Fatalf("Percent() = %v, want +Inf", got)
	}
	if got := (Usage{Used: 0, Total: 0}).Percent(); !math.IsNaN(got) {
		t.Fatalf("Percent() = %v, want NaN", got)
	}
}

func TestFormatNumber(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		30:                                   "30",
		12.5:                                 "12.5",
		0:                                    "0",
		math.NaN():                           "NaN",
		math.Inf(1):                          "Infinity",
		(Usage{Used: 1, Total: 3}).Percent(): "33.333333333333336",
		1e21:                                 "1e+21",
		1.5e22:                               "1.5e+22",
		999999999999999900000:                "999999999999999900000",
		0.000001:                             "0.000001",
		1.5e-7:                               "1.5e-7",
		-2.5e-8:                              "-2.5e-8",
	}
	for value, want := range tests {
		if got := FormatNumber(value); got != want {
			t.Fatalf("FormatNumber(%v) = %q, want %q", value, got, want)
		}
	}
}

func TestDecodeRejectsInvalidDocuments(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed":         `{"users":`,
		"missing username":  `{"users":[{"name":"x"}]}`,
		"missing sub id":    `{"users":[{"username":"a","subscribers":[{"name":"s"}]}]}`,
		"negative price":    `{"products":[{"name":"p","price":-1}]}`,
		"missing invoice":   `{"users":[{"username":"a","billing_history":[{"amount":1}]}]}`,
		"object subscriber": `{"users":[{"username":"a","subscribers":[{"id":{}}]}]}`,
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Decode(strings.NewReader(doc)); err == nil {
				t.Fatalf("Decode(%s) expected error", doc)
			}
		})
	}
}

func TestValidateReportsFieldPath(t *testing.T) {
	t.Parallel()

	err := Validate(Document{Users: []User{{}}})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "username(required)") {
		t.Fatalf("error = %q, want username field", err)
	}
}

func TestFileSourceLoadsDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(`{"users":[{"username":"ann","subscribers":[{"id":"a"}]}],"products":[]}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	doc, err := FileSource{Path: path}.Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if _, ok := doc.FindUser("ann"); !ok {
		t.Fatal("expected ann")
	}
	if _, err := (FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}).Load(context.Background()); err == nil {
		t.Fatal("expected missing file error")
	}
}

func TestHTTPSourceLoadsDocument(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/data/mock_data.json" {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(`{"users":[{"username":"ann"}],"products":[{"name":"p","price":1}]}`))
	}))
	t.Cleanup(srv.Close)

	doc, err := NewHTTPSource(srv.URL + "/data/mock_data.json").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got := len(doc.Products); got != 1 {
		t.Fatalf("products = %d, want 1", got)
	}

	_, err = NewHTTPSource(srv.URL + "/missing.json").Load(context.Background())
	if err == nil || !strings.Contains(err.Error(), "unexpected status 404") {
		t.Fatalf("Load() error = %v, want status error", err)
	}
}

func TestTracedSourcePassesThrough(t *testing.T) {
	t.Parallel()

	want := Document{Users: []User{{Username: "ann"}}}
	doc, err := Traced(Static{Document: want}).Load(context.Background())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Users) != 1 || doc.Users[0].Username != "ann" {
		t.Fatalf("Load() = %+v, want ann", doc)
	}
	if got := Describe(Traced(FileSource{Path: "x.json"})); got != "file:x.json" {
		t.Fatalf("Describe() = %q, want %q", got, "file:x.json")
	}

	failing := Traced(Static{Err: os.ErrNotExist})
	if _, err := failing.Load(context.Background()); err != os.ErrNotExist {
		t.Fatalf("Load() error = %v, want %v", err, os.ErrNotExist)
	}
}
