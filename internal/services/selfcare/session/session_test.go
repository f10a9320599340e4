package session

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/haqatak/telcoco/internal/services/selfcare/platform/requestmeta"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/sessioncookie"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewMemoryStore()
	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get(missing) error = %v, want ErrNotFound", err)
	}
	if err := store.Put(ctx, "", State{}); err == nil {
		t.Fatal("expected blank id error")
	}
	want := State{LoggedInUser: "john.doe", SelectedSubscriberID: "2"}
	if err := store.Put(ctx, "s1", want); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != want {
		t.Fatalf("Get() = %+v, want %+v", got, want)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
}

func TestManagerRoundTrip(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)

	anon := httptest.NewRequest(http.MethodGet, "/dashboard.html", nil)
	if _, ok, err := manager.LoggedInUser(anon); err != nil || ok {
		t.Fatalf("LoggedInUser(anon) = %v, %v; want none", ok, err)
	}

	login := httptest.NewRequest(http.MethodPost, "/index.html", nil)
	rr := httptest.NewRecorder()
	if err := manager.SetLoggedInUser(rr, login, "john.doe"); err != nil {
		t.Fatalf("SetLoggedInUser() error = %v", err)
	}
	cookie := sessionCookie(t, rr)

	next := httptest.NewRequest(http.MethodPost, "/subscribers/select", nil)
	next.AddCookie(cookie)
	rr = httptest.NewRecorder()
	if err := manager.SetSelectedSubscriberID(rr, next, "2"); err != nil {
		t.Fatalf("SetSelectedSubscriberID() error = %v", err)
	}
	if got := rr.Header().Get("Set-Cookie"); got != "" {
		t.Fatalf("unexpected cookie rewrite %q", got)
	}

	page := httptest.NewRequest(http.MethodGet, "/subscriber_details.html", nil)
	page.AddCookie(cookie)
	user, ok, err := manager.LoggedInUser(page)
	if err != nil || !ok || user != "john.doe" {
		t.Fatalf("LoggedInUser() = %q, %v, %v; want john.doe", user, ok, err)
	}
	selected, ok, err := manager.SelectedSubscriberID(page)
	if err != nil || !ok || selected != "2" {
		t.Fatalf("SelectedSubscriberID() = %q, %v, %v; want 2", selected, ok, err)
	}

	rr = httptest.NewRecorder()
	if err := manager.Clear(rr, page); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Len() != 0 {
		t.Fatalf("store Len() = %d, want 0 after clear", store.Len())
	}
	if cleared := sessionCookie(t, rr); cleared.MaxAge >= 0 {
		t.Fatalf("cleared cookie MaxAge = %d, want negative", cleared.MaxAge)
	}
	if _, ok, _ := manager.LoggedInUser(page); ok {
		t.Fatal("expected cleared session to have no user")
	}
}

func TestAbandonedSessionsStayUntilLogout(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)
	var cookies []*http.Cookie
	for _, user := range []string{"john.doe", "jane.doe", "john.doe"} {
		rr := httptest.NewRecorder()
		if err := manager.SetLoggedInUser(rr, httptest.NewRequest(http.MethodPost, "/index.html", nil), user); err != nil {
			t.Fatalf("SetLoggedInUser(%s) error = %v", user, err)
		}
		cookies = append(cookies, sessionCookie(t, rr))
	}
	if store.Len() != 3 {
		t.Fatalf("store Len() = %d, want one entry per login", store.Len())
	}

	logout := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logout.AddCookie(cookies[1])
	if err := manager.Clear(httptest.NewRecorder(), logout); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Len() != 2 {
		t.Fatalf("store Len() = %d, want abandoned sessions kept", store.Len())
	}
	first := httptest.NewRequest(http.MethodGet, "/dashboard.html", nil)
	first.AddCookie(cookies[0])
	if user, ok, err := manager.LoggedInUser(first); err != nil || !ok || user != "john.doe" {
		t.Fatalf("LoggedInUser(first) = %q, %v, %v; want john.doe", user, ok, err)
	}
}

func TestManagerIgnoresForgedCookie(t *testing.T) {
	t.Parallel()

	manager, store := newTestManager(t)
	if err := store.Put(context.Background(), "8a3c1f3e-5f59-4b7e-9d6a-0d35c8f6a111", State{LoggedInUser: "john.doe"}); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/dashboard.html", nil)
	req.AddCookie(&http.Cookie{Name: sessioncookie.Name, Value: "8a3c1f3e-5f59-4b7e-9d6a-0d35c8f6a111"})
	if _, ok, err := manager.LoggedInUser(req); err != nil || ok {
		t.Fatalf("LoggedInUser(forged) = %v, %v; want none", ok, err)
	}
	if !manager.HasCookie(req) {
		t.Fatal("expected HasCookie to report the raw cookie")
	}
}

func TestNewManagerRequiresStore(t *testing.T) {
	t.Parallel()

	if _, err := NewManager(nil, sessioncookie.Codec{}, requestmeta.SchemePolicy{}); err == nil {
		t.Fatal("expected missing store error")
	}
}

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()
	codec, err := sessioncookie.NewCodec([]byte(strings.Repeat("s", 32)))
	if err != nil {
		t.Fatalf("NewCodec() error = %v", err)
	}
	store := NewMemoryStore()
	manager, err := NewManager(store, codec, requestmeta.SchemePolicy{})
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}
	return manager, store
}

func sessionCookie(t *testing.T, rr *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == sessioncookie.Name {
			return cookie
		}
	}
	t.Fatalf("missing %s cookie in %v", sessioncookie.Name, rr.Header().Values("Set-Cookie"))
	return nil
}
