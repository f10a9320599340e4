// Package pagerender centralizes full-page rendering for selfcare modules.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/haqatak/telcoco/internal/platform/i18n"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/flash"
	"github.com/haqatak/telcoco/internal/services/selfcare/platform/httpx"
	"github.com/haqatak/telcoco/internal/services/selfcare/templates"
)

// Page describes one page response.
type Page struct {
	Title      string
	StatusCode int
	// Header is nil for pages rendered without the authenticated chrome.
	Header   *templates.HeaderView
	Notice   *templates.Notice
	Fragment templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page inside the shared document layout.
func WritePage(w http.ResponseWriter, r *http.Request, tr i18n.Translator, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)
	layout := templates.Layout(tr, templates.LayoutOptions{
		Title:  page.Title,
		Header: page.Header,
		Notice: page.Notice,
	})
	return layout.Render(templ.WithChildren(httpx.RequestContext(r), fragment), w)
}

// NoticeFromFlash renders a stored flash notice in the active language.
func NoticeFromFlash(tr i18n.Translator, notice flash.Notice, ok bool) *templates.Notice {
	if !ok {
		return nil
	}
	return &templates.Notice{Kind: string(notice.Kind), Message: tr.T(notice.Key)}
}
