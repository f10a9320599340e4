package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so component bodies can stay
// linear.
type htmlWriter struct {
	w   io.Writer
	err error
}

func newHTMLWriter(w io.Writer) *htmlWriter {
	return &htmlWriter{w: w}
}

func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// open writes a start tag. attrs alternate name, value; an empty name skips
// the pair and a value of boolAttr writes a bare attribute. An odd attrs list
// fails the render.
func (h *htmlWriter) open(tag string, attrs ...string) {
	if len(attrs)%2 != 0 && h.err == nil {
		h.err = fmt.Errorf("render <%s>: attribute %q has no value", tag, attrs[len(attrs)-1])
		return
	}
	h.raw("<" + tag)
	for i := 0; i < len(attrs); i += 2 {
		name, value := attrs[i], attrs[i+1]
		if name == "" {
			continue
		}
		if value == boolAttr {
			h.raw(" " + name)
			continue
		}
		h.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes a start tag, escaped text and the end tag.
func (h *htmlWriter) element(tag string, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

func (h *htmlWriter) component(ctx context.Context, c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(ctx, h.w)
}

const boolAttr = "\x00bool"

// when returns name when cond holds, else "" so open skips the pair.
func when(cond bool, name string) string {
	if cond {
		return name
	}
	return ""
}
