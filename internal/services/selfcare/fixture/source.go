package fixture

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/haqatak/telcoco/internal/platform/timeouts"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/haqatak/telcoco/internal/services/selfcare/fixture"

// maxDocumentBytes caps how much of a remote fixture is read.
const maxDocumentBytes = 8 << 20

//go:embed data/mock_data.json
var embeddedFS embed.FS

// Source loads the fixture document. Pages call Load once per request.
type Source interface {
	Load(ctx context.Context) (Document, error)
}

// Describer is implemented by sources that can name where they read from.
type Describer interface {
	Describe() string
}

// Describe names a source for logs.
func Describe(source Source) string {
	if source == nil {
		return "none"
	}
	if describer, ok := source.(Describer); ok {
		return describer.Describe()
	}
	return fmt.Sprintf("%T", source)
}

// EmbeddedSource serves the fixture compiled into the binary.
type EmbeddedSource struct{}

// Load decodes the embedded fixture.
func (EmbeddedSource) Load(context.Context) (Document, error) {
	data, err := embeddedFS.ReadFile("data/mock_data.json")
	if err != nil {
		return Document{}, fmt.Errorf("read embedded fixture: %w", err)
	}
	return Decode(bytes.NewReader(data))
}

// Describe names the embedded source.
func (EmbeddedSource) Describe() string {
	return "embedded"
}

// FileSource re-reads a fixture file on every load so edits show up on the
// next page view.
type FileSource struct {
	Path string
}

// Load reads and decodes the configured file.
func (s FileSource) Load(ctx context.Context) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	path := strings.TrimSpace(s.Path)
	if path == "" {
		return Document{}, errors.New("fixture path is required")
	}
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("open fixture %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// Describe names the file source.
func (s FileSource) Describe() string {
	return "file:" + s.Path
}

// HTTPSource fetches the fixture from a URL.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource builds an HTTP source with the default fetch timeout.
func NewHTTPSource(url string) HTTPSource {
	return HTTPSource{
		URL:    strings.TrimSpace(url),
		Client: &http.Client{Timeout: timeouts.FixtureFetch},
	}
}

// Load fetches and decodes the document.
func (s HTTPSource) Load(ctx context.Context) (Document, error) {
	if strings.TrimSpace(s.URL) == "" {
		return Document{}, errors.New("fixture url is required")
	}
	client := s.Client
	if client == nil {
		client = &http.Client{Timeout: timeouts.FixtureFetch}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return Document{}, fmt.Errorf("build fixture request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return Document{}, fmt.Errorf("fetch fixture: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Document{}, fmt.Errorf("fetch fixture: unexpected status %d", resp.StatusCode)
	}
	return Decode(io.LimitReader(resp.Body, maxDocumentBytes))
}

// Describe names the HTTP source.
func (s HTTPSource) Describe() string {
	return "http:" + s.URL
}

// Traced wraps a source so every load records a span.
func Traced(source Source) Source {
	if source == nil {
		return nil
	}
	return tracedSource{next: source}
}

type tracedSource struct {
	next Source
}

func (s tracedSource) Load(ctx context.Context) (Document, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "fixture.Load")
	defer span.End()
	span.SetAttributes(attribute.String("fixture.source", Describe(s.next)))

	doc, err := s.next.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fixture load failed")
		return Document{}, err
	}
	span.SetAttributes(
		attribute.Int("fixture.users", len(doc.Users)),
		attribute.Int("fixture.products", len(doc.Products)),
	)
	return doc, nil
}

func (s tracedSource) Describe() string {
	return Describe(s.next)
}

// Static serves a fixed document. Tests and tools use it to skip decoding.
type Static struct {
	Document Document
	Err      error
}

// Load returns the configured document or error.
func (s Static) Load(context.Context) (Document, error) {
	if s.Err != nil {
		return Document{}, s.Err
	}
	return s.Document, nil
}

// Describe names the static source.
func (Static) Describe() string {
	return "static"
}
