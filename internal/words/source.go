package words

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/hashicorp/go-cleanhttp"

	"wordle/pkg/logging"
)

//go:embed default_words.txt
var embedded embed.FS

const embeddedFile = "default_words.txt"

// BuiltinName selects the embedded list in NewSource.
const BuiltinName = "builtin"

// Source is a place a word list can be read from.
type Source interface {
	// Name identifies the source in logs and reports.
	Name() string
	// Open returns the raw list. The caller closes it.
	Open(ctx context.Context) (io.ReadCloser, error)
}

// NewSource picks a Source implementation for location: "" or "builtin" for the
// embedded list, an http(s) URL, or otherwise a local file path.
func NewSource(location string) Source {
	location = strings.TrimSpace(location)
	switch {
	case location == "" || location == BuiltinName:
		return EmbeddedSource{}
	case strings.HasPrefix(location, "http://"), strings.HasPrefix(location, "https://"):
		return NewHTTPSource(location)
	default:
		return FileSource{Path: location}
	}
}

// EmbeddedSource serves the list compiled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Name() string { return BuiltinName }

func (EmbeddedSource) Open(context.Context) (io.ReadCloser, error) {
	return embedded.Open(embeddedFile)
}

// FileSource reads a list from the local filesystem.
type FileSource struct {
	Path string
}

func (s FileSource) Name() string { return s.Path }

func (s FileSource) Open(ctx context.Context) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return os.Open(s.Path)
}

// HTTPSource downloads a list over HTTP.
type HTTPSource struct {
	URL    string
	Client *http.Client
}

// NewHTTPSource returns an HTTPSource using a pooled client without shared
// global state.
func NewHTTPSource(url string) HTTPSource {
	return HTTPSource{URL: url, Client: cleanhttp.DefaultPooledClient()}
}

func (s HTTPSource) Name() string { return s.URL }

func (s HTTPSource) Open(ctx context.Context) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "text/plain")

	client := s.Client
	if client == nil {
		client = cleanhttp.DefaultClient()
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

// Load opens src and parses it. Rejected lines are logged at debug level.
// ErrEmptyWordList is returned when nothing usable remains.
func Load(ctx context.Context, src Source) ([]string, error) {
	result, err := read(ctx, src)
	if err != nil {
		return nil, err
	}

	for _, rej := range result.Rejected {
		logging.Debug("Words", "%s:%d rejected %q: %s", src.Name(), rej.Line, rej.Text, rej.Reason)
	}
	if len(result.Words) == 0 {
		return nil, fmt.Errorf("%s: %w", src.Name(), ErrEmptyWordList)
	}

	logging.Info("Words", "Loaded %d words from %s", len(result.Words), src.Name())
	return result.Words, nil
}

func read(ctx context.Context, src Source) (ParseResult, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return ParseResult{}, fmt.Errorf("failed to open word list %s: %w", src.Name(), err)
	}
	defer rc.Close()

	result, err := Parse(rc)
	if err != nil {
		return ParseResult{}, fmt.Errorf("%s: %w", src.Name(), err)
	}
	return result, nil
}
