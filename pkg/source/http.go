package source

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/devzarghami/translate/pkg/i18n"
)

// maxDocumentSize caps remote translation documents at 10 MiB.
const maxDocumentSize = 10 << 20

// HTTPOption configures an HTTP source.
type HTTPOption func(*httpOptions)

type httpOptions struct {
	client  *http.Client
	headers http.Header
}

// WithHTTPClient sets the client used for fetches. Defaults to
// http.DefaultClient.
func WithHTTPClient(client *http.Client) HTTPOption {
	return func(o *httpOptions) {
		if client != nil {
			o.client = client
		}
	}
}

// WithHTTPHeader adds a request header, e.g. an Authorization token for a
// translation CDN.
func WithHTTPHeader(key, value string) HTTPOption {
	return func(o *httpOptions) {
		o.headers.Add(key, value)
	}
}

// HTTP fetches a translation document from a URL. The format is derived from
// the response Content-Type, falling back to the URL path extension, and
// finally to JSON.
func HTTP(rawURL string, opts ...HTTPOption) i18n.Source {
	o := &httpOptions{
		client:  http.DefaultClient,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(o)
	}

	return i18n.SourceFunc(func(ctx context.Context) (i18n.Tree, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("source: building request for %q: %w", rawURL, err)
		}
		for key, values := range o.headers {
			for _, v := range values {
				req.Header.Add(key, v)
			}
		}

		resp, err := o.client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("source: fetching %q: %w", rawURL, err)
		}
		defer resp.Body.Close() //nolint:errcheck

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%w: %d fetching %q", ErrUnexpectedStatus, resp.StatusCode, rawURL)
		}

		data, err := io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
		if err != nil {
			return nil, fmt.Errorf("source: reading %q: %w", rawURL, err)
		}

		return Decode(data, httpFormat(resp.Header.Get("Content-Type"), rawURL))
	})
}

func httpFormat(contentType, rawURL string) Format {
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		switch {
		case strings.Contains(mediaType, "json"):
			return FormatJSON
		case strings.Contains(mediaType, "yaml"):
			return FormatYAML
		}
	}

	if u, err := url.Parse(rawURL); err == nil {
		if format, err := formatForPath(u.Path); err == nil {
			return format
		}
	}

	return FormatJSON
}
