package i18n

import (
	"bytes"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

var (
	markdownOnce   sync.Once
	markdown       goldmark.Markdown
	markdownPolicy *bluemonday.Policy
)

func initMarkdown() {
	markdownOnce.Do(func() {
		markdown = goldmark.New()
		markdownPolicy = bluemonday.UGCPolicy()
	})
}

// RenderMarkdown renders a translation string written in Markdown to
// sanitized HTML. Scripts, event handlers, and javascript: URLs are stripped,
// so translation files fetched from remote sources cannot inject markup into
// the page. On render failure the input is returned sanitized but otherwise
// unchanged.
func RenderMarkdown(s string) string {
	initMarkdown()

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(s), &buf); err != nil {
		return markdownPolicy.Sanitize(s)
	}
	return markdownPolicy.Sanitize(buf.String())
}
