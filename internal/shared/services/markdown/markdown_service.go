package markdown

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// MarkdownService renders admin-authored Markdown (the site banner) into
// HTML safe to serve to anonymous visitors.
type MarkdownService interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type markdownServiceImpl struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewMarkdownService() MarkdownService {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
		),
	)

	// The banner renders inline on the storefront, so the policy is the
	// strict UGC set with no extra allowances.
	return &markdownServiceImpl{
		md:     md,
		policy: bluemonday.UGCPolicy(),
	}
}

func (s *markdownServiceImpl) ToHTMLSanitized(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown to HTML: %w", err)
	}
	return s.policy.Sanitize(buf.String()), nil
}
