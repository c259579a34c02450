package feedback

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
)

var (
	markdown        = goldmark.New()
	sanitizerPolicy = bluemonday.UGCPolicy()
)

// renderComment converts a markdown comment to sanitized HTML
func renderComment(comment string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(comment), &buf); err != nil {
		return "", errors.WithStack(err)
	}

	return template.HTML(sanitizerPolicy.SanitizeBytes(buf.Bytes())), nil
}
