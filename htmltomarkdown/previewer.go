// Package htmltomarkdown renders section fragments as Markdown.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/coursegen"
)

// Ensure Previewer implements coursegen.Previewer at compile time.
var _ coursegen.Previewer = (*Previewer)(nil)

// groupComment matches the single-word comments that group schedule rows,
// such as <!-- January -->.
var groupComment = regexp.MustCompile(`<!--\s*([A-Za-z]+)\s*-->`)

// Previewer wraps html-to-markdown to preview fragments. Group comments
// are shown as third-level headings since Markdown drops HTML comments.
type Previewer struct {
	conv *converter.Converter
}

// NewPreviewer creates a new Previewer.
func NewPreviewer() *Previewer {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(
				commonmark.WithHeadingStyle(commonmark.HeadingStyleATX),
				commonmark.WithListEndComment(false),
			),
			table.NewTablePlugin(),
		),
	)
	return &Previewer{conv: conv}
}

// Preview converts the fragment to Markdown ending in a single newline.
func (p *Previewer) Preview(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", coursegen.Errorf(coursegen.EINVALID, "empty fragment")
	}

	md, err := p.conv.ConvertString(groupComment.ReplaceAllString(fragment, "<h3>$1</h3>"))
	if err != nil {
		return "", coursegen.Errorf(coursegen.EINTERNAL, "converting to Markdown: %v", err)
	}
	return strings.TrimSpace(md) + "\n", nil
}
