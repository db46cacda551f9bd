package html

import (
	"bytes"
	"strings"

	"github.com/fwojciec/coursegen"
	"golang.org/x/net/html"
)

// Ensure SectionLocator implements coursegen.SectionLocator at compile time.
var _ coursegen.SectionLocator = (*SectionLocator)(nil)

// SectionLocator finds a section by walking the document's tokens and
// tracking byte offsets. Tags with the same name inside the section are
// counted, so the region ends at the section's own closing tag.
type SectionLocator struct{}

// NewSectionLocator creates a new SectionLocator.
func NewSectionLocator() *SectionLocator {
	return &SectionLocator{}
}

// Locate returns the region of the first tag element whose id is id.
func (l *SectionLocator) Locate(doc []byte, tag, id string) (coursegen.Region, error) {
	tag = strings.ToLower(tag)
	z := html.NewTokenizer(bytes.NewReader(doc))

	var (
		offset int
		start  = -1
		depth  int
	)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		pos := offset
		offset += len(z.Raw())

		if tt != html.StartTagToken && tt != html.EndTagToken {
			continue
		}
		name, hasAttr := z.TagName()
		if string(name) != tag {
			continue
		}

		switch {
		case tt == html.StartTagToken && start < 0:
			if hasAttr && hasID(z, id) {
				start = pos
				depth = 1
			}
		case tt == html.StartTagToken:
			depth++
		case start >= 0:
			depth--
			if depth == 0 {
				return coursegen.Region{Start: start, End: offset}, nil
			}
		}
	}

	if start < 0 {
		return coursegen.Region{}, coursegen.Errorf(coursegen.ENOTFOUND, "no <%s id=%q> found", tag, id)
	}
	return coursegen.Region{}, coursegen.Errorf(coursegen.EINVALID, "<%s id=%q> is never closed", tag, id)
}

func hasID(z *html.Tokenizer, id string) bool {
	for {
		key, val, more := z.TagAttr()
		if string(key) == "id" {
			return string(val) == id
		}
		if !more {
			return false
		}
	}
}
