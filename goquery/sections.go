// Package goquery inspects host documents with CSS selectors.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/coursegen"
)

// Ensure SectionLister implements coursegen.SectionLister at compile time.
var _ coursegen.SectionLister = (*SectionLister)(nil)

// SectionLister lists section elements that carry an id.
type SectionLister struct{}

// NewSectionLister creates a new SectionLister.
func NewSectionLister() *SectionLister {
	return &SectionLister{}
}

// ListSections returns the identified sections in document order. The
// title is the text of the section's first heading, if any.
func (l *SectionLister) ListSections(doc []byte) ([]coursegen.Section, error) {
	d, err := goquery.NewDocumentFromReader(bytes.NewReader(doc))
	if err != nil {
		return nil, coursegen.Errorf(coursegen.EINVALID, "failed to parse HTML: %v", err)
	}

	var sections []coursegen.Section
	d.Find("section[id]").Each(func(_ int, sel *goquery.Selection) {
		id, _ := sel.Attr("id")
		if strings.TrimSpace(id) == "" {
			return
		}
		title := sel.Find("h1, h2, h3, h4, h5, h6").First().Text()
		sections = append(sections, coursegen.Section{
			ID:    id,
			Title: strings.Join(strings.Fields(title), " "),
		})
	})
	return sections, nil
}
