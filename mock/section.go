package mock

import "github.com/fwojciec/coursegen"

var (
	_ coursegen.SectionLocator = (*SectionLocator)(nil)
	_ coursegen.SectionLister  = (*SectionLister)(nil)
)

// SectionLocator is a mock implementation of coursegen.SectionLocator.
type SectionLocator struct {
	LocateFn func(doc []byte, tag, id string) (coursegen.Region, error)
}

func (l *SectionLocator) Locate(doc []byte, tag, id string) (coursegen.Region, error) {
	return l.LocateFn(doc, tag, id)
}

// SectionLister is a mock implementation of coursegen.SectionLister.
type SectionLister struct {
	ListSectionsFn func(doc []byte) ([]coursegen.Section, error)
}

func (l *SectionLister) ListSections(doc []byte) ([]coursegen.Section, error) {
	return l.ListSectionsFn(doc)
}
