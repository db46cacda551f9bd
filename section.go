package coursegen

// Region is the byte range [Start, End) of a host document covering a
// section's opening tag through its matching closing tag.
type Region struct {
	Start int
	End   int
}

// Section describes an identified section of a host document.
type Section struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// SectionLocator finds a section inside a host document.
type SectionLocator interface {
	// Locate returns the region of the first tag element with the given id,
	// up to its properly nested closing tag.
	// Returns ENOTFOUND if no such element exists and EINVALID if it is
	// never closed.
	Locate(doc []byte, tag, id string) (Region, error)
}

// SectionLister lists the identified sections of a host document.
type SectionLister interface {
	ListSections(doc []byte) ([]Section, error)
}

// Splice returns a copy of doc with the region replaced by fragment.
// Bytes before and after the region are kept unchanged.
func Splice(doc []byte, r Region, fragment string) []byte {
	out := make([]byte, 0, len(doc)-(r.End-r.Start)+len(fragment))
	out = append(out, doc[:r.Start]...)
	out = append(out, fragment...)
	out = append(out, doc[r.End:]...)
	return out
}
