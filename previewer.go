package coursegen

// Previewer renders a regenerated section fragment as Markdown so it can be
// reviewed in a terminal before the host document is rewritten.
type Previewer interface {
	// Preview converts the fragment to Markdown.
	// Returns EINVALID for an empty fragment.
	Preview(fragment string) (string, error)
}
