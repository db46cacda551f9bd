package mock

import "github.com/fwojciec/coursegen"

var _ coursegen.Previewer = (*Previewer)(nil)

// Previewer is a mock implementation of coursegen.Previewer.
type Previewer struct {
	PreviewFn func(fragment string) (string, error)
}

func (p *Previewer) Preview(fragment string) (string, error) {
	return p.PreviewFn(fragment)
}
