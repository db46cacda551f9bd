package mock

import (
	"io"

	"github.com/fwojciec/coursegen"
)

var _ coursegen.Tokenizer = (*Tokenizer)(nil)

// Tokenizer is a mock implementation of coursegen.Tokenizer.
type Tokenizer struct {
	TokenizeFn func(r io.Reader) ([]coursegen.Token, error)
}

func (t *Tokenizer) Tokenize(r io.Reader) ([]coursegen.Token, error) {
	return t.TokenizeFn(r)
}
