// Package html adapts golang.org/x/net/html to the coursegen token model.
package html

import (
	"errors"
	"io"

	"github.com/fwojciec/coursegen"
	"golang.org/x/net/html"
)

// voidElements never have content or a closing tag, so they are reported
// as self-closing even when written without a trailing slash.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// Ensure Tokenizer implements coursegen.Tokenizer at compile time.
var _ coursegen.Tokenizer = (*Tokenizer)(nil)

// Tokenizer splits HTML into coursegen tokens using the x/net/html
// tokenizer. Comments and doctypes are skipped and character references in
// text are decoded.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize reads the whole document and returns its tokens in order.
func (t *Tokenizer) Tokenize(r io.Reader) ([]coursegen.Token, error) {
	z := html.NewTokenizer(r)

	var tokens []coursegen.Token
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return nil, coursegen.Errorf(coursegen.EINTERNAL, "reading markup: %v", err)
			}
			return tokens, nil
		}

		tok := z.Token()
		switch tt {
		case html.TextToken:
			tokens = append(tokens, coursegen.Text(tok.Data))
		case html.StartTagToken:
			if voidElements[tok.Data] {
				tokens = append(tokens, coursegen.SelfClosingTag(tok.Data, convertAttrs(tok.Attr)...))
			} else {
				tokens = append(tokens, coursegen.StartTag(tok.Data, convertAttrs(tok.Attr)...))
			}
		case html.SelfClosingTagToken:
			tokens = append(tokens, coursegen.SelfClosingTag(tok.Data, convertAttrs(tok.Attr)...))
		case html.EndTagToken:
			tokens = append(tokens, coursegen.EndTag(tok.Data))
		}
	}
}

func convertAttrs(attrs []html.Attribute) []coursegen.Attr {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]coursegen.Attr, len(attrs))
	for i, a := range attrs {
		out[i] = coursegen.Attr{Key: a.Key, Val: a.Val}
	}
	return out
}
