package coursegen

import (
	"io"
	"strings"
)

// TokenKind identifies the kind of a markup Token.
type TokenKind int

// TokenKind constants.
const (
	StartTagToken TokenKind = iota + 1
	EndTagToken
	SelfClosingTagToken
	TextToken
)

// String returns a human-readable name for the kind.
func (k TokenKind) String() string {
	switch k {
	case StartTagToken:
		return "StartTag"
	case EndTagToken:
		return "EndTag"
	case SelfClosingTagToken:
		return "SelfClosingTag"
	case TextToken:
		return "Text"
	default:
		return "Unknown"
	}
}

// Attr is a single tag attribute.
type Attr struct {
	Key string
	Val string
}

// Token is one markup event in document order.
// Name is the lower-case tag name for tag tokens; Data is the decoded text
// for text tokens.
type Token struct {
	Kind  TokenKind
	Name  string
	Attrs []Attr
	Data  string
}

// StartTag returns a start tag token.
func StartTag(name string, attrs ...Attr) Token {
	return Token{Kind: StartTagToken, Name: name, Attrs: attrs}
}

// EndTag returns an end tag token.
func EndTag(name string) Token {
	return Token{Kind: EndTagToken, Name: name}
}

// SelfClosingTag returns a self-closing tag token.
func SelfClosingTag(name string, attrs ...Attr) Token {
	return Token{Kind: SelfClosingTagToken, Name: name, Attrs: attrs}
}

// Text returns a text token.
func Text(data string) Token {
	return Token{Kind: TextToken, Data: data}
}

// Attr returns the value of the named attribute and whether it is present.
func (t Token) Attr(key string) (string, bool) {
	for _, a := range t.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// HasClass reports whether the class attribute contains the given class
// token.
func (t Token) HasClass(class string) bool {
	v, ok := t.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Tokenizer splits a markup document into tokens.
type Tokenizer interface {
	// Tokenize reads the whole document and returns its tokens in
	// document order.
	Tokenize(r io.Reader) ([]Token, error)
}
