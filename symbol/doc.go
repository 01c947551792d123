package symbol

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrUnterminatedTag is returned when an inline tag has no closing brace
var ErrUnterminatedTag = errors.New("unterminated inline tag")

// TokenKind discriminates the documentation token variants
type TokenKind int

const (
	TokenText TokenKind = iota
	TokenLineBreak
	TokenInlineTag
)

// Token is a single element of a documentation stream
type Token struct {
	Kind TokenKind
	// Value holds the text of a TokenText
	Value string
	// Tag is set for TokenInlineTag
	Tag *Tag
}

// Tag is an inline Javadoc tag such as {@link Vertx#close()} or {@code x}
type Tag struct {
	Name  string
	Value string
	// Target and Label are split out of the value of link tags
	Target string
	Label  string
}

// IsLink reports whether the tag is a cross reference
func (t *Tag) IsLink() bool {
	return t.Name == "link" || t.Name == "linkplain"
}

// Doc is a parsed documentation comment
type Doc struct {
	Tokens []Token
}

// ParseDoc splits Javadoc text into text, line break and inline tag tokens.
// Braces nested inside a tag are balanced, so {@code {a}} is a single tag.
func ParseDoc(text string) (*Doc, error) {
	doc := &Doc{}
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			doc.Tokens = append(doc.Tokens, Token{Kind: TokenText, Value: current.String()})
			current.Reset()
		}
	}

	for pos := 0; pos < len(text); {
		switch {
		case text[pos] == '\n':
			flush()
			doc.Tokens = append(doc.Tokens, Token{Kind: TokenLineBreak})
			pos++
		case strings.HasPrefix(text[pos:], "{@"):
			end := closingBrace(text, pos)
			if end < 0 {
				return nil, errors.Wrapf(ErrUnterminatedTag, "at offset %d: %q", pos, text[pos:])
			}
			flush()
			doc.Tokens = append(doc.Tokens, Token{Kind: TokenInlineTag, Tag: parseTag(text[pos+2 : end])})
			pos = end + 1
		default:
			current.WriteByte(text[pos])
			pos++
		}
	}
	flush()

	return doc, nil
}

// closingBrace returns the index of the brace closing the tag opened at start,
// or -1 if the tag is never closed
func closingBrace(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func parseTag(body string) *Tag {
	name := body
	value := ""
	if idx := strings.IndexAny(body, " \t\n"); idx >= 0 {
		name, value = body[:idx], body[idx+1:]
	}
	tag := &Tag{Name: name, Value: value}
	if tag.IsLink() {
		tag.Target, tag.Label = splitLinkValue(strings.TrimSpace(value))
	}
	return tag
}

// splitLinkValue separates "Type#method(A, B) label" into its reference and
// label, keeping spaces inside the parameter list with the reference
func splitLinkValue(value string) (string, string) {
	depth := 0
	for i, ch := range value {
		switch ch {
		case '(':
			depth++
		case ')':
			depth--
		case ' ', '\t', '\n':
			if depth == 0 {
				return value[:i], strings.TrimSpace(value[i+1:])
			}
		}
	}
	return value, ""
}
