// Package docs converts Javadoc comments into Scaladoc, rewriting the
// cross references to point at the generated Scala API.
package docs

import (
	"strings"

	"github.com/NickyBoy89/java2scala/symbol"
	"github.com/cockroachdb/errors"
)

// Rewriter renders documentation. Resolver is used to look up the targets of
// {@link} tags; without one every link falls back to its label.
type Rewriter struct {
	Resolver symbol.Resolver
}

// NewRewriter creates a rewriter resolving links through resolver
func NewRewriter(resolver symbol.Resolver) *Rewriter {
	return &Rewriter{Resolver: resolver}
}

// Render writes the tokens of doc, starting every line with margin.
// Paragraph markers and trailing line breaks are dropped.
func (r *Rewriter) Render(ct *symbol.ClassType, margin string, doc *symbol.Doc) string {
	var output strings.Builder

	atLineStart := true
	for _, token := range doc.Tokens {
		if atLineStart {
			output.WriteString(margin)
			atLineStart = false
		}

		switch token.Kind {
		case symbol.TokenLineBreak:
			output.WriteString("\n")
			atLineStart = true
		case symbol.TokenText:
			output.WriteString(token.Value)
		case symbol.TokenInlineTag:
			output.WriteString(r.renderTag(ct, token.Tag))
		}
	}

	return strings.TrimRight(strings.ReplaceAll(output.String(), "<p>", ""), "\n")
}

func (r *Rewriter) renderTag(ct *symbol.ClassType, tag *symbol.Tag) string {
	switch {
	case tag.IsLink():
		if link, ok := r.Link(ct, tag); ok && strings.TrimSpace(link) != "" {
			return link
		}
		return fallbackLabel(tag)
	case tag.Name == "code", tag.Name == "literal":
		return "`" + escapeCommentMarkers(strings.TrimSpace(tag.Value)) + "`"
	}
	return ""
}

// escapeCommentMarkers keeps code spans from opening or closing the
// Scaladoc comment they are written into. Closing markers go first so an
// overlapping "/*/" can not leave one behind.
func escapeCommentMarkers(code string) string {
	code = strings.ReplaceAll(code, "*/", `*\/`)
	return strings.ReplaceAll(code, "/*", `/\*`)
}

// inlineCode turns leftover inline code markers in tag descriptions into
// backticks
var inlineCode = strings.NewReplacer(
	"{@code ", "`",
	"{@literal", "`",
	"@literal{", "`",
	"@code{", "`",
	"}", "`",
)

// MethodDoc renders the Scaladoc comment of m, indented by indent. In future
// mode only a pointer to the callback variant is emitted. Methods without
// documentation get an empty comment.
func (r *Rewriter) MethodDoc(ct *symbol.ClassType, m *symbol.MethodInfo, indent string, future bool) (string, error) {
	if m.Doc == nil {
		return "", nil
	}

	commented := indent + " *"
	var doc strings.Builder
	doc.WriteString(indent + "/**\n")

	if future {
		doc.WriteString(commented + " Like " + m.Name + " from [[" + ct.Name() + "]] but returns a Scala Future instead of taking an AsyncResultHandler.\n")
		doc.WriteString(commented + "/")
		return doc.String(), nil
	}

	doc.WriteString(r.Render(ct, commented+" ", m.Doc) + "\n")
	for _, param := range m.Params {
		if param.Description == "" {
			continue
		}
		description, err := ConvertLinks(param.Description)
		if err != nil {
			return "", errors.Wrapf(err, "documentation of parameter %s of %s.%s", param.Name, ct.Name(), m.Name)
		}
		line := commented + " @param " + param.Name + " " + description
		if param.Type.DataObject {
			line += " see " + DataObjectLink(ct.Type, param.Type)
		}
		doc.WriteString(inlineCode.Replace(line) + "\n")
	}

	if !m.ReturnType.IsVoid() && m.ReturnDescription != "" {
		description, err := ConvertLinks(m.ReturnDescription)
		if err != nil {
			return "", errors.Wrapf(err, "documentation of the result of %s.%s", ct.Name(), m.Name)
		}
		line := commented + " @return " + description
		if m.ReturnType.DataObject {
			line += " see " + DataObjectLink(ct.Type, m.ReturnType)
		}
		doc.WriteString(inlineCode.Replace(line) + "\n")
	}

	doc.WriteString(commented + "/")
	return doc.String(), nil
}

// ClassDoc renders the comment placed above the implicit class of ct
func (r *Rewriter) ClassDoc(ct *symbol.ClassType) string {
	if ct.Doc == nil {
		return ""
	}
	return "  /**\n" + r.Render(ct, "    * ", ct.Doc) + "\n    */\n"
}

