package astutil

import (
	"context"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// TypeNode is the syntactic form of a Java type signature, before any kind
// classification
type TypeNode struct {
	// Name as written: "int", "Handler", "io.vertx.core.Handler"
	Name string
	Args []*TypeNode
	// Wildcard is set for ? and bounded wildcards; Name then holds the bound
	Wildcard bool
	// Nullable is set by a @Nullable type annotation
	Nullable bool
}

// String renders the node back to Java syntax
func (n *TypeNode) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	args := make([]string, len(n.Args))
	for i, arg := range n.Args {
		args[i] = arg.String()
	}
	return n.Name + "<" + strings.Join(args, ",") + ">"
}

// The signature is parsed as the type argument of a synthetic field, which is
// the only position where wildcards and type annotations are both accepted
const (
	signaturePrefix = "class Signature { Holder<"
	signatureSuffix = "> field; }"
)

// ParseTypeSignature parses a Java type expression such as
// "Handler<AsyncResult<@Nullable String>>" into a TypeNode tree
func ParseTypeSignature(sig string) (*TypeNode, error) {
	if strings.TrimSpace(sig) == "" {
		return nil, errors.New("empty type signature")
	}
	if strings.TrimSpace(sig) == "void" {
		return &TypeNode{Name: "void"}, nil
	}
	source := []byte(signaturePrefix + sig + signatureSuffix)

	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing type signature %q", sig)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.Newf("malformed type signature %q", sig)
	}

	field := FindNode(root, "field_declaration")
	if field == nil {
		return nil, errors.Newf("malformed type signature %q", sig)
	}
	args := typeArguments(field.ChildByFieldName("type"))
	if len(args) != 1 {
		return nil, errors.Newf("type signature %q must contain exactly one type", sig)
	}
	return parseTypeNode(args[0], source)
}

func parseTypeNode(node *sitter.Node, source []byte) (*TypeNode, error) {
	switch node.Type() {
	case "integral_type", "floating_point_type", "boolean_type", "void_type",
		"type_identifier", "scoped_type_identifier":
		return &TypeNode{Name: compact(node.Content(source))}, nil
	case "generic_type":
		// A generic type is any type that is of the form GenericType<T>
		parsed := &TypeNode{Name: compact(node.NamedChild(0).Content(source))}
		for _, arg := range typeArguments(node) {
			child, err := parseTypeNode(arg, source)
			if err != nil {
				return nil, err
			}
			parsed.Args = append(parsed.Args, child)
		}
		return parsed, nil
	case "annotated_type":
		var nullable bool
		var inner *sitter.Node
		for _, child := range NamedChildrenOf(node) {
			switch child.Type() {
			case "marker_annotation", "annotation":
				if name := child.ChildByFieldName("name"); name != nil && strings.HasSuffix(name.Content(source), "Nullable") {
					nullable = true
				}
			default:
				inner = child
			}
		}
		if inner == nil {
			return nil, errors.Newf("annotation without type: %s", node.Content(source))
		}
		parsed, err := parseTypeNode(inner, source)
		if err != nil {
			return nil, err
		}
		parsed.Nullable = parsed.Nullable || nullable
		return parsed, nil
	case "wildcard":
		// Bounded wildcards (? extends T, ? super T) are represented by their bound
		var bound *sitter.Node
		for _, child := range NamedChildrenOf(node) {
			if child.Type() != "marker_annotation" && child.Type() != "annotation" {
				bound = child
			}
		}
		if bound == nil {
			return &TypeNode{Name: "?", Wildcard: true}, nil
		}
		parsed, err := parseTypeNode(bound, source)
		if err != nil {
			return nil, err
		}
		parsed.Wildcard = true
		return parsed, nil
	case "array_type":
		return nil, errors.Newf("array types are not part of the API model: %s", node.Content(source))
	}
	return nil, errors.Newf("unknown type node %s: %s", node.Type(), node.Content(source))
}

// typeArguments returns the argument nodes of a generic_type node
func typeArguments(node *sitter.Node) []*sitter.Node {
	if node == nil || node.Type() != "generic_type" {
		return nil
	}
	for _, child := range NamedChildrenOf(node) {
		if child.Type() == "type_arguments" {
			return NamedChildrenOf(child)
		}
	}
	return nil
}

// compact removes whitespace inside scoped names such as "io.vertx . core"
func compact(name string) string {
	return strings.Join(strings.Fields(name), "")
}
