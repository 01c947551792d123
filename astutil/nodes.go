package astutil

import sitter "github.com/smacker/go-tree-sitter"

// NamedChildrenOf returns the named children of a node, in order
func NamedChildrenOf(node *sitter.Node) []*sitter.Node {
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		children = append(children, node.NamedChild(i))
	}
	return children
}

// FindNode recursively searches for the first node of a given type
func FindNode(node *sitter.Node, typeName string) *sitter.Node {
	if node.Type() == typeName {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if found := FindNode(node.Child(i), typeName); found != nil {
			return found
		}
	}
	return nil
}
