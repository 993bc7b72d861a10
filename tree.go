package parsec

// NameHint is a diagnostic/tree-labeling hint attached to a parser via
// Name() or PrimaryName(). Primary is set only by PrimaryName and is not
// consulted anywhere in this package (spec.md §3's "structured record with
// at least {name, primary?}").
type NameHint struct {
	Label   string
	Primary bool
}

// ParseNode is one entry in the tree produced when tree mode is enabled.
// Nodes are opened at parser entry and closed on success, at which point
// they are appended to their parent (SPEC_FULL.md §4.4). Only Seq (Seq2..Seq9,
// SeqAll), Check and Name/PrimaryName create nodes; every other combinator
// is tree-transparent and simply
// forwards the currently open node to its children — wrap a sub-parser in
// Name to make it visible in the tree.
type ParseNode struct {
	Name     *NameHint
	Result   any
	Start    int
	End      int
	Children []*ParseNode
}

// IsNamed reports whether n carries a Name.
func (n *ParseNode) IsNamed() bool {
	return n != nil && n.Name != nil
}

// NodeForPosition returns the path of nodes (root-to-innermost) whose span
// contains pos. When namedOnly is true, only named nodes appear in the
// returned path, though traversal still descends through unnamed nodes to
// reach named descendants.
func NodeForPosition(root *ParseNode, pos int, namedOnly bool) []*ParseNode {
	if root == nil || pos < root.Start || pos > root.End {
		return nil
	}
	var path []*ParseNode
	var walk func(n *ParseNode)
	walk = func(n *ParseNode) {
		if !namedOnly || n.IsNamed() {
			path = append(path, n)
		}
		for _, c := range n.Children {
			if pos >= c.Start && pos <= c.End {
				walk(c)
				break
			}
		}
	}
	walk(root)
	return path
}

// withNode wraps fn so that, in tree mode, it opens a new ParseNode at pos,
// runs fn with that node as the target for any children fn's own
// sub-parsers create, and on success sets the node's span/result and
// appends it to out. In non-tree mode (out == nil) this is a no-op wrapper.
func withNode[T any](name *NameHint, fn ParseFunc[T]) ParseFunc[T] {
	return func(ctx *Context, input string, pos int, out *ParseNode) (T, int, bool) {
		if out == nil {
			return fn(ctx, input, pos, nil)
		}
		node := &ParseNode{Name: name, Start: pos}
		v, np, ok := fn(ctx, input, pos, node)
		if !ok {
			return v, np, false
		}
		node.End = np
		node.Result = v
		out.Children = append(out.Children, node)
		return v, np, true
	}
}
