package pctree

import (
	"fmt"
	"strconv"
	"strings"

	pcerrors "github.com/matzehuels/pctree/pkg/errors"
)

// ParseOption configures [Parse].
type ParseOption func(*parser)

// WithKeepIDs makes Parse reuse the integers embedded in the text as
// node indices, instead of assigning fresh ones and discarding them.
func WithKeepIDs() ParseOption {
	return func(p *parser) { p.keepIDs = true }
}

// Parse builds a Tree from the canonical string grammar:
//
//	leaf             := integer
//	cnode            := integer ':' '[' nodelist ']'
//	pnode            := integer ':' '(' nodelist ')'
//	root_leaf_wrapper := integer ':' '{' (cnode | pnode) '}'
//	nodelist         := node (',' node)*
//
// Whitespace is ignored between tokens. root_leaf_wrapper is accepted
// only as the entire input; its own leading integer is discarded and
// the wrapped node becomes the tree's root (see DESIGN.md for why this
// form, otherwise underspecified by the grammar, is resolved this way).
//
// Parse rejects a root left at degree 2: invariant 2 only requires every
// non-root inner node to have at least 2 children, but invariant 3
// forbids the root itself from being a P-node or C-node of degree 2
// (that shape is always collapsed before the tree is handed back to a
// caller, so it can never legitimately appear in input).
func Parse(text string, opts ...ParseOption) (*Tree, error) {
	p := &parser{runes: []rune(text), t: newTree()}
	for _, opt := range opts {
		opt(p)
	}

	root, err := p.parseNode(nil)
	if err != nil {
		p.t = nil
		return nil, err
	}
	p.skipWS()
	if p.pos != len(p.runes) {
		return nil, pcerrors.New(pcerrors.ErrCodeInvalidInput, "pctree: unexpected trailing input at position %d", p.pos)
	}
	p.t.root = root

	if root.kind != Leaf && len(root.children) == 2 {
		return nil, pcerrors.New(pcerrors.ErrCodeInvalidInput, "pctree: root node %d has degree 2, which is never valid for a P-node or C-node root", root.idx)
	}
	return p.t, nil
}

type parser struct {
	runes   []rune
	pos     int
	keepIDs bool
	t       *Tree
}

func (p *parser) skipWS() {
	for p.pos < len(p.runes) && (p.runes[p.pos] == ' ' || p.runes[p.pos] == '\t' || p.runes[p.pos] == '\n' || p.runes[p.pos] == '\r') {
		p.pos++
	}
}

func (p *parser) errorf(format string, args ...any) error {
	return pcerrors.New(pcerrors.ErrCodeInvalidInput, "pctree: invalid tree at position %d: %s", p.pos, fmt.Sprintf(format, args...))
}

func (p *parser) expect(r rune) error {
	p.skipWS()
	if p.pos >= len(p.runes) || p.runes[p.pos] != r {
		return p.errorf("expected %q", r)
	}
	p.pos++
	return nil
}

func (p *parser) readInt() (int, error) {
	p.skipWS()
	start := p.pos
	for p.pos < len(p.runes) && (p.runes[p.pos] >= '0' && p.runes[p.pos] <= '9') {
		p.pos++
	}
	if p.pos == start {
		return 0, p.errorf("expected an integer")
	}
	n, err := strconv.Atoi(string(p.runes[start:p.pos]))
	if err != nil {
		return 0, p.errorf("malformed integer: %v", err)
	}
	return n, nil
}

// parseNode parses one node production and, if parent is non-nil,
// attaches it as parent's next outer child.
func (p *parser) parseNode(parent *node) (*node, error) {
	id, err := p.readInt()
	if err != nil {
		return nil, err
	}
	p.skipWS()

	if p.pos >= len(p.runes) || p.runes[p.pos] != ':' {
		// leaf
		leaf := p.t.newNode(Leaf, parent, p.nodeID(id))
		leaf.leafPos = len(p.t.leaves)
		p.t.leaves = append(p.t.leaves, leaf)
		return leaf, nil
	}
	p.pos++ // consume ':'
	p.skipWS()
	if p.pos >= len(p.runes) {
		return nil, p.errorf("expected '[', '(', or '{' after ':'")
	}

	switch p.runes[p.pos] {
	case '[':
		p.pos++
		n := p.t.newNode(CNode, parent, p.nodeID(id))
		if err := p.parseNodelist(n); err != nil {
			return nil, err
		}
		if err := p.expect(']'); err != nil {
			return nil, err
		}
		return n, nil
	case '(':
		p.pos++
		n := p.t.newNode(PNode, parent, p.nodeID(id))
		if err := p.parseNodelist(n); err != nil {
			return nil, err
		}
		if err := p.expect(')'); err != nil {
			return nil, err
		}
		return n, nil
	case '{':
		if parent != nil {
			return nil, p.errorf("root_leaf_wrapper is only valid as the entire input")
		}
		p.pos++
		inner, err := p.parseNode(nil)
		if err != nil {
			return nil, err
		}
		if inner.kind == Leaf {
			return nil, p.errorf("root_leaf_wrapper must wrap a P-node or C-node")
		}
		if err := p.expect('}'); err != nil {
			return nil, err
		}
		return inner, nil
	default:
		return nil, p.errorf("expected '[', '(', or '{' after ':'")
	}
}

func (p *parser) parseNodelist(n *node) error {
	if _, err := p.parseNode(n); err != nil {
		return err
	}
	for {
		p.skipWS()
		if p.pos >= len(p.runes) || p.runes[p.pos] != ',' {
			return nil
		}
		p.pos++
		if _, err := p.parseNode(n); err != nil {
			return err
		}
	}
}

func (p *parser) nodeID(parsed int) int {
	if p.keepIDs {
		return parsed
	}
	return -1
}

// String serializes the tree using the grammar [Parse] accepts, with
// each node's own index as its leading integer. Unlike [Tree.UniqueID],
// this is not canonicalized: it reflects the tree's current allocation
// and child order exactly, so two admissibility-equivalent trees built
// differently will not necessarily produce equal strings.
//
// If the tree was constructed with [WithNodeIDFunc], the generated
// external id is shown in place of the integer index; the result is then
// a display string, not necessarily grammar-conformant input for [Parse].
func (t *Tree) String() string {
	var b strings.Builder
	if t.root != nil {
		t.writeNode(&b, t.root)
	}
	return b.String()
}

func (t *Tree) writeNode(b *strings.Builder, n *node) {
	id := t.ExternalID(n.idx)
	if id == "" {
		id = fmt.Sprintf("%d", n.idx)
	}
	if n.kind == Leaf {
		b.WriteString(id)
		return
	}
	open, closeCh := "(", ")"
	if n.kind == CNode {
		open, closeCh = "[", "]"
	}
	fmt.Fprintf(b, "%s:%s", id, open)
	for i, c := range n.children {
		if i > 0 {
			b.WriteByte(',')
		}
		t.writeNode(b, c)
	}
	b.WriteString(closeCh)
}
