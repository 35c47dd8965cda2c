// Package path implements the arena-backed namespace tree used to resolve
// names across hakos, modules, and the items they declare.
package path

// Index is an opaque, dense, monotonically-generated handle into a Tree.
// It is a thin integer newtype rather than a pointer, so construction
// order never has to match traversal order and the tree can never contain
// a reference cycle.
type Index uint32

// Generator hands out strictly increasing Indexes. An index is never
// reused, even if the node it names is later discarded.
type Generator struct {
	next Index
}

// NewGenerator returns a Generator starting at index 0.
func NewGenerator() *Generator {
	return &Generator{}
}

// Generate returns the next unused Index.
func (g *Generator) Generate() Index {
	index := g.next
	g.next++
	return index
}

// Kind classifies a path node. Struct, Enum, and Trait are placeholders;
// only Hako, Module, and Function carry behavior so far.
type Kind int

const (
	KindHako Kind = iota
	KindModule
	KindFunction
	KindStruct
	KindEnum
	KindTrait
)

func (k Kind) String() string {
	switch k {
	case KindHako:
		return "hako"
	case KindModule:
		return "module"
	case KindFunction:
		return "function"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindTrait:
		return "trait"
	default:
		return "unknown"
	}
}

// Node is one entry in the path tree: an identifier, its kind, an
// optional parent, and its children in source order. A Module node also
// carries the use-declarations recorded against it; every other kind
// leaves UseDeclarations nil.
type Node struct {
	ID              string
	Kind            Kind
	Parent          *Index
	Children        []Index
	UseDeclarations []Path
}

// Tree is the arena of Nodes. Hako nodes are additionally indexed in
// hakoIndexes so Find can start a lookup from the top-level namespace.
type Tree struct {
	hakoIndexes []Index
	nodes       map[Index]*Node
}

// NewTree returns an empty path tree.
func NewTree() *Tree {
	return &Tree{
		nodes: make(map[Index]*Node),
	}
}

// AddNode registers node at index (generating a fresh one from gen when
// index is nil) and returns the index used. Adding a Hako node that
// already has a parent is a programmer error: hako nodes are roots, and
// AddNode panics rather than record one as a child.
func (t *Tree) AddNode(gen *Generator, index *Index, node *Node) Index {
	var nodeIndex Index
	if index != nil {
		nodeIndex = *index
	} else {
		nodeIndex = gen.Generate()
	}

	if node.Kind == KindHako {
		if node.Parent != nil {
			panic("path: a hako node can't have a parent")
		}
		t.hakoIndexes = append(t.hakoIndexes, nodeIndex)
	}

	t.nodes[nodeIndex] = node
	return nodeIndex
}

// Get returns the node registered at index, or nil if there is none.
func (t *Tree) Get(index Index) *Node {
	return t.nodes[index]
}

// Find resolves a dotted path of identifier segments, starting the
// search among top-level hakos and descending through child lists
// segment by segment. It returns (index, node, true) on success, or
// (0, nil, false) if any segment fails to match, including when segments
// is empty.
func (t *Tree) Find(segments []string) (Index, *Node, bool) {
	if len(segments) == 0 {
		return 0, nil, false
	}

	index, node, ok := t.FindChild(t.hakoIndexes, segments[0])
	if !ok {
		return 0, nil, false
	}

	for _, segment := range segments[1:] {
		index, node, ok = t.FindChild(node.Children, segment)
		if !ok {
			return 0, nil, false
		}
	}

	return index, node, true
}

// FindChild returns the first index among candidates whose node has the
// given identifier.
func (t *Tree) FindChild(candidates []Index, segment string) (Index, *Node, bool) {
	for _, candidate := range candidates {
		node := t.Get(candidate)
		if node != nil && node.ID == segment {
			return candidate, node, true
		}
	}
	return 0, nil, false
}

// Path is either Resolved(index) or Unresolved(segments). Resolution
// replaces an Unresolved value with a Resolved one in place.
type Path struct {
	resolved bool
	index    Index
	segments []string
}

// Unresolved builds a Path awaiting resolution against a Tree.
func Unresolved(segments []string) Path {
	return Path{segments: segments}
}

// Resolved builds an already-resolved Path.
func Resolved(index Index) Path {
	return Path{resolved: true, index: index}
}

// IsResolved reports whether the path has been rewritten to an Index.
func (p Path) IsResolved() bool {
	return p.resolved
}

// Index returns the resolved index and true, or (0, false) if the path
// is still unresolved.
func (p Path) Index() (Index, bool) {
	if !p.resolved {
		return 0, false
	}
	return p.index, true
}

// Segments returns the unresolved segment list and true, or (nil, false)
// if the path has already been resolved.
func (p Path) Segments() ([]string, bool) {
	if p.resolved {
		return nil, false
	}
	return p.segments, true
}

// Resolve rewrites an unresolved path in place to Resolved(index).
func (p *Path) Resolve(index Index) {
	*p = Resolved(index)
}

// Equal reports whether p and other denote the same path. It lets
// github.com/google/go-cmp compare Path values without reaching into
// their unexported fields.
func (p Path) Equal(other Path) bool {
	if p.resolved != other.resolved {
		return false
	}
	if p.resolved {
		return p.index == other.index
	}
	if len(p.segments) != len(other.segments) {
		return false
	}
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	return true
}
