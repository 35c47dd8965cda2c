package path

import (
	"testing"
)

func TestTreeFind(t *testing.T) {
	tree := NewTree()
	gen := NewGenerator()

	hakoIndex := tree.AddNode(gen, nil, &Node{ID: "h", Kind: KindHako})
	moduleIndex := tree.AddNode(gen, nil, &Node{ID: "m", Kind: KindModule, Parent: &hakoIndex})
	tree.Get(hakoIndex).Children = append(tree.Get(hakoIndex).Children, moduleIndex)

	tests := []struct {
		name     string
		segments []string
		want     Index
		wantOk   bool
	}{
		{name: "hako only", segments: []string{"h"}, want: hakoIndex, wantOk: true},
		{name: "hako then module", segments: []string{"h", "m"}, want: moduleIndex, wantOk: true},
		{name: "unknown hako", segments: []string{"x"}, wantOk: false},
		{name: "unknown module", segments: []string{"h", "x"}, wantOk: false},
		{name: "empty segments", segments: []string{}, wantOk: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, _, ok := tree.Find(test.segments)
			if ok != test.wantOk {
				t.Fatalf("Find(%v) ok = %v, want %v", test.segments, ok, test.wantOk)
			}
			if ok && got != test.want {
				t.Fatalf("Find(%v) = %v, want %v", test.segments, got, test.want)
			}
		})
	}
}

func TestAddNodeRejectsParentedHako(t *testing.T) {
	tree := NewTree()
	gen := NewGenerator()
	parent := gen.Generate()

	defer func() {
		if recover() == nil {
			t.Fatal("expected AddNode to panic when a hako node has a parent")
		}
	}()

	tree.AddNode(gen, nil, &Node{ID: "h", Kind: KindHako, Parent: &parent})
}

func TestGeneratorNeverRepeats(t *testing.T) {
	gen := NewGenerator()
	seen := make(map[Index]bool)

	for i := 0; i < 1000; i++ {
		index := gen.Generate()
		if seen[index] {
			t.Fatalf("generator repeated index %v", index)
		}
		seen[index] = true
	}
}

func TestPathResolve(t *testing.T) {
	p := Unresolved([]string{"a", "b"})
	if p.IsResolved() {
		t.Fatal("freshly built unresolved path reports resolved")
	}

	p.Resolve(Index(7))

	if !p.IsResolved() {
		t.Fatal("path did not become resolved")
	}
	index, ok := p.Index()
	if !ok || index != 7 {
		t.Fatalf("Index() = (%v, %v), want (7, true)", index, ok)
	}
	if _, ok := p.Segments(); ok {
		t.Fatal("Segments() should report false once resolved")
	}
}
