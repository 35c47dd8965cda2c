package cst

import (
	"encoding/json"
	"fmt"
)

// jsonElement is the on-disk shape of a cst.Element: a discriminated
// union with "leaf" or "node" as its Kind. No upstream grammar compiler
// lives in this module, so a CLI driver needs some way to hand it a
// concrete syntax tree from disk; this is that fixture format.
type jsonElement struct {
	Kind     string        `json:"kind"`
	Value    string        `json:"value,omitempty"`
	Name     string        `json:"name,omitempty"`
	Row      int           `json:"row,omitempty"`
	Col      int           `json:"col,omitempty"`
	Children []jsonElement `json:"children,omitempty"`
}

func (je jsonElement) build() (Element, error) {
	switch je.Kind {
	case "leaf":
		return &Leaf{Value: je.Value, Pos: Position{Row: je.Row, Col: je.Col}}, nil
	case "node":
		children := make(ChildList, len(je.Children))
		for i, c := range je.Children {
			built, err := c.build()
			if err != nil {
				return nil, err
			}
			children[i] = built
		}
		return &Node{Name: je.Name, Pos: Position{Row: je.Row, Col: je.Col}, Children: children}, nil
	default:
		return nil, fmt.Errorf("cst: unknown element kind %q", je.Kind)
	}
}

func elementToJSON(el Element) jsonElement {
	switch e := el.(type) {
	case *Leaf:
		return jsonElement{Kind: "leaf", Value: e.Value, Row: e.Pos.Row, Col: e.Pos.Col}
	case *Node:
		children := make([]jsonElement, len(e.Children))
		for i, c := range e.Children {
			children[i] = elementToJSON(c)
		}
		return jsonElement{Kind: "node", Name: e.Name, Row: e.Pos.Row, Col: e.Pos.Col, Children: children}
	default:
		panic("cst: unknown element type in elementToJSON")
	}
}

// UnmarshalJSON decodes a node fixture produced in the jsonElement shape.
func (n *Node) UnmarshalJSON(data []byte) error {
	var je jsonElement
	if err := json.Unmarshal(data, &je); err != nil {
		return err
	}

	built, err := je.build()
	if err != nil {
		return err
	}

	node, ok := built.(*Node)
	if !ok {
		return fmt.Errorf("cst: expected a node, got a leaf")
	}

	*n = *node
	return nil
}

// MarshalJSON renders a node in the jsonElement shape, the inverse of
// UnmarshalJSON.
func (n Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(elementToJSON(&n))
}
