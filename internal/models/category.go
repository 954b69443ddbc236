package models

// CategoryNode is a node of the category tree. Leaves are assignable
// categories, interior nodes are group headers.
type CategoryNode struct {
	ID       string         `json:"id"`
	Name     LocalizedText  `json:"name"`
	Children []CategoryNode `json:"children,omitempty"`
}

// IsLeaf reports whether the node has no children
func (n CategoryNode) IsLeaf() bool {
	return len(n.Children) == 0
}

// CategoryEntry is a flattened category tree node
type CategoryEntry struct {
	ID   string        `json:"id"`
	Name LocalizedText `json:"name"`
}

// Region is a game server region with its own price API host
type Region struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	Endpoint string `json:"endpoint"`
}
