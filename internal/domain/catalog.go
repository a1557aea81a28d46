package domain

import "slices"

// Component is one catalog entry extracted from a content page.
type Component struct {
	ID     string // e.g. "AC201"
	Code   string // category code, e.g. "AC"
	Suffix int    // numeric suffix, e.g. 201
	Name   string // short display name
	Title  string // page title, falls back to Name
	Path   string // content path relative to the catalog root
	URL    string // published page URL, empty unless a base URL is configured
}

// Category aggregates every component sharing one category code.
type Category struct {
	Code         string
	Title        string   // human label from the category table
	Known        bool     // false for codes seen in content but absent from the table
	Floor        int      // first suffix handed out when nothing is used
	Members      []string // component IDs ascending by suffix
	NextID       string   // empty when no free suffix remains
	NextByFamily []FamilyNext
}

// FamilyNext pairs a family key with its next free ID for per-category display.
type FamilyNext struct {
	Key string
	ID  string
}

// Family is a reserved sub-range of a category with its own running number.
type Family struct {
	Key       string // e.g. "AC2xx"
	Code      string // parent category code
	Start     int    // first suffix of the reserved range
	End       int    // last suffix, inclusive
	Alias     string // human name, e.g. "Transistor"
	AnchorID  string // formatted ID at Start, e.g. "AC200"
	Members   []string
	NextID    string // empty when the range is exhausted
	Exhausted bool
}

// Reserved returns the family's suffix range.
func (f Family) Reserved() Range {
	return Range{Start: f.Start, End: f.End}
}

// SearchResult represents a search match
type SearchResult struct {
	ID          string
	Name        string
	Title       string
	Path        string
	MatchedText string
}

// NodeType discriminates catalog tree nodes for navigation.
type NodeType int

const (
	NodeCategory NodeType = iota
	NodeFamily
	NodeComponent
)

func (t NodeType) String() string {
	switch t {
	case NodeCategory:
		return "Category"
	case NodeFamily:
		return "Family"
	case NodeComponent:
		return "Component"
	default:
		return "Unknown"
	}
}

// TreeNode represents a node in the catalog tree for navigation
type TreeNode struct {
	Type       NodeType
	ID         string // category code, family key, or component ID
	Name       string
	Path       string
	Children   []*TreeNode
	IsExpanded bool
	Parent     *TreeNode
}

// Flatten returns all visible nodes in the tree (for list rendering)
func (n *TreeNode) Flatten() []*TreeNode {
	var result []*TreeNode
	n.flattenRecursive(&result)
	return result
}

func (n *TreeNode) flattenRecursive(result *[]*TreeNode) {
	*result = append(*result, n)
	if n.IsExpanded {
		for _, child := range n.Children {
			child.flattenRecursive(result)
		}
	}
}

// Depth returns the depth of this node in the tree
func (n *TreeNode) Depth() int {
	depth := 0
	current := n.Parent
	for current != nil {
		depth++
		current = current.Parent
	}
	return depth
}

// Toggle expands or collapses the node
func (n *TreeNode) Toggle() {
	n.IsExpanded = !n.IsExpanded
}

// Expand sets the node as expanded
func (n *TreeNode) Expand() {
	n.IsExpanded = true
}

// Collapse sets the node as collapsed
func (n *TreeNode) Collapse() {
	n.IsExpanded = false
}

// SortComponents sorts components by category code, then numeric suffix.
func SortComponents(components []Component) {
	slices.SortFunc(components, func(a, b Component) int {
		if a.Code != b.Code {
			if a.Code < b.Code {
				return -1
			}
			return 1
		}
		return a.Suffix - b.Suffix
	})
}

// SortCategories sorts categories by code in ascending order
func SortCategories(categories []Category) {
	slices.SortFunc(categories, func(a, b Category) int {
		if a.Code < b.Code {
			return -1
		}
		if a.Code > b.Code {
			return 1
		}
		return 0
	})
}

// SortFamilies sorts families by key in ascending order
func SortFamilies(families []Family) {
	slices.SortFunc(families, func(a, b Family) int {
		if a.Key < b.Key {
			return -1
		}
		if a.Key > b.Key {
			return 1
		}
		return 0
	})
}

// BuildTree assembles the navigation tree: categories at the top level,
// families beneath their category, components beneath their family or
// directly beneath the category when unaffiliated. Inputs are expected to be
// sorted; the tree preserves their order.
func BuildTree(categories []Category, families []Family, components []Component) *TreeNode {
	root := &TreeNode{Type: NodeCategory, ID: "", Name: "Catalog", IsExpanded: true}

	byID := make(map[string]Component, len(components))
	for _, c := range components {
		byID[c.ID] = c
	}

	famsByCode := make(map[string][]Family)
	for _, f := range families {
		famsByCode[f.Code] = append(famsByCode[f.Code], f)
	}

	for _, cat := range categories {
		catNode := &TreeNode{
			Type:   NodeCategory,
			ID:     cat.Code,
			Name:   cat.Title,
			Parent: root,
		}

		inFamily := make(map[string]bool)
		for _, fam := range famsByCode[cat.Code] {
			famNode := &TreeNode{
				Type:   NodeFamily,
				ID:     fam.Key,
				Name:   fam.Alias,
				Parent: catNode,
			}
			for _, id := range fam.Members {
				inFamily[id] = true
				famNode.Children = append(famNode.Children, componentNode(byID, id, famNode))
			}
			catNode.Children = append(catNode.Children, famNode)
		}

		for _, id := range cat.Members {
			if inFamily[id] {
				continue
			}
			catNode.Children = append(catNode.Children, componentNode(byID, id, catNode))
		}

		root.Children = append(root.Children, catNode)
	}

	return root
}

func componentNode(byID map[string]Component, id string, parent *TreeNode) *TreeNode {
	node := &TreeNode{Type: NodeComponent, ID: id, Parent: parent}
	if c, ok := byID[id]; ok {
		node.Name = c.Name
		node.Path = c.Path
	}
	return node
}
