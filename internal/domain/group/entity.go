package group

import (
	"errors"

	"github.com/google/uuid"
)

type Type string

const (
	TypeDepartment Type = "Department"
	TypePractice   Type = "Practice"
	TypeSquad      Type = "Squad"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDepartment, TypePractice, TypeSquad:
		return true
	}
	return false
}

var ErrGroupCycle = errors.New("group parent would create a cycle")

type Group struct {
	ID            uuid.UUID  `json:"id"`
	Name          string     `json:"name"`
	Type          Type       `json:"type"`
	OwnerID       *uuid.UUID `json:"owner_id,omitempty"`
	ParentGroupID *uuid.UUID `json:"parent_group_id,omitempty"`
	Description   string     `json:"description,omitempty"`
}

type Membership struct {
	UserID    uuid.UUID `json:"user_id"`
	GroupID   uuid.UUID `json:"group_id"`
	IsPrimary bool      `json:"is_primary"`
}

type Node struct {
	Group    Group  `json:"group"`
	Children []Node `json:"children"`
}

// BuildTree arranges groups into a forest. A group whose parent is missing
// becomes a root. When stored data already contains a cycle, the node that
// closes it is emitted as a leaf, and groups only reachable through a cycle
// are promoted to roots so nothing is dropped.
func BuildTree(groups []Group) []Node {
	byID := make(map[uuid.UUID]Group, len(groups))
	for _, g := range groups {
		byID[g.ID] = g
	}

	children := make(map[uuid.UUID][]Group)
	roots := make([]Group, 0)
	for _, g := range groups {
		if g.ParentGroupID == nil {
			roots = append(roots, g)
			continue
		}
		if _, ok := byID[*g.ParentGroupID]; !ok || *g.ParentGroupID == g.ID {
			roots = append(roots, g)
			continue
		}
		children[*g.ParentGroupID] = append(children[*g.ParentGroupID], g)
	}

	visited := make(map[uuid.UUID]bool, len(groups))
	var build func(g Group, path map[uuid.UUID]bool) Node
	build = func(g Group, path map[uuid.UUID]bool) Node {
		visited[g.ID] = true
		node := Node{Group: g, Children: []Node{}}
		if path[g.ID] {
			return node
		}
		path[g.ID] = true
		for _, c := range children[g.ID] {
			if path[c.ID] {
				node.Children = append(node.Children, Node{Group: c, Children: []Node{}})
				continue
			}
			node.Children = append(node.Children, build(c, path))
		}
		delete(path, g.ID)
		return node
	}

	out := make([]Node, 0, len(roots))
	for _, r := range roots {
		out = append(out, build(r, map[uuid.UUID]bool{}))
	}

	for _, g := range groups {
		if visited[g.ID] {
			continue
		}
		out = append(out, build(g, map[uuid.UUID]bool{}))
	}
	return out
}

// WouldCycle reports whether giving child the parent candidate creates a loop
// in the parent chain.
func WouldCycle(groups []Group, childID uuid.UUID, parentID uuid.UUID) bool {
	if childID == parentID {
		return true
	}
	parentOf := make(map[uuid.UUID]uuid.UUID, len(groups))
	for _, g := range groups {
		if g.ParentGroupID != nil {
			parentOf[g.ID] = *g.ParentGroupID
		}
	}

	seen := map[uuid.UUID]bool{}
	cur := parentID
	for {
		if cur == childID {
			return true
		}
		if seen[cur] {
			return false
		}
		seen[cur] = true
		next, ok := parentOf[cur]
		if !ok {
			return false
		}
		cur = next
	}
}
