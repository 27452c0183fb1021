// Package snap models the directory snapshot the ordering engine operates on:
// a read-only tree of files and directories supplied by the host, plus the
// synthetic group containers the engine introduces into its output.
package snap

import "time"

// Kind classifies a Node. The zero value is KindDirectory, matching the
// default category order (directories before groups before files).
type Kind int

const (
	KindDirectory Kind = iota
	KindGroup
	KindFile
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindGroup:
		return "group"
	case KindFile:
		return "file"
	}
	return "unknown"
}

// State marks whether a file passed the allow_if/disallow_if predicates of
// the rule that matched it. Disallowed files stay in the listing; only the
// hidden directive removes nodes.
type State int

const (
	StateNormal State = iota
	StateDisallowed
)

func (s State) String() string {
	if s == StateDisallowed {
		return "disallowed"
	}
	return "normal"
}

// StatInfo carries the optional stat fields consulted by the size, modified,
// and created tiebreakers.
type StatInfo struct {
	Size      int64
	ModTime   time.Time
	BirthTime time.Time
}

// StatFunc resolves stat fields for a path on demand. The second return
// reports whether the lookup succeeded; on failure the engine treats the
// affected comparison as equal.
type StatFunc func(path string) (StatInfo, bool)

// Node is the closed set of items appearing in a listing. Consumers match
// the three variants exhaustively; adding a variant is a compile-checked
// change at every switch.
type Node interface {
	isNode()
}

// File is a leaf snapshot entry.
type File struct {
	Name  string
	Path  string
	State State
	Info  *StatInfo
}

// Directory is a snapshot entry owning an ordered list of children.
type Directory struct {
	Name     string
	Path     string
	Children []Node
}

// Group is a synthetic container produced by the engine for group and
// group_by buckets. It has no filesystem identity.
type Group struct {
	Name     string
	Children []Node
}

func (*File) isNode()      {}
func (*Directory) isNode() {}
func (*Group) isNode()     {}

// NameOf returns the display name of any node.
func NameOf(n Node) string {
	switch v := n.(type) {
	case *File:
		return v.Name
	case *Directory:
		return v.Name
	case *Group:
		return v.Name
	}
	return ""
}

// PathOf returns the filesystem path of a node, or "" for groups.
func PathOf(n Node) string {
	switch v := n.(type) {
	case *File:
		return v.Path
	case *Directory:
		return v.Path
	}
	return ""
}

// KindOf returns the category of a node.
func KindOf(n Node) Kind {
	switch n.(type) {
	case *File:
		return KindFile
	case *Directory:
		return KindDirectory
	case *Group:
		return KindGroup
	}
	return KindFile
}
