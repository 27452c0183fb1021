package sortscript

import (
	"github.com/Clydinite/SortScript/internal/dsl"
	"github.com/Clydinite/SortScript/internal/snap"
)

// Public type aliases for internal types used in the library API. These are
// Go type aliases (=), identical to the internal types at compile time, so
// external consumers never import internal packages.

type OrderFile = dsl.OrderFile
type Statement = dsl.Statement
type FilePattern = dsl.FilePattern
type PathBlock = dsl.PathBlock
type GroupBlock = dsl.GroupBlock
type Directive = dsl.Directive
type Pattern = dsl.Pattern

type Arg = dsl.Arg
type StringArg = dsl.StringArg
type RegexArg = dsl.RegexArg
type CaptureArg = dsl.CaptureArg
type IdentArg = dsl.IdentArg

type LexError = dsl.LexError
type ParseError = dsl.ParseError

type Node = snap.Node
type File = snap.File
type Directory = snap.Directory
type Group = snap.Group
type Kind = snap.Kind
type State = snap.State
type StatInfo = snap.StatInfo
type StatFunc = snap.StatFunc

const (
	KindDirectory = snap.KindDirectory
	KindGroup     = snap.KindGroup
	KindFile      = snap.KindFile

	StateNormal     = snap.StateNormal
	StateDisallowed = snap.StateDisallowed
)

// NameOf returns the display name of any node.
func NameOf(n Node) string { return snap.NameOf(n) }

// PathOf returns the filesystem path of a node, or "" for groups.
func PathOf(n Node) string { return snap.PathOf(n) }

// KindOf returns the category of a node.
func KindOf(n Node) Kind { return snap.KindOf(n) }
