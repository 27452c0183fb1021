package sortscript

import (
	"sort"

	"github.com/Clydinite/SortScript/internal/dsl"
	"github.com/Clydinite/SortScript/internal/rules"
	"github.com/Clydinite/SortScript/internal/snap"
)

// Order returns a reordered copy of root. Files the rules mark as
// disallowed carry that state in the copy; hidden items are absent; group
// and group_by buckets appear as synthetic Group nodes. The second return
// lists rules that failed to compile and were skipped. The input snapshot
// is never modified.
func (e *Engine) Order(root *Directory) (*Directory, []error) {
	o := &orderer{stat: e.stat}
	out := o.orderDirectory(root, e.ast.Statements, nil)
	return out, o.diags
}

type orderer struct {
	stat  snap.StatFunc
	diags []error
}

// claim records the path block that claimed a child, plus the block's
// compiled directive rule when the header or body carries bare directives.
// For claimed directories the block body becomes the nested scope; for
// claimed files the directive rule supplies trailing-directive semantics
// (hide, state, grouping).
type claim struct {
	block *dsl.PathBlock
	rule  *rules.Rule
}

func (o *orderer) orderDirectory(dir *snap.Directory, stmts []dsl.Statement, override []rules.Tiebreaker) *snap.Directory {
	stmts = flattenRoot(stmts)
	blocks, rest := splitBlocks(stmts)

	// Copy files up front so state marking never touches the input snapshot.
	kids := make([]snap.Node, 0, len(dir.Children))
	for _, c := range dir.Children {
		if f, ok := c.(*snap.File); ok {
			cp := *f
			kids = append(kids, &cp)
		} else {
			kids = append(kids, c)
		}
	}

	// Match path blocks in source order against still-unclaimed children;
	// the first matching block wins and later ones cannot reclaim.
	claims := map[snap.Node]*claim{}
	for _, b := range blocks {
		m, err := rules.CompilePattern(b.Pattern)
		if err != nil {
			o.diags = append(o.diags, err)
			continue
		}
		cl := &claim{block: b}
		if dirs := blockDirectives(b); len(dirs) > 0 {
			r, err := rules.CompileRule(b.Pattern, dirs)
			if err != nil {
				o.diags = append(o.diags, err)
			} else {
				cl.rule = r
			}
		}
		for _, k := range kids {
			if _, taken := claims[k]; taken {
				continue
			}
			if m.Match(snap.NameOf(k)) {
				claims[k] = cl
			}
		}
	}

	sc, diags := rules.Compile(rest)
	o.diags = append(o.diags, diags...)
	if len(override) > 0 {
		sc.Tiebreakers = override
	}

	arranged := o.arrange(kids, claims, sc)

	out := &snap.Directory{Name: dir.Name, Path: dir.Path}
	out.Children = o.recurse(arranged, claims)
	return out
}

// recurse orders the contents of directories in an arranged listing.
// Directories claimed by a path block recurse into the block body, with a
// header tiebreaker overriding whatever the nested scope would declare;
// unclaimed directories recurse into the empty default scope.
func (o *orderer) recurse(nodes []snap.Node, claims map[snap.Node]*claim) []snap.Node {
	out := make([]snap.Node, 0, len(nodes))
	for _, n := range nodes {
		switch v := n.(type) {
		case *snap.Directory:
			var stmts []dsl.Statement
			var override []rules.Tiebreaker
			if cl := claims[n]; cl != nil {
				stmts = cl.block.Body
				override = rules.TiebreakersFromDirectives(cl.block.Directives)
			}
			out = append(out, o.orderDirectory(v, stmts, override))
		case *snap.Group:
			out = append(out, &snap.Group{Name: v.Name, Children: o.recurse(v.Children, claims)})
		default:
			out = append(out, n)
		}
	}
	return out
}

// bucket is one named group being assembled. Buckets with the same name
// merge, keeping group names unique within a listing. When every member
// came from a single rule that declares its own tiebreakers, those order
// the bucket; otherwise the scope's do.
type bucket struct {
	name  string
	items []snap.Node
	rule  *rules.Rule
	mixed bool
}

type bucketSet struct {
	order  []*bucket
	byName map[string]*bucket
}

func newBucketSet() *bucketSet {
	return &bucketSet{byName: map[string]*bucket{}}
}

func (bs *bucketSet) ensure(name string) *bucket {
	if b, ok := bs.byName[name]; ok {
		return b
	}
	b := &bucket{name: name}
	bs.byName[name] = b
	bs.order = append(bs.order, b)
	return b
}

func (b *bucket) add(r *rules.Rule, items ...snap.Node) {
	if len(b.items) == 0 {
		b.rule = r
	} else if b.rule != r {
		b.mixed = true
	}
	b.items = append(b.items, items...)
}

// arrange orders one set of children against its compiled scope: group
// blocks claim their members, the explicit order consumes literal matches,
// rules claim the rest in declaration order, and everything else falls
// through. A final normalization pass re-sorts the whole listing by the
// scope's category order and tiebreakers, then re-applies the explicit
// order so literal placement always wins.
func (o *orderer) arrange(kids []snap.Node, claims map[snap.Node]*claim, sc *rules.Scope) []snap.Node {
	scopeKeys := sc.EffectiveTiebreakers()
	buckets := newBucketSet()

	var pool []snap.Node // unclaimed by any path block, not yet placed
	var claimed []snap.Node
	for _, k := range kids {
		if _, ok := claims[k]; ok {
			claimed = append(claimed, k)
		} else {
			pool = append(pool, k)
		}
	}

	// Group-block members are always their own buckets.
	for _, g := range sc.Groups {
		b := buckets.ensure(g.Name)
		for _, member := range g.Members {
			taken := takeByName(&pool, member)
			b.add(nil, taken...)
		}
	}

	// Explicitly listed names, in listed sequence.
	var explicit []snap.Node
	for _, name := range sc.ExplicitOrder {
		explicit = append(explicit, takeByName(&pool, name)...)
	}

	// Rules in declaration order on what is left.
	owner := map[snap.Node]*rules.Rule{}
	type run struct {
		rule  *rules.Rule
		items []snap.Node
	}
	var runs []run
	for _, r := range sc.Rules {
		matched := takeMatching(&pool, r.Match)
		if len(matched) == 0 {
			continue
		}
		if r.Hidden {
			continue // excluded from the listing entirely
		}
		loose := o.applyRule(r, matched, buckets)
		for _, n := range loose {
			owner[n] = r
		}
		if len(loose) > 0 {
			runs = append(runs, run{rule: r, items: loose})
		}
	}

	// Path-block-claimed children: apply the block's directive rule, then
	// fall through as ordinary listing members.
	var leftovers []snap.Node
	for _, k := range claimed {
		cl := claims[k]
		if cl.rule == nil {
			leftovers = append(leftovers, k)
			continue
		}
		if cl.rule.Hidden {
			continue
		}
		loose := o.applyRule(cl.rule, []snap.Node{k}, buckets)
		leftovers = append(leftovers, loose...)
	}
	leftovers = append(leftovers, pool...)

	// Assemble: buckets, explicit items, rule runs, leftovers.
	var out []snap.Node
	for _, b := range buckets.order {
		if len(b.items) == 0 {
			continue
		}
		keys := scopeKeys
		if b.rule != nil && !b.mixed && len(b.rule.Tiebreakers) > 0 {
			keys = b.rule.Tiebreakers
		}
		o.sortNodes(b.items, keys)
		out = append(out, &snap.Group{Name: b.name, Children: b.items})
	}
	out = append(out, explicit...)
	for _, r := range runs {
		keys := scopeKeys
		if len(r.rule.Tiebreakers) > 0 {
			keys = r.rule.Tiebreakers
		}
		o.sortNodes(r.items, keys)
		out = append(out, r.items...)
	}
	o.sortNodes(leftovers, scopeKeys)
	out = append(out, leftovers...)

	// Normalize the whole listing, then restore explicit placement.
	o.normalize(out, sc, owner)
	return reapplyExplicit(out, sc.ExplicitOrder)
}

// applyRule marks state and buckets the matched items of one rule. It
// returns the items left loose (ungrouped) for placement in the rule's run.
func (o *orderer) applyRule(r *rules.Rule, matched []snap.Node, buckets *bucketSet) []snap.Node {
	for _, n := range matched {
		if f, ok := n.(*snap.File); ok {
			f.State = r.StateOf(f.Name)
		}
	}
	switch {
	case r.GroupName != "":
		buckets.ensure(r.GroupName).add(r, matched...)
		return nil
	case r.GroupBy != nil:
		var loose []snap.Node
		byKey := map[string][]snap.Node{}
		var keys []string
		for _, n := range matched {
			key := r.GroupBy.Key(snap.NameOf(n))
			if key == "" {
				loose = append(loose, n)
				continue
			}
			if _, ok := byKey[key]; !ok {
				keys = append(keys, key)
			}
			byKey[key] = append(byKey[key], n)
		}
		sort.Strings(keys) // bucket keys are emitted alphabetically
		for _, key := range keys {
			buckets.ensure(key).add(r, byKey[key]...)
		}
		return loose
	default:
		return matched
	}
}

// normalize re-sorts the assembled listing by category order and
// tiebreakers. Items claimed by the same rule keep that rule's tiebreakers;
// everything else uses the scope's.
func (o *orderer) normalize(out []snap.Node, sc *rules.Scope, owner map[snap.Node]*rules.Rule) {
	scopeKeys := sc.EffectiveTiebreakers()
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		ra := categoryRank(sc.TypeOrder, snap.KindOf(a))
		rb := categoryRank(sc.TypeOrder, snap.KindOf(b))
		if ra != rb {
			return ra < rb
		}
		keys := scopeKeys
		if ro := owner[a]; ro != nil && ro == owner[b] && len(ro.Tiebreakers) > 0 {
			keys = ro.Tiebreakers
		}
		return rules.Compare(keys, o.stat, a, b) < 0
	})
}

func (o *orderer) sortNodes(items []snap.Node, keys []rules.Tiebreaker) {
	sort.SliceStable(items, func(i, j int) bool {
		return rules.Compare(keys, o.stat, items[i], items[j]) < 0
	})
}

// categoryRank orders node kinds: kinds listed in the type order come first
// by position, unlisted kinds follow in the default relative order
// (directories, then groups, then files).
func categoryRank(typeOrder []snap.Kind, k snap.Kind) int {
	for i, t := range typeOrder {
		if t == k {
			return i
		}
	}
	return len(typeOrder) + defaultRank(k)
}

func defaultRank(k snap.Kind) int {
	switch k {
	case snap.KindDirectory:
		return 0
	case snap.KindGroup:
		return 1
	}
	return 2
}

// reapplyExplicit moves explicitly listed items to the head of the listing
// in their listed sequence, so literal placement survives normalization.
func reapplyExplicit(out []snap.Node, explicitOrder []string) []snap.Node {
	if len(explicitOrder) == 0 {
		return out
	}
	rank := make(map[string]int, len(explicitOrder))
	for i, name := range explicitOrder {
		if _, ok := rank[name]; !ok {
			rank[name] = i
		}
	}
	var head, tail []snap.Node
	for _, n := range out {
		if _, ok := rank[snap.NameOf(n)]; ok {
			head = append(head, n)
		} else {
			tail = append(tail, n)
		}
	}
	sort.SliceStable(head, func(i, j int) bool {
		return rank[snap.NameOf(head[i])] < rank[snap.NameOf(head[j])]
	})
	return append(head, tail...)
}

// flattenRoot splices the body of every @root block into the statement list
// at its encounter position, recursively.
func flattenRoot(stmts []dsl.Statement) []dsl.Statement {
	var out []dsl.Statement
	for _, stmt := range stmts {
		if pb, ok := stmt.(*dsl.PathBlock); ok && pb.Pattern.IsEmpty() {
			out = append(out, flattenRoot(pb.Body)...)
			continue
		}
		out = append(out, stmt)
	}
	return out
}

// splitBlocks separates non-root path blocks from the statements that
// compile into the scope itself.
func splitBlocks(stmts []dsl.Statement) (blocks []*dsl.PathBlock, rest []dsl.Statement) {
	for _, stmt := range stmts {
		if pb, ok := stmt.(*dsl.PathBlock); ok && !pb.Pattern.IsEmpty() {
			blocks = append(blocks, pb)
			continue
		}
		rest = append(rest, stmt)
	}
	return blocks, rest
}

// blockDirectives collects a path block's header directives plus the bare
// directives in its body, which act as trailing directives when the block
// claims a file.
func blockDirectives(b *dsl.PathBlock) []*dsl.Directive {
	dirs := append([]*dsl.Directive{}, b.Directives...)
	for _, stmt := range b.Body {
		if d, ok := stmt.(*dsl.Directive); ok {
			dirs = append(dirs, d)
		}
	}
	return dirs
}

// takeByName removes and returns the items in pool whose name matches
// exactly, preserving encounter order.
func takeByName(pool *[]snap.Node, name string) []snap.Node {
	return takeMatching(pool, func(n string) bool { return n == name })
}

// takeMatching removes and returns the items in pool whose name satisfies
// the predicate, preserving encounter order.
func takeMatching(pool *[]snap.Node, match func(name string) bool) []snap.Node {
	var taken, rest []snap.Node
	for _, n := range *pool {
		if match(snap.NameOf(n)) {
			taken = append(taken, n)
		} else {
			rest = append(rest, n)
		}
	}
	*pool = rest
	return taken
}
