package match

// selectionBuffer records emissions in discovery order so a speculative
// nested match can be committed or discarded atomically. Used by matchers
// whose alternatives must not leak selections from non-winning branches
// (or, map).
type selectionBuffer struct {
	pairs []selectionPair
}

type selectionPair struct {
	key   string
	value any
}

func (b *selectionBuffer) add(key string, value any) {
	b.pairs = append(b.pairs, selectionPair{key: key, value: value})
}

func (b *selectionBuffer) commit(sel SelectFn) {
	for _, p := range b.pairs {
		sel(p.key, p.value)
	}
}

// groupCollector accumulates the emissions of a variadic matcher's
// elements into one ordered slice per key, so that a selection nested
// under a repeating context yields a sequence with one slot per emission,
// in element order. Keys emit in first-seen order.
type groupCollector struct {
	order  []string
	groups map[string][]any
}

func newGroupCollector() *groupCollector {
	return &groupCollector{groups: make(map[string][]any)}
}

func (g *groupCollector) add(key string, value any) {
	if _, ok := g.groups[key]; !ok {
		g.order = append(g.order, key)
	}
	g.groups[key] = append(g.groups[key], value)
}

func (g *groupCollector) commit(sel SelectFn) {
	for _, key := range g.order {
		sel(key, g.groups[key])
	}
}
