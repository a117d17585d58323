package match

// MatchPattern reports whether value satisfies pattern, emitting any
// selections through sel. The pattern may be a Matcher, an ordered
// sequence (matched positionally with exact length), a keyed form (map or
// struct, describing a minimum required shape), or a literal (compared
// with same-value equality).
//
// The engine may emit selections on branches that ultimately fail; callers
// that surface selections must buffer them and commit only on an overall
// true result. Mismatch is an ordinary false, never a panic; panics raised
// by caller-supplied guards propagate unmodified.
func MatchPattern(pattern, value any, sel SelectFn) bool {
	if sel == nil {
		sel = discard
	}

	if m, ok := pattern.(Matcher); ok {
		return m.Match(value, sel)
	}

	if seq, ok := asSequence(pattern); ok {
		// Fixed tuple semantics: exact length, positional sub-patterns.
		// Variadic matching belongs to the array/set matchers only.
		vseq, ok := asSequence(value)
		if !ok || vseq.Len() != seq.Len() {
			return false
		}
		for i := 0; i < seq.Len(); i++ {
			if !MatchPattern(seq.Index(i).Interface(), vseq.Index(i).Interface(), sel) {
				return false
			}
		}
		return true
	}

	if entries, ok := keyedEntries(pattern); ok {
		// A keyed pattern requires only the keys it names; extra keys in
		// the value are ignored. The empty keyed pattern therefore
		// matches any composite value, sequences included.
		if !isComposite(value) {
			return false
		}
		for _, e := range entries {
			fv, present := lookupField(value, e.key)
			if !present {
				m, ok := e.pattern.(Matcher)
				if !ok || m.Kind() != KindOptional {
					return false
				}
				if !m.Match(absentValue{}, sel) {
					return false
				}
				continue
			}
			if !MatchPattern(e.pattern, fv, sel) {
				return false
			}
		}
		return true
	}

	return sameValue(pattern, value)
}

// SelectionKeys enumerates, without executing a match, the selection names
// pattern can bind. Order follows pattern structure; duplicates are
// removed, first occurrence wins.
func SelectionKeys(pattern any) []string {
	var keys []string
	seen := make(map[string]struct{})
	collectKeys(pattern, func(k string) {
		if _, dup := seen[k]; dup {
			return
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	})
	return keys
}

func collectKeys(pattern any, add func(string)) {
	if m, ok := pattern.(Matcher); ok {
		if kl, ok := m.(KeyLister); ok {
			for _, k := range kl.SelectionKeys() {
				add(k)
			}
		}
		return
	}
	if seq, ok := asSequence(pattern); ok {
		for i := 0; i < seq.Len(); i++ {
			collectKeys(seq.Index(i).Interface(), add)
		}
		return
	}
	if entries, ok := keyedEntries(pattern); ok {
		for _, e := range entries {
			collectKeys(e.pattern, add)
		}
	}
}
