package locate

import "sort"

// DuplicateClass classifies a duplicate digest set per spec.md §4.7.
type DuplicateClass int

const (
	// ClassTop: no parent digest of any member is itself duplicated.
	ClassTop DuplicateClass = iota
	// ClassSub: every parent digest of every member is itself duplicated;
	// suppressed from the report since a higher-level set already covers it.
	ClassSub
	// ClassMix: some but not all parent digests are duplicated.
	ClassMix
)

func (c DuplicateClass) String() string {
	switch c {
	case ClassTop:
		return "top"
	case ClassSub:
		return "sub"
	case ClassMix:
		return "mix"
	default:
		return "unknown"
	}
}

// DuplicateSet is one reported group of directories sharing a digest.
type DuplicateSet struct {
	Digest string
	Paths  []string
	Class  DuplicateClass
}

// DuplicateReducer consumes hash-stack pop events and, once the directory
// stream is exhausted, reduces them to the topmost duplicate subtrees.
// Grounded on internals/find_duplicates.go's bubbling/clustering approach,
// simplified to a single parent-pointer map since mlocate has exactly one
// input stream — no cross-report merge like the teacher's multi-file case.
type DuplicateReducer struct {
	emptyDigest string

	byDigest map[string][]string
	// parentPathOf maps a directory path to its immediate parent's path.
	// Parent digests aren't known until the parent itself pops, so
	// resolution to parentOf-style digests is deferred to Reduce().
	parentPathOf map[string]string
	// digestOf maps a directory path to its own finalized digest.
	digestOf map[string]string
}

// NewDuplicateReducer constructs a reducer that ignores directories whose
// digest equals emptyDigest (spec.md §4.6's EMPTY_DIR_DIGEST exclusion).
func NewDuplicateReducer(emptyDigest string) *DuplicateReducer {
	return &DuplicateReducer{
		emptyDigest:  emptyDigest,
		byDigest:     make(map[string][]string),
		parentPathOf: make(map[string]string),
		digestOf:     make(map[string]string),
	}
}

// Observe should be registered as a HashStack's PopObserver directly: it is
// the function value wired into HashStack.PopObserver.
func (r *DuplicateReducer) Observe(event PopEvent) {
	path := string(event.Path)
	r.digestOf[path] = event.Digest
	r.parentPathOf[path] = string(event.ParentPath)
	if event.Digest == r.emptyDigest {
		return
	}
	r.byDigest[event.Digest] = append(r.byDigest[event.Digest], path)
}

// Reduce implements spec.md §4.7's report algorithm: group by digest,
// classify each duplicated digest's parent-digest set, and return the
// non-suppressed sets sorted by digest with member paths sorted lexically.
func (r *DuplicateReducer) Reduce() []DuplicateSet {
	var out []DuplicateSet

	for digest, paths := range r.byDigest {
		if len(paths) <= 1 {
			continue
		}

		parentDigests := make(map[string]bool)
		for _, p := range paths {
			parentDigests[r.digestOf[r.parentPathOf[p]]] = true
		}

		dupParents, plainParents := 0, 0
		for pd := range parentDigests {
			if _, isDup := r.byDigest[pd]; isDup && len(r.byDigest[pd]) > 1 {
				dupParents++
			} else {
				plainParents++
			}
		}

		var class DuplicateClass
		switch {
		case plainParents == 0:
			class = ClassSub
		case dupParents == 0:
			class = ClassTop
		default:
			class = ClassMix
		}
		if class == ClassSub {
			continue
		}

		sorted := append([]string(nil), paths...)
		sort.Strings(sorted)
		out = append(out, DuplicateSet{Digest: digest, Paths: sorted, Class: class})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Digest < out[j].Digest })
	return out
}
