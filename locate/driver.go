package locate

import "regexp"

// FindResult pairs a directory block with the subset of its entries that
// matched the query patterns.
type FindResult struct {
	Block   DirBlock
	Matches []Entry
}

// TreeResult is one subtree rooted at a directory that matched a tree
// query's root patterns.
type TreeResult struct {
	Root string
	Tree *Tree
}

// Driver orchestrates one of {find, dups, tree} over a Decoder's directory
// stream, applying path/content filters and input/output limits as
// early-termination counters (spec.md §4.9). A zero limit means unlimited.
type Driver struct {
	Decoder *Decoder
}

// NewDriver wraps an already-open Decoder.
func NewDriver(d *Decoder) *Driver {
	return &Driver{Decoder: d}
}

// Find matches every directory's entries against patterns, keeping up to
// limitOutputMatch matches per directory and up to limitOutputDirs matching
// directories, reading at most limitInputDirs directories from the stream.
func (dr *Driver) Find(patterns []*regexp.Regexp, limitInputDirs, limitOutputDirs, limitOutputMatch int) ([]FindResult, error) {
	var results []FindResult
	input, matchedDirs := 0, 0

	for {
		if limitInputDirs > 0 && input >= limitInputDirs {
			break
		}
		blk, ok, err := dr.Decoder.Next()
		if err != nil {
			return results, err
		}
		if !ok {
			break
		}
		input++

		matches := blk.MatchEntries(patterns, limitOutputMatch)
		if len(matches) == 0 {
			continue
		}
		results = append(results, FindResult{Block: blk, Matches: matches})
		matchedDirs++
		if limitOutputDirs > 0 && matchedDirs >= limitOutputDirs {
			break
		}
	}

	return results, nil
}

// Dups runs duplicate-subtree detection. When pathSelectors is non-empty,
// only directories whose path matches one of them are fed into the hash
// stack (grounded on original_source/dup_dirs.py's App.match_dir); an empty
// selector list processes every directory, since a selector list that can
// never match would make the command vacuous by default (Open Question,
// see DESIGN.md).
func (dr *Driver) Dups(pathSelectors []*regexp.Regexp, algo DigestAlgorithm, limitInputDirs int) ([]DuplicateSet, error) {
	stack := NewHashStack(algo)
	reducer := NewDuplicateReducer(stack.EmptyDirDigest())
	stack.PopObserver = reducer.Observe

	input := 0
	for {
		if limitInputDirs > 0 && input >= limitInputDirs {
			break
		}
		blk, ok, err := dr.Decoder.Next()
		if err != nil {
			stack.Flush()
			return nil, err
		}
		if !ok {
			break
		}
		input++

		if len(pathSelectors) > 0 && !blk.MatchPath(pathSelectors) {
			continue
		}
		stack.Select(blk.Path)
		stack.SumContents(blk.Entries)
	}
	stack.Flush()

	return reducer.Reduce(), nil
}

// Tree renders subtrees rooted at every directory matching rootSelectors,
// up to limitOutputDirs subtrees read from at most limitInputDirs
// directories. Ported from original_source/subtree.py's do_subtree: one
// tree is active at a time; once a directory's path diverges from the
// active root, that tree is finalized and the diverging directory is
// simply dropped — it is not itself re-tested as a new root candidate in
// the same pass, matching the reference's control flow exactly.
func (dr *Driver) Tree(rootSelectors []*regexp.Regexp, limitInputDirs, limitOutputDirs int) ([]TreeResult, error) {
	var results []TreeResult
	var active *Tree
	var activeRoot string

	input, count := 0, 0
	for {
		if limitInputDirs > 0 && input >= limitInputDirs {
			break
		}
		blk, ok, err := dr.Decoder.Next()
		if err != nil {
			return results, err
		}
		if !ok {
			break
		}
		input++

		if active != nil {
			if _, loaded := active.Load(blk.Path); loaded {
				continue
			}
			results = append(results, TreeResult{Root: activeRoot, Tree: active})
			active = nil
			count++
			if limitOutputDirs > 0 && count >= limitOutputDirs {
				break
			}
			continue
		}

		if blk.MatchPath(rootSelectors) {
			root := append([]byte{}, blk.Path...)
			if len(root) == 0 || root[len(root)-1] != pathSeparator {
				root = append(root, pathSeparator)
			}
			active = NewTree(root)
			activeRoot = string(blk.Path)
		}
	}
	if active != nil {
		results = append(results, TreeResult{Root: activeRoot, Tree: active})
	}

	return results, nil
}
