package locate

import "fmt"

// Stats is a supplemental pre-evaluation summary of a database's directory
// stream — read straight off the decoder, with no filesystem access, unlike
// the filesystem-walk the teacher's GenerateStatistics performed.
type Stats struct {
	CountDirs     uint32
	CountEntries  uint32
	CountSubdirs  uint32
	CountFiles    uint32
	MaxDepth      uint32
	MaxEntryCount uint32
}

func (s Stats) String() string {
	d := "dirs"
	if s.CountDirs == 1 {
		d = "dir"
	}
	e := "entries"
	if s.CountEntries == 1 {
		e = "entry"
	}
	return fmt.Sprintf(`stats: %d %s, %d %s (%d subdirs, %d files), maxdepth %d, largest directory %d entries`,
		s.CountDirs, d, s.CountEntries, e, s.CountSubdirs, s.CountFiles, s.MaxDepth, s.MaxEntryCount)
}

// GenerateStats reads up to limitInputDirs directory blocks from d
// (0 = unlimited) and tallies directory/entry counts, subdir-vs-file
// split, maximum path depth, and the largest single directory's entry
// count. Grounded on internals/statistics.go's GenerateStatistics, adapted
// from a filepath.Walk over a live filesystem to a pull over the decoder's
// directory stream.
func GenerateStats(d *Decoder, limitInputDirs int) (Stats, error) {
	var s Stats

	input := 0
	for {
		if limitInputDirs > 0 && input >= limitInputDirs {
			break
		}
		blk, ok, err := d.Next()
		if err != nil {
			return s, err
		}
		if !ok {
			break
		}
		input++

		s.CountDirs++
		if depth := DetermineDepth(blk.Path); depth > s.MaxDepth {
			s.MaxDepth = depth
		}
		if n := uint32(len(blk.Entries)); n > s.MaxEntryCount {
			s.MaxEntryCount = n
		}
		for _, e := range blk.Entries {
			s.CountEntries++
			if e.IsSubdir {
				s.CountSubdirs++
			} else {
				s.CountFiles++
			}
		}
	}

	return s, nil
}
