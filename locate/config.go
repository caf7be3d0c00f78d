package locate

import "bytes"

// Config is the decoded configuration block: a mapping from a group-name
// byte string to its ordered list of value byte strings. It is opaque to
// the core — preserved only for diagnostic display (the CLI's -D/-C flags).
type Config map[string][][]byte

// readConfig reads exactly size bytes and parses them as a sequence of
// null-separated byte strings organized into groups terminated by an
// empty string. An empty piece closes the current group: the first
// element of the group becomes its key, the remaining elements its value
// list. A trailing empty piece with no pending group signals end of
// configuration and is ignored.
func readConfig(r *ByteReader, size int32) (Config, error) {
	conf := make(Config)
	if size == 0 {
		return conf, nil
	}

	raw, err := r.ReadExact(int(size))
	if err != nil {
		return nil, err
	}

	var group [][]byte
	for _, piece := range bytes.Split(raw, []byte{0}) {
		if len(piece) == 0 {
			if len(group) > 0 {
				conf[string(group[0])] = group[1:]
				group = nil
			}
			continue
		}
		group = append(group, piece)
	}

	return conf, nil
}
