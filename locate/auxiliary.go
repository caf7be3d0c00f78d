package locate

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// HumanReadableBytes renders count using binary (KiB/MiB/...) units. No
// command in this module calls it.
func HumanReadableBytes(count uint64) string {
	bytes := float64(count)
	units := []string{"bytes", "KiB", "MiB", "GiB", "TiB", "PiB"}
	for _, unit := range units {
		if bytes < 1024 {
			return fmt.Sprintf(`%.02f %s`, bytes, unit)
		}
		bytes /= 1024
	}
	return fmt.Sprintf(`%.02f EiB`, bytes)
}

// IsPermissionError determines whether err indicates a permission error on
// the underlying database file.
func IsPermissionError(err error) bool {
	return errors.Is(err, os.ErrPermission)
}

// DetermineDepth counts the path-separator-delimited segments below the
// root in path — e.g. "/a/b" has depth 2. Used for the stats command's
// maximum-depth figure.
func DetermineDepth(path []byte) uint32 {
	p := strings.Trim(string(path), string(pathSeparator))
	if p == "" {
		return 0
	}
	return uint32(strings.Count(p, string(pathSeparator))) + 1
}
