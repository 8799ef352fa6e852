package pool

import (
	_ "embed"
)

//go:embed default_cube.txt
var defaultCube string

// Default returns the bundled fallback cube list, used when no pool source
// is reachable.
func Default() []string {
	return splitList(defaultCube)
}
