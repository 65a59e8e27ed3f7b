package seed

import _ "embed"

//go:embed default.yaml
var defaultFixtures []byte

// Default returns the built-in demo data set.
func Default() (*Fixtures, error) {
	return Parse(defaultFixtures)
}

// Load reads fixtures from path, or the built-in set when path is empty.
func Load(path string) (*Fixtures, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}
