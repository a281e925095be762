package config

import "os"

// Source is one place a configuration value may come from. Sources are
// captured eagerly so precedence can be exercised in tests without
// touching process state.
type Source struct {
	Origin string
	Value  string
}

// Resolved is the winning value of a resolution chain along with the
// origin that supplied it.
type Resolved struct {
	Origin string
	Value  string
}

func FromMap(m map[string]string, key string) Source {
	return Source{Origin: "config:" + key, Value: m[key]}
}

func FromEnv(name string) Source {
	return Source{Origin: "env:" + name, Value: os.Getenv(name)}
}

// Resolve walks the sources in order and returns the first non-empty
// value. The second return is false when every source is empty.
func Resolve(sources ...Source) (Resolved, bool) {
	for _, s := range sources {
		if s.Value != "" {
			return Resolved{Origin: s.Origin, Value: s.Value}, true
		}
	}
	return Resolved{}, false
}
