package cities

import "strings"

// City pairs a lookup key with the display name used upstream.
type City struct {
	Key  string
	Name string
}

// Registry is a fixed key -> display-name mapping. It is immutable after
// construction; lookups are case-insensitive on the key.
type Registry struct {
	keys  []string
	names map[string]string
}

func NewRegistry(entries ...City) *Registry {
	r := &Registry{names: make(map[string]string, len(entries))}
	for _, c := range entries {
		key := strings.ToLower(c.Key)
		if _, exists := r.names[key]; exists {
			continue
		}
		r.keys = append(r.keys, key)
		r.names[key] = c.Name
	}
	return r
}

// Default returns the registry of supported cities.
func Default() *Registry {
	return NewRegistry(
		City{Key: "newyork", Name: "New York"},
		City{Key: "sydney", Name: "Sydney"},
		City{Key: "capetown", Name: "Cape Town"},
		City{Key: "bangkok", Name: "Bangkok"},
	)
}

// DisplayName resolves a city key to its display name.
func (r *Registry) DisplayName(key string) (string, bool) {
	name, ok := r.names[strings.ToLower(key)]
	return name, ok
}

// Keys returns the lookup keys in registration order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)
	return keys
}
