package preview

import "strings"

// WithOverrides returns a ColorFunc that consults overrides before base.
// Override keys match colour names case-insensitively, since config loaders
// fold map keys to lower case.
func WithOverrides(base ColorFunc, overrides map[string]string) ColorFunc {
	if len(overrides) == 0 {
		return base
	}
	folded := make(map[string]string, len(overrides))
	for name, value := range overrides {
		folded[strings.ToLower(name)] = value
	}
	return func(name string) string {
		if value, ok := folded[strings.ToLower(name)]; ok {
			return value
		}
		if base == nil {
			return ""
		}
		return base(name)
	}
}
