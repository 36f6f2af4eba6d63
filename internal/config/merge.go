package config

// Merge overlays the key-value pairs of overlay on top of base and returns
// a new mapping. Neither argument is mutated.
//
// An overlay value wins only when it is present and not null: a null value
// in an override file cannot reset a key that a lower-priority layer set.
// Merging the same overlay twice yields the same result as merging it once.
func Merge(base, overlay map[string]any) map[string]any {
	z := make(map[string]any, len(base)+len(overlay))
	for k, v := range base {
		z[k] = v
	}
	for k, v := range overlay {
		if v == nil {
			continue
		}
		z[k] = v
	}
	return z
}
