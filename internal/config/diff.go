package config

import "reflect"

// Diff returns all key-value pairs from a that are absent from b or differ
// from b's value. Useful for reporting what a user override actually
// changed relative to the shipped defaults.
func Diff(a, b map[string]any) map[string]any {
	diff := make(map[string]any)
	for k, va := range a {
		vb, ok := b[k]
		if !ok || !reflect.DeepEqual(va, vb) {
			diff[k] = va
		}
	}
	return diff
}
