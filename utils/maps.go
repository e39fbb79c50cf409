package utils

// DuplicateStrMap returns a fresh copy of m. Mutating the copy never
// affects the original.
func DuplicateStrMap(m map[string]string) map[string]string {
	mapCopy := make(map[string]string, len(m))
	for k, v := range m {
		mapCopy[k] = v
	}
	return mapCopy
}
