package pure_utils

// SortForDisplay moves the items for which isDone returns true after the others. It is a stable
// partition: the relative order inside each group is kept.
func SortForDisplay[T any](items []T, isDone func(T) bool) []T {
	sorted := make([]T, 0, len(items))
	var done []T
	for _, item := range items {
		if isDone(item) {
			done = append(done, item)
		} else {
			sorted = append(sorted, item)
		}
	}
	return append(sorted, done...)
}
