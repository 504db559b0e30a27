package pure_utils

// Map returns a slice of the same length as src holding f applied to each element.
func Map[T, U any](src []T, f func(T) U) []U {
	us := make([]U, len(src))
	for i := range src {
		us[i] = f(src[i])
	}
	return us
}
