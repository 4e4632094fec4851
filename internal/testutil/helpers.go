package testutil

// Ptr returns a pointer to v; handy for optional model fields and patches.
func Ptr[T any](v T) *T {
	return &v
}
