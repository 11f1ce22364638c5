package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func Equal[T any](t *testing.T, expected, actual T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(expected, actual, opts...); diff != "" {
		t.Errorf("\n%s", diff)
	}
}

// Ptr is shorthand for taking the address of a literal when seeding optional fields.
func Ptr[T any](v T) *T {
	return &v
}
