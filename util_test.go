package nines

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// exportAll lets cmp look inside the validated wrappers.
var exportAll = cmp.Exporter(func(reflect.Type) bool { return true })

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	opts = append(opts, exportAll)
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}
