package mathshell_test

import (
	"reflect"
	"testing"

	"github.com/zephyrtronium/mathshell"
)

func FuzzScan(f *testing.F) {
	f.Add("1")
	f.Add("-3+4")
	f.Add("(2+3)*4")
	f.Add("1.a")
	f.Fuzz(func(t *testing.T, s string) {
		sc := mathshell.NewScanner(s)
		a, aerr := sc.Scan()
		b, berr := sc.Scan()
		if !reflect.DeepEqual(a, b) || (aerr == nil) != (berr == nil) {
			t.Errorf("rescanning %q gave %v, %v; first %v, %v", s, b, berr, a, aerr)
		}
		if aerr != nil && a != nil {
			t.Errorf("scanning %q gave partial tokens %v with %v", s, a, aerr)
		}
	})
}
