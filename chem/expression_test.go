package chem_test

import (
	"reflect"
	"testing"

	"github.com/katalvlaran/chemnet/chem"
)

func TestExpression_Atoms(t *testing.T) {
	cases := []struct {
		expr chem.Expression
		want []chem.Expression
	}{
		{"", []chem.Expression{}},
		{"S", []chem.Expression{"S"}},
		{"SII", []chem.Expression{"S", "I", "I"}},
		{"SII(SII)", []chem.Expression{"S", "I", "I", "S", "I", "I"}},
		{"K(IS)", []chem.Expression{"K", "I", "S"}},
	}
	for _, tc := range cases {
		if got := tc.expr.Atoms(); !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Atoms(%q) = %v; want %v", tc.expr, got, tc.want)
		}
	}
}

func TestExpression_Len(t *testing.T) {
	cases := []struct {
		expr chem.Expression
		want int
	}{
		{"", 0},
		{"S", 1},
		{"(S)", 1},
		{"SII(SII)", 6},
	}
	for _, tc := range cases {
		if got := tc.expr.Len(); got != tc.want {
			t.Errorf("Len(%q) = %d; want %d", tc.expr, got, tc.want)
		}
	}
}

// Expressions must work as map keys with value identity.
func TestExpression_MapKeyIdentity(t *testing.T) {
	m := map[chem.Expression]int{}
	m["SII"]++
	m[chem.Expression("SI") + "I"]++
	if m["SII"] != 2 {
		t.Errorf("value-equal expressions did not collapse: %v", m)
	}
}
