package ir

import (
	"testing"
)

func TestEqualScalars(t *testing.T) {
	lit := func(s string) *Node { return &Node{Type: NumberType, Number: s} }
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"null", Null(), Null(), true},
		{"null and false", Null(), FromBool(false), false},
		{"same bool", FromBool(true), FromBool(true), true},
		{"different bool", FromBool(true), FromBool(false), false},
		{"same string", FromString("a"), FromString("a"), true},
		{"different string", FromString("a"), FromString("b"), false},
		{"int and float", FromInt(1), FromFloat(1.0), true},
		{"same literal", lit("1e999"), lit("1e999"), true},
		{"different literal", lit("1e999"), lit("2e999"), false},
		{"literal and float", lit("1e999"), FromFloat(1), false},
		{"float and literal", FromFloat(1), lit("1e999"), false},
		{"empty array and object", FromSlice(nil), FromKeyVals(nil), false},
		{"empty arrays", FromSlice(nil), FromSlice(nil), true},
		{"object keys",
			FromKeyVals([]KeyVal{{Key: FromString("a"), Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: FromString("b"), Val: FromInt(1)}}),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %t, want %t", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("reverse Equal = %t, want %t", got, tt.want)
			}
		})
	}
}

func TestEqualNumbers(t *testing.T) {
	if !Equal(FromInt(2), FromFloat(2)) {
		t.Error("2 and 2.0 should be equal")
	}
	if Equal(FromInt(2), FromFloat(2.5)) {
		t.Error("2 and 2.5 should differ")
	}
	big := &Node{Type: NumberType, Number: "123456789012345678901234567890"}
	if !Equal(big, big.Clone()) {
		t.Error("literal numbers should equal their clones")
	}
	if Equal(FromInt(1), FromString("1")) {
		t.Error("number and string should differ")
	}
}

func TestEqualOrderSensitive(t *testing.T) {
	ab := Object()
	ab.Set("a", FromInt(1))
	ab.Set("b", FromInt(2))
	ba := Object()
	ba.Set("b", FromInt(2))
	ba.Set("a", FromInt(1))
	if Equal(ab, ba) {
		t.Error("objects with different key order should not be equal")
	}
	if !Equal(ab, ab.Clone()) {
		t.Error("clone should be equal")
	}
}
