package talent

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	cases := map[string]ApplyPolicy{
		"":        PolicyUnique,
		"unique":  PolicyUnique,
		"APPEND ": PolicyAppend,
	}
	for in, want := range cases {
		got, err := ParsePolicy(in)
		if err != nil {
			t.Fatalf("ParsePolicy(%q): unexpected err: %v", in, err)
		}
		if got != want {
			t.Fatalf("ParsePolicy(%q) = %q, want %q", in, got, want)
		}
	}
	if _, err := ParsePolicy("dedupe"); !errors.Is(err, ErrInvalidPolicy) {
		t.Fatalf("expected ErrInvalidPolicy, got %v", err)
	}
}
