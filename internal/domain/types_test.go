package domain

import (
	"errors"
	"testing"
)

func TestParsePolicy(t *testing.T) {
	cases := []struct {
		in      string
		want    IndexPolicy
		wantErr bool
	}{
		{"replace", PolicyReplace, false},
		{"separate", PolicySeparate, false},
		{"union", PolicyUnion, false},
		{"", PolicyReplace, false},
		{"overwrite", "", true},
		{"REPLACE", "", true},
	}
	for _, tc := range cases {
		got, err := ParsePolicy(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrUnknownIndexPolicy) {
				t.Errorf("ParsePolicy(%q) err = %v, want ErrUnknownIndexPolicy", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Errorf("ParsePolicy(%q) = %q,%v, want %q", tc.in, got, err, tc.want)
		}
	}
}
