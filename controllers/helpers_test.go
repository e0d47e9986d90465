package controllers

import "testing"

func TestParseRating(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 5, false},
		{"  ", 5, false},
		{"3", 3, false},
		{"11", 11, false},
		{"x", 0, true},
	}
	for _, tc := range cases {
		got, err := parseRating(tc.in)
		if (err != nil) != tc.wantErr || (!tc.wantErr && got != tc.want) {
			t.Errorf("parseRating(%q) = %d, %v", tc.in, got, err)
		}
	}
}
