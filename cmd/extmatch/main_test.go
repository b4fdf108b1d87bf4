package main

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/DrJosh9000/extglob"
)

func TestUnmatched(t *testing.T) {
	tests := []struct {
		pattern string
		lines   []string
		want    []string
	}{
		{
			pattern: "*.go",
			lines:   []string{"a.go", "b.txt", "a.go", "c.go", "d"},
			want:    []string{"b.txt", "d"},
		},
		{
			pattern: "*",
			lines:   []string{"x", "y"},
			want:    nil,
		},
		{
			pattern: "nope",
			lines:   []string{"x", "x", "y"},
			want:    []string{"x", "x", "y"},
		},
		{
			pattern: "x",
			lines:   []string{"x", "y", "x", "x"},
			want:    []string{"y"},
		},
	}

	for _, test := range tests {
		p := extglob.Parse(test.pattern, extglob.Unixify(false))
		matches, err := p.Filter(context.Background(), test.lines)
		if err != nil {
			t.Fatalf("(%q).Filter(...) = %v", test.pattern, err)
		}
		got := unmatched(test.lines, matches)
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("unmatched(%q, %q) diff (-got +want):\n%s", test.lines, matches, diff)
		}
	}
}
