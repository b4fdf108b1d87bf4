package extglob

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func single(r rune) classItem { return classItem{Lo: r, Hi: r} }

func TestParse(t *testing.T) {
	tests := []struct {
		pattern string
		want    sequence
	}{
		{
			pattern: "",
			want:    nil,
		},
		{
			pattern: "a*b",
			want:    sequence{literal("a"), anyRun{}, literal("b")},
		},
		{
			pattern: "a**?",
			want:    sequence{literal("a"), anyRun{}, anyChar{}},
		},
		{
			pattern: "**/x/**",
			want:    sequence{globStarRun{}, pathBoundary{}, literal("x"), pathBoundary{}, globStarRun{}},
		},
		{
			pattern: "x/**y",
			want:    sequence{literal("x"), pathBoundary{}, anyRun{}, literal("y")},
		},
		{
			pattern: "a|**",
			want: sequence{&group{Kind: groupAlternation, Alts: []sequence{
				{literal("a")},
				{globStarRun{}},
			}}},
		},
		{
			pattern: "(a|b)+",
			want: sequence{&quantified{
				Atom: &group{Kind: groupAlternation, Alts: []sequence{
					{literal("a")},
					{literal("b")},
				}},
				Quant: groupOneOrMore,
			}},
		},
		{
			pattern: "(ab+)",
			want: sequence{&group{Kind: groupAlternation, Alts: []sequence{
				{literal("a"), &quantified{Atom: literal("b"), Quant: groupOneOrMore}},
			}}},
		},
		{
			pattern: "(a**)",
			want: sequence{&group{Kind: groupAlternation, Alts: []sequence{
				{&quantified{Atom: literal("a"), Quant: groupZeroOrMore}, anyRun{}},
			}}},
		},
		{
			pattern: "@(a*)",
			want: sequence{&group{Kind: groupExactlyOne, Alts: []sequence{
				{literal("a"), anyRun{}},
			}}},
		},
		{
			pattern: "*(a|)x",
			want: sequence{
				&group{Kind: groupZeroOrMore, Alts: []sequence{{literal("a")}, nil}},
				literal("x"),
			},
		},
		{
			pattern: "!(x|y)z",
			want: sequence{
				&group{Kind: groupNegated, Alts: []sequence{{literal("x")}, {literal("y")}}},
				literal("z"),
			},
		},
		{
			pattern: "+(a/b)",
			want: sequence{&group{Kind: groupOneOrMore, Alts: []sequence{
				{literal("a"), pathBoundary{}, literal("b")},
			}}},
		},
		{
			pattern: "a+b)",
			want:    sequence{literal("a+b)")},
		},
		{
			pattern: "a(b",
			want:    sequence{literal("a(b")},
		},
		{
			// The unclosed group's | splits the pattern instead.
			pattern: "+(x|y",
			want: sequence{&group{Kind: groupAlternation, Alts: []sequence{
				{literal("+(x")},
				{literal("y")},
			}}},
		},
		{
			pattern: "!a",
			want:    sequence{literal("!a")},
		},
		{
			pattern: "[!a-c[:digit:]]",
			want: sequence{&charClass{
				Items:   []classItem{{Lo: 'a', Hi: 'c'}, {Named: "digit"}},
				Negated: true,
			}},
		},
		{
			pattern: "[]a]",
			want:    sequence{&charClass{Items: []classItem{single(']'), single('a')}}},
		},
		{
			pattern: "[a-]",
			want:    sequence{&charClass{Items: []classItem{single('a'), single('-')}}},
		},
		{
			pattern: "[\\^]",
			want:    sequence{&charClass{Items: []classItem{single('^')}}},
		},
		{
			pattern: "[^^]",
			want:    sequence{&charClass{Items: []classItem{single('^')}, Negated: true}},
		},
		{
			pattern: "foo[/]",
			want:    sequence{literal("foo"), &charClass{Items: []classItem{single('/')}}},
		},
		{
			pattern: "[*(]",
			want:    sequence{&charClass{Items: []classItem{single('*'), single('(')}}},
		},
		{
			pattern: "[[:nope:]]",
			want: sequence{
				&charClass{Items: []classItem{
					single('['), single(':'), single('n'), single('o'),
					single('p'), single('e'), single(':'),
				}},
				literal("]"),
			},
		},
		{
			pattern: "a[",
			want:    sequence{literal("a[")},
		},
	}

	cfg := defaultConfig
	cfg.unixify = false

	for _, test := range tests {
		got := parse(tokenise(test.pattern, &cfg))
		if diff := cmp.Diff(got, test.want); diff != "" {
			t.Errorf("parse(tokenise(%q)) diff (-got +want):\n%s", test.pattern, diff)
		}
	}
}
