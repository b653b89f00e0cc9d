package content

import (
	"slices"
	"testing"
)

func TestParseHeadings(t *testing.T) {
	md := "# Title\n\nIntro.\n\n## First Part\n\ntext\n\n```md\n## Not A Heading\n```\n\n### Detail ###\n\n~~~\n# also skipped\n~~~\n## Last\n"

	got := ParseHeadings(md)
	want := []Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "First Part"},
		{Level: 3, Text: "Detail"},
		{Level: 2, Text: "Last"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d headings (%+v), want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i].Level != want[i].Level || got[i].Text != want[i].Text {
			t.Errorf("heading[%d] = %d %q, want %d %q", i, got[i].Level, got[i].Text, want[i].Level, want[i].Text)
		}
	}
}

func TestParseHeadings_UnclosedFence(t *testing.T) {
	md := "```\n## Inside\n"
	got := ParseHeadings(md)
	if len(got) != 1 {
		t.Fatalf("unclosed fence should not hide headings, got %+v", got)
	}
}

func TestMissingSections(t *testing.T) {
	outline := []string{"What Is Amethyst", "Healing Properties", "How to Cleanse"}

	tests := []struct {
		name string
		md   string
		want []string
	}{
		{
			name: "all present",
			md:   "## What Is Amethyst\n\n## healing properties\n\n## How to Cleanse Amethyst\n",
			want: nil,
		},
		{
			name: "emphasis and spacing ignored",
			md:   "## **What  Is Amethyst**\n## Healing Properties\n## How to Cleanse\n",
			want: nil,
		},
		{
			name: "level 3 does not count",
			md:   "## What Is Amethyst\n### Healing Properties\n## How to Cleanse\n",
			want: []string{"Healing Properties"},
		},
		{
			name: "plain text has no sections",
			md:   "Amethyst is a calming stone.",
			want: []string{"What Is Amethyst", "Healing Properties", "How to Cleanse"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MissingSections(tt.md, outline); !slices.Equal(got, tt.want) {
				t.Errorf("MissingSections = %v, want %v", got, tt.want)
			}
		})
	}
}
