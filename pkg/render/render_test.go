package render

import (
	"reflect"
	"testing"
)

func TestSplitSegments_TextCodeText(t *testing.T) {
	got := SplitSegments("abc```js\nlet x=1;```def")
	want := []Segment{
		{Type: SegmentText, Content: "abc"},
		{Type: SegmentCode, Content: "let x=1;", Language: "js"},
		{Type: SegmentText, Content: "def"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSegments = %#v, want %#v", got, want)
	}
}

func TestSplitSegments_NoFences(t *testing.T) {
	input := "Just a plain message.\nWith two lines."
	got := SplitSegments(input)
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0].Type != SegmentText || got[0].Content != input {
		t.Fatalf("got %#v, want single text segment equal to input", got[0])
	}
}

func TestSplitSegments_EmptyContent(t *testing.T) {
	got := SplitSegments("")
	if len(got) != 1 || got[0].Type != SegmentText || got[0].Content != "" {
		t.Fatalf("SplitSegments(\"\") = %#v, want one empty text segment", got)
	}
}

func TestSplitSegments_NoLanguageTag(t *testing.T) {
	got := SplitSegments("```\ncode here\n```")
	if len(got) != 1 {
		t.Fatalf("got %d segments, want 1", len(got))
	}
	if got[0].Type != SegmentCode {
		t.Fatalf("segment type = %q, want code", got[0].Type)
	}
	if got[0].Language != DefaultLanguage {
		t.Fatalf("language = %q, want %q", got[0].Language, DefaultLanguage)
	}
	if got[0].Content != "code here\n" {
		t.Fatalf("content = %q, want %q", got[0].Content, "code here\n")
	}
}

func TestSplitSegments_CodeContentNotTrimmed(t *testing.T) {
	got := SplitSegments("```go\n  indented := true\n\n```")
	if got[0].Content != "  indented := true\n\n" {
		t.Fatalf("content = %q, want untrimmed code body", got[0].Content)
	}
}

func TestSplitSegments_MultipleBlocks(t *testing.T) {
	input := "intro\n```python\nprint(1)\n```\nmiddle\n```\nraw\n```\noutro"
	got := SplitSegments(input)
	wantTypes := []string{SegmentText, SegmentCode, SegmentText, SegmentCode, SegmentText}
	if len(got) != len(wantTypes) {
		t.Fatalf("got %d segments, want %d: %#v", len(got), len(wantTypes), got)
	}
	for i, wt := range wantTypes {
		if got[i].Type != wt {
			t.Errorf("segment %d type = %q, want %q", i, got[i].Type, wt)
		}
	}
	if got[1].Language != "python" {
		t.Errorf("first code language = %q, want python", got[1].Language)
	}

	// Reassembling text contents and code bodies preserves every byte of
	// the original between the fences.
	if got[0].Content != "intro\n" || got[2].Content != "\nmiddle\n" || got[4].Content != "\noutro" {
		t.Errorf("text segments reordered or dropped: %#v", got)
	}
}

func TestSplitSegments_UnterminatedFenceIsText(t *testing.T) {
	input := "before ```js\nlet x = 1;"
	got := SplitSegments(input)
	if len(got) != 1 || got[0].Type != SegmentText || got[0].Content != input {
		t.Fatalf("unterminated fence: got %#v, want whole input as text", got)
	}
}

func TestRenderInline_Newlines(t *testing.T) {
	if got := RenderInline("a\nb"); got != "a<br />b" {
		t.Fatalf("RenderInline = %q, want %q", got, "a<br />b")
	}
}

func TestRenderInline_Headings(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"# Title", "<h1>Title</h1>"},
		{"## Sub", "<h2>Sub</h2>"},
		{"### Deep", "<h3>Deep</h3>"},
		{"#### Too deep", "#### Too deep"},
		{"# Title\nbody", "<h1>Title</h1><br />body"},
		{"no heading", "no heading"},
	}
	for _, tc := range cases {
		if got := RenderInline(tc.in); got != tc.want {
			t.Errorf("RenderInline(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
