package service

import (
	"strings"
	"testing"
)

func TestKeywordResponder_RuleOrder(t *testing.T) {
	r := NewKeywordResponder()

	cases := []struct {
		message string
		marker  string // substring pinning the selected reply
	}{
		{"How do I memoize a React component?", "React is a popular JavaScript library"},
		{"Show me some JavaScript", "async/await with error handling"},
		{"can you review my js snippet", "async/await with error handling"},
		{"please write some code", "async/await with error handling"},
		{"Explain Python classes", "class with inheritance"},
		{"What's the weather like?", "coding questions"},
		{"", "coding questions"},
	}
	for _, tc := range cases {
		got := r.GenerateReply(tc.message)
		if !strings.Contains(got, tc.marker) {
			t.Errorf("GenerateReply(%q): reply does not contain %q", tc.message, tc.marker)
		}
	}
}

func TestKeywordResponder_CaseInsensitive(t *testing.T) {
	r := NewKeywordResponder()
	if got := r.GenerateReply("REACT hooks?"); !strings.Contains(got, "React is a popular") {
		t.Fatalf("uppercase keyword not matched: %q", got[:40])
	}
}

func TestKeywordResponder_FirstRuleWins(t *testing.T) {
	r := NewKeywordResponder()
	// "react" outranks "javascript" even when both appear.
	got := r.GenerateReply("react vs javascript")
	if !strings.Contains(got, "React is a popular JavaScript library") {
		t.Fatalf("expected the react reply, got %q", got[:40])
	}
}

func TestKeywordResponder_Deterministic(t *testing.T) {
	r := NewKeywordResponder()
	a := r.GenerateReply("python")
	b := r.GenerateReply("python")
	if a != b {
		t.Fatal("same input produced different replies")
	}
}

func TestResponderFunc_Adapts(t *testing.T) {
	var r Responder = ResponderFunc(func(s string) string { return "echo: " + s })
	if got := r.GenerateReply("hi"); got != "echo: hi" {
		t.Fatalf("got %q", got)
	}
}
