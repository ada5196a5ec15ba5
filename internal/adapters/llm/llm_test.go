package llm

import (
	"context"
	"testing"
)

func TestUnfence(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name, in, want string
	}{
		{"plain", `{"domain_names":[]}`, `{"domain_names":[]}`},
		{"padded", "  {\"a\":1}\n", `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"one line fence", "```json{\"a\":1}```", `{"a":1}`},
		{"unterminated", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Unfence(tc.in); got != tc.want {
				t.Fatalf("Unfence(%q) = %q want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()
	sys, rest := Split([]Message{
		{Role: RoleSystem, Content: "a"},
		{Role: RoleUser, Content: "q"},
		{Role: RoleSystem, Content: "b"},
	})
	if sys != "a\n\nb" {
		t.Fatalf("system = %q", sys)
	}
	if len(rest) != 1 || rest[0].Role != RoleUser || rest[0].Content != "q" {
		t.Fatalf("rest = %+v", rest)
	}
}

func TestCompleterFunc(t *testing.T) {
	t.Parallel()
	var got Request
	c := CompleterFunc(func(_ context.Context, r Request) (string, error) {
		got = r
		return "ok", nil
	})
	out, err := c.Complete(context.Background(), Request{Model: "m"})
	if err != nil || out != "ok" || got.Model != "m" {
		t.Fatalf("out=%q err=%v req=%+v", out, err, got)
	}
}
