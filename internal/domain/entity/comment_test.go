package entity

import (
	"strings"
	"testing"
)

func TestValidateCommentText(t *testing.T) {
	cases := []struct {
		name    string
		text    string
		wantErr bool
	}{
		{"ok", "nice", false},
		{"empty", "", true},
		{"whitespace only", "   \t\n", true},
		{"exactly 250", strings.Repeat("a", 250), false},
		{"251", strings.Repeat("a", 251), true},
		{"multibyte under limit", strings.Repeat("あ", 250), false},
		{"multibyte over limit", strings.Repeat("あ", 251), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCommentText(tc.text)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateCommentText(%q) err=%v, wantErr=%v", tc.text, err, tc.wantErr)
			}
		})
	}
}

func TestComment_IsAuthor(t *testing.T) {
	c := &Comment{UserID: "alice"}
	if !c.IsAuthor("alice") {
		t.Fatalf("want author match")
	}
	if c.IsAuthor("bob") {
		t.Fatalf("want author mismatch for different user")
	}
	// case-sensitive, exact match
	if c.IsAuthor("Alice") {
		t.Fatalf("author check must be exact")
	}
}
