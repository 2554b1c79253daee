package balda

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDictionaryAdvanceToWord(t *testing.T) {
	words := []string{"cat", "cats", "at", "a", "балда", "dog"}
	d := NewDictionary(words...)

	for _, w := range words {
		t.Run(w, func(t *testing.T) {
			c := d.Cursor()
			for _, r := range w {
				if !c.Advance(r) {
					t.Fatalf("Advance(%q) failed at prefix %q", r, c.Prefix())
				}
			}

			got, ok := c.Word()
			if !ok {
				t.Fatalf("Word() reported no word for %q", w)
			}
			if got != w {
				t.Fatalf("Word() = %q, want %q", got, w)
			}
		})
	}
}

func TestDictionaryInsertIdempotent(t *testing.T) {
	d := NewDictionary("cat", "cat", "cats")
	if d.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", d.Len())
	}

	d.Insert("cats")
	if d.Len() != 2 {
		t.Fatalf("Len() after re-insert = %d, want 2", d.Len())
	}
}

func TestDictionaryContains(t *testing.T) {
	d := NewDictionary("cat", "cats")

	tests := []struct {
		word string
		want bool
	}{
		{"cat", true},
		{"cats", true},
		{"ca", false},
		{"c", false},
		{"catsup", false},
		{"dog", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := d.Contains(tt.word); got != tt.want {
			t.Errorf("Contains(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestDictionaryEmptyWord(t *testing.T) {
	d := NewDictionary("")

	w, ok := d.Cursor().Word()
	if !ok || w != "" {
		t.Fatalf("Word() at root = (%q, %v), want (\"\", true)", w, ok)
	}
	if d.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", d.Len())
	}
}

func TestCursorAdvanceRetreatInverse(t *testing.T) {
	d := NewDictionary("cat", "cab", "car", "dog")
	c := d.Cursor()
	c.Advance('c')
	c.Advance('a')

	beforePrefix := c.Prefix()
	beforeNode := c.top()
	beforeLetters := c.NextLetters()

	for _, r := range beforeLetters {
		if !c.Advance(r) {
			t.Fatalf("Advance(%q) failed", r)
		}
		if !c.Retreat() {
			t.Fatalf("Retreat() failed after Advance(%q)", r)
		}

		if c.Prefix() != beforePrefix {
			t.Fatalf("prefix = %q after advance/retreat, want %q", c.Prefix(), beforePrefix)
		}
		if c.top() != beforeNode {
			t.Fatalf("cursor moved to a different node after advance/retreat of %q", r)
		}
		if len(c.path) != len(c.cur)+1 {
			t.Fatalf("len(path) = %d, len(cur) = %d", len(c.path), len(c.cur))
		}
	}
}

func TestCursorAdvanceMissing(t *testing.T) {
	d := NewDictionary("cat")
	c := d.Cursor()
	c.Advance('c')

	if c.Advance('x') {
		t.Fatal("Advance('x') succeeded for a letter with no child")
	}
	if c.Prefix() != "c" || c.Depth() != 1 {
		t.Fatalf("cursor changed after failed Advance: prefix %q depth %d", c.Prefix(), c.Depth())
	}
}

func TestCursorRetreatAtRoot(t *testing.T) {
	c := NewDictionary("cat").Cursor()
	if c.Retreat() {
		t.Fatal("Retreat() at root succeeded")
	}
}

func TestCursorNextLetters(t *testing.T) {
	d := NewDictionary("cat", "cab", "car", "cot", "dog")

	tests := []struct {
		prefix string
		want   []rune
	}{
		{"", []rune{'c', 'd'}},
		{"c", []rune{'a', 'o'}},
		{"ca", []rune{'b', 'r', 't'}},
		{"cat", []rune{}},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			c := d.Cursor()
			for _, r := range tt.prefix {
				c.Advance(r)
			}

			if diff := cmp.Diff(tt.want, c.NextLetters()); diff != "" {
				t.Fatalf("NextLetters() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCursorWordOnPrefix(t *testing.T) {
	d := NewDictionary("cats")
	c := d.Cursor()
	for _, r := range "cat" {
		c.Advance(r)
	}

	if w, ok := c.Word(); ok {
		t.Fatalf("Word() = %q for a prefix that is not a word", w)
	}
}
