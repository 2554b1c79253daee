package balda

import "slices"

// Dictionary is a prefix tree of words. Grid searches walk it with a Cursor
// so that a path is abandoned as soon as it stops spelling the prefix of some word.
type Dictionary struct {
	root  node
	words int // Count of distinct words inserted.
}

type node struct {
	word     bool // Whether the prefix ending at this node is a word.
	children map[rune]*node
}

// NewDictionary returns a Dictionary holding words.
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{}
	for _, w := range words {
		d.Insert(w)
	}
	return d
}

// Insert adds word to the dictionary. Inserting a word twice has no effect.
// The empty string marks the root as a word.
func (d *Dictionary) Insert(word string) {
	n := &d.root
	for _, r := range word {
		child, ok := n.children[r]
		if !ok {
			if n.children == nil {
				n.children = make(map[rune]*node, 4)
			}
			child = &node{}
			n.children[r] = child
		}
		n = child
	}

	if !n.word {
		n.word = true
		d.words++
	}
}

// Len returns the number of distinct words in the dictionary.
func (d *Dictionary) Len() int {
	return d.words
}

// Contains reports whether word was inserted.
func (d *Dictionary) Contains(word string) bool {
	c := d.Cursor()
	for _, r := range word {
		if !c.Advance(r) {
			return false
		}
	}
	_, ok := c.Word()
	return ok
}

// Cursor returns a new cursor positioned at the root with an empty prefix.
func (d *Dictionary) Cursor() *Cursor {
	path := make([]*node, 1, 16)
	path[0] = &d.root
	return &Cursor{
		path: path,
		cur:  make([]rune, 0, 16),
	}
}

// Cursor tracks a position in a Dictionary. It can only ever hold a prefix
// of some dictionary word. The Dictionary must outlive its cursors.
type Cursor struct {
	// Nodes along the current prefix, root first. len(path) == len(cur)+1.
	path []*node
	cur  []rune
}

func (c *Cursor) top() *node {
	return c.path[len(c.path)-1]
}

// NextLetters returns every letter that continues the current prefix into
// the prefix of some word, in ascending order. It is empty at a dead end.
func (c *Cursor) NextLetters() []rune {
	children := c.top().children
	letters := make([]rune, 0, len(children))
	for r := range children {
		letters = append(letters, r)
	}
	slices.Sort(letters)
	return letters
}

// Advance appends r to the prefix if the current node has a child r.
// Otherwise the cursor is left unchanged and Advance returns false.
func (c *Cursor) Advance(r rune) bool {
	child, ok := c.top().children[r]
	if !ok {
		return false
	}

	c.cur = append(c.cur, r)
	c.path = append(c.path, child)
	return true
}

// Retreat undoes the most recent successful Advance.
// It returns false if the cursor is already at the root.
func (c *Cursor) Retreat() bool {
	if len(c.cur) == 0 {
		return false
	}

	c.cur = c.cur[:len(c.cur)-1]
	c.path = c.path[:len(c.path)-1]
	return true
}

// Word returns the current prefix and true if it is a dictionary word.
func (c *Cursor) Word() (string, bool) {
	if !c.top().word {
		return "", false
	}
	return string(c.cur), true
}

// Prefix returns the current prefix.
func (c *Cursor) Prefix() string {
	return string(c.cur)
}

// Depth returns the length of the current prefix in letters.
func (c *Cursor) Depth() int {
	return len(c.cur)
}
