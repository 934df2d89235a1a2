package simpleassets

// Collection is an insertion-ordered set of asset identifiers. The
// empty string is a valid, distinct identifier.
type Collection struct {
	keys    []string
	present map[string]struct{}
}

// NewCollection creates an empty collection.
func NewCollection() *Collection {
	return &Collection{present: make(map[string]struct{})}
}

// Add appends id if absent. Adding a present id is a no-op; the
// original position is kept.
func (c *Collection) Add(id string) {
	if c.Has(id) {
		return
	}
	c.keys = append(c.keys, id)
	c.present[id] = struct{}{}
}

// InsertBefore removes id if present, then inserts it immediately
// before the first occurrence of anchor. An absent anchor appends.
func (c *Collection) InsertBefore(id, anchor string) {
	c.Remove(id)
	i := c.indexOf(anchor)
	if i < 0 {
		i = len(c.keys)
	}
	c.insertAt(i, id)
}

// InsertAfter removes id if present, then inserts it immediately after
// the first occurrence of anchor. An absent anchor appends.
func (c *Collection) InsertAfter(id, anchor string) {
	c.Remove(id)
	i := c.indexOf(anchor)
	if i < 0 {
		i = len(c.keys) - 1
	}
	c.insertAt(i+1, id)
}

// Remove deletes id from the collection. It reports whether id was
// present.
func (c *Collection) Remove(id string) bool {
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.keys = append(c.keys[:i], c.keys[i+1:]...)
	delete(c.present, id)
	return true
}

// Has reports whether id is in the collection.
func (c *Collection) Has(id string) bool {
	_, ok := c.present[id]
	return ok
}

// Len returns the number of identifiers in the collection.
func (c *Collection) Len() int {
	return len(c.keys)
}

// Keys returns the identifiers in display order. The returned slice is
// a copy.
func (c *Collection) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Collection) indexOf(id string) int {
	for i, k := range c.keys {
		if k == id {
			return i
		}
	}
	return -1
}

func (c *Collection) insertAt(i int, id string) {
	c.keys = append(c.keys, "")
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = id
	c.present[id] = struct{}{}
}
