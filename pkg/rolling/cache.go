package rolling

// Key identifies a compiled variant by the function's name, the window
// size and the steady-state strategy. Function identity has to be a
// caller-chosen name since Go functions are not comparable.
type Key struct {
	Name     string
	Window   int
	Strategy Strategy
}

// Cache is a caller-owned store of compiled variants. There is no hidden
// process-wide memoization: the caller decides the cache's lifetime and
// when to purge it.
type Cache[E, O Float] struct {
	entries map[Key]Rolled[E, O]
}

func NewCache[E, O Float]() *Cache[E, O] {
	return &Cache[E, O]{entries: make(map[Key]Rolled[E, O])}
}

func (c *Cache[E, O]) Get(key Key) (Rolled[E, O], bool) {
	r, ok := c.entries[key]
	return r, ok
}

// GetOrCompile returns the cached variant for (name, comp.Window,
// comp.Strategy), compiling and storing it on first use.
func (c *Cache[E, O]) GetOrCompile(name string, comp Compiler[E, O]) (Rolled[E, O], error) {
	key := Key{Name: name, Window: comp.Window, Strategy: comp.Strategy}
	if r, ok := c.entries[key]; ok {
		return r, nil
	}
	r, err := comp.Compile()
	if err != nil {
		return nil, err
	}
	c.entries[key] = r
	return r, nil
}

func (c *Cache[E, O]) Len() int {
	return len(c.entries)
}

func (c *Cache[E, O]) Purge() {
	c.entries = make(map[Key]Rolled[E, O])
}
