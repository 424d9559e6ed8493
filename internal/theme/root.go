package theme

import (
	"slices"
	"sync"
)

// Root is the visual root whose class membership selects the active styling.
type Root interface {
	AddClass(name string)
	RemoveClass(name string)
	HasClass(name string) bool
}

// MutationOp identifies a class-list change.
type MutationOp string

// Class-list operations.
const (
	MutationAdd    MutationOp = "add"
	MutationRemove MutationOp = "remove"
)

// Mutation describes one change to a ClassList.
type Mutation struct {
	Op    MutationOp
	Class string
	// Classes is the class list after the change.
	Classes []string
}

// ClassList is an ordered set of class tokens with mutation observers.
type ClassList struct {
	mu        sync.RWMutex
	classes   []string
	observers []observer
	nextID    int
}

type observer struct {
	id int
	fn func(Mutation)
}

// NewClassList creates a class list holding the given classes.
func NewClassList(classes ...string) *ClassList {
	c := &ClassList{}
	for _, class := range classes {
		if class != "" && !slices.Contains(c.classes, class) {
			c.classes = append(c.classes, class)
		}
	}
	return c
}

// AddClass adds name if absent. No observer runs when nothing changes.
func (c *ClassList) AddClass(name string) {
	if name == "" {
		return
	}
	c.mu.Lock()
	if slices.Contains(c.classes, name) {
		c.mu.Unlock()
		return
	}
	c.classes = append(c.classes, name)
	m, observers := c.mutationLocked(MutationAdd, name)
	c.mu.Unlock()

	dispatch(observers, m)
}

// RemoveClass removes name if present. No observer runs when nothing changes.
func (c *ClassList) RemoveClass(name string) {
	c.mu.Lock()
	idx := slices.Index(c.classes, name)
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.classes = slices.Delete(c.classes, idx, idx+1)
	m, observers := c.mutationLocked(MutationRemove, name)
	c.mu.Unlock()

	dispatch(observers, m)
}

// HasClass reports whether name is present.
func (c *ClassList) HasClass(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.classes, name)
}

// Classes returns a copy of the current classes in insertion order.
func (c *ClassList) Classes() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.classes)
}

// Observe registers fn for every subsequent mutation and returns a cancel func.
func (c *ClassList) Observe(fn func(Mutation)) func() {
	if fn == nil {
		return func() {}
	}
	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.observers = append(c.observers, observer{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.observers = slices.DeleteFunc(c.observers, func(o observer) bool {
			return o.id == id
		})
	}
}

func (c *ClassList) mutationLocked(op MutationOp, class string) (Mutation, []observer) {
	m := Mutation{Op: op, Class: class, Classes: slices.Clone(c.classes)}
	return m, slices.Clone(c.observers)
}

func dispatch(observers []observer, m Mutation) {
	for _, o := range observers {
		o.fn(m)
	}
}

// Current reads the active theme back from root.
// Returns false when root carries no theme class.
func Current(root Root) (Theme, bool) {
	if root == nil {
		return "", false
	}
	for _, t := range All() {
		if root.HasClass(t.Class()) {
			return t, true
		}
	}
	return "", false
}

// applyToRoot removes every theme class and then adds t's class, so no
// observer ever sees two theme classes at once.
func applyToRoot(root Root, t Theme) {
	for _, candidate := range All() {
		root.RemoveClass(candidate.Class())
	}
	root.AddClass(t.Class())
}
