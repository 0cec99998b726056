package task

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/colonyops/taskboard/pkg/randid"
)

const idLength = 8

// Snapshot is an immutable view of the task tree. Every mutation of a Tree
// publishes a new Snapshot; a held Snapshot never changes, so comparing
// snapshot pointers is enough to detect updates.
type Snapshot struct {
	tasks   map[string]Task
	roots   []string
	version uint64
}

func emptySnapshot() *Snapshot {
	return &Snapshot{tasks: map[string]Task{}, roots: []string{}}
}

// Version increases by one with every published mutation.
func (s *Snapshot) Version() uint64 {
	return s.version
}

// Len returns the number of tasks at all depths.
func (s *Snapshot) Len() int {
	return len(s.tasks)
}

// Get returns the task with the given id, searching the whole tree.
func (s *Snapshot) Get(id string) (Task, bool) {
	t, ok := s.tasks[id]
	if !ok {
		return Task{}, false
	}
	return t.clone(), true
}

// Roots returns the root tasks in display order.
func (s *Snapshot) Roots() []Task {
	return s.resolve(s.roots)
}

// Children returns the direct subtasks of id in display order. Unknown ids
// have no children.
func (s *Snapshot) Children(id string) []Task {
	parent, ok := s.tasks[id]
	if !ok {
		return []Task{}
	}
	return s.resolve(parent.Children)
}

// Walk visits tasks in depth-first pre-order starting from the given roots,
// passing each task and its depth relative to the starting level. Traversal
// uses an explicit stack. Returning false from fn skips the task's subtree.
func (s *Snapshot) Walk(roots []Task, fn func(t Task, depth int) bool) {
	type frame struct {
		id    string
		depth int
	}

	stack := make([]frame, 0, len(roots))
	for i := len(roots) - 1; i >= 0; i-- {
		stack = append(stack, frame{id: roots[i].ID})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t, ok := s.tasks[top.id]
		if !ok {
			continue
		}
		if !fn(t.clone(), top.depth) {
			continue
		}
		for i := len(t.Children) - 1; i >= 0; i-- {
			stack = append(stack, frame{id: t.Children[i], depth: top.depth + 1})
		}
	}
}

// All returns every task in depth-first pre-order.
func (s *Snapshot) All() []Task {
	out := make([]Task, 0, len(s.tasks))
	s.Walk(s.Roots(), func(t Task, _ int) bool {
		out = append(out, t)
		return true
	})
	return out
}

// Descendants returns the ids of every task below id, not including id.
func (s *Snapshot) Descendants(id string) []string {
	t, ok := s.tasks[id]
	if !ok {
		return nil
	}
	var out []string
	s.Walk(s.resolve(t.Children), func(d Task, _ int) bool {
		out = append(out, d.ID)
		return true
	})
	return out
}

func (s *Snapshot) resolve(ids []string) []Task {
	out := make([]Task, 0, len(ids))
	for _, id := range ids {
		if t, ok := s.tasks[id]; ok {
			out = append(out, t.clone())
		}
	}
	return out
}

// next returns a shallow copy of s to be modified and published. Task values
// and id slices must be cloned before they are changed.
func (s *Snapshot) next() *Snapshot {
	return &Snapshot{
		tasks:   maps.Clone(s.tasks),
		roots:   s.roots,
		version: s.version + 1,
	}
}

// siblings returns the id slice that contains id and the index of id in it.
func (s *Snapshot) siblings(t Task) ([]string, int) {
	ids := s.roots
	if !t.IsRoot() {
		ids = s.tasks[t.ParentID].Children
	}
	return ids, slices.Index(ids, t.ID)
}

// Tree is the in-memory task store: an arena of tasks keyed by id plus the
// ordered list of roots. Writers are serialized; readers load the current
// Snapshot without locking.
type Tree struct {
	mu      sync.Mutex
	current atomic.Pointer[Snapshot]
	seq     int

	now   func() time.Time
	newID func() string
}

// NewTree creates an empty tree.
func NewTree() *Tree {
	t := &Tree{
		now:   time.Now,
		newID: func() string { return randid.Generate(idLength) },
	}
	t.current.Store(emptySnapshot())
	return t
}

// Snapshot returns the current immutable view of the tree.
func (t *Tree) Snapshot() *Snapshot {
	return t.current.Load()
}

// Add creates a task from the draft. A draft with a ParentID is appended to
// that parent's children; otherwise it becomes the last root. Referencing a
// missing parent returns ErrParentNotFound and leaves the tree unchanged.
func (t *Tree) Add(d Draft) (Task, error) {
	if err := d.Validate(); err != nil {
		return Task{}, fmt.Errorf("add task: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.current.Load()

	level := 0
	if d.ParentID != "" {
		parent, ok := cur.tasks[d.ParentID]
		if !ok {
			return Task{}, fmt.Errorf("add task: parent %q: %w", d.ParentID, ErrParentNotFound)
		}
		level = parent.Level + 1
	}

	now := t.now()
	tags := slices.Clone(d.Tags)
	if tags == nil {
		tags = []string{}
	}

	created := Task{
		ID:          t.uniqueID(cur),
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Priority:    d.Priority,
		Status:      StatusTodo,
		Tags:        tags,
		Category:    d.Category,
		ParentID:    d.ParentID,
		Children:    []string{},
		Level:       level,
		Order:       t.seq,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if d.DueDate != nil {
		due := *d.DueDate
		created.DueDate = &due
	}

	next := cur.next()
	next.tasks[created.ID] = created
	if d.ParentID != "" {
		parent := next.tasks[d.ParentID].clone()
		parent.Children = append(parent.Children, created.ID)
		next.tasks[parent.ID] = parent
	} else {
		next.roots = append(slices.Clone(cur.roots), created.ID)
	}

	t.seq++
	t.current.Store(next)
	return created.clone(), nil
}

// Edit merges the patch into the task with the given id, wherever it lives in
// the tree. The task's id, parent, children, level and order are preserved.
func (t *Tree) Edit(id string, p Patch) (Task, error) {
	if err := p.Validate(); err != nil {
		return Task{}, fmt.Errorf("edit task %q: %w", id, err)
	}

	return t.update(id, "edit", func(cur Task) Task {
		return p.apply(cur)
	})
}

// Toggle flips the task between completed and the status it had before it
// was completed (todo when none was recorded). It applies at any depth.
func (t *Tree) Toggle(id string) (Task, error) {
	return t.update(id, "toggle", func(cur Task) Task {
		return cur.clone().toggled()
	})
}

func (t *Tree) update(id, op string, fn func(Task) Task) (Task, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.current.Load()
	existing, ok := cur.tasks[id]
	if !ok {
		return Task{}, fmt.Errorf("%s task %q: %w", op, id, ErrNotFound)
	}

	updated := fn(existing)
	updated.UpdatedAt = t.now()

	next := cur.next()
	next.tasks[id] = updated
	t.current.Store(next)
	return updated.clone(), nil
}

// Delete removes the task and, cascading, every task below it. It returns the
// removed ids with the requested task first.
func (t *Tree) Delete(id string) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.current.Load()
	target, ok := cur.tasks[id]
	if !ok {
		return nil, fmt.Errorf("delete task %q: %w", id, ErrNotFound)
	}

	removed := append([]string{id}, cur.Descendants(id)...)

	next := cur.next()
	if target.IsRoot() {
		next.roots = slices.DeleteFunc(slices.Clone(cur.roots), func(r string) bool { return r == id })
	} else {
		parent := next.tasks[target.ParentID].clone()
		parent.Children = slices.DeleteFunc(parent.Children, func(c string) bool { return c == id })
		parent.UpdatedAt = t.now()
		next.tasks[parent.ID] = parent
	}
	for _, rid := range removed {
		delete(next.tasks, rid)
	}

	t.current.Store(next)
	return removed, nil
}

// Move shifts a task among its siblings by delta positions (negative moves
// up). The destination is clamped to the sibling range; moving past an edge
// is a no-op.
func (t *Tree) Move(id string, delta int) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cur := t.current.Load()
	target, ok := cur.tasks[id]
	if !ok {
		return fmt.Errorf("move task %q: %w", id, ErrNotFound)
	}

	siblings, from := cur.siblings(target)
	to := min(max(from+delta, 0), len(siblings)-1)
	if to == from {
		return nil
	}

	reordered := slices.Delete(slices.Clone(siblings), from, from+1)
	reordered = slices.Insert(reordered, to, id)

	next := cur.next()
	if target.IsRoot() {
		next.roots = reordered
	} else {
		parent := next.tasks[target.ParentID].clone()
		parent.Children = reordered
		next.tasks[parent.ID] = parent
	}

	t.current.Store(next)
	return nil
}

func (t *Tree) uniqueID(s *Snapshot) string {
	for {
		id := t.newID()
		if _, taken := s.tasks[id]; !taken {
			return id
		}
	}
}
