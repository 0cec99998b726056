package task

import (
	"fmt"
	"testing"
	"time"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTree returns a tree with sequential ids ("1", "2", ...) and a fixed clock.
func newTestTree(t *testing.T) *Tree {
	t.Helper()

	tree := NewTree()
	n := 0
	tree.newID = func() string {
		n++
		return fmt.Sprintf("%d", n)
	}
	fixed := time.Date(2026, 6, 15, 9, 0, 0, 0, time.UTC)
	tree.now = func() time.Time { return fixed }
	return tree
}

func mustAdd(t *testing.T, tree *Tree, d Draft) Task {
	t.Helper()
	if d.Priority == "" {
		d.Priority = PriorityMedium
	}
	created, err := tree.Add(d)
	require.NoError(t, err)
	return created
}

func TestTree_Add(t *testing.T) {
	t.Run("root task", func(t *testing.T) {
		tree := newTestTree(t)

		created := mustAdd(t, tree, Draft{Title: "  A  ", Priority: PriorityHigh, Tags: []string{"work"}})

		assert.Equal(t, "1", created.ID)
		assert.Equal(t, "A", created.Title)
		assert.Equal(t, StatusTodo, created.Status)
		assert.Equal(t, 0, created.Level)
		assert.Equal(t, 0, created.Order)
		assert.Empty(t, created.ParentID)
		assert.NotNil(t, created.Children)

		roots := tree.Snapshot().Roots()
		require.Len(t, roots, 1)
		assert.Equal(t, created, roots[0])
	})

	t.Run("nil tags become empty", func(t *testing.T) {
		tree := newTestTree(t)

		created := mustAdd(t, tree, Draft{Title: "A"})

		assert.NotNil(t, created.Tags)
		assert.Empty(t, created.Tags)
	})

	t.Run("subtask appended to parent", func(t *testing.T) {
		tree := newTestTree(t)
		parent := mustAdd(t, tree, Draft{Title: "A", Priority: PriorityHigh})

		sub := mustAdd(t, tree, Draft{Title: "Sub", ParentID: parent.ID})

		snap := tree.Snapshot()
		got, ok := snap.Get(parent.ID)
		require.True(t, ok)
		require.Len(t, got.Children, 1)
		assert.Equal(t, sub.ID, got.Children[0])
		assert.Equal(t, parent.ID, sub.ParentID)
		assert.Equal(t, 1, sub.Level)
		assert.Len(t, snap.Roots(), 1, "subtask must not become a root")
	})

	t.Run("nested subtasks track depth", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})

		c := mustAdd(t, tree, Draft{Title: "C", ParentID: b.ID})

		assert.Equal(t, 2, c.Level)
		assert.Equal(t, []Task{c}, tree.Snapshot().Children(b.ID))
	})

	t.Run("order follows insertion", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})
		c := mustAdd(t, tree, Draft{Title: "C"})

		assert.Equal(t, []int{0, 1, 2}, []int{a.Order, b.Order, c.Order})
	})

	t.Run("missing parent", func(t *testing.T) {
		tree := newTestTree(t)
		before := tree.Snapshot()

		_, err := tree.Add(Draft{Title: "Orphan", Priority: PriorityLow, ParentID: "nope"})

		require.ErrorIs(t, err, ErrParentNotFound)
		assert.Same(t, before, tree.Snapshot(), "failed add must not publish a snapshot")
	})

	t.Run("invalid draft", func(t *testing.T) {
		tree := newTestTree(t)

		_, err := tree.Add(Draft{Title: "   ", Priority: "urgent"})

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 2)
		assert.Equal(t, 0, tree.Snapshot().Len())
	})

	t.Run("colliding ids are regenerated", func(t *testing.T) {
		tree := newTestTree(t)
		ids := []string{"dup", "dup", "other"}
		tree.newID = func() string {
			id := ids[0]
			ids = ids[1:]
			return id
		}

		first := mustAdd(t, tree, Draft{Title: "A"})
		second := mustAdd(t, tree, Draft{Title: "B"})

		assert.Equal(t, "dup", first.ID)
		assert.Equal(t, "other", second.ID)
	})
}

func TestTree_Add_ParentOwnsExactlyOnce(t *testing.T) {
	tree := newTestTree(t)
	a := mustAdd(t, tree, Draft{Title: "A"})
	b := mustAdd(t, tree, Draft{Title: "B"})
	mustAdd(t, tree, Draft{Title: "A1", ParentID: a.ID})

	sub := mustAdd(t, tree, Draft{Title: "B1", ParentID: b.ID})

	owners := 0
	for _, task := range tree.Snapshot().All() {
		for _, child := range task.Children {
			if child == sub.ID {
				owners++
				assert.Equal(t, b.ID, task.ID)
			}
		}
	}
	assert.Equal(t, 1, owners)
}

func TestTree_Edit(t *testing.T) {
	t.Run("merges patch and preserves structure", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A", Tags: []string{"x"}})
		child := mustAdd(t, tree, Draft{Title: "A1", ParentID: a.ID})

		title := "Renamed"
		prio := PriorityHigh
		edited, err := tree.Edit(a.ID, Patch{Title: &title, Priority: &prio})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", edited.Title)
		assert.Equal(t, PriorityHigh, edited.Priority)
		assert.Equal(t, []string{"x"}, edited.Tags)
		assert.Equal(t, a.ID, edited.ID)
		assert.Equal(t, []string{child.ID}, edited.Children)
		assert.Equal(t, a.Order, edited.Order)
	})

	t.Run("trims title like add", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "  A  "})
		require.Equal(t, "A", a.Title)

		title := "  B  "
		edited, err := tree.Edit(a.ID, Patch{Title: &title})
		require.NoError(t, err)

		assert.Equal(t, "B", edited.Title)
		got, _ := tree.Snapshot().Get(a.ID)
		assert.Equal(t, "B", got.Title)
	})

	t.Run("finds nested tasks", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})
		c := mustAdd(t, tree, Draft{Title: "C", ParentID: b.ID})

		desc := "deep"
		edited, err := tree.Edit(c.ID, Patch{Description: &desc})
		require.NoError(t, err)

		assert.Equal(t, "deep", edited.Description)
		assert.Equal(t, b.ID, edited.ParentID)
		assert.Equal(t, 2, edited.Level)
	})

	t.Run("patch from draft replaces editable fields", func(t *testing.T) {
		tree := newTestTree(t)
		due := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		a := mustAdd(t, tree, Draft{Title: "A", DueDate: &due, Tags: []string{"old"}, Category: "work"})

		edited, err := tree.Edit(a.ID, PatchFromDraft(Draft{
			Title:    "B",
			Priority: PriorityLow,
			Tags:     []string{"new"},
		}))
		require.NoError(t, err)

		assert.Equal(t, "B", edited.Title)
		assert.Nil(t, edited.DueDate, "empty draft due date clears the deadline")
		assert.Equal(t, []string{"new"}, edited.Tags)
		assert.Empty(t, edited.Category)
		assert.Equal(t, StatusTodo, edited.Status, "form edits do not touch status")
	})

	t.Run("unknown id", func(t *testing.T) {
		tree := newTestTree(t)

		_, err := tree.Edit("missing", StatusPatch(StatusCompleted))

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid status", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})

		_, err := tree.Edit(a.ID, StatusPatch("done"))

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Equal(t, "status", fieldErrs[0].Field)
	})

	t.Run("old snapshots are unchanged", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A", Tags: []string{"x"}})
		before := tree.Snapshot()

		tags := []string{"y"}
		_, err := tree.Edit(a.ID, Patch{Tags: &tags})
		require.NoError(t, err)

		old, _ := before.Get(a.ID)
		assert.Equal(t, []string{"x"}, old.Tags)
		assert.NotSame(t, before, tree.Snapshot())
		assert.Equal(t, before.Version()+1, tree.Snapshot().Version())
	})
}

func TestTree_Toggle(t *testing.T) {
	t.Run("todo round trip", func(t *testing.T) {
		tree := newTestTree(t)
		mustAdd(t, tree, Draft{Title: "A", Priority: PriorityHigh})

		first, err := tree.Toggle("1")
		require.NoError(t, err)
		assert.Equal(t, StatusCompleted, first.Status)

		second, err := tree.Toggle("1")
		require.NoError(t, err)
		assert.Equal(t, StatusTodo, second.Status)
	})

	t.Run("restores in-progress", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		_, err := tree.Edit(a.ID, StatusPatch(StatusInProgress))
		require.NoError(t, err)

		_, err = tree.Toggle(a.ID)
		require.NoError(t, err)
		restored, err := tree.Toggle(a.ID)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, restored.Status)
	})

	t.Run("completed by edit reopens to prior status", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		_, err := tree.Edit(a.ID, StatusPatch(StatusInProgress))
		require.NoError(t, err)
		_, err = tree.Edit(a.ID, StatusPatch(StatusCompleted))
		require.NoError(t, err)

		reopened, err := tree.Toggle(a.ID)
		require.NoError(t, err)

		assert.Equal(t, StatusInProgress, reopened.Status)
	})

	t.Run("nested task", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})

		toggled, err := tree.Toggle(b.ID)
		require.NoError(t, err)

		assert.True(t, toggled.Completed())
		parent, _ := tree.Snapshot().Get(a.ID)
		assert.False(t, parent.Completed(), "toggling a child leaves the parent alone")
	})

	t.Run("unknown id", func(t *testing.T) {
		tree := newTestTree(t)

		_, err := tree.Toggle("missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTree_Delete(t *testing.T) {
	t.Run("cascades to descendants", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})
		c := mustAdd(t, tree, Draft{Title: "C", ParentID: b.ID})
		keep := mustAdd(t, tree, Draft{Title: "Keep"})

		removed, err := tree.Delete(a.ID)
		require.NoError(t, err)

		assert.Equal(t, []string{a.ID, b.ID, c.ID}, removed)
		snap := tree.Snapshot()
		assert.Equal(t, 1, snap.Len())
		assert.Equal(t, []Task{keep}, snap.Roots())
	})

	t.Run("removes child from parent", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		b := mustAdd(t, tree, Draft{Title: "B", ParentID: a.ID})
		c := mustAdd(t, tree, Draft{Title: "C", ParentID: a.ID})

		_, err := tree.Delete(b.ID)
		require.NoError(t, err)

		parent, _ := tree.Snapshot().Get(a.ID)
		assert.Equal(t, []string{c.ID}, parent.Children)
	})

	t.Run("unknown id", func(t *testing.T) {
		tree := newTestTree(t)

		_, err := tree.Delete("missing")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestTree_Move(t *testing.T) {
	rootTitles := func(tree *Tree) []string {
		var titles []string
		for _, r := range tree.Snapshot().Roots() {
			titles = append(titles, r.Title)
		}
		return titles
	}

	t.Run("reorders roots", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		mustAdd(t, tree, Draft{Title: "B"})
		mustAdd(t, tree, Draft{Title: "C"})

		require.NoError(t, tree.Move(a.ID, 2))
		assert.Equal(t, []string{"B", "C", "A"}, rootTitles(tree))

		require.NoError(t, tree.Move(a.ID, -1))
		assert.Equal(t, []string{"B", "A", "C"}, rootTitles(tree))
	})

	t.Run("clamps at edges", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		mustAdd(t, tree, Draft{Title: "B"})
		before := tree.Snapshot()

		require.NoError(t, tree.Move(a.ID, -5))

		assert.Same(t, before, tree.Snapshot())
	})

	t.Run("reorders only siblings", func(t *testing.T) {
		tree := newTestTree(t)
		a := mustAdd(t, tree, Draft{Title: "A"})
		a1 := mustAdd(t, tree, Draft{Title: "A1", ParentID: a.ID})
		a2 := mustAdd(t, tree, Draft{Title: "A2", ParentID: a.ID})
		mustAdd(t, tree, Draft{Title: "B"})

		require.NoError(t, tree.Move(a2.ID, -1))

		parent, _ := tree.Snapshot().Get(a.ID)
		assert.Equal(t, []string{a2.ID, a1.ID}, parent.Children)
		assert.Equal(t, []string{"A", "B"}, rootTitles(tree))
	})

	t.Run("unknown id", func(t *testing.T) {
		tree := newTestTree(t)

		assert.ErrorIs(t, tree.Move("missing", 1), ErrNotFound)
	})
}

func TestTree_IDsStayUnique(t *testing.T) {
	tree := NewTree()
	var roots []string

	for i := range 50 {
		d := Draft{Title: fmt.Sprintf("task %d", i), Priority: PriorityLow}
		if len(roots) > 0 && i%3 == 0 {
			d.ParentID = roots[i%len(roots)]
		}
		created, err := tree.Add(d)
		require.NoError(t, err)
		if created.IsRoot() {
			roots = append(roots, created.ID)
		}
		if i%7 == 0 {
			title := fmt.Sprintf("edited %d", i)
			_, err := tree.Edit(created.ID, Patch{Title: &title})
			require.NoError(t, err)
		}
		if i%11 == 10 {
			_, err := tree.Delete(created.ID)
			require.NoError(t, err)
			if created.IsRoot() {
				roots = roots[:len(roots)-1]
			}
		}
	}

	seen := map[string]bool{}
	all := tree.Snapshot().All()
	for _, task := range all {
		assert.False(t, seen[task.ID], "duplicate id %s", task.ID)
		seen[task.ID] = true
	}
	assert.Len(t, all, tree.Snapshot().Len(), "every task is reachable from a root")
}

func TestSnapshot_Walk(t *testing.T) {
	tree := newTestTree(t)
	a := mustAdd(t, tree, Draft{Title: "A"})
	mustAdd(t, tree, Draft{Title: "A1", ParentID: a.ID})
	a2 := mustAdd(t, tree, Draft{Title: "A2", ParentID: a.ID})
	mustAdd(t, tree, Draft{Title: "A2a", ParentID: a2.ID})
	mustAdd(t, tree, Draft{Title: "B"})

	snap := tree.Snapshot()

	t.Run("pre-order with depth", func(t *testing.T) {
		var visits []string
		snap.Walk(snap.Roots(), func(task Task, depth int) bool {
			visits = append(visits, fmt.Sprintf("%s@%d", task.Title, depth))
			return true
		})

		assert.Equal(t, []string{"A@0", "A1@1", "A2@1", "A2a@2", "B@0"}, visits)
	})

	t.Run("skips subtree", func(t *testing.T) {
		var visits []string
		snap.Walk(snap.Roots(), func(task Task, _ int) bool {
			visits = append(visits, task.Title)
			return task.ID != a2.ID
		})

		assert.Equal(t, []string{"A", "A1", "A2", "B"}, visits)
	})
}

func TestSnapshot_GetReturnsCopy(t *testing.T) {
	tree := newTestTree(t)
	a := mustAdd(t, tree, Draft{Title: "A", Tags: []string{"x"}})

	got, _ := tree.Snapshot().Get(a.ID)
	got.Tags[0] = "mutated"

	again, _ := tree.Snapshot().Get(a.ID)
	assert.Equal(t, []string{"x"}, again.Tags)
}
