package task

import (
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraft_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, Draft{Title: "Write report", Priority: PriorityHigh}.Validate())
	})

	t.Run("blank title", func(t *testing.T) {
		err := Draft{Title: " \t ", Priority: PriorityLow}.Validate()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, "title", fieldErrs[0].Field)
		assert.ErrorIs(t, fieldErrs[0].Err, ErrEmptyTitle)
	})

	t.Run("unknown priority", func(t *testing.T) {
		err := Draft{Title: "A", Priority: "urgent"}.Validate()

		var fieldErrs criterio.FieldErrors
		require.ErrorAs(t, err, &fieldErrs)
		assert.Len(t, fieldErrs, 1)
		assert.Equal(t, "priority", fieldErrs[0].Field)
		assert.ErrorIs(t, fieldErrs[0].Err, ErrInvalidPriority)
	})
}

func TestPatch_Validate(t *testing.T) {
	empty := ""
	bad := Priority("urgent")

	assert.NoError(t, Patch{}.Validate())
	assert.NoError(t, StatusPatch(StatusInProgress).Validate())

	err := Patch{Title: &empty, Priority: &bad}.Validate()

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Len(t, fieldErrs, 2)
}
