package form

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/taskboard/pkg/tuitest"
)

func TestTextField(t *testing.T) {
	t.Run("creation with default value", func(t *testing.T) {
		f := NewTextField("Name", "enter name", "hello", FieldValidation{})

		assert.Equal(t, "Name", f.Label())
		assert.Equal(t, "hello", f.Value())
		assert.False(t, f.Focused())
	})

	t.Run("focus and blur", func(t *testing.T) {
		f := NewTextField("Name", "", "", FieldValidation{})

		cmd := f.Focus()
		assert.True(t, f.Focused())
		assert.NotNil(t, cmd)

		f.Blur()
		assert.False(t, f.Focused())
	})

	t.Run("update ignored when not focused", func(t *testing.T) {
		f := NewTextField("Name", "", "", FieldValidation{})

		field, cmd := f.Update(tuitest.KeyPress('a'))

		assert.Nil(t, cmd)
		assert.Empty(t, field.Value())
	})

	t.Run("typing when focused", func(t *testing.T) {
		f := NewTextField("Name", "", "", FieldValidation{})
		f.Focus()

		for _, msg := range tuitest.Type("abc") {
			f.Update(msg)
		}

		assert.Equal(t, "abc", f.Value())
	})

	t.Run("validate records message", func(t *testing.T) {
		f := NewTextField("Title", "", "  ", FieldValidation{Required: true})

		assert.Equal(t, "required", f.Validate())
		assert.Equal(t, "required", f.ErrorMessage())
		assert.Contains(t, tuitest.StripANSI(f.View()), "required")
	})

	t.Run("view changes with focus", func(t *testing.T) {
		f := NewTextField("Name", "", "", FieldValidation{})
		unfocused := f.View()

		f.Focus()
		focused := f.View()

		assert.NotEqual(t, unfocused, focused)
		assert.Contains(t, tuitest.StripANSI(focused), focusedMarker+"Name")
		assert.NotContains(t, tuitest.StripANSI(unfocused), focusedMarker)
	})
}
