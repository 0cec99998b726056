package tuitest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[1mbold\x1b[0m   \nplain  \n\n"

	assert.Equal(t, "bold\nplain", StripANSI(in))
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "a", KeyPress('a').String())
	assert.Equal(t, "enter", KeyEnter().String())
	assert.Equal(t, "esc", KeyEsc().String())
	assert.Equal(t, "tab", KeyTab().String())
	assert.Equal(t, " ", KeySpace().String())

	msgs := Type("hi")
	assert.Len(t, msgs, 2)
	assert.Equal(t, "i", msgs[1].(tea.KeyMsg).String())
}
