package task

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "empty", in: "", want: []string{}},
		{name: "only separators", in: " , ,, ", want: []string{}},
		{name: "single", in: "work", want: []string{"work"}},
		{name: "trims and drops empties", in: " work , ,urgent ", want: []string{"work", "urgent"}},
		{name: "dedups keeping first", in: "a, b, a, c, b", want: []string{"a", "b", "c"}},
		{name: "inner spaces kept", in: "deep work, x", want: []string{"deep work", "x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTags(tt.in))
		})
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "", FormatTags(nil))
	assert.Equal(t, "work, urgent", FormatTags([]string{"work", "urgent"}))
	assert.Equal(t, []string{"work", "urgent"}, ParseTags(FormatTags([]string{"work", "urgent"})))
}
