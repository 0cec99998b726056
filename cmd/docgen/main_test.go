package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	md, err := generate()
	require.NoError(t, err)

	assert.Contains(t, md, "taskboard")
	for _, want := range []string{"ls", "overdue", "watch", "stats", "init", "config", "validate"} {
		assert.Contains(t, md, want)
	}
	assert.Contains(t, md, "--json")
	assert.Contains(t, md, "--hide-completed")
	assert.Contains(t, md, "--log-level")
}
