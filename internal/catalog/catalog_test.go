package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	c, ok := Get("acne")
	require.True(t, ok)
	assert.Equal(t, "Acne", c.Name)
	assert.NotEmpty(t, c.Description)

	_, ok = Get("no-such-condition")
	assert.False(t, ok)
}

func TestAll_UniqueIDsAndCopy(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	seen := make(map[string]struct{}, len(all))
	for _, c := range all {
		_, dup := seen[c.ID]
		assert.False(t, dup, "duplicate id %q", c.ID)
		seen[c.ID] = struct{}{}
	}

	// mutating the returned slice must not leak into the directory
	all[0].Name = "changed"
	again, _ := Get(all[0].ID)
	assert.NotEqual(t, "changed", again.Name)
}
