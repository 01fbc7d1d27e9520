package term

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harunatsu/recname/internal/config"
)

func TestConfigure(t *testing.T) {
	defer Configure(config.ColorNever)

	Configure(config.ColorAlways)
	assert.True(t, Enabled())
	assert.NotEmpty(t, Magenta)

	Configure(config.ColorNever)
	assert.False(t, Enabled())
	assert.Empty(t, Red)
}
