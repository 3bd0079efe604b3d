package filestorage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigCheck(t *testing.T) {
	config := Config{MaxFiles: 3, MaxFileSize: 5 << 20}

	assert.NoError(t, config.Check(0, 1024))
	assert.NoError(t, config.Check(2, 5<<20))

	assert.ErrorIs(t, config.Check(3, 1024), ErrTooManyFiles)
	assert.ErrorIs(t, config.Check(0, 5<<20+1), ErrFileTooLarge)

	// A zero config imposes no limits.
	assert.NoError(t, Config{}.Check(100, 1<<30))
}
