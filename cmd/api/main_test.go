package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger_KeepsWorkingDirectory(t *testing.T) {
	original, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Chdir(original) })

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))

	configureLogger()

	// DATASET_PATH relativo precisa ser resolvido a partir daqui
	wd, err := os.Getwd()
	require.NoError(t, err)
	assert.Equal(t, dir, wd)
}
