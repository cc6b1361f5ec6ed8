package rpmfile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yeager/rpm-policy-checker/internal/adapters/outbound/rpmfile"
)

func TestRead_MissingFile(t *testing.T) {
	_, err := rpmfile.Read(filepath.Join(t.TempDir(), "gone.rpm"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestRead_NotAnRPM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.rpm")
	require.NoError(t, os.WriteFile(path, []byte("certainly not an rpm"), 0o644))

	_, err := rpmfile.Read(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading RPM header")
}
