package flags

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DOTENV_TEST_TOKEN=from-file\nDOTENV_TEST_SET=from-file\n"), 0600))

	t.Setenv("DOTENV_TEST_SET", "from-env")
	t.Cleanup(func() { os.Unsetenv("DOTENV_TEST_TOKEN") })

	require.NoError(t, LoadDotEnv(envFile, filepath.Join(dir, "missing.env")))

	assert.Equal(t, "from-file", os.Getenv("DOTENV_TEST_TOKEN"))
	// Existing variables win over the file
	assert.Equal(t, "from-env", os.Getenv("DOTENV_TEST_SET"))
}
