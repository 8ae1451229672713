package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phonebook/internal/domain/contact"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCommands(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})

	path := filepath.Join(dir, "book", "catalog.csv")
	catalog := func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	out, err := execute(t, "--catalog", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog created")
	assert.Equal(t, "", catalog())

	out, err = execute(t, "--catalog", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Catalog already exists")

	_, err = execute(t, "--catalog", path, "add",
		"--last-name", "Doe", "--first-name", "John", "--organization", "Acme",
		"--work-phone", "555-1111", "--cell-phone", "555-2222")
	require.NoError(t, err)
	assert.Equal(t, "Doe;John;;Acme;555-1111;555-2222\n", catalog())

	_, err = execute(t, "--catalog", path, "edit", "1", "--first-name", "Jack")
	require.NoError(t, err)
	assert.Equal(t, "Doe;Jack;;Acme;555-1111;555-2222\n", catalog())

	backup, err := os.ReadFile(path + ".bak")
	require.NoError(t, err)
	assert.Equal(t, "Doe;John;;Acme;555-1111;555-2222\n", string(backup))

	_, err = execute(t, "--catalog", path, "edit", "one", "--first-name", "Jim")
	assert.ErrorIs(t, err, contact.ErrInvalidID)
	assert.Equal(t, "Doe;Jack;;Acme;555-1111;555-2222\n", catalog())
}
