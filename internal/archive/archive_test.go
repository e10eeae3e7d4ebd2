package archive

import (
	"archive/zip"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func archiveNames(t *testing.T, zipPath string) []string {
	t.Helper()
	r, err := zip.OpenReader(zipPath)
	require.NoError(t, err)
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

func TestBuild(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	project := filepath.Join(dir, "soil-monitor")
	writeFile(t, filepath.Join(project, "README.md"), "# readme")
	writeFile(t, filepath.Join(project, "code", "main.ino"), "void loop() {}")
	writeFile(t, filepath.Join(project, "docs", "overview.md"), "overview")

	zipPath, err := Build(project)
	require.NoError(t, err)
	assert.Equal(t, project+".zip", zipPath)

	assert.Equal(t, []string{
		"README.md",
		"code/main.ino",
		"docs/overview.md",
	}, archiveNames(t, zipPath))
}

func TestBuild_SkipsDotfilesAndVendor(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	project := filepath.Join(dir, "proj")
	writeFile(t, filepath.Join(project, "keep.txt"), "x")
	writeFile(t, filepath.Join(project, ".env"), "SECRET=1")
	writeFile(t, filepath.Join(project, ".git", "HEAD"), "ref")
	writeFile(t, filepath.Join(project, "vendor", "dep.go"), "package dep")
	writeFile(t, filepath.Join(project, "node_modules", "m", "index.js"), "x")

	zipPath, err := Build(project)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, archiveNames(t, zipPath))
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		_, err := Build(filepath.Join(t.TempDir(), "nope"))
		assert.Error(t, err)
	})

	t.Run("path is a file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "plain.txt")
		writeFile(t, file, "x")
		_, err := Build(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a directory")
	})
}

func TestBuild_ArchiveSitsNextToProject(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	project := filepath.Join(dir, "proj")
	writeFile(t, filepath.Join(project, "a.txt"), "x")

	zipPath, err := Build(project)
	require.NoError(t, err)

	_, err = os.Stat(zipPath)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(zipPath))
}
