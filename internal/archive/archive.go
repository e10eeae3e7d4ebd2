// Package archive packages a materialized project directory into a single
// zip artifact.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skippedDirs are dependency directories never included in an archive.
var skippedDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
}

// Build walks projectDir recursively and writes <projectDir>.zip next to it,
// skipping dotfiles and vendor/dependency subdirectories. It returns the
// path of the created archive.
func Build(projectDir string) (string, error) {
	info, err := os.Stat(projectDir)
	if err != nil {
		return "", fmt.Errorf("reading project directory: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", projectDir)
	}

	outPath := filepath.Clean(projectDir) + ".zip"
	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating archive: %w", err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	if err := addTree(zw, projectDir); err != nil {
		zw.Close()
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("finalizing archive: %w", err)
	}
	return outPath, nil
}

func addTree(zw *zip.Writer, root string) error {
	return filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if p == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		w, err := zw.Create(filepath.ToSlash(rel))
		if err != nil {
			return fmt.Errorf("adding %s to archive: %w", rel, err)
		}
		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("reading %s: %w", rel, err)
		}
		defer f.Close()
		if _, err := io.Copy(w, f); err != nil {
			return fmt.Errorf("writing %s to archive: %w", rel, err)
		}
		return nil
	})
}
