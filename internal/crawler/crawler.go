package crawler

import (
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"csdiag/internal/extractor"
	"csdiag/internal/syntax"
)

// Crawler scans a directory tree for C# source files.
type Crawler struct {
	extractor *extractor.Extractor
	ignored   []string
}

// NewCrawler creates a new crawler instance. extraIgnores adds directory
// names to the built-in skip list.
func NewCrawler(ext *extractor.Extractor, extraIgnores ...string) *Crawler {
	ignored := []string{".git", "bin", "obj", "packages", "node_modules"}
	return &Crawler{
		extractor: ext,
		ignored:   append(ignored, extraIgnores...),
	}
}

// ScanProject walks the root directory and extracts declarations from every
// .cs file, streaming per-file results through the callback. Files that fail
// to parse are logged and skipped rather than failing the whole scan.
func (c *Crawler) ScanProject(root string, onFile func(path string, decls []*syntax.Declaration)) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			for _, ign := range c.ignored {
				if d.Name() == ign {
					return filepath.SkipDir
				}
			}
			return nil
		}

		if !strings.HasSuffix(d.Name(), ".cs") {
			return nil
		}

		decls, err := c.extractor.ExtractFromFile(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			return nil
		}

		onFile(path, decls)
		return nil
	})
}
