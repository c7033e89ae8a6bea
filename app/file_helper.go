// Package app orchestrates esgen's use cases (render a single file, batch
// render a directory) on top of service, sitting between the cmd layer
// and the service layer.
package app

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// FileHelper discovers AST JSON input files on disk: a gitignore-aware
// walk plus include/exclude pattern matching, targeting esgen's
// *.ast.json convention instead of JS/TS source extensions.
type FileHelper struct{}

// NewFileHelper creates a FileHelper.
func NewFileHelper() *FileHelper { return &FileHelper{} }

// CollectASTFiles collects AST JSON files from paths, recursing into
// directories when recursive is true. excludePatterns are glob-matched
// against each file's base name and substring-matched against its full
// path; a directory matching an exclude pattern is skipped entirely.
func (h *FileHelper) CollectASTFiles(paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			if h.IsASTFile(path) && !h.isExcluded(path, excludePatterns) {
				files = append(files, path)
			}
			continue
		}

		if recursive {
			gi := loadGitIgnore(path)

			walkErr := filepath.Walk(path, func(filePath string, info os.FileInfo, err error) error {
				if err != nil {
					return err
				}

				if gi != nil {
					relPath, relErr := filepath.Rel(path, filePath)
					if relErr == nil && gi.MatchesPath(relPath) {
						if info.IsDir() {
							return filepath.SkipDir
						}
						return nil
					}
				}

				if info.IsDir() {
					dirName := filepath.Base(filePath)
					for _, pattern := range excludePatterns {
						if pattern == dirName {
							return filepath.SkipDir
						}
						if matched, err := filepath.Match(pattern, dirName); err == nil && matched {
							return filepath.SkipDir
						}
					}
					return nil
				}

				if h.IsASTFile(filePath) && !h.isExcluded(filePath, excludePatterns) {
					files = append(files, filePath)
				}
				return nil
			})
			if walkErr != nil {
				return nil, walkErr
			}
		} else {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if !entry.IsDir() {
					filePath := filepath.Join(path, entry.Name())
					if h.IsASTFile(filePath) && !h.isExcluded(filePath, excludePatterns) {
						files = append(files, filePath)
					}
				}
			}
		}
	}

	return files, nil
}

// IsASTFile reports whether path looks like an AST JSON input, i.e. its
// name ends in .ast.json.
func (h *FileHelper) IsASTFile(path string) bool {
	return strings.HasSuffix(strings.ToLower(path), ".ast.json")
}

// FileExists reports whether path exists and is a regular file.
func (h *FileHelper) FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return !info.IsDir(), nil
}

// ReadFile reads file content.
func (h *FileHelper) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (h *FileHelper) isExcluded(path string, excludePatterns []string) bool {
	baseName := filepath.Base(path)
	for _, pattern := range excludePatterns {
		if matched, err := filepath.Match(pattern, baseName); err == nil && matched {
			return true
		}
		if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// loadGitIgnore loads a .gitignore file from root, returning nil if it
// doesn't exist or can't be read.
func loadGitIgnore(root string) *ignore.GitIgnore {
	gitignorePath := filepath.Join(root, ".gitignore")
	gi, err := ignore.CompileIgnoreFile(gitignorePath)
	if err != nil {
		return nil
	}
	return gi
}

// ResolveFilePaths returns paths directly when every entry is already an
// existing file, or collects AST files from them (treating directory
// entries as roots to walk) otherwise.
func ResolveFilePaths(fileHelper *FileHelper, paths []string, recursive bool, excludePatterns []string) ([]string, error) {
	allFiles := true
	for _, path := range paths {
		exists, err := fileHelper.FileExists(path)
		if err != nil || !exists {
			allFiles = false
			break
		}
	}
	if allFiles {
		return paths, nil
	}
	return fileHelper.CollectASTFiles(paths, recursive, excludePatterns)
}
