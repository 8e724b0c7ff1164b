package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alnah/go-md2sn/internal/fileutil"
)

// stdinArg and stdoutArg name the standard streams on the command line.
const (
	stdinArg  = "-"
	stdoutArg = "-"
)

// previewSuffix replaces the source extension for --preview output.
const previewSuffix = ".preview.html"

// Sentinel errors for file discovery.
var (
	ErrInvalidExtension   = errors.New("file must have .md or .markdown extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrInvalidPattern     = errors.New("invalid exclude pattern")
	ErrStdoutMultiple     = errors.New("cannot write several files to stdout")
)

// FileToConvert represents a single file to process.
// An empty OutputPath means stdout; InputPath stdinArg means stdin.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoveryOptions controls how inputs map to outputs.
type discoveryOptions struct {
	outputDir string   // file, directory, stdoutArg, or "" for next to source
	extension string   // output extension, with leading dot
	excludes  []string // doublestar patterns, relative to the input directory
}

// validatePatterns rejects malformed exclude globs before any file is read.
func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return fmt.Errorf("%w: %q", ErrInvalidPattern, p)
		}
	}
	return nil
}

// discoverFiles finds all markdown files to convert.
func discoverFiles(inputPath string, opts discoveryOptions) ([]FileToConvert, error) {
	if inputPath == stdinArg {
		out := opts.outputDir
		if out == stdoutArg {
			out = ""
		}
		return []FileToConvert{{InputPath: stdinArg, OutputPath: out}}, nil
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, "", opts)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !fileutil.IsMarkdown(path) {
			return nil
		}
		if excluded(inputPath, path, opts.excludes) {
			return nil
		}
		outPath := resolveOutputPath(path, inputPath, opts)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(files) > 1 && opts.outputDir == stdoutArg {
		return nil, fmt.Errorf("%w: %d files found in %s", ErrStdoutMultiple, len(files), inputPath)
	}
	return files, nil
}

// excluded reports whether path, relative to root, matches any pattern.
// Patterns match either the relative path or the base name.
func excluded(root, path string, patterns []string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	base := filepath.Base(path)

	for _, p := range patterns {
		p = filepath.ToSlash(p)
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

// resolveOutputPath determines the output path for a markdown file.
// baseInputDir is set when walking a directory so its layout is mirrored.
func resolveOutputPath(inputPath, baseInputDir string, opts discoveryOptions) string {
	outputDir := opts.outputDir
	if outputDir == stdoutArg {
		return ""
	}

	name := fileutil.ReplaceExtension(filepath.Base(inputPath), opts.extension)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), name)
	}

	if baseInputDir == "" && strings.HasSuffix(outputDir, opts.extension) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			return filepath.Join(outputDir, filepath.Dir(relPath), name)
		}
	}

	return filepath.Join(outputDir, name)
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// previewPath returns where --preview writes the HTML for f.
// Stdin input with stdout output has no preview location.
func previewPath(f FileToConvert) string {
	switch {
	case f.OutputPath != "":
		return fileutil.ReplaceExtension(f.OutputPath, previewSuffix)
	case f.InputPath != stdinArg:
		return fileutil.ReplaceExtension(f.InputPath, previewSuffix)
	default:
		return ""
	}
}
