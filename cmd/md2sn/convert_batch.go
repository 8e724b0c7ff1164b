package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	md2sn "github.com/alnah/go-md2sn"
	"github.com/alnah/go-md2sn/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput         = errors.New("no input specified")
	ErrReadMarkdown    = errors.New("failed to read markdown file")
	ErrWriteOutput     = errors.New("failed to write output file")
	ErrCreateOutputDir = errors.New("failed to create output directory")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input md2sn.Input) (*md2sn.ConvertResult, error)
	Preview(ctx context.Context, title, markdown string) (string, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*md2sn.Converter)(nil)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath   string
	OutputPath  string
	PreviewPath string
	Warnings    []md2sn.Warning
	Err         error
	Duration    time.Duration
}

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	options md2sn.Options
	preview bool
	stdin   io.Reader
	stdout  io.Writer
}

// convertBatch converts files with at most workers goroutines. Results are
// returned in the order of files. The converter is shared; it is safe for
// concurrent use.
func convertBatch(ctx context.Context, conv CLIConverter, workers int, files []FileToConvert, params *conversionParams) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, conv, files[idx], params)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, conv CLIConverter, f FileToConvert, params *conversionParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	content, err := readInput(f.InputPath, params.stdin)
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadMarkdown, err))
	}

	convResult, err := conv.Convert(ctx, md2sn.Input{
		Markdown: content,
		Options:  params.options,
	})
	if err != nil {
		return fail(err)
	}
	result.Warnings = convResult.Warnings

	if err := writeOutput(f.OutputPath, convResult.Output, params.stdout); err != nil {
		return fail(err)
	}

	if params.preview {
		if path := previewPath(f); path != "" {
			html, err := conv.Preview(ctx, documentTitle(f.InputPath), content)
			if err != nil {
				return fail(err)
			}
			if err := writeOutput(path, html, params.stdout); err != nil {
				return fail(err)
			}
			result.PreviewPath = path
		}
	}

	result.Duration = time.Since(start)
	return result
}

// readInput reads a source file, or stdin for stdinArg.
func readInput(path string, stdin io.Reader) (string, error) {
	if path == stdinArg {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(path) // #nosec G304 -- discovered path
	return string(data), err
}

// writeOutput writes content to path, or to stdout when path is empty.
// Concurrent stdout writes only happen for a single file.
func writeOutput(path, content string, stdout io.Writer) error {
	if path == "" {
		if _, err := io.WriteString(stdout, content); err != nil {
			return fmt.Errorf("%w: %v", ErrWriteOutput, err)
		}
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), dirPermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrCreateOutputDir, err)
	}
	// #nosec G306 -- journal markup is meant to be readable
	if err := fileutil.WriteFileAtomic(path, []byte(content), filePermissions); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteOutput, err)
	}
	return nil
}

// documentTitle names a preview page after its source file.
func documentTitle(path string) string {
	if path == stdinArg {
		return "stdin"
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
	Warnings  int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
		summary.Warnings += len(r.Warnings)
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers.
// Progress goes to stderr when the markup itself is written to stdout.
func printResultsWithWriter(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	summary := countResults(results)

	progress := env.Stdout
	for _, r := range results {
		if r.OutputPath == "" {
			progress = env.Stderr
		}
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			continue
		}

		if quiet {
			continue
		}

		for _, w := range r.Warnings {
			fmt.Fprintf(env.Stderr, "warning: %s:%d: %s\n", r.InputPath, w.Line, w.Message)
		}

		if r.OutputPath == "" {
			if verbose {
				fmt.Fprintf(progress, "%s -> stdout (%v)\n", r.InputPath, r.Duration.Round(time.Millisecond))
			}
		} else if verbose {
			fmt.Fprintf(progress, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(progress, "Created %s\n", r.OutputPath)
		}
		if r.PreviewPath != "" {
			fmt.Fprintf(progress, "Created %s\n", r.PreviewPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(progress, "\n%d succeeded, %d failed, %d warnings\n", summary.Succeeded, summary.Failed, summary.Warnings)
	}

	return summary.Failed
}
