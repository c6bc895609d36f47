// Package cli drives a batch conversion over a directory of catalog XML files.
package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lenscatalog/xml2xlsx/internal/domain"
	"github.com/lenscatalog/xml2xlsx/internal/usecase"
)

// Summary reports the outcome of one batch run
type Summary struct {
	Processed int // files with a .xml extension that were attempted
	Saved     int // output workbooks written
	Skipped   int // rejected or empty documents
}

// RunnerConfig holds the directory layout for a batch run
type RunnerConfig struct {
	InputDir    string
	OutputDir   string
	SkipLogPath string
}

// Runner enumerates the input directory and converts each XML file into a
// workbook, strictly one file at a time. Per-file failures never stop the
// batch; only a cancelled context or an unwritable skip log does.
type Runner struct {
	converter   *usecase.Converter
	writer      domain.TableWriter
	skips       domain.SkipLogger
	inputDir    string
	outputDir   string
	skipLogPath string
}

// NewRunner creates a runner with its collaborators
func NewRunner(converter *usecase.Converter, writer domain.TableWriter, skips domain.SkipLogger, config RunnerConfig) *Runner {
	return &Runner{
		converter:   converter,
		writer:      writer,
		skips:       skips,
		inputDir:    config.InputDir,
		outputDir:   config.OutputDir,
		skipLogPath: config.SkipLogPath,
	}
}

// Run processes every .xml file (case-insensitive extension, non-recursive)
// in the input directory and writes one .xlsx per converted file into the
// output directory. Both the output directory and the skip log's parent are
// created before processing begins.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if err := os.MkdirAll(r.outputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("create output directory: %w", err)
	}
	if dir := filepath.Dir(r.skipLogPath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("create skip log directory: %w", err)
		}
	}

	entries, err := os.ReadDir(r.inputDir)
	if err != nil {
		return Summary{}, fmt.Errorf("read input directory: %w", err)
	}

	var summary Summary
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".xml") {
			continue
		}

		filename := entry.Name()
		summary.Processed++
		log.Printf("Processing: %s", filename)

		table, err := r.converter.Convert(filepath.Join(r.inputDir, filename))
		if err != nil {
			if errors.Is(err, domain.ErrEmptyDocument) {
				log.Printf("  No <upc> elements found in %s", filename)
			} else if !domain.IsRejection(err) {
				// Only an unwritable skip log escapes unclassified
				return summary, err
			}
			summary.Skipped++
			log.Printf("  Skipped")
			continue
		}

		outName := strings.TrimSuffix(filename, filepath.Ext(filename)) + ".xlsx"
		outPath := filepath.Join(r.outputDir, outName)
		if err := r.writer.Write(table, outPath); err != nil {
			reason := fmt.Sprintf("Excel write failed: %v", err)
			if logErr := r.skips.Log(filename, reason); logErr != nil {
				return summary, fmt.Errorf("skip log write failed: %w", logErr)
			}
			summary.Skipped++
			log.Printf("  Skipped")
			continue
		}

		summary.Saved++
		log.Printf("  Saved -> %s  (%d rows, %d columns)", outName, table.RowCount(), table.ColumnCount())
	}

	log.Printf("Processing complete.")
	if _, err := os.Stat(r.skipLogPath); err == nil {
		log.Printf("Check %s for any skipped/large files.", r.skipLogPath)
	}
	return summary, nil
}
