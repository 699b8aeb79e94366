/*
Copyright © 2025 Insha

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/insha2472/english-to-kannada-translator/internal"
	"github.com/insha2472/english-to-kannada-translator/internal/dispatcher"
)

var (
	csvInputFile  string
	csvOutputFile string
	csvColumns    []int
	csvResume     string
)

var csvCmd = &cobra.Command{
	Use:   "csv",
	Short: "Translate columns of a CSV file to Kannada",
	Long: `Translate one or more columns in a CSV file from English to Kannada.

By default all columns are translated. Use -l to select specific columns
(0-indexed). The flag may be repeated to select multiple columns.

A checkpoint ID is printed at the start of each run. If the job is interrupted,
use --resume with that ID to skip already-translated cells.

Example:
  entokn csv -i phrases.csv -o phrases.kn.csv -l 1
  entokn csv -i phrases.csv -o phrases.kn.csv --resume cp_123456789`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if csvInputFile == csvOutputFile {
			return fmt.Errorf("input file and output file cannot be the same")
		}

		f, err := os.Open(csvInputFile)
		if err != nil {
			return fmt.Errorf("failed to open input CSV: %w", err)
		}
		defer f.Close()

		reader := csv.NewReader(f)
		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to read CSV: %w", err)
		}

		if len(records) == 0 {
			return fmt.Errorf("CSV file is empty")
		}

		ctx := context.Background()

		d, db, err := newDispatcher(ctx)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		// Load or create checkpoint.
		var checkpointID string
		completedCells := make(map[string]string)

		if csvResume != "" {
			if db == nil {
				return fmt.Errorf("--resume requires the database (remove --no-cache)")
			}
			if _, cpErr := db.GetCSVCheckpoint(ctx, csvResume); cpErr != nil {
				return fmt.Errorf("failed to load checkpoint: %w", cpErr)
			}
			checkpointID = csvResume
			cells, cpErr := db.GetCSVCells(ctx, checkpointID)
			if cpErr != nil {
				return fmt.Errorf("failed to load checkpoint cells: %w", cpErr)
			}
			completedCells = cells
			fmt.Fprintf(os.Stderr, "Resuming checkpoint %s (%d cells already done)\n", checkpointID, len(completedCells))
		} else if db != nil {
			checkpointID, err = db.CreateCSVCheckpoint(ctx, csvInputFile, csvOutputFile, internal.SourceLang, internal.TargetLang)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to create checkpoint: %v\n", err)
			} else {
				fmt.Fprintf(os.Stderr, "Checkpoint ID: %s (use --resume %s to resume if interrupted)\n", checkpointID, checkpointID)
			}
		}

		// Determine which columns to translate.
		colSet := make(map[int]bool, len(csvColumns))
		for _, c := range csvColumns {
			colSet[c] = true
		}
		translateAll := len(csvColumns) == 0

		var tally cellTally

		out := make([][]string, len(records))
		for rowIdx, row := range records {
			out[rowIdx] = make([]string, len(row))
			copy(out[rowIdx], row)

			for colIdx, cell := range row {
				if !translateAll && !colSet[colIdx] {
					continue
				}
				if cell == "" {
					continue
				}

				cellKey := fmt.Sprintf("%d:%d", rowIdx, colIdx)

				// Use checkpoint data when resuming.
				if translated, done := completedCells[cellKey]; done {
					out[rowIdx][colIdx] = translated
					continue
				}

				res := d.Translate(ctx, cell)
				out[rowIdx][colIdx] = res.Text
				tally.add(res.Source)

				if db != nil && checkpointID != "" {
					_ = db.SaveCSVCell(ctx, checkpointID, rowIdx, colIdx, res.Text)
				}
			}
		}

		outFile, err := os.Create(csvOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create output CSV: %w", err)
		}
		defer outFile.Close()

		writer := csv.NewWriter(outFile)
		if err := writer.WriteAll(out); err != nil {
			return fmt.Errorf("failed to write output CSV: %w", err)
		}
		writer.Flush()
		if err := writer.Error(); err != nil {
			return fmt.Errorf("failed to flush output CSV: %w", err)
		}

		if db != nil && checkpointID != "" {
			_ = db.CompleteCSVCheckpoint(ctx, checkpointID)
		}

		fmt.Printf("CSV translated successfully: %s\n", csvOutputFile)
		if tally.offline > 0 {
			fmt.Printf("Cells translated offline (dictionary): %d of %d\n", tally.offline, tally.total())
		}
		if tally.cached > 0 {
			fmt.Printf("Cells served from translation memory: %d of %d\n", tally.cached, tally.total())
		}
		return nil
	},
}

// cellTally counts translated cells by the path that produced them.
type cellTally struct {
	remote, offline, cached int
}

func (t *cellTally) add(source string) {
	switch source {
	case dispatcher.SourceOffline:
		t.offline++
	case dispatcher.SourceCache:
		t.cached++
	default:
		t.remote++
	}
}

func (t *cellTally) total() int {
	return t.remote + t.offline + t.cached
}

func init() {
	rootCmd.AddCommand(csvCmd)

	csvCmd.Flags().StringVarP(&csvInputFile, "input", "i", "", "Input CSV file (required)")
	csvCmd.Flags().StringVarP(&csvOutputFile, "output", "o", "", "Output CSV file (required)")
	csvCmd.Flags().IntSliceVarP(&csvColumns, "column", "l", nil, "Column index to translate (0-indexed, repeatable; default: all columns)")
	csvCmd.Flags().StringVar(&csvResume, "resume", "", "Resume from checkpoint ID (printed at start of original run)")

	csvCmd.MarkFlagRequired("input")
	csvCmd.MarkFlagRequired("output")
}
