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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insha2472/english-to-kannada-translator/internal/detector"
)

var (
	translateInputFile  string
	translateOutputFile string
	translateQuiet      bool
)

var translateCmd = &cobra.Command{
	Use:   "translate [text...]",
	Short: "Translate English text to Kannada once",
	Long: `Translate the given English text (or the contents of a file) to Kannada
and print the result.

Examples:
  entokn translate good morning
  entokn translate -i letter.txt -o letter.kn.txt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var text string
		switch {
		case translateInputFile != "":
			data, err := os.ReadFile(translateInputFile)
			if err != nil {
				return fmt.Errorf("failed to read input file: %w", err)
			}
			text = strings.TrimSpace(string(data))
		case len(args) > 0:
			text = strings.TrimSpace(strings.Join(args, " "))
		default:
			return fmt.Errorf("nothing to translate: pass text or use --input")
		}

		if text == "" {
			return fmt.Errorf("input is empty")
		}

		if !translateQuiet {
			if det := detector.New(); !det.LooksEnglish(text) {
				fmt.Fprintf(os.Stderr, "Warning: input does not look like English\n")
			}
		}

		ctx := context.Background()

		d, db, err := newDispatcher(ctx)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		res := d.Translate(ctx, text)

		if translateOutputFile != "" {
			if dir := filepath.Dir(translateOutputFile); dir != "." {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("failed to create output directory: %w", err)
				}
			}
			if err := os.WriteFile(translateOutputFile, []byte(res.Text+"\n"), 0644); err != nil {
				return fmt.Errorf("failed to write output file: %w", err)
			}
			fmt.Fprintf(os.Stderr, "Translated via %s\n", res.Source)
			return nil
		}

		fmt.Println(res.Text)
		if !translateQuiet {
			fmt.Fprintf(os.Stderr, "(via %s)\n", res.Source)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().StringVarP(&translateInputFile, "input", "i", "", "Read text from file instead of arguments")
	translateCmd.Flags().StringVarP(&translateOutputFile, "output", "o", "", "Write translation to file instead of stdout")
	translateCmd.Flags().BoolVarP(&translateQuiet, "quiet", "q", false, "Print only the translation")
}
