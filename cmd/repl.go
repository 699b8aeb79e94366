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
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/insha2472/english-to-kannada-translator/internal/detector"
)

var replNoDetect bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive translation loop",
	Long: `Read English sentences from the terminal and print their Kannada
translation, one per line. Type "exit" or "quit" (or press Ctrl-C / Ctrl-D)
to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		d, db, err := newDispatcher(ctx)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		var det *detector.Detector
		if !replNoDetect {
			det = detector.New()
		}

		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("English → Kannada Translator")
		fmt.Println(strings.Repeat("=", 60))
		fmt.Println("Type 'exit' to quit. Paste sentences (max ~500 chars).")

		lines := make(chan string)
		scanErr := make(chan error, 1)
		go func() {
			scanner := bufio.NewScanner(os.Stdin)
			for scanner.Scan() {
				lines <- scanner.Text()
			}
			scanErr <- scanner.Err()
			close(lines)
		}()

		fmt.Print("\nEnglish: ")
		for {
			select {
			case <-ctx.Done():
				fmt.Println("\nGoodbye!")
				return nil
			case line, ok := <-lines:
				if !ok {
					// EOF on stdin.
					fmt.Println("\nGoodbye!")
					return <-scanErr
				}

				english := strings.TrimSpace(line)
				if english == "" {
					fmt.Print("\nEnglish: ")
					continue
				}
				if low := strings.ToLower(english); low == "exit" || low == "quit" {
					fmt.Println("Goodbye!")
					return nil
				}

				if det != nil && !det.LooksEnglish(english) {
					fmt.Fprintf(os.Stderr, "Warning: input does not look like English\n")
				}

				res := d.Translate(ctx, english)
				fmt.Printf("\nKannada: %s\n", res.Text)
				fmt.Print("\nEnglish: ")
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(replCmd)

	replCmd.Flags().BoolVar(&replNoDetect, "no-detect", false, "Skip the non-English input warning")
}
