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
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/insha2472/english-to-kannada-translator/internal/store"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Manage the user dictionary",
	Long: `Add, list, and delete user dictionary entries.

User entries extend the built-in offline dictionary used when the remote
service is unreachable. They override built-in entries with the same term —
useful for proper nouns and vocabulary the built-in table lacks.`,
}

var dictAddCmd = &cobra.Command{
	Use:   "add <english-term> <kannada-term>",
	Short: "Add or update a user dictionary entry",
	Long: `Add a dictionary entry mapping an English term to a Kannada term.
Terms are matched case-insensitively.

Example:
  entokn dict add "Bengaluru" "ಬೆಂಗಳೂರು"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.AddDictionaryEntry(context.Background(), args[0], args[1]); err != nil {
			return fmt.Errorf("failed to add dictionary entry: %w", err)
		}
		fmt.Printf("Added: %q → %q\n", args[0], args[1])
		return nil
	},
}

var dictListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all user dictionary entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		entries, err := db.ListDictionaryEntries(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list dictionary: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("User dictionary is empty.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tENGLISH\tKANNADA")
		for _, e := range entries {
			fmt.Fprintf(w, "%s\t%s\t%s\n", e.ID, e.SourceTerm, e.TargetTerm)
		}
		return w.Flush()
	},
}

var dictDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a user dictionary entry by ID",
	Long: `Delete a user dictionary entry by its ID (shown in "entokn dict list").

Example:
  entokn dict delete ud_1234567890123456789`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := store.New(viper.GetString("db"))
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		defer db.Close()

		if err := db.DeleteDictionaryEntry(context.Background(), args[0]); err != nil {
			return fmt.Errorf("failed to delete dictionary entry: %w", err)
		}
		fmt.Printf("Deleted dictionary entry: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dictCmd)

	dictCmd.AddCommand(dictAddCmd)
	dictCmd.AddCommand(dictListCmd)
	dictCmd.AddCommand(dictDeleteCmd)
}
