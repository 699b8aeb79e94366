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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/insha2472/english-to-kannada-translator/internal/server"
)

var servePagePath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP translation server",
	Long: `Serve the translator over HTTP.

  GET  /           translator page (HTML)
  POST /           form submission, renders the page with the translation
  POST /translate  {"text": "..."} → {"translation": "...", "source": "..."}

The page is the built-in template unless --page names an HTML template file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		d, db, err := newDispatcher(ctx)
		if err != nil {
			return err
		}
		if db != nil {
			defer db.Close()
		}

		srv := server.New(d, servePagePath)

		addr := fmt.Sprintf(":%d", viper.GetInt("port"))
		fmt.Fprintf(os.Stderr, "Serving English → Kannada translator on http://localhost%s\n", addr)
		return srv.ListenAndServe(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 8000, "Port to listen on")
	serveCmd.Flags().StringVar(&servePagePath, "page", "", "HTML template file for the translator page")

	if err := viper.BindPFlag("port", serveCmd.Flags().Lookup("port")); err != nil {
		panic(err)
	}
}
