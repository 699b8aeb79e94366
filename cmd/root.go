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
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "0.3.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "entokn",
	Short: "English → Kannada translator",
	Long: `A translator from English to Kannada with an offline dictionary fallback.

Text is sent to a remote translation service; when that fails (offline,
blocked, malformed response) a built-in dictionary translates word by word,
preserving punctuation and passing unknown words through unchanged.

Front ends: "repl" for a terminal loop, "serve" for an HTTP server,
"translate" for one-shot use, "csv" for batch files.`,
	Version: version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $HOME/.entokn.yaml)")
	rootCmd.PersistentFlags().String("db", "./data/entokn.db", "Database path for translation memory and the user dictionary")
	rootCmd.PersistentFlags().Bool("no-cache", false, "Disable translation memory and request history")
	rootCmd.PersistentFlags().String("service", "googleweb", "Remote translation service (googleweb, google, mymemory)")
	rootCmd.PersistentFlags().StringP("credentials", "c", "", "Google Cloud credentials file (service \"google\" only)")
	rootCmd.PersistentFlags().String("mymemory-email", "", "MyMemory email for higher limits (service \"mymemory\" only)")
	rootCmd.PersistentFlags().Duration("timeout", 6*time.Second, "Timeout per remote call")
	rootCmd.PersistentFlags().Int("max-retries", 2, "Total attempts per remote call including the first (1 = no retries)")
	rootCmd.PersistentFlags().Int("max-chunk", 500, "Split inputs longer than this many characters (0 = never split)")
	rootCmd.PersistentFlags().Float64("fuzzy", 0, "Fuzzy translation memory match threshold, 0–1 (0 = exact only)")

	for _, name := range []string{"db", "no-cache", "service", "credentials", "mymemory-email", "timeout", "max-retries", "max-chunk", "fuzzy"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initConfig reads an optional config file and ENTOKN_* environment
// variables; flags take precedence over both.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.SetConfigType("yaml")
			viper.SetConfigName(".entokn")
		}
	}

	viper.SetEnvPrefix("ENTOKN")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
