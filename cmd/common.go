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

	"github.com/spf13/viper"

	"github.com/insha2472/english-to-kannada-translator/internal/dispatcher"
	"github.com/insha2472/english-to-kannada-translator/internal/offline"
	"github.com/insha2472/english-to-kannada-translator/internal/store"
	"github.com/insha2472/english-to-kannada-translator/internal/translator"
)

// buildService constructs the remote translation service named by config.
func buildService(name string) (translator.TranslationService, error) {
	switch name {
	case "googleweb":
		return translator.NewGoogleWebService(), nil
	case "google":
		return translator.NewGoogleCloudService(), nil
	case "mymemory":
		return translator.NewMyMemoryService(viper.GetString("mymemory-email")), nil
	default:
		return nil, fmt.Errorf("unknown service: %s (available: googleweb, google, mymemory)", name)
	}
}

// openStore opens the SQLite store named by config, creating parent
// directories as needed. Returns nil when caching is disabled; callers must
// tolerate a nil store.
func openStore() (*store.Store, error) {
	if viper.GetBool("no-cache") {
		return nil, nil
	}
	dbPath := viper.GetString("db")
	if dbPath == "" {
		return nil, nil
	}

	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := store.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// newDispatcher wires the configured service, the offline dictionary
// (extended with user entries when a store is available) and the store into
// a ready dispatcher. The returned store may be nil and must be closed by
// the caller when it is not.
func newDispatcher(ctx context.Context) (*dispatcher.Dispatcher, *store.Store, error) {
	svc, err := buildService(viper.GetString("service"))
	if err != nil {
		return nil, nil, err
	}

	db, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	var extra map[string]string
	if db != nil {
		extra, err = db.DictionaryEntries(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load user dictionary: %v\n", err)
			extra = nil
		}
	}

	d := dispatcher.New(svc, offline.New(extra), db, dispatcher.Config{
		Timeout:        viper.GetDuration("timeout"),
		MaxAttempts:    viper.GetInt("max-retries"),
		MaxChunkChars:  viper.GetInt("max-chunk"),
		FuzzyThreshold: viper.GetFloat64("fuzzy"),
		Credentials:    viper.GetString("credentials"),
	})

	return d, db, nil
}
