package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/deskman/deskman/adapters/store/dirstore"
	"github.com/deskman/deskman/adapters/store/inmem"
	"github.com/deskman/deskman/adapters/store/rdb"
	"github.com/deskman/deskman/config/deskmanenv"
	"github.com/deskman/deskman/domain"
)

// findFlag recursively searches parents for a flag.
func findFlag(cmd *cobra.Command, name string) *pflag.Flag {
	for c := cmd; c != nil; c = c.Parent() {
		if f := c.Flags().Lookup(name); f != nil {
			return f
		}
		if f := c.PersistentFlags().Lookup(name); f != nil {
			return f
		}
	}
	return nil
}

// resolveProjectEnv resolves the enclosing deskman project, honoring
// the DESKMAN_ROOT and DESKMAN_DIR environment variables.
func resolveProjectEnv() (*deskmanenv.Env, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return deskmanenv.Resolve(
		os.Getenv(deskmanenv.DeskmanRootEnvKey),
		os.Getenv(deskmanenv.DeskmanDirEnvKey),
		wd)
}

// getStoreURL resolves the store URL: flag, then env, then the
// .deskman/config.yml of the enclosing project, then the default
// directory store.
func getStoreURL(cmd *cobra.Command) string {
	if f := findFlag(cmd, "store-url"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	if env := os.Getenv(deskmanenv.DeskmanStoreURLEnvKey); env != "" {
		return env
	}
	if env, err := resolveProjectEnv(); err == nil {
		return env.StoreURL()
	}
	return "dir:workspaces"
}

// buildWorkspaceRepository creates a repository based on the store URL
// scheme.
func buildWorkspaceRepository(cmd *cobra.Command) (domain.WorkspaceRepository, error) {
	storeURL := getStoreURL(cmd)

	switch {
	case strings.HasPrefix(storeURL, "dir:"):
		dir := strings.TrimPrefix(storeURL, "dir:")
		if dir == "" {
			return nil, fmt.Errorf("directory path is required for dir: URL")
		}
		return dirstore.NewWorkspaceRepository(dir), nil

	case strings.HasPrefix(storeURL, "sqlite:") || strings.HasPrefix(storeURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(storeURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return rdb.NewWorkspaceRepository(db), nil

	case storeURL == "memory:":
		return inmem.NewWorkspaceRepository(), nil

	default:
		return nil, fmt.Errorf("unsupported store scheme: %s", storeURL)
	}
}
