package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kompox/groceryops/adapters/store/inmem"
	"github.com/kompox/groceryops/adapters/store/rdb"
	"github.com/kompox/groceryops/domain"
)

// getDBURL extracts the db-url flag value from command hierarchy.
func getDBURL(cmd *cobra.Command) string {
	f := findFlag(cmd, "db-url")
	if f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return defaultDBURL
}

// buildRepositories creates repositories based on db-url.
func buildRepositories(cmd *cobra.Command) (*domain.Repositories, error) {
	dbURL := getDBURL(cmd)

	switch {
	case dbURL == "memory:":
		return inmem.NewStore().Repositories(), nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, fmt.Errorf("failed to migrate %s: %w", dbURL, err)
		}
		return &domain.Repositories{Run: rdb.NewRunRepository(db)}, nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
