package cmd

import (
	"fmt"

	"github.com/adizioli/covid19-vis/internal/contract"
	"github.com/adizioli/covid19-vis/internal/datastore"
	"github.com/adizioli/covid19-vis/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config (no run tracking for cache commands)
	if err := datastore.InitStores(backend, connStr, "", ""); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup) instead of
// the full sharedSetup used by chart commands. This avoids dataset validation
// and complex config processing for simple cache operations.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the parsed-dataset cache (improves performance)",
	Long: `Manage the parsed-dataset cache that speeds up repeated builds.

Covidvis caches parsed CSV datasets to avoid re-reading and re-parsing the
same input on every run. This helps when iterating on alignment flags against
a large time series, since only the cheap pipeline stages re-run.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (in-memory)

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached data

Examples:
  # Check cache status
  covidvis cache status

  # Clear cache after the source CSV changed
  covidvis cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset data",
	Long: `Delete all cached parsed datasets from the configured backend.

Use this when:
- The source CSV was regenerated with the same path and size
- Cache may be stale or corrupted
- Testing parse performance without cache
- Reclaiming disk space after working with many datasets

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  covidvis cache clear

  # Clear MySQL cache (set connection string via env variable)
  COVIDVIS_CACHE_BACKEND=mysql COVIDVIS_CACHE_DB_CONNECT="..." covidvis cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := datastore.ClearCache(cfg.CacheBackend, datastore.GetDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the parsed-dataset cache.

Displays:
- Backend type and connection status
- Total number of cached datasets
- Last and oldest cache entry timestamps
- Cache database size

Use this to:
- Verify cache is working and connected
- Monitor cache growth over time
- Check when cache was last updated
- Debug cache-related issues

Examples:
  # Check cache status
  covidvis cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := datastore.Manager.GetDatasetStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		datastore.PrintCacheStatus(status)
	},
}
