package datastore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/adizioli/covid19-vis/schema"
)

func TestStoreLifecycle(t *testing.T) {
	t.Run("single setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		cachePath := filepath.Join(tmpDir, "cache.db")
		runsPath := filepath.Join(tmpDir, "runs.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Test initialization with SQLite backends
		err := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runsPath)
		if err != nil {
			t.Fatalf("Failed to initialize stores: %v", err)
		}

		// Test that Manager is accessible
		if Manager == nil {
			t.Fatal("Manager is nil")
		}

		// Test that stores are accessible
		if Manager.GetDatasetStore() == nil {
			t.Fatal("Dataset store is nil")
		}
		if Manager.GetRunStore() == nil {
			t.Fatal("Run store is nil")
		}

		// Test cleanup
		CloseStores()

		// Verify database files were created
		if _, err := os.Stat(cachePath); os.IsNotExist(err) {
			t.Fatal("Cache database file was not created")
		}
		if _, err := os.Stat(runsPath); os.IsNotExist(err) {
			t.Fatal("Runs database file was not created")
		}
	})

	t.Run("idempotent setup", func(t *testing.T) {
		tmpDir := t.TempDir()
		cachePath := filepath.Join(tmpDir, "cache.db")
		runsPath := filepath.Join(tmpDir, "runs.db")
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Multiple initializations should be safe (sync.Once)
		err1 := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runsPath)
		err2 := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runsPath)
		err3 := InitStores(schema.SQLiteBackend, cachePath, schema.SQLiteBackend, runsPath)

		if err1 != nil {
			t.Fatalf("First init failed: %v", err1)
		}
		if err2 != nil {
			t.Fatalf("Second init failed: %v", err2)
		}
		if err3 != nil {
			t.Fatalf("Third init failed: %v", err3)
		}

		// Multiple closes should be safe (sync.Once)
		CloseStores()
		CloseStores()
		CloseStores()
	})

	t.Run("empty backends disable stores", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Empty backends mean no stores get created at all
		err := InitStores("", "", "", "")
		if err != nil {
			t.Fatalf("Failed to initialize with empty backends: %v", err)
		}

		if Manager.GetDatasetStore() != nil {
			t.Fatal("Dataset store should be nil with empty backend")
		}
		if Manager.GetRunStore() != nil {
			t.Fatal("Run store should be nil with empty backend")
		}

		// Cleanup is safe with no stores
		CloseStores()
	})

	t.Run("none backend", func(t *testing.T) {
		initOnce = sync.Once{}  // Reset for test
		closeOnce = sync.Once{} // Reset for test

		// Test initialization with None backends (no database)
		err := InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
		if err != nil {
			t.Fatalf("Failed to initialize stores with none backend: %v", err)
		}

		// Test that stores are accessible
		store := Manager.GetDatasetStore()
		if store == nil {
			t.Fatal("Dataset store is nil")
		}
		runStore := Manager.GetRunStore()
		if runStore == nil {
			t.Fatal("Run store is nil")
		}

		// Test cleanup (should be safe even with no DB)
		CloseStores()
	})

	t.Run("none backend operations", func(t *testing.T) {
		// Create a none backend store directly
		store, err := NewDatasetStore("test_table", schema.NoneBackend, "")
		if err != nil {
			t.Fatalf("Failed to create none backend store: %v", err)
		}

		// Test Get returns error (no data)
		_, _, _, err = store.Get("test_key")
		if err == nil {
			t.Fatal("Expected error from Get on none backend")
		}

		// Test Set is no-op (no error)
		err = store.Set("test_key", []byte("test_value"), 1, 123456789)
		if err != nil {
			t.Fatalf("Set should not error on none backend: %v", err)
		}

		// Verify Get still returns error after Set (no-op)
		_, _, _, err = store.Get("test_key")
		if err == nil {
			t.Fatal("Expected error from Get after Set on none backend")
		}

		// Close is safe
		err = store.Close()
		if err != nil {
			t.Fatalf("Close should not error on none backend: %v", err)
		}
	})
}

func TestStoreManagerConcurrency(t *testing.T) {
	initOnce = sync.Once{}
	closeOnce = sync.Once{}

	// Concurrent initialization and reads must be race-free
	var wg sync.WaitGroup
	errs := make([]error, 10)
	for i := range 10 {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = InitStores(schema.NoneBackend, "", schema.NoneBackend, "")
			_ = Manager.GetDatasetStore()
			_ = Manager.GetRunStore()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("InitStores call %d failed: %v", i, err)
		}
	}

	CloseStores()
}
