// Package datastore persists parsed datasets and pipeline runs.
package datastore

import (
	"sync"

	"github.com/adizioli/covid19-vis/internal/contract"
)

// StoreManagerImpl manages the dataset cache and run history stores.
type StoreManagerImpl struct {
	sync.RWMutex // Protects the store pointers during initialization
	dataset      contract.DatasetStore
	runs         contract.RunStore
}

var _ contract.StoreManager = &StoreManagerImpl{} // Compile-time check

// GetDatasetStore returns the dataset cache store.
func (mgr *StoreManagerImpl) GetDatasetStore() contract.DatasetStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.dataset
}

// GetRunStore returns the run history store.
func (mgr *StoreManagerImpl) GetRunStore() contract.RunStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.runs
}
