package memory

import (
	"testing"

	"vetcalc/internal/ports/kvstore"
	"vetcalc/internal/ports/kvstore/kvstoretest"
)

func TestKVStore(t *testing.T) {
	kvstoretest.Run(t, func(t *testing.T) kvstore.Store {
		return NewKVStore()
	})
}
