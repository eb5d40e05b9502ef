//go:build unit

package keylock_test

import (
	"sync"
	"testing"

	"lounge-scheduler/internal/pkg/keylock"

	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex(t *testing.T) {
	t.Run("serialises holders of the same key", func(t *testing.T) {
		km := keylock.New[string]()
		counter := 0
		var wg sync.WaitGroup
		for range 50 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				unlock := km.Lock("machine-1")
				defer unlock()
				v := counter
				counter = v + 1
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
		assert.Equal(t, 0, km.Len())
	})

	t.Run("different keys do not block each other", func(t *testing.T) {
		km := keylock.New[int]()
		unlockA := km.Lock(1)
		unlockB := km.Lock(2)
		assert.Equal(t, 2, km.Len())
		unlockA()
		unlockB()
		assert.Equal(t, 0, km.Len())
	})

	t.Run("unlock is idempotent", func(t *testing.T) {
		km := keylock.New[string]()
		unlock := km.Lock("a")
		unlock()
		unlock()
		assert.Equal(t, 0, km.Len())

		again := km.Lock("a")
		again()
	})
}
