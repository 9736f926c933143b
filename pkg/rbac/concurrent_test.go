package rbac_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lorekit/lorekit/pkg/rbac"
)

// The registry is built once and read concurrently by every request handler,
// so resolution must be safe without synchronization.
func TestRegistry_ConcurrentResolve(t *testing.T) {
	reg := buildTestRegistry(t)

	const goroutines = 50
	const iterations = 200

	var wg sync.WaitGroup
	errs := make(chan string, goroutines)

	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range iterations {
				gm := reg.Resolve(rbac.NamespaceUniverse, rbac.RoleGameMaster)
				if !gm.Query(rbac.ActionRead, rbac.PossessionAny, "species") {
					errs <- "game_master lost inherited species grant"
					return
				}

				unknown := reg.Resolve(rbac.NamespaceUniverse, "nonexistent")
				if unknown.Query(rbac.ActionDelete, rbac.PossessionAny, "character") {
					errs <- "unknown role gained elevated grant"
					return
				}

				global := reg.Resolve(rbac.NamespaceGlobal, rbac.RoleDefault)
				if !global.Query(rbac.ActionCreate, rbac.PossessionOwn, "univers") {
					errs <- "default role lost direct grant"
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)

	for msg := range errs {
		assert.Fail(t, msg)
	}
}
