//go:build integration

package testutil

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"testing"
	"time"
)

// The integration suite shares one MongoDB container across every package
// to keep the total runtime bounded. Each test isolates itself with its own
// database name (see SanitizeDBName) rather than its own container.
var (
	sharedContainer *MongoDBContainer
	sharedOnce      sync.Once
	sharedErr       error
)

// GetSharedMongoDB returns the process-wide MongoDB container, starting it
// on first use.
func GetSharedMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	sharedOnce.Do(func() {
		sharedContainer, sharedErr = SetupMongoDB(ctx)
	})
	return sharedContainer, sharedErr
}

// CleanupSharedMongoDB terminates the shared container. Call it exactly once,
// from the last deferred step of a package TestMain.
func CleanupSharedMongoDB(ctx context.Context) {
	if sharedContainer == nil {
		return
	}
	if err := sharedContainer.Cleanup(ctx); err != nil {
		log.Printf("failed to clean up shared mongodb container: %v", err)
	}
	sharedContainer = nil
}

// SetupTestMainWithMongoDB is the standard TestMain body for packages that
// need MongoDB: it starts the shared container, runs the suite, and tears
// the container down. Returns the exit code for os.Exit.
func SetupTestMainWithMongoDB(ctx context.Context, m *testing.M) int {
	if _, err := GetSharedMongoDB(ctx); err != nil {
		log.Printf("failed to start mongodb container: %v", err)
		return 1
	}

	code := m.Run()

	CleanupSharedMongoDB(ctx)
	return code
}

// GetSharedContainerURI returns the connection URI of the shared container.
// Panics if the container was never started; only call after TestMain has
// run SetupTestMainWithMongoDB.
func GetSharedContainerURI() string {
	if sharedContainer == nil {
		panic("shared mongodb container not started; wire SetupTestMainWithMongoDB into TestMain")
	}
	return sharedContainer.URI
}

// SanitizeDBName turns a test name into a MongoDB database name that is
// unique per run. Subtest names contain slashes, which MongoDB rejects, and
// parallel runs of the same test must not collide on a shared container.
func SanitizeDBName(name string) string {
	sanitized := strings.ReplaceAll(name, "/", "_")
	if len(sanitized) > 50 {
		sanitized = sanitized[:50]
	}
	return fmt.Sprintf("%s_%d", sanitized, time.Now().UnixNano()%1000000)
}
