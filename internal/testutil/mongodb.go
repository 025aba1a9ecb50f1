//go:build integration

// Package testutil starts the MongoDB container shared by integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
)

// MongoImage is the server image used by integration tests.
const MongoImage = "mongo:7.0"

// MongoDBContainer wraps a MongoDB testcontainer.
type MongoDBContainer struct {
	Container testcontainers.Container
	URI       string
}

// StartMongoDB creates and starts a MongoDB testcontainer.
func StartMongoDB(ctx context.Context) (*MongoDBContainer, error) {
	container, err := mongodb.Run(ctx, MongoImage)
	if err != nil {
		return nil, fmt.Errorf("start mongodb container: %w", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, fmt.Errorf("mongodb connection string: %w", err)
	}

	return &MongoDBContainer{Container: container, URI: uri}, nil
}

// Terminate stops the container.
func (m *MongoDBContainer) Terminate(ctx context.Context) error {
	if m.Container == nil {
		return nil
	}
	if err := m.Container.Terminate(ctx); err != nil {
		return fmt.Errorf("terminate mongodb container: %w", err)
	}
	return nil
}

var (
	shared   *MongoDBContainer
	sharedMu sync.RWMutex
	dbSeq    atomic.Int64
)

// RunWithMongoDB starts one container for the package, runs m and tears the container down.
//
//	func TestMain(m *testing.M) {
//		os.Exit(testutil.RunWithMongoDB(context.Background(), m))
//	}
func RunWithMongoDB(ctx context.Context, m *testing.M) int {
	container, err := StartMongoDB(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return 1
	}

	sharedMu.Lock()
	shared = container
	sharedMu.Unlock()

	code := m.Run()

	if err := container.Terminate(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "warning:", err)
	}
	return code
}

// MongoURI returns the connection string of the shared container.
func MongoURI() string {
	sharedMu.RLock()
	defer sharedMu.RUnlock()
	if shared == nil {
		panic("testutil: shared MongoDB container not started; use RunWithMongoDB in TestMain")
	}
	return shared.URI
}

// DatabaseName derives a unique, valid database name from a test name.
func DatabaseName(testName string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', '.', ' ', '"', '$':
			return '_'
		}
		return r
	}, testName)
	if len(name) > 40 {
		name = name[:40]
	}
	return fmt.Sprintf("%s_%d", name, dbSeq.Add(1))
}
