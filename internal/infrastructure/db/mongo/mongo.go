package mongo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxPoolSize = 5
	defaultDatabase    = "mmp"
)

// Config captures the settings required to establish a MongoDB connection.
type Config struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	Timeout     time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. Defaults are applied for
// zero-valued settings.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	poolSize := cfg.MaxPoolSize
	if poolSize == 0 {
		poolSize = defaultMaxPoolSize
	}
	database := cfg.Database
	if database == "" {
		database = defaultDatabase
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().ApplyURI(cfg.URI).SetMaxPoolSize(poolSize)
	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}

// DatabaseProvider hands repositories the database they operate on.
type DatabaseProvider interface {
	Database(ctx context.Context) (*mongo.Database, error)
}

// Handle is the process-wide, lazily connected store handle. The first
// caller connects; later callers share the client. A failed connect is not
// remembered, so the next call tries again. Connecting happens outside the
// lock: concurrent first callers each dial, the first to finish is kept and
// the others disconnect.
type Handle struct {
	cfg Config

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

func NewHandle(cfg Config) *Handle {
	return &Handle{cfg: cfg}
}

func (h *Handle) cached() *mongo.Database {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.db
}

func (h *Handle) Database(ctx context.Context) (*mongo.Database, error) {
	if db := h.cached(); db != nil {
		return db, nil
	}

	client, db, err := Connect(ctx, h.cfg)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	if h.db != nil {
		winner := h.db
		h.mu.Unlock()
		dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultTimeout)
		_ = client.Disconnect(dctx)
		cancel()
		return winner, nil
	}
	h.client, h.db = client, db
	h.mu.Unlock()
	return db, nil
}

// Ping connects if needed and checks the primary is reachable.
func (h *Handle) Ping(ctx context.Context) error {
	db, err := h.Database(ctx)
	if err != nil {
		return err
	}
	return db.Client().Ping(ctx, readpref.Primary())
}

// Disconnect closes the client if one was opened.
func (h *Handle) Disconnect(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.client == nil {
		return nil
	}
	err := h.client.Disconnect(ctx)
	h.client, h.db = nil, nil
	return err
}

// Static wraps an already connected database.
type Static struct {
	DB *mongo.Database
}

func (s Static) Database(context.Context) (*mongo.Database, error) {
	return s.DB, nil
}
