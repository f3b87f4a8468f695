package logger

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type fakeCollection struct {
	mu   sync.Mutex
	docs []LogDocument
}

func (f *fakeCollection) InsertMany(_ context.Context, docs []interface{}, _ ...*options.InsertManyOptions) (*mongo.InsertManyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, d := range docs {
		f.docs = append(f.docs, d.(LogDocument))
	}
	return &mongo.InsertManyResult{}, nil
}

func TestMongoHandlerFlushesOnClose(t *testing.T) {
	col := &fakeCollection{}
	h := newMongoHandler(col)

	log := slog.New(h).With("request_id", "abc123")
	log.Info("order placed", "order_id", 7)
	log.WithGroup("cart").Warn("empty", "items", 0)

	h.Close()
	h.Close()

	require.Len(t, col.docs, 2)

	first := col.docs[0]
	assert.Equal(t, "order placed", first.Msg)
	assert.Equal(t, "INFO", first.Level)
	assert.Equal(t, "abc123", first.RequestID)
	assert.EqualValues(t, 7, first.Attrs["order_id"])

	second := col.docs[1]
	assert.Equal(t, "WARN", second.Level)
	assert.Contains(t, second.Attrs, "cart.items")
}

func TestMultiHandlerFansOut(t *testing.T) {
	a, b := &fakeCollection{}, &fakeCollection{}
	ha, hb := newMongoHandler(a), newMongoHandler(b)

	slog.New(NewMultiHandler(ha, hb)).Info("hello")
	ha.Close()
	hb.Close()

	assert.Len(t, a.docs, 1)
	assert.Len(t, b.docs, 1)
}

func TestWithCtxFallsBackToBase(t *testing.T) {
	assert.Same(t, L, WithCtx(context.Background()))

	reqLog := L.With("request_id", "r1")
	ctx := InjectLogger(context.Background(), reqLog)
	assert.Same(t, reqLog, WithCtx(ctx))
}
