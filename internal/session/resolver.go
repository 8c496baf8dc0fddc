package session

import (
	"context"
	"sync"
)

// ChannelRef identifies a broadcast service.
type ChannelRef struct {
	NetworkID uint16
	ServiceID uint16
}

// Resolver maps a channel to the broadcast id currently airing on it. An
// empty id means nothing is mapped.
type Resolver interface {
	Resolve(ctx context.Context, ch ChannelRef) (string, error)
}

// TableResolver resolves from a fixed table.
type TableResolver struct {
	mu    sync.RWMutex
	table map[ChannelRef]string
}

func NewTableResolver(table map[ChannelRef]string) *TableResolver {
	t := make(map[ChannelRef]string, len(table))
	for k, v := range table {
		t[k] = v
	}
	return &TableResolver{table: t}
}

func (r *TableResolver) Resolve(ctx context.Context, ch ChannelRef) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.table[ch], nil
}

// Set maps ch to broadcastID. An empty id removes the mapping.
func (r *TableResolver) Set(ch ChannelRef, broadcastID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if broadcastID == "" {
		delete(r.table, ch)
		return
	}
	r.table[ch] = broadcastID
}
