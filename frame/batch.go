// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame batches the per-frame work the update queue hands to the
// platform side once layout is done.
package frame

import "sync"

// UpdateQueue is the part of the update queue a node talks to while it
// collects its extra updates.
type UpdateQueue interface {
	// EnqueueUpdateExtraData registers data for the node with the given tag
	// in the current frame's batch.
	EnqueueUpdateExtraData(tag int, data any)
}

// ExtraData is one registration in a Batch.
type ExtraData struct {
	Tag  int
	Data any
}

// Batch collects extra-data registrations in call order until drained.
// It is safe for concurrent use.
type Batch struct {
	mu    sync.Mutex
	items []ExtraData
}

// NewBatch returns an empty batch.
func NewBatch() *Batch {
	return &Batch{}
}

// EnqueueUpdateExtraData appends a registration.
func (b *Batch) EnqueueUpdateExtraData(tag int, data any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.items = append(b.items, ExtraData{Tag: tag, Data: data})
}

// Len returns the number of pending registrations.
func (b *Batch) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.items)
}

// Drain returns the pending registrations and empties the batch.
func (b *Batch) Drain() []ExtraData {
	b.mu.Lock()
	defer b.mu.Unlock()
	items := b.items
	b.items = nil
	return items
}

var _ UpdateQueue = (*Batch)(nil)
