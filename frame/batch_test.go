// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatchKeepsOrder(t *testing.T) {
	b := NewBatch()
	b.EnqueueUpdateExtraData(3, "c")
	b.EnqueueUpdateExtraData(1, "a")
	b.EnqueueUpdateExtraData(3, "c2")

	require.Equal(t, 3, b.Len())
	items := b.Drain()
	assert.Equal(t, []ExtraData{{3, "c"}, {1, "a"}, {3, "c2"}}, items)
	assert.Zero(t, b.Len())
	assert.Empty(t, b.Drain())
}
