package toybox

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyItem(n int) HistoryItem {
	return HistoryItem{
		ID:        strconv.Itoa(n),
		ImageURL:  "data:image/png;base64,IMG" + strconv.Itoa(n),
		Prompt:    "prompt " + strconv.Itoa(n),
		Timestamp: time.Date(2025, 6, 1, 12, 0, n, 0, time.UTC),
	}
}

func TestHistoryInsertOrder(t *testing.T) {
	h := NewHistory(10)
	for i := 1; i <= 3; i++ {
		h.Insert(historyItem(i))
	}

	items := h.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "3", items[0].ID, "most recent first")
	assert.Equal(t, "2", items[1].ID)
	assert.Equal(t, "1", items[2].ID)
}

func TestHistoryEvictsOldest(t *testing.T) {
	h := NewHistory(3)
	for i := 1; i <= 5; i++ {
		h.Insert(historyItem(i))
	}

	require.Equal(t, 3, h.Len())
	items := h.Items()
	assert.Equal(t, "5", items[0].ID)
	assert.Equal(t, "3", items[2].ID)

	_, ok := h.ByID("1")
	assert.False(t, ok, "oldest items are dropped")
	_, ok = h.ByID("2")
	assert.False(t, ok)
}

func TestHistoryByID(t *testing.T) {
	h := NewHistory(10)
	h.Insert(historyItem(1))
	h.Insert(historyItem(2))

	item, ok := h.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "prompt 1", item.Prompt)

	_, ok = h.ByID("missing")
	assert.False(t, ok)
}

func TestHistoryItemsReturnsCopy(t *testing.T) {
	h := NewHistory(10)
	h.Insert(historyItem(1))

	items := h.Items()
	items[0].Prompt = "mutated"

	fresh := h.Items()
	assert.Equal(t, "prompt 1", fresh[0].Prompt, "items are immutable once created")
}

func TestHistoryDefaultCapacity(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, DefaultHistorySize, h.Capacity())

	h = NewHistory(-5)
	assert.Equal(t, DefaultHistorySize, h.Capacity())
}

func TestHistoryEmpty(t *testing.T) {
	h := NewHistory(10)
	assert.Nil(t, h.Items())
	assert.Zero(t, h.Len())
}
