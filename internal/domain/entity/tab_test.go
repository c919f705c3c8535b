package entity_test

import (
	"testing"

	"github.com/bnema/sarf/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newList(ids ...entity.TabID) *entity.TabList {
	tl := entity.NewTabList()
	for _, id := range ids {
		tl.Add(entity.NewTab(id))
	}
	return tl
}

func TestTabList_AddKeepsActive(t *testing.T) {
	tl := newList("a", "b")
	assert.Equal(t, -1, tl.ActiveIndex())

	tl.ActiveTabID = "a"
	idx := tl.Add(entity.NewTab("c"))
	assert.Equal(t, 2, idx)
	assert.Equal(t, 0, tl.ActiveIndex())
	assert.Equal(t, 2, tl.Tabs[2].Position)
}

func TestTabList_RemoveBeforeActiveKeepsIdentity(t *testing.T) {
	tl := newList("a", "b", "c")
	tl.ActiveTabID = "c"

	assert.Equal(t, 0, tl.Remove("a"))
	assert.Equal(t, entity.TabID("c"), tl.ActiveTabID)
	assert.Equal(t, 1, tl.ActiveIndex())
	assert.Equal(t, 0, tl.Tabs[0].Position)
	assert.Equal(t, 1, tl.Tabs[1].Position)
}

func TestTabList_RemoveActiveSelectsSameSlotOrLast(t *testing.T) {
	tl := newList("a", "b", "c")
	tl.ActiveTabID = "b"
	tl.Remove("b")
	assert.Equal(t, entity.TabID("c"), tl.ActiveTabID)

	tl.Remove("c")
	assert.Equal(t, entity.TabID("a"), tl.ActiveTabID)

	tl.Remove("a")
	assert.Equal(t, entity.TabID(""), tl.ActiveTabID)
	assert.Equal(t, -1, tl.ActiveIndex())
}

func TestTabList_RemoveUnknown(t *testing.T) {
	tl := newList("a")
	assert.Equal(t, -1, tl.Remove("zz"))
	assert.Equal(t, 1, tl.Count())
}

func TestTabList_At(t *testing.T) {
	tl := newList("a", "b")
	require.NotNil(t, tl.At(1))
	assert.Equal(t, entity.TabID("b"), tl.At(1).ID)
	assert.Nil(t, tl.At(-1))
	assert.Nil(t, tl.At(2))
}

func TestTabList_NeighborWraps(t *testing.T) {
	tl := newList("a", "b", "c")
	assert.Equal(t, 0, tl.Neighbor(1), "no active tab falls back to first")

	tl.ActiveTabID = "c"
	assert.Equal(t, 0, tl.Neighbor(1))
	assert.Equal(t, 1, tl.Neighbor(-1))

	tl.ActiveTabID = "a"
	assert.Equal(t, 2, tl.Neighbor(-1))

	assert.Equal(t, -1, entity.NewTabList().Neighbor(1))
}

func TestTab_DisplayTitle(t *testing.T) {
	tab := entity.NewTab("a")
	assert.Equal(t, "New Tab", tab.DisplayTitle())

	tab.Title = ""
	tab.URL = "https://example.com"
	assert.Equal(t, "https://example.com", tab.DisplayTitle())

	tab.Title = "Example"
	assert.Equal(t, "Example", tab.DisplayTitle())
}
