package reconcile

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Name  string
	Shown bool
}

func (i item) GetID() string { return i.ID }

func ids(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func newTestList() *List[item] {
	return NewList([]item{
		{ID: "a", Name: "first"},
		{ID: "b", Name: "second"},
		{ID: "c", Name: "third"},
		{ID: "d", Name: "fourth"},
	})
}

func TestList_RemoveByID(t *testing.T) {
	tests := []struct {
		name    string
		id      string
		want    []string
		removed bool
	}{
		{name: "first", id: "a", want: []string{"b", "c", "d"}, removed: true},
		{name: "middle", id: "c", want: []string{"a", "b", "d"}, removed: true},
		{name: "last", id: "d", want: []string{"a", "b", "c"}, removed: true},
		{name: "missing", id: "x", want: []string{"a", "b", "c", "d"}, removed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList()

			got, ok := l.RemoveByID(tt.id)
			assert.Equal(t, tt.removed, ok)
			if ok {
				assert.Equal(t, tt.id, got.ID)
			}
			assert.Equal(t, tt.want, ids(l.Items()))
		})
	}
}

func TestList_RemoveByID_DoesNotAliasSnapshot(t *testing.T) {
	l := newTestList()
	snapshot := l.Items()

	_, ok := l.RemoveByID("b")
	require.True(t, ok)

	// Ранее выданная копия не меняется
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(snapshot))
}

func TestList_PatchByID(t *testing.T) {
	l := newTestList()

	ok := l.PatchByID("b", func(it *item) { it.Name = "patched" })
	require.True(t, ok)

	items := l.Items()
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(items))
	assert.Equal(t, "patched", items[1].Name)
	assert.Equal(t, "first", items[0].Name)
	assert.Equal(t, "third", items[2].Name)

	assert.False(t, l.PatchByID("x", func(it *item) { it.Name = "never" }))
}

func TestList_PatchAll(t *testing.T) {
	l := newTestList()
	l.PatchAll(func(it *item) { it.Shown = true })

	for _, it := range l.Items() {
		assert.True(t, it.Shown)
	}
}

func TestList_ReplaceAndGet(t *testing.T) {
	l := NewList[item](nil)
	assert.Equal(t, 0, l.Len())

	src := []item{{ID: "x"}, {ID: "y"}}
	l.Replace(src)
	src[0].Name = "changed outside"

	got, ok := l.Get("x")
	require.True(t, ok)
	assert.Empty(t, got.Name)
	assert.Equal(t, 2, l.Len())

	_, ok = l.Get("a")
	assert.False(t, ok)
}

func TestList_ConcurrentAccess(t *testing.T) {
	l := newTestList()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			l.PatchByID("a", func(it *item) { it.Shown = !it.Shown })
		}()
		go func() {
			defer wg.Done()
			_ = l.Items()
		}()
	}
	wg.Wait()

	assert.Equal(t, 4, l.Len())
}
