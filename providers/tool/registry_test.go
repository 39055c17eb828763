package tool

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNamedTool(t *testing.T, name string) Definition {
	t.Helper()
	tl, err := New(name, func(_ context.Context, _ struct{}) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	return tl
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg, err := NewRegistry(newNamedTool(t, "web_search"), newNamedTool(t, "get_weather"))
	require.NoError(t, err)
	require.Equal(t, 2, reg.Len())

	def, err := reg.Lookup("web_search")
	require.NoError(t, err)
	assert.Equal(t, "web_search", def.Describe().Name)

	// Models occasionally echo names with different casing.
	def, err = reg.Lookup("Web_Search")
	require.NoError(t, err)
	assert.Equal(t, "web_search", def.Describe().Name)
}

func TestRegistry_UnknownTool(t *testing.T) {
	reg, err := NewRegistry(newNamedTool(t, "web_search"))
	require.NoError(t, err)

	_, err = reg.Lookup("web_serch")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownTool)
	assert.Contains(t, err.Error(), "web_serch", "the unresolved name must be reported")
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	reg, err := NewRegistry(newNamedTool(t, "web_search"))
	require.NoError(t, err)

	err = reg.Register(newNamedTool(t, "web_search"))
	assert.ErrorIs(t, err, ErrDuplicateTool)

	// Same name, different case is still the same tool.
	err = reg.Register(newNamedTool(t, "WEB_SEARCH"))
	assert.ErrorIs(t, err, ErrDuplicateTool)

	_, err = NewRegistry(newNamedTool(t, "a"), newNamedTool(t, "a"))
	assert.ErrorIs(t, err, ErrDuplicateTool)
}

func TestRegistry_RejectsInvalidDefinitions(t *testing.T) {
	reg, err := NewRegistry()
	require.NoError(t, err)
	assert.Error(t, reg.Register(nil))
}

func TestRegistry_DescriptionsOrder(t *testing.T) {
	reg, err := NewRegistry(
		newNamedTool(t, "plan_itinerary"),
		newNamedTool(t, "estimate_budget"),
		newNamedTool(t, "local_guide"),
	)
	require.NoError(t, err)

	want := []string{"plan_itinerary", "estimate_budget", "local_guide"}
	for i := 0; i < 3; i++ {
		descs := reg.Descriptions()
		require.Len(t, descs, 3)
		for j, d := range descs {
			assert.Equal(t, want[j], d.Name, "descriptions must keep registration order on every call")
		}
	}
	assert.Equal(t, want, reg.Names())
}

func TestRegistry_ConcurrentReaders(t *testing.T) {
	reg, err := NewRegistry(newNamedTool(t, "web_search"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = reg.Lookup("web_search")
			_ = reg.Descriptions()
			_ = reg.Len()
		}()
	}
	wg.Wait()
}
