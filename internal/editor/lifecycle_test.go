package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/conduit/cli/internal/api"
)

func TestLoaderMountWithSlugFetchesOnce(t *testing.T) {
	var l Loader
	step := l.Mount("dragons")

	assert.Equal(t, "dragons", step.Fetch)
	assert.Equal(t, []Action{AsyncStart{}}, step.Actions)
	assert.Equal(t, PhaseLoading, l.Phase())
}

func TestLoaderMountWithoutSlugResets(t *testing.T) {
	var l Loader
	step := l.Mount("")

	assert.Empty(t, step.Fetch)
	assert.Equal(t, []Action{PageLoaded{}}, step.Actions)
	assert.Equal(t, PhaseLoadedEmpty, l.Phase())
}

func TestLoaderSyncUnchangedDoesNothing(t *testing.T) {
	var l Loader
	l.Mount("dragons")

	for i := 0; i < 3; i++ {
		step := l.Sync("dragons")
		assert.Empty(t, step.Fetch)
		assert.Empty(t, step.Actions)
	}
	assert.Equal(t, PhaseLoading, l.Phase())
}

func TestLoaderSyncChangedUnloadsThenLoads(t *testing.T) {
	var l Loader
	l.Mount("dragons")

	step := l.Sync("unicorns")
	assert.Equal(t, "unicorns", step.Fetch)
	assert.Equal(t, []Action{PageUnloaded{}, AsyncStart{}}, step.Actions)

	step = l.Sync("")
	assert.Empty(t, step.Fetch)
	assert.Equal(t, []Action{PageUnloaded{}, PageLoaded{}}, step.Actions)
	assert.Equal(t, PhaseLoadedEmpty, l.Phase())
}

func TestLoaderSyncBeforeMountMounts(t *testing.T) {
	var l Loader
	step := l.Sync("dragons")
	assert.Equal(t, "dragons", step.Fetch)
	assert.Equal(t, []Action{AsyncStart{}}, step.Actions)
}

func TestLoaderResolve(t *testing.T) {
	var l Loader
	l.Mount("dragons")

	article := &api.Article{Slug: "dragons"}
	act, ok := l.Resolve("dragons", article, nil)
	require.True(t, ok)
	assert.Equal(t, PageLoaded{Article: article}, act)
	assert.Equal(t, PhaseLoaded, l.Phase())

	_, ok = l.Resolve("dragons", article, nil)
	assert.False(t, ok, "second resolve is ignored")
}

func TestLoaderResolveDropsStaleResponse(t *testing.T) {
	var l Loader
	l.Mount("dragons")
	l.Sync("unicorns")

	_, ok := l.Resolve("dragons", &api.Article{Slug: "dragons"}, nil)
	assert.False(t, ok)

	act, ok := l.Resolve("unicorns", nil, errors.New("HTTP 404"))
	require.True(t, ok)
	assert.EqualError(t, act.(PageLoaded).Err, "HTTP 404")
}

func TestLoaderAdoptPreventsRefetch(t *testing.T) {
	var l Loader
	l.Mount("")
	require.True(t, l.Adopt(l.Generation(), "created"))

	assert.Equal(t, PhaseLoaded, l.Phase())
	assert.Equal(t, "created", l.Slug())
	assert.Empty(t, l.Sync("created").Actions)
}

func TestLoaderUnmount(t *testing.T) {
	var l Loader
	assert.Empty(t, l.Unmount().Actions, "unmount before mount is a no-op")

	l.Mount("dragons")
	step := l.Unmount()
	assert.Equal(t, []Action{PageUnloaded{}}, step.Actions)
	assert.Equal(t, PhaseUnloaded, l.Phase())
	assert.Equal(t, "unloaded", l.Phase().String())

	_, ok := l.Resolve("dragons", nil, nil)
	assert.False(t, ok)
}

func TestLoaderGenerationAdvancesOnRemount(t *testing.T) {
	var l Loader
	l.Mount("existing")
	gen := l.Generation()
	assert.True(t, l.Current(gen))

	l.Sync("existing")
	assert.True(t, l.Current(gen), "unchanged slug keeps the mount")

	l.Sync("")
	assert.False(t, l.Current(gen))
	assert.False(t, l.Adopt(gen, "existing"), "adopt from an old mount is refused")
	assert.Empty(t, l.Slug())
	assert.Equal(t, PhaseLoadedEmpty, l.Phase())

	cur := l.Generation()
	l.Unmount()
	assert.False(t, l.Current(cur))
}
