package registry_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunswift/srpkg/pkg/filesystem"
	"github.com/sunswift/srpkg/pkg/registry"
	"github.com/sunswift/srpkg/pkg/testutil"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

func emptyRegistry(t *testing.T, fsys filesystem.FS, path string) *registry.Registry {
	t.Helper()
	require.NoError(t, fsys.WriteFile(path, []byte(`{"nodes": []}`+"\n"), 0644))
	return registry.Open(fsys, path)
}

func TestDiscover(t *testing.T) {
	fsys := testutil.NewMemFS()
	require.NoError(t, fsys.MkdirAll("/repo/src/deep", 0755))
	require.NoError(t, fsys.WriteFile("/repo/node_registry.json", []byte(`{"nodes": []}`), 0644))

	t.Run("walks up to the registry", func(t *testing.T) {
		path, root, ok := registry.Discover(fsys, "/repo/src/deep", "node_registry.json")
		require.True(t, ok)
		assert.Equal(t, "/repo/node_registry.json", path)
		assert.Equal(t, "/repo", root)
	})

	t.Run("finds it in the start directory", func(t *testing.T) {
		path, root, ok := registry.Discover(fsys, "/repo", "node_registry.json")
		require.True(t, ok)
		assert.Equal(t, "/repo/node_registry.json", path)
		assert.Equal(t, "/repo", root)
	})

	t.Run("reports absence", func(t *testing.T) {
		other := testutil.NewMemFS()
		require.NoError(t, other.MkdirAll("/elsewhere", 0755))
		_, _, ok := registry.Discover(other, "/elsewhere", "node_registry.json")
		assert.False(t, ok)
	})
}

func TestRegistryAddFindRemove(t *testing.T) {
	fsys := testutil.NewMemFS()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	reg := emptyRegistry(t, fsys, "/repo/node_registry.json")

	node := registry.Node{Name: "motor_ctl", Path: "src/motor_ctl", Target: "qnx", Type: "rti_dds"}
	require.NoError(t, reg.Add(node))

	got, found, err := reg.Find("motor_ctl")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, node, *got)

	_, found, err = reg.Find("ghost")
	require.NoError(t, err)
	assert.False(t, found)

	t.Run("duplicate add is rejected", func(t *testing.T) {
		err := reg.Add(registry.Node{Name: "motor_ctl", Path: "other/motor_ctl"})
		require.Error(t, err)
		assert.True(t, srpkgerr.IsErrorCode(err, srpkgerr.ErrAlreadyExists))
	})

	t.Run("remove deletes the entry", func(t *testing.T) {
		require.NoError(t, reg.Remove("motor_ctl"))
		_, found, err := reg.Find("motor_ctl")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("remove of unknown entry fails", func(t *testing.T) {
		err := reg.Remove("ghost")
		require.Error(t, err)
		assert.True(t, srpkgerr.IsErrorCode(err, srpkgerr.ErrNotFound))
	})
}

func TestRegistryFileFormat(t *testing.T) {
	fsys := testutil.NewMemFS()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	reg := emptyRegistry(t, fsys, "/repo/node_registry.json")

	require.NoError(t, reg.Add(registry.Node{
		Name: "motor_ctl", Path: "src/motor_ctl", Target: "qnx", Type: "rti_dds",
	}))

	data, err := fsys.ReadFile("/repo/node_registry.json")
	require.NoError(t, err)

	// Sorted keys, two-space indent, trailing newline: the byte format the
	// rest of the repo tooling expects.
	expected := `{
  "nodes": [
    {
      "name": "motor_ctl",
      "path": "src/motor_ctl",
      "target": "qnx",
      "type": "rti_dds"
    }
  ]
}
`
	assert.Equal(t, expected, string(data))
}

func TestRegistrySaveFailureKeepsOriginal(t *testing.T) {
	fsys := testutil.NewMemFS()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	require.NoError(t, fsys.WriteFile("/repo/node_registry.json", []byte(`{"nodes": []}`+"\n"), 0644))

	boom := errors.New("disk full")
	failFS := &testutil.FailFS{FS: fsys, Err: boom, FailWriteFile: ".tmp"}
	reg := registry.Open(failFS, "/repo/node_registry.json")

	err := reg.Add(registry.Node{Name: "motor_ctl"})
	require.Error(t, err)
	assert.True(t, srpkgerr.IsErrorCode(err, srpkgerr.ErrRegistryWrite))

	data, readErr := fsys.ReadFile("/repo/node_registry.json")
	require.NoError(t, readErr)
	assert.Equal(t, `{"nodes": []}`+"\n", string(data))
}

func TestRegistryUnreadableFile(t *testing.T) {
	fsys := testutil.NewMemFS()
	require.NoError(t, fsys.MkdirAll("/repo", 0755))
	require.NoError(t, fsys.WriteFile("/repo/node_registry.json", []byte("not json"), 0644))
	reg := registry.Open(fsys, "/repo/node_registry.json")

	_, _, err := reg.Find("motor_ctl")
	require.Error(t, err)
	assert.True(t, srpkgerr.IsErrorCode(err, srpkgerr.ErrRegistryRead))
}
