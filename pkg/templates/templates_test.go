package templates_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunswift/srpkg/pkg/config"
	"github.com/sunswift/srpkg/pkg/templates"

	srpkgerr "github.com/sunswift/srpkg/pkg/errors"
)

func TestReadme(t *testing.T) {
	content, err := templates.Readme("motor_ctl", "DDS Node")
	require.NoError(t, err)

	text := string(content)
	assert.True(t, strings.HasPrefix(text, "# motor_ctl DDS Node\n"))
	assert.Equal(t, 1, strings.Count(text, "motor_ctl"), "name appears exactly once")

	for _, header := range []string{
		"## Description",
		"## Topics Published to",
		"## Topics Subscribed to",
		"## Parameters",
		"## Acknowledgements",
	} {
		assert.Contains(t, text, header)
	}

	// One placeholder table row per topic section.
	assert.Equal(t, 2, strings.Count(text, "| TODO  | TODO | TODO        |"))
}

func TestBuildFile(t *testing.T) {
	t.Run("makefile is empty", func(t *testing.T) {
		name, content, err := templates.BuildFile(config.BuildFileMakefile, "motor_ctl")
		require.NoError(t, err)
		assert.Equal(t, "Makefile", name)
		assert.Empty(t, content)
	})

	t.Run("cmake carries a project skeleton", func(t *testing.T) {
		name, content, err := templates.BuildFile(config.BuildFileCMake, "motor_ctl")
		require.NoError(t, err)
		assert.Equal(t, "CMakeLists.txt", name)
		assert.Contains(t, string(content), "project(motor_ctl LANGUAGES CXX)")
		assert.Contains(t, string(content), "add_executable(motor_ctl")
	})

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := templates.BuildFile("bazel", "motor_ctl")
		require.Error(t, err)
		assert.True(t, srpkgerr.IsErrorCode(err, srpkgerr.ErrTemplateRender))
	})
}

func TestNodeConfig(t *testing.T) {
	content, err := templates.NodeConfig("motor_ctl")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(content), "\n"))

	var parsed struct {
		Node struct {
			Name   string            `json:"name"`
			Params map[string]string `json:"params"`
		} `json:"node"`
	}
	require.NoError(t, json.Unmarshal(content, &parsed))
	assert.Equal(t, "motor_ctl", parsed.Node.Name)
	assert.Empty(t, parsed.Node.Params)
}

func TestLaunch(t *testing.T) {
	content, err := templates.Launch("motor_ctl")
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(content))

	launch := doc.SelectElement("launch")
	require.NotNil(t, launch)

	node := launch.SelectElement("node")
	require.NotNil(t, node)
	assert.Equal(t, "motor_ctl", node.SelectAttrValue("name", ""))
	assert.Equal(t, "config/motor_ctl.json", node.SelectAttrValue("config", ""))
}
