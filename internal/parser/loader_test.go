package parser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/user/csf_analyzer_go/internal/parser"
)

// writeResultFile creates one trial CSV under root/channel/name.
func writeResultFile(t *testing.T, root, channel, name, content string) {
	t.Helper()
	dir := filepath.Join(root, channel)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

const validTrials = "0.5,4.0,0,0,0\n0.1,4.0,0,0,0\n0.4,8.0,0,0,0\n0.05,8.0,0,0,0\n"

func TestLoadNetworkResults_AreaLabels(t *testing.T) {
	root := t.TempDir()
	writeResultFile(t, root, "lum", "test_area2.csv", validTrials)
	writeResultFile(t, root, "rg", "noarea.csv", validTrials)

	results, err := parser.LoadNetworkResults(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"lum", "rg"}, results.Names)
	require.Len(t, results.Channels["lum"], 1)
	require.Len(t, results.Channels["rg"], 1)
	assert.Equal(t, "area2", results.Channels["lum"][0].Area)
	assert.Equal(t, "", results.Channels["rg"][0].Area)
	assert.Len(t, results.Channels["lum"][0].Matrix, 4)
}

func TestLoadNetworkResults_ChannelFilter(t *testing.T) {
	root := t.TempDir()
	writeResultFile(t, root, "lum", "a.csv", validTrials)
	writeResultFile(t, root, "rg", "b.csv", validTrials)
	writeResultFile(t, root, "yb", "c.csv", validTrials)

	results, err := parser.LoadNetworkResults(root, []string{"lum"})
	require.NoError(t, err)

	assert.Equal(t, []string{"lum"}, results.Names)
	assert.NotContains(t, results.Channels, "rg")
	assert.NotContains(t, results.Channels, "yb")
}

func TestLoadNetworkResults_EmptyChannelOmitted(t *testing.T) {
	root := t.TempDir()
	writeResultFile(t, root, "lum", "a.csv", validTrials)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "rg"), 0o755))

	results, err := parser.LoadNetworkResults(root, nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"lum"}, results.Names)
	assert.NotContains(t, results.Channels, "rg")
}

func TestLoadNetworkResults_FileOrder(t *testing.T) {
	root := t.TempDir()
	writeResultFile(t, root, "lum", "b_area1.csv", validTrials)
	writeResultFile(t, root, "lum", "a_area0.csv", validTrials)
	writeResultFile(t, root, "lum", "c_area2.csv", validTrials)

	results, err := parser.LoadNetworkResults(root, nil)
	require.NoError(t, err)

	require.Len(t, results.Channels["lum"], 3)
	areas := []string{
		results.Channels["lum"][0].Area,
		results.Channels["lum"][1].Area,
		results.Channels["lum"][2].Area,
	}
	assert.Equal(t, []string{"area0", "area1", "area2"}, areas)
}

func TestLoadNetworkResults_MalformedFileAborts(t *testing.T) {
	root := t.TempDir()
	writeResultFile(t, root, "lum", "good.csv", validTrials)
	writeResultFile(t, root, "rg", "bad.csv", "0.5,not-a-number,0,0,0\n")

	results, err := parser.LoadNetworkResults(root, nil)
	assert.Nil(t, results)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv")
}

func TestLoadNetworkResults_MissingRoot(t *testing.T) {
	results, err := parser.LoadNetworkResults(filepath.Join(t.TempDir(), "absent"), nil)
	assert.Nil(t, results)
	assert.Error(t, err)
}
