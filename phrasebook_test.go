package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhrasebookDefaults(t *testing.T) {
	pb, err := NewPhrasebook("")
	require.NoError(t, err)
	defer pb.Close()

	assert.True(t, pb.set("greet").Match(normalizeText("hello there")))
	assert.True(t, pb.set("out_of_scope").Match(normalizeText("the weather today")))
	assert.False(t, pb.set("help").Match(normalizeText("help me block a card")), "help is exact-match")
	assert.Len(t, pb.variants("greet"), 5)
	assert.Len(t, pb.variants("thanks"), 5)
	assert.NotEmpty(t, pb.variants("fallback"))
}

func TestPhrasebookOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebook.json")
	overlay := `{
		"keywords": {"greet": ["howdy"]},
		"responses": {"greet": ["Howdy, partner!"]}
	}`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))

	pb, err := NewPhrasebook(path)
	require.NoError(t, err)
	defer pb.Close()

	assert.True(t, pb.set("greet").Match(normalizeText("howdy")))
	assert.False(t, pb.set("greet").Match(normalizeText("hello")), "overlay replaces the default list")
	assert.Equal(t, []string{"Howdy, partner!"}, pb.variants("greet"))
	// Intents the overlay does not mention keep their defaults.
	assert.True(t, pb.set("balance").Match(normalizeText("balance please")))
}

func TestPhrasebookPicksUpLateOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "phrasebook.json")

	pb, err := NewPhrasebook(path)
	require.NoError(t, err)
	defer pb.Close()
	assert.True(t, pb.set("greet").Match(normalizeText("hello")))

	overlay := `{"keywords": {"greet": ["howdy"]}}`
	require.NoError(t, os.WriteFile(path, []byte(overlay), 0o644))
	// The mod-time check on access reloads without the watcher goroutine.
	require.Eventually(t, func() bool {
		return pb.set("greet").Match(normalizeText("howdy"))
	}, 2*time.Second, 50*time.Millisecond)
}

func TestPhrasebookRejectsBadOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrasebook.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewPhrasebook(path)
	assert.Error(t, err)
}

func TestPhrasebookInfo(t *testing.T) {
	pb, err := NewPhrasebook("")
	require.NoError(t, err)
	defer pb.Close()

	info := pb.Info()
	keywords, ok := info["keywords"].(map[string]int)
	require.True(t, ok)
	assert.Greater(t, keywords["transaction"], 5)
}
