package publisher

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article_studio/internal/domain"
)

func TestNewMessage(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	artifact := domain.NewArtifact("article_volcanoes_20240101.md", "# Volcanoes")

	msg := newMessage("job-1", artifact, now)

	assert.Equal(t, ActionGenerated, msg.Action)
	assert.Equal(t, "job-1", msg.JobID)
	assert.Equal(t, time.UTC, msg.Timestamp.Location())

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(body, &raw))
	assert.Equal(t, "generated", raw["action"])
	assert.Equal(t, "job-1", raw["job_id"])

	artifactJSON, ok := raw["artifact"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "article_volcanoes_20240101.md", artifactJSON["filename"])
	assert.Equal(t, "markup", artifactJSON["format"])
	assert.Equal(t, "# Volcanoes", artifactJSON["content"])
}
