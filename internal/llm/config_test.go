package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig_ClassifyTimeoutMatchesGlobalDefault(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 10000, cfg.Tasks[TaskClassify].TimeoutMs)
}

func TestLoadConfig_TaskTimeoutOverrides(t *testing.T) {
	t.Setenv("CHECKIN_LLM_TIMEOUT_MS", "9000")
	t.Setenv("CHECKIN_LLM_CLASSIFY_TIMEOUT_MS", "4000")
	t.Setenv("CHECKIN_LLM_SUMMARIZE_TIMEOUT_MS", "30000")

	cfg := LoadConfig()

	assert.Equal(t, 9000, cfg.TimeoutMs)
	assert.Equal(t, 4000, cfg.TaskTimeout(TaskClassify))
	assert.Equal(t, 30000, cfg.TaskTimeout(TaskSummarize))
	assert.Equal(t, 15000, cfg.TaskTimeout(TaskQuestion))
}

func TestLoadConfig_InvalidTaskTimeoutOverrideIgnored(t *testing.T) {
	t.Setenv("CHECKIN_LLM_CLASSIFY_TIMEOUT_MS", "not-a-number")

	cfg := LoadConfig()

	assert.Equal(t, 10000, cfg.TaskTimeout(TaskClassify))
}

func TestLoadConfig_EndpointAndModel(t *testing.T) {
	t.Setenv("CHECKIN_LLM_ENDPOINT", "http://10.0.0.5:11434")
	t.Setenv("CHECKIN_LLM_MODEL", "qwen2.5")

	cfg := LoadConfig()

	assert.Equal(t, "http://10.0.0.5:11434", cfg.Endpoint)
	assert.Equal(t, "qwen2.5", cfg.Model)
}
