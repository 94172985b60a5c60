package llm

import (
	"os"
	"strconv"
)

// TaskType identifies the kind of generation task being performed.
type TaskType string

const (
	// TaskPlanDraft is the initial generation of a learning path.
	TaskPlanDraft TaskType = "plan_draft"
	// TaskPlanExtend is the continuation of an existing path.
	TaskPlanExtend TaskType = "plan_extend"
)

// TaskConfig holds per-task generation parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds all configuration for the model subsystem.
type Config struct {
	Endpoint   string
	Model      string
	TimeoutMs  int
	MaxRetries int
	LogCalls   bool
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults for a local
// Ollama instance. Plan generation is slow; both tasks carry generous
// timeouts and large token budgets.
func DefaultConfig() Config {
	return Config{
		Endpoint:   "http://localhost:11434",
		Model:      "llama3.2",
		TimeoutMs:  30000,
		MaxRetries: 1,
		LogCalls:   false,
		Tasks: map[TaskType]TaskConfig{
			TaskPlanDraft:  {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
			TaskPlanExtend: {Temperature: 0.4, MaxTokens: 4096, TimeoutMs: 60000},
		},
	}
}

// LoadConfig reads model configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PATHWISE_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PATHWISE_LLM_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("PATHWISE_LLM_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.MaxRetries = n
		}
	}
	if v := os.Getenv("PATHWISE_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	applyTaskTimeoutEnv(&cfg, TaskPlanDraft, "PATHWISE_LLM_DRAFT_TIMEOUT_MS")
	applyTaskTimeoutEnv(&cfg, TaskPlanExtend, "PATHWISE_LLM_EXTEND_TIMEOUT_MS")

	return cfg
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}

func applyTaskTimeoutEnv(cfg *Config, task TaskType, envName string) {
	v := os.Getenv(envName)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return
	}
	tc := cfg.Tasks[task]
	tc.TimeoutMs = n
	cfg.Tasks[task] = tc
}
