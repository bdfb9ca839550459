package config

import (
	"strconv"
	"time"
)

// SandboxConfig points at the remote code-execution service. The timeout
// bounds a single sandbox call; the judge imposes no timeout of its own.
type SandboxConfig struct {
	Url            string
	RequestTimeout time.Duration
	MaxConcurrency int
}

func NewSandboxConfig() *SandboxConfig {
	timeoutSec, err := strconv.Atoi(getEnv("SANDBOX_TIMEOUT_SEC", ""))
	if err != nil {
		timeoutSec = 30
	}
	concurrency, err := strconv.Atoi(getEnv("SANDBOX_MAX_CONCURRENCY", ""))
	if err != nil || concurrency < 1 {
		concurrency = 4
	}
	return &SandboxConfig{
		Url:            getEnv("SANDBOX_URL", "http://localhost:5000"),
		RequestTimeout: time.Duration(timeoutSec) * time.Second,
		MaxConcurrency: concurrency,
	}
}
