package config

import (
	"os"
	"strconv"
	"time"
)

// Verbosity is the CLI output level.
type Verbosity int

const (
	// Normal shows animated progress and the summary.
	Normal Verbosity = iota
	// Quiet suppresses the progress UI; the summary still prints.
	Quiet
	// Verbose echoes every git command and its output, and disables
	// concurrent updates so the traces stay readable.
	Verbose
)

// DefaultTimeout bounds a single git invocation.
const DefaultTimeout = 30 * time.Second

// TimeoutEnvVar overrides the git timeout, in seconds. Read once at startup.
const TimeoutEnvVar = "GITDAILY_TIMEOUT"

// DefaultPoolSize bounds concurrent repository updates. Git work is network
// and disk bound, so the bound sits well above typical CPU counts.
const DefaultPoolSize = 60

// Config is the runtime configuration. It is built once at startup and passed
// explicitly to every component that needs it; nothing reads it ambiently.
type Config struct {
	Verbosity      Verbosity
	ProcessTimeout time.Duration
	PoolSize       int
}

// New builds the runtime config for the given verbosity, folding the
// environment timeout override into ProcessTimeout.
func New(verbosity Verbosity) *Config {
	return &Config{
		Verbosity:      verbosity,
		ProcessTimeout: timeoutFromEnv(),
		PoolSize:       DefaultPoolSize,
	}
}

// IsQuiet returns true if all output should be suppressed
func (c *Config) IsQuiet() bool {
	return c.Verbosity == Quiet
}

// IsVerbose returns true if git commands should be echoed
func (c *Config) IsVerbose() bool {
	return c.Verbosity == Verbose
}

func timeoutFromEnv() time.Duration {
	s := os.Getenv(TimeoutEnvVar)
	if s == "" {
		return DefaultTimeout
	}
	secs, err := strconv.Atoi(s)
	if err != nil || secs <= 0 {
		return DefaultTimeout
	}
	return time.Duration(secs) * time.Second
}
