package config

import (
	"strconv"
	"time"
)

type SessionConfig struct {
	// LoginStateTTL bounds how long an issued login state stays valid
	// before consumption.
	LoginStateTTL time.Duration
}

func NewSessionConfig() *SessionConfig {
	ttlSec, err := strconv.Atoi(getEnv("LOGIN_STATE_TTL_SEC", ""))
	if err != nil || ttlSec <= 0 {
		ttlSec = 600
	}
	return &SessionConfig{
		LoginStateTTL: time.Duration(ttlSec) * time.Second,
	}
}
