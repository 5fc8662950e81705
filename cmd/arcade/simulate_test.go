package main

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hungry-chameleon/internal/games/chameleon/sim"
)

func TestSimulateSessionClears(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := sim.DefaultConfig()

	for seed := int64(1); seed <= 3; seed++ {
		res, err := simulateSession(cfg, seed, 100000, logger)
		if err != nil {
			t.Fatalf("simulateSession(%d) failed: %v", seed, err)
		}
		if !res.Cleared || res.Eaten != cfg.FlyCount || res.Flies != cfg.FlyCount {
			t.Errorf("seed %d: %+v, expected a cleared field", seed, res)
		}
	}
}

func TestSimulateSessionDeterministic(t *testing.T) {
	logger := log.New(io.Discard)
	cfg := sim.DefaultConfig()

	a, _ := simulateSession(cfg, 42, 100000, logger)
	b, _ := simulateSession(cfg, 42, 100000, logger)
	if a != b {
		t.Errorf("same seed gave %+v and %+v", a, b)
	}
}

func TestSimulateSessionGivesUp(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.CaptureThreshold = 0 // nothing can ever be caught
	cfg.TongueReach = 0

	res, err := simulateSession(cfg, 1, 50, log.New(io.Discard))
	if err != nil {
		t.Fatalf("simulateSession failed: %v", err)
	}
	if res.Cleared || res.Ticks != 50 || res.Eaten != 0 {
		t.Errorf("result = %+v, expected to give up after 50 ticks", res)
	}
}

func TestSimulateRejectsBadConfig(t *testing.T) {
	cfg := sim.DefaultConfig()
	cfg.Width = -1
	if _, err := simulateSession(cfg, 1, 10, log.New(io.Discard)); err == nil {
		t.Error("expected an invalid config error")
	}
}
