package app

import (
	"flag"
	"testing"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewConfig()
	if cfg.Backend != "window" || cfg.TPS != 10 || cfg.Seed != 0 || cfg.Debug {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-backend", "terminal", "-tps", "15", "-seed", "9", "-debug"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Backend != "terminal" || cfg.TPS != 15 || cfg.Seed != 9 || !cfg.Debug {
		t.Fatalf("flags not bound: %+v", cfg)
	}
}
