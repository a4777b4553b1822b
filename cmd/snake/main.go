package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gridsnake/internal/app"
	"gridsnake/internal/host"
	_ "gridsnake/internal/raylib"
	"gridsnake/internal/snake"
	_ "gridsnake/internal/term"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// toMap splits key=value entries; entries without '=' are skipped.
func (l kvList) toMap() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	var overrides kvList
	flag.Var(&overrides, "set", "game override in key=value form: w, h, cell, seed, strict_tail, exclude_occupied (repeatable)")
	flag.Parse()

	logFile := setupLogging(cfg.Debug)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg, overrides); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		log.Printf("fatal: %v", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *app.Config, overrides kvList) error {
	gameCfg := snake.FromMap(overrides.toMap())
	if cfg.Seed != 0 {
		gameCfg.Seed = cfg.Seed
	}

	runner, err := host.Lookup(cfg.Backend)
	if err != nil {
		return err
	}

	session, err := snake.NewSession(gameCfg)
	if err != nil {
		return fmt.Errorf("new session: %w", err)
	}
	geom := session.Geometry()
	log.Printf("session %s: start backend=%s board=%dx%d seed=%d rules=%+v",
		session.ID(), cfg.Backend, geom.Cols(), geom.Rows(), session.Seed(), session.Rules())

	opts := host.DefaultOptions()
	if cfg.TPS > 0 {
		opts.TPS = cfg.TPS
	}
	if err := runner(session, opts); err != nil {
		return fmt.Errorf("%s backend: %w", cfg.Backend, err)
	}
	log.Printf("session %s: closed after %d ticks", session.ID(), session.Snapshot().Tick)
	return nil
}
