// stackbench runs push/pop workloads against a Context and reports
// timings and block usage. Configuration comes from built-in defaults
// overridable with STACKBENCH_-prefixed environment variables, e.g.
//
//	STACKBENCH_PUSHES=1000000 STACKBENCH_BLOCK_CAPACITY=256 stackbench
package main

import (
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/pavanmanishd/stackctx"
)

type config struct {
	BlockCapacity int `koanf:"block_capacity"`
	Pushes        int `koanf:"pushes"`
	Rounds        int `koanf:"rounds"`
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("failed to load configuration", "err", err)
	}
	log.Info("starting workload",
		"block_capacity", cfg.BlockCapacity,
		"pushes", cfg.Pushes,
		"rounds", cfg.Rounds,
	)

	for round := 1; round <= cfg.Rounds; round++ {
		elapsed, m := runRound(cfg)
		log.Info("round complete",
			"round", round,
			"elapsed", elapsed,
			"blocks", m.NumBlocks,
			"capacity_slots", m.Capacity,
			"peak_len", m.Len,
		)
	}

	scopedElapsed := runScoped(cfg)
	log.Info("scoped workload complete", "elapsed", scopedElapsed)
}

func loadConfig() (config, error) {
	k := koanf.New(".")
	defaults := confmap.Provider(map[string]any{
		"block_capacity": 64,
		"pushes":         100000,
		"rounds":         3,
	}, ".")
	if err := k.Load(defaults, nil); err != nil {
		return config{}, err
	}
	vars := env.Provider("STACKBENCH_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "STACKBENCH_"))
	})
	if err := k.Load(vars, nil); err != nil {
		return config{}, err
	}
	var cfg config
	if err := k.Unmarshal("", &cfg); err != nil {
		return config{}, err
	}
	return cfg, nil
}

// runRound pushes cfg.Pushes values through owned slots, snapshots the
// metrics at peak depth, then unwinds in reverse order.
func runRound(cfg config) (time.Duration, stackctx.ContextMetrics) {
	c := stackctx.New[int](cfg.BlockCapacity)
	defer c.Close()

	var tok stackctx.ScopeToken
	slots := make([]*stackctx.OwnedSlot[int], 0, cfg.Pushes)

	start := time.Now()
	for i := 0; i < cfg.Pushes; i++ {
		slots = append(slots, c.Push(&tok, i))
	}
	m := c.Metrics()
	for i := len(slots) - 1; i >= 0; i-- {
		slots[i].Release()
	}
	return time.Since(start), m
}

// runScoped exercises the callback layer with nested scopes.
func runScoped(cfg config) time.Duration {
	c := stackctx.New[int](cfg.BlockCapacity)
	defer c.Close()

	start := time.Now()
	for i := 0; i < cfg.Pushes; i++ {
		c.Scoped(i, func(v *int) {
			c.TryGet(func(top *int) {
				if *top != *v {
					log.Fatal("top diverged from scoped value", "top", *top, "want", *v)
				}
			})
		})
	}
	return time.Since(start)
}
