// forge-sim — soak-прогон transmute движка: N активаций на demo каталоге,
// whitelist из Postgres или встроенных фикстур, итоговое распределение
// исходов из prometheus счётчиков.
//
// Usage:
//
//	forge-sim -n 100000 -workers 8 -seed 42
//	forge-sim -db -config config/forge.yaml
//	forge-sim -listen :9090     # оставляет /metrics поднятым после прогона
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/la2forge/internal/config"
	"github.com/udisondev/la2forge/internal/data"
	"github.com/udisondev/la2forge/internal/db"
	"github.com/udisondev/la2forge/internal/game/itemhandler"
	"github.com/udisondev/la2forge/internal/game/transmute"
	"github.com/udisondev/la2forge/internal/model"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to yaml config (default: built-in defaults)")
		n          = flag.Int("n", 10000, "activations to simulate")
		workers    = flag.Int("workers", 4, "parallel workers")
		seed       = flag.Uint64("seed", 1, "base RNG seed (worker i uses seed+i)")
		useDB      = flag.Bool("db", false, "load whitelist from PostgreSQL (runs migrations)")
		listen     = flag.String("listen", "", "keep serving /metrics on this address after the run")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *configPath, *n, *workers, *seed, *useDB, *listen); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath string, n, workers int, seed uint64, useDB bool, listen string) error {
	cfg := config.DefaultForge()
	if configPath != "" {
		var err error
		cfg, err = config.LoadForge(configPath)
		if err != nil {
			return err
		}
	}

	catalog := data.NewCatalog(fixtureTemplates())
	spells := data.NewSpellDefs(fixtureSpellDefs())
	defs := data.NewEnchantDefs(fixtureEnchantDefs(cfg.Transmute.MarkerEnchantID), spells, cfg.Transmute.MarkerEnchantID)
	slog.Info("loaded demo reference data",
		"templates", catalog.Size(),
		"enchants", len(defs.All()),
		"spells", spells.Size())

	var source transmute.WhitelistSource = staticWhitelist{}
	if useDB {
		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return err
		}
		pool, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return err
		}
		defer pool.Close()
		source = db.NewWhitelistRepository(pool.Pool())
	}

	whitelist := transmute.NewWhitelist(source, slog.Default())
	if err := whitelist.Reload(ctx); err != nil {
		return err
	}
	auditWhitelist(whitelist, defs)

	g, ctx := errgroup.WithContext(ctx)

	if listen != "" {
		srv := &http.Server{Addr: listen, Handler: promhttp.Handler()}
		g.Go(func() error {
			slog.Info("metrics listening", "addr", listen)
			if err := srv.ListenAndServe(); err != http.ErrServerClosed {
				return err
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			return srv.Shutdown(context.Background())
		})
	}

	perWorker := n / workers
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			return simulate(ctx, cfg.Transmute, catalog, whitelist, seed+uint64(w), perWorker)
		})
	}

	// С поднятым /metrics g.Wait вернётся только по сигналу завершения.
	if err := g.Wait(); err != nil {
		return err
	}
	return printSummary()
}

// simulate гоняет count активаций: свежий игрок, катализатор и случайная
// цель (поровну equipped и bag) на каждую итерацию.
func simulate(ctx context.Context, policy config.Transmute, catalog *data.Catalog, whitelist *transmute.Whitelist, seed uint64, count int) error {
	roller := transmute.NewSeededRoller(seed)
	engine, err := transmute.NewEngine(policy, catalog, whitelist, roller, slog.Default())
	if err != nil {
		return err
	}

	// UseItem идёт через registry, как на живом сервере: катализатор
	// перехватывается, остальные предметы падают в default use-путь.
	handlers := itemhandler.NewRegistry()
	handlers.Register(policy.CatalystItemID, itemhandler.HandlerFunc(
		func(ctx context.Context, player *model.Player, item, target *model.Item) bool {
			return engine.Activate(ctx, player, item, target)
		}))

	gear := gearTemplates(catalog)
	if len(gear) == 0 {
		return fmt.Errorf("no gear templates in catalog")
	}

	for i := 0; i < count; i++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		player := model.NewPlayer(1000+int64(seed), "sim", catalog.Lookup)

		catalyst, err := player.StoreNew(model.AnySlot, policy.CatalystItemID)
		if err != nil {
			return fmt.Errorf("storing catalyst: %w", err)
		}

		tmpl := gear[roller.IntN(len(gear))]
		target, err := player.NewItem(tmpl.ItemID, 1)
		if err != nil {
			return fmt.Errorf("creating target: %w", err)
		}
		if roller.IntN(2) == 0 {
			if err := player.Inventory().Equip(target, tmpl.PaperdollSlot()); err != nil {
				return fmt.Errorf("equipping target: %w", err)
			}
		} else if res := player.Inventory().Store(target, model.AnySlot); res != model.StoreOK {
			return fmt.Errorf("storing target: %s", res)
		}

		if !handlers.Use(ctx, player, catalyst, target) {
			return fmt.Errorf("activation not handled for template %d", tmpl.ItemID)
		}
	}
	return nil
}

func gearTemplates(catalog *data.Catalog) []*model.ItemTemplate {
	var out []*model.ItemTemplate
	for _, refs := range catalog.IndexByClass() {
		for _, ref := range refs {
			out = append(out, catalog.Lookup(ref.ItemID))
		}
	}
	return out
}

// auditWhitelist предупреждает о строках, чей enchant непригоден для пула,
// в котором строка состоит: такие строки тратят вес впустую.
func auditWhitelist(whitelist *transmute.Whitelist, defs *data.EnchantDefs) {
	for _, isWeapon := range []bool{true, false} {
		for _, row := range whitelist.Pool(isWeapon) {
			def := defs.Lookup(row.EnchantID)
			if def == nil {
				slog.Warn("whitelist row references unknown enchant",
					"enchant", row.EnchantID, "weapon_pool", isWeapon)
				continue
			}
			if !defs.UsableOn(def, isWeapon) {
				slog.Warn("whitelist row unusable for its pool",
					"enchant", row.EnchantID, "weapon_pool", isWeapon)
			}
		}
	}
}

// printSummary печатает распределение исходов из prometheus registry.
func printSummary() error {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}

	fmt.Println("--- outcome distribution ---")
	for _, fam := range families {
		if !strings.HasPrefix(fam.GetName(), "la2forge_transmute_") {
			continue
		}
		for _, m := range fam.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			switch {
			case m.GetCounter() != nil:
				fmt.Printf("%s{%s} %.0f\n", fam.GetName(), strings.Join(labels, ","), m.GetCounter().GetValue())
			case m.GetHistogram() != nil:
				fmt.Printf("%s count=%d sum=%.0f\n", fam.GetName(), m.GetHistogram().GetSampleCount(), m.GetHistogram().GetSampleSum())
			}
		}
	}
	return nil
}
