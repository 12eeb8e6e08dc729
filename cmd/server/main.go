package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	httpadapter "bountyverse/internal/adapter/http"
	"bountyverse/internal/adapter/manifest"
	metricsinmem "bountyverse/internal/adapter/metrics/inmemory"
	gormrepo "bountyverse/internal/adapter/repo/gorm"
	"bountyverse/internal/adapter/repo/memory"
	squadmock "bountyverse/internal/adapter/squads/mock"
	"bountyverse/internal/app/board"
	"bountyverse/internal/app/catalog"
	"bountyverse/internal/app/constraint"
	"bountyverse/internal/app/ports"
	"bountyverse/internal/app/savegame"
	"bountyverse/internal/app/session"
	"bountyverse/internal/domain/economy"
	"bountyverse/internal/domain/faction"
	"bountyverse/internal/domain/gameclock"

	"github.com/cloudwego/hertz/pkg/app/server"
	"gorm.io/gorm"
)

func main() {
	saveRepo, txManager := mustBuildRepos()

	clock := gameclock.New(time.Now().UTC(), floatEnv("BOUNTYVERSE_TIME_MULT", gameclock.DefaultMultiplier))
	bank := economy.NewBank()
	stance := faction.NewStance()
	stance.RegisterDefaults()
	cat := catalog.New()
	cat.RegisterDefaults()
	loadContent(cat, stance)

	squads := squadmock.NewProvider()
	kpiRecorder := metricsinmem.NewRecorder()

	brd := board.New(board.Config{
		Catalog:  cat,
		Registry: constraint.NewRegistry(),
		Clock:    clock,
		Sessions: session.NewLog(),
		Bank:     bank,
		Stance:   stance,
		Squads:   squads,
		Metrics:  kpiRecorder,
		Rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	})
	clock.OnTimeAdvanced(brd.Tick)

	saveUC := savegame.UseCase{
		Repo:  saveRepo,
		Tx:    txManager,
		Slot:  strEnv("BOUNTYVERSE_SAVE_SLOT", "default"),
		Board: brd,
	}
	loaded, err := saveUC.Load(context.Background())
	if err != nil {
		log.Fatalf("load save slot: %v", err)
	}
	if loaded {
		log.Printf("restored save slot %q", saveUC.Slot)
	}

	if tick := intEnv("BOUNTYVERSE_TICK_SECONDS", 5); tick > 0 {
		go runTicker(brd, time.Duration(tick)*time.Second)
	}

	h := httpadapter.Handler{
		Board:   brd,
		Save:    saveUC,
		Rosters: squads,
		KPI:     kpiRecorder,
	}

	addr := strEnv("BOUNTYVERSE_ADDR", ":8080")
	s := server.Default(server.WithHostPorts(addr))
	h.RegisterRoutes(s)

	log.Printf("bountyverse server listening on %s", addr)
	s.Spin()
}

// runTicker drives in-game time from wall time. The HTTP clock endpoint can
// advance time as well; both paths go through the same board method.
func runTicker(brd *board.Board, interval time.Duration) {
	t := time.NewTicker(interval)
	defer t.Stop()
	for range t.C {
		brd.AdvanceClock(interval)
	}
}

func mustBuildRepos() (ports.SaveStateRepository, ports.TxManager) {
	dsn := strings.TrimSpace(os.Getenv("BOUNTYVERSE_DB_DSN"))
	if dsn == "" {
		log.Println("BOUNTYVERSE_DB_DSN not set, using in-memory save store")
		store := memory.NewStore()
		return memory.NewSaveStateRepo(store), memory.NewTxManager(store)
	}

	db, err := openPostgresWithRetry(dsn, 5, 2*time.Second)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	migrationsDir := strEnv("BOUNTYVERSE_MIGRATIONS_DIR", "./migrations")
	if err := gormrepo.ApplyMigrations(context.Background(), db, migrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}
	return gormrepo.NewSaveStateRepo(db), gormrepo.NewTxManager(db)
}

// openPostgresWithRetry covers the window where the database container is
// still coming up.
func openPostgresWithRetry(dsn string, attempts int, backoff time.Duration) (db *gorm.DB, err error) {
	for i := 0; i < attempts; i++ {
		db, err = gormrepo.OpenPostgres(dsn)
		if err == nil {
			return db, nil
		}
		log.Printf("open postgres (attempt %d/%d): %v", i+1, attempts, err)
		time.Sleep(backoff)
	}
	return nil, err
}

func loadContent(cat *catalog.Catalog, stance *faction.Stance) {
	root := strings.TrimSpace(os.Getenv("BOUNTYVERSE_CONTENT_ROOT"))
	if root == "" {
		return
	}
	report, err := manifest.Loader{Root: root}.Load(context.Background(), cat, stance)
	if err != nil {
		log.Fatalf("load content root %q: %v", root, err)
	}
	log.Printf("loaded %d content packages (%d factions, %d templates, %d skipped)",
		report.Packages, report.Factions, report.Templates, len(report.Skipped))
	for _, skipped := range report.Skipped {
		log.Printf("skipped content file: %s", skipped)
	}
}

func strEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func intEnv(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func floatEnv(key string, fallback float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
