// cmd/web/main.go
//
// vibetips – HTTP entry point.
//
// Boot sequence
// -------------
//
//  1. Load env vars (jail-wide file → .env fallback).
//
//  2. Start daily rotating logger (tees to console when running in a TTY).
//
//  3. Load and validate configuration (YAML + VIBE_ env overlay).
//
//  4. Open the content DB and log the completed-insight count as an early
//     sanity check.
//
//  5. Build the snapshot cache (lazy-loads the content set on first hit)
//     and read the static tip collection.
//
//  6. Expose Prometheus /metrics, then mount the content router, wrapped
//     with ForceHTTPS when configured.
//
// Large comment blocks are framed by blank “//” lines; inline comments use
// a single “//”.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vibecodingtips/vibetips/internal/config"
	"github.com/vibecodingtips/vibetips/internal/content/store"
	"github.com/vibecodingtips/vibetips/internal/database"
	"github.com/vibecodingtips/vibetips/internal/logger"
	"github.com/vibecodingtips/vibetips/internal/server"
	"github.com/vibecodingtips/vibetips/internal/snapshot"
	"github.com/vibecodingtips/vibetips/internal/tips"
	"github.com/vibecodingtips/vibetips/internal/web"
)

const serverEnvPath = "/usr/local/etc/vibetips/global.env"

// loadEnv prefers the jail-wide env file; on dev it falls back to .env.
func loadEnv() {
	if _, err := os.Stat(serverEnvPath); err == nil {
		_ = godotenv.Load(serverEnvPath)
		return
	}
	_ = godotenv.Load()
}

// runningInTTY returns true when stdout is a character device.
func runningInTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func init() { loadEnv() }

func main() {
	rootDir, _ := os.Getwd()
	logOut, err := logger.New(rootDir, runningInTTY())
	if err != nil {
		log.Fatalf("start logger: %v", err)
	}

	//
	// ── 1.  Configuration ───────────────────────────────────────────────
	//
	cfg, err := config.Load()
	if err != nil {
		logOut.Fatalf("load config: %v", err)
	}

	//
	// ── 2.  Content DB connect ──────────────────────────────────────────
	//
	bootCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logOut.Info("connecting to content DB …")
	db, err := database.Open(bootCtx, cfg.Database.DSN)
	if err != nil {
		logOut.Fatalf("connect content DB: %v", err)
	}
	defer db.Close()
	logOut.Info("content DB online")

	st := store.New(db)
	if n, err := st.CountInsights(bootCtx); err == nil {
		logOut.Infof("%d completed insight(s) found", n)
	}

	//
	// ── 3.  Snapshot cache + static tips ────────────────────────────────
	//
	snap := snapshot.New(st, cfg.SnapshotTTL())

	col, err := tips.Load(cfg.Content.TipsDir)
	if err != nil {
		logOut.Fatalf("load tips: %v", err)
	}
	logOut.Infof("%d static tip(s) loaded", len(col.All()))

	//
	// ── 4.  Metrics endpoint ────────────────────────────────────────────
	//
	http.Handle("/metrics", promhttp.Handler())

	//
	// ── 5.  Content router ──────────────────────────────────────────────
	//
	srv := web.New(snap, col, web.Options{
		RelatedLimit:    cfg.Content.RelatedLimit,
		ResolverCacheSz: cfg.Content.ResolverCacheSz,
	})
	http.Handle("/", srv.Router(cfg.HTTP.ForceHTTPS))

	logOut.Infof("listening on %s", cfg.HTTP.ListenAddr)
	if err := server.Run(server.New(cfg.HTTP.ListenAddr, http.DefaultServeMux)); err != nil {
		logOut.Fatalf("http server: %v", err)
	}
	logOut.Info("shutdown complete")
}
