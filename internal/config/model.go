// internal/config/model.go
//
// Typed configuration model for vibetips.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `.env`                        – dotenv values,
//   • `conf/global.yaml`                     – primary static file,
//   • `VIBE_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`; Koanf ignores `yaml` tags
//     unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.  No em-dash.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
	ForceHTTPS bool   `koanf:"force_https"`
}

//
// Database section
//

// Database holds the content-database DSN.  Operators usually keep the
// host and flags in YAML and inject the password through the env overlay
// (`VIBE_DATABASE__DSN`), keeping credentials out of git history.
type Database struct {
	DSN string `koanf:"dsn" validate:"required"`
}

//
// Content section
//

// Content tunes the snapshot and the list pipeline.
type Content struct {
	SnapshotTTL     string `koanf:"snapshot_ttl"`      // Go duration, default 24h
	TipsDir         string `koanf:"tips_dir"`          // default content/tips
	RelatedLimit    int    `koanf:"related_limit"`     // default 5
	ResolverCacheSz int    `koanf:"resolver_cache_sz"` // default 512
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime, never set in YAML or env.  The loader
// discovers `Root` (repo root or VIBE_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // VIBE_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP     HTTP     `koanf:"http"`
	Database Database `koanf:"database"`
	Content  Content  `koanf:"content"`
	Paths    Paths    `koanf:"-"` // not loaded from config files
}
