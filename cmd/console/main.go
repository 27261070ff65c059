// Command console is the terminal admin console for the role catalog: it
// authenticates against the auth service, persists the session locally, and
// drives the admin role service.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/ports"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/core/service"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/adminapi"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/authapi"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/httpx"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/infrastructure/store"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/internal/pkg/config"
	"github.com/Dharshika-112/Skill-Gap-Analyzer-sub001/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
		Output: os.Stderr,
	})

	ctx := context.Background()

	sessionStore, err := buildStore(ctx, cfg)
	if err != nil {
		log.Error().Err(err).Msg("initialising session store")
		os.Exit(1)
	}

	tokens := httpx.NewTokenHolder()
	authClient := authapi.NewClient(cfg.AuthBaseURL, tokens, cfg.HTTPTimeout, log)
	adminClient := adminapi.NewClient(cfg.AdminBaseURL, tokens, cfg.HTTPTimeout, log)

	sessions := service.NewSessionService(authClient, sessionStore, tokens, log)
	console := service.NewRoleConsoleService(adminClient, sessions, stdinConfirmer{}, stderrNotifier{}, log)

	sessions.Hydrate(ctx)

	if err := run(ctx, sessions, console, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func buildStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, error) {
	switch cfg.SessionStore {
	case "redis":
		client, err := store.ConnectRedis(ctx, store.RedisConfig{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(client, ""), nil
	case "file":
		return store.NewFileStore(cfg.SessionFile), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_STORE %q (want file or redis)", cfg.SessionStore)
	}
}
