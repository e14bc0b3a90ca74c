package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"bot_guard/internal/config"
	"bot_guard/internal/infra/telegram"
	"bot_guard/internal/repo/postgres"
	auditsvc "bot_guard/internal/services/audit"
	"bot_guard/internal/services/autoreply"
	"bot_guard/internal/services/biolink"
	"bot_guard/internal/services/commands"
	copyrightsvc "bot_guard/internal/services/copyright"
	"bot_guard/internal/services/edits"
	"bot_guard/internal/services/links"
	"bot_guard/internal/services/stickers"
	"bot_guard/internal/state"
)

type App struct {
	cfg    config.Config
	logger *slog.Logger
	db     *sql.DB
	tg     *telegram.Client

	store            *state.Store
	auditService     *auditsvc.Service
	biolinkService   *biolink.Service
	copyrightService *copyrightsvc.Service
	stickersService  *stickers.Service
	editsService     *edits.Service
	commandsService  *commands.Service
	autoresponder    *autoreply.Responder
}

func New(cfg config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	db, err := postgres.Open(context.Background(), cfg.DatabaseURL)
	if err != nil {
		logger.Warn("postgres unavailable, continuing without database", "error", err)
		db = nil
	}

	app := &App{
		cfg:           cfg,
		logger:        logger,
		db:            db,
		store:         state.NewStore(cfg.HistoryLimit),
		auditService:  auditsvc.NewService(postgres.NewAuditRepo(db)),
		autoresponder: autoreply.NewResponder(),
	}

	app.tg, err = telegram.NewClient(cfg.BotToken, cfg.PollTimeoutSeconds, logger, app.routeUpdate)
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	extractor := links.NewExtractor()
	app.biolinkService = biolink.NewService(app.store, app.tg, app.auditService, logger, extractor, cfg.MaxWarnings, cfg.MuteHours, biolink.ReplierAsTarget)
	app.copyrightService = copyrightsvc.NewService(app.store, app.tg, app.auditService, logger, cfg.SimilarityThreshold, cfg.OwnerTGID)
	app.stickersService = stickers.NewService(app.store, app.tg, app.auditService, logger, cfg.OwnerTGID, nil)
	app.editsService = edits.NewService(app.store, app.tg, app.auditService, logger, cfg.OwnerTGID)
	app.commandsService = commands.NewService(app.store, app.tg, app.auditService, logger, cfg.OwnerTGID, nil)

	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	defer a.close()
	return a.tg.Start(ctx)
}

func (a *App) close() {
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error("close postgres", "error", err)
		}
	}
}
