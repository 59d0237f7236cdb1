package app

import (
	"context"
	"net/http"

	"wedgram-api/internal/config"
	"wedgram-api/internal/db"
	"wedgram-api/internal/delivery/email"
	"wedgram-api/internal/delivery/telegram"
	accountdomain "wedgram-api/internal/domain/account"
	admindomain "wedgram-api/internal/domain/admin"
	giftdomain "wedgram-api/internal/domain/gift"
	guestdomain "wedgram-api/internal/domain/guest"
	notificationdomain "wedgram-api/internal/domain/notification"
	rsvpdomain "wedgram-api/internal/domain/rsvp"
	weddingdomain "wedgram-api/internal/domain/wedding"
	accountrepo "wedgram-api/internal/repository/postgres/account"
	adminrepo "wedgram-api/internal/repository/postgres/admin"
	giftrepo "wedgram-api/internal/repository/postgres/gift"
	guestrepo "wedgram-api/internal/repository/postgres/guest"
	notificationrepo "wedgram-api/internal/repository/postgres/notification"
	rsvprepo "wedgram-api/internal/repository/postgres/rsvp"
	weddingrepo "wedgram-api/internal/repository/postgres/wedding"
	"wedgram-api/internal/transport/httpserver"
	"wedgram-api/internal/transport/httpserver/handler"
	"wedgram-api/pkg/logger"

	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
	bot        *telegram.Bot
	log        logger.Logger
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	log.Info("app: initializing database")
	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	log.Info("app: applying migrations")
	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	accounts := accountdomain.NewService(accountrepo.NewPostgres(dbConn))
	weddings := weddingdomain.NewService(weddingrepo.NewPostgres(dbConn))
	rsvps := rsvpdomain.NewService(rsvprepo.NewPostgres(dbConn))
	gifts := giftdomain.NewService(giftrepo.NewPostgres(dbConn))
	notifications := notificationdomain.NewService(notificationrepo.NewPostgres(dbConn))
	admins := admindomain.NewService(adminrepo.NewPostgres(dbConn))

	emailSender := email.New(cfg.SMTP, log)
	if !emailSender.Configured() {
		log.Warn("app: smtp not configured, email invitations disabled")
	}

	var bot *telegram.Bot
	var chatChannel guestdomain.ChatChannel
	if cfg.Telegram.BotToken != "" {
		bot, err = telegram.New(cfg.Telegram, log)
		if err != nil {
			return nil, err
		}
		chatChannel = bot
	} else {
		log.Warn("app: telegram bot token not set, telegram invitations disabled")
	}

	guests := guestdomain.NewService(guestrepo.NewPostgres(dbConn), emailSender, chatChannel, cfg.InviteBaseURL, log)
	if bot != nil {
		bot.AttachHandlers(guests, notifications)
	}

	handlers := handler.New(accounts, weddings, guests, rsvps, gifts, notifications, admins, cfg.JWT, log)
	router := httpserver.NewRouter(cfg, handlers, accounts, log)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
		bot:        bot,
		log:        log,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

// RunBot starts the telegram update loop; it returns immediately when the bot
// is disabled.
func (a *App) RunBot(ctx context.Context) {
	if a.bot == nil {
		return
	}
	a.bot.Run(ctx)
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
