package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"smart-notes/config"
	_ "smart-notes/docs" // Swagger docs
	"smart-notes/internal/analysis"
	"smart-notes/internal/countdown"
	"smart-notes/internal/httpserver"
	tgDelivery "smart-notes/internal/note/delivery/telegram"
	noteSqlite "smart-notes/internal/note/repository/sqlite"
	noteUsecase "smart-notes/internal/note/usecase"
	"smart-notes/internal/notify"
	"smart-notes/pkg/clock"
	"smart-notes/pkg/datemath"
	"smart-notes/pkg/gcalendar"
	"smart-notes/pkg/gemini"
	"smart-notes/pkg/log"
	"smart-notes/pkg/metrics"
	"smart-notes/pkg/sse"
	"smart-notes/pkg/telegram"
)

// @title       Smart Notes API
// @description Notes analyzed by Gemini, with due-date countdowns and lead-time alerts.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Notes...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := noteSqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	noteRepo := noteSqlite.New(db, logger)

	// 4. Analysis: Gemini client, clock and date resolver
	clk := clock.New()
	zones, err := clock.NewZoneProvider(cfg.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, dates fall back to the reference zone: %v", cfg.Timezone, err)
		zones = clock.FixedZone(nil)
	}
	resolver := datemath.NewResolver(zones)

	geminiClient, err := gemini.New(gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		APIURL:  cfg.Gemini.APIURL,
		Timeout: cfg.Gemini.Timeout,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}
	analyzer := analysis.New(logger, analysis.NewGeminiCompleter(geminiClient), resolver, clk)
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is empty: HTTP requests must send their own key, Telegram notes will be rejected")
	}

	// 5. Live events and notifications
	broker := sse.NewBroker()
	defer broker.Close()

	var telegramBot *telegram.Bot
	if cfg.Telegram.BotToken != "" {
		telegramBot = telegram.NewBot(cfg.Telegram.BotToken)
	}

	permission := notify.PermissionDenied
	var sinks []notify.Sink
	if cfg.Notification.Enabled {
		permission = notify.ParsePermission(cfg.Notification.Permission)
		sinks = append(sinks, notify.NewSSESink(broker))
		if telegramBot != nil && cfg.Notification.TelegramChatID != 0 {
			sinks = append(sinks, notify.NewTelegramSink(telegramBot, cfg.Notification.TelegramChatID))
		}
	}
	dispatcher := notify.NewDispatcher(logger, permission, sinks...)
	logger.Infof(ctx, "Notification permission: %s", dispatcher.RequestPermission(ctx))

	// 6. Countdown engine
	engine := countdown.NewEngine(logger, clk, dispatcher, countdown.Policy{
		LeadTime: cfg.Countdown.LeadTime,
		Tick:     cfg.Countdown.Tick,
		Trigger:  countdown.Trigger(cfg.Countdown.Trigger),
	}, countdown.WithIcon(cfg.Notification.Icon))
	defer engine.Close()

	// 7. Google Calendar client (optional)
	var calendarClient gcalendar.ICalendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 8. Note domain
	noteUC := noteUsecase.New(logger, noteRepo, analyzer, engine, broker, clk, noteUsecase.Config{
		Credential: cfg.Gemini.APIKey,
		Calendar:   calendarClient,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})

	restored, err := noteUC.Rehydrate(ctx)
	if err != nil {
		logger.Warnf(ctx, "Failed to restore countdowns: %v", err)
	} else {
		logger.Infof(ctx, "Restored %d countdown(s)", restored)
	}

	// 9. Telegram delivery
	var telegramHandler tgDelivery.Handler
	if telegramBot != nil {
		telegramHandler = tgDelivery.New(logger, noteUC, telegramBot)
		registerWebhook(ctx, logger, telegramBot, cfg.Telegram)
	} else {
		logger.Warn(ctx, "Telegram skipped: TELEGRAM_BOT_TOKEN is missing")
	}

	// 10. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RatePerMin:      cfg.RateLimit.PerMin,
		NoteUseCase:     noteUC,
		Events:          broker,
		Metrics:         metrics.Handler(),
		TelegramHandler: telegramHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// registerWebhook points the bot at /webhook/telegram, using the configured
// URL or the public URL of a local ngrok tunnel.
func registerWebhook(ctx context.Context, logger log.Logger, bot *telegram.Bot, cfg config.TelegramConfig) {
	webhookURL := cfg.WebhookURL
	if webhookURL == "" && cfg.NgrokAPIURL != "" {
		ngrokURL, err := detectNgrokURL(ctx, cfg.NgrokAPIURL)
		if err != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", err)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}

	if webhookURL == "" {
		logger.Warn(ctx, "Telegram webhook not registered: no webhook URL")
		return
	}
	if err := bot.SetWebhook(ctx, webhookURL); err != nil {
		logger.Warnf(ctx, "Failed to set Telegram webhook: %v", err)
		return
	}
	logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
}
