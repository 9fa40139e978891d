package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vocaquiz/internal/config"
	"vocaquiz/internal/domain"
	"vocaquiz/internal/handler"
	"vocaquiz/internal/quiz"
	"vocaquiz/internal/vocab"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting Vocaquiz Bot")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	logger.Info("Configuration loaded successfully")

	// Load vocabulary sets
	store, err := vocab.Load(cfg.VocabFile)
	if err != nil {
		logger.Fatal("Failed to load vocabulary", zap.Error(err))
	}

	// A set smaller than the question count is a configuration defect;
	// refuse to serve rather than fail mid-quiz.
	if err := validateSetSizes(store, cfg.NumQuestions); err != nil {
		logger.Fatal("Invalid vocabulary configuration", zap.Error(err))
	}

	logger.Info("Vocabulary loaded",
		zap.Strings("sets", store.Names()),
		zap.Int("num_questions", cfg.NumQuestions),
	)

	// Initialize quiz engine
	engine := quiz.NewEngine(store, cfg.NumQuestions, func() string {
		return domain.Greeting(time.Now())
	})

	// Initialize Telegram bot
	bot, err := tele.NewBot(tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		logger.Fatal("Failed to create bot", zap.Error(err))
	}

	logger.Info("Telegram bot initialized")

	// Initialize handler
	h := handler.NewHandler(bot, engine, logger)
	h.RegisterHandlers()

	logger.Info("Handlers registered")

	// Start bot in background
	go func() {
		logger.Info("Bot started successfully")
		bot.Start()
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan

	logger.Info("Shutdown signal received, stopping bot...")

	// Graceful shutdown
	bot.Stop()

	logger.Info("Bot stopped gracefully")
}

// validateSetSizes checks every configured set can fill a question batch
func validateSetSizes(store vocab.Store, numQuestions int) error {
	for _, name := range store.Names() {
		set, err := store.Get(name)
		if err != nil {
			return err
		}
		if len(set.Pairs) < numQuestions {
			return fmt.Errorf("%w: set %q has %d entries, need %d",
				quiz.ErrInsufficientItems, name, len(set.Pairs), numQuestions)
		}
	}
	return nil
}
