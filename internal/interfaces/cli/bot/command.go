package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	botApp "anishop/internal/application/bot"
	"anishop/internal/infrastructure/cache"
	"anishop/internal/infrastructure/config"
	"anishop/internal/infrastructure/telegram"
	"anishop/internal/interfaces/botwebhook"
	"anishop/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot process",
		Long:  "Run the conversational Telegram client plus the webhook receiver for order-update pushes.",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if cfg.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is not configured")
	}

	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}

	botSvc := telegram.NewBotService(cfg.Telegram.BotToken)
	sessions := cache.NewBotSessionStore(redisClient)
	subscriptions := cache.NewOrderSubscriptionStore(redisClient)
	offsets := cache.NewPollingOffsetStore(redisClient)
	backend := botApp.NewAPIClient(cfg.Telegram.APIBaseURL, cfg.API.Key)

	handler := botApp.NewConversationHandler(botSvc, sessions, subscriptions, backend, log)
	pusher := botApp.NewUpdatePusher(botSvc, subscriptions, log)

	ctx := context.Background()
	if err := botSvc.SetMyCommands(ctx, []telegram.BotCommand{
		{Command: "order", Description: "Đặt đơn hàng mới"},
		{Command: "track", Description: "Tra cứu đơn hàng"},
		{Command: "tk", Description: "Tra cứu đơn hàng (viết tắt)"},
		{Command: "cancel", Description: "Hủy thao tác đang dở"},
		{Command: "help", Description: "Hướng dẫn sử dụng"},
	}); err != nil {
		log.Warnw("failed to register bot commands", "error", err)
	}

	polling := telegram.NewPollingService(botSvc, offsets, handler, log)
	polling.Start(ctx)
	defer polling.Stop()

	webhookSrv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Telegram.WebhookPort),
		Handler:      botwebhook.NewEngine(pusher, cfg.API.Key, log),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("bot webhook listening", "port", cfg.Telegram.WebhookPort)
		if err := webhookSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("webhook server failed: %w", err)
	case sig := <-quit:
		log.Infow("shutting down bot", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := webhookSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced webhook shutdown: %w", err)
	}

	return nil
}
