package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"memecoin-agent/internal/ai"
	"memecoin-agent/internal/api"
	"memecoin-agent/internal/bot"
	"memecoin-agent/internal/config"
	"memecoin-agent/internal/contract"
	"memecoin-agent/internal/game"
	"memecoin-agent/internal/imagegen"
	"memecoin-agent/internal/logger"
	"memecoin-agent/internal/near"
	"memecoin-agent/internal/nearblocks"
	"memecoin-agent/internal/store"
)

func main() {
	// .env - удобство локального запуска; в проде переменные приходят из окружения
	if err := godotenv.Load(); err != nil {
		log.Printf("Файл .env не найден, используются переменные окружения")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: cfg.LogEncoding,
	})
	if err != nil {
		log.Fatalf("Ошибка инициализации логгера: %v", err)
	}
	defer zapLogger.Sync()

	// Клиент NEAR RPC: отсутствие валидного ключа - фатальная ошибка старта
	nearClient, err := near.NewClient(cfg.NearRPCURL, cfg.NearAccountID, cfg.NearPrivateKey, cfg.RemoteCallTimeout, zapLogger)
	if err != nil {
		zapLogger.Fatal("Не удалось создать NEAR-клиент", zap.Error(err))
	}

	factory := func(contractID string) contract.Client {
		return contract.NewClient(nearClient, contractID, zapLogger)
	}
	holder := contract.NewHolder(factory, cfg.NearAccountID, cfg.NearContractID)

	liveness := bot.NewLiveness()

	// Недоступность RPC на старте не фатальна: бот стартует в offline
	// и сообщает об этом через /status
	probeCtx, probeCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := nearClient.Ping(probeCtx); err != nil {
		zapLogger.Warn("NEAR RPC недоступен на старте, бот помечен offline", zap.Error(err))
	} else {
		liveness.SetOnline(true)
	}
	probeCancel()

	// Состояние игры и ожидающих минтов: Redis, если задан, иначе память процесса
	var kv store.Store
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		kv = store.NewRedisStore(redisClient, "memecoin", zapLogger)
		zapLogger.Info("Состояние хранится в Redis", zap.String("addr", cfg.RedisAddr))
	} else {
		kv = store.NewMemoryStore()
		zapLogger.Info("Состояние хранится в памяти процесса")
	}

	ledger := game.NewLedger(kv, zapLogger)
	pending := bot.NewPendingStore(kv)
	memory := ai.NewMemory()

	aiClient := ai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, zapLogger)
	images := imagegen.NewClient(cfg.HFModelURL, cfg.HFAPIToken, cfg.RemoteCallTimeout, zapLogger)
	activity := nearblocks.NewClient(cfg.NearblocksBaseURL, cfg.RemoteCallTimeout, zapLogger)

	telegram, err := bot.NewTelegram(cfg.TelegramBotToken, liveness, zapLogger)
	if err != nil {
		zapLogger.Fatal("Не удалось подключиться к Telegram", zap.Error(err))
	}

	dispatcher := bot.NewDispatcher(
		telegram,
		holder,
		ledger,
		pending,
		aiClient,
		images,
		activity,
		memory,
		liveness,
		cfg.RemoteCallTimeout,
		zapLogger,
	)
	telegram.SetDispatcher(dispatcher)

	server := api.NewServer(holder, cfg.RemoteCallTimeout, zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return telegram.Run(groupCtx)
	})

	group.Go(func() error {
		return server.Start(cfg.HTTPPort)
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	zapLogger.Info("Memecoin Agent запущен",
		zap.String("account_id", cfg.NearAccountID),
		zap.String("contract_id", cfg.NearContractID))

	if err := group.Wait(); err != nil && err != context.Canceled {
		zapLogger.Fatal("Сервис завершился с ошибкой", zap.Error(err))
	}
	zapLogger.Info("Memecoin Agent остановлен")
}
