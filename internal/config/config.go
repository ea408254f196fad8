package config

import (
	"fmt"
	"log"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию для Memecoin Agent
type Config struct {
	// Настройки Telegram
	TelegramBotToken string `envconfig:"TELEGRAM_BOT_TOKEN" required:"true"`

	// Настройки NEAR
	NearAccountID  string `envconfig:"NEAR_ACCOUNT_ID" required:"true"`
	NearPrivateKey string `envconfig:"NEAR_ACCOUNT_PRIVATE_KEY" required:"true"`
	NearContractID string `envconfig:"NEAR_CONTRACT_NAME" required:"true"`
	NearRPCURL     string `envconfig:"NEAR_RPC_URL" default:"https://rpc.testnet.near.org"`

	// Настройки AI (OpenAI-совместимый endpoint)
	OpenAIAPIKey  string `envconfig:"OPENAI_API_KEY"`
	OpenAIBaseURL string `envconfig:"OPENAI_BASE_URL"`
	OpenAIModel   string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`

	// Настройки генерации изображений (Hugging Face)
	HFAPIToken string `envconfig:"HF_API_TOKEN"`
	HFModelURL string `envconfig:"HF_MODEL_URL" default:"https://api-inference.huggingface.co/models/stabilityai/stable-diffusion-3.5-large"`

	// Настройки NearBlocks (история транзакций для /activity)
	NearblocksBaseURL string `envconfig:"NEARBLOCKS_BASE_URL" default:"https://api-testnet.nearblocks.io"`

	// Общий таймаут на один удаленный вызов (контракт, AI, изображения)
	RemoteCallTimeout time.Duration `envconfig:"REMOTE_CALL_TIMEOUT" default:"60s"`

	// Настройки операционного HTTP-сервера (health, metrics, balance)
	HTTPPort string `envconfig:"HTTP_PORT" default:"8090"`

	// Настройки Redis (если пусто - состояние хранится в памяти процесса)
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`

	// Настройки логгера
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"json"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// Отсутствие обязательных учетных данных - фатальная ошибка старта.
func LoadConfig() (*Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки конфигурации memecoin-agent: %w", err)
	}

	log.Printf("Конфигурация Memecoin Agent загружена:")
	log.Printf("  NEAR Account ID: %s", cfg.NearAccountID)
	log.Printf("  NEAR Contract ID: %s", cfg.NearContractID)
	log.Printf("  NEAR RPC URL: %s", cfg.NearRPCURL)
	log.Printf("  OpenAI Model: %s", cfg.OpenAIModel)
	log.Printf("  HF Model URL: %s", cfg.HFModelURL)
	log.Printf("  Remote Call Timeout: %v", cfg.RemoteCallTimeout)
	log.Printf("  HTTP Port: %s", cfg.HTTPPort)
	if cfg.RedisAddr != "" {
		log.Printf("  Redis: %s (db=%d)", cfg.RedisAddr, cfg.RedisDB)
	} else {
		log.Printf("  Redis: не задан, состояние в памяти процесса")
	}
	log.Printf("  LogLevel: %s", cfg.LogLevel)

	return &cfg, nil
}
