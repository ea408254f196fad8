package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"memecoin-agent/internal/bot"
	"memecoin-agent/internal/contract"
)

// Server - операционный HTTP-сервер: health-проба, метрики и просмотр
// баланса без захода в Telegram.
type Server struct {
	echo    *echo.Echo
	holder  *contract.Holder
	timeout time.Duration
	logger  *zap.Logger
}

// NewServer настраивает маршруты операционного API.
func NewServer(holder *contract.Holder, timeout time.Duration, logger *zap.Logger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{
		echo:    e,
		holder:  holder,
		timeout: timeout,
		logger:  logger.Named("API"),
	}

	e.GET("/health", s.health)
	e.GET("/api/balance/:account", s.balance)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(
		bot.MetricsRegistry(),
		promhttp.HandlerOpts{},
	)))

	return s
}

// Start блокирует до остановки сервера.
func (s *Server) Start(port string) error {
	addr := ":" + port
	s.logger.Info("Starting operational API", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("operational API failed: %w", err)
	}
	return nil
}

// Shutdown гасит сервер, дождавшись активных запросов.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// balance возвращает баланс аккаунта на текущем контракте. Детали ошибки
// контракта наружу не отдаются.
func (s *Server) balance(c echo.Context) error {
	account := c.Param("account")

	client, binding := s.holder.Current()
	ctx, cancel := context.WithTimeout(c.Request().Context(), s.timeout)
	defer cancel()

	balance, err := client.GetBalance(ctx, account)
	if err != nil {
		s.logger.Error("Failed to fetch balance",
			zap.String("account", account),
			zap.String("contract_id", binding.ContractID),
			zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{"error": "failed to fetch balance"})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"account":  account,
		"contract": binding.ContractID,
		"balance":  balance,
	})
}
