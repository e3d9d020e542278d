package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"txlens/internal/config"
	"txlens/internal/core"
	"txlens/internal/db"
	"txlens/internal/decoder"
	"txlens/internal/ethereum"
	"txlens/internal/feed"
	"txlens/internal/http/handler"
	"txlens/internal/http/handler/middleware"
	"txlens/internal/http/payload"
	"txlens/internal/http/server"
	"txlens/internal/repository"
	"txlens/internal/signature"
	"txlens/pkg/jwt"
	"txlens/pkg/log"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap/zapcore"
)

const serviceName = "txlens"

func Start() error {
	config, err := config.NewApp()
	if err != nil {
		fmt.Printf("failed to create config: %s\n", err)
		return err
	}

	level, err := zapcore.ParseLevel(config.Tuning.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	logger := log.NewZapLogger(serviceName, level)
	defer logger.Sync()

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL, config.Tuning.DBReplicaURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewExplorerRepository(logger, dbConn)
	if err = repo.MigrateAndSeed(context.Background()); err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret), serviceName)

	client, err := ethclient.Dial(config.NodeURL)
	if err != nil {
		logger.Errorw("eth node connection failed", "error", err)
		return err
	}
	defer client.Close()

	ethService := ethereum.NewEthService(logger, client)

	// calldata decoding
	signatures := signature.NewClient(logger, signature.Config{
		ProviderURL:    config.Tuning.SigProviderURL,
		FourByteURL:    config.Tuning.FourByteURL,
		Enabled:        config.Tuning.SigProviderEnabled,
		RatePerSecond:  config.Tuning.SigLookupRate,
		CacheSizeBytes: config.Tuning.SigCacheMB * 1024 * 1024,
		CacheTTL:       config.Tuning.SigCacheTTL,
	})
	engine := decoder.NewEngine(logger, decoder.Config{
		DecodeNotAContractCalls: config.Tuning.DecodeNotAContractCalls,
		CandidatesLimit:         config.Tuning.CandidatesLimit,
	}, repo, repo, signatures)

	// address feed
	aggregator := feed.NewAggregator(logger, repo, feed.Config{
		Timeout:        config.Tuning.FeedTimeout,
		MaxPageSize:    config.Tuning.FeedMaxPageSize,
		RewardsEnabled: config.Tuning.RewardsEnabled,
	})

	explorer := core.NewExplorer(
		logger,
		repo,
		jwtService,
		ethService,
		aggregator,
		engine)

	// handler
	explorerHlr := handler.NewExplorerHandler(
		logger,
		payload.DecodeValidator{},
		explorer)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Authenticate, explorerHlr.HandleAuthenticate)
	mux.HandleFunc(handler.GetTransactions, explorerHlr.HandleGetTransactions)
	mux.HandleFunc(handler.GetAddressTransactions, explorerHlr.HandleGetAddressTransactions)
	mux.HandleFunc(handler.GetDecodedInput, explorerHlr.HandleGetDecodedInput)
	mux.Handle(handler.Metrics, promhttp.Handler())

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		if sdErr != nil {
			return fmt.Errorf("server shutdown: %w", sdErr)
		}
		return nil
	}

	return err
}
