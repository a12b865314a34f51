package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mid "github.com/verdantlab/schemaloom/internal/server/middleware"
	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/loader"
	ioloader "github.com/verdantlab/schemaloom/pkg/loader/io"
	s3loader "github.com/verdantlab/schemaloom/pkg/loader/s3"
	"github.com/verdantlab/schemaloom/pkg/logger"
	pgxstore "github.com/verdantlab/schemaloom/pkg/store/pgx"

	"github.com/go-playground/validator"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type CustomValidator struct {
	validator *validator.Validate
}

func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validator.Struct(i); err != nil {
		return err
	}
	return nil
}

func Init() {
	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var conn *pgxpool.Pool
	if databaseURL := util.GetEnv("DATABASE_URL"); databaseURL != "" {
		if err := pgxstore.Migrate(databaseURL); err != nil {
			logger.Fatal("Failed to run database migrations", "err", err)
		}

		var err error
		conn, err = pgxpool.New(ctx, databaseURL)
		if err != nil {
			logger.Fatal("Failed to connect to database", "err", err)
		}
		defer conn.Close()
	}

	var documentLoader loader.DocumentLoader
	if util.GetEnv("DOCUMENT_SOURCE") == "s3" {
		l, err := s3loader.NewS3DocumentLoader(ctx, s3loader.NewS3DocumentLoaderParams{
			Bucket:    util.GetEnv("S3_BUCKET"),
			Endpoint:  util.GetEnv("S3_ENDPOINT"),
			Region:    util.GetEnvString("S3_REGION", "us-east-1"),
			AccessKey: util.GetEnv("S3_ACCESS_KEY"),
			SecretKey: util.GetEnv("S3_SECRET_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create S3 document loader", "err", err)
		}
		documentLoader = l
	} else {
		documentLoader = ioloader.NewIODocumentLoader()
	}

	app := &mid.App{
		DBConn:       conn,
		Loader:       documentLoader,
		MasterAPIKey: util.GetEnv("MASTER_API_KEY"),
	}

	e.Use(mid.AppContextMiddleware(app))
	e.Use(middleware.CORS())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	RegisterRoutes(e)

	go func() {
		port := util.GetEnvString("PORT", "8080")
		logger.Info("Starting server", "port", port)
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed shutting down server", "err", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Failed to shutdown server", "err", err)
	}
}
