package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/instruct"
	"github.com/verdantlab/schemaloom/pkg/loader"
	ioloader "github.com/verdantlab/schemaloom/pkg/loader/io"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/logger/console"
	"github.com/verdantlab/schemaloom/pkg/schema"
)

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metadata, err := schema.LoadMetadata(ctx, loader.NewDocument(loader.NewDocumentParams{
		Kind:   loader.DocumentKindMetadata,
		Path:   util.GetEnvString("METADATA_PATH", "./full_meta.json"),
		Loader: ioloader.NewIODocumentLoader(),
	}))
	if err != nil {
		logger.Fatal("Failed to load metadata document", "err", err)
	}

	instructions := instruct.Generate(metadata)

	outPath := util.GetEnvString("INSTRUCTIONS_PATH", "training_data/instructions_v1.json")
	if err := instruct.Save(outPath, instructions); err != nil {
		logger.Fatal("Failed to save instructions", "err", err)
	}

	logger.Info("Instructions saved", "path", outPath, "count", len(instructions))
}
