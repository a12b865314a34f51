package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/verdantlab/schemaloom/internal/util"
	"github.com/verdantlab/schemaloom/pkg/ai"
	oai "github.com/verdantlab/schemaloom/pkg/ai/ollama"
	gai "github.com/verdantlab/schemaloom/pkg/ai/openai"
	"github.com/verdantlab/schemaloom/pkg/instruct"
	"github.com/verdantlab/schemaloom/pkg/logger"
	"github.com/verdantlab/schemaloom/pkg/logger/console"
)

// defaultQuestions probe a model tuned on the generated corpus.
var defaultQuestions = []string{
	"What measures are in orders?",
	"What is the primary key of orders?",
	"What is the purpose of the semantic_catalog?",
	"Which cubes make up the sales overview view?",
}

func main() {
	util.LoadEnv()

	debug := util.GetEnvBool("DEBUG", false)

	consoleLogger := console.NewConsoleLogger(console.ConsoleLoggerParams{
		Debug: debug,
	})
	logger.Init(consoleLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	adapter := util.GetEnv("AI_ADAPTER")
	var aiClient ai.SchemaAIClient

	switch adapter {
	case "ollama":
		client, err := oai.NewSchemaOllamaClient(oai.NewSchemaOllamaClientParams{
			Model:   util.GetEnv("AI_CHAT_MODEL"),
			BaseURL: util.GetEnv("AI_CHAT_URL"),
			ApiKey:  util.GetEnv("AI_CHAT_KEY"),
		})
		if err != nil {
			logger.Fatal("Failed to create Ollama client", "err", err)
		}
		aiClient = client
	default:
		aiClient = gai.NewSchemaOpenAIClient(gai.NewSchemaOpenAIClientParams{
			Model:   util.GetEnv("AI_CHAT_MODEL"),
			ChatURL: util.GetEnv("AI_CHAT_URL"),
			ChatKey: util.GetEnv("AI_CHAT_KEY"),
		})
	}

	questions := os.Args[1:]
	if len(questions) == 0 {
		questions = defaultQuestions
	}

	for _, question := range questions {
		prompt := fmt.Sprintf("Question: %s\nAnswer:", question)
		answer, err := aiClient.GenerateCompletion(
			ctx,
			prompt,
			ai.WithSystemPrompts(instruct.SystemPrompt),
		)
		if err != nil {
			logger.Error("Completion failed", "question", question, "err", err)
			continue
		}
		fmt.Printf("Q: %s\nA: %s\n\n", question, answer)
	}
}
