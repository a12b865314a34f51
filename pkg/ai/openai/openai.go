package openai

import (
	"context"

	"github.com/verdantlab/schemaloom/pkg/ai"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// SchemaOpenAIClient implements the ai.SchemaAIClient interface against an
// OpenAI-compatible chat completion API.
type SchemaOpenAIClient struct {
	model string

	chatURL string
	chatKey string

	ChatClient *openai.Client
}

// NewSchemaOpenAIClientParams defines the configuration parameters for
// creating a new SchemaOpenAIClient. ChatURL may be empty to use the
// default OpenAI endpoint.
type NewSchemaOpenAIClientParams struct {
	Model string

	ChatURL string
	ChatKey string
}

// NewSchemaOpenAIClient creates a new OpenAI-based AI client configured with
// the provided parameters.
func NewSchemaOpenAIClient(
	params NewSchemaOpenAIClientParams,
) *SchemaOpenAIClient {
	return &SchemaOpenAIClient{
		model: params.Model,

		chatURL: params.ChatURL,
		chatKey: params.ChatKey,

		ChatClient: newOpenaiClient(params.ChatURL, params.ChatKey),
	}
}

func newOpenaiClient(
	baseURL string,
	apiKey string,
) *openai.Client {
	if apiKey == "" {
		return nil
	}
	options := []option.RequestOption{
		option.WithAPIKey(apiKey),
	}

	if baseURL != "" {
		options = append(options, option.WithBaseURL(baseURL))
	}

	client := openai.NewClient(options...)

	return &client
}

// GenerateCompletion sends a single-turn prompt to the chat model and
// returns the generated completion as plain text.
func (c *SchemaOpenAIClient) GenerateCompletion(
	ctx context.Context,
	prompt string,
	opts ...ai.GenerateOption,
) (string, error) {
	options := ai.GenerateOptions{
		Model:       c.model,
		Temperature: 0.3,
	}
	for _, o := range opts {
		o(&options)
	}

	msgs := []openai.ChatCompletionMessageParamUnion{}
	for _, sp := range options.SystemPrompts {
		msgs = append(msgs, openai.SystemMessage(sp))
	}
	msgs = append(msgs, openai.UserMessage(prompt))

	body := openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(options.Model),
		Messages:    msgs,
		Temperature: openai.Float(options.Temperature),
	}

	response, err := c.ChatClient.Chat.Completions.New(ctx, body)
	if err != nil {
		return "", err
	}

	return response.Choices[0].Message.Content, nil
}
