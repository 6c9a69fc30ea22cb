package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// DefaultBedrockModel is used when no model ID is configured.
const DefaultBedrockModel = "anthropic.claude-3-5-sonnet-20240620-v1:0"

// BedrockClient implements Client using AWS Bedrock with Anthropic models.
type BedrockClient struct {
	client    *bedrockruntime.Client
	modelID   string
	maxTokens int
}

// NewBedrockClient creates a new Bedrock-based client. When accessKey is empty the
// default AWS credential chain is used.
func NewBedrockClient(ctx context.Context, region, modelID string, maxTokens int, accessKey, secretKey string) (*BedrockClient, error) {
	if modelID == "" {
		modelID = DefaultBedrockModel
	}

	opts := []func(*config.LoadOptions) error{
		config.WithRegion(region),
	}
	if accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(accessKey, secretKey, ""),
		))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &BedrockClient{
		client:    bedrockruntime.NewFromConfig(cfg),
		modelID:   modelID,
		maxTokens: maxTokens,
	}, nil
}

// Provider returns "bedrock".
func (c *BedrockClient) Provider() string {
	return "bedrock"
}

// Generate invokes the model with a single user message.
func (c *BedrockClient) Generate(ctx context.Context, prompt string) (string, error) {
	payload, err := buildBedrockRequest(prompt, c.maxTokens)
	if err != nil {
		return "", err
	}

	output, err := c.client.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(c.modelID),
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
		Body:        payload,
	})
	if err != nil {
		return "", fmt.Errorf("failed to invoke Bedrock model: %w", err)
	}

	return parseBedrockResponse(output.Body)
}

// buildBedrockRequest builds the Anthropic messages payload.
func buildBedrockRequest(prompt string, maxTokens int) ([]byte, error) {
	requestBody := map[string]interface{}{
		"anthropic_version": "bedrock-2023-05-31",
		"max_tokens":        maxTokens,
		"messages": []map[string]interface{}{
			{
				"role": "user",
				"content": []map[string]interface{}{
					{
						"type": "text",
						"text": prompt,
					},
				},
			},
		},
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return payload, nil
}

// parseBedrockResponse concatenates the text blocks of an Anthropic reply.
func parseBedrockResponse(body []byte) (string, error) {
	var response struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
		StopReason string `json:"stop_reason"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	var text string
	for _, block := range response.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
