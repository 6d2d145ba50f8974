// Package nlu answers free-form input the command table cannot place,
// by asking a chat model for a short reply.
package nlu

import (
	"context"
	"fmt"

	openai "github.com/openai/openai-go/v3"
)

const systemPrompt = `You are Iris, a small terminal assistant with a pair of
animated ASCII eyes. Reply in one or two short sentences of plain text.
No markdown, no lists. If asked to do something you cannot do, say so
briefly and suggest typing 'help'.`

type Client struct {
	api openai.Client
}

func New(api openai.Client) *Client {
	return &Client{api: api}
}

func (c *Client) Reply(ctx context.Context, text string) (string, error) {
	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(text),
		},
		Model: openai.ChatModelGPT5Nano,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", fmt.Errorf("empty message content")
	}
	return content, nil
}
