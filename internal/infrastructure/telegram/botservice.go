package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// BotService is a thin client over the Telegram Bot API. Messages are sent
// in HTML parse mode; user-provided text must go through EscapeHTML.
type BotService struct {
	httpClient *http.Client
	baseURL    string
}

func NewBotService(botToken string) *BotService {
	return &BotService{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: fmt.Sprintf("https://api.telegram.org/bot%s", botToken),
	}
}

// GetUpdates retrieves updates using long polling. The context cancels the
// in-flight request so shutdown is not stuck for the full poll timeout.
func (s *BotService) GetUpdates(ctx context.Context, offset int64, timeout int) ([]Update, error) {
	apiURL := fmt.Sprintf("%s/getUpdates", s.baseURL)

	body := map[string]any{
		"timeout": timeout,
	}
	if offset > 0 {
		body["offset"] = offset
	}

	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	// Long polling needs a client timeout beyond the poll window.
	client := &http.Client{
		Timeout: time.Duration(timeout+10) * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result getUpdatesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return nil, fmt.Errorf("telegram API error: %s", result.Description)
	}

	return result.Result, nil
}

// SendMessage sends an HTML-formatted message to a chat.
func (s *BotService) SendMessage(ctx context.Context, chatID int64, text string) error {
	url := fmt.Sprintf("%s/sendMessage", s.baseURL)
	body := map[string]any{
		"chat_id":    chatID,
		"text":       text,
		"parse_mode": "HTML",
	}
	return s.makeRequest(ctx, url, body)
}

// BotCommand is an entry of the command menu shown when users type "/".
type BotCommand struct {
	Command     string `json:"command"`
	Description string `json:"description"`
}

// SetMyCommands registers the bot command menu.
func (s *BotService) SetMyCommands(ctx context.Context, commands []BotCommand) error {
	url := fmt.Sprintf("%s/setMyCommands", s.baseURL)
	body := map[string]any{
		"commands": commands,
	}
	return s.makeRequest(ctx, url, body)
}

func (s *BotService) makeRequest(ctx context.Context, url string, body map[string]any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram API error: %s", result.Description)
	}

	return nil
}
