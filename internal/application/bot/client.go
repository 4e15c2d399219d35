package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	orderdto "anishop/internal/application/order/dto"
	"anishop/internal/shared/constants"
	"anishop/internal/shared/errors"
)

// Backend is the slice of the storefront API the bot talks to.
type Backend interface {
	PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlacedOrder, error)
	GetOrder(ctx context.Context, code string) (*orderdto.OrderView, error)
}

type PlaceOrderRequest struct {
	ProductLink    string  `json:"product_link"`
	Quantity       int     `json:"quantity"`
	VoucherCode    string  `json:"voucher_code,omitempty"`
	RecipientName  string  `json:"recipient_name"`
	PhoneOrContact string  `json:"phone_or_contact"`
	Address        string  `json:"address"`
	Notes          *string `json:"notes,omitempty"`
}

type PlacedOrder struct {
	OrderCode  string `json:"order_code"`
	ID         uint   `json:"id"`
	Status     string `json:"status"`
	ServiceFee int64  `json:"service_fee"`
}

// APIClient calls the storefront's bot surface with the shared API key.
type APIClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewAPIClient(baseURL, apiKey string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

type placeOrderResponse struct {
	Success bool        `json:"success"`
	Order   PlacedOrder `json:"order"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *APIClient) PlaceOrder(ctx context.Context, req PlaceOrderRequest) (*PlacedOrder, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/v1/bot/orders", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	var decoded placeOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	if decoded.Success {
		return &decoded.Order, nil
	}

	message := "order placement failed"
	if decoded.Error != nil && decoded.Error.Message != "" {
		message = decoded.Error.Message
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return nil, errors.NewValidationError(message)
	case http.StatusUnauthorized:
		return nil, errors.NewUnauthorizedError(message)
	case http.StatusTooManyRequests:
		return nil, errors.NewRateLimitedError(message)
	default:
		return nil, errors.NewInternalError(message)
	}
}

type getOrderResponse struct {
	Success bool                `json:"success"`
	Data    *orderdto.OrderView `json:"data"`
	Error   *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (c *APIClient) GetOrder(ctx context.Context, code string) (*orderdto.OrderView, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/v1/bot/orders/"+url.PathEscape(code), nil)
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set(constants.HeaderAPIKey, c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach backend: %w", err)
	}
	defer resp.Body.Close()

	var decoded getOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode backend response: %w", err)
	}

	if decoded.Success && decoded.Data != nil {
		return decoded.Data, nil
	}

	message := "order lookup failed"
	if decoded.Error != nil && decoded.Error.Message != "" {
		message = decoded.Error.Message
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errors.NewNotFoundError(message)
	}
	return nil, errors.NewInternalError(message)
}
