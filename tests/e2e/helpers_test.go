package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// 起動済みのAPIに対して叩くテスト。BASE_URL未設定ならスキップする。

type TestClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewTestClient(t *testing.T) *TestClient {
	t.Helper()

	baseURL := os.Getenv("BASE_URL")
	if baseURL == "" {
		t.Skip("BASE_URL not set; skipping e2e test")
	}

	return &TestClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ProductDTO struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type TransactionDTO struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"product_id"`
	ProductName     string    `json:"product_name"`
	Type            string    `json:"type"`
	QuantityChanged int64     `json:"quantity_changed"`
	Timestamp       time.Time `json:"timestamp"`
}

type TransactionListDTO struct {
	Data   []TransactionDTO `json:"data"`
	Total  int64            `json:"total"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
}

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PostDTO struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	AuthorName string `json:"author_name"`
}

type ProductCreateRequest struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

type AdjustStockRequest struct {
	ChangeAmount int64 `json:"change_amount"`
}

func (c *TestClient) doJSON(
	ctx context.Context,
	t *testing.T,
	method string,
	path string,
	bodyBytes []byte,
) (*http.Response, []byte) {
	t.Helper()

	var reqBody io.Reader
	if bodyBytes != nil {
		reqBody = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		t.Fatalf("http.NewRequest failed: %v", err)
	}

	if bodyBytes != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		t.Fatalf("HTTP.Do failed: %v", err)
	}

	defer func() { _ = resp.Body.Close() }()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return resp, data
}

func requireStatus(t *testing.T, resp *http.Response, want int, body []byte) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("expected status %d, got %d: body=%s", want, resp.StatusCode, string(body))
	}
}

func mustDecode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("json.Unmarshal failed: %v body=%s", err, string(body))
	}
	return v
}

// 名前はユニーク制約があるのでテストごとに変える
func uniqueName(prefix string) string {
	return prefix + "-" + time.Now().Format("20060102-150405.000000000")
}

func createProduct(t *testing.T, c *TestClient, ctx context.Context, name string, quantity int64) ProductDTO {
	t.Helper()

	reqJSON, err := json.Marshal(ProductCreateRequest{Name: name, Quantity: quantity})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	resp, body := c.doJSON(ctx, t, http.MethodPost, "/products", reqJSON)
	requireStatus(t, resp, http.StatusCreated, body)

	return mustDecode[ProductDTO](t, body)
}

func adjustStock(t *testing.T, c *TestClient, ctx context.Context, productID string, change int64) (*http.Response, []byte) {
	t.Helper()

	reqJSON, err := json.Marshal(AdjustStockRequest{ChangeAmount: change})
	if err != nil {
		t.Fatalf("json.Marshal failed: %v", err)
	}

	return c.doJSON(ctx, t, http.MethodPut, "/products/"+productID+"/adjust", reqJSON)
}

func getProduct(t *testing.T, c *TestClient, ctx context.Context, productID string) ProductDTO {
	t.Helper()

	resp, body := c.doJSON(ctx, t, http.MethodGet, "/products/"+productID, nil)
	requireStatus(t, resp, http.StatusOK, body)

	return mustDecode[ProductDTO](t, body)
}
