// Package service 提供外部 AI 服务的客户端（穿搭点评、造型师对话）。
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"
)

// OutfitFeedback 是穿搭点评结果。
type OutfitFeedback struct {
	// Feedback 点评正文
	Feedback string `json:"feedback"`
	// CoordinationScore 搭配协调度评分（0-100）
	CoordinationScore float64 `json:"coordination_score"`
	// LetterGrade 等级（如 "A"、"B+"）
	LetterGrade string `json:"letter_grade"`
}

// FeedbackService 是穿搭 AI 服务的领域接口。
//
//   - Review 对一张穿搭照片给出点评与评分
//   - Chat 与造型师助手对话一轮
type FeedbackService interface {
	Review(ctx context.Context, imageURL string) (*OutfitFeedback, error)
	Chat(ctx context.Context, message string) (string, error)
}

// AuthConfig 认证配置
type AuthConfig struct {
	Type     string // "basic", "bearer", "api_key"
	Username string
	Password string
	Token    string
	APIKey   string
}

// FeedbackClient 是 FeedbackService 的 HTTP 实现。
//
// 协议：
//   - Review: POST {endpoint}/ai-feedback，请求 {"image_url": "..."}，
//     响应 {"feedback": "...", "coordination_score": 87, "letter_grade": "A"}
//   - Chat: POST {endpoint}/stylist-chat，请求 {"message": "..."}，
//     响应 {"reply": "..."}
type FeedbackClient struct {
	// Endpoint 服务根地址，如 "https://api.example.com/functions/v1"
	Endpoint string
	// Timeout 请求超时
	Timeout time.Duration
	// Auth 认证配置
	Auth *AuthConfig
	// httpClient 自定义 HTTP 客户端（可选）
	httpClient *http.Client
}

// NewFeedbackClient 创建穿搭 AI 服务客户端。endpoint 为根地址。
func NewFeedbackClient(endpoint string, opts ...FeedbackOption) *FeedbackClient {
	c := &FeedbackClient{
		Endpoint: endpoint,
		Timeout:  30 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.Timeout}
	}
	return c
}

// FeedbackOption 配置穿搭 AI 服务客户端
type FeedbackOption func(*FeedbackClient)

// WithFeedbackTimeout 设置超时
func WithFeedbackTimeout(timeout time.Duration) FeedbackOption {
	return func(c *FeedbackClient) {
		c.Timeout = timeout
		if c.httpClient != nil {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithFeedbackAuth 设置认证
func WithFeedbackAuth(auth *AuthConfig) FeedbackOption {
	return func(c *FeedbackClient) {
		c.Auth = auth
	}
}

// WithFeedbackHTTPClient 设置自定义 HTTP 客户端
func WithFeedbackHTTPClient(client *http.Client) FeedbackOption {
	return func(c *FeedbackClient) {
		c.httpClient = client
	}
}

// Review 实现 FeedbackService。
func (c *FeedbackClient) Review(ctx context.Context, imageURL string) (*OutfitFeedback, error) {
	if imageURL == "" {
		return nil, fmt.Errorf("image_url is required")
	}

	body, err := c.post(ctx, "/ai-feedback", map[string]string{"image_url": imageURL})
	if err != nil {
		return nil, err
	}

	var out OutfitFeedback
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("feedback parse response: %w", err)
	}
	return &out, nil
}

// Chat 实现 FeedbackService。
func (c *FeedbackClient) Chat(ctx context.Context, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("message is required")
	}

	body, err := c.post(ctx, "/stylist-chat", map[string]string{"message": message})
	if err != nil {
		return "", err
	}

	var out struct {
		Reply string `json:"reply"`
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("chat parse response: %w", err)
	}
	return out.Reply, nil
}

func (c *FeedbackClient) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	jsonData, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("feedback marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", c.Endpoint+path, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("feedback create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	c.addAuth(httpReq)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("feedback request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("feedback read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feedback error: status=%d, body=%s", resp.StatusCode, string(bodyBytes))
	}
	return bodyBytes, nil
}

func (c *FeedbackClient) addAuth(req *http.Request) {
	if c.Auth == nil {
		return
	}
	switch c.Auth.Type {
	case "basic":
		req.SetBasicAuth(c.Auth.Username, c.Auth.Password)
	case "bearer":
		req.Header.Set("Authorization", "Bearer "+c.Auth.Token)
	case "api_key":
		req.Header.Set("X-API-Key", c.Auth.APIKey)
	}
}

var _ FeedbackService = (*FeedbackClient)(nil)
