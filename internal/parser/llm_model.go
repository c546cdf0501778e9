package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-match-go/internal/logger"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

const (
	// DashScope 的 OpenAI 兼容对话端点
	defaultQwenChatURL   = "https://dashscope.aliyuncs.com/compatible-mode/v1/chat/completions"
	defaultQwenChatModel = "qwen-plus"
)

// QwenChatModel 阿里云通义千问对话客户端，实现 model.BaseChatModel 接口。
// 走 OpenAI 兼容协议，只做纯文本补全，不带工具调用。
type QwenChatModel struct {
	apiKey     string
	modelName  string
	apiURL     string
	httpClient *http.Client
}

// NewQwenChatModel 创建通义千问客户端。modelName 和 apiURL 留空时使用默认值。
func NewQwenChatModel(apiKey, modelName, apiURL string) (*QwenChatModel, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, fmt.Errorf("API密钥不能为空")
	}
	if strings.TrimSpace(modelName) == "" {
		modelName = defaultQwenChatModel
	}
	if strings.TrimSpace(apiURL) == "" {
		apiURL = defaultQwenChatURL
	}
	return &QwenChatModel{
		apiKey:     apiKey,
		modelName:  modelName,
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}, nil
}

type qwenChatRequest struct {
	Model    string            `json:"model"`
	Messages []*schema.Message `json:"messages"`
}

type qwenChatMessage struct {
	Role    string  `json:"role"`
	Content *string `json:"content"`
}

type qwenChatChoice struct {
	Index        int             `json:"index"`
	Message      qwenChatMessage `json:"message"`
	FinishReason string          `json:"finish_reason"`
}

type qwenChatResponse struct {
	ID      string           `json:"id"`
	Model   string           `json:"model"`
	Choices []qwenChatChoice `json:"choices"`
}

// Generate 实现 model.BaseChatModel 接口
func (q *QwenChatModel) Generate(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.Message, error) {
	reqPayload := qwenChatRequest{
		Model:    q.modelName,
		Messages: messages,
	}
	jsonData, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("序列化请求体失败: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, q.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+q.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	logger.Ctx(ctx).Debug().
		Str("url", q.apiURL).
		Str("model", q.modelName).
		Int("messages", len(messages)).
		Msg("调用通义千问对话API")

	httpResp, err := q.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("发送HTTP请求失败: %w", err)
	}
	defer httpResp.Body.Close()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API请求失败，状态 %s: %s", httpResp.Status, string(bodyBytes))
	}

	var resp qwenChatResponse
	if err := json.Unmarshal(bodyBytes, &resp); err != nil {
		return nil, fmt.Errorf("反序列化API响应失败: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("API返回空choices: %s", string(bodyBytes))
	}

	apiMsg := resp.Choices[0].Message
	content := ""
	if apiMsg.Content != nil {
		content = *apiMsg.Content
	}
	role := schema.RoleType(apiMsg.Role)
	if role == "" {
		role = schema.Assistant
	}
	return &schema.Message{Role: role, Content: content}, nil
}

// Stream 实现 model.BaseChatModel 接口。提取场景只用同步补全，流式未实现。
func (q *QwenChatModel) Stream(ctx context.Context, messages []*schema.Message, options ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, fmt.Errorf("QwenChatModel: Stream未实现")
}
