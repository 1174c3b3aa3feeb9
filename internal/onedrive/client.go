// client.go — HTTP-клиент Microsoft Graph для реального листинга OneDrive.
// Используется вместо демо-режима при ODM_DEMO_MODE=false.
package onedrive

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/Dmitrijj78/onedrive-manager/internal/domain/model"
)

// DefaultGraphBaseURL — базовый URL Microsoft Graph API.
const DefaultGraphBaseURL = "https://graph.microsoft.com/v1.0"

// GraphClient — клиент Microsoft Graph для листинга файлов OneDrive.
type GraphClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewGraphClient создаёт Graph-клиент.
// baseURL — базовый URL API (пустая строка — DefaultGraphBaseURL).
// timeout — таймаут HTTP-запросов к Graph.
func NewGraphClient(baseURL string, timeout time.Duration, logger *slog.Logger) *GraphClient {
	if baseURL == "" {
		baseURL = DefaultGraphBaseURL
	}
	return &GraphClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.With(slog.String("component", "graph_client")),
	}
}

// driveItem — элемент диска в ответе Graph (используемое подмножество полей).
type driveItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Size int64  `json:"size"`
	// Folder — folder facet: присутствует только у папок.
	Folder *struct {
		ChildCount int `json:"childCount"`
	} `json:"folder"`
}

// childrenResponse — ответ GET /me/drive/root/children.
type childrenResponse struct {
	Value []driveItem `json:"value"`
}

// graphError — тело ошибки Graph API.
type graphError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ListChildren запрашивает элементы корневой папки диска пользователя.
// Формат запроса: GET {baseURL}/me/drive/root/children
// Авторизация: Bearer access token из облачной сессии аккаунта.
func (c *GraphClient) ListChildren(ctx context.Context, accessToken string) ([]*model.CloudFile, error) {
	reqURL := c.baseURL + "/me/drive/root/children"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("создание запроса к Graph: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос к Graph: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("чтение ответа Graph: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var gErr graphError
		if jsonErr := json.Unmarshal(body, &gErr); jsonErr == nil && gErr.Error.Code != "" {
			return nil, fmt.Errorf("graph вернул ошибку %s: %s", gErr.Error.Code, gErr.Error.Message)
		}
		return nil, fmt.Errorf("graph вернул статус %d", resp.StatusCode)
	}

	var children childrenResponse
	if err := json.Unmarshal(body, &children); err != nil {
		return nil, fmt.Errorf("разбор ответа Graph: %w", err)
	}

	result := make([]*model.CloudFile, 0, len(children.Value))
	for _, item := range children.Value {
		cf := &model.CloudFile{
			ID:       item.ID,
			Name:     item.Name,
			IsFolder: item.Folder != nil,
		}
		if !cf.IsFolder {
			cf.Size = humanize.Bytes(uint64(item.Size))
		}
		result = append(result, cf)
	}

	c.logger.Debug("Листинг OneDrive получен", slog.Int("items", len(result)))
	return result, nil
}
