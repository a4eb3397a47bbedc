package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rafabene/userhub-backend/internal/domain/entities"
	"github.com/rafabene/userhub-backend/internal/domain/ports"
	"github.com/rafabene/userhub-backend/internal/infrastructure/config"
)

// Client consulta a API administrativa do provedor de autenticação.
// Implementa ports.AccountDirectory.
type Client struct {
	baseURL    string
	serviceKey string
	httpClient *http.Client
	log        ports.Logger
}

// NewClient cria um cliente do diretório de contas
func NewClient(cfg *config.DirectoryConfig, log ports.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceRoleKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

var _ ports.AccountDirectory = (*Client)(nil)

// listResponse é o envelope devolvido pelo endpoint admin/users
type listResponse struct {
	Users []entities.Account `json:"users"`
}

// ListAccounts busca todas as contas do provedor, paginando até o fim
func (c *Client) ListAccounts(ctx context.Context) ([]entities.Account, error) {
	const perPage = 1000

	var accounts []entities.Account

	for page := 1; ; page++ {
		batch, err := c.listPage(ctx, page, perPage)
		if err != nil {
			return nil, err
		}

		accounts = append(accounts, batch...)

		if len(batch) < perPage {
			break
		}
	}

	c.log.Debug("directory accounts fetched", "count", len(accounts))
	return accounts, nil
}

func (c *Client) listPage(ctx context.Context, page, perPage int) ([]entities.Account, error) {
	endpoint := fmt.Sprintf("%s/admin/users?%s", c.baseURL, url.Values{
		"page":     {fmt.Sprint(page)},
		"per_page": {fmt.Sprint(perPage)},
	}.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build directory request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("directory request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned status %d", resp.StatusCode)
	}

	var body listResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode directory response: %w", err)
	}

	return body.Users, nil
}
