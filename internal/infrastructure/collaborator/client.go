// Package collaborator implementa las colecciones LOV de documentos contra la API REST
// del sistema de registro (envelope {status, data, message?, pagination?}).
package collaborator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Jinzyy/project-eza-sub000/internal/application/dto"
	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
	"github.com/Jinzyy/project-eza-sub000/pkg/config"
)

var _ repository.DocumentRepository = (*Client)(nil)

// maxErrorBody límite de bytes leídos de un cuerpo de error para el mensaje.
const maxErrorBody = 4 << 10

// Client cliente HTTP del colaborador.
type Client struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
}

// NewClient construye el cliente. BaseURL debe ser absoluta (ej. http://erp.local/api).
func NewClient(cfg config.CollaboratorConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("collaborator: base URL inválida %q", cfg.BaseURL)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:    base,
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type envelope struct {
	Status     bool            `json:"status"`
	Data       json.RawMessage `json:"data"`
	Message    string          `json:"message"`
	Pagination *dto.Pagination `json:"pagination"`
}

// ListDocuments GET /{recurso}?page=&limit=&{filtro}=false.
func (c *Client) ListDocuments(ctx context.Context, q repository.DocumentQuery) (*repository.DocumentPage, error) {
	if !q.Type.Valid() {
		return nil, domain.ErrUnknownDocumentType
	}
	params := url.Values{}
	params.Set("page", strconv.Itoa(q.Page))
	params.Set("limit", strconv.Itoa(q.PageSize))
	if q.Filter.Path != "" {
		params.Set(q.Filter.Path, strconv.FormatBool(q.Filter.Value))
	}

	var items []dto.DocumentSummaryResponse
	env, err := c.get(ctx, q.Type.Resource(), params, &items)
	if err != nil {
		return nil, err
	}

	page := &repository.DocumentPage{Items: make([]entity.DocumentSummary, 0, len(items))}
	for _, it := range items {
		page.Items = append(page.Items, entity.DocumentSummary{
			ID:               it.ID,
			Number:           it.Number,
			CounterpartyName: it.CounterpartyName,
		})
	}
	page.Total = len(items)
	if env.Pagination != nil {
		page.Total = env.Pagination.Total
	}
	return page, nil
}

// get ejecuta la petición y decodifica data en out. Un status=false o un código
// no 2xx se devuelve como error con el mensaje del colaborador.
func (c *Client) get(ctx context.Context, resource string, params url.Values, out interface{}) (*envelope, error) {
	u := c.baseURL.JoinPath(resource)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("collaborator: crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("collaborator: GET %s: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var env envelope
		if json.Unmarshal(body, &env) == nil && env.Message != "" {
			return nil, fmt.Errorf("collaborator: GET %s: HTTP %d: %s", resource, resp.StatusCode, env.Message)
		}
		return nil, fmt.Errorf("collaborator: GET %s: HTTP %d", resource, resp.StatusCode)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("collaborator: decodificar %s: %w", resource, err)
	}
	if !env.Status {
		msg := env.Message
		if msg == "" {
			msg = "status=false"
		}
		return nil, fmt.Errorf("collaborator: GET %s: %s", resource, msg)
	}
	if len(env.Data) > 0 && string(env.Data) != "null" {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("collaborator: decodificar data de %s: %w", resource, err)
		}
	}
	return &env, nil
}
