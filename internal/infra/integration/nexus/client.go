package nexus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/xavierca1/nexus-pipeline/internal/entity"
	"github.com/xavierca1/nexus-pipeline/internal/usecase"
)

const DefaultTimeout = 10 * time.Second

// Client fala com o backend CRUD + gerador de e-mails (FastAPI).
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// ListLeads: GET /leads/
func (c *Client) ListLeads(ctx context.Context) ([]entity.Lead, error) {
	var resp []leadResponse
	if err := c.do(ctx, http.MethodGet, "/leads/", nil, &resp); err != nil {
		return nil, err
	}
	return mapToLeads(resp), nil
}

// CreateLead: POST /leads/ — o backend atribui id, status e score.
func (c *Client) CreateLead(ctx context.Context, draft entity.LeadDraft) (*entity.Lead, error) {
	payload := createLeadRequest{
		Name:    draft.Name,
		Company: draft.Company,
		Email:   draft.Email,
		Notes:   draft.Notes,
	}

	var resp leadResponse
	if err := c.do(ctx, http.MethodPost, "/leads/", payload, &resp); err != nil {
		return nil, err
	}
	lead := mapToLead(resp)
	log.Printf("✅ Backend: lead #%s criado para %s (score %d)", lead.ID, lead.Company, lead.AIScore)
	return &lead, nil
}

// DeleteLead: DELETE /leads/{id}
func (c *Client) DeleteLead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/leads/"+url.PathEscape(id), nil, nil)
}

// UpdateLeadStatus: PATCH /leads/{id} com {status}
func (c *Client) UpdateLeadStatus(ctx context.Context, id string, status string) (*entity.Lead, error) {
	var resp leadResponse
	if err := c.do(ctx, http.MethodPatch, "/leads/"+url.PathEscape(id), updateStatusRequest{Status: status}, &resp); err != nil {
		return nil, err
	}
	lead := mapToLead(resp)
	return &lead, nil
}

// GenerateEmail: GET /leads/{id}/email
func (c *Client) GenerateEmail(ctx context.Context, leadID string) (string, error) {
	var resp emailDraftResponse
	if err := c.do(ctx, http.MethodGet, "/leads/"+url.PathEscape(leadID)+"/email", nil, &resp); err != nil {
		return "", err
	}
	if resp.Email == nil {
		return "", &usecase.TechnicalError{
			Code:    usecase.CodeMalformedResponse,
			Message: "backend response has no email field",
		}
	}
	return *resp.Email, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		jsonBody, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("erro ao gerar json: %w", err)
		}
		body = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	c.setHeaders(req, payload != nil)

	resp, err := c.http.Do(req)
	if err != nil {
		return &usecase.TechnicalError{
			Code:    usecase.CodeBackendUnreachable,
			Message: fmt.Sprintf("backend unreachable (%s %s)", method, path),
			Err:     err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return statusError(method, path, resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &usecase.TechnicalError{
			Code:    usecase.CodeMalformedResponse,
			Message: fmt.Sprintf("malformed response from %s %s", method, path),
			Err:     err,
		}
	}
	return nil
}

func statusError(method, path string, status int, body []byte) error {
	detail := detailMessage(body)
	log.Printf("Backend: %s %s -> %d: %s", method, path, status, detail)

	switch {
	case status == http.StatusNotFound:
		return &usecase.DomainError{
			Code:    usecase.CodeLeadNotFound,
			Message: "lead not found",
			Err:     entity.ErrLeadNotFound,
		}
	case status >= 400 && status < 500:
		return &usecase.DomainError{
			Code:    usecase.CodeBackendRejected,
			Message: fmt.Sprintf("backend rejected request (status %d): %s", status, detail),
		}
	default:
		return &usecase.TechnicalError{
			Code:    usecase.CodeBackendError,
			Message: fmt.Sprintf("backend error (status %d)", status),
		}
	}
}

func (c *Client) setHeaders(req *http.Request, hasBody bool) {
	if hasBody {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NexusPipeline/1.0")
}
