package adapter

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/fabline/floorsync/internal/config"
	"github.com/fabline/floorsync/internal/logger"
	"github.com/fabline/floorsync/internal/utils"
	"github.com/fabline/floorsync/models"
)

type plantAPIAdapter struct {
	client *utils.HTTPClient

	hashKey string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewPlantAPI constructs the HTTP/REST implementation of [PlantAPI].
// It normalises and validates the base URL from plantCfg.HTTPAddress,
// configures the underlying HTTP client with the resolved base URL and
// request timeout, and initialises the shared HMAC hasher pool used for
// transport integrity hashes when appCfg.HashKey is set.
//
// Returns an error if plantCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewPlantAPI(plantCfg config.Plant, appCfg config.App, logger *logger.Logger) (PlantAPI, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(plantCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid plant api address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(plantCfg.RequestTimeout)

	if appCfg.HashKey != "" {
		utils.InitHasherPool(appCfg.HashKey)
	}

	return &plantAPIAdapter{client: client, hashKey: appCfg.HashKey, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [PlantAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (p *plantAPIAdapter) SetToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = strings.TrimSpace(token)
}

// Token implements [PlantAPI]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (p *plantAPIAdapter) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// SubmitQC implements [PlantAPI]. It POSTs the checklist to
// POST /api/v1/qc/submissions with an integrity hash over the body.
func (p *plantAPIAdapter) SubmitQC(ctx context.Context, submission models.QCSubmission) error {
	return p.postSigned(ctx, "/api/v1/qc/submissions", "submit qc", submission)
}

// SubmitStationMove implements [PlantAPI]. It POSTs the move to
// POST /api/v1/station-moves.
func (p *plantAPIAdapter) SubmitStationMove(ctx context.Context, move models.StationMoveRequest) error {
	return p.postSigned(ctx, "/api/v1/station-moves", "submit station move", move)
}

// SubmitReceipt implements [PlantAPI]. It POSTs the goods receipt to
// POST /api/v1/inventory/receipts.
func (p *plantAPIAdapter) SubmitReceipt(ctx context.Context, receipt models.InventoryReceipt) error {
	return p.postSigned(ctx, "/api/v1/inventory/receipts", "submit receipt", receipt)
}

// ClockIn implements [PlantAPI]. It POSTs the shift start to
// POST /api/v1/time/clock-in.
func (p *plantAPIAdapter) ClockIn(ctx context.Context, event models.ClockEvent) error {
	return p.postSigned(ctx, "/api/v1/time/clock-in", "clock in", event)
}

// ClockOut implements [PlantAPI]. It POSTs the shift end to
// POST /api/v1/time/clock-out.
func (p *plantAPIAdapter) ClockOut(ctx context.Context, event models.ClockEvent) error {
	return p.postSigned(ctx, "/api/v1/time/clock-out", "clock out", event)
}

// Login implements [PlantAPI]. It POSTs the badge credentials to
// POST /api/v1/auth/login. On success the bearer token is extracted from
// the Authorization response header and stored via SetToken; the session
// expiry is read from the token's exp claim, and the employee ID from its
// sub claim when present. Returns an error if the request fails, the
// server returns a non-2xx status, or the token cannot be parsed.
func (p *plantAPIAdapter) Login(ctx context.Context, employeeID, pin string) (models.Session, error) {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.LoginRequest{EmployeeID: employeeID, PIN: pin}).
		Post("/api/v1/auth/login")
	if err != nil {
		return models.Session{}, fmt.Errorf("login request: %w: %w", ErrUnavailable, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Session{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	expiresAt, err := utils.ParseTokenExpiry(token)
	if err != nil {
		return models.Session{}, fmt.Errorf("login parse token expiry: %w", err)
	}

	// sub несёт серверный employee id; бейдж остаётся запасным вариантом
	if sub, subErr := utils.ParseEmployeeIDFromJWT(token); subErr == nil && sub != "" {
		employeeID = sub
	}

	p.SetToken(token)
	return models.Session{
		EmployeeID: employeeID,
		Token:      token,
		ExpiresAt:  expiresAt,
	}, nil
}

// Healthz implements [PlantAPI]. It GETs the unauthenticated health
// endpoint; the connectivity probe uses it as its reachability sample.
func (p *plantAPIAdapter) Healthz(ctx context.Context) error {
	resp, err := p.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("healthz request: %w: %w", ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

// postSigned marshals payload once, signs exactly those bytes, and POSTs
// them. Signing the marshalled bytes (rather than re-encoding inside the
// client) keeps the hash valid for whatever the wire actually carries.
func (p *plantAPIAdapter) postSigned(ctx context.Context, path, op string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%s encode payload: %w", op, err)
	}

	req := p.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if p.hashKey != "" {
		req.SetHeader("HashSHA256", hex.EncodeToString(utils.Hash(body)))
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%s request: %w: %w", op, ErrUnavailable, err)
	}

	return mapHTTPError(resp)
}

func (p *plantAPIAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := p.client.R().SetContext(ctx)
	if token := p.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
