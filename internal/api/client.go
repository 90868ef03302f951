// Package api implements the HTTP client for the remote Wallet Service.
// The service performs all balance mutation and PIN verification; this
// client only speaks its contract and translates failures into errno kinds.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"wallet-client/internal/model"
	"wallet-client/pkg/errno"
)

const (
	headerPin       = "X-Wallet-Pin"
	headerRequestID = "X-Request-Id"
)

type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     *zap.Logger
}

func New(baseURL, token string, timeout time.Duration, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// SetToken replaces the bearer token after a login.
func (c *Client) SetToken(token string) {
	c.token = token
}

type addMoneyRequest struct {
	Amount json.Number `json:"amount"`
	Pin    string      `json:"pin"`
}

type transferRequest struct {
	ToUserID string      `json:"toUserId"`
	Amount   json.Number `json:"amount"`
	Pin      string      `json:"pin"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

// AddMoney credits the caller's wallet. The PIN travels in the body only.
func (c *Client) AddMoney(ctx context.Context, amount decimal.Decimal, pin string) (model.WalletSnapshot, error) {
	req := addMoneyRequest{Amount: jsonAmount(amount), Pin: pin}
	var resp balanceResponse
	if err := c.do(ctx, http.MethodPost, "/wallet/add-money", req, "", true, &resp); err != nil {
		return model.WalletSnapshot{}, err
	}
	return model.WalletSnapshot{Balance: resp.Balance}, nil
}

// Transfer debits the caller's wallet in favor of another user.
func (c *Client) Transfer(ctx context.Context, toUserID string, amount decimal.Decimal, pin string) (model.TransferReceipt, error) {
	req := transferRequest{ToUserID: toUserID, Amount: jsonAmount(amount), Pin: pin}
	var receipt model.TransferReceipt
	if err := c.do(ctx, http.MethodPost, "/wallet/transfer", req, "", true, &receipt); err != nil {
		return model.TransferReceipt{}, err
	}
	return receipt, nil
}

// Wallet fetches the balance snapshot. The Wallet Service re-verifies the
// PIN on every read, so the caller must supply it via the dedicated header.
func (c *Client) Wallet(ctx context.Context, pin string) (model.WalletSnapshot, error) {
	var snap model.WalletSnapshot
	if err := c.do(ctx, http.MethodGet, "/wallet", nil, pin, false, &snap); err != nil {
		return model.WalletSnapshot{}, err
	}
	return snap, nil
}

// RecentTransactions returns the ten newest transactions.
func (c *Client) RecentTransactions(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := c.do(ctx, http.MethodGet, "/transactions/recent", nil, "", false, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ListQuery filters the transaction history.
type ListQuery struct {
	Page      int
	Limit     int
	Status    string
	StartDate string
	EndDate   string
}

// Transactions returns one page of filtered history.
func (c *Client) Transactions(ctx context.Context, q ListQuery) (model.TransactionPage, error) {
	values := url.Values{}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.StartDate != "" {
		values.Set("start_date", q.StartDate)
	}
	if q.EndDate != "" {
		values.Set("end_date", q.EndDate)
	}

	path := "/transactions"
	if encoded := values.Encode(); encoded != "" {
		path += "?" + encoded
	}

	var page model.TransactionPage
	if err := c.do(ctx, http.MethodGet, path, nil, "", false, &page); err != nil {
		return model.TransactionPage{}, err
	}
	return page, nil
}

// ListUsers returns the user directory for recipient selection.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, "", false, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// BusinessRules returns the server-enforced transfer rules.
func (c *Client) BusinessRules(ctx context.Context) (model.BusinessRules, error) {
	var rules model.BusinessRules
	if err := c.do(ctx, http.MethodGet, "/config/business-rules", nil, "", false, &rules); err != nil {
		return model.BusinessRules{}, err
	}
	return rules, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges credentials for a session token.
func (c *Client) Login(ctx context.Context, email, password string) (model.Session, error) {
	var session model.Session
	if err := c.do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, "", false, &session); err != nil {
		return model.Session{}, err
	}
	return session, nil
}

// Register creates a new user and wallet.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	req := registerRequest{Name: name, Email: email, Password: password}
	return c.do(ctx, http.MethodPost, "/auth/register", req, "", true, nil)
}

// jsonAmount renders a decimal as a bare JSON number with exactly the
// digits the user entered; no float round trip, no rounding.
func jsonAmount(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// do performs one request against the Wallet Service. pin, when set, is
// sent via the X-Wallet-Pin header; it never appears in the URL or logs.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, pin string, mutation bool, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if pin != "" {
		req.Header.Set(headerPin, pin)
	}
	if mutation {
		req.Header.Set(headerRequestID, uuid.NewString())
	}

	c.log.Debug("wallet api request", zap.String("method", method), zap.String("path", req.URL.Path))

	resp, err := c.http.Do(req)
	if err != nil {
		// Request lost and response lost are indistinguishable here; the
		// flow must never assume the mutation happened either way.
		c.log.Warn("wallet api transport failure", zap.String("path", req.URL.Path), zap.Error(err))
		return errno.ErrNetwork
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Warn("wallet api response read failure", zap.String("path", req.URL.Path), zap.Error(err))
		return errno.ErrNetwork
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return mapError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errno.ErrUnknownServer.WithMessage("Malformed response from the wallet service")
	}
	return nil
}

type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// mapError classifies a non-2xx response onto the errno taxonomy, carrying
// the server's own message verbatim when one is present. The Wallet Service
// distinguishes business failures by message text, not status code, so 400
// and 422 are classified by their detail string.
func mapError(status int, body []byte) error {
	var eb errorBody
	_ = json.Unmarshal(body, &eb)
	detail := eb.Detail
	if detail == "" {
		detail = eb.Message
	}

	var kind *errno.Errno
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		kind = errno.ErrAuthorization
	case status == http.StatusBadRequest || status == http.StatusUnprocessableEntity:
		lower := strings.ToLower(detail)
		switch {
		case strings.Contains(lower, "limit"):
			kind = errno.ErrLimitExceeded
		case strings.Contains(lower, "insufficient"):
			kind = errno.ErrInsufficientFunds
		case strings.Contains(lower, "pin"):
			kind = errno.ErrAuthorization
		default:
			kind = errno.ErrUnknownServer
		}
	default:
		kind = errno.ErrUnknownServer
	}

	return kind.WithMessage(detail)
}
