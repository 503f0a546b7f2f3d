package datasource

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"legali_app_go/models"
	"legali_app_go/services/pipeline"
	"legali_app_go/services/session"
)

// Upstream endpoints
const (
	endpointLawyers     = "/lawyers"
	endpointFeatured    = "/lawyers/featured"
	endpointCases       = "/cases"
	endpointBookings    = "/bookings"
	endpointInvestments = "/investments"
	endpointLogin       = "/api/auth/login"
	endpointRefresh     = "/api/auth/refresh"
	endpointProfile     = "/api/auth/profile"
)

// APIOptions configures the upstream API client
type APIOptions struct {
	BaseURL string
	Timeout time.Duration
	// Client overrides the HTTP client, mostly for tests
	Client *http.Client
}

// API is a DataSource backed by the upstream REST API
type API struct {
	baseURL string
	client  *http.Client
}

var _ DataSource = (*API)(nil)

// NewAPI creates an upstream API client
func NewAPI(opts APIOptions) *API {
	client := opts.Client
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &API{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		client:  client,
	}
}

type bookingEnvelope struct {
	Booking models.Booking `json:"booking"`
	Message string         `json:"message,omitempty"`
}

type investmentEnvelope struct {
	Investment models.Investment `json:"investment"`
}

type profileEnvelope struct {
	Data struct {
		Data models.User `json:"data"`
	} `json:"data"`
}

type loginResponse struct {
	User models.User `json:"user"`
	TokenPair
}

type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (a *API) SearchLawyers(ctx context.Context, params pipeline.SearchParams) (pipeline.LawyerPage, error) {
	q := url.Values{}
	setIf(q, "query", params.Query)
	setIf(q, "caseType", params.CaseType)
	setIf(q, "specialty", params.Specialty)
	setIf(q, "location", params.Location)
	setIf(q, "language", params.Language)
	setIf(q, "availability", params.Availability)
	setIf(q, "sortBy", params.SortBy)
	setIf(q, "sortOrder", params.SortOrder)
	if params.Rating > 0 {
		q.Set("rating", strconv.FormatFloat(params.Rating, 'f', -1, 64))
	}
	if params.Experience > 0 {
		q.Set("experience", strconv.Itoa(params.Experience))
	}
	if params.Budget != nil {
		q.Set("minPrice", strconv.FormatFloat(params.Budget.Min, 'f', -1, 64))
		if params.Budget.Max < math.MaxFloat64 {
			q.Set("maxPrice", strconv.FormatFloat(params.Budget.Max, 'f', -1, 64))
		}
	}
	page, limit := params.Page, params.Limit
	if page < 1 {
		page = pipeline.DefaultPage
	}
	if limit < 1 {
		limit = pipeline.DefaultPageSize
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result pipeline.LawyerPage
	if err := a.do(ctx, http.MethodGet, endpointLawyers, q, TokenFrom(ctx), nil, &result); err != nil {
		return pipeline.LawyerPage{}, err
	}
	return result, nil
}

func (a *API) GetLawyer(ctx context.Context, id string) (*models.Lawyer, error) {
	var lawyer models.Lawyer
	if err := a.do(ctx, http.MethodGet, endpointLawyers+"/"+url.PathEscape(id), nil, TokenFrom(ctx), nil, &lawyer); err != nil {
		return nil, err
	}
	return &lawyer, nil
}

func (a *API) GetLawyerReviews(ctx context.Context, lawyerID string) ([]models.Review, error) {
	reviews := []models.Review{}
	path := endpointLawyers + "/" + url.PathEscape(lawyerID) + "/reviews"
	if err := a.do(ctx, http.MethodGet, path, nil, TokenFrom(ctx), nil, &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (a *API) FeaturedLawyers(ctx context.Context) ([]models.Lawyer, error) {
	lawyers := []models.Lawyer{}
	if err := a.do(ctx, http.MethodGet, endpointFeatured, nil, TokenFrom(ctx), nil, &lawyers); err != nil {
		return nil, err
	}
	return lawyers, nil
}

func (a *API) ListCases(ctx context.Context) ([]models.LitigationCase, error) {
	cases := []models.LitigationCase{}
	if err := a.do(ctx, http.MethodGet, endpointCases, nil, TokenFrom(ctx), nil, &cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (a *API) CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error) {
	var resp bookingEnvelope
	if err := a.do(ctx, http.MethodPost, endpointBookings, nil, TokenFrom(ctx), booking, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (a *API) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := a.do(ctx, http.MethodGet, endpointBookings+"/"+url.PathEscape(id), nil, TokenFrom(ctx), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (a *API) ListUserBookings(ctx context.Context, userID string, page, limit int) (BookingPage, error) {
	q := url.Values{}
	q.Set("clientId", userID)
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))

	var result BookingPage
	if err := a.do(ctx, http.MethodGet, endpointBookings, q, TokenFrom(ctx), nil, &result); err != nil {
		return BookingPage{}, err
	}
	return result, nil
}

func (a *API) CancelBooking(ctx context.Context, id, reason string) (*models.Booking, error) {
	body := map[string]string{"status": models.BookingStatusCancelled, "notes": reason}
	var resp bookingEnvelope
	if err := a.do(ctx, http.MethodPatch, endpointBookings+"/"+url.PathEscape(id), nil, TokenFrom(ctx), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Booking, nil
}

func (a *API) CreateInvestment(ctx context.Context, investment models.Investment) (*models.Investment, error) {
	var resp investmentEnvelope
	if err := a.do(ctx, http.MethodPost, endpointInvestments, nil, TokenFrom(ctx), investment, &resp); err != nil {
		return nil, err
	}
	return &resp.Investment, nil
}

func (a *API) Login(ctx context.Context, email, password string) (*models.User, *TokenPair, error) {
	body := map[string]string{"email": email, "password": password}
	var resp loginResponse
	if err := a.do(ctx, http.MethodPost, endpointLogin, nil, "", body, &resp); err != nil {
		if errors.Is(err, ErrUnauthorized) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}
	pair := resp.TokenPair
	return &resp.User, &pair, nil
}

func (a *API) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	body := map[string]string{"refresh_token": refreshToken}
	var pair TokenPair
	if err := a.do(ctx, http.MethodPost, endpointRefresh, nil, "", body, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *API) GetProfile(ctx context.Context, sess *session.Session) (*models.User, error) {
	var resp profileEnvelope
	if err := a.do(ctx, http.MethodGet, endpointProfile, nil, sess.UpstreamToken(), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Data, nil
}

func (a *API) UpdateProfile(ctx context.Context, sess *session.Session, update models.ProfileUpdate) (*models.User, error) {
	var resp profileEnvelope
	if err := a.do(ctx, http.MethodPut, endpointProfile, nil, sess.UpstreamToken(), update, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Data, nil
}

// do performs one JSON request. Non-2xx responses become *APIError,
// joined with ErrNotFound or ErrUnauthorized where they apply.
func (a *API) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	reqURL := a.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Status: resp.StatusCode, Message: errorMessage(resp)}
		switch resp.StatusCode {
		case http.StatusNotFound:
			return fmt.Errorf("%s %s: %w: %w", method, path, ErrNotFound, apiErr)
		case http.StatusUnauthorized:
			return fmt.Errorf("%s %s: %w: %w", method, path, ErrUnauthorized, apiErr)
		}
		return fmt.Errorf("%s %s: %w", method, path, apiErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func errorMessage(resp *http.Response) string {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil || len(raw) == 0 {
		return http.StatusText(resp.StatusCode)
	}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return strings.TrimSpace(string(raw))
}

func setIf(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
