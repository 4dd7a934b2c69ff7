package storefront

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"

	"github.com/umithief/motovibe6/config"
	deliverycontext "github.com/umithief/motovibe6/internal/delivery/context"
	"github.com/umithief/motovibe6/internal/domain/entity"
	domainerrors "github.com/umithief/motovibe6/internal/domain/errors"
	"github.com/umithief/motovibe6/internal/domain/seed"
	"github.com/umithief/motovibe6/internal/errors"
	"github.com/umithief/motovibe6/internal/usecase"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// APIError is a non-2xx answer from the API server.
type APIError struct {
	Status int
	Code   string
	Msg    string
	Detail string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %d %s: %s", e.Status, e.Code, e.Msg)
}

func (e *APIError) HTTPCode() int     { return e.Status }
func (e *APIError) ErrorCode() string { return e.Code }
func (e *APIError) Message() string   { return e.Msg }
func (e *APIError) Details() string   { return e.Detail }

// Is matches domain errors by business code. Authentication failures carry
// middleware codes and match on status instead.
func (e *APIError) Is(target error) bool {
	t, ok := target.(domainerrors.AppError)
	if !ok {
		return false
	}
	if t.ErrorCode() == e.Code {
		return true
	}

	switch e.Status {
	case http.StatusUnauthorized:
		return t.ErrorCode() == domainerrors.ErrUnauthorized.ErrorCode()
	case http.StatusForbidden:
		return t.ErrorCode() == domainerrors.ErrForbidden.ErrorCode()
	}

	return false
}

type envelope struct {
	Data  jsoniter.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
}

// remoteBackend talks JSON to the API server. Catalog and forum listings fall
// back to the built-in seed data when the server cannot answer; writes never
// fall back.
type remoteBackend struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRemoteBackend returns a Backend for the API server at cfg.APIURL.
func NewRemoteBackend(cfg *config.StorefrontConfig, logger *slog.Logger) (Backend, error) {
	if cfg.APIURL == "" {
		return nil, errors.New("storefront.apiUrl is required in remote mode")
	}

	base, err := url.Parse(strings.TrimSuffix(cfg.APIURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse storefront.apiUrl")
	}

	return &remoteBackend{
		baseURL: base,
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		logger: logger,
	}, nil
}

func (b *remoteBackend) do(ctx context.Context, method, path string, query url.Values, token string, body, out any) error {
	u := *b.baseURL
	u.Path += path
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil && resp.StatusCode < 300 {
			return errors.Wrapf(err, "failed to decode %s %s", method, path)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{Status: resp.StatusCode, Code: "HTTP_ERROR", Msg: http.StatusText(resp.StatusCode)}
		if env.Error != nil {
			apiErr.Code, apiErr.Msg = env.Error.Code, env.Error.Message
			if env.Error.Details != nil {
				apiErr.Detail = fmt.Sprint(env.Error.Details)
			}
		}

		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}

	return errors.WithStack(json.Unmarshal(env.Data, out))
}

func (b *remoteBackend) fallback(ctx context.Context, what string, err error) {
	deliverycontext.GetLoggerOrDefault(ctx, b.logger).Warn("API unavailable, serving built-in data",
		slog.String("resource", what),
		slog.Any("error", err),
	)
}

func (b *remoteBackend) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	var products []*entity.Product
	if err := b.do(ctx, http.MethodGet, "/api/products", nil, "", nil, &products); err != nil {
		b.fallback(ctx, "products", err)
		return seed.Products(time.Now()), nil
	}

	return products, nil
}

func (b *remoteBackend) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var product entity.Product
	err := b.do(ctx, http.MethodGet, "/api/products/"+id.String(), nil, "", nil, &product)
	if err == nil {
		return &product, nil
	}

	if _, ok := errors.AsType[*APIError](err); !ok {
		for _, p := range seed.Products(time.Now()) {
			if p.ID == id {
				b.fallback(ctx, "product", err)
				return p, nil
			}
		}
	}

	return nil, err
}

func productBody(input *usecase.ProductInput) map[string]any {
	return map[string]any{
		"name":        input.Name,
		"description": input.Description,
		"price":       input.Price,
		"category":    input.Category,
		"image":       input.Image,
		"images":      input.Images,
		"rating":      input.Rating,
		"features":    input.Features,
		"stock":       input.Stock,
	}
}

func (b *remoteBackend) CreateProduct(ctx context.Context, token string, input *usecase.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := b.do(ctx, http.MethodPost, "/api/products", nil, token, productBody(input), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (b *remoteBackend) UpdateProduct(ctx context.Context, token string, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	var product entity.Product
	if err := b.do(ctx, http.MethodPut, "/api/products/"+id.String(), nil, token, productBody(input), &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (b *remoteBackend) DeleteProduct(ctx context.Context, token string, id uuid.UUID) error {
	return b.do(ctx, http.MethodDelete, "/api/products/"+id.String(), nil, token, nil, nil)
}

func (b *remoteBackend) ListCategories(ctx context.Context) ([]*entity.CategoryItem, error) {
	var categories []*entity.CategoryItem
	if err := b.do(ctx, http.MethodGet, "/api/categories", nil, "", nil, &categories); err != nil {
		b.fallback(ctx, "categories", err)
		return seed.Categories(time.Now()), nil
	}

	return categories, nil
}

func categoryBody(input *usecase.CategoryInput) map[string]any {
	return map[string]any{
		"name":      input.Name,
		"type":      input.Type,
		"image":     input.Image,
		"desc":      input.Desc,
		"count":     input.Count,
		"className": input.ClassName,
	}
}

func (b *remoteBackend) CreateCategory(ctx context.Context, token string, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	var category entity.CategoryItem
	if err := b.do(ctx, http.MethodPost, "/api/categories", nil, token, categoryBody(input), &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (b *remoteBackend) UpdateCategory(ctx context.Context, token string, id uuid.UUID, input *usecase.CategoryInput) (*entity.CategoryItem, error) {
	var category entity.CategoryItem
	if err := b.do(ctx, http.MethodPut, "/api/categories/"+id.String(), nil, token, categoryBody(input), &category); err != nil {
		return nil, err
	}

	return &category, nil
}

func (b *remoteBackend) DeleteCategory(ctx context.Context, token string, id uuid.UUID) error {
	return b.do(ctx, http.MethodDelete, "/api/categories/"+id.String(), nil, token, nil, nil)
}

func (b *remoteBackend) ListSlides(ctx context.Context) ([]*entity.Slide, error) {
	var slides []*entity.Slide
	if err := b.do(ctx, http.MethodGet, "/api/slides", nil, "", nil, &slides); err != nil {
		b.fallback(ctx, "slides", err)
		return seed.Slides(time.Now()), nil
	}

	return slides, nil
}

func slideBody(input *usecase.SlideInput) map[string]any {
	return map[string]any{
		"image":    input.Image,
		"title":    input.Title,
		"subtitle": input.Subtitle,
		"cta":      input.CTA,
		"action":   input.Action,
	}
}

func (b *remoteBackend) CreateSlide(ctx context.Context, token string, input *usecase.SlideInput) (*entity.Slide, error) {
	var slide entity.Slide
	if err := b.do(ctx, http.MethodPost, "/api/slides", nil, token, slideBody(input), &slide); err != nil {
		return nil, err
	}

	return &slide, nil
}

func (b *remoteBackend) UpdateSlide(ctx context.Context, token string, id uuid.UUID, input *usecase.SlideInput) (*entity.Slide, error) {
	var slide entity.Slide
	if err := b.do(ctx, http.MethodPut, "/api/slides/"+id.String(), nil, token, slideBody(input), &slide); err != nil {
		return nil, err
	}

	return &slide, nil
}

func (b *remoteBackend) DeleteSlide(ctx context.Context, token string, id uuid.UUID) error {
	return b.do(ctx, http.MethodDelete, "/api/slides/"+id.String(), nil, token, nil, nil)
}

func (b *remoteBackend) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	body := map[string]any{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
		"phone":    input.Phone,
		"address":  input.Address,
	}

	var user entity.User
	if err := b.do(ctx, http.MethodPost, "/api/auth/register", nil, "", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

func (b *remoteBackend) Login(ctx context.Context, input *usecase.LoginInput) (*entity.AuthSession, error) {
	body := map[string]any{
		"email":    input.Email,
		"password": input.Password,
	}

	var session entity.AuthSession
	if err := b.do(ctx, http.MethodPost, "/api/auth/login", nil, "", body, &session); err != nil {
		return nil, err
	}

	return &session, nil
}

func (b *remoteBackend) PlaceOrder(ctx context.Context, token string, items []entity.OrderItem) (*entity.Order, error) {
	var order entity.Order
	body := map[string]any{"items": items}
	if err := b.do(ctx, http.MethodPost, "/api/orders", nil, token, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (b *remoteBackend) ListOrders(ctx context.Context, token string, userID *uuid.UUID) ([]*entity.Order, error) {
	var query url.Values
	if userID != nil {
		query = url.Values{"userId": {userID.String()}}
	}

	var orders []*entity.Order
	if err := b.do(ctx, http.MethodGet, "/api/orders", query, token, nil, &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (b *remoteBackend) GetOrder(ctx context.Context, token string, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	if err := b.do(ctx, http.MethodGet, "/api/orders/"+id.String(), nil, token, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (b *remoteBackend) UpdateOrderStatus(ctx context.Context, token string, id uuid.UUID, status entity.OrderStatus) (*entity.Order, error) {
	var order entity.Order
	body := map[string]any{"status": status}
	if err := b.do(ctx, http.MethodPut, "/api/orders/"+id.String(), nil, token, body, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (b *remoteBackend) ListTopics(ctx context.Context) ([]*entity.ForumTopic, error) {
	var topics []*entity.ForumTopic
	if err := b.do(ctx, http.MethodGet, "/api/forum/topics", nil, "", nil, &topics); err != nil {
		b.fallback(ctx, "topics", err)
		return seed.Topics(time.Now()), nil
	}

	return topics, nil
}

func (b *remoteBackend) CreateTopic(ctx context.Context, token string, input *usecase.CreateTopicInput) (*entity.ForumTopic, error) {
	body := map[string]any{
		"title":    input.Title,
		"content":  input.Content,
		"category": input.Category,
		"tags":     input.Tags,
	}

	var topic entity.ForumTopic
	if err := b.do(ctx, http.MethodPost, "/api/forum/topics", nil, token, body, &topic); err != nil {
		return nil, err
	}

	return &topic, nil
}

func (b *remoteBackend) AddComment(ctx context.Context, token string, topicID uuid.UUID, content string) (*entity.ForumComment, error) {
	var comment entity.ForumComment
	body := map[string]any{"content": content}
	if err := b.do(ctx, http.MethodPost, "/api/forum/topics/"+topicID.String()+"/comments", nil, token, body, &comment); err != nil {
		return nil, err
	}

	return &comment, nil
}

func (b *remoteBackend) LikeTopic(ctx context.Context, id uuid.UUID) error {
	return b.do(ctx, http.MethodPost, "/api/forum/topics/"+id.String()+"/like", nil, "", nil, nil)
}

func (b *remoteBackend) ViewTopic(ctx context.Context, id uuid.UUID) error {
	return b.do(ctx, http.MethodPost, "/api/forum/topics/"+id.String()+"/view", nil, "", nil, nil)
}

func (b *remoteBackend) TrackEvent(ctx context.Context, token string, event *entity.AnalyticsEvent) error {
	body := map[string]any{
		"type":        event.Type,
		"userName":    event.UserName,
		"productId":   event.ProductID,
		"productName": event.ProductName,
		"duration":    event.Duration,
	}

	return b.do(ctx, http.MethodPost, "/api/analytics/event", nil, token, body, nil)
}

func (b *remoteBackend) Dashboard(ctx context.Context, token string, r entity.TimeRange) (*entity.Dashboard, error) {
	var dashboard entity.Dashboard
	query := url.Values{"range": {string(r)}}
	if err := b.do(ctx, http.MethodGet, "/api/analytics/dashboard", query, token, nil, &dashboard); err != nil {
		return nil, err
	}

	return &dashboard, nil
}

func (b *remoteBackend) RecordVisit(ctx context.Context) error {
	return b.do(ctx, http.MethodPost, "/api/stats/visit", nil, "", nil, nil)
}

func (b *remoteBackend) VisitorStats(ctx context.Context) (*entity.VisitorStats, error) {
	var stats entity.VisitorStats
	if err := b.do(ctx, http.MethodGet, "/api/stats", nil, "", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (b *remoteBackend) ActivityLogs(ctx context.Context, token string, limit int) ([]*entity.ActivityLog, error) {
	var query url.Values
	if limit > 0 {
		query = url.Values{"limit": {strconv.Itoa(limit)}}
	}

	var logs []*entity.ActivityLog
	if err := b.do(ctx, http.MethodGet, "/api/logs", query, token, nil, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

func (b *remoteBackend) Close() error {
	b.httpClient.CloseIdleConnections()
	return nil
}
