package handler

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/api/middleware"
	"github.com/cedarhouse/restaurant-api/internal/core/domain"
	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

type stubAuthService struct {
	signUpFn  func(ctx context.Context, username, email, password string) (*ports.Session, error)
	logInFn   func(ctx context.Context, email, password string) (*ports.Session, error)
	currentFn func(ctx context.Context, userID int64) (domain.PublicUser, error)
}

func (s *stubAuthService) Verify(string) (*domain.Claims, error) { return nil, domain.ErrTokenInvalid }

func (s *stubAuthService) SignUp(ctx context.Context, username, email, password string) (*ports.Session, error) {
	return s.signUpFn(ctx, username, email, password)
}

func (s *stubAuthService) LogIn(ctx context.Context, email, password string) (*ports.Session, error) {
	return s.logInFn(ctx, email, password)
}

func (s *stubAuthService) CurrentUser(ctx context.Context, userID int64) (domain.PublicUser, error) {
	return s.currentFn(ctx, userID)
}

type stubMenuService struct {
	items   []domain.MenuItem
	err     error
	lastIn  ports.MenuItemInput
	deleted []int64
	calls   int
}

func (s *stubMenuService) List(context.Context) ([]domain.MenuItem, error) {
	return s.items, s.err
}

func (s *stubMenuService) Create(_ context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	s.calls++
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	cat, _ := domain.ParseCategory(in.Table)
	return &domain.MenuItem{ID: 7, Name: in.Name, Price: in.Price, Category: cat}, nil
}

func (s *stubMenuService) Update(_ context.Context, in ports.MenuItemInput) (*domain.MenuItem, error) {
	s.calls++
	s.lastIn = in
	if s.err != nil {
		return nil, s.err
	}
	cat, _ := domain.ParseCategory(in.Table)
	return &domain.MenuItem{ID: in.ID, Name: in.Name, Price: in.Price, Category: cat}, nil
}

func (s *stubMenuService) Delete(_ context.Context, _ string, id, _ int64) error {
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

type stubMessageService struct {
	msgs    []domain.Message
	err     error
	calls   int
	lastID  int64
	lastTxt string
}

func (s *stubMessageService) List(context.Context) ([]domain.Message, error) { return s.msgs, s.err }

func (s *stubMessageService) Create(_ context.Context, name, email, text string) (*domain.Message, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Message{ID: 1, Name: name, Email: email, Message: text}, nil
}

func (s *stubMessageService) Update(_ context.Context, id int64, text string, _ int64) error {
	s.calls++
	s.lastID, s.lastTxt = id, text
	return s.err
}

func (s *stubMessageService) Delete(_ context.Context, id, _ int64) error {
	s.calls++
	s.lastID = id
	return s.err
}

type stubStatsService struct {
	stats *domain.Stats
	err   error
}

func (s *stubStatsService) Stats(context.Context) (*domain.Stats, error) { return s.stats, s.err }

type stubAuditService struct {
	lastLimit int
}

func (s *stubAuditService) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	s.lastLimit = limit
	return []domain.AuditEntry{{Action: domain.AuditDelete, Resource: "main", ResourceID: 3, ActorID: 1}}, nil
}

// newContext builds an echo context for method/target with an optional JSON
// body. A positive actor id simulates the Auth middleware.
func newContext(method, target, body string, actor int64) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if actor > 0 {
		c.Set(middleware.ContextUserID, actor)
		c.Set(middleware.ContextIsAdmin, true)
	}
	return c, rec
}

var _ ports.AuthService = (*stubAuthService)(nil)
var _ ports.MenuService = (*stubMenuService)(nil)
var _ ports.MessageService = (*stubMessageService)(nil)
