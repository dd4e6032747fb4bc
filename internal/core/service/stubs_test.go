package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

var errStoreDown = errors.New("connection refused")

func testLogger() zerolog.Logger { return zerolog.Nop() }

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu       sync.Mutex
	users    map[int64]*domain.User
	nextID   int64
	err      error // returned by every call when set
	countErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return false, r.err
	}
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) SetAdmin(_ context.Context, email string, isAdmin bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			u.IsAdmin = isAdmin
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *stubUserRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.users)), nil
}

func (r *stubUserRepo) remove(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
}

// ---------------------------------------------------------------------------
// Menu
// ---------------------------------------------------------------------------

type stubMenuRepo struct {
	mu       sync.Mutex
	tables   map[domain.Category][]domain.MenuItem
	nextID   map[domain.Category]int64
	err      error
	countErr error
}

func newStubMenuRepo() *stubMenuRepo {
	return &stubMenuRepo{
		tables: make(map[domain.Category][]domain.MenuItem),
		nextID: make(map[domain.Category]int64),
	}
}

func (r *stubMenuRepo) ListAll(context.Context) ([]domain.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := []domain.MenuItem{}
	for _, c := range domain.Categories {
		out = append(out, r.tables[c]...)
	}
	return out, nil
}

func (r *stubMenuRepo) Create(_ context.Context, c domain.Category, name string, price float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	r.nextID[c]++
	id := r.nextID[c]
	r.tables[c] = append(r.tables[c], domain.MenuItem{ID: id, Name: name, Price: price, Category: c})
	return id, nil
}

func (r *stubMenuRepo) Update(_ context.Context, c domain.Category, id int64, name string, price float64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	for i, it := range r.tables[c] {
		if it.ID == id {
			r.tables[c][i].Name = name
			r.tables[c][i].Price = price
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubMenuRepo) Delete(_ context.Context, c domain.Category, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	for i, it := range r.tables[c] {
		if it.ID == id {
			r.tables[c] = append(r.tables[c][:i], r.tables[c][i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubMenuRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	var n int64
	for _, items := range r.tables {
		n += int64(len(items))
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Messages
// ---------------------------------------------------------------------------

type stubMessageRepo struct {
	mu       sync.Mutex
	msgs     []domain.Message
	nextID   int64
	clock    time.Time
	err      error
	countErr error
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (r *stubMessageRepo) List(context.Context) ([]domain.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := append([]domain.Message{}, r.msgs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubMessageRepo) Create(_ context.Context, msg *domain.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.nextID++
	r.clock = r.clock.Add(time.Minute)
	msg.ID = r.nextID
	msg.CreatedAt = r.clock
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *stubMessageRepo) UpdateText(_ context.Context, id int64, text string) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	for i := range r.msgs {
		if r.msgs[i].ID == id {
			r.msgs[i].Message = text
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubMessageRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return 0, r.err
	}
	for i := range r.msgs {
		if r.msgs[i].ID == id {
			r.msgs = append(r.msgs[:i], r.msgs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (r *stubMessageRepo) Count(context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.countErr != nil {
		return 0, r.countErr
	}
	return int64(len(r.msgs)), nil
}

// ---------------------------------------------------------------------------
// Audit + throttle
// ---------------------------------------------------------------------------

type stubAudit struct {
	mu        sync.Mutex
	entries   []domain.AuditEntry
	recordErr error
	lastLimit int
}

func (a *stubAudit) Record(_ context.Context, e domain.AuditEntry) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.recordErr != nil {
		return a.recordErr
	}
	a.entries = append(a.entries, e)
	return nil
}

func (a *stubAudit) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.lastLimit = limit
	return append([]domain.AuditEntry{}, a.entries...), nil
}

type stubThrottle struct {
	failures map[string]int
	max      int
	err      error
}

func newStubThrottle(max int) *stubThrottle {
	return &stubThrottle{failures: make(map[string]int), max: max}
}

func (t *stubThrottle) Blocked(_ context.Context, email string) (bool, error) {
	if t.err != nil {
		return false, t.err
	}
	return t.failures[email] >= t.max, nil
}

func (t *stubThrottle) RecordFailure(_ context.Context, email string) error {
	if t.err != nil {
		return t.err
	}
	t.failures[email]++
	return nil
}

func (t *stubThrottle) Reset(_ context.Context, email string) error {
	if t.err != nil {
		return t.err
	}
	delete(t.failures, email)
	return nil
}
