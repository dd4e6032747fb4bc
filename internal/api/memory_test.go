package api

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/cedarhouse/restaurant-api/internal/core/domain"
)

type memUsers struct {
	mu    sync.Mutex
	users []*domain.User
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) FindByID(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (m *memUsers) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (m *memUsers) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = int64(len(m.users) + 1)
	user.CreatedAt = time.Now()
	cp := *user
	m.users = append(m.users, &cp)
	return user, nil
}

func (m *memUsers) SetAdmin(_ context.Context, email string, isAdmin bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == email {
			u.IsAdmin = isAdmin
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

// memMenu keeps one table per category with its own id sequence.
type memMenu struct {
	mu      sync.Mutex
	tables  map[domain.Category][]domain.MenuItem
	nextID  map[domain.Category]int64
	touched int
}

func newMemMenu() *memMenu {
	return &memMenu{
		tables: map[domain.Category][]domain.MenuItem{},
		nextID: map[domain.Category]int64{},
	}
}

func (m *memMenu) ListAll(context.Context) ([]domain.MenuItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	items := []domain.MenuItem{}
	for _, c := range domain.Categories {
		items = append(items, m.tables[c]...)
	}
	return items, nil
}

func (m *memMenu) Create(_ context.Context, c domain.Category, name string, price float64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	m.nextID[c]++
	id := m.nextID[c]
	m.tables[c] = append(m.tables[c], domain.MenuItem{ID: id, Name: name, Price: price, Category: c})
	return id, nil
}

func (m *memMenu) Update(_ context.Context, c domain.Category, id int64, name string, price float64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	for i := range m.tables[c] {
		if m.tables[c][i].ID == id {
			m.tables[c][i].Name, m.tables[c][i].Price = name, price
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memMenu) Delete(_ context.Context, c domain.Category, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	for i, item := range m.tables[c] {
		if item.ID == id {
			m.tables[c] = append(m.tables[c][:i], m.tables[c][i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memMenu) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, items := range m.tables {
		n += int64(len(items))
	}
	return n, nil
}

type memMessages struct {
	mu      sync.Mutex
	msgs    []domain.Message
	clock   time.Time
	touched int
}

func (m *memMessages) List(context.Context) ([]domain.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	out := append([]domain.Message{}, m.msgs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memMessages) Create(_ context.Context, msg *domain.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	m.clock = m.clock.Add(time.Second)
	msg.ID = int64(len(m.msgs) + 1)
	msg.CreatedAt = m.clock
	m.msgs = append(m.msgs, *msg)
	return nil
}

func (m *memMessages) UpdateText(_ context.Context, id int64, text string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	for i := range m.msgs {
		if m.msgs[i].ID == id {
			m.msgs[i].Message = text
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memMessages) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.touched++
	for i := range m.msgs {
		if m.msgs[i].ID == id {
			m.msgs = append(m.msgs[:i], m.msgs[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func (m *memMessages) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.msgs)), nil
}

type memAudit struct {
	mu      sync.Mutex
	entries []domain.AuditEntry
}

func (m *memAudit) Record(_ context.Context, e domain.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, e)
	return nil
}

func (m *memAudit) Recent(_ context.Context, limit int) ([]domain.AuditEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []domain.AuditEntry{}
	for i := len(m.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.entries[i])
	}
	return out, nil
}
