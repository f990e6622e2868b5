package services

import (
	"context"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"shoutout_backend/internal/email"
	"shoutout_backend/internal/models"
	"shoutout_backend/internal/repositories"
)

// In-memory repository fakes shared by the service tests.

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders map[string]*models.Order // keyed by order number
}

func newFakeOrderRepo(orders ...*models.Order) *fakeOrderRepo {
	r := &fakeOrderRepo{orders: make(map[string]*models.Order)}
	for _, o := range orders {
		cp := *o
		r.orders[o.OrderNumber] = &cp
	}
	return r
}

func (r *fakeOrderRepo) Create(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if order.ID == "" {
		order.ID = "order-" + order.OrderNumber
	}
	cp := *order
	r.orders[order.OrderNumber] = &cp
	return nil
}

func (r *fakeOrderRepo) Update(order *models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[order.OrderNumber]; !ok {
		return repositories.ErrOrderNotFound
	}
	cp := *order
	r.orders[order.OrderNumber] = &cp
	return nil
}

func (r *fakeOrderRepo) FindByID(id string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) FindByOrderNumber(orderNumber string) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderNumber]
	if !ok {
		return nil, repositories.ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (r *fakeOrderRepo) FindWithFilter(filter repositories.OrderFilter) ([]models.Order, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if filter.CustomerID != "" && o.CustomerID != filter.CustomerID {
			continue
		}
		if filter.CelebrityID != "" && o.CelebrityID != filter.CelebrityID {
			continue
		}
		if filter.Status != "" && o.Status != filter.Status {
			continue
		}
		out = append(out, *o)
	}
	return out, int64(len(out)), nil
}

func (r *fakeOrderRepo) UpdateFields(orderID string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, o := range r.orders {
		if o.ID != orderID {
			continue
		}
		if v, ok := fields["tip_total"]; ok {
			o.TipTotal = v.(decimal.Decimal)
		}
		return nil
	}
	return repositories.ErrOrderNotFound
}

func (r *fakeOrderRepo) CancelStalePending(cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var n int64
	for _, o := range r.orders {
		if o.Status == models.OrderStatusPending && o.PaymentStatus == models.PaymentStatusPending && o.CreatedAt.Before(cutoff) {
			o.Status = models.OrderStatusCancelled
			n++
		}
	}
	return n, nil
}

func (r *fakeOrderRepo) FindAwaitingApprovalSince(cutoff time.Time) ([]models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Order
	for _, o := range r.orders {
		if o.ApprovalStatus == models.ApprovalStatusPending && o.UpdatedAt.Before(cutoff) {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ReconcileTipTotals() (int64, error) { return 0, nil }

type fakeCelebrityRepo struct {
	mu          sync.Mutex
	celebrities map[string]*models.Celebrity // keyed by id
	completed   map[string]int
}

func newFakeCelebrityRepo(celebs ...*models.Celebrity) *fakeCelebrityRepo {
	r := &fakeCelebrityRepo{
		celebrities: make(map[string]*models.Celebrity),
		completed:   make(map[string]int),
	}
	for _, c := range celebs {
		cp := *c
		r.celebrities[c.ID] = &cp
	}
	return r
}

func (r *fakeCelebrityRepo) Create(c *models.Celebrity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.celebrities {
		if existing.UserID == c.UserID {
			return repositories.ErrCelebrityAlreadyExists
		}
	}
	if c.ID == "" {
		c.ID = "celeb-" + c.Slug
	}
	cp := *c
	r.celebrities[c.ID] = &cp
	return nil
}

func (r *fakeCelebrityRepo) Update(c *models.Celebrity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *c
	r.celebrities[c.ID] = &cp
	return nil
}

func (r *fakeCelebrityRepo) FindByID(id string) (*models.Celebrity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.celebrities[id]
	if !ok {
		return nil, repositories.ErrCelebrityNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCelebrityRepo) FindBySlug(slug string) (*models.Celebrity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.celebrities {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCelebrityNotFound
}

func (r *fakeCelebrityRepo) FindByUserID(userID string) (*models.Celebrity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.celebrities {
		if c.UserID == userID {
			cp := *c
			return &cp, nil
		}
	}
	return nil, repositories.ErrCelebrityNotFound
}

func (r *fakeCelebrityRepo) Search(criteria repositories.CelebritySearchCriteria) ([]models.Celebrity, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Celebrity
	for _, c := range r.celebrities {
		if criteria.Category != "" && c.Category != criteria.Category {
			continue
		}
		if criteria.Search != "" && !strings.Contains(strings.ToLower(c.DisplayName), strings.ToLower(criteria.Search)) {
			continue
		}
		if criteria.FeaturedOnly && !c.IsFeatured {
			continue
		}
		out = append(out, *c)
	}
	// Rating sort is the only ordering the tests rely on.
	if criteria.SortBy == "rating" {
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				if out[j].Rating > out[i].Rating {
					out[i], out[j] = out[j], out[i]
				}
			}
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeCelebrityRepo) ListCategories() ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[string]bool)
	var out []string
	for _, c := range r.celebrities {
		if !seen[c.Category] {
			seen[c.Category] = true
			out = append(out, c.Category)
		}
	}
	return out, nil
}

func (r *fakeCelebrityRepo) IncrementCompletedVideos(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed[id]++
	return nil
}

type fakeTipRepo struct {
	mu   sync.Mutex
	tips []models.Tip
}

func (r *fakeTipRepo) Create(tip *models.Tip) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if tip.ID == "" {
		tip.ID = "tip-" + tip.OrderNumber + "-" + tip.Amount.String()
	}
	r.tips = append(r.tips, *tip)
	return nil
}

func (r *fakeTipRepo) FindByOrderID(orderID string) ([]models.Tip, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Tip
	for _, t := range r.tips {
		if t.OrderID == orderID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *fakeTipRepo) SumByOrderID(orderID string) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, t := range r.tips {
		if t.OrderID == orderID && t.Status == models.TipStatusPaid {
			total = total.Add(t.Amount)
		}
	}
	return total, nil
}

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*models.User // keyed by id
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
	}
	return r
}

func (r *fakeUserRepo) FindByID(id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) Create(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repositories.ErrUserAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) UpdateStatus(userID string, status models.UserStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.Status = status
	return nil
}

func (r *fakeUserRepo) VerifyUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return repositories.ErrUserNotFound
	}
	u.IsVerified = true
	u.VerificationToken = ""
	return nil
}

func (r *fakeUserRepo) Delete(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, userID)
	return nil
}

func (r *fakeUserRepo) UpdateLastActive(string) error { return nil }

func (r *fakeUserRepo) FindByVerificationToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.VerificationToken == token && token != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindByResetToken(token string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ResetToken == token && token != "" {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (r *fakeUserRepo) FindWithFilter(filter repositories.UserFilter) ([]models.User, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.Status != "" && u.Status != filter.Status {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) GetUserStats() (*repositories.UserStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repositories.UserStats{Total: int64(len(r.users))}
	for _, u := range r.users {
		switch u.Role {
		case models.UserRoleCustomer:
			stats.Customers++
		case models.UserRoleCelebrity:
			stats.Celebrities++
		case models.UserRoleAdmin:
			stats.Admins++
		}
	}
	return stats, nil
}

type fakeApplicationRepo struct {
	mu   sync.Mutex
	apps map[string]*models.Application
	seq  int
}

func newFakeApplicationRepo(apps ...*models.Application) *fakeApplicationRepo {
	r := &fakeApplicationRepo{apps: make(map[string]*models.Application)}
	for _, a := range apps {
		cp := *a
		r.apps[a.ID] = &cp
	}
	return r
}

func (r *fakeApplicationRepo) Create(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if app.ID == "" {
		r.seq++
		app.ID = "app-" + strconv.Itoa(r.seq)
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) Update(app *models.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.apps[app.ID]; !ok {
		return repositories.ErrApplicationNotFound
	}
	cp := *app
	r.apps[app.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) FindByID(id string) (*models.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) FindWithFilter(filter repositories.ApplicationFilter) ([]models.Application, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Application
	for _, a := range r.apps {
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, int64(len(out)), nil
}

func (r *fakeApplicationRepo) GetStats() (*repositories.ApplicationStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &repositories.ApplicationStats{Total: int64(len(r.apps))}
	for _, a := range r.apps {
		switch a.Status {
		case models.ApplicationStatusPending:
			stats.Pending++
		case models.ApplicationStatusUnderReview:
			stats.UnderReview++
		case models.ApplicationStatusApproved:
			stats.Approved++
		case models.ApplicationStatusRejected:
			stats.Rejected++
		}
	}
	return stats, nil
}

type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []models.Notification
}

func (r *fakeNotificationRepo) Create(n *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications = append(r.notifications, *n)
	return nil
}

func (r *fakeNotificationRepo) FindForUser(userID string, unreadOnly bool, page, limit int) ([]models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Notification
	for _, n := range r.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) MarkRead(userID, notificationID string) error { return nil }
func (r *fakeNotificationRepo) MarkAllRead(userID string) error              { return nil }
func (r *fakeNotificationRepo) CountUnread(userID string) (int64, error)     { return 0, nil }

type fakeRefreshTokenRepo struct {
	mu     sync.Mutex
	tokens map[string]*models.RefreshToken
}

func newFakeRefreshTokenRepo() *fakeRefreshTokenRepo {
	return &fakeRefreshTokenRepo{tokens: make(map[string]*models.RefreshToken)}
}

func (r *fakeRefreshTokenRepo) Create(token *models.RefreshToken) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *token
	r.tokens[token.Token] = &cp
	return nil
}

func (r *fakeRefreshTokenRepo) Find(token string) (*models.RefreshToken, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tokens[token]
	if !ok {
		return nil, repositories.ErrRefreshTokenNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *fakeRefreshTokenRepo) Delete(token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return repositories.ErrRefreshTokenNotFound
	}
	delete(r.tokens, token)
	return nil
}

func (r *fakeRefreshTokenRepo) DeleteForUser(userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

func (r *fakeRefreshTokenRepo) CleanExpired() (int64, error) { return 0, nil }

// fakeStorage is an in-memory storage.Storage.
type fakeStorage struct {
	mu    sync.Mutex
	files map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: make(map[string][]byte)}
}

func (s *fakeStorage) Save(_ context.Context, path string, reader io.Reader, _ string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files[path] = data
	return nil
}

func (s *fakeStorage) Get(_ context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.files[path]
	if !ok {
		return nil, io.ErrUnexpectedEOF
	}
	return io.NopCloser(strings.NewReader(string(data))), nil
}

func (s *fakeStorage) Delete(_ context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, path)
	return nil
}

func (s *fakeStorage) Exists(_ context.Context, path string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[path]
	return ok, nil
}

func (s *fakeStorage) GetURL(_ context.Context, path string) (string, error) {
	return "https://cdn.test/" + path, nil
}

func (s *fakeStorage) GetSignedURL(_ context.Context, path string, _ time.Duration) (string, error) {
	return "https://cdn.test/" + path + "?signed=1", nil
}

func (s *fakeStorage) GetSize(_ context.Context, path string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.files[path])), nil
}

// nopEmailProvider swallows outgoing mail in tests.
type nopEmailProvider struct{}

func (nopEmailProvider) Send(*email.Email) error { return nil }
func (nopEmailProvider) SendTemplate([]string, string, string, email.TemplateData) error {
	return nil
}
func (nopEmailProvider) SendVerification(string, string) error { return nil }
func (nopEmailProvider) Close() error                          { return nil }
