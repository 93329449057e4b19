package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/instaboost/apiserver/internal/services"
	"github.com/instaboost/apiserver/internal/store"
	"github.com/instaboost/apiserver/types"
)

const testSecretKey = "test-secret"

type fakeUserRepo struct {
	mu     sync.Mutex
	users  []types.User
	nextID int
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == username {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (f *fakeUserRepo) GetFirst(_ context.Context) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.users) == 0 {
		return types.User{}, store.ErrNotFound
	}
	return f.users[0], nil
}

func (f *fakeUserRepo) Create(_ context.Context, user types.User) (types.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Username == user.Username || u.Email == user.Email {
			return types.User{}, store.ErrDuplicate
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeUserRepo) add(username, email, passwordHash string) types.User {
	user, _ := f.Create(context.Background(), types.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	return user
}

type fakeOrderRepo struct {
	mu     sync.Mutex
	orders []types.Order
	nextID int
}

func (f *fakeOrderRepo) Create(_ context.Context, order types.Order) (types.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	order.ID = f.nextID
	order.CreatedAt = time.Now()
	f.orders = append(f.orders, order)
	return order, nil
}

type fakeReviewRepo struct {
	mu      sync.Mutex
	reviews []types.Review
	nextID  int
}

func (f *fakeReviewRepo) Create(_ context.Context, review types.Review) (types.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	review.ID = f.nextID
	review.CreatedAt = time.Now()
	f.reviews = append(f.reviews, review)
	return review, nil
}

func (f *fakeReviewRepo) List(_ context.Context) ([]types.Review, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.Review, len(f.reviews))
	copy(out, f.reviews)
	return out, nil
}

type fakeSupportRepo struct {
	mu       sync.Mutex
	messages []types.SupportMessage
	nextID   int
}

func (f *fakeSupportRepo) Create(_ context.Context, msg types.SupportMessage) (types.SupportMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	msg.ID = f.nextID
	msg.CreatedAt = time.Now()
	f.messages = append(f.messages, msg)
	return msg, nil
}

func (f *fakeSupportRepo) List(_ context.Context) ([]types.SupportMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]types.SupportMessage, len(f.messages))
	copy(out, f.messages)
	return out, nil
}

// testEnv wires the full route tree the way server.New does, backed by
// in-memory repositories.
type testEnv struct {
	router  *chi.Mux
	users   *fakeUserRepo
	orders  *fakeOrderRepo
	reviews *fakeReviewRepo
	chat    *fakeSupportRepo
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:   &fakeUserRepo{},
		orders:  &fakeOrderRepo{},
		reviews: &fakeReviewRepo{},
		chat:    &fakeSupportRepo{},
	}

	userService := services.NewUserService(env.users)
	orderService := services.NewOrderService(env.orders)
	reviewService := services.NewReviewService(env.reviews)
	supportService := services.NewSupportService(env.chat)

	router := chi.NewRouter()
	router.Get("/", Root)
	router.Get("/healthz", Healthz)
	router.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			AuthRouter(r, userService, testSecretKey)
		})
		r.Route("/orders", func(r chi.Router) {
			OrderRouter(r, orderService, userService)
		})
		r.Route("/reviews", func(r chi.Router) {
			ReviewRouter(r, reviewService, userService)
		})
		r.Route("/chat", func(r chi.Router) {
			ChatRouter(r, supportService)
		})
	})

	env.router = router
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	if err := json.NewDecoder(rec.Body).Decode(&out); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[ErrorResponse](t, rec).Error
}
