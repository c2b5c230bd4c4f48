package gateway

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/shopkart/storefront/internal/auth"
	"github.com/shopkart/storefront/internal/models"
)

type mockUser struct {
	user         models.User
	passwordHash string
}

// Mock is an in-memory Gateway with seeded demo data. Every call
// settles after an artificial delay, like a backend would.
type Mock struct {
	tokens   *auth.Manager
	minDelay time.Duration
	maxDelay time.Duration

	mu     sync.Mutex
	users  []mockUser
	orders []models.Order
}

// NewMock creates a Mock with the demo catalog, the two demo accounts
// and their order history. Delays of zero make it settle immediately.
func NewMock(tokens *auth.Manager, minDelay, maxDelay time.Duration) *Mock {
	m := &Mock{
		tokens:   tokens,
		minDelay: minDelay,
		maxDelay: maxDelay,
		orders:   seedOrders(),
	}

	for _, seed := range []models.User{
		{ID: "1", Email: "admin@example.com", Name: "Admin User", IsAdmin: true},
		{ID: "2", Email: "user@example.com", Name: "Regular User", IsAdmin: false},
	} {
		hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("seeding demo users: %v", err))
		}
		m.users = append(m.users, mockUser{user: seed, passwordHash: string(hash)})
	}

	return m
}

// wait simulates backend latency. It returns early only if the
// context is cancelled.
func (m *Mock) wait(ctx context.Context) error {
	d := m.minDelay
	if m.maxDelay > m.minDelay {
		d += rand.N(m.maxDelay - m.minDelay)
	}
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (m *Mock) Login(ctx context.Context, email, password string) (Credentials, error) {
	if err := m.wait(ctx); err != nil {
		return Credentials{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.user.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(password)) != nil {
			return Credentials{}, ErrInvalidCredentials
		}
		token, err := m.tokens.GenerateToken(u.user)
		if err != nil {
			return Credentials{}, err
		}
		return Credentials{User: u.user, Token: token}, nil
	}
	return Credentials{}, ErrInvalidCredentials
}

// Register always succeeds, mirroring the demo backend.
func (m *Mock) Register(ctx context.Context, name, email, password string) (Credentials, error) {
	if err := m.wait(ctx); err != nil {
		return Credentials{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	user := models.User{
		ID:      fmt.Sprintf("%d", len(m.users)+1),
		Email:   email,
		Name:    name,
		IsAdmin: false,
	}
	m.users = append(m.users, mockUser{user: user, passwordHash: string(hash)})

	token, err := m.tokens.GenerateToken(user)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{User: user, Token: token}, nil
}

func (m *Mock) Products(ctx context.Context) ([]models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	products := make([]models.Product, len(seedProducts))
	copy(products, seedProducts)
	return products, nil
}

func (m *Mock) ProductByID(ctx context.Context, id string) (models.Product, error) {
	if err := m.wait(ctx); err != nil {
		return models.Product{}, err
	}

	for _, p := range seedProducts {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (m *Mock) CreateOrder(ctx context.Context, draft OrderDraft) (models.Order, error) {
	if err := m.wait(ctx); err != nil {
		return models.Order{}, err
	}

	order := models.Order{
		ID:        "order-" + uuid.NewString(),
		Items:     draft.Items,
		Shipping:  draft.Shipping,
		Payment:   draft.Payment,
		Subtotal:  draft.Subtotal,
		Tax:       draft.Tax,
		Delivery:  draft.Delivery,
		Total:     draft.Total,
		Status:    models.OrderStatusProcessing,
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	m.orders = append(m.orders, order)
	m.mu.Unlock()

	return order, nil
}

func (m *Mock) Orders(ctx context.Context) ([]models.Order, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	orders := make([]models.Order, len(m.orders))
	copy(orders, m.orders)
	return orders, nil
}

func (m *Mock) OrderByID(ctx context.Context, id string) (models.Order, error) {
	if err := m.wait(ctx); err != nil {
		return models.Order{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

func (m *Mock) CreatePaymentIntent(ctx context.Context, amount int64) (models.PaymentIntent, error) {
	if err := m.wait(ctx); err != nil {
		return models.PaymentIntent{}, err
	}

	return models.PaymentIntent{
		ID:       "pi_" + uuid.NewString(),
		Amount:   amount,
		Currency: "INR",
	}, nil
}

func (m *Mock) VerifyPayment(ctx context.Context, payload models.PaymentPayload) (models.PaymentVerification, error) {
	if err := m.wait(ctx); err != nil {
		return models.PaymentVerification{}, err
	}

	return models.PaymentVerification{
		Success:   true,
		PaymentID: payload.PaymentID,
	}, nil
}
