package session

import (
	"sync"

	"github.com/angelmondragon/shopflow-backend/internal/orders"
	pkgerrors "github.com/angelmondragon/shopflow-backend/pkg/errors"
	"github.com/angelmondragon/shopflow-backend/pkg/types"
	"github.com/google/uuid"
)

// Session holds the authentication flag, profile, address book, and
// order history for the current user. Everything here is
// session-scoped: logout discards the order history and addresses
// along with the profile.
type Session struct {
	mu            *sync.Mutex
	authenticated bool
	profile       *types.Profile
	addresses     []types.Address
	orders        []orders.Order
}

// New builds a signed-out session guarded by its own lock.
func New() *Session {
	return NewWithLock(new(sync.Mutex))
}

// NewWithLock builds a signed-out session guarded by mu. Passing the
// same lock to several stores lets a coordinator mutate them as one
// observable transition; see orders.NewLedger.
func NewWithLock(mu *sync.Mutex) *Session {
	return &Session{mu: mu}
}

// Login marks the session authenticated and stores the profile.
func (s *Session) Login(profile types.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = true
	p := profile
	s.profile = &p
}

// Logout tears the session down: profile, addresses, and order
// history are all discarded.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.authenticated = false
	s.profile = nil
	s.addresses = nil
	s.orders = nil
}

// IsAuthenticated reports whether a login is active.
func (s *Session) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.IsAuthenticatedLocked()
}

// IsAuthenticatedLocked is IsAuthenticated for callers already holding
// the session's lock.
func (s *Session) IsAuthenticatedLocked() bool {
	return s.authenticated
}

// Profile returns the stored profile, if signed in.
func (s *Session) Profile() (types.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return types.Profile{}, false
	}
	return *s.profile, true
}

// ProfileUpdate patches individual profile fields.
type ProfileUpdate struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Avatar *string `json:"avatar,omitempty"`
}

// UpdateProfile merges the update into the stored profile.
func (s *Session) UpdateProfile(update ProfileUpdate) (types.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.authenticated || s.profile == nil {
		return types.Profile{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "no active session")
	}
	if update.Name != nil {
		s.profile.Name = *update.Name
	}
	if update.Email != nil {
		s.profile.Email = *update.Email
	}
	if update.Avatar != nil {
		s.profile.Avatar = *update.Avatar
	}
	return *s.profile, nil
}

// AddAddress appends an address to the book, assigning an id when the
// caller did not provide one.
func (s *Session) AddAddress(address types.Address) types.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	if address.ID == uuid.Nil {
		address.ID = uuid.New()
	}
	s.addresses = append(s.addresses, address)
	return address
}

// RemoveAddress drops the address with the given id, if present.
func (s *Session) RemoveAddress(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, address := range s.addresses {
		if address.ID == id {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			return
		}
	}
}

// Addresses returns a copy of the address book in insertion order.
func (s *Session) Addresses() []types.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]types.Address(nil), s.addresses...)
}

// AddOrder prepends the order so history reads most-recent first.
func (s *Session) AddOrder(order orders.Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.AddOrderLocked(order)
}

// AddOrderLocked is AddOrder for callers already holding the session's
// lock.
func (s *Session) AddOrderLocked(order orders.Order) {
	s.orders = append([]orders.Order{order}, s.orders...)
}

// Orders returns a copy of the order history, most recent first.
func (s *Session) Orders() []orders.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]orders.Order(nil), s.orders...)
}
