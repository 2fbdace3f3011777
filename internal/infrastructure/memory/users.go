package memory

import (
	"strings"
	"sync"
	"time"

	"fieldtrack/internal/domain/aggregate"
)

// UserDirectory is a read-mostly in-memory user list
type UserDirectory struct {
	users []aggregate.User
	mutex sync.RWMutex
}

// NewUserDirectory creates a directory holding the given users
func NewUserDirectory(users ...aggregate.User) *UserDirectory {
	return &UserDirectory{users: append([]aggregate.User(nil), users...)}
}

// All returns every user
func (d *UserDirectory) All() []aggregate.User {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	return append([]aggregate.User(nil), d.users...)
}

// Get retrieves a user by ID
func (d *UserDirectory) Get(id string) (aggregate.User, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	for _, u := range d.users {
		if u.ID == id {
			return u, true
		}
	}
	return aggregate.User{}, false
}

// FindByEmail retrieves a user by email, ignoring case
func (d *UserDirectory) FindByEmail(email string) (aggregate.User, bool) {
	d.mutex.RLock()
	defer d.mutex.RUnlock()

	for _, u := range d.users {
		if strings.EqualFold(u.Email, strings.TrimSpace(email)) {
			return u, true
		}
	}
	return aggregate.User{}, false
}

// Put inserts or replaces a user. Activity entries already written keep the
// name they were created with.
func (d *UserDirectory) Put(user aggregate.User) {
	d.mutex.Lock()
	defer d.mutex.Unlock()

	for i, u := range d.users {
		if u.ID == user.ID {
			d.users[i] = user
			return
		}
	}
	d.users = append(d.users, user)
}

// DemoUsers returns one account per role so a fresh session can be logged into.
func DemoUsers(now time.Time) []aggregate.User {
	return []aggregate.User{
		{ID: "u1", Name: "Admin User", Email: "admin@occamy.com", Role: aggregate.RoleAdmin, Territory: "All India", IsActive: true, CreatedAt: now},
		{ID: "u2", Name: "Rajesh Kumar", Email: "rajesh@occamy.com", Role: aggregate.RoleFieldOfficer, Territory: "Meerut", IsActive: true, CreatedAt: now},
		{ID: "u3", Name: "Amit Sharma", Email: "amit@occamy.com", Role: aggregate.RoleDistributor, Territory: "Ghaziabad", IsActive: true, CreatedAt: now},
	}
}
