package repository

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a lookup by key matches no row
var ErrNotFound = errors.New("record not found")

// Store is the persistence provider handed to every service.
// Repositories obtained from the Store passed to a Transaction callback
// share that transaction.
type Store interface {
	Tables() TableRepository
	Categories() CategoryRepository
	MenuItems() MenuItemRepository
	Orders() OrderRepository

	// Transaction runs fn in a single database transaction. The transaction
	// is committed when fn returns nil and rolled back otherwise.
	Transaction(fn func(tx Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore creates a Store backed by the given database handle
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Tables() TableRepository {
	return &tableRepository{db: s.db}
}

func (s *gormStore) Categories() CategoryRepository {
	return &categoryRepository{db: s.db}
}

func (s *gormStore) MenuItems() MenuItemRepository {
	return &menuItemRepository{db: s.db}
}

func (s *gormStore) Orders() OrderRepository {
	return &orderRepository{db: s.db}
}

func (s *gormStore) Transaction(fn func(tx Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}

// translate maps gorm errors onto repository errors
func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
