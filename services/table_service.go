package services

import (
	"errors"
	"log"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// DefaultTableCapacity is used when a table is created without a capacity
const DefaultTableCapacity = 4

// CreateTableInput holds the data needed to add a table
type CreateTableInput struct {
	Number   int
	Capacity *int
}

// UpdateTableInput holds a partial table update. Nil fields are left unchanged.
type UpdateTableInput struct {
	Number   *int
	Capacity *int
	Status   *string
}

// TableService manages the physical tables of the restaurant
type TableService struct {
	store repository.Store
}

// NewTableService creates a table service
func NewTableService(store repository.Store) *TableService {
	return &TableService{store: store}
}

// ListTables returns every table ordered by number
func (s *TableService) ListTables() ([]models.Table, error) {
	return s.store.Tables().List()
}

// GetTable returns a single table
func (s *TableService) GetTable(id uint) (*models.Table, error) {
	table, err := s.store.Tables().GetByID(id)
	if err != nil {
		return nil, tableLookupError(err, id)
	}
	return table, nil
}

// CreateTable adds a new available table
func (s *TableService) CreateTable(in CreateTableInput) (*models.Table, error) {
	if in.Number < 1 {
		return nil, invalid(CodeInvalidNumber, "Table number is required and must be positive")
	}

	capacity := DefaultTableCapacity
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, invalid(CodeInvalidCapacity, "Capacity must be at least 1")
		}
		capacity = *in.Capacity
	}

	if err := s.ensureNumberFree(in.Number); err != nil {
		return nil, err
	}

	table := &models.Table{
		Number:   in.Number,
		Capacity: capacity,
		Status:   models.TableStatusAvailable,
	}
	if err := s.store.Tables().Create(table); err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(CodeTableExists, "Table number %d already exists", in.Number)
		}
		return nil, err
	}

	log.Printf("Table %d created with capacity %d", table.Number, table.Capacity)
	return s.GetTable(table.ID)
}

// UpdateTable applies a partial update to a table. A status set here is kept
// until an order is created at the table or its last active order closes.
func (s *TableService) UpdateTable(id uint, in UpdateTableInput) (*models.Table, error) {
	table, err := s.GetTable(id)
	if err != nil {
		return nil, err
	}

	if in.Number != nil && *in.Number != table.Number {
		if *in.Number < 1 {
			return nil, invalid(CodeInvalidNumber, "Table number must be positive")
		}
		if err := s.ensureNumberFree(*in.Number); err != nil {
			return nil, err
		}
		table.Number = *in.Number
	}
	if in.Capacity != nil {
		if *in.Capacity < 1 {
			return nil, invalid(CodeInvalidCapacity, "Capacity must be at least 1")
		}
		table.Capacity = *in.Capacity
	}
	if in.Status != nil {
		status, err := parseTableStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		table.Status = status
	}

	if err := s.store.Tables().Update(table); err != nil {
		if isUniqueViolation(err) {
			return nil, conflict(CodeTableExists, "Table number %d already exists", table.Number)
		}
		return nil, err
	}

	return s.GetTable(id)
}

// SetTableStatus sets the status of a table directly
func (s *TableService) SetTableStatus(id uint, rawStatus string) (*models.Table, error) {
	status, err := parseTableStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	if err := s.store.Tables().UpdateStatus(id, status); err != nil {
		return nil, tableLookupError(err, id)
	}

	return s.GetTable(id)
}

// DeleteTable removes a table. Tables with active orders cannot be removed;
// paid orders keep their table reference for reporting.
func (s *TableService) DeleteTable(id uint) (*models.Table, error) {
	var deleted *models.Table

	err := s.store.Transaction(func(tx repository.Store) error {
		table, err := tx.Tables().GetByID(id)
		if err != nil {
			return tableLookupError(err, id)
		}

		if table.ActiveOrders > 0 {
			return referential(CodeTableInUse,
				"Cannot delete table %d because it has %d active orders", table.Number, table.ActiveOrders)
		}

		if err := tx.Tables().Delete(id); err != nil {
			return tableLookupError(err, id)
		}
		deleted = table
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("Table %d deleted", deleted.Number)
	return deleted, nil
}

// GetTableStats counts tables per status
func (s *TableService) GetTableStats() (*models.TableStats, error) {
	stats, err := s.store.Tables().Stats()
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// RecomputeTableAvailability marks the table available when it has no active
// orders. Otherwise the current status is left untouched.
func (s *TableService) RecomputeTableAvailability(id uint) (*models.Table, error) {
	err := s.store.Transaction(func(tx repository.Store) error {
		if _, err := tx.Tables().GetByID(id); err != nil {
			return tableLookupError(err, id)
		}
		_, err := releaseTableIfIdle(tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}

	return s.GetTable(id)
}

func (s *TableService) ensureNumberFree(number int) error {
	_, err := s.store.Tables().GetByNumber(number)
	if err == nil {
		return conflict(CodeTableExists, "Table number %d already exists", number)
	}
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	return err
}

func parseTableStatus(raw string) (models.TableStatus, error) {
	status, err := models.ParseTableStatus(raw)
	if err != nil {
		return "", invalid(CodeInvalidStatus, "Invalid status. Must be: available, occupied, or reserved")
	}
	return status, nil
}
