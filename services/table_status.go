package services

import (
	"errors"
	"log"

	"github.com/kendall-kelly/cafe-pos-api/models"
	"github.com/kendall-kelly/cafe-pos-api/repository"
)

// releaseTableIfIdle sets the table to available when it has no active orders
// left. A table with active orders keeps whatever status it has; only order
// creation marks a table occupied. Must run inside the caller's transaction so
// the count and the status write see the same ledger.
func releaseTableIfIdle(tx repository.Store, tableID uint) (bool, error) {
	active, err := tx.Orders().CountActiveByTable(tableID)
	if err != nil {
		return false, err
	}
	if active > 0 {
		return false, nil
	}

	if err := tx.Tables().UpdateStatus(tableID, models.TableStatusAvailable); err != nil {
		// orders may outlive the table they were placed at
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	log.Printf("Table %d has no active orders, marked available", tableID)
	return true, nil
}
