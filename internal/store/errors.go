package store

import "errors"

var (
	// ErrNotFound : le document demandé n'existe pas.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateDate : une date de livraison identique existe déjà
	// (index unique sur deliveryDates.date).
	ErrDuplicateDate = errors.New("delivery date already exists")
)
