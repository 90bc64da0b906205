// Package repository implements persistence for users and photos on top of gorm.
package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"photo-backend/internal/models"
)

const uniqueViolation = "23505"

// constraintFields maps unique constraints from the schema to the field they guard.
var constraintFields = map[string]string{
	"users_username_key": "Username",
	"users_email_key":    "Email",
}

// translate turns driver errors into the domain errors callers match on.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		field, ok := constraintFields[pgErr.ConstraintName]
		if !ok {
			field = pgErr.ConstraintName
		}
		return &models.DuplicateError{Field: field}
	}
	return err
}
