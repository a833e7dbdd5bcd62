package gorm

import (
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/labelforge/labelforge/pkg/server/store"
)

func TestMapError(t *testing.T) {
	t.Run("unique violation", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "labels_project_id_name_key"})
		assert.ErrorIs(t, err, store.ErrUniqueViolation)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		err := mapError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, err, store.ErrForeignKeyViolation)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		cause := errors.New("connection reset")
		assert.Equal(t, cause, mapError(cause))
	})

	t.Run("nil", func(t *testing.T) {
		assert.NoError(t, mapError(nil))
	})
}
