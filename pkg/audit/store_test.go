package audit

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreSave(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	s := NewStoreWithDB(db)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO audit_messages`)).
		WithArgs(
			FacilityAuthPriv,
			int(SeverityInfo),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			"labelforge",
			sqlmock.AnyArg(),
			"check",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = s.Save(CheckEvent{
		PrincipalID: "u1",
		EntityKind:  "project",
		EntityID:    "p1",
		Action:      "select",
		Allowed:     true,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStoreNilDB(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Save(CheckEvent{}))
	assert.NoError(t, s.Close())
}
