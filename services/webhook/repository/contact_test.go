package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piresc/giving/internal/pkg/models"
)

func TestFindByEmail(t *testing.T) {
	t.Run("existing contact", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewContactRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("WHERE lower(email) = lower($1)")).
			WithArgs("Donor@Example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c1"))

		id, found, err := repo.FindByEmail(context.Background(), "Donor@Example.com")
		require.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, "c1", id)
	})

	t.Run("no contact", func(t *testing.T) {
		db, mock, cleanup := setupMockDB(t)
		defer cleanup()
		repo := NewContactRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta("FROM contacts")).WillReturnError(sql.ErrNoRows)

		_, found, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestCreateContact(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()
	repo := NewContactRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT ((lower(email))) DO UPDATE SET email = contacts.email")).
		WithArgs(sqlmock.AnyArg(), "Ada", "Lovelace", "ada@example.com", models.ContactSourceOnlineDonation, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("c-existing"))

	id, err := repo.Create(context.Background(), models.NewContactFields("ADA@example.com", "Ada Lovelace"))
	require.NoError(t, err)
	assert.Equal(t, "c-existing", id)
	assert.NoError(t, mock.ExpectationsWereMet())
}
