package repositories

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecutorGetter_GetExecutor(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	getter := NewExecutorGetter(mock)
	assert.Equal(t, mock, getter.GetExecutor())
}

func TestLivenessRepository_Liveness(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
			WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

		repo := LivenessRepositoryPostgresql{}
		assert.NoError(t, repo.Liveness(context.Background(), mock))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("database unreachable", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mock.Close()

		mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
			WillReturnError(assert.AnError)

		repo := LivenessRepositoryPostgresql{}
		assert.ErrorIs(t, repo.Liveness(context.Background(), mock), assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
