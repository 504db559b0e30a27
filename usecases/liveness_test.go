package usecases

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/checkmarble/marble-todos/repositories"
	"github.com/checkmarble/marble-todos/usecases/executor_factory"
)

func TestLivenessUsecase_queries_the_pool(t *testing.T) {
	stub := executor_factory.NewExecutorFactoryStub()
	defer stub.Mock.Close()

	usecase := LivenessUsecase{
		executorFactory:    stub,
		livenessRepository: &repositories.LivenessRepositoryPostgresql{},
	}

	stub.Mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))
	assert.NoError(t, usecase.Liveness(context.Background()))

	stub.Mock.ExpectQuery(regexp.QuoteMeta("SELECT 1")).WillReturnError(assert.AnError)
	assert.ErrorIs(t, usecase.Liveness(context.Background()), assert.AnError)

	assert.NoError(t, stub.Mock.ExpectationsWereMet())
}
