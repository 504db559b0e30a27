package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/checkmarble/marble-todos/repositories"
)

type LivenessRepository struct {
	mock.Mock
}

func (r *LivenessRepository) Liveness(ctx context.Context, exec repositories.Executor) error {
	args := r.Called(ctx, exec)
	return args.Error(0)
}
