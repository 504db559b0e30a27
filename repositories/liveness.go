package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
)

type LivenessRepository interface {
	Liveness(ctx context.Context, exec Executor) error
}

type LivenessRepositoryPostgresql struct{}

func (repo *LivenessRepositoryPostgresql) Liveness(ctx context.Context, exec Executor) error {
	row := exec.QueryRow(ctx, "SELECT 1")
	var result int
	if err := row.Scan(&result); err != nil {
		return errors.Wrap(err, "database is not reachable")
	}
	return nil
}
