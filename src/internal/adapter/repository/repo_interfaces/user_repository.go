package repo_interfaces

import (
	"context"

	"github.com/api-sage/bank-service/src/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.User, error)
	GetByLoginID(ctx context.Context, loginID string) (domain.User, error)
}
