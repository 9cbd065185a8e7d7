package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-service/src/internal/adapter/http/models"
	"github.com/api-sage/bank-service/src/internal/commons"
)

type SavingsService interface {
	CreateSavings(ctx context.Context, req models.CreateSavingsRequest) (commons.Response[models.CreateSavingsResponse], error)
	GetSavings(ctx context.Context, accountNumber string) (commons.Response[models.SavingsResponse], error)
	GetMySavings(ctx context.Context, ownerID string) (commons.Response[[]models.SavingsResponse], error)
	Deposit(ctx context.Context, req models.SavingsDepositRequest) (commons.Response[models.SavingsDepositResponse], error)
	Close(ctx context.Context, req models.CloseSavingsRequest) (commons.Response[models.CloseSavingsResponse], error)
}
