package contract

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/repository/specification"
)

type TransactionRepository interface {
	Save(ctx context.Context, txn *entity.PaymentTransaction) error
	FindOne(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) (*entity.PaymentTransaction, error)
	FindAll(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) ([]entity.PaymentTransaction, error)
	Count(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) (int, error)
}
