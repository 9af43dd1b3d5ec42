package implementation

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/recordstore"
)

type TransactionRepositoryImpl struct {
	col *recordstore.Collection[entity.PaymentTransaction]
	key string
}

func NewTransactionRepository(store recordstore.Store, log logger.ILogger) contract.TransactionRepository {
	return &TransactionRepositoryImpl{
		col: recordstore.NewCollection[entity.PaymentTransaction](store, warnFunc(log)),
		key: recordstore.Key(recordstore.CollectionTransactions),
	}
}

func (r *TransactionRepositoryImpl) Save(ctx context.Context, txn *entity.PaymentTransaction) error {
	txns, err := r.col.Read(ctx, r.key)
	if err != nil {
		return err
	}
	txns = upsertHead(txns, *txn, func(t entity.PaymentTransaction) bool {
		return t.Id == txn.Id
	}, 0)
	return r.col.Write(ctx, r.key, txns)
}

func (r *TransactionRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) (*entity.PaymentTransaction, error) {
	txns, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if txn, ok := specification.First(txns, specs...); ok {
		return &txn, nil
	}
	return nil, nil
}

func (r *TransactionRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) ([]entity.PaymentTransaction, error) {
	txns, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return specification.All(txns, specs...), nil
}

func (r *TransactionRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification[entity.PaymentTransaction]) (int, error) {
	txns, err := r.col.Read(ctx, r.key)
	if err != nil {
		return 0, err
	}
	return specification.Count(txns, specs...), nil
}
