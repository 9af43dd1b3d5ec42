package implementation

import (
	"context"
	"strings"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/pkg/logger"
	"radiant-system-be/internal/repository/contract"
	"radiant-system-be/internal/repository/specification"
	"radiant-system-be/pkg/recordstore"
)

type UserRepositoryImpl struct {
	col *recordstore.Collection[entity.User]
	key string
}

func NewUserRepository(store recordstore.Store, log logger.ILogger) contract.UserRepository {
	return &UserRepositoryImpl{
		col: recordstore.NewCollection[entity.User](store, warnFunc(log)),
		key: recordstore.Key(recordstore.CollectionUsers),
	}
}

func (r *UserRepositoryImpl) Save(ctx context.Context, user *entity.User) error {
	users, err := r.col.Read(ctx, r.key)
	if err != nil {
		return err
	}
	replaced := false
	for i := range users {
		if strings.EqualFold(users[i].Email, user.Email) {
			users[i] = *user
			replaced = true
			break
		}
	}
	if !replaced {
		users = append(users, *user)
	}
	return r.col.Write(ctx, r.key, users)
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, email string) error {
	users, err := r.col.Read(ctx, r.key)
	if err != nil {
		return err
	}
	users = removeWhere(users, func(u entity.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	return r.col.Write(ctx, r.key, users)
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification[entity.User]) (*entity.User, error) {
	users, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	if user, ok := specification.First(users, specs...); ok {
		return &user, nil
	}
	return nil, nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification[entity.User]) ([]entity.User, error) {
	users, err := r.col.Read(ctx, r.key)
	if err != nil {
		return nil, err
	}
	return specification.All(users, specs...), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification[entity.User]) (int, error) {
	users, err := r.col.Read(ctx, r.key)
	if err != nil {
		return 0, err
	}
	return specification.Count(users, specs...), nil
}
