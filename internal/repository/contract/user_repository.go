package contract

import (
	"context"

	"radiant-system-be/internal/entity"
	"radiant-system-be/internal/repository/specification"
)

type UserRepository interface {
	// Save inserts the user, or replaces the stored record with the
	// same email.
	Save(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, email string) error
	FindOne(ctx context.Context, specs ...specification.Specification[entity.User]) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification[entity.User]) ([]entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification[entity.User]) (int, error)
}
