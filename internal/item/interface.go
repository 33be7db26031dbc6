package item

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Detail(ctx context.Context, id string) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	ListByList(ctx context.Context, input ListByListInput) (ListOutput, error)
	Filter(ctx context.Context, input FilterInput) (ListOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	DeleteByID(ctx context.Context, id string) error
	Delete(ctx context.Context, input DeleteInput) error
}
