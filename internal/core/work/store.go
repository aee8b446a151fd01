package work

import "context"

type Repository interface {
	ListWorks(context context.Context, f Filter, limit, offset int) ([]*Work, int, error)
	GetWork(context context.Context, id int) (*Work, error)
	CreateWork(context context.Context, w *Work) error
}
