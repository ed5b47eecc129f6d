package repository

import "context"

// PageVisitRepository is the persistent page-visit counter.
type PageVisitRepository interface {
	Record(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
