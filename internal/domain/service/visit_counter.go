package service

import "context"

// VisitCounter counts qualifying page loads.
type VisitCounter interface {
	Increment(ctx context.Context) error
	Count(ctx context.Context) (int64, error)
}
