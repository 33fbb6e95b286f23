package analytics

import (
	"context"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/shopbench/storefront-api/internal/types"
)

// Source is the read contract the views consume. Implementations decide
// whether reads push filters down or return raw tables; the views only see
// in-memory collections.
type Source interface {
	FetchUsers(ctx context.Context) ([]types.User, error)
	FetchOrders(ctx context.Context) ([]types.Order, error)
	FetchOrderItems(ctx context.Context) ([]types.OrderItem, error)
	FetchProducts(ctx context.Context) ([]types.Product, error)
}

// Snapshot is the per-request view of the base entities. It is never mutated
// after LoadSnapshot returns, so any number of views may read it in parallel.
type Snapshot struct {
	Users      []types.User
	Orders     []types.Order
	OrderItems []types.OrderItem
	Products   []types.Product
}

// LoadSnapshot fetches the four collections concurrently and copies them into
// a snapshot owned by the caller. Any fetch failure aborts the remaining
// fetches and surfaces as storage_unavailable.
func LoadSnapshot(ctx context.Context, src Source) (*Snapshot, error) {
	const op = "analytics.LoadSnapshot"

	snap := &Snapshot{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		users, err := src.FetchUsers(gctx)
		if err != nil {
			return err
		}
		snap.Users = slices.Clone(users)
		return nil
	})
	g.Go(func() error {
		orders, err := src.FetchOrders(gctx)
		if err != nil {
			return err
		}
		snap.Orders = slices.Clone(orders)
		return nil
	})
	g.Go(func() error {
		items, err := src.FetchOrderItems(gctx)
		if err != nil {
			return err
		}
		snap.OrderItems = slices.Clone(items)
		return nil
	})
	g.Go(func() error {
		products, err := src.FetchProducts(gctx)
		if err != nil {
			return err
		}
		snap.Products = slices.Clone(products)
		return nil
	})
	if err := g.Wait(); err != nil {
		if ctx.Err() != nil {
			return nil, Wrap(CodeCanceled, op, ctx.Err())
		}
		return nil, Wrap(CodeStorageUnavailable, op, err)
	}
	return snap, nil
}

func checkCtx(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return Wrap(CodeCanceled, op, err)
	}
	return nil
}
