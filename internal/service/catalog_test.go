package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/Urdemonlord/mangagueh/internal/domain"
)

type fakeRepo struct {
	params []domain.ListParams
	page   *domain.PageResult
	err    error
	block  bool
}

func (f *fakeRepo) ListManga(ctx context.Context, params domain.ListParams) (*domain.PageResult, error) {
	f.params = append(f.params, params)
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	return f.page, f.err
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFetchPageDerivesParams(t *testing.T) {
	repo := &fakeRepo{page: &domain.PageResult{Total: 37, TotalPages: 3}}
	svc := NewCatalogService(repo, quietLogger(), time.Second)

	q := domain.QueryState{Page: 2, Filter: domain.FilterLatest, SearchText: "berserk"}
	page, err := svc.FetchPage(context.Background(), q)
	if err != nil {
		t.Fatalf("FetchPage() error = %v", err)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d", page.TotalPages)
	}
	if len(repo.params) != 1 {
		t.Fatalf("repo called %d times, want 1", len(repo.params))
	}

	got := repo.params[0]
	if got.Offset != 18 || got.Limit != 18 {
		t.Errorf("offset/limit = %d/%d", got.Offset, got.Limit)
	}
	if got.OrderField != domain.OrderCreatedAt || got.OrderDirection != domain.OrderDesc {
		t.Errorf("order = %s %s", got.OrderField, got.OrderDirection)
	}
	if got.Title != "berserk" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestFetchPageWrapsErrors(t *testing.T) {
	repo := &fakeRepo{err: errors.New("boom")}
	svc := NewCatalogService(repo, quietLogger(), time.Second)

	_, err := svc.FetchPage(context.Background(), domain.NewQueryState(domain.FilterNone))
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
}

func TestFetchPageTimeout(t *testing.T) {
	repo := &fakeRepo{block: true}
	svc := NewCatalogService(repo, quietLogger(), 20*time.Millisecond)

	_, err := svc.FetchPage(context.Background(), domain.NewQueryState(domain.FilterNone))
	if !errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Errorf("error = %v, want ErrCatalogUnavailable", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want DeadlineExceeded in chain", err)
	}
}

func TestFetchPageCancelled(t *testing.T) {
	repo := &fakeRepo{block: true}
	svc := NewCatalogService(repo, quietLogger(), time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.FetchPage(ctx, domain.NewQueryState(domain.FilterNone))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	if errors.Is(err, domain.ErrCatalogUnavailable) {
		t.Error("cancellation should not be reported as a catalog failure")
	}
}
