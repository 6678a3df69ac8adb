package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/DelcyVillalba/chic-storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockFetcher struct {
	mock.Mock
}

func (f *MockFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	args := f.Called(ctx)
	ps, _ := args.Get(0).([]domain.Product)
	return ps, args.Error(1)
}

func (f *MockFetcher) FetchCategories(ctx context.Context) ([]string, error) {
	args := f.Called(ctx)
	cs, _ := args.Get(0).([]string)
	return cs, args.Error(1)
}

// gatedFetcher blocks each FetchProducts call until its gate is released.
type gatedFetcher struct {
	started chan struct{}
	gates   []chan []domain.Product
	calls   int
}

func (f *gatedFetcher) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	gate := f.gates[f.calls]
	f.calls++
	f.started <- struct{}{}
	return <-gate, nil
}

func (f *gatedFetcher) FetchCategories(context.Context) ([]string, error) {
	return nil, nil
}

func TestLoader(t *testing.T) {
	products := []domain.Product{
		{ID: 1, Title: "Backpack", Price: 100, Category: "men's clothing"},
		{ID: 2, Title: "Ring", Price: 10, Category: "jewelery"},
	}

	t.Run("LoadTranslatesAndQueries", func(t *testing.T) {
		f := new(MockFetcher)
		f.On("FetchProducts", mock.Anything).Return(products, nil).Once()

		l := NewLoader(f, DefaultTranslator())
		l.Load(t.Context())

		res := l.Query(domain.FilterParams{Sort: domain.SortPriceAsc, PerPage: 10})
		assert.False(t, res.Loading)
		assert.Empty(t, res.Error)
		assert.Equal(t, 2, res.Total)
		require.Len(t, res.Data, 2)
		assert.Equal(t, "Anillo", res.Data[0].Title)
		assert.Equal(t, "Mochila", res.Data[1].Title)

		p, ok := l.Product(2)
		require.True(t, ok)
		assert.Equal(t, "Joyería", p.CategoryEs)

		_, ok = l.Product(42)
		assert.False(t, ok)
		f.AssertExpectations(t)
	})

	t.Run("FailureSetsError", func(t *testing.T) {
		f := new(MockFetcher)
		f.On("FetchProducts", mock.Anything).Return(nil, errors.New("boom"))

		l := NewLoader(f, DefaultTranslator())
		l.Load(t.Context())

		res := l.Query(domain.FilterParams{PerPage: 10})
		assert.False(t, res.Loading)
		assert.Contains(t, res.Error, "boom")
		assert.Empty(t, res.Data)
		assert.Equal(t, 1, res.TotalPages)
	})

	t.Run("StaleResponseDiscarded", func(t *testing.T) {
		f := &gatedFetcher{
			started: make(chan struct{}),
			gates:   []chan []domain.Product{make(chan []domain.Product), make(chan []domain.Product)},
		}
		l := NewLoader(f, DefaultTranslator())

		firstDone := make(chan struct{})
		go func() {
			l.Load(context.Background())
			close(firstDone)
		}()
		<-f.started

		res := l.Query(domain.FilterParams{PerPage: 10})
		assert.True(t, res.Loading)
		assert.Empty(t, res.Data)

		secondDone := make(chan struct{})
		go func() {
			l.Load(context.Background())
			close(secondDone)
		}()
		<-f.started

		f.gates[1] <- products[:1]
		<-secondDone
		f.gates[0] <- products
		<-firstDone

		res = l.Query(domain.FilterParams{PerPage: 10})
		assert.False(t, res.Loading)
		assert.Equal(t, 1, res.Total)
	})

	t.Run("ResponseAfterCloseDiscarded", func(t *testing.T) {
		f := &gatedFetcher{
			started: make(chan struct{}),
			gates:   []chan []domain.Product{make(chan []domain.Product)},
		}
		l := NewLoader(f, DefaultTranslator())

		done := make(chan struct{})
		go func() {
			l.Load(context.Background())
			close(done)
		}()
		<-f.started
		l.Close()
		f.gates[0] <- products
		<-done

		res := l.Query(domain.FilterParams{PerPage: 10})
		assert.Equal(t, 0, res.Total)
		assert.False(t, res.Loading)
	})

	t.Run("PendingBeforeFirstLoad", func(t *testing.T) {
		l := NewLoader(new(MockFetcher), DefaultTranslator())

		res := l.Query(domain.FilterParams{PerPage: 10})
		assert.True(t, res.Loading)
		assert.Empty(t, res.Error)
		assert.Empty(t, res.Data)

		l.Close()
		assert.False(t, l.Query(domain.FilterParams{PerPage: 10}).Loading)
	})

	t.Run("Categories", func(t *testing.T) {
		f := new(MockFetcher)
		f.On("FetchCategories", mock.Anything).
			Return([]string{"electronics", "garden"}, nil)

		l := NewLoader(f, DefaultTranslator())
		cs, err := l.Categories(t.Context())
		require.NoError(t, err)
		assert.Equal(t, []domain.Category{
			{Key: "electronics", Label: "Electrónica"},
			{Key: "garden", Label: "garden"},
		}, cs)
	})
}
