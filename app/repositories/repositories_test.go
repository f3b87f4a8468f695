package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/testkit"
)

func newOrder(address string, total int64) *models.Order {
	return &models.Order{
		TotalAmount:     decimal.NewFromInt(total),
		ShippingAddress: address,
		Status:          models.OrderStatusConfirmed,
	}
}

func TestProductRepository(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	repo := repositories.NewProductRepository(db)

	empty, err := repo.All(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	require.NoError(t, seeders.SeedProducts(ctx, db))

	all, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 11)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}

	p, err := repo.Find(ctx, all[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Sony WH-1000XM5 Headphones", p.Name)

	_, err = repo.Find(ctx, 9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 11, n)
}

func TestOrderRepositoryCreateWithItems(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	repo := repositories.NewOrderRepository(db)

	order := newOrder("123 Main St, City", 85000)
	items := []models.OrderItem{
		{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(85000)},
		{ProductID: 424242, Quantity: 3, Price: decimal.NewFromInt(5)},
	}
	require.NoError(t, repo.Create(ctx, order, items))
	require.NotZero(t, order.ID)

	got, err := repo.Items(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, order.ID, got[0].OrderID)
	assert.EqualValues(t, 424242, got[1].ProductID)
	assert.True(t, decimal.NewFromInt(5).Equal(got[1].Price))

	stored, err := repo.Find(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(85000).Equal(stored.TotalAmount))
	assert.Equal(t, time.UTC, stored.CreatedAt.Location())
}

func TestOrderRepositoryCreateRollsBack(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	repo := repositories.NewOrderRepository(db)

	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	err := repo.Create(ctx, newOrder("123 Main St, City", 10), []models.OrderItem{
		{ProductID: 1, Quantity: 1, Price: decimal.NewFromInt(10)},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert order items")

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestOrderRepositoryAllNewestFirst(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	repo := repositories.NewOrderRepository(db)

	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		o := newOrder("Order street "+string(rune('A'+i)), int64(i+1))
		o.CreatedAt = base.Add(offset)
		require.NoError(t, repo.Create(ctx, o, nil))
	}
	// Same timestamp as the newest: the higher id wins the tie.
	tie := newOrder("Order street D", 4)
	tie.CreatedAt = base.Add(2 * time.Hour)
	require.NoError(t, repo.Create(ctx, tie, nil))

	orders, err := repo.All(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 4)

	var addresses []string
	for _, o := range orders {
		addresses = append(addresses, o.ShippingAddress)
	}
	assert.Equal(t, []string{"Order street D", "Order street B", "Order street C", "Order street A"}, addresses)
}

func TestOrderRepositoryFindMissing(t *testing.T) {
	repo := repositories.NewOrderRepository(testkit.DB(t))
	_, err := repo.Find(context.Background(), 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
