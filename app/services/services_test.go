package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/services"
	"github.com/shashiranjanraj/storefront/database/seeders"
	"github.com/shashiranjanraj/storefront/pkg/event"
	"github.com/shashiranjanraj/storefront/pkg/testkit"
)

// memStore is an in-memory cache.Store that stores JSON like Redis does.
type memStore struct {
	data map[string][]byte
	hits int
}

func newMemStore() *memStore { return &memStore{data: map[string][]byte{}} }

func (m *memStore) Get(_ context.Context, key string, dest interface{}) bool {
	b, ok := m.data[key]
	if !ok {
		return false
	}
	m.hits++
	return json.Unmarshal(b, dest) == nil
}

func (m *memStore) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = b
	return nil
}

func (m *memStore) Del(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func checkout(address string, total int64, items ...models.CartItem) models.Checkout {
	return models.Checkout{
		ShippingAddress: address,
		CartTotal:       decimal.NewFromInt(total),
		Items:           items,
	}
}

func countOrders(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&models.Order{}).Count(&n).Error)
	return n
}

func TestCatalogReadsThroughCache(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	require.NoError(t, seeders.SeedProducts(ctx, db))

	store := newMemStore()
	svc := services.NewCatalogService(repositories.NewProductRepository(db), store, time.Minute)

	first, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, first, 11)
	assert.Zero(t, store.hits)

	second, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, store.hits)
	require.Len(t, second, 11)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.True(t, first[0].Price.Equal(second[0].Price))
	assert.Nil(t, second[4].Description)

	p, err := svc.Get(ctx, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "iPhone 15 Pro", p.Name)
	_, err = svc.Get(ctx, first[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 2, store.hits)
}

func TestCatalogGetMissing(t *testing.T) {
	svc := services.NewCatalogService(repositories.NewProductRepository(testkit.DB(t)), nil, time.Minute)

	_, err := svc.Get(context.Background(), 9999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, services.ErrNotFound))
	assert.Equal(t, "Product 9999 not found", err.Error())
}

func TestCheckoutValidation(t *testing.T) {
	db := testkit.DB(t)
	svc := services.NewCheckoutService(repositories.NewOrderRepository(db), nil)
	ctx := context.Background()

	cases := []struct {
		name string
		req  models.Checkout
		want string
	}{
		{"empty address", checkout("", 100), services.MsgAddressRequired},
		{"blank address", checkout("      ", 100), services.MsgAddressRequired},
		{"short after trim", checkout("  ab  ", 100), services.MsgAddressRequired},
		{"four runes", checkout("Café", 100), services.MsgAddressRequired},
		{"address checked first", checkout("ab", 0), services.MsgAddressRequired},
		{"zero total", checkout("123 Main St", 0), services.MsgTotalNotPositive},
		{"negative total", checkout("123 Main St", -5), services.MsgTotalNotPositive},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Place(ctx, tc.req)
			var verr *services.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.want, verr.Message)
		})
	}

	assert.Zero(t, countOrders(t, db))
}

func TestCheckoutPlacesOrder(t *testing.T) {
	db := testkit.DB(t)
	events := event.New()
	var fired []services.OrderPlaced
	events.Listen(services.EventOrderPlaced, func(p interface{}) {
		fired = append(fired, p.(services.OrderPlaced))
	})

	orders := repositories.NewOrderRepository(db)
	svc := services.NewCheckoutService(orders, events)
	ctx := context.Background()

	order, err := svc.Place(ctx, checkout("  123 Main St, City  ", 85000,
		models.CartItem{ProductID: 1, Name: "iPhone 15 Pro", Price: decimal.NewFromInt(85000), Quantity: 1},
	))
	require.NoError(t, err)
	events.Wait()

	assert.NotZero(t, order.ID)
	assert.Equal(t, "123 Main St, City", order.ShippingAddress)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.True(t, decimal.NewFromInt(85000).Equal(order.TotalAmount))
	assert.False(t, order.CreatedAt.IsZero())

	items, err := orders.Items(ctx, order.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.EqualValues(t, 1, items[0].ProductID)

	require.Len(t, fired, 1)
	assert.Equal(t, order.ID, fired[0].Order.ID)
	assert.Len(t, fired[0].Items, 1)

	again, err := svc.Place(ctx, checkout("Cafés", 1))
	require.NoError(t, err)
	assert.NotEqual(t, order.ID, again.ID)
	assert.EqualValues(t, 2, countOrders(t, db))
}

func TestCheckoutTrustsSuppliedTotal(t *testing.T) {
	db := testkit.DB(t)
	svc := services.NewCheckoutService(repositories.NewOrderRepository(db), nil)

	order, err := svc.Place(context.Background(), checkout("123 Main St", 10,
		models.CartItem{ProductID: 1, Price: decimal.NewFromInt(500), Quantity: 4},
	))
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(10).Equal(order.TotalAmount))
}

func TestCheckoutRoundsMoneyToCents(t *testing.T) {
	db := testkit.DB(t)
	orders := repositories.NewOrderRepository(db)
	svc := services.NewCheckoutService(orders, nil)
	ctx := context.Background()

	money := func(s string) decimal.Decimal { return decimal.RequireFromString(s) }
	place := func(total string, items ...models.CartItem) (models.Order, error) {
		return svc.Place(ctx, models.Checkout{ShippingAddress: "123 Main St", CartTotal: money(total), Items: items})
	}
	rejected := func(t *testing.T, err error, want string) {
		t.Helper()
		var verr *services.ValidationError
		require.True(t, errors.As(err, &verr), "got %v", err)
		assert.Equal(t, want, verr.Message)
	}

	t.Run("sub-cent total is not positive", func(t *testing.T) {
		_, err := place("0.004")
		rejected(t, err, services.MsgTotalNotPositive)
	})

	t.Run("stored as rounded", func(t *testing.T) {
		order, err := place("19.999", models.CartItem{ProductID: 1, Price: money("4.999"), Quantity: 4})
		require.NoError(t, err)
		assert.True(t, money("20").Equal(order.TotalAmount), order.TotalAmount.String())

		items, err := orders.Items(ctx, order.ID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.True(t, money("5").Equal(items[0].Price), items[0].Price.String())
	})

	t.Run("half a cent rounds up", func(t *testing.T) {
		order, err := place("0.005")
		require.NoError(t, err)
		assert.True(t, money("0.01").Equal(order.TotalAmount), order.TotalAmount.String())
	})

	t.Run("ten billion fits", func(t *testing.T) {
		order, err := place("10000000000")
		require.NoError(t, err)
		assert.True(t, money("1e10").Equal(order.TotalAmount), order.TotalAmount.String())
	})

	t.Run("beyond the column", func(t *testing.T) {
		_, err := place("1e18")
		rejected(t, err, services.MsgTotalTooLarge)

		_, err = place("10", models.CartItem{ProductID: 1, Price: money("1e18"), Quantity: 1})
		rejected(t, err, services.MsgPriceTooLarge)
	})

	assert.EqualValues(t, 3, countOrders(t, db))
}

func TestValidateNormalizesCheckout(t *testing.T) {
	svc := services.NewCheckoutService(nil, nil)

	got, err := svc.Validate(models.Checkout{
		ShippingAddress: "  123 Main St  ",
		CartTotal:       decimal.RequireFromString("85000.004"),
		Items:           []models.CartItem{{ProductID: 1, Price: decimal.RequireFromString("1.239"), Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", got.ShippingAddress)
	assert.Equal(t, "85000", got.CartTotal.String())
	require.Len(t, got.Items, 1)
	assert.Equal(t, "1.24", got.Items[0].Price.String())
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestCheckoutRollsBackWhenItemsFail(t *testing.T) {
	db := testkit.DB(t)
	svc := services.NewCheckoutService(repositories.NewOrderRepository(db), nil)
	ctx := context.Background()

	require.NoError(t, db.Migrator().DropTable(&models.OrderItem{}))

	_, err := svc.Place(ctx, checkout("123 Main St, City", 85000,
		models.CartItem{ProductID: 1, Price: decimal.NewFromInt(85000), Quantity: 1},
	))
	require.Error(t, err)
	var verr *services.ValidationError
	assert.False(t, errors.As(err, &verr))
	assert.Zero(t, countOrders(t, db))

	// An order without items never touches order_items.
	_, err = svc.Place(ctx, checkout("123 Main St, City", 85000))
	require.NoError(t, err)
	assert.EqualValues(t, 1, countOrders(t, db))
}

func TestOrderService(t *testing.T) {
	db := testkit.DB(t)
	ctx := context.Background()
	orders := repositories.NewOrderRepository(db)
	checkoutSvc := services.NewCheckoutService(orders, nil)
	svc := services.NewOrderService(orders)

	var placed []models.Order
	for _, addr := range []string{"First street", "Second street", "Third street"} {
		o, err := checkoutSvc.Place(ctx, checkout(addr, 100))
		require.NoError(t, err)
		placed = append(placed, o)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, placed[2].ID, list[0].ID)
	assert.Equal(t, placed[0].ID, list[2].ID)

	got, err := svc.Get(ctx, placed[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "Second street", got.ShippingAddress)

	_, err = svc.Get(ctx, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.EqualError(t, err, "Order 9999 not found")

	_, err = svc.Items(ctx, 9999)
	assert.ErrorIs(t, err, services.ErrNotFound)

	items, err := svc.Items(ctx, placed[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}
