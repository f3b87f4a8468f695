package seeders

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/pkg/logger"
)

func init() {
	Register("products", SeedProducts)
}

// SeedProducts inserts the sample catalog when the products table is empty.
// A non-empty catalog is left untouched. Two processes starting against the
// same empty database at once may both insert.
func SeedProducts(ctx context.Context, db *gorm.DB) error {
	db = db.WithContext(ctx)
	log := logger.WithCtx(ctx)

	var count int64
	if err := db.Model(&models.Product{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count products: %w", err)
	}
	if count > 0 {
		log.Info("seed: catalog present, skipping", "products", count)
		return nil
	}

	products := SampleProducts()
	err := db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&products).Error
	})
	if err != nil {
		return fmt.Errorf("insert products: %w", err)
	}

	log.Info("seed: catalog seeded", "products", len(products))
	return nil
}

// SampleProducts returns a fresh copy of the sample catalog.
func SampleProducts() []models.Product {
	return []models.Product{
		{
			Name:        "iPhone 15 Pro",
			Price:       decimal.NewFromInt(99999),
			Category:    "Electronics",
			Description: str("Latest iPhone with A17 Pro chip"),
			ImageURL:    str("https://www.imagineonline.store/cdn/shop/files/iPhone_15_Pro_Max_Black_Titanium_PDP_Image_Position-1__en-IN_ad326452-186a-484a-99a4-82dc80c280fb.jpg?v=1759734024&width=823"),
			ImageURL2:   str("https://goldenshield.in/cdn/shop/files/15prothincase_2.jpg?v=1712596027&width=2048"),
			ImageURL3:   str("https://i.guim.co.uk/img/media/7cc121c51c48aaf07d8368e98c5f89edaa9b8803/637_662_4222_2533/master/4222.jpg?width=1200&height=1200"),
			Stock:       10,
		},
		{
			Name:        "Sony WH-1000XM5 Headphones",
			Price:       decimal.NewFromInt(29999),
			Category:    "Electronics",
			Description: str("Industry-leading noise cancellation"),
			ImageURL:    str("https://m.media-amazon.com/images/I/51aXvjzcukL.jpg"),
			ImageURL2:   str("https://rukminim2.flixcart.com/image/480/640/xif0q/headphone/d/5/v/-original-imahgr29e7fzcfgn.jpeg?q=20"),
			ImageURL3:   str("https://shopatsc.com/cdn/shop/products/2500x2500_Black_3.jpg?v=1694415813"),
			Stock:       15,
		},
		{
			Name:        "The Midnight Library",
			Price:       decimal.NewFromInt(399),
			Category:    "Books",
			Description: str("A novel about infinite possibilities"),
			ImageURL:    str("https://m.media-amazon.com/images/I/71qsovx-x6L.jpg"),
			Stock:       50,
		},
		{
			Name:        "Atomic Habits",
			Price:       decimal.NewFromInt(499),
			Category:    "Books",
			Description: str("Build good habits, break bad ones"),
			ImageURL:    str("https://cultivatewhatmatters.com/cdn/shop/articles/atomic-habits.jpg?v=1624827508"),
			Stock:       75,
		},
		{
			Name:     `Samsung 55" 4K TV`,
			Price:    decimal.NewFromInt(49999),
			Category: "Electronics",
			ImageURL: str("https://kannankandy.com/wp-content/uploads/2025/06/tv.jpg"),
			Stock:    8,
		},
		{
			Name:     "Philips Air Fryer",
			Price:    decimal.NewFromInt(7999),
			Category: "Home & Kitchen",
			ImageURL: str("https://m.media-amazon.com/images/I/41exFmRRtqL._AC_UF894,1000_QL80_.jpg"),
			Stock:    20,
		},
		{
			Name:     "Bodum French Press",
			Price:    decimal.NewFromInt(2499),
			Category: "Home & Kitchen",
			ImageURL: str("https://m.media-amazon.com/images/I/61tCsY690sL.jpg"),
			Stock:    30,
		},
		{
			Name:     "Prestige Cookware Set",
			Price:    decimal.NewFromInt(3999),
			Category: "Home & Kitchen",
			ImageURL: str("https://5.imimg.com/data5/GG/YH/MY-23158756/non-stick-cookware.jpg"),
			Stock:    12,
		},
		{
			Name:     "Cotton T-Shirt",
			Price:    decimal.NewFromInt(799),
			Category: "Clothing",
			ImageURL: str("https://m.media-amazon.com/images/I/51fE-zT6hrL._AC_UY1100_.jpg"),
			Stock:    100,
		},
		{
			Name:     "Running Shoes",
			Price:    decimal.NewFromInt(2999),
			Category: "Sports",
			ImageURL: str("https://m.media-amazon.com/images/I/71f3BmjCwtL.jpg"),
			Stock:    25,
		},
		{
			Name:     "Yoga Mat",
			Price:    decimal.NewFromInt(1299),
			Category: "Sports",
			ImageURL: str("https://sppartos.com/cdn/shop/files/31VX-aIlgWL_300x300.jpg?v=1702469142"),
			Stock:    40,
		},
	}
}

func str(s string) *string { return &s }
