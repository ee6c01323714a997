package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/noah-isme/cart-engine/internal/cart"
	"github.com/noah-isme/cart-engine/internal/catalog"
	"github.com/noah-isme/cart-engine/internal/common"
	"github.com/noah-isme/cart-engine/internal/config"
	"github.com/noah-isme/cart-engine/internal/discount"
	"github.com/noah-isme/cart-engine/internal/obs"
	"github.com/noah-isme/cart-engine/internal/report"
	"github.com/noah-isme/cart-engine/internal/shipping"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if err := run(cfg, logger); err != nil {
		logger.Fatal().Err(err).Str("code", common.ErrorCode(err)).Msg("demo failed")
	}
}

func run(cfg *config.Config, logger zerolog.Logger) error {
	calculator := shipping.NewCalculator(cfg.CostPerDelivery, cfg.CostPerProduct, cfg.FixedCost)
	basket := cart.New(calculator)

	food, err := catalog.NewCategory("Food")
	if err != nil {
		return err
	}
	apple, err := catalog.NewProduct("Apple", 100.0, food)
	if err != nil {
		return err
	}
	almonds, err := catalog.NewProduct("Almonds", 150.0, food)
	if err != nil {
		return err
	}

	telephone, err := catalog.NewCategory("Telephone")
	if err != nil {
		return err
	}
	note9, err := catalog.NewProduct("Samsung Note 9", 5500.0, telephone)
	if err != nil {
		return err
	}
	iphone7, err := catalog.NewProduct("Apple iPhone 7", 3500.0, telephone)
	if err != nil {
		return err
	}

	for _, line := range []struct {
		product  *catalog.Product
		quantity int
	}{
		{apple, 3},
		{almonds, 1},
		{note9, 1},
		{iphone7, 1},
	} {
		if err := basket.AddItem(line.product, line.quantity); err != nil {
			return err
		}
		logger.Info().Str("product", line.product.Title()).Int("quantity", line.quantity).Msg("item added")
	}

	tenPercent, err := discount.NewCampaign(food, 10, 1, discount.Rate)
	if err != nil {
		return err
	}
	twentyPercent, err := discount.NewCampaign(food, 20, 1, discount.Rate)
	if err != nil {
		return err
	}
	if err := basket.ApplyCampaigns(tenPercent, twentyPercent); err != nil {
		return err
	}
	logger.Info().Float64("discount", basket.CampaignDiscount()).Msg("campaign applied")

	coupon, err := discount.NewCoupon(100, 10, discount.Rate)
	if err != nil {
		return err
	}
	if err := basket.ApplyCoupon(coupon); err != nil {
		return err
	}
	logger.Info().Float64("discount", basket.CouponDiscount()).Msg("coupon applied")

	fmt.Println(report.Render(basket))
	return nil
}
