package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmarquezl/gw-storefront-ledger/internal/models"
)

// Product is one storefront catalog item.
type Product struct {
	ID               string  `yaml:"id" json:"id"`                               // Stable product identifier
	Name             string  `yaml:"name" json:"name"`                           // Display name
	PriceUSD         float64 `yaml:"price_usd" json:"price_usd"`                 // Base price in USD
	PointsMultiplier float64 `yaml:"points_multiplier" json:"points_multiplier"` // Loyalty multiplier applied on accrual
}

// Loyalty holds the tunable constants of the points ledger.
type Loyalty struct {
	BonusPoints      int64 `yaml:"bonus_points"`       // Flat bonus for repeat purchases
	BonusWindowDays  int   `yaml:"bonus_window_days"`  // Max days since last purchase for the bonus
	ExpiryWindowDays int   `yaml:"expiry_window_days"` // Rolling window after which entries expire
	SilverThreshold  int64 `yaml:"silver_threshold"`   // Minimum live total for Silver
	GoldThreshold    int64 `yaml:"gold_threshold"`     // Minimum live total for Gold
}

// Pricing holds the display policy of the price calculator.
type Pricing struct {
	// ExactCurrencies lists currency codes exempt from step rounding;
	// their converted prices are displayed as-is.
	ExactCurrencies []string `yaml:"exact_currencies"`
}

// Catalog is the full storefront configuration: products plus the loyalty
// and pricing policies. It unifies what the source bot variants hard-coded.
type Catalog struct {
	Products []Product `yaml:"products"`
	Loyalty  Loyalty   `yaml:"loyalty"`
	Pricing  Pricing   `yaml:"pricing"`

	byID  map[string]Product
	exact map[string]struct{}
}

// Default returns the built-in catalog matching the original storefront:
// the 5,000-tier product earns double points, the 13,500-tier one-and-a-half.
func Default() *Catalog {
	c := &Catalog{
		Products: []Product{
			{ID: "vbucks-1000", Name: "1.000 V-Bucks", PriceUSD: 8.99, PointsMultiplier: 1.0},
			{ID: "vbucks-2800", Name: "2.800 V-Bucks", PriceUSD: 22.99, PointsMultiplier: 1.0},
			{ID: "vbucks-5000", Name: "5.000 V-Bucks", PriceUSD: 36.99, PointsMultiplier: 2.0},
			{ID: "vbucks-13500", Name: "13.500 V-Bucks", PriceUSD: 89.99, PointsMultiplier: 1.5},
		},
		Loyalty: Loyalty{
			BonusPoints:      10,
			BonusWindowDays:  14,
			ExpiryWindowDays: 30,
			SilverThreshold:  100,
			GoldThreshold:    300,
		},
		Pricing: Pricing{
			ExactCurrencies: []string{models.EUR},
		},
	}
	if err := c.finalize(); err != nil {
		// Default is static; a validation failure here is a programming error.
		panic(err)
	}
	return c
}

// Load reads a catalog YAML file. Missing loyalty/pricing fields fall back to
// the defaults; products must be present and valid.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	c := Default()
	c.byID = nil
	c.exact = nil
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog %s: %w", path, err)
	}

	if err := c.finalize(); err != nil {
		return nil, fmt.Errorf("invalid catalog %s: %w", path, err)
	}
	return c, nil
}

func (c *Catalog) finalize() error {
	if len(c.Products) == 0 {
		return errors.New("catalog has no products")
	}

	c.byID = make(map[string]Product, len(c.Products))
	for i := range c.Products {
		p := &c.Products[i]
		if p.ID == "" {
			return errors.New("product with empty id")
		}
		if p.PriceUSD <= 0 {
			return fmt.Errorf("product %s has non-positive price", p.ID)
		}
		if p.PointsMultiplier == 0 {
			p.PointsMultiplier = 1.0
		}
		if p.PointsMultiplier < 0 {
			return fmt.Errorf("product %s has negative points multiplier", p.ID)
		}
		if _, ok := c.byID[p.ID]; ok {
			return fmt.Errorf("duplicate product id %s", p.ID)
		}
		c.byID[p.ID] = *p
	}

	if c.Loyalty.BonusWindowDays <= 0 || c.Loyalty.ExpiryWindowDays <= 0 {
		return errors.New("loyalty windows must be positive")
	}
	if c.Loyalty.SilverThreshold <= 0 || c.Loyalty.GoldThreshold <= c.Loyalty.SilverThreshold {
		return errors.New("tier thresholds must be positive and increasing")
	}

	c.exact = make(map[string]struct{}, len(c.Pricing.ExactCurrencies))
	for _, code := range c.Pricing.ExactCurrencies {
		c.exact[strings.ToUpper(code)] = struct{}{}
	}
	return nil
}

// Product looks up a catalog item by id.
func (c *Catalog) Product(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Multiplier returns the points multiplier for a product id, 1.0 when the
// product is not in the catalog.
func (c *Catalog) Multiplier(productID string) float64 {
	if p, ok := c.byID[productID]; ok {
		return p.PointsMultiplier
	}
	return 1.0
}

// BonusWindow is the max age of the previous purchase for the repeat bonus.
func (c *Catalog) BonusWindow() time.Duration {
	return time.Duration(c.Loyalty.BonusWindowDays) * 24 * time.Hour
}

// ExpiryWindow is the rolling window over which point entries stay live.
func (c *Catalog) ExpiryWindow() time.Duration {
	return time.Duration(c.Loyalty.ExpiryWindowDays) * 24 * time.Hour
}

// Tier derives the loyalty tier from a live point total. Thresholds are
// inclusive on the lower bound of each tier.
func (c *Catalog) Tier(total int64) string {
	switch {
	case total >= c.Loyalty.GoldThreshold:
		return models.TierGold
	case total >= c.Loyalty.SilverThreshold:
		return models.TierSilver
	default:
		return models.TierBronze
	}
}

// ExactCurrency reports whether the currency is exempt from step rounding.
func (c *Catalog) ExactCurrency(code string) bool {
	_, ok := c.exact[strings.ToUpper(code)]
	return ok
}
