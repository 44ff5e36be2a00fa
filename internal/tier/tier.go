package tier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/and161185/posloyalty/internal/errs"
	"github.com/and161185/posloyalty/internal/model"
	"github.com/shopspring/decimal"
)

func DefaultThresholds() model.TierThresholds {
	return model.TierThresholds{
		Silver: decimal.NewFromInt(500),
		Gold:   decimal.NewFromInt(2000),
	}
}

func ValidateThresholds(t model.TierThresholds) error {
	if t.Silver.IsNegative() {
		return fmt.Errorf("%w: silver must not be negative", errs.ErrInvalidThresholds)
	}
	if t.Gold.LessThan(t.Silver) {
		return fmt.Errorf("%w: gold must not be below silver", errs.ErrInvalidThresholds)
	}
	return nil
}

// ThresholdsFromSetting decodes a stored setting value. Absent, unparsable or
// inconsistent values yield the defaults with ok=false.
func ThresholdsFromSetting(raw []byte) (model.TierThresholds, bool) {
	if len(raw) == 0 {
		return DefaultThresholds(), false
	}

	var stored struct {
		Silver *decimal.Decimal `json:"silver"`
		Gold   *decimal.Decimal `json:"gold"`
	}
	if err := json.Unmarshal(raw, &stored); err != nil {
		return DefaultThresholds(), false
	}
	if stored.Silver == nil || stored.Gold == nil {
		return DefaultThresholds(), false
	}

	t := model.TierThresholds{Silver: *stored.Silver, Gold: *stored.Gold}
	if ValidateThresholds(t) != nil {
		return DefaultThresholds(), false
	}
	return t, true
}

func Rank(t model.Tier) int {
	switch t {
	case model.Bronze:
		return 1
	case model.Silver:
		return 2
	case model.Gold:
		return 3
	}
	return 0
}

func ParseTier(s string) model.Tier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gold":
		return model.Gold
	case "silver":
		return model.Silver
	}
	return model.Bronze
}

func normalize(spend decimal.Decimal) decimal.Decimal {
	if spend.IsNegative() {
		return decimal.Zero
	}
	return spend
}

func Classify(totalSpend decimal.Decimal, t model.TierThresholds) model.Tier {
	spend := normalize(totalSpend)
	switch {
	case spend.GreaterThanOrEqual(t.Gold):
		return model.Gold
	case spend.GreaterThanOrEqual(t.Silver):
		return model.Silver
	default:
		return model.Bronze
	}
}

// SpendToNextTier is zero exactly when Classify returns Gold.
func SpendToNextTier(totalSpend decimal.Decimal, t model.TierThresholds) decimal.Decimal {
	spend := normalize(totalSpend)
	switch Classify(spend, t) {
	case model.Gold:
		return decimal.Zero
	case model.Silver:
		return t.Gold.Sub(spend)
	default:
		return t.Silver.Sub(spend)
	}
}
