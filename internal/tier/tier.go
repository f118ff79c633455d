// Package tier holds the point rate table. A rate is picked by walking the
// tiers from the highest threshold down and taking the first one the amount
// reaches.
package tier

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultTiers = "0:0.1,50000:0.5"

var (
	ErrEmptyTable    = errors.New("tier table is empty")
	ErrNoBaseTier    = errors.New("tier table has no tier starting at 0")
	ErrDuplicateTier = errors.New("duplicate tier threshold")
	ErrInvalidRate   = errors.New("tier rate must be in (0, 1] with at most 4 decimal places")
	ErrInvalidTier   = errors.New("invalid tier")
)

var one = decimal.NewFromInt(1)

// MaxRateScale is the number of decimal places a stored receipt keeps for its rate.
const MaxRateScale = 4

type Tier struct {
	MinAmount int64
	Rate      decimal.Decimal
}

type Table struct {
	tiers []Tier // descending by MinAmount
}

func New(tiers ...Tier) (*Table, error) {
	if len(tiers) == 0 {
		return nil, ErrEmptyTable
	}

	sorted := make([]Tier, len(tiers))
	copy(sorted, tiers)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].MinAmount > sorted[j].MinAmount
	})

	for i, t := range sorted {
		if t.MinAmount < 0 {
			return nil, fmt.Errorf("%w: negative threshold %d", ErrInvalidTier, t.MinAmount)
		}
		if !t.Rate.IsPositive() || t.Rate.GreaterThan(one) {
			return nil, fmt.Errorf("%w: %s at %d", ErrInvalidRate, t.Rate, t.MinAmount)
		}
		if !t.Rate.Equal(t.Rate.Truncate(MaxRateScale)) {
			return nil, fmt.Errorf("%w: %s at %d has more than %d decimal places", ErrInvalidRate, t.Rate, t.MinAmount, MaxRateScale)
		}
		if i > 0 && sorted[i-1].MinAmount == t.MinAmount {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTier, t.MinAmount)
		}
	}
	if sorted[len(sorted)-1].MinAmount != 0 {
		return nil, ErrNoBaseTier
	}

	return &Table{tiers: sorted}, nil
}

// Parse reads "min:rate" pairs separated by commas, e.g. "0:0.1,50000:0.5".
func Parse(s string) (*Table, error) {
	var tiers []Tier
	for _, pair := range strings.Split(s, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		minPart, ratePart, ok := strings.Cut(pair, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q, expected min_amount:rate", ErrInvalidTier, pair)
		}
		minAmount, err := strconv.ParseInt(strings.TrimSpace(minPart), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: threshold %q: %v", ErrInvalidTier, minPart, err)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(ratePart))
		if err != nil {
			return nil, fmt.Errorf("%w: rate %q: %v", ErrInvalidTier, ratePart, err)
		}
		tiers = append(tiers, Tier{MinAmount: minAmount, Rate: rate})
	}
	return New(tiers...)
}

func Default() *Table {
	t, err := Parse(DefaultTiers)
	if err != nil {
		panic(err)
	}
	return t
}

// Rate returns the rate of the highest tier whose threshold amount reaches.
// Amounts below every threshold (negative ones) get the base rate.
func (t *Table) Rate(amount int64) decimal.Decimal {
	for _, tr := range t.tiers {
		if amount >= tr.MinAmount {
			return tr.Rate
		}
	}
	return t.tiers[len(t.tiers)-1].Rate
}

// Tiers returns the table in ascending threshold order.
func (t *Table) Tiers() []Tier {
	out := make([]Tier, len(t.tiers))
	for i, tr := range t.tiers {
		out[len(t.tiers)-1-i] = tr
	}
	return out
}

func (t *Table) String() string {
	parts := make([]string, 0, len(t.tiers))
	for _, tr := range t.Tiers() {
		parts = append(parts, fmt.Sprintf("%d:%s", tr.MinAmount, tr.Rate))
	}
	return strings.Join(parts, ",")
}

// Points is floor(amount * rate); fractions of a point are dropped.
func Points(amount int64, rate decimal.Decimal) int64 {
	return decimal.NewFromInt(amount).Mul(rate).Floor().IntPart()
}
