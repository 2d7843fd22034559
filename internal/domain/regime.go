package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// RegimeName identifies one of the two income-tax regimes
type RegimeName string

const (
	RegimeOld RegimeName = "old"
	RegimeNew RegimeName = "new"
)

// ParseRegimeName normalizes user input into a RegimeName
func ParseRegimeName(s string) (RegimeName, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "old", "old_regime", "old-regime":
		return RegimeOld, nil
	case "new", "new_regime", "new-regime", "":
		return RegimeNew, nil
	default:
		return "", fmt.Errorf("unknown tax regime %q (expected old or new)", s)
	}
}

// Other returns the opposite regime
func (r RegimeName) Other() RegimeName {
	if r == RegimeOld {
		return RegimeNew
	}
	return RegimeOld
}

// TaxSlab is a single income bracket. A nil UpperBound marks the unbounded top slab.
type TaxSlab struct {
	UpperBound *decimal.Decimal `yaml:"upper_bound" json:"upperBound"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
}

// IsUnbounded reports whether the slab has no upper bound
func (s TaxSlab) IsUnbounded() bool {
	return s.UpperBound == nil
}

// SlabTable is a named, ordered sequence of tax slabs
type SlabTable struct {
	Name  string    `yaml:"name" json:"name"`
	Slabs []TaxSlab `yaml:"slabs" json:"slabs"`
}

// Validate checks ordering and that exactly one unbounded slab closes the table
func (t SlabTable) Validate() error {
	if len(t.Slabs) == 0 {
		return fmt.Errorf("slab table %q has no slabs", t.Name)
	}
	prev := decimal.Zero
	for i, s := range t.Slabs {
		if s.Rate.IsNegative() || s.Rate.GreaterThan(decimal.NewFromInt(1)) {
			return fmt.Errorf("slab table %q: slab %d rate must be between 0 and 1", t.Name, i)
		}
		last := i == len(t.Slabs)-1
		if s.IsUnbounded() {
			if !last {
				return fmt.Errorf("slab table %q: only the last slab may be unbounded", t.Name)
			}
			continue
		}
		if last {
			return fmt.Errorf("slab table %q: last slab must be unbounded", t.Name)
		}
		if s.UpperBound.LessThanOrEqual(prev) {
			return fmt.Errorf("slab table %q: slab %d upper bound must be ascending", t.Name, i)
		}
		prev = *s.UpperBound
	}
	return nil
}

// SurchargeBand applies Rate when income is strictly greater than Threshold
type SurchargeBand struct {
	Threshold decimal.Decimal `yaml:"threshold" json:"threshold"`
	Rate      decimal.Decimal `yaml:"rate" json:"rate"`
}

// SurchargeSchedule is a named set of surcharge bands
type SurchargeSchedule struct {
	Name  string          `yaml:"name" json:"name"`
	Bands []SurchargeBand `yaml:"bands" json:"bands"`
}

// RateFor returns the surcharge rate of the highest band the income exceeds
func (s SurchargeSchedule) RateFor(income decimal.Decimal) decimal.Decimal {
	rate := decimal.Zero
	best := decimal.Zero
	for _, b := range s.Bands {
		if income.GreaterThan(b.Threshold) && b.Threshold.GreaterThanOrEqual(best) {
			best = b.Threshold
			rate = b.Rate
		}
	}
	return rate
}

// RegimeConfig describes how one regime variant turns gross salary into tax
type RegimeConfig struct {
	Name              RegimeName        `yaml:"name" json:"name"`
	Variant           string            `yaml:"variant" json:"variant"`
	Slabs             SlabTable         `yaml:"slabs" json:"slabs"`
	Surcharge         SurchargeSchedule `yaml:"surcharge" json:"surcharge"`
	StandardDeduction decimal.Decimal   `yaml:"standard_deduction" json:"standardDeduction"`
	RebateThreshold   decimal.Decimal   `yaml:"rebate_threshold" json:"rebateThreshold"`
	RebateAmount      decimal.Decimal   `yaml:"rebate_amount" json:"rebateAmount"`
	FullRebate        bool              `yaml:"full_rebate" json:"fullRebate"`
	CessRate          decimal.Decimal   `yaml:"cess_rate" json:"cessRate"`

	// Old regime itemized deduction ceilings
	Section80CLimit     decimal.Decimal `yaml:"section_80c_limit" json:"section80CLimit"`
	Section80CCD1BLimit decimal.Decimal `yaml:"section_80ccd_1b_limit" json:"section80CCD1BLimit"`
}

// Key returns the registry key for the config
func (rc RegimeConfig) Key() RegimeKey {
	return RegimeKey{Regime: rc.Name, Variant: rc.Variant}
}

// Validate checks the config is usable by the tax engine
func (rc RegimeConfig) Validate() error {
	if rc.Name != RegimeOld && rc.Name != RegimeNew {
		return fmt.Errorf("regime name must be old or new, got %q", rc.Name)
	}
	if rc.Variant == "" {
		return fmt.Errorf("regime %s: variant is required", rc.Name)
	}
	if err := rc.Slabs.Validate(); err != nil {
		return fmt.Errorf("regime %s/%s: %w", rc.Name, rc.Variant, err)
	}
	if rc.StandardDeduction.IsNegative() || rc.RebateThreshold.IsNegative() || rc.RebateAmount.IsNegative() {
		return fmt.Errorf("regime %s/%s: deduction and rebate values cannot be negative", rc.Name, rc.Variant)
	}
	return nil
}

// RegimeKey identifies a regime variant in the registry
type RegimeKey struct {
	Regime  RegimeName
	Variant string
}

func (k RegimeKey) String() string {
	return string(k.Regime) + "/" + k.Variant
}

// RegimeRegistry holds every known regime variant. Divergent variants are kept side by side.
type RegimeRegistry struct {
	DefaultVariant string
	entries        map[RegimeKey]RegimeConfig
}

// NewRegimeRegistry creates an empty registry
func NewRegimeRegistry(defaultVariant string) *RegimeRegistry {
	return &RegimeRegistry{
		DefaultVariant: defaultVariant,
		entries:        make(map[RegimeKey]RegimeConfig),
	}
}

// Register adds or replaces a regime variant
func (r *RegimeRegistry) Register(cfg RegimeConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	r.entries[cfg.Key()] = cfg
	return nil
}

// Get looks up a regime variant. An empty variant resolves to the default variant.
func (r *RegimeRegistry) Get(regime RegimeName, variant string) (RegimeConfig, error) {
	if variant == "" {
		variant = r.DefaultVariant
	}
	cfg, ok := r.entries[RegimeKey{Regime: regime, Variant: variant}]
	if !ok {
		return RegimeConfig{}, &LookupError{Kind: "regime", Key: RegimeKey{Regime: regime, Variant: variant}.String()}
	}
	return cfg, nil
}

// Variants lists the distinct variant names in sorted order
func (r *RegimeRegistry) Variants() []string {
	seen := map[string]bool{}
	var out []string
	for k := range r.entries {
		if !seen[k.Variant] {
			seen[k.Variant] = true
			out = append(out, k.Variant)
		}
	}
	sort.Strings(out)
	return out
}

// All returns every registered config ordered by variant then regime
func (r *RegimeRegistry) All() []RegimeConfig {
	out := make([]RegimeConfig, 0, len(r.entries))
	for _, cfg := range r.entries {
		out = append(out, cfg)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Variant != out[j].Variant {
			return out[i].Variant < out[j].Variant
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Clone returns an independent copy that can be overlaid without touching the original
func (r *RegimeRegistry) Clone() *RegimeRegistry {
	c := NewRegimeRegistry(r.DefaultVariant)
	for k, v := range r.entries {
		c.entries[k] = v
	}
	return c
}

// LookupError reports an unknown registry or table key
type LookupError struct {
	Kind string
	Key  string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Key)
}

// SlabAmount is one row of the per-slab tax breakdown
type SlabAmount struct {
	Range       string          `json:"range"`
	RatePercent decimal.Decimal `json:"ratePercent"`
	Amount      decimal.Decimal `json:"amount"`
	Tax         decimal.Decimal `json:"tax"`
}

// TaxResult is the output of the progressive tax calculator
type TaxResult struct {
	TaxBeforeCharges decimal.Decimal `json:"taxBeforeCharges"`
	Surcharge        decimal.Decimal `json:"surcharge"`
	Cess             decimal.Decimal `json:"cess"`
	FinalTax         decimal.Decimal `json:"finalTax"`
	SlabBreakdown    []SlabAmount    `json:"slabBreakdown"`
	RebateApplied    decimal.Decimal `json:"rebateApplied"`
}
