package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metric names a location metric column that accepts range bounds.
type Metric string

const (
	MetricShop       Metric = "shop"
	MetricMovePop    Metric = "move_pop"
	MetricSales      Metric = "sales"
	MetricWorkPop    Metric = "work_pop"
	MetricIncome     Metric = "income"
	MetricSpend      Metric = "spend"
	MetricHouse      Metric = "house"
	MetricResident   Metric = "resident"
	MetricApartPrice Metric = "apart_price"
)

// Metrics lists the bounded metrics in the order their conditions are emitted.
var Metrics = []Metric{
	MetricShop,
	MetricMovePop,
	MetricSales,
	MetricWorkPop,
	MetricIncome,
	MetricSpend,
	MetricHouse,
	MetricResident,
	MetricApartPrice,
}

// Bound is an optional inclusive range. A nil side is not applied.
type Bound struct {
	Min *decimal.Decimal
	Max *decimal.Decimal
}

// MatchMode controls how a store name filter is applied.
type MatchMode string

const (
	// MatchExact is pushed to the database as an equality condition.
	MatchExact MatchMode = "exact"
	// MatchContains is applied after the fetch as a substring test.
	MatchContains MatchMode = "contains"
)

// PromoTag is a promotional affiliation flag on a store.
type PromoTag string

const (
	TagKTMyShop PromoTag = "ktmyshop"
	TagJSam     PromoTag = "jsam"
	TagPulmuone PromoTag = "pulmuone"
)

// ParsePromoTag accepts the spellings used by both catalogs ("KT_MYSHOP", "ktmyshop", "JSAM", ...).
func ParsePromoTag(raw string) (PromoTag, bool) {
	switch PromoTag(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(raw), "_", ""))) {
	case TagKTMyShop:
		return TagKTMyShop, true
	case TagJSam:
		return TagJSam, true
	case TagPulmuone:
		return TagPulmuone, true
	default:
		return "", false
	}
}

// BusinessCatalogReference selects the business category catalog for store filters.
const BusinessCatalogReference = 1

// FilterCriteria carries the optional conditions of a listing request. Every field may be absent.
type FilterCriteria struct {
	City        *int64
	District    *int64
	SubDistrict *int64

	// Periods are OR-combined against the period column of the target query.
	Periods []string

	Bounds    map[Metric]Bound
	JScoreMin *decimal.Decimal
	JScoreMax *decimal.Decimal

	MainCategory   *string
	SubCategory    *string
	DetailCategory *string

	StoreName *string
	MatchMode MatchMode

	Tags      []PromoTag
	Reference *int
}

// EffectiveMatchMode defaults to substring matching; only an explicit exact mode reaches SQL.
func (f FilterCriteria) EffectiveMatchMode() MatchMode {
	if f.MatchMode == "" {
		return MatchContains
	}

	return f.MatchMode
}

// PushesStoreName reports whether the store name condition belongs in SQL.
func (f FilterCriteria) PushesStoreName() bool {
	return f.StoreName != nil && *f.StoreName != "" && f.EffectiveMatchMode() == MatchExact
}

// MatchesStoreName applies the post-fetch half of the name filter. It accepts every
// name when the filter is absent or was already pushed to the database.
func (f FilterCriteria) MatchesStoreName(name *string) bool {
	if f.StoreName == nil || *f.StoreName == "" || f.EffectiveMatchMode() != MatchContains {
		return true
	}
	if name == nil {
		return false
	}

	return strings.Contains(*name, *f.StoreName)
}

// UsesBusinessCatalog reports whether category filters refer to the business catalog ids.
func (f FilterCriteria) UsesBusinessCatalog() bool {
	return f.Reference != nil && *f.Reference == BusinessCatalogReference
}

// Bound returns the bound configured for a metric.
func (f FilterCriteria) Bound(m Metric) (Bound, bool) {
	b, ok := f.Bounds[m]

	return b, ok
}
