package handler

import (
	"strings"

	"locinsight/internal/delivery/api/validator"
	"locinsight/internal/domain/entity"
	domainerrors "locinsight/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Store name match types accepted by the store search.
const (
	matchTypeEqual = "="
	matchTypeLike  = "LIKE"
)

// bindRequest binds req from the path, query and body and validates it.
func bindRequest(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request")
	}

	if err := c.Validate(req); err != nil {
		details := strings.Join(validator.FieldErrors(err), ", ")
		if details == "" {
			details = "invalid request"
		}

		return domainerrors.ErrValidationFailed.WithDetails(details)
	}

	return nil
}

// LocationFilterRequest is the filter body of the location and statistic views.
type LocationFilterRequest struct {
	City        *int64   `json:"city"`
	District    *int64   `json:"district"`
	SubDistrict *int64   `json:"subDistrict"`
	Periods     []string `json:"selectedOptions" validate:"omitempty,dive,required"`

	ShopMin       *decimal.Decimal `json:"shopMin"`
	ShopMax       *decimal.Decimal `json:"shopMax"`
	MovePopMin    *decimal.Decimal `json:"move_popMin"`
	MovePopMax    *decimal.Decimal `json:"move_popMax"`
	SalesMin      *decimal.Decimal `json:"salesMin"`
	SalesMax      *decimal.Decimal `json:"salesMax"`
	WorkPopMin    *decimal.Decimal `json:"work_popMin"`
	WorkPopMax    *decimal.Decimal `json:"work_popMax"`
	IncomeMin     *decimal.Decimal `json:"incomeMin"`
	IncomeMax     *decimal.Decimal `json:"incomeMax"`
	SpendMin      *decimal.Decimal `json:"spendMin"`
	SpendMax      *decimal.Decimal `json:"spendMax"`
	HouseMin      *decimal.Decimal `json:"houseMin"`
	HouseMax      *decimal.Decimal `json:"houseMax"`
	ResidentMin   *decimal.Decimal `json:"residentMin"`
	ResidentMax   *decimal.Decimal `json:"residentMax"`
	ApartPriceMin *decimal.Decimal `json:"apartPriceMin"`
	ApartPriceMax *decimal.Decimal `json:"apartPriceMax"`

	JScoreMin *decimal.Decimal `json:"jScoreMin"`
	JScoreMax *decimal.Decimal `json:"jScoreMax"`
}

// ToCriteria converts the request to a filter. Metrics without either bound are left out.
func (r *LocationFilterRequest) ToCriteria() entity.FilterCriteria {
	bounds := map[entity.Metric]entity.Bound{
		entity.MetricShop:       {Min: r.ShopMin, Max: r.ShopMax},
		entity.MetricMovePop:    {Min: r.MovePopMin, Max: r.MovePopMax},
		entity.MetricSales:      {Min: r.SalesMin, Max: r.SalesMax},
		entity.MetricWorkPop:    {Min: r.WorkPopMin, Max: r.WorkPopMax},
		entity.MetricIncome:     {Min: r.IncomeMin, Max: r.IncomeMax},
		entity.MetricSpend:      {Min: r.SpendMin, Max: r.SpendMax},
		entity.MetricHouse:      {Min: r.HouseMin, Max: r.HouseMax},
		entity.MetricResident:   {Min: r.ResidentMin, Max: r.ResidentMax},
		entity.MetricApartPrice: {Min: r.ApartPriceMin, Max: r.ApartPriceMax},
	}
	for metric, bound := range bounds {
		if bound.Min == nil && bound.Max == nil {
			delete(bounds, metric)
		}
	}

	return entity.FilterCriteria{
		City:        r.City,
		District:    r.District,
		SubDistrict: r.SubDistrict,
		Periods:     r.Periods,
		Bounds:      bounds,
		JScoreMin:   r.JScoreMin,
		JScoreMax:   r.JScoreMax,
	}
}

// StoreFilterRequest is the filter body of the store search.
type StoreFilterRequest struct {
	City           *int64   `json:"city"`
	District       *int64   `json:"district"`
	SubDistrict    *int64   `json:"subDistrict"`
	StoreName      *string  `json:"storeName"`
	MatchType      string   `json:"matchType"`
	Reference      *int     `json:"reference"`
	MainCategory   *string  `json:"mainCategory"`
	SubCategory    *string  `json:"subCategory"`
	DetailCategory *string  `json:"detailCategory"`
	Options        []string `json:"selectedOptions"`
}

// ToCriteria converts the request to a filter, rejecting unknown match types and tags.
func (r *StoreFilterRequest) ToCriteria() (entity.FilterCriteria, error) {
	filter := entity.FilterCriteria{
		City:           r.City,
		District:       r.District,
		SubDistrict:    r.SubDistrict,
		StoreName:      r.StoreName,
		Reference:      r.Reference,
		MainCategory:   r.MainCategory,
		SubCategory:    r.SubCategory,
		DetailCategory: r.DetailCategory,
	}

	switch strings.ToUpper(strings.TrimSpace(r.MatchType)) {
	case matchTypeEqual:
		filter.MatchMode = entity.MatchExact
	case "", matchTypeLike:
		filter.MatchMode = entity.MatchContains
	default:
		return entity.FilterCriteria{}, domainerrors.ErrValidationFailed.WithDetails("matchType: unsupported value " + r.MatchType)
	}

	for _, option := range r.Options {
		tag, ok := entity.ParsePromoTag(option)
		if !ok {
			return entity.FilterCriteria{}, domainerrors.ErrValidationFailed.WithDetails("selectedOptions: unknown option " + option)
		}
		filter.Tags = append(filter.Tags, tag)
	}

	return filter, nil
}

// BusinessNumberRequest identifies one registered store.
type BusinessNumberRequest struct {
	BusinessNumber string `json:"store_business_number" validate:"required"`
}
