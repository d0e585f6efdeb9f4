package entity

import (
	"locinsight/internal/errors"

	"github.com/shopspring/decimal"
)

// CompositeScoreItem is the target item of the combined J-Score rows.
const CompositeScoreItem = "j_score_avg"

// Statistic is one J-Score record for a (region, target item, reference date).
type Statistic struct {
	TargetItem           *string  `json:"target_item,omitempty"`
	RefDate              *string  `json:"ref_date"`
	AvgVal               *float64 `json:"avg_val,omitempty"`
	MedVal               *float64 `json:"med_val,omitempty"`
	StdVal               *float64 `json:"std_val,omitempty"`
	MaxVal               *float64 `json:"max_val,omitempty"`
	MinVal               *float64 `json:"min_val,omitempty"`
	JScore               *float64 `json:"j_score"`
	JScoreRank           *int64   `json:"j_score_rank"`
	JScorePer            *float64 `json:"j_score_per"`
	JScorePerNonOutliers *float64 `json:"j_score_per_non_outliers"`
	JScoreNonOutliers    *float64 `json:"j_score_non_outliers"`
}

// ErrAnchorScoreMissing is returned when a similarity anchor has no outlier-excluded J-Score.
var ErrAnchorScoreMissing = errors.New("anchor j_score_non_outliers is null")

var (
	windowLower = decimal.RequireFromString("0.9")
	windowUpper = decimal.RequireFromString("1.1")
)

// SimilarityWindow returns the inclusive band of ±10% around the outlier-excluded J-Score.
func (s *Statistic) SimilarityWindow() (Window, error) {
	if s == nil || s.JScoreNonOutliers == nil {
		return Window{}, ErrAnchorScoreMissing
	}

	v := decimal.NewFromFloat(*s.JScoreNonOutliers)

	return Window{
		Min: v.Mul(windowLower),
		Max: v.Mul(windowUpper),
	}, nil
}

// RegionStatistic is a statistic with its region.
type RegionStatistic struct {
	Region
	Statistic
}

// Window is an inclusive J-Score range.
type Window struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Contains reports whether v lies inside the window, bounds included.
func (w Window) Contains(v decimal.Decimal) bool {
	return v.GreaterThanOrEqual(w.Min) && v.LessThanOrEqual(w.Max)
}

// SimilarResult is the similar-region listing plus the anchor it was derived from.
type SimilarResult struct {
	Anchor  *RegionStatistic `json:"anchor"`
	Window  Window           `json:"window"`
	Records []*MergedRecord  `json:"records"`
}
