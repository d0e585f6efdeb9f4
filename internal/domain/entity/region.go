package entity

// AggregationLevel is the scope a statistic row was computed for. It is encoded in the
// statistics table by which region ids are NULL.
type AggregationLevel string

const (
	LevelUnknown AggregationLevel = ""
	// LevelSubDistrict rows carry all three ids.
	LevelSubDistrict AggregationLevel = "sub_district"
	// LevelCity rows carry city and sub-district ids with district NULL.
	LevelCity AggregationLevel = "city"
	// LevelDistrict rows carry district and sub-district ids with city NULL.
	LevelDistrict AggregationLevel = "district"
)

// Region is the city > district > sub-district key plus the joined display names.
type Region struct {
	CityID          *int64  `json:"city_id"`
	CityName        *string `json:"city_name"`
	DistrictID      *int64  `json:"district_id"`
	DistrictName    *string `json:"district_name"`
	SubDistrictID   *int64  `json:"sub_district_id"`
	SubDistrictName *string `json:"sub_district_name"`
}

// RegionKey is a comparable form of the region ids where a NULL id equals another NULL id.
type RegionKey struct {
	CityID, DistrictID, SubDistrictID    int64
	HasCity, HasDistrict, HasSubDistrict bool
}

// Key returns the composite natural key of the region.
func (r Region) Key() RegionKey {
	var k RegionKey
	if r.CityID != nil {
		k.CityID, k.HasCity = *r.CityID, true
	}
	if r.DistrictID != nil {
		k.DistrictID, k.HasDistrict = *r.DistrictID, true
	}
	if r.SubDistrictID != nil {
		k.SubDistrictID, k.HasSubDistrict = *r.SubDistrictID, true
	}

	return k
}

// Level reports the aggregation level implied by the null pattern of the ids.
func (r Region) Level() AggregationLevel {
	city, district, sub := r.CityID != nil, r.DistrictID != nil, r.SubDistrictID != nil

	switch {
	case city && district && sub:
		return LevelSubDistrict
	case city && !district && sub:
		return LevelCity
	case !city && district && sub:
		return LevelDistrict
	default:
		return LevelUnknown
	}
}

// StatisticScope selects one of the statistic views.
type StatisticScope string

const (
	ScopeNation      StatisticScope = "nation"
	ScopeCity        StatisticScope = "city"
	ScopeDistrict    StatisticScope = "district"
	ScopeSubDistrict StatisticScope = "sub_district"
)

// Level returns the row aggregation level a scope reads. The nation view reads
// fully resolved rows without a region filter.
func (s StatisticScope) Level() AggregationLevel {
	switch s {
	case ScopeNation, ScopeSubDistrict:
		return LevelSubDistrict
	case ScopeCity:
		return LevelCity
	case ScopeDistrict:
		return LevelDistrict
	default:
		return LevelUnknown
	}
}

// Valid reports whether s is one of the known scopes.
func (s StatisticScope) Valid() bool {
	return s.Level() != LevelUnknown
}

// MissingRegionName is shown when a sub-district has no parent name mapping.
const MissingRegionName = "데이터 없음"
