package entity

// MergedRecord is the union of a location row and a statistic row sharing a region.
// Either part may be absent. It only lives for one response.
type MergedRecord struct {
	Region
	*LocationInfo
	*Statistic
}

// MergedFromLocation wraps a location row.
func MergedFromLocation(r *RegionLocationInfo) *MergedRecord {
	info := r.LocationInfo

	return &MergedRecord{Region: r.Region, LocationInfo: &info}
}

// MergedFromStatistic wraps a statistic row.
func MergedFromStatistic(r *RegionStatistic) *MergedRecord {
	stat := r.Statistic

	return &MergedRecord{Region: r.Region, Statistic: &stat}
}
