// Package merge joins independently fetched location and statistic rows on their region key.
package merge

import "locinsight/internal/domain/entity"

// Merge joins a and b on the region key.
//
// The shorter input drives the join and fixes the output length; on equal length a drives.
// Each driving record is overlaid with the first record of the other input that has the same
// key, with the other input's parts taking precedence. Driving records without a partner are
// emitted unchanged. When either input is empty the other one is returned as is.
func Merge(a, b []*entity.MergedRecord) []*entity.MergedRecord {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}

	driving, other := a, b
	if len(b) < len(a) {
		driving, other = b, a
	}

	index := firstByKey(other)

	out := make([]*entity.MergedRecord, 0, len(driving))
	for _, rec := range driving {
		match, ok := index[rec.Key()]
		if !ok {
			out = append(out, rec)

			continue
		}
		out = append(out, overlay(rec, match))
	}

	return out
}

// firstByKey keeps only the first record per key so duplicates resolve like a forward scan.
func firstByKey(records []*entity.MergedRecord) map[entity.RegionKey]*entity.MergedRecord {
	index := make(map[entity.RegionKey]*entity.MergedRecord, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, seen := index[key]; !seen {
			index[key] = rec
		}
	}

	return index
}

func overlay(base, top *entity.MergedRecord) *entity.MergedRecord {
	merged := &entity.MergedRecord{
		Region:       top.Region,
		LocationInfo: base.LocationInfo,
		Statistic:    base.Statistic,
	}
	if top.LocationInfo != nil {
		merged.LocationInfo = top.LocationInfo
	}
	if top.Statistic != nil {
		merged.Statistic = top.Statistic
	}

	return merged
}

// FromLocations wraps location rows for merging.
func FromLocations(rows []*entity.RegionLocationInfo) []*entity.MergedRecord {
	out := make([]*entity.MergedRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.MergedFromLocation(r))
	}

	return out
}

// FromStatistics wraps statistic rows for merging.
func FromStatistics(rows []*entity.RegionStatistic) []*entity.MergedRecord {
	out := make([]*entity.MergedRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, entity.MergedFromStatistic(r))
	}

	return out
}
