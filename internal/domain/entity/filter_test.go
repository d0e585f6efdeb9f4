package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestFilterCriteria_StoreNameMatching(t *testing.T) {
	tests := []struct {
		name        string
		filter      FilterCriteria
		storeName   *string
		wantPushed  bool
		wantMatches bool
	}{
		{
			name:        "no filter accepts everything",
			filter:      FilterCriteria{},
			storeName:   strPtr("김밥천국"),
			wantMatches: true,
		},
		{
			name:        "default mode is contains",
			filter:      FilterCriteria{StoreName: strPtr("김밥")},
			storeName:   strPtr("김밥천국 역삼점"),
			wantMatches: true,
		},
		{
			name:      "default mode rejects non matching name",
			filter:    FilterCriteria{StoreName: strPtr("김밥")},
			storeName: strPtr("분식나라"),
		},
		{
			name:        "exact mode is pushed",
			filter:      FilterCriteria{StoreName: strPtr("김밥천국"), MatchMode: MatchExact},
			storeName:   strPtr("다른 가게"),
			wantPushed:  true,
			wantMatches: true,
		},
		{
			name:        "contains matches substring",
			filter:      FilterCriteria{StoreName: strPtr("김밥"), MatchMode: MatchContains},
			storeName:   strPtr("김밥천국 역삼점"),
			wantMatches: true,
		},
		{
			name:      "contains rejects non matching name",
			filter:    FilterCriteria{StoreName: strPtr("김밥"), MatchMode: MatchContains},
			storeName: strPtr("분식나라"),
		},
		{
			name:      "contains rejects null name",
			filter:    FilterCriteria{StoreName: strPtr("김밥"), MatchMode: MatchContains},
			storeName: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantPushed, tt.filter.PushesStoreName())
			assert.Equal(t, tt.wantMatches, tt.filter.MatchesStoreName(tt.storeName))
		})
	}
}

func TestParsePromoTag(t *testing.T) {
	tests := map[string]PromoTag{
		"KT_MYSHOP": TagKTMyShop,
		"ktmyshop":  TagKTMyShop,
		"JSAM":      TagJSam,
		"PULMUONE":  TagPulmuone,
	}
	for raw, want := range tests {
		got, ok := ParsePromoTag(raw)
		assert.True(t, ok, raw)
		assert.Equal(t, want, got, raw)
	}

	_, ok := ParsePromoTag("coupang")
	assert.False(t, ok)
}

func TestFilterCriteria_UsesBusinessCatalog(t *testing.T) {
	one, three := 1, 3

	assert.True(t, FilterCriteria{Reference: &one}.UsesBusinessCatalog())
	assert.False(t, FilterCriteria{Reference: &three}.UsesBusinessCatalog())
	assert.False(t, FilterCriteria{}.UsesBusinessCatalog())
}
