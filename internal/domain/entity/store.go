package entity

import (
	"fmt"
	"strconv"
	"strings"

	"locinsight/internal/errors"

	"github.com/paulmach/orb"
)

// BusinessNumberPrefix is the fixed prefix of generated store identifiers.
const BusinessNumberPrefix = "JS"

// ErrInvalidBusinessNumber is returned for identifiers that are not JS followed by digits.
var ErrInvalidBusinessNumber = errors.New("invalid business number")

// BusinessNumber is the numeric part of a generated store identifier. The zero value
// means no identifier has been issued yet.
type BusinessNumber struct {
	seq int
}

// ParseBusinessNumber strips the prefix of s and parses the remaining digits.
func ParseBusinessNumber(s string) (BusinessNumber, error) {
	digits, ok := strings.CutPrefix(s, BusinessNumberPrefix)
	if !ok || digits == "" {
		return BusinessNumber{}, errors.Wrapf(ErrInvalidBusinessNumber, "%q", s)
	}

	seq, err := strconv.Atoi(digits)
	if err != nil || seq < 0 {
		return BusinessNumber{}, errors.Wrapf(ErrInvalidBusinessNumber, "%q", s)
	}

	return BusinessNumber{seq: seq}, nil
}

// Next returns the identifier following b.
func (b BusinessNumber) Next() BusinessNumber {
	return BusinessNumber{seq: b.seq + 1}
}

// Seq returns the numeric part.
func (b BusinessNumber) Seq() int {
	return b.seq
}

// String formats the identifier as the prefix plus a zero-padded 4-digit number.
func (b BusinessNumber) String() string {
	return fmt.Sprintf("%s%04d", BusinessNumberPrefix, b.seq)
}

// CategoryNames are the resolved names of a three-level category path.
type CategoryNames struct {
	Large  string `json:"large_category_name"`
	Medium string `json:"medium_category_name"`
	Small  string `json:"small_category_name"`
}

// Store is a registered local store.
type Store struct {
	BusinessNumber     string
	StoreName          string
	CityID             int64
	DistrictID         int64
	SubDistrictID      int64
	ReferenceID        int
	LargeCategoryCode  string
	MediumCategoryCode string
	SmallCategoryCode  string
	Categories         CategoryNames
	RoadNameAddress    string
	// Location is the geocoded position, X = longitude and Y = latitude.
	Location orb.Point
	KTMyShop bool
	JSam     bool
	Pulmuone bool
}

// StoreRegistration is an operator request to add a store.
type StoreRegistration struct {
	CityID             int64
	DistrictID         int64
	SubDistrictID      int64
	ReferenceID        int
	LargeCategoryCode  string
	MediumCategoryCode string
	SmallCategoryCode  string
	StoreName          string
	RoadName           string
	Selected           []string
}

// HasTag reports whether tag was selected.
func (r StoreRegistration) HasTag(tag PromoTag) bool {
	for _, raw := range r.Selected {
		if parsed, ok := ParsePromoTag(raw); ok && parsed == tag {
			return true
		}
	}

	return false
}

// StoreIdentity returns the fields that make a store a duplicate of another.
func (r StoreRegistration) StoreIdentity() StoreIdentity {
	return StoreIdentity{
		CityID:             r.CityID,
		DistrictID:         r.DistrictID,
		SubDistrictID:      r.SubDistrictID,
		LargeCategoryCode:  r.LargeCategoryCode,
		MediumCategoryCode: r.MediumCategoryCode,
		SmallCategoryCode:  r.SmallCategoryCode,
		StoreName:          r.StoreName,
	}
}

// StoreIdentity is the (region, category path, name) duplicate key.
type StoreIdentity struct {
	CityID             int64
	DistrictID         int64
	SubDistrictID      int64
	LargeCategoryCode  string
	MediumCategoryCode string
	SmallCategoryCode  string
	StoreName          string
}

// RegistrationOutcome distinguishes a new store from a repeated registration.
type RegistrationOutcome string

const (
	OutcomeRegistered        RegistrationOutcome = "registered"
	OutcomeAlreadyRegistered RegistrationOutcome = "already_registered"
)

// RegistrationResult reports a registration attempt. BusinessNumber is empty unless a store was written.
type RegistrationResult struct {
	Outcome        RegistrationOutcome `json:"outcome"`
	BusinessNumber string              `json:"number"`
}

// Success reports whether a new store was written.
func (r RegistrationResult) Success() bool {
	return r.Outcome == OutcomeRegistered
}

// StoreListing is one row of the store search.
type StoreListing struct {
	BusinessNumber        *string `json:"store_business_number"`
	StoreName             *string `json:"store_name"`
	BranchName            *string `json:"branch_name"`
	RoadNameAddress       *string `json:"road_name_address"`
	LargeCategoryName     *string `json:"large_category_name"`
	MediumCategoryName    *string `json:"medium_category_name"`
	SmallCategoryName     *string `json:"small_category_name"`
	IndustryName          *string `json:"industry_name"`
	BuildingName          *string `json:"building_name"`
	NewPostalCode         *string `json:"new_postal_code"`
	DongInfo              *string `json:"dong_info"`
	FloorInfo             *string `json:"floor_info"`
	UnitInfo              *string `json:"unit_info"`
	LocalYear             *int64  `json:"local_year"`
	LocalQuarter          *int64  `json:"local_quarter"`
	KTMyShop              *bool   `json:"ktmyshop,omitempty"`
	JSam                  *bool   `json:"jsam,omitempty"`
	CityName              *string `json:"city_name"`
	DistrictName          *string `json:"district_name"`
	SubDistrictName       *string `json:"sub_district_name"`
	BizMainCategoryName   *string `json:"biz_main_category_name,omitempty"`
	BizSubCategoryName    *string `json:"biz_sub_category_name,omitempty"`
	BizDetailCategoryName *string `json:"biz_detail_category_name,omitempty"`
}

// StoreSummary is the store header used when writing content for it.
type StoreSummary struct {
	BusinessNumber  string `json:"store_business_number"`
	StoreName       string `json:"store_name"`
	RoadNameAddress string `json:"road_name_address"`
}

// StoreCategory is the category path of a store.
type StoreCategory struct {
	BusinessNumber string `json:"store_business_number"`
	CategoryNames
}
