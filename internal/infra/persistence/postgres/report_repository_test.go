package postgres

import (
	"context"
	"testing"

	"locinsight/internal/domain/entity"
	"locinsight/internal/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportStore() *entity.Store {
	return &entity.Store{
		BusinessNumber:  "JS0042",
		StoreName:       "카페 온",
		CityID:          1,
		DistrictID:      2,
		SubDistrictID:   3,
		Categories:      entity.CategoryNames{Large: "음식", Medium: "카페", Small: "커피"},
		RoadNameAddress: "서울특별시 강남구 테헤란로 1",
		Location:        orb.Point{127.0276, 37.4979},
	}
}

func TestReportRepository_SaveStoreReport(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newReportRepository(db)

	mock.ExpectExec(`INSERT INTO "report" .* ON CONFLICT \("store_business_number"\) DO UPDATE SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SaveStoreReport(context.Background(), reportStore()))
}

func TestReportRepository_SaveStoreReport_Error(t *testing.T) {
	db, mock := newMockDB(t)
	repo := newReportRepository(db)

	mock.ExpectExec(`INSERT INTO "report"`).
		WillReturnError(errors.New("connection reset"))

	err := repo.SaveStoreReport(context.Background(), reportStore())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save store report")
}
