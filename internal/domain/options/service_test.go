package options

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vitrine/internal/core/apperror"
	"vitrine/internal/domain/catalog"
	"vitrine/pkg/logger"
)

var testScheme = catalog.Scheme{
	SegmentID:     100,
	DepartmentIDs: []int{101, 102},
	CategoryLow:   1000,
	CategoryHigh:  1999,
}

type fakeRepo struct {
	companies    []Company
	companiesErr error

	tables    []PriceTable
	tablesErr error

	classes    []Classification
	classesErr error
}

func (f *fakeRepo) Companies(ctx context.Context) ([]Company, error) {
	return f.companies, f.companiesErr
}

func (f *fakeRepo) PriceTables(ctx context.Context) ([]PriceTable, error) {
	return f.tables, f.tablesErr
}

func (f *fakeRepo) Classifications(ctx context.Context) ([]Classification, error) {
	return f.classes, f.classesErr
}

func TestService_LoadAll(t *testing.T) {
	repo := &fakeRepo{
		companies: []Company{{ID: 1, Name: "VERON"}, {ID: 2, Name: "JTX"}},
		tables:    []PriceTable{{ID: 0, Name: "Base"}, {ID: 7, Name: "Promo"}},
		classes: []Classification{
			{ID: 100, Label: "Home"},
			{ID: 101, Label: "Furniture"},
			{ID: 1500, Label: "Tables"},
			{ID: 2500, Label: "Side tables"},
		},
	}
	svc := NewService(repo, testScheme, logger.Default())

	opts, err := svc.Load(context.Background())
	require.NoError(t, err)

	assert.Len(t, opts.Companies, 2)
	assert.Len(t, opts.PriceTables, 2)
	assert.Empty(t, opts.Degraded)

	require.Len(t, opts.Classifications, 4)
	assert.Equal(t, LevelSegment, opts.Classifications[0].Level)
	assert.Equal(t, LevelDepartment, opts.Classifications[1].Level)
	assert.Equal(t, LevelCategory, opts.Classifications[2].Level)
	assert.Equal(t, LevelSubcategory, opts.Classifications[3].Level)
}

func TestService_LoadPartialFailure(t *testing.T) {
	repo := &fakeRepo{
		companies: []Company{{ID: 1, Name: "VERON"}},
		tablesErr: errors.New("relation missing"),
		classes:   []Classification{{ID: 100, Label: "Home"}},
	}
	svc := NewService(repo, testScheme, logger.Default())

	opts, err := svc.Load(context.Background())

	// One failed section degrades, the rest stays usable.
	require.NoError(t, err)
	assert.Equal(t, []string{"priceTables"}, opts.Degraded)
	assert.Len(t, opts.Companies, 1)
	assert.Nil(t, opts.PriceTables)
	assert.Len(t, opts.Classifications, 1)
}

func TestService_LoadTotalFailure(t *testing.T) {
	boom := errors.New("db down")
	repo := &fakeRepo{companiesErr: boom, tablesErr: boom, classesErr: boom}
	svc := NewService(repo, testScheme, logger.Default())

	opts, err := svc.Load(context.Background())
	require.Error(t, err)

	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeFilterOptions, appErr.Code)
	assert.Len(t, opts.Degraded, 3)
}
