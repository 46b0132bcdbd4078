package tax

import (
	"context"
	"strings"
	"testing"

	"gatherly/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRateRepo struct {
	rates map[string]models.TaxRate
}

func (f *fakeRateRepo) Upsert(ctx context.Context, rate models.TaxRate) error {
	f.rates[strings.ToLower(rate.Location)] = rate
	return nil
}

func (f *fakeRateRepo) GetByLocation(ctx context.Context, location string) (*models.TaxRate, error) {
	if rate, ok := f.rates[strings.ToLower(location)]; ok {
		return &rate, nil
	}
	return nil, nil
}

func (f *fakeRateRepo) GetAll(ctx context.Context) ([]models.TaxRate, error) {
	var out []models.TaxRate
	for _, r := range f.rates {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeRateRepo) DeleteByLocation(ctx context.Context, location string) error {
	delete(f.rates, strings.ToLower(location))
	return nil
}

func newFakeRateRepo(rates ...models.TaxRate) *fakeRateRepo {
	repo := &fakeRateRepo{rates: make(map[string]models.TaxRate)}
	for _, r := range rates {
		repo.rates[strings.ToLower(r.Location)] = r
	}
	return repo
}

func TestLookupExactLocation(t *testing.T) {
	svc := &DefaultRateService{
		Repo: newFakeRateRepo(models.TaxRate{Location: "austin, tx", Rate: 0.0825}),
	}

	rate, err := svc.Lookup(context.Background(), "austin, tx")
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.Equal(t, 0.0825, rate.Rate)
}

func TestLookupFallsBackToSuffix(t *testing.T) {
	svc := &DefaultRateService{
		Repo: newFakeRateRepo(
			models.TaxRate{Location: "austin, tx", Rate: 0.0825},
			models.TaxRate{Location: "tx", Rate: 0.0625},
		),
	}

	// A full street address matches its city suffix before the state.
	rate, err := svc.Lookup(context.Background(), "123 Main St, Austin, TX")
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.Equal(t, 0.0825, rate.Rate)

	// An address in an unconfigured city falls through to the state row.
	rate, err = svc.Lookup(context.Background(), "9 Elm St, Waco, TX")
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.Equal(t, 0.0625, rate.Rate)
}

func TestLookupMissing(t *testing.T) {
	svc := &DefaultRateService{Repo: newFakeRateRepo()}

	rate, err := svc.Lookup(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Nil(t, rate)

	rate, err = svc.Lookup(context.Background(), "   ")
	require.NoError(t, err)
	assert.Nil(t, rate)
}

func TestLocationCandidates(t *testing.T) {
	assert.Equal(t,
		[]string{"123 Main St, Austin, TX", "Austin, TX", "TX"},
		locationCandidates("123 Main St, Austin, TX"))
	assert.Equal(t, []string{"tx"}, locationCandidates("tx"))
}
