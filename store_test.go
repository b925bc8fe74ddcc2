package cali_test

import (
	"github.com/denismitr/cali"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"math"
	"os"
	"path/filepath"
	"testing"
)

type storeTestSuite struct {
	suite.Suite
	dir  string
	path string
}

func (sts *storeTestSuite) SetupTest() {
	sts.dir = sts.T().TempDir()
	sts.path = filepath.Join(sts.dir, "data", "cali_data.json")
}

func (sts *storeTestSuite) load() *cali.Store {
	s, err := cali.Load(sts.path, nil)
	sts.Require().NoError(err)
	return s
}

func (sts *storeTestSuite) TestLoad_MissingFileIsEmpty() {
	s := sts.load()
	sts.Assert().Equal(0, s.Len())
	sts.Assert().Empty(cali.AllEntries(s))
	sts.Assert().NoFileExists(sts.path)
}

func (sts *storeTestSuite) TestLoad_EmptyFileIsEmpty() {
	sts.Require().NoError(os.MkdirAll(filepath.Dir(sts.path), 0755))
	sts.Require().NoError(os.WriteFile(sts.path, nil, 0644))

	s := sts.load()
	sts.Assert().Equal(0, s.Len())
}

func (sts *storeTestSuite) TestLoggingAccumulates() {
	s := sts.load()
	day := cali.MustParseDate("2024-03-17")

	for _, amount := range []float64{100, 250.5, 0, 49.5} {
		_, err := s.AddMetric(day, cali.Calories, amount)
		sts.Require().NoError(err)
	}

	ent, err := s.AddMetric(day, cali.Water, 8)
	sts.Require().NoError(err)
	sts.Assert().Equal(400.0, ent.Calories)
	sts.Assert().Equal(8.0, ent.Water)
	sts.Assert().Equal(400.0, cali.TotalsFor(s, day).Calories)
}

func (sts *storeTestSuite) TestLoggingSeveralMetricsOnOneDay() {
	s := sts.load()
	day := cali.MustParseDate("2024-03-17")

	_, err := s.AddMetric(day, cali.Calories, 150)
	sts.Require().NoError(err)
	_, err = s.AddMetric(day, cali.Water, 16)
	sts.Require().NoError(err)
	_, err = s.AddMetric(day, cali.Protein, 30)
	sts.Require().NoError(err)

	sts.Assert().Equal(cali.DailyEntry{
		Date:     day,
		Calories: 150,
		Water:    16,
		Protein:  30,
	}, cali.TotalsFor(s, day))
}

func (sts *storeTestSuite) TestInvalidAmountLeavesStoreUnchanged() {
	s := sts.load()
	day := cali.MustParseDate("2024-03-17")
	other := cali.MustParseDate("2024-03-18")

	_, err := s.AddMetric(day, cali.Fat, 12)
	sts.Require().NoError(err)

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := s.AddMetric(day, cali.Fat, amount)
		sts.Assert().ErrorIs(err, cali.ErrInvalidAmount)

		_, err = s.AddMetric(other, cali.Fat, amount)
		sts.Assert().ErrorIs(err, cali.ErrInvalidAmount)
	}

	sts.Assert().Equal(12.0, cali.TotalsFor(s, day).Fat)
	sts.Assert().Equal(1, s.Len(), "a rejected amount must not create an entry")
}

func (sts *storeTestSuite) TestUnknownMetricIsRejected() {
	s := sts.load()
	_, err := s.AddMetric(cali.MustParseDate("2024-03-17"), cali.Metric(42), 1)
	sts.Assert().ErrorIs(err, cali.ErrUnknownMetric)
	sts.Assert().Equal(0, s.Len())
}

func (sts *storeTestSuite) TestReset() {
	s := sts.load()
	day := cali.MustParseDate("2024-03-17")

	_, err := s.AddMetric(day, cali.Carbs, 80)
	sts.Require().NoError(err)

	sts.Assert().True(s.Reset(day))
	sts.Assert().True(cali.TotalsFor(s, day).IsZero())

	fresh := cali.MustParseDate("2024-04-01")
	sts.Assert().False(s.Reset(fresh))
	_, ok := s.Lookup(fresh)
	sts.Assert().True(ok, "reset creates a zeroed entry when there is none")
	sts.Assert().Equal(2, s.Len())
}

func (sts *storeTestSuite) TestGetOrCreate() {
	s := sts.load()
	day := cali.MustParseDate("2024-03-17")

	ent := s.GetOrCreate(day)
	sts.Assert().True(ent.IsZero())
	ent.Protein = 5

	sts.Assert().Same(ent, s.GetOrCreate(day))
	sts.Assert().Equal(5.0, cali.TotalsFor(s, day).Protein)
	sts.Assert().Equal(1, s.Len())
}

func (sts *storeTestSuite) TestSaveAndLoadRoundTrip() {
	s := sts.load()
	days := []cali.Date{
		cali.MustParseDate("2024-03-19"),
		cali.MustParseDate("2023-12-31"),
		cali.MustParseDate("2024-03-17"),
	}

	for i, day := range days {
		for j, m := range cali.Metrics {
			_, err := s.AddMetric(day, m, float64(i*10+j)+0.25)
			sts.Require().NoError(err)
		}
	}
	s.Reset(cali.MustParseDate("2024-01-01"))

	sts.Require().NoError(s.Save())
	sts.Assert().FileExists(sts.path)
	sts.Assert().NoFileExists(sts.path + ".tmp")

	reloaded := sts.load()
	sts.Assert().Equal(cali.AllEntries(s), cali.AllEntries(reloaded))
	sts.Assert().Equal(4, reloaded.Len())
}

func (sts *storeTestSuite) TestPersistenceAcrossRuns() {
	day := cali.MustParseDate("2024-03-17")

	for i := 0; i < 2; i++ {
		s := sts.load()
		_, err := s.AddMetric(day, cali.Calories, 100)
		sts.Require().NoError(err)
		sts.Require().NoError(s.Save())
	}

	sts.Assert().Equal(200.0, cali.TotalsFor(sts.load(), day).Calories)
}

func (sts *storeTestSuite) TestSaveWithoutChangesKeepsFile() {
	s := sts.load()
	_, err := s.AddMetric(cali.MustParseDate("2024-03-17"), cali.Calories, 10)
	sts.Require().NoError(err)
	sts.Require().NoError(s.Save())

	before, err := os.Stat(sts.path)
	sts.Require().NoError(err)

	reloaded := sts.load()
	sts.Require().NoError(reloaded.Save())

	after, err := os.Stat(sts.path)
	sts.Require().NoError(err)
	sts.Assert().True(os.SameFile(before, after), "unchanged data must not replace the file")
}

func (sts *storeTestSuite) TestLoad_CorruptFile() {
	sts.Require().NoError(os.MkdirAll(filepath.Dir(sts.path), 0755))
	sts.Require().NoError(os.WriteFile(sts.path, []byte(`{"entries": [`), 0644))

	s, err := cali.Load(sts.path, nil)
	sts.Assert().Nil(s)
	sts.Assert().ErrorIs(err, cali.ErrCorruptData)

	b, err := os.ReadFile(sts.path)
	sts.Require().NoError(err)
	sts.Assert().Equal(`{"entries": [`, string(b), "a corrupt file must be left as is")
}

func TestStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{})
}

func TestStore_InMemory(t *testing.T) {
	s, err := cali.Load(cali.InMemory, nil)
	require.NoError(t, err)

	day := cali.MustParseDate("2024-03-17")
	_, err = s.AddMetric(day, cali.Water, 32)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	assert.Equal(t, cali.InMemory, s.Path())
	assert.NoFileExists(t, cali.InMemory)
	assert.Equal(t, 32.0, cali.TotalsFor(s, day).Water)
}

func TestStore_SaveFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cali_data.json")

	s, err := cali.Load(path, nil)
	require.NoError(t, err)
	_, err = s.AddMetric(cali.MustParseDate("2024-03-17"), cali.Calories, 1)
	require.NoError(t, err)
	require.NoError(t, s.Save())

	original, err := os.ReadFile(path)
	require.NoError(t, err)

	// a directory squatting on the temp path makes the write fail
	require.NoError(t, os.Mkdir(path+".tmp", 0755))

	_, err = s.AddMetric(cali.MustParseDate("2024-03-17"), cali.Calories, 1)
	require.NoError(t, err)
	err = s.Save()
	assert.ErrorIs(t, err, cali.ErrStorageFailed)

	current, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(original), string(current))
}
