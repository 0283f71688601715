package domain_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bmicalc/internal/domain"
)

func TestNewRecord_Scenarios(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 30, 0, 123456789, time.FixedZone("CET", 3600))

	tests := []struct {
		name     string
		weight   float64
		height   float64
		bmi      float64
		category domain.Category
	}{
		{"average adult", 70, 1.75, 22.9, domain.NormalWeight},
		{"light normal", 50, 1.60, 19.5, domain.NormalWeight},
		{"underweight", 45, 1.70, 15.6, domain.Underweight},
		{"obese", 90, 1.70, 31.1, domain.Obese},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := domain.NewRecord(domain.Measurement{Weight: tc.weight, Height: tc.height}, now)
			assert.Equal(t, tc.bmi, rec.BMI)
			assert.Equal(t, tc.category, rec.Category)
			assert.Equal(t, tc.category.Advice(), rec.Advice)
			assert.Equal(t, tc.weight, rec.Weight)
			assert.Equal(t, tc.height, rec.Height)
			assert.Zero(t, rec.ID)
			assert.Equal(t, time.UTC, rec.Timestamp.Location())
			assert.Equal(t, 123000000, rec.Timestamp.Nanosecond())
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		bmi  float64
		want domain.Category
	}{
		{0.1, domain.Underweight},
		{18.49, domain.Underweight},
		{18.5, domain.NormalWeight},
		{24.89, domain.NormalWeight},
		// Gap between the published Normal and Overweight ranges.
		{24.9, domain.Obese},
		{24.99, domain.Obese},
		{25, domain.Overweight},
		{29.89, domain.Overweight},
		{29.9, domain.Obese},
		{55, domain.Obese},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, domain.Classify(tc.bmi), "Classify(%v)", tc.bmi)
	}
}

func TestClassify_Exhaustive(t *testing.T) {
	for v := 5.0; v < 60; v += 0.01 {
		c := domain.Classify(v)
		require.Contains(t, domain.Categories, c, "Classify(%v)", v)
		require.NotEmpty(t, c.Advice())
	}
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 22.9, domain.Round1(22.857142857))
	assert.Equal(t, 19.5, domain.Round1(19.53125))
	assert.Equal(t, 20.0, domain.Round1(19.96))
	assert.Equal(t, 0.0, domain.Round1(0.04))
}

func TestFormulaMatchesRounding(t *testing.T) {
	for _, w := range []float64{3.2, 40, 61.5, 88.8, 140, 250} {
		for _, h := range []float64{0.5, 1.2, 1.55, 1.8, 2.1, 3} {
			rec := domain.NewRecord(domain.Measurement{Weight: w, Height: h}, time.Now())
			want := math.Round(w/(h*h)*10) / 10
			assert.Equal(t, want, rec.BMI, "w=%v h=%v", w, h)
			assert.Equal(t, domain.Classify(w/(h*h)), rec.Category)
		}
	}
}

func TestSummarize(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		st := domain.Summarize(nil)
		assert.Equal(t, 0, st.TotalCalculations)
		assert.Equal(t, 0.0, st.AverageBMI)
		require.NotNil(t, st.Categories)
		assert.Empty(t, st.Categories)
	})

	t.Run("mixed", func(t *testing.T) {
		recs := []domain.CalculationRecord{
			{BMI: 22.9, Category: domain.NormalWeight},
			{BMI: 19.5, Category: domain.NormalWeight},
			{BMI: 31.1, Category: domain.Obese},
		}
		st := domain.Summarize(recs)
		assert.Equal(t, 3, st.TotalCalculations)
		assert.Equal(t, 24.5, st.AverageBMI)
		assert.Equal(t, map[domain.Category]int{domain.NormalWeight: 2, domain.Obese: 1}, st.Categories)
	})
}
