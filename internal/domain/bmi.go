// Package domain contains the core business entities and interfaces.
package domain

import (
	"context"
	"math"
	"time"
)

// Category is one of the four ordered BMI ranges.
type Category string

const (
	Underweight  Category = "Underweight"
	NormalWeight Category = "Normal weight"
	Overweight   Category = "Overweight"
	Obese        Category = "Obese"
)

// Categories lists every category in ascending order.
var Categories = []Category{Underweight, NormalWeight, Overweight, Obese}

var advice = map[Category]string{
	Underweight:  "You may need to gain weight. Consult with a healthcare provider.",
	NormalWeight: "Great! You have a healthy weight. Keep it up!",
	Overweight:   "Consider a balanced diet and regular exercise.",
	Obese:        "Consult with a healthcare provider for a personalized plan.",
}

// Advice returns the fixed advisory sentence for the category.
func (c Category) Advice() string {
	return advice[c]
}

// Measurement is a validated weight (kg) and height (m) pair.
type Measurement struct {
	Weight float64
	Height float64
}

// CalculationRecord is a single stored BMI calculation. Records are never
// modified once stored.
type CalculationRecord struct {
	ID        int64     `json:"id"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	BMI       float64   `json:"bmi"`
	Category  Category  `json:"category"`
	Advice    string    `json:"advice"`
	Timestamp time.Time `json:"timestamp"`
}

// Statistics summarises the stored calculations.
type Statistics struct {
	TotalCalculations int              `json:"totalCalculations"`
	AverageBMI        float64          `json:"averageBMI"`
	Categories        map[Category]int `json:"categories"`
}

// HistoryRepository is the port for calculation history storage.
type HistoryRepository interface {
	Append(ctx context.Context, rec CalculationRecord) (CalculationRecord, error)
	List(ctx context.Context) ([]CalculationRecord, error)
	Get(ctx context.Context, id int64) (CalculationRecord, error)
	Delete(ctx context.Context, id int64) (CalculationRecord, error)
	DeleteAll(ctx context.Context) (int, error)
	Statistics(ctx context.Context) (Statistics, error)
	Count(ctx context.Context) (int, error)
}

// Compute returns the unrounded body mass index for m.
func Compute(m Measurement) float64 {
	return m.Weight / (m.Height * m.Height)
}

// Round1 rounds v to one decimal place, halves away from zero.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Classify maps an unrounded BMI to its category. Values in [24.9, 25) fall
// through to Obese; the thresholds are kept as published.
func Classify(bmi float64) Category {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi >= 18.5 && bmi < 24.9:
		return NormalWeight
	case bmi >= 25 && bmi < 29.9:
		return Overweight
	default:
		return Obese
	}
}

// NewRecord computes and classifies m. The ID is left zero for the store to
// assign.
func NewRecord(m Measurement, now time.Time) CalculationRecord {
	bmi := Compute(m)
	category := Classify(bmi)
	return CalculationRecord{
		Weight:    m.Weight,
		Height:    m.Height,
		BMI:       Round1(bmi),
		Category:  category,
		Advice:    category.Advice(),
		Timestamp: now.UTC().Truncate(time.Millisecond),
	}
}

// Summarize builds Statistics over recs. The average is taken over the
// rounded BMI values and rounded again.
func Summarize(recs []CalculationRecord) Statistics {
	st := Statistics{
		TotalCalculations: len(recs),
		Categories:        make(map[Category]int),
	}
	if len(recs) == 0 {
		return st
	}
	var total float64
	for _, r := range recs {
		total += r.BMI
		st.Categories[r.Category]++
	}
	st.AverageBMI = Round1(total / float64(len(recs)))
	return st
}
