package domain

import "testing"

func propsWithPrices(prices ...float64) []Property {
	properties := make([]Property, 0, len(prices))
	for _, p := range prices {
		properties = append(properties, Property{Price: p})
	}
	return properties
}

func TestDerivePriceBounds(t *testing.T) {
	tests := []struct {
		name     string
		prices   []float64
		previous PriceBounds
		want     PriceBounds
	}{
		{
			name:     "margins widen the raw interval",
			prices:   []float64{100, 250, 500},
			previous: DefaultPriceBounds,
			want:     PriceBounds{Min: 90, Max: 550},
		},
		{
			name:     "single listing",
			prices:   []float64{200},
			previous: DefaultPriceBounds,
			want:     PriceBounds{Min: 180, Max: 220},
		},
		{
			name:     "free and unpriced listings are ignored",
			prices:   []float64{0, -50, 300},
			previous: DefaultPriceBounds,
			want:     PriceBounds{Min: 270, Max: 330},
		},
		{
			name:     "no priced listings keeps the previous bound",
			prices:   []float64{0, 0},
			previous: PriceBounds{Min: 90, Max: 550},
			want:     PriceBounds{Min: 90, Max: 550},
		},
		{
			name:     "empty set keeps the default",
			prices:   nil,
			previous: DefaultPriceBounds,
			want:     DefaultPriceBounds,
		},
		{
			name:     "fractional prices floor and ceil outward",
			prices:   []float64{99.5, 101.3},
			previous: DefaultPriceBounds,
			want:     PriceBounds{Min: 89, Max: 112},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DerivePriceBounds(propsWithPrices(tt.prices...), tt.previous)
			if got != tt.want {
				t.Errorf("DerivePriceBounds() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDerivePriceBoundsContainsAllPrices(t *testing.T) {
	prices := []float64{123.45, 67.89, 999.99, 450}
	bounds := DerivePriceBounds(propsWithPrices(prices...), DefaultPriceBounds)
	for _, p := range prices {
		if p < bounds.Min || p > bounds.Max {
			t.Errorf("price %v falls outside derived bounds %+v", p, bounds)
		}
	}
}

func TestClampSelection(t *testing.T) {
	bounds := PriceBounds{Min: 90, Max: 550}

	tests := []struct {
		name      string
		selection PriceBounds
		want      PriceBounds
	}{
		{"narrower selection survives", PriceBounds{Min: 100, Max: 400}, PriceBounds{Min: 100, Max: 400}},
		{"selection equal to bounds survives", bounds, bounds},
		{"min below bound resets", PriceBounds{Min: 50, Max: 400}, bounds},
		{"max above bound resets", PriceBounds{Min: 100, Max: 600}, bounds},
		{"both outside resets", PriceBounds{Min: 10, Max: 9999}, bounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSelection(tt.selection, bounds); got != tt.want {
				t.Errorf("ClampSelection() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
