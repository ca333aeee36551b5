package service

import (
	"errors"
	"testing"
)

func price(v float64) *float64 {
	return &v
}

func germanyTable() *RateTable {
	return &RateTable{
		Country: "Germany",
		Bands: []WeightBand{
			{
				Label:           "0-2kg",
				WeightKg:        2,
				ParcelEconomy:   RateCell{Price: price(1500), Enabled: true},
				ParcelExpress:   RateCell{Price: price(2200), Enabled: true},
				DocumentEconomy: RateCell{Price: price(900), Enabled: true},
				DocumentExpress: RateCell{Enabled: false},
			},
			{
				Label:           "2-5kg",
				WeightKg:        5,
				ParcelEconomy:   RateCell{Price: price(3400), Enabled: true},
				ParcelExpress:   RateCell{Enabled: true}, // enabled but never priced
				DocumentEconomy: RateCell{Price: price(2100), Enabled: true},
				DocumentExpress: RateCell{Enabled: false},
			},
		},
	}
}

func TestCalculateRatePicksBandByChargeableWeight(t *testing.T) {
	q := RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1.2}

	result := CalculateRate(q, germanyTable())
	if !result.OK() {
		t.Fatalf("expected a priced result, got failure %q", result.Failure)
	}
	if result.Price != 1500 {
		t.Fatalf("expected price 1500, got %v", result.Price)
	}
	if result.BandLabel != "0-2kg" {
		t.Fatalf("expected band 0-2kg, got %q", result.BandLabel)
	}
	if result.Currency != "LKR" {
		t.Fatalf("expected LKR, got %q", result.Currency)
	}
	if result.Overflow {
		t.Fatal("expected no overflow for an in-range weight")
	}
}

func TestCalculateRateExactThresholdStaysInBand(t *testing.T) {
	q := RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 2}

	result := CalculateRate(q, germanyTable())
	if !result.OK() {
		t.Fatalf("expected a priced result, got failure %q", result.Failure)
	}
	if result.BandLabel != "0-2kg" {
		t.Fatalf("a weight exactly on the threshold belongs to the lower band, got %q", result.BandLabel)
	}
}

func TestCalculateRateVolumetricWeightWins(t *testing.T) {
	// 50x50x50 cm at 1 kg: volumetric weight is 25 kg.
	q := RateQuery{
		Kind: KindParcel, Tier: TierEconomy, Country: "Germany",
		WeightKg: 1, LengthCm: 50, WidthCm: 50, HeightCm: 50,
	}

	result := CalculateRate(q, germanyTable())
	if result.ChargeableKg != 25 {
		t.Fatalf("expected chargeable weight 25, got %v", result.ChargeableKg)
	}
	if !result.VolumetricApplied() {
		t.Fatal("expected the volumetric flag to be set")
	}
	if !result.Overflow {
		t.Fatal("25 kg is beyond the top band, expected overflow")
	}
	if result.BandLabel != "2-5kg" {
		t.Fatalf("overflow should fall back to the heaviest band, got %q", result.BandLabel)
	}
}

func TestCalculateRateIsDeterministic(t *testing.T) {
	q := RateQuery{Kind: KindDocument, Tier: TierEconomy, Country: "Germany", WeightKg: 3.5}

	first := CalculateRate(q, germanyTable())
	for i := 0; i < 5; i++ {
		if got := CalculateRate(q, germanyTable()); got != first {
			t.Fatalf("results diverged on run %d: %+v vs %+v", i, got, first)
		}
	}
}

func TestCalculateRateSortsUnorderedBands(t *testing.T) {
	table := germanyTable()
	table.Bands[0], table.Bands[1] = table.Bands[1], table.Bands[0]

	q := RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1}
	result := CalculateRate(q, table)
	if result.BandLabel != "0-2kg" {
		t.Fatalf("band order in storage must not matter, got %q", result.BandLabel)
	}
}

func TestCalculateRateTypedFailures(t *testing.T) {
	cases := []struct {
		name  string
		query RateQuery
		table *RateTable
		want  RateFailure
	}{
		{
			name:  "unknown destination",
			query: RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Atlantis", WeightKg: 1},
			table: nil,
			want:  FailureDestinationNotFound,
		},
		{
			name:  "no bands configured",
			query: RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1},
			table: &RateTable{Country: "Germany"},
			want:  FailureNoRatesConfigured,
		},
		{
			name:  "service disabled",
			query: RateQuery{Kind: KindDocument, Tier: TierExpress, Country: "Germany", WeightKg: 1},
			table: germanyTable(),
			want:  FailureServiceUnavailable,
		},
		{
			name:  "service enabled but unpriced",
			query: RateQuery{Kind: KindParcel, Tier: TierExpress, Country: "Germany", WeightKg: 4},
			table: germanyTable(),
			want:  FailurePriceNotConfigured,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := CalculateRate(tc.query, tc.table)
			if result.OK() {
				t.Fatalf("expected failure %q, got priced result %+v", tc.want, result)
			}
			if result.Failure != tc.want {
				t.Fatalf("expected failure %q, got %q", tc.want, result.Failure)
			}
			if result.Failure.Message() == "" {
				t.Fatalf("failure %q has no display message", result.Failure)
			}
		})
	}
}

func TestValidateQuery(t *testing.T) {
	valid := RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1}
	if err := ValidateQuery(valid); err != nil {
		t.Fatalf("expected valid query to pass, got %v", err)
	}

	cases := []struct {
		name  string
		query RateQuery
	}{
		{"bad kind", RateQuery{Kind: "envelope", Tier: TierEconomy, Country: "Germany", WeightKg: 1}},
		{"bad tier", RateQuery{Kind: KindParcel, Tier: "overnight", Country: "Germany", WeightKg: 1}},
		{"blank country", RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "  ", WeightKg: 1}},
		{"zero weight", RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 0}},
		{"negative dimension", RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1, LengthCm: -3}},
		{"partial dimensions", RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 1, LengthCm: 10, WidthCm: 10}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateQuery(tc.query)
			if err == nil {
				t.Fatal("expected validation to fail")
			}
			if !errors.Is(err, ErrInvalidRequest) {
				t.Fatalf("expected ErrInvalidRequest, got %v", err)
			}
		})
	}
}

func TestChargeableWeightWithoutDimensions(t *testing.T) {
	q := RateQuery{Kind: KindParcel, Tier: TierEconomy, Country: "Germany", WeightKg: 3.2}
	if got := ChargeableWeight(q); got != 3.2 {
		t.Fatalf("expected declared weight to pass through, got %v", got)
	}
}
