package service

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/DARK-V-98/flycargolanka-sub000/database"
)

// RateCurrency is the only currency rates are quoted in.
const RateCurrency = "LKR"

// volumetricDivisor converts cm³ to kg for bulky-but-light parcels.
const volumetricDivisor = 5000

// weightTolerance hides sub-gram float noise when deciding whether the
// chargeable weight differs from the declared weight.
const weightTolerance = 0.001

type ShipmentKind string

const (
	KindParcel   ShipmentKind = "parcel"
	KindDocument ShipmentKind = "document"
)

type ServiceTier string

const (
	TierEconomy ServiceTier = "economy"
	TierExpress ServiceTier = "express"
)

// RateCell is one priced service inside a weight band. Enabled=false means
// the service is not offered for the band; Enabled=true with a nil price
// means the admin never finished configuring it. The two are distinct.
type RateCell struct {
	Price   *float64
	Enabled bool
}

type WeightBand struct {
	Label    string
	WeightKg float64

	ParcelEconomy   RateCell
	ParcelExpress   RateCell
	DocumentEconomy RateCell
	DocumentExpress RateCell
}

// Cell returns the priced service for a shipment kind and tier.
func (b WeightBand) Cell(kind ShipmentKind, tier ServiceTier) RateCell {
	if kind == KindDocument {
		if tier == TierExpress {
			return b.DocumentExpress
		}
		return b.DocumentEconomy
	}
	if tier == TierExpress {
		return b.ParcelExpress
	}
	return b.ParcelEconomy
}

type RateTable struct {
	Country string
	Bands   []WeightBand
}

type RateQuery struct {
	Kind     ShipmentKind
	Tier     ServiceTier
	Country  string
	WeightKg float64
	LengthCm float64
	WidthCm  float64
	HeightCm float64
}

type RateFailure string

const (
	FailureDestinationNotFound RateFailure = "destination_not_found"
	FailureNoRatesConfigured   RateFailure = "no_rates_configured"
	FailureServiceUnavailable  RateFailure = "service_unavailable"
	FailurePriceNotConfigured  RateFailure = "price_not_configured"
)

// Message renders the failure for display next to the cost estimate.
func (f RateFailure) Message() string {
	switch f {
	case FailureDestinationNotFound:
		return "We do not ship to this destination yet."
	case FailureNoRatesConfigured:
		return "No rates have been configured for this destination."
	case FailureServiceUnavailable:
		return "This service is not available for the selected weight and destination."
	case FailurePriceNotConfigured:
		return "The rate for this service has not been set. Please contact support."
	}
	return ""
}

// RateResult is either a priced quote or a typed failure. Callers branch on
// OK(), never on errors: a calculation failure is a domain outcome.
type RateResult struct {
	Price        float64
	Currency     string
	BandLabel    string
	WeightKg     float64
	ChargeableKg float64
	Overflow     bool
	Failure      RateFailure
}

func (r RateResult) OK() bool {
	return r.Failure == ""
}

// VolumetricApplied reports whether the chargeable weight meaningfully
// exceeds the declared weight, so callers can explain the price.
func (r RateResult) VolumetricApplied() bool {
	return r.ChargeableKg-r.WeightKg >= weightTolerance
}

// ErrInvalidRequest marks caller mistakes so handlers can map them to 400
// instead of 500.
var ErrInvalidRequest = errors.New("invalid request")

// ValidateQuery rejects malformed queries before they reach the calculator.
// Dimensions must be supplied all together or not at all.
func ValidateQuery(q RateQuery) error {
	if q.Kind != KindParcel && q.Kind != KindDocument {
		return fmt.Errorf("%w: invalid shipment kind %q", ErrInvalidRequest, q.Kind)
	}
	if q.Tier != TierEconomy && q.Tier != TierExpress {
		return fmt.Errorf("%w: invalid service tier %q", ErrInvalidRequest, q.Tier)
	}
	if strings.TrimSpace(q.Country) == "" {
		return fmt.Errorf("%w: destination country is required", ErrInvalidRequest)
	}
	if q.WeightKg <= 0 {
		return fmt.Errorf("%w: weight must be a positive number", ErrInvalidRequest)
	}
	if q.LengthCm < 0 || q.WidthCm < 0 || q.HeightCm < 0 {
		return fmt.Errorf("%w: dimensions cannot be negative", ErrInvalidRequest)
	}
	provided := 0
	for _, d := range []float64{q.LengthCm, q.WidthCm, q.HeightCm} {
		if d > 0 {
			provided++
		}
	}
	if provided != 0 && provided != 3 {
		return fmt.Errorf("%w: provide all three dimensions or none", ErrInvalidRequest)
	}
	return nil
}

// ChargeableWeight returns the greater of the declared and volumetric
// weight. Volumetric weight only applies when all three dimensions are
// present and positive.
func ChargeableWeight(q RateQuery) float64 {
	if q.LengthCm > 0 && q.WidthCm > 0 && q.HeightCm > 0 {
		volumetric := q.LengthCm * q.WidthCm * q.HeightCm / volumetricDivisor
		return math.Max(q.WeightKg, volumetric)
	}
	return q.WeightKg
}

// CalculateRate resolves a query against the destination's rate table.
// A nil table means the destination is unknown. The function is pure:
// identical inputs always produce identical results.
func CalculateRate(q RateQuery, table *RateTable) RateResult {
	chargeable := ChargeableWeight(q)
	result := RateResult{
		Currency:     RateCurrency,
		WeightKg:     q.WeightKg,
		ChargeableKg: chargeable,
	}

	if table == nil {
		result.Failure = FailureDestinationNotFound
		return result
	}
	if len(table.Bands) == 0 {
		result.Failure = FailureNoRatesConfigured
		return result
	}

	// Bands are stored per country in ascending weight order, but the
	// store is not trusted to return them that way.
	bands := make([]WeightBand, len(table.Bands))
	copy(bands, table.Bands)
	sort.SliceStable(bands, func(i, j int) bool {
		return bands[i].WeightKg < bands[j].WeightKg
	})

	selected := bands[len(bands)-1]
	overflow := true
	for _, band := range bands {
		if chargeable <= band.WeightKg {
			selected = band
			overflow = false
			break
		}
	}

	cell := selected.Cell(q.Kind, q.Tier)
	if !cell.Enabled {
		result.Failure = FailureServiceUnavailable
		return result
	}
	if cell.Price == nil {
		result.Failure = FailurePriceNotConfigured
		return result
	}

	result.Price = *cell.Price
	result.BandLabel = selected.Label
	result.Overflow = overflow
	return result
}

// RateTableFromRecords converts stored band rows into the typed rate table,
// failing fast on shape problems instead of letting them reach the
// calculator.
func RateTableFromRecords(country string, records []database.WeightBandRecord) (*RateTable, error) {
	table := &RateTable{Country: country, Bands: make([]WeightBand, 0, len(records))}
	for _, rec := range records {
		if strings.TrimSpace(rec.Label) == "" {
			return nil, fmt.Errorf("weight band %d for %s has no label", rec.ID, country)
		}
		if rec.WeightKg <= 0 {
			return nil, fmt.Errorf("weight band %q for %s has non-positive threshold %v", rec.Label, country, rec.WeightKg)
		}
		table.Bands = append(table.Bands, WeightBand{
			Label:           rec.Label,
			WeightKg:        rec.WeightKg,
			ParcelEconomy:   cellFromRecord(rec.NdEconomyPrice, rec.NdEconomyEnabled),
			ParcelExpress:   cellFromRecord(rec.NdExpressPrice, rec.NdExpressEnabled),
			DocumentEconomy: cellFromRecord(rec.DocEconomyPrice, rec.DocEconomyEnabled),
			DocumentExpress: cellFromRecord(rec.DocExpressPrice, rec.DocExpressEnabled),
		})
	}
	return table, nil
}

func cellFromRecord(price sql.NullFloat64, enabled bool) RateCell {
	cell := RateCell{Enabled: enabled}
	if price.Valid {
		p := price.Float64
		cell.Price = &p
	}
	return cell
}
