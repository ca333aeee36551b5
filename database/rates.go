package database

import (
	"context"
	"database/sql"
	"log"
	"strings"
	"time"
)

// WeightBandRecord is a stored rate row: one weight band for one country,
// with a (price, enabled) pair per {parcel, document} x {economy, express}
// cell. "nd" columns are the non-document (parcel) services.
type WeightBandRecord struct {
	ID                int64
	Country           string
	Label             string
	WeightKg          float64
	NdEconomyPrice    sql.NullFloat64
	NdEconomyEnabled  bool
	NdExpressPrice    sql.NullFloat64
	NdExpressEnabled  bool
	DocEconomyPrice   sql.NullFloat64
	DocEconomyEnabled bool
	DocExpressPrice   sql.NullFloat64
	DocExpressEnabled bool
	UpdatedAt         time.Time
}

func (s *Store) SaveCountry(name string) error {
	name = strings.TrimSpace(name)
	_, err := s.DB.Exec(`
		INSERT INTO rate_countries (name)
		VALUES (?)
		ON DUPLICATE KEY UPDATE name = VALUES(name)
	`, name)
	return err
}

func (s *Store) ListCountries() ([]string, error) {
	rows, err := s.DB.Query(`SELECT name FROM rate_countries ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var countries []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		countries = append(countries, name)
	}
	return countries, rows.Err()
}

func (s *Store) CountryExists(name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}
	var found string
	err := s.DB.QueryRow(`SELECT name FROM rate_countries WHERE name = ?`, name).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// LoadWeightBands returns the configured bands for a country, consulting
// the Redis cache first when one is configured. Row order is not
// guaranteed; the rate calculator sorts defensively.
func (s *Store) LoadWeightBands(ctx context.Context, country string) ([]WeightBandRecord, error) {
	country = strings.TrimSpace(country)

	if cached, ok := s.Cache.GetBands(ctx, country); ok {
		return cached, nil
	}

	rows, err := s.DB.Query(`
		SELECT id, country, label, weight_kg,
			nd_economy_price, nd_economy_enabled,
			nd_express_price, nd_express_enabled,
			doc_economy_price, doc_economy_enabled,
			doc_express_price, doc_express_enabled,
			updated_at
		FROM weight_bands
		WHERE country = ?
	`, country)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []WeightBandRecord{}
	for rows.Next() {
		var rec WeightBandRecord
		if err := rows.Scan(
			&rec.ID, &rec.Country, &rec.Label, &rec.WeightKg,
			&rec.NdEconomyPrice, &rec.NdEconomyEnabled,
			&rec.NdExpressPrice, &rec.NdExpressEnabled,
			&rec.DocEconomyPrice, &rec.DocEconomyEnabled,
			&rec.DocExpressPrice, &rec.DocExpressEnabled,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := s.Cache.SetBands(ctx, country, records); err != nil {
		log.Println("failed to cache weight bands:", err)
	}
	return records, nil
}

func (s *Store) SaveWeightBand(ctx context.Context, rec WeightBandRecord) error {
	_, err := s.DB.Exec(`
		INSERT INTO weight_bands (
			country, label, weight_kg,
			nd_economy_price, nd_economy_enabled,
			nd_express_price, nd_express_enabled,
			doc_economy_price, doc_economy_enabled,
			doc_express_price, doc_express_enabled
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			weight_kg = VALUES(weight_kg),
			nd_economy_price = VALUES(nd_economy_price),
			nd_economy_enabled = VALUES(nd_economy_enabled),
			nd_express_price = VALUES(nd_express_price),
			nd_express_enabled = VALUES(nd_express_enabled),
			doc_economy_price = VALUES(doc_economy_price),
			doc_economy_enabled = VALUES(doc_economy_enabled),
			doc_express_price = VALUES(doc_express_price),
			doc_express_enabled = VALUES(doc_express_enabled)
	`, strings.TrimSpace(rec.Country), strings.TrimSpace(rec.Label), rec.WeightKg,
		rec.NdEconomyPrice, rec.NdEconomyEnabled,
		rec.NdExpressPrice, rec.NdExpressEnabled,
		rec.DocEconomyPrice, rec.DocEconomyEnabled,
		rec.DocExpressPrice, rec.DocExpressEnabled)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, rec.Country)
	return nil
}

func (s *Store) DeleteWeightBand(ctx context.Context, id int64, country string) error {
	_, err := s.DB.Exec(`DELETE FROM weight_bands WHERE id = ?`, id)
	if err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, country)
	return nil
}
