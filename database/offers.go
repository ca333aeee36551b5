package database

import (
	"database/sql"
	"strings"
	"time"
)

type SpecialOffer struct {
	ID          string
	Country     string
	Title       string
	Description string
	DiscountPct float64
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (s *Store) SaveOffer(o SpecialOffer) error {
	_, err := s.DB.Exec(`
		INSERT INTO special_offers (id, country, title, description, discount_pct, active)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			country = VALUES(country),
			title = VALUES(title),
			description = VALUES(description),
			discount_pct = VALUES(discount_pct),
			active = VALUES(active)
	`, o.ID, strings.TrimSpace(o.Country), strings.TrimSpace(o.Title), o.Description, o.DiscountPct, o.Active)
	return err
}

func (s *Store) LoadOffers(activeOnly bool) ([]SpecialOffer, error) {
	query := `
		SELECT id, country, title, description, discount_pct, active, created_at, updated_at
		FROM special_offers
	`
	if activeOnly {
		query += " WHERE active = TRUE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := []SpecialOffer{}
	for rows.Next() {
		var o SpecialOffer
		var description sql.NullString
		if err := rows.Scan(&o.ID, &o.Country, &o.Title, &description, &o.DiscountPct, &o.Active, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		if description.Valid {
			o.Description = description.String
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

func (s *Store) DeleteOffer(id string) error {
	_, err := s.DB.Exec(`DELETE FROM special_offers WHERE id = ?`, id)
	return err
}
