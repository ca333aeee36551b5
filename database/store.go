package database

import (
	"database/sql"
	"fmt"
	"log"

	"github.com/DARK-V-98/flycargolanka-sub000/config"

	_ "github.com/go-sql-driver/mysql"
)

type Store struct {
	DB    *sql.DB
	Cache *RateCache
}

func NewStore(cfg config.Config) (*Store, error) {
	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("db connection failed: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db ping failed: %w", err)
	}

	store := &Store{DB: db, Cache: NewRateCache(cfg)}
	if err := store.ensureTables(); err != nil {
		return nil, err
	}

	log.Println("Connected to MySQL")
	return store, nil
}

func (s *Store) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

func (s *Store) ensureTables() error {
	if err := s.ensureBookingsTable(); err != nil {
		return err
	}
	if err := s.ensureRateCountriesTable(); err != nil {
		return err
	}
	if err := s.ensureWeightBandsTable(); err != nil {
		return err
	}
	if err := s.ensureNICVerificationsTable(); err != nil {
		return err
	}
	if err := s.ensureSpecialOffersTable(); err != nil {
		return err
	}
	return nil
}

func (s *Store) ensureBookingsTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS bookings (
			id VARCHAR(64) PRIMARY KEY,
			customer_name VARCHAR(255) NOT NULL,
			customer_email VARCHAR(255) NOT NULL,
			customer_phone VARCHAR(32) NOT NULL,
			customer_address VARCHAR(255) NOT NULL DEFAULT '',
			customer_city VARCHAR(100) NOT NULL DEFAULT '',
			nic_number VARCHAR(32) NOT NULL DEFAULT '',
			receiver_name VARCHAR(255) NOT NULL DEFAULT '',
			receiver_address VARCHAR(255) NOT NULL DEFAULT '',
			receiver_country VARCHAR(100) NOT NULL,
			receiver_phone VARCHAR(32) NOT NULL DEFAULT '',
			shipment_kind VARCHAR(16) NOT NULL,
			service_tier VARCHAR(16) NOT NULL,
			weight_kg DOUBLE NOT NULL,
			length_cm DOUBLE NOT NULL DEFAULT 0,
			width_cm DOUBLE NOT NULL DEFAULT 0,
			height_cm DOUBLE NOT NULL DEFAULT 0,
			chargeable_kg DOUBLE NOT NULL DEFAULT 0,
			band_label VARCHAR(64) NOT NULL DEFAULT '',
			estimate_lkr DOUBLE,
			payment_status VARCHAR(16) NOT NULL DEFAULT 'Pending',
			order_status VARCHAR(16) NOT NULL DEFAULT 'Pending',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_bookings_created (created_at)
		)
	`)
	return err
}

func (s *Store) ensureRateCountriesTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS rate_countries (
			name VARCHAR(100) PRIMARY KEY,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

func (s *Store) ensureWeightBandsTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS weight_bands (
			id BIGINT PRIMARY KEY AUTO_INCREMENT,
			country VARCHAR(100) NOT NULL,
			label VARCHAR(64) NOT NULL,
			weight_kg DOUBLE NOT NULL,
			nd_economy_price DOUBLE,
			nd_economy_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			nd_express_price DOUBLE,
			nd_express_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			doc_economy_price DOUBLE,
			doc_economy_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			doc_express_price DOUBLE,
			doc_express_enabled BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			UNIQUE KEY uniq_country_band (country, label),
			KEY idx_bands_country (country)
		)
	`)
	return err
}

func (s *Store) ensureNICVerificationsTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS nic_verifications (
			id VARCHAR(64) PRIMARY KEY,
			booking_id VARCHAR(64) NOT NULL DEFAULT '',
			nic_number VARCHAR(32) NOT NULL,
			front_file VARCHAR(128) NOT NULL DEFAULT '',
			back_file VARCHAR(128) NOT NULL DEFAULT '',
			status VARCHAR(16) NOT NULL DEFAULT 'Pending',
			note TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_nic_status (status)
		)
	`)
	return err
}

func (s *Store) ensureSpecialOffersTable() error {
	_, err := s.DB.Exec(`
		CREATE TABLE IF NOT EXISTS special_offers (
			id VARCHAR(64) PRIMARY KEY,
			country VARCHAR(100) NOT NULL DEFAULT '',
			title VARCHAR(255) NOT NULL,
			description TEXT,
			discount_pct DOUBLE NOT NULL DEFAULT 0,
			active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
			KEY idx_offers_active (active)
		)
	`)
	return err
}
