package database

import (
	"database/sql"
	"errors"
	"strings"
	"time"
)

// NIC verification statuses.
const (
	NICPending  = "Pending"
	NICApproved = "Approved"
	NICRejected = "Rejected"
)

var ErrNICNotFound = errors.New("nic verification not found")

type NICVerification struct {
	ID        string
	BookingID string
	NICNumber string
	FrontFile string
	BackFile  string
	Status    string
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (s *Store) SaveNICVerification(v NICVerification) error {
	_, err := s.DB.Exec(`
		INSERT INTO nic_verifications (id, booking_id, nic_number, front_file, back_file, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			nic_number = VALUES(nic_number),
			front_file = VALUES(front_file),
			back_file = VALUES(back_file),
			status = VALUES(status)
	`, v.ID, v.BookingID, v.NICNumber, v.FrontFile, v.BackFile, v.Status)
	return err
}

func (s *Store) LoadNICVerification(id string) (NICVerification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return NICVerification{}, ErrNICNotFound
	}
	var v NICVerification
	var note sql.NullString
	err := s.DB.QueryRow(`
		SELECT id, booking_id, nic_number, front_file, back_file, status, note, created_at, updated_at
		FROM nic_verifications
		WHERE id = ?
	`, id).Scan(&v.ID, &v.BookingID, &v.NICNumber, &v.FrontFile, &v.BackFile, &v.Status, &note, &v.CreatedAt, &v.UpdatedAt)
	if err == sql.ErrNoRows {
		return NICVerification{}, ErrNICNotFound
	}
	if err != nil {
		return NICVerification{}, err
	}
	if note.Valid {
		v.Note = note.String
	}
	return v, nil
}

func (s *Store) LoadPendingNICVerifications(limit int) ([]NICVerification, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.DB.Query(`
		SELECT id, booking_id, nic_number, front_file, back_file, status, note, created_at, updated_at
		FROM nic_verifications
		WHERE status = ?
		ORDER BY created_at
		LIMIT ?
	`, NICPending, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	verifications := []NICVerification{}
	for rows.Next() {
		var v NICVerification
		var note sql.NullString
		if err := rows.Scan(&v.ID, &v.BookingID, &v.NICNumber, &v.FrontFile, &v.BackFile, &v.Status, &note, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		if note.Valid {
			v.Note = note.String
		}
		verifications = append(verifications, v)
	}
	return verifications, rows.Err()
}

func (s *Store) UpdateNICStatus(id string, status string, note string) error {
	result, err := s.DB.Exec(`
		UPDATE nic_verifications
		SET status = ?, note = ?
		WHERE id = ?
	`, status, note, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if _, loadErr := s.LoadNICVerification(id); loadErr != nil {
			return loadErr
		}
	}
	return nil
}
