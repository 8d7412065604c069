package store

import (
	"context"
	"fmt"
	"time"
)

// ContactMessage is a contact form submission.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Notified  bool      `json:"notified"`
	CreatedAt time.Time `json:"created_at"`
}

// SaveContact stores m and returns its id.
func (s *Store) SaveContact(ctx context.Context, m ContactMessage) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO contact_messages (name, email, message, type, notified, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, m.Name, m.Email, m.Message, m.Type, m.Notified, formatTime(m.CreatedAt))
	if err != nil {
		return 0, fmt.Errorf("save contact: %w", err)
	}
	return res.LastInsertId()
}

// MarkContactNotified records that the notification mail went out.
func (s *Store) MarkContactNotified(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `UPDATE contact_messages SET notified = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("mark contact %d notified: %w", id, err)
	}
	return expectOne(res.RowsAffected())
}

// ListContacts returns up to limit submissions, newest first.
func (s *Store) ListContacts(ctx context.Context, limit int) ([]ContactMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, email, message, type, notified, created_at
		FROM contact_messages
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var out []ContactMessage
	for rows.Next() {
		var m ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Message, &m.Type, &m.Notified, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteContact removes a submission. It returns ErrNotFound for unknown ids.
func (s *Store) DeleteContact(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contact_messages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete contact %d: %w", id, err)
	}
	return expectOne(res.RowsAffected())
}

func expectOne(n int64, err error) error {
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
