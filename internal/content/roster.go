package content

import (
	"context"
	"fmt"

	"github.com/ziadkadry99/orgsite/internal/db"
)

// LoadRoster reads officers and their social links from d, in
// position_order.
func LoadRoster(ctx context.Context, d *db.DB) ([]Officer, error) {
	rows, err := d.QueryContext(ctx,
		`SELECT id, name, position, email, description, img_path, is_dev
		 FROM officers ORDER BY position_order, id`)
	if err != nil {
		return nil, fmt.Errorf("listing officers: %w", err)
	}
	defer rows.Close()

	var officers []Officer
	index := make(map[int64]int)
	for rows.Next() {
		var (
			id int64
			o  Officer
		)
		if err := rows.Scan(&id, &o.Name, &o.Position, &o.Email, &o.Description, &o.ImgPath, &o.IsDev); err != nil {
			return nil, fmt.Errorf("scanning officer: %w", err)
		}
		index[id] = len(officers)
		officers = append(officers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	socials, err := d.QueryContext(ctx,
		`SELECT officer_id, name, url FROM officer_socials ORDER BY officer_id, sort`)
	if err != nil {
		return nil, fmt.Errorf("listing socials: %w", err)
	}
	defer socials.Close()

	for socials.Next() {
		var (
			officerID int64
			s         Social
		)
		if err := socials.Scan(&officerID, &s.Name, &s.URL); err != nil {
			return nil, fmt.Errorf("scanning social: %w", err)
		}
		if i, ok := index[officerID]; ok {
			officers[i].Socials = append(officers[i].Socials, s)
		}
	}
	return officers, socials.Err()
}

// SaveRoster replaces the roster in d with officers, keeping their order.
// It runs in one transaction.
func SaveRoster(ctx context.Context, d *db.DB, officers []Officer) error {
	tx, err := d.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM officer_socials`); err != nil {
		return fmt.Errorf("clearing socials: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM officers`); err != nil {
		return fmt.Errorf("clearing officers: %w", err)
	}

	for i, o := range officers {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO officers (position_order, name, position, email, description, img_path, is_dev)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			i, o.Name, o.Position, o.Email, o.Description, o.ImgPath, o.IsDev)
		if err != nil {
			return fmt.Errorf("inserting officer %q: %w", o.Name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		for j, s := range o.Socials {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO officer_socials (officer_id, sort, name, url) VALUES (?, ?, ?, ?)`,
				id, j, s.Name, s.URL); err != nil {
				return fmt.Errorf("inserting social %q of %q: %w", s.Name, o.Name, err)
			}
		}
	}
	return tx.Commit()
}
