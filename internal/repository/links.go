package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"secondbrain/internal/entity"
	"secondbrain/pkg/logger/slogx"
)

const linkColumns = "id, source_id, target_id, type, created_at"

func (r *Repo) CreateLink(ctx context.Context, sourceID, targetID int64, linkType entity.LinkType) (entity.Link, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO links (source_id, target_id, type)
		VALUES ($1, $2, $3)
		RETURNING `+linkColumns,
		sourceID, targetID, linkType,
	)

	link, err := scanLink(row)
	if err != nil {
		return entity.Link{}, fmt.Errorf("create link: %w", err)
	}

	slogx.Debug(ctx, "success to create link", slogx.LinkID(link.ID))

	return link, nil
}

// DeleteLinksByNote removes every link touching the note on either side.
func (r *Repo) DeleteLinksByNote(ctx context.Context, noteID int64) error {
	if _, err := r.db.Exec(ctx,
		"DELETE FROM links WHERE source_id = $1 OR target_id = $1",
		noteID,
	); err != nil {
		return fmt.Errorf("delete links by note: %w", err)
	}

	return nil
}

func (r *Repo) ListLinks(ctx context.Context) ([]entity.Link, error) {
	rows, err := r.db.Query(ctx, "SELECT "+linkColumns+" FROM links")
	if err != nil {
		return nil, fmt.Errorf("list links: %w", err)
	}
	defer rows.Close()

	var links []entity.Link
	for rows.Next() {
		link, err := scanLink(rows)
		if err != nil {
			return nil, fmt.Errorf("list links: scan: %w", err)
		}
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list links: rows: %w", err)
	}

	return links, nil
}

func scanLink(row pgx.Row) (entity.Link, error) {
	var l entity.Link
	if err := row.Scan(&l.ID, &l.SourceID, &l.TargetID, &l.Type, &l.CreatedAt); err != nil {
		return entity.Link{}, err
	}

	return l, nil
}
