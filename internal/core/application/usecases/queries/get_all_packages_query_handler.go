package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllPackagesQueryHandler reads package summaries straight from the
// database. The update history is aggregated to a count; list views never
// need the events themselves.
type GetAllPackagesQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPackagesQueryHandler creates a handler for package list queries.
func NewGetAllPackagesQueryHandler(db *gorm.DB) GetAllPackagesQueryHandler {
	return GetAllPackagesQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by posting time, newest
// first, so the list view shows recent registrations on top.
func (h GetAllPackagesQueryHandler) Handle(
	ctx context.Context,
	query GetAllPackagesQuery,
) ([]GetAllPackagesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	packages := make([]GetAllPackagesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.code,
			p.title,
			p.weight,
			p.sender_name,
			p.sender_email,
			p.delivered,
			p.posted_at,
			COUNT(u.id) AS update_count
		FROM packages p
		LEFT JOIN package_updates u ON u.package_id = p.id
		GROUP BY p.id
		ORDER BY p.posted_at DESC, p.id DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllPackagesQueryResponse
		err = rows.Scan(
			&resp.Code,
			&resp.Title,
			&resp.Weight,
			&resp.SenderName,
			&resp.SenderEmail,
			&resp.Delivered,
			&resp.PostedAt,
			&resp.UpdateCount,
		)
		if err != nil {
			return nil, err
		}
		packages = append(packages, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packages, nil
}
