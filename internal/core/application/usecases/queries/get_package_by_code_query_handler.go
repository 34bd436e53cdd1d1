package queries

import (
	"context"
	"database/sql"
	"errors"

	"packagetracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetPackageByCodeQueryHandler reads the package detail view straight
// from the database, history included.
type GetPackageByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetPackageByCodeQueryHandler creates a handler for package detail
// queries.
func NewGetPackageByCodeQueryHandler(db *gorm.DB) GetPackageByCodeQueryHandler {
	return GetPackageByCodeQueryHandler{db: db}
}

// Handle executes the query. An unknown code fails with
// errs.ErrObjectNotFound. History rows come back in insertion order.
func (h GetPackageByCodeQueryHandler) Handle(
	ctx context.Context,
	query GetPackageByCodeQuery,
) (GetPackageByCodeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackageByCodeQueryResponse{}, err
	}

	var resp GetPackageByCodeQueryResponse
	var packageID int64

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			title,
			weight,
			sender_name,
			sender_email,
			delivered,
			posted_at
		FROM packages
		WHERE code = ?
	`, query.Code().String()).Row()

	err := row.Scan(
		&packageID,
		&resp.Code,
		&resp.Title,
		&resp.Weight,
		&resp.SenderName,
		&resp.SenderEmail,
		&resp.Delivered,
		&resp.PostedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetPackageByCodeQueryResponse{}, errs.NewObjectNotFoundError("code", query.Code().String())
	}
	if err != nil {
		return GetPackageByCodeQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			update_date
		FROM package_updates
		WHERE package_id = ?
		ORDER BY id
	`, packageID).Rows()
	if err != nil {
		return GetPackageByCodeQueryResponse{}, err
	}
	defer rows.Close()

	resp.Updates = make([]PackageUpdateResponse, 0)
	for rows.Next() {
		var update PackageUpdateResponse
		if err = rows.Scan(&update.ID, &update.Status, &update.UpdateDate); err != nil {
			return GetPackageByCodeQueryResponse{}, err
		}
		resp.Updates = append(resp.Updates, update)
	}

	if err = rows.Err(); err != nil {
		return GetPackageByCodeQueryResponse{}, err
	}

	return resp, nil
}
