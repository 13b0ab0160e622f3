package database

import (
	"context"

	"github.com/ingemar0720/lead-seeder/dbmodel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const insertLeadQuery = "INSERT INTO leads(full_name, email, phone) VALUES ($1,$2,$3)"

// InsertLead writes one lead as its own implicit transaction.
func InsertLead(ctx context.Context, lead dbmodel.DBModelLead, db sqlx.ExecerContext) error {
	_, err := db.ExecContext(ctx, insertLeadQuery, lead.Args()...)
	if err != nil {
		return errors.Wrapf(err, "fail to insert into table leads")
	}
	return nil
}

// CountLeads returns the number of rows currently in the leads table.
func CountLeads(ctx context.Context, db sqlx.QueryerContext) (int64, error) {
	var n int64
	if err := sqlx.GetContext(ctx, db, &n, "SELECT count(*) FROM leads"); err != nil {
		return 0, errors.Wrapf(err, "fail to count rows of table leads")
	}
	return n, nil
}
