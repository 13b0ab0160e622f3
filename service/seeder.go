package seeder

import (
	"context"

	"github.com/ingemar0720/lead-seeder/database"
	"github.com/ingemar0720/lead-seeder/generator"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const DefaultCount = 10

type Seeder struct {
	DB    *sqlx.DB
	Gen   *generator.Generator
	Log   *zap.Logger
	Count int
}

// Run inserts Count freshly generated leads one after another and returns how
// many were written. The first failing insert stops the run; rows inserted
// before it stay committed.
func (s *Seeder) Run(ctx context.Context) (int, error) {
	for i := 0; i < s.Count; i++ {
		lead := s.Gen.Lead()
		if err := database.InsertLead(ctx, lead, s.DB); err != nil {
			return i, errors.Wrapf(err, "fail to insert lead %d of %d", i+1, s.Count)
		}
		s.Log.Debug("inserted lead", zap.Int("n", i+1), zap.String("email", lead.Email))
	}
	return s.Count, nil
}
