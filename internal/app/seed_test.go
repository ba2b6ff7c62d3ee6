package app

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDB struct {
	execs []string
}

func (f *fakeDB) Exec(_ context.Context, sql string, _ ...interface{}) (pgconn.CommandTag, error) {
	f.execs = append(f.execs, sql)
	return nil, nil
}

func (f *fakeDB) Query(_ context.Context, _ string, _ ...interface{}) (pgx.Rows, error) {
	return nil, nil
}

func (f *fakeDB) QueryRow(_ context.Context, _ string, _ ...interface{}) pgx.Row {
	return nil
}

func TestSeedDemoDataIsIdempotent(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, SeedDemoData(context.Background(), db))

	for _, q := range db.execs {
		if strings.Contains(q, "INSERT INTO") {
			assert.Contains(t, q, "ON CONFLICT (id) DO NOTHING", q)
		}
	}
}

func TestSeedDemoDataRealignsTestimonialSequence(t *testing.T) {
	db := &fakeDB{}
	require.NoError(t, SeedDemoData(context.Background(), db))

	lastInsert, setvalAt := -1, -1
	for i, q := range db.execs {
		if strings.Contains(q, "INSERT INTO testimonials") {
			lastInsert = i
		}
		if strings.Contains(q, "setval('testimonials_id_seq'") {
			setvalAt = i
		}
	}

	// Fixed-id inserts leave the serial sequence behind MAX(id); without
	// the setval the next API-created testimonial collides on the pkey.
	require.GreaterOrEqual(t, lastInsert, 0)
	require.Greater(t, setvalAt, lastInsert)

	setvalQuery := db.execs[setvalAt]
	assert.Contains(t, setvalQuery, "SELECT MAX(id) FROM testimonials")
}
