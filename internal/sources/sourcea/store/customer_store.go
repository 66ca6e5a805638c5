package store

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
	"github.com/wso2/record-reconciliation-service/internal/sources"
	"github.com/wso2/record-reconciliation-service/internal/system/constants"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

const findByEmailQuery = `SELECT id, email, name, address, contract_start_date, contract_type, last_updated
	FROM customers WHERE email = $1`

const searchByNameQuery = `SELECT id, email, name, address, contract_start_date, contract_type, last_updated
	FROM customers WHERE name ILIKE '%' || $1 || '%' ORDER BY last_updated DESC`

// CustomerStore reads customer records from the relational source (source A).
// Lookup failures are logged and reported as absent so that the caller can
// degrade to a partial result instead of failing the whole request.
type CustomerStore struct {
	DB *sql.DB
}

var _ sources.Lookup = (*CustomerStore)(nil)

// NewCustomerStore creates a new CustomerStore backed by the given database handle.
func NewCustomerStore(db *sql.DB) *CustomerStore {
	return &CustomerStore{DB: db}
}

// FindByEmail returns the customer with the given email, or nil when no row
// matches or the query fails.
func (s *CustomerStore) FindByEmail(ctx context.Context, email string) (*model.Record, error) {

	logger := log.GetLogger()

	queryCtx, cancel := context.WithTimeout(ctx, constants.SourceQueryTimeout)
	defer cancel()

	row := s.DB.QueryRowContext(queryCtx, findByEmailQuery, email)
	record, err := scanCustomerRow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Debug("Source A query failed, treating record as absent",
			log.String("email", email), log.Error(err))
		return nil, nil
	}
	return record, nil
}

// SearchByName returns customers whose name contains the query,
// case-insensitively. A failed query yields an empty result.
func (s *CustomerStore) SearchByName(ctx context.Context, query string) ([]model.Record, error) {

	logger := log.GetLogger()

	queryCtx, cancel := context.WithTimeout(ctx, constants.SourceQueryTimeout)
	defer cancel()

	rows, err := s.DB.QueryContext(queryCtx, searchByNameQuery, query)
	if err != nil {
		logger.Debug("Source A search failed, returning empty result",
			log.String("query", query), log.Error(err))
		return []model.Record{}, nil
	}
	defer rows.Close()

	results := make([]model.Record, 0)
	for rows.Next() {
		record, err := scanCustomerRow(rows)
		if err != nil {
			logger.Debug("Skipping unreadable source A row", log.Error(err))
			continue
		}
		results = append(results, *record)
	}
	if err := rows.Err(); err != nil {
		logger.Debug("Source A search cursor failed, returning partial result",
			log.String("query", query), log.Error(err))
	}
	return results, nil
}

// IsHealthy reports whether the database responds to a ping.
func (s *CustomerStore) IsHealthy(ctx context.Context) bool {

	pingCtx, cancel := context.WithTimeout(ctx, constants.HealthProbeTimeout)
	defer cancel()

	if err := s.DB.PingContext(pingCtx); err != nil {
		log.GetLogger().Debug("Source A health probe failed", log.Error(err))
		return false
	}
	return true
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanCustomerRow(row rowScanner) (*model.Record, error) {

	var (
		id                int64
		email             string
		name              string
		address           sql.NullString
		contractStartDate sql.NullString
		contractType      sql.NullString
		lastUpdated       time.Time
	)

	if err := row.Scan(&id, &email, &name, &address, &contractStartDate,
		&contractType, &lastUpdated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, errors.Wrap(err, "failed to scan customer row")
	}

	// Source A carries no phone numbers.
	return model.NewRecord(
		strconv.FormatInt(id, 10),
		email,
		name,
		address.String,
		nil,
		nullableString(contractStartDate),
		nullableString(contractType),
		lastUpdated,
		model.SourceA,
	)
}

func nullableString(value sql.NullString) *string {
	if !value.Valid || value.String == "" {
		return nil
	}
	result := value.String
	return &result
}
