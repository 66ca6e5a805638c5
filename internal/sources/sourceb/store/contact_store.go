package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/wso2/record-reconciliation-service/internal/record/model"
	"github.com/wso2/record-reconciliation-service/internal/sources"
	"github.com/wso2/record-reconciliation-service/internal/system/cache"
	"github.com/wso2/record-reconciliation-service/internal/system/constants"
	"github.com/wso2/record-reconciliation-service/internal/system/log"
)

const cacheKeyPrefix = "contact:"

// contactDocument is the wire shape of a contact in the external service
// collection. Contacts never carry contract data.
type contactDocument struct {
	ContactID   string    `bson:"contact_id"`
	Email       string    `bson:"email"`
	FullName    string    `bson:"full_name"`
	Address     string    `bson:"address"`
	Phone       string    `bson:"phone,omitempty"`
	LastUpdated time.Time `bson:"last_updated"`
}

// ContactStore reads contact records from the external near-real-time service
// (source B). Single-record lookups are cached briefly to soften the load on
// the upstream service. Lookup failures are logged and reported as absent.
type ContactStore struct {
	collection *mongo.Collection
	cache      *cache.Cache
}

var _ sources.Lookup = (*ContactStore)(nil)

// NewContactStore creates a new ContactStore over the given collection.
func NewContactStore(db *mongo.Database, collectionName string, cacheTTL time.Duration) *ContactStore {

	if cacheTTL <= 0 {
		cacheTTL = constants.DefaultCacheTTL
	}
	return &ContactStore{
		collection: db.Collection(collectionName),
		cache:      cache.NewCache(cacheTTL),
	}
}

// FindByEmail returns the contact with the given email, or nil when no
// document matches or the query fails.
func (s *ContactStore) FindByEmail(ctx context.Context, email string) (*model.Record, error) {

	logger := log.GetLogger()

	if cached, found := s.cache.Get(cacheKeyPrefix + email); found {
		if record, ok := cached.(*model.Record); ok {
			return record, nil
		}
	}

	queryCtx, cancel := context.WithTimeout(ctx, constants.SourceQueryTimeout)
	defer cancel()

	var doc contactDocument
	err := s.collection.FindOne(queryCtx, bson.M{"email": email}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Debug("Source B query failed, treating record as absent",
			log.String("email", email), log.Error(err))
		return nil, nil
	}

	record, err := recordFromDocument(doc)
	if err != nil {
		logger.Debug("Skipping malformed source B document",
			log.String("email", email), log.Error(err))
		return nil, nil
	}

	s.cache.Set(cacheKeyPrefix+email, record)
	return record, nil
}

// SearchByName returns contacts whose full name contains the query,
// case-insensitively. A failed query yields an empty result.
func (s *ContactStore) SearchByName(ctx context.Context, query string) ([]model.Record, error) {

	logger := log.GetLogger()

	queryCtx, cancel := context.WithTimeout(ctx, constants.SourceQueryTimeout)
	defer cancel()

	filter := bson.M{"full_name": bson.M{"$regex": query, "$options": "i"}}
	cursor, err := s.collection.Find(queryCtx, filter)
	if err != nil {
		logger.Debug("Source B search failed, returning empty result",
			log.String("query", query), log.Error(err))
		return []model.Record{}, nil
	}
	defer cursor.Close(queryCtx)

	var docs []contactDocument
	if err := cursor.All(queryCtx, &docs); err != nil {
		logger.Debug("Source B search cursor failed, returning empty result",
			log.String("query", query), log.Error(err))
		return []model.Record{}, nil
	}

	results := make([]model.Record, 0, len(docs))
	for _, doc := range docs {
		record, err := recordFromDocument(doc)
		if err != nil {
			logger.Debug("Skipping malformed source B document", log.Error(err))
			continue
		}
		results = append(results, *record)
	}
	return results, nil
}

// IsHealthy reports whether the backing deployment responds to a ping.
func (s *ContactStore) IsHealthy(ctx context.Context) bool {

	pingCtx, cancel := context.WithTimeout(ctx, constants.HealthProbeTimeout)
	defer cancel()

	if err := s.collection.Database().Client().Ping(pingCtx, nil); err != nil {
		log.GetLogger().Debug("Source B health probe failed", log.Error(err))
		return false
	}
	return true
}

func recordFromDocument(doc contactDocument) (*model.Record, error) {

	var phone *string
	if doc.Phone != "" {
		value := doc.Phone
		phone = &value
	}

	// Contacts never carry contract data.
	return model.NewRecord(
		doc.ContactID,
		doc.Email,
		doc.FullName,
		doc.Address,
		phone,
		nil,
		nil,
		doc.LastUpdated,
		model.SourceB,
	)
}
