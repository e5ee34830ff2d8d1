package emergency

import (
	"context"
	"fmt"
	"time"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SequenceMongoRepository struct {
	Collection *mongo.Collection
}

func NewSequenceMongoRepository(db *mongo.Client, dbName string) contracts.SequenceRepository {
	return &SequenceMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCounters),
	}
}

type counterDocument struct {
	ID       string `bson:"_id"`
	Sequence int    `bson:"sequence"`
}

// NextCaseNumber returns ER + YYYYMMDD + a 4-digit sequence. The counter
// document is keyed by the date-scoped prefix, so the sequence resets daily
// without a maintenance job, and the $inc upsert keeps concurrent callers
// from ever drawing the same number.
func (repo *SequenceMongoRepository) NextCaseNumber(ctx context.Context, at time.Time) (string, error) {
	prefix := constvars.CaseNumberPrefix + at.Format(constvars.CaseNumberDateLayout)

	findOptions := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter counterDocument
	err := repo.Collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": prefix},
		bson.M{"$inc": bson.M{"sequence": 1}},
		findOptions,
	).Decode(&counter)
	if err != nil && err != mongo.ErrNoDocuments {
		return "", exceptions.ErrMongoDBGenerateSequence(err)
	}

	return fmt.Sprintf(constvars.CaseNumberSequenceFormat, prefix, counter.Sequence), nil
}
