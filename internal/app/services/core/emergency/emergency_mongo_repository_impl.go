package emergency

import (
	"context"
	"time"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/dto/requests"
	"medicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type EmergencyCaseMongoRepository struct {
	Collection *mongo.Collection
}

func NewEmergencyCaseMongoRepository(db *mongo.Client, dbName string) contracts.EmergencyCaseRepository {
	return &EmergencyCaseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEmergencyCases),
	}
}

func (repo *EmergencyCaseMongoRepository) CreateCase(ctx context.Context, caseModel *models.EmergencyCase) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, caseModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *EmergencyCaseMongoRepository) FindByID(ctx context.Context, caseID string) (*models.EmergencyCase, error) {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var caseModel models.EmergencyCase
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&caseModel)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &caseModel, nil
}

func (repo *EmergencyCaseMongoRepository) FindAll(ctx context.Context, filter *requests.EmergencyCaseFilter) ([]models.EmergencyCase, int, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}
	if filter.TriageLevel != "" {
		query["triageLevel"] = filter.TriageLevel
	}

	total, err := repo.Collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBCountDocuments(err)
	}

	findOptions := options.Find().
		SetSort(bson.D{{Key: "arrivalTime", Value: -1}}).
		SetSkip(int64((filter.Page - 1) * filter.PageSize)).
		SetLimit(int64(filter.PageSize))

	cursor, err := repo.Collection.Find(ctx, query, findOptions)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBFindDocument(err)
	}

	var cases []models.EmergencyCase
	err = cursor.All(ctx, &cases)
	if err != nil {
		return nil, 0, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return cases, int(total), nil
}

func (repo *EmergencyCaseMongoRepository) FindActive(ctx context.Context) ([]models.EmergencyCase, error) {
	query := bson.M{"status": bson.M{"$in": []string{
		constvars.CaseStatusRegistered,
		constvars.CaseStatusTriage,
		constvars.CaseStatusInTreatment,
		constvars.CaseStatusObservation,
	}}}

	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var cases []models.EmergencyCase
	err = cursor.All(ctx, &cases)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return cases, nil
}

func (repo *EmergencyCaseMongoRepository) FindArrivedBetween(ctx context.Context, from, to time.Time) ([]models.EmergencyCase, error) {
	query := bson.M{"arrivalTime": bson.M{"$gte": from, "$lt": to}}

	cursor, err := repo.Collection.Find(ctx, query)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var cases []models.EmergencyCase
	err = cursor.All(ctx, &cases)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return cases, nil
}

func (repo *EmergencyCaseMongoRepository) UpdateFields(ctx context.Context, caseID string, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	setFields := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		setFields[key] = value
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": setFields})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

// AppendTriage pushes the audit entry and applies the companion field
// updates in a single document write, so concurrent triage updates cannot
// lose history entries or observe a half-applied triage change.
func (repo *EmergencyCaseMongoRepository) AppendTriage(ctx context.Context, caseID string, entry models.TriageHistoryEntry, fields map[string]interface{}) error {
	objectID, err := primitive.ObjectIDFromHex(caseID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	setFields := bson.M{"updatedAt": time.Now()}
	for key, value := range fields {
		setFields[key] = value
	}

	update := bson.M{
		"$push": bson.M{"triageHistory": entry},
		"$set":  setFields,
	}

	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
