package patients

import (
	"context"

	"medicore-service/internal/app/contracts"
	"medicore-service/internal/app/models"
	"medicore-service/internal/pkg/constvars"
	"medicore-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	objectID, err := primitive.ObjectIDFromHex(patientID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var patient models.Patient
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
