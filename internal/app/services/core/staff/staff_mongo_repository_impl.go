package staff

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

type StaffMongoRepository struct {
	Collection *mongo.Collection
}

func NewStaffMongoRepository(db *mongo.Client, dbName string) contracts.StaffRepository {
	return &StaffMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionStaff),
	}
}

func (repo *StaffMongoRepository) FindByID(ctx context.Context, staffID string) (*models.Staff, error) {
	objectID, err := primitive.ObjectIDFromHex(staffID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var staffMember models.Staff
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&staffMember)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &staffMember, nil
}
