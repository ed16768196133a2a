package doctors

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type DoctorMongoRepository struct {
	Collection *mongo.Collection
}

func NewDoctorMongoRepository(db *mongo.Client, dbName string) contracts.DoctorRepository {
	return &DoctorMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionDoctors),
	}
}

func (repo *DoctorMongoRepository) FindAll(ctx context.Context) ([]models.Doctor, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := repo.Collection.Find(ctx, bson.M{}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	doctors := make([]models.Doctor, 0)
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	for i := range doctors {
		if err := doctors[i].Validate(); err != nil {
			return nil, exceptions.ErrMongoDBSchemaMismatch(err, constvars.MongoCollectionDoctors)
		}
	}
	return doctors, nil
}

func (repo *DoctorMongoRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	objectID, err := primitive.ObjectIDFromHex(doctorID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var doctor models.Doctor
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&doctor)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	if err := doctor.Validate(); err != nil {
		return nil, exceptions.ErrMongoDBSchemaMismatch(err, constvars.MongoCollectionDoctors)
	}
	return &doctor, nil
}

// Upsert replaces the doctor document with the same id, or inserts a new one
// when the id is zero.
func (repo *DoctorMongoRepository) Upsert(ctx context.Context, doctor *models.Doctor) (string, error) {
	if doctor.ID.IsZero() {
		result, err := repo.Collection.InsertOne(ctx, doctor)
		if err != nil {
			return "", exceptions.ErrMongoDBInsertDocument(err)
		}
		objectID, ok := result.InsertedID.(primitive.ObjectID)
		if !ok {
			return "", exceptions.ErrMongoDBInsertDocument(errors.New("inserted id is not an object id"))
		}
		doctor.ID = objectID
		return objectID.Hex(), nil
	}

	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": doctor.ID}, doctor, options.Replace().SetUpsert(true))
	if err != nil {
		return "", exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doctor.ID.Hex(), nil
}
