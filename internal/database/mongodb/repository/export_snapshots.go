package repository

import (
	"context"
	"fmt"
	"time"

	"winback/internal/core"
	client "winback/internal/database/client"
	"winback/internal/database/mongodb/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ExportSnapshotRepository struct {
	collection *mongo.Collection
}

func NewExportSnapshotRepository(mongoClient *client.MongoClient) *ExportSnapshotRepository {
	repository := &ExportSnapshotRepository{
		collection: mongoClient.Client().Database(string(core.MongoDBWinback)).Collection(string(core.MongoCollectionExportSnapshots)),
	}
	_ = repository.ensureIndexes(context.Background())
	return repository
}

func (repository *ExportSnapshotRepository) ensureIndexes(contextValue context.Context) error {
	ctx := contextValue

	_, _ = repository.collection.Indexes().CreateMany(ctx, model.ExportSnapshotIndexes)
	return nil
}

func (repository *ExportSnapshotRepository) Create(contextValue context.Context, snapshot *model.ExportSnapshot) (_ *model.ExportSnapshot, returnedError error) {
	nowUTC := time.Now().UTC()
	if snapshot.ID.IsZero() {
		snapshot.ID = primitive.NewObjectID()
	}
	snapshot.CreatedAt = nowUTC
	snapshot.UpdatedAt = nowUTC

	insertResult, insertError := repository.collection.InsertOne(contextValue, snapshot)
	if insertError != nil {
		return nil, insertError
	}
	objectID, ok := insertResult.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected InsertedID type: %T", insertResult.InsertedID)
	}
	snapshot.ID = objectID
	return snapshot, nil
}

func (repository *ExportSnapshotRepository) GetByID(contextValue context.Context, snapshotIdentifier primitive.ObjectID) (_ *model.ExportSnapshot, returnedError error) {
	var snapshot model.ExportSnapshot
	if returnedError = repository.collection.FindOne(contextValue, bson.M{"_id": snapshotIdentifier}).Decode(&snapshot); returnedError != nil {
		return nil, returnedError
	}
	return &snapshot, nil
}

// ListByEmail 依建立時間新到舊列出某使用者的快照
func (repository *ExportSnapshotRepository) ListByEmail(contextValue context.Context, email string, limit int64) (_ []*model.ExportSnapshot, returnedError error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if limit > 0 {
		findOptions = findOptions.SetLimit(limit)
	}
	cursor, findError := repository.collection.Find(contextValue, bson.M{"email": email}, findOptions)
	if findError != nil {
		return nil, findError
	}
	defer cursor.Close(contextValue)

	var results []*model.ExportSnapshot
	for cursor.Next(contextValue) {
		var snapshot model.ExportSnapshot
		if decodeError := cursor.Decode(&snapshot); decodeError != nil {
			return nil, decodeError
		}
		results = append(results, &snapshot)
	}
	if cursorError := cursor.Err(); cursorError != nil {
		return nil, cursorError
	}

	return results, nil
}

func (repository *ExportSnapshotRepository) DeleteByID(contextValue context.Context, snapshotIdentifier primitive.ObjectID) (returnedError error) {
	_, returnedError = repository.collection.DeleteOne(contextValue, bson.M{"_id": snapshotIdentifier})
	return returnedError
}
