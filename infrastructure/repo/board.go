// Package repo persists the service's aggregates in MongoDB. Each repository
// wraps one collection and bounds every call with a short timeout.
package repo

import (
	"context"
	"errors"
	"time"

	dmn "github.com/aulamaze/aulamaze-api/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BoardRepo handles the persistence of vocabulary boards.
type BoardRepo struct {
	collection *mongo.Collection
}

// NewBoardRepo creates a new BoardRepo with the given MongoDB client, database name, and collection name.
func NewBoardRepo(client *mongo.Client, dbName, collectionName string) *BoardRepo {
	return &BoardRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Save inserts or updates a board in the repository.
func (b *BoardRepo) Save(board *dmn.Board) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	filter := bson.M{"_id": board.ID}
	update := bson.M{
		"$set": bson.M{
			"ownerId":   board.OwnerID,
			"name":      board.Name,
			"rows":      board.Rows,
			"cols":      board.Cols,
			"cells":     board.Cells,
			"updatedAt": time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	if _, err := b.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByID retrieves a board by its ID.
func (b *BoardRepo) ByID(id uuid.UUID) (*dmn.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	var board dmn.Board
	if err := b.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&board); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &board, nil
}

// ByOwner retrieves every board owned by the given user.
func (b *BoardRepo) ByOwner(ownerID uuid.UUID) ([]*dmn.Board, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cursor, err := b.collection.Find(ctx, bson.M{"ownerId": ownerID})
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var boards []*dmn.Board
	if err := cursor.All(ctx, &boards); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return boards, nil
}

// Delete removes the board with the given ID.
func (b *BoardRepo) Delete(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	result, err := b.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
