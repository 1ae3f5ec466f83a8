// Package store archives fetched transfer batches in MongoDB.
//
// The archive keeps one document per wallet holding the latest fetched
// batch. It lets the viewer and the score command work offline once a
// wallet has been fetched, and gives the HTTP server a shared backend.
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/walletscope/walletscope/pkg/errors"
	"github.com/walletscope/walletscope/pkg/model"
)

const (
	// DefaultDatabase is the database name used when none is configured.
	DefaultDatabase = "walletscope"

	collectionName = "transfer_batches"
	connectTimeout = 5 * time.Second
)

// Batch is one archived fetch result for a wallet.
type Batch struct {
	Wallet    string                 `bson:"wallet" json:"wallet"`
	FetchedAt time.Time              `bson:"fetched_at" json:"fetched_at"`
	Records   []model.TransferRecord `bson:"records" json:"records"`
}

// Archive is a MongoDB-backed batch store.
type Archive struct {
	client *mongo.Client
	col    *mongo.Collection
}

// NewArchive connects to MongoDB and verifies the connection with a ping.
// An empty database selects [DefaultDatabase].
func NewArchive(ctx context.Context, uri, database string) (*Archive, error) {
	if database == "" {
		database = DefaultDatabase
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "connecting to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "pinging mongodb")
	}

	return &Archive{
		client: client,
		col:    client.Database(database).Collection(collectionName),
	}, nil
}

// Save stores the batch for the wallet, replacing any previous one.
func (a *Archive) Save(ctx context.Context, wallet string, records []model.TransferRecord) error {
	batch := Batch{
		Wallet:    wallet,
		FetchedAt: time.Now().UTC(),
		Records:   records,
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := a.col.ReplaceOne(ctx, bson.M{"wallet": wallet}, batch, opts); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "saving batch for %s", wallet)
	}
	return nil
}

// Load returns the archived batch for the wallet.
// Returns a WALLET_NOT_FOUND error if the wallet was never archived.
func (a *Archive) Load(ctx context.Context, wallet string) (*Batch, error) {
	var batch Batch
	err := a.col.FindOne(ctx, bson.M{"wallet": wallet}).Decode(&batch)
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeWalletNotFound, "no archived batch for %s", wallet)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "loading batch for %s", wallet)
	}
	return &batch, nil
}

// Wallets lists all archived wallet addresses.
func (a *Archive) Wallets(ctx context.Context) ([]string, error) {
	values, err := a.col.Distinct(ctx, "wallet", bson.M{})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "listing archived wallets")
	}

	wallets := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			wallets = append(wallets, s)
		}
	}
	return wallets, nil
}

// Delete removes the archived batch for the wallet. Deleting a wallet that
// was never archived is not an error.
func (a *Archive) Delete(ctx context.Context, wallet string) error {
	if _, err := a.col.DeleteOne(ctx, bson.M{"wallet": wallet}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting batch for %s", wallet)
	}
	return nil
}

// Close disconnects from MongoDB.
func (a *Archive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}
