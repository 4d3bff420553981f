package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func newMock(t *testing.T) *mtest.T {
	return mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
}

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func productDoc(id primitive.ObjectID, sku string, price float64, stock int32) bson.D {
	created := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: "Product " + sku},
		{Key: "sku", Value: sku},
		{Key: "price", Value: price},
		{Key: "category", Value: "Tools"},
		{Key: "manufacturer", Value: bson.D{
			{Key: "name", Value: "Acme"},
			{Key: "country", Value: "US"},
			{Key: "contact", Value: bson.D{
				{Key: "name", Value: "Jane"},
				{Key: "email", Value: "jane@acme.test"},
				{Key: "phone", Value: "555-0100"},
			}},
		}},
		{Key: "amountInStock", Value: stock},
		{Key: "createdAt", Value: primitive.NewDateTimeFromTime(created)},
		{Key: "updatedAt", Value: primitive.NewDateTimeFromTime(created)},
	}
}

// sentCommand returns the first command the repository sent to the mock server.
func sentCommand(mt *mtest.T) bson.Raw {
	mt.Helper()
	evt := mt.GetStartedEvent()
	require.NotNil(mt, evt, "no command was sent")
	return evt.Command
}

// docAt decodes the sub-document at path, keeping key order.
func docAt(mt *mtest.T, cmd bson.Raw, path ...string) bson.D {
	mt.Helper()
	var d bson.D
	require.NoError(mt, cmd.Lookup(path...).Unmarshal(&d))
	return d
}

func stringsAt(mt *mtest.T, cmd bson.Raw, path ...string) []string {
	mt.Helper()
	values, err := cmd.Lookup(path...).Array().Values()
	require.NoError(mt, err)
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, v.StringValue())
	}
	return out
}
