package storage

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type kvItem struct {
	Key   string `dynamodbav:"k"`
	Value string `dynamodbav:"v"`
}

// DynamoStore implements the storage port on a single DynamoDB table.
//
// Table requirements:
//   - PK: k (string)
//
// Each key holds a whole serialized collection, matching the
// read-modify-write persistence model of the repositories.

type DynamoStore struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ Store = (*DynamoStore)(nil)

func NewDynamoStore(ddb *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{ddb: ddb, tableName: tableName}
}

func (s *DynamoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	out, err := s.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			"k": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, err
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}

	var it kvItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return nil, err
	}
	return json.RawMessage(it.Value), nil
}

func (s *DynamoStore) Put(ctx context.Context, key string, value json.RawMessage) error {
	av, err := attributevalue.MarshalMap(kvItem{Key: key, Value: string(value)})
	if err != nil {
		return err
	}

	_, err = s.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      av,
	})
	return err
}
