package repository

import (
	"context"
	"encoding/json"
	"time"

	"webquote/internal/domain/draft"
	"webquote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultDraftsTableName = "offer_drafts"

// draftItem is the stored row: the snapshot travels as a JSON document so the
// additive-only wire shape is exactly what lands in the table.
type draftItem struct {
	ID        string `dynamodbav:"id"`
	Snapshot  string `dynamodbav:"snapshot"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// DraftDynamoRepository persists offer draft snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string), the opaque session/record key
//
// Saves are unconditional puts: the store's only ordering guarantee is that
// the last successful save wins.
type DraftDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IDraftRepository = (*DraftDynamoRepository)(nil)

func NewDraftDynamoRepository(ddb *dynamodb.Client, tableName string) *DraftDynamoRepository {
	if tableName == "" {
		tableName = defaultDraftsTableName
	}
	return &DraftDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *DraftDynamoRepository) Save(ctx context.Context, key string, s draft.Snapshot) error {
	body, err := json.Marshal(s)
	if err != nil {
		return err
	}
	it := draftItem{
		ID:        key,
		Snapshot:  string(body),
		UpdatedAt: time.Now().UTC().Format(time.RFC3339Nano),
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func (r *DraftDynamoRepository) Load(ctx context.Context, key string) (draft.Snapshot, bool, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: key},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return draft.Snapshot{}, false, err
	}
	if len(out.Item) == 0 {
		return draft.Snapshot{}, false, nil
	}

	var it draftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return draft.Snapshot{}, false, err
	}
	var s draft.Snapshot
	if err := json.Unmarshal([]byte(it.Snapshot), &s); err != nil {
		return draft.Snapshot{}, false, err
	}
	return s, true, nil
}
