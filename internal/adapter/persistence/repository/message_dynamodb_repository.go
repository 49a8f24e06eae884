package repository

import (
	"context"

	"sellerhub/internal/domain/entities"
	"sellerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultMessagesTableName = "messages"

type messageItem struct {
	ID        string `dynamodbav:"id"`
	ThreadID  string `dynamodbav:"thread_id"`
	SenderID  string `dynamodbav:"sender_id"`
	Content   string `dynamodbav:"content"`
	Type      string `dynamodbav:"type"`
	Token     string `dynamodbav:"token,omitempty"`
	Read      bool   `dynamodbav:"read"`
	CreatedAt string `dynamodbav:"created_at"`
}

// MessageDynamoRepository persists thread messages in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI thread_id-index, PK thread_id (string)
type MessageDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IMessageRepository = (*MessageDynamoRepository)(nil)

func NewMessageDynamoRepository(ddb *dynamodb.Client) *MessageDynamoRepository {
	return &MessageDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MESSAGES_TABLE", defaultMessagesTableName),
	}
}

func (r *MessageDynamoRepository) TxCreate(tx interfaces.ITx, m entities.Message) error {
	av, err := attributevalue.MarshalMap(toMessageItem(m))
	if err != nil {
		return err
	}
	asDealTx(tx).add(types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(r.tableName),
			Item:                av,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	})
	return nil
}

func (r *MessageDynamoRepository) Create(ctx context.Context, m entities.Message) error {
	av, err := attributevalue.MarshalMap(toMessageItem(m))
	if err != nil {
		return err
	}
	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	return err
}

func toMessageItem(m entities.Message) messageItem {
	return messageItem{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		Type:      string(m.Type),
		Token:     m.Token,
		Read:      m.Read,
		CreatedAt: formatTime(m.CreatedAt),
	}
}
