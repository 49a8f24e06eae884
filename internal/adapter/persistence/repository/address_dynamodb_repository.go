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

const (
	defaultAddressesTableName = "addresses"
	userIDIndexName           = "user_id-index"
)

type addressItem struct {
	ID         string `dynamodbav:"id"`
	UserID     string `dynamodbav:"user_id"`
	Type       string `dynamodbav:"type"`
	IsDefault  bool   `dynamodbav:"is_default"`
	Name       string `dynamodbav:"name,omitempty"`
	Line1      string `dynamodbav:"line1"`
	Line2      string `dynamodbav:"line2,omitempty"`
	City       string `dynamodbav:"city"`
	State      string `dynamodbav:"state,omitempty"`
	PostalCode string `dynamodbav:"postal_code"`
	Country    string `dynamodbav:"country"`
}

// AddressDynamoRepository reads buyer addresses from the profile table.
// This service never writes the table; address management lives elsewhere.
//
// Table requirements:
//   - PK: id (string)
//   - GSI user_id-index, PK user_id (string)
type AddressDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IAddressRepository = (*AddressDynamoRepository)(nil)

func NewAddressDynamoRepository(ddb *dynamodb.Client) *AddressDynamoRepository {
	return &AddressDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("ADDRESSES_TABLE", defaultAddressesTableName),
	}
}

// FindDefault returns the user's default address of the given type, or the
// zero value when none is set.
func (r *AddressDynamoRepository) FindDefault(ctx context.Context, userID string, addrType entities.AddressType) (entities.Address, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(userIDIndexName),
		KeyConditionExpression: aws.String("#user_id = :user_id"),
		FilterExpression:       aws.String("#type = :type AND #is_default = :true"),
		ExpressionAttributeNames: map[string]string{
			"#user_id":    "user_id",
			"#type":       "type",
			"#is_default": "is_default",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":user_id": &types.AttributeValueMemberS{Value: userID},
			":type":    &types.AttributeValueMemberS{Value: string(addrType)},
			":true":    &types.AttributeValueMemberBOOL{Value: true},
		},
	})
	if err != nil {
		return entities.Address{}, err
	}
	if len(out.Items) == 0 {
		return entities.Address{}, nil
	}

	var it addressItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Address{}, err
	}
	return entities.Address{
		ID:         it.ID,
		UserID:     it.UserID,
		Type:       entities.AddressType(it.Type),
		IsDefault:  it.IsDefault,
		Name:       it.Name,
		Line1:      it.Line1,
		Line2:      it.Line2,
		City:       it.City,
		State:      it.State,
		PostalCode: it.PostalCode,
		Country:    it.Country,
	}, nil
}
