package repository

import (
	"context"
	"errors"

	"sellerhub/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
)

// DealTx accumulates the guarded writes of one saga operation. Repositories
// append to it; nothing touches DynamoDB until Commit.
type DealTx struct {
	items []types.TransactWriteItem
}

func (t *DealTx) add(item types.TransactWriteItem) {
	t.items = append(t.items, item)
}

// asDealTx unwraps the opaque transaction handle. A wrong type is a
// programming error, not a runtime condition.
func asDealTx(tx interfaces.ITx) *DealTx {
	t, ok := tx.(*DealTx)
	if !ok {
		panic("repository: transaction was not created by DynamoTxRunner")
	}
	return t
}

// DynamoTxRunner commits saga transactions through TransactWriteItems: all
// accumulated writes apply atomically or none do. Any failed condition
// expression surfaces as interfaces.ErrConflict, meaning a concurrent
// request changed one of the documents after we read it.
type DynamoTxRunner struct {
	ddb *dynamodb.Client
}

var _ interfaces.ITxRunner = (*DynamoTxRunner)(nil)

func NewDynamoTxRunner(ddb *dynamodb.Client) *DynamoTxRunner {
	return &DynamoTxRunner{ddb: ddb}
}

func (r *DynamoTxRunner) NewTx() interfaces.ITx {
	return &DealTx{}
}

func (r *DynamoTxRunner) Commit(ctx context.Context, tx interfaces.ITx) error {
	t := asDealTx(tx)
	if len(t.items) == 0 {
		return nil
	}

	_, err := r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: t.items,
		// Idempotency token: a retried commit after a network timeout must
		// not apply the writes twice.
		ClientRequestToken: aws.String(uuid.NewString()),
	})
	if err != nil {
		if isConditionalFailure(err) {
			return interfaces.ErrConflict
		}
		return err
	}
	return nil
}

func isConditionalFailure(err error) bool {
	var cfe *types.ConditionalCheckFailedException
	if errors.As(err, &cfe) {
		return true
	}
	var tce *types.TransactionCanceledException
	if errors.As(err, &tce) {
		for _, reason := range tce.CancellationReasons {
			if reason.Code != nil && *reason.Code == "ConditionalCheckFailed" {
				return true
			}
		}
	}
	return false
}
