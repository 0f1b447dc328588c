package store

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sicko7947/claimflow"
)

// DynamoDBStore implements claimflow.ClaimStore using AWS DynamoDB
type DynamoDBStore struct {
	client    DynamoDBClient
	tableName string
}

// NewDynamoDBStore creates a new DynamoDB-backed claim store
func NewDynamoDBStore(client DynamoDBClient, tableName string) claimflow.ClaimStore {
	return &DynamoDBStore{
		client:    client,
		tableName: tableName,
	}
}

func (s *DynamoDBStore) LoadClaim(ctx context.Context) (*claimflow.Claim, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.tableName),
		Key: map[string]types.AttributeValue{
			AttrPK: &types.AttributeValueMemberS{Value: claimPK(ClaimKey)},
			AttrSK: &types.AttributeValueMemberS{Value: claimSK()},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get claim: %w", err)
	}

	if result.Item == nil {
		return nil, notFound("dynamodb")
	}

	var claim claimflow.Claim
	if err := attributevalue.UnmarshalMap(result.Item, &claim); err != nil {
		return nil, fmt.Errorf("failed to unmarshal claim: %w", err)
	}

	return &claim, nil
}

func (s *DynamoDBStore) SaveClaim(ctx context.Context, claim *claimflow.Claim) error {
	if claim == nil {
		return fmt.Errorf("cannot save nil claim")
	}

	// Marshal the claim
	item, err := attributevalue.MarshalMap(claim)
	if err != nil {
		return fmt.Errorf("failed to marshal claim: %w", err)
	}

	// Add keys
	item[AttrPK] = &types.AttributeValueMemberS{Value: claimPK(ClaimKey)}
	item[AttrSK] = &types.AttributeValueMemberS{Value: claimSK()}
	item[AttrEntityType] = &types.AttributeValueMemberS{Value: EntityTypeClaim}
	item[AttrUpdatedAt] = &types.AttributeValueMemberS{Value: time.Now().UTC().Format(time.RFC3339)}

	// Put item
	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.tableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to save claim: %w", err)
	}

	return nil
}
