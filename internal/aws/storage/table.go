package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Ping issues the cheapest authenticated call available.
func (client *Client) Ping(ctx context.Context) error {
	_, err := client.dynamodb.ListTables(ctx, &dynamodb.ListTablesInput{
		Limit: aws.Int32(1),
	})
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}
	return nil
}

func (client *Client) TableStatus(ctx context.Context, tableName string) (types.TableStatus, error) {
	output, err := client.dynamodb.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(tableName),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
		}
		return "", fmt.Errorf("failed to describe table %s: %w", tableName, err)
	}
	if output.Table == nil {
		return "", fmt.Errorf("%w: %s", ErrTableNotFound, tableName)
	}
	return output.Table.TableStatus, nil
}
