package datasets

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/spacesedan/adpulse/internal/clients"
	"github.com/spacesedan/adpulse/internal/models"
)

const (
	TRIGGERS_TABLE_NAME  = "CulturalTriggers"
	FESTIVALS_TABLE_NAME = "FestivalCalendar"
	CAMPAIGNS_TABLE_NAME = "HistoricalCampaigns"
)

func loadFromDynamoDB(ctx context.Context) (*Store, error) {
	dbClient := clients.GetDynamoDBClient()

	var triggers []models.CulturalTrigger
	if err := scanTable(ctx, dbClient, TRIGGERS_TABLE_NAME, &triggers); err != nil {
		return nil, err
	}

	var festivals []models.Festival
	if err := scanTable(ctx, dbClient, FESTIVALS_TABLE_NAME, &festivals); err != nil {
		return nil, err
	}

	var campaigns []models.HistoricalCampaign
	if err := scanTable(ctx, dbClient, CAMPAIGNS_TABLE_NAME, &campaigns); err != nil {
		return nil, err
	}

	for i := range triggers {
		triggers[i].Severity = strings.ToLower(triggers[i].Severity)
	}

	slog.Info("[DynamoDB] Core datasets loaded",
		slog.Int("triggers", len(triggers)),
		slog.Int("festivals", len(festivals)),
		slog.Int("campaigns", len(campaigns)))

	return &Store{
		Triggers:  triggers,
		Festivals: festivals,
		Campaigns: campaigns,
	}, nil
}

func scanTable(ctx context.Context, dbClient *dynamodb.Client, table string, out any) error {
	input := &dynamodb.ScanInput{
		TableName: aws.String(table),
	}

	var items []map[string]types.AttributeValue
	paginator := dynamodb.NewScanPaginator(dbClient, input)

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Scan for %s failed: %w", table, err)
		}
		items = append(items, page.Items...)
	}

	if err := attributevalue.UnmarshalListOfMaps(items, out); err != nil {
		slog.Error("[DynamoDB] Unable to unmarshal scanned items",
			slog.String("table", table),
			slog.String("error", err.Error()))
		return err
	}
	return nil
}

// SeedTables writes the synthetic datasets into DynamoDB so a fresh
// environment can run against the dynamodb backend.
func SeedTables(ctx context.Context) error {
	dbClient := clients.GetDynamoDBClient()

	triggerItems := make([]map[string]types.AttributeValue, 0, len(syntheticTriggers))
	for _, t := range syntheticTriggers {
		item, err := attributevalue.MarshalMap(t)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to marshal trigger: %w", err)
		}
		triggerItems = append(triggerItems, item)
	}
	if err := batchWrite(ctx, dbClient, TRIGGERS_TABLE_NAME, triggerItems); err != nil {
		return err
	}

	festivalItems := make([]map[string]types.AttributeValue, 0, len(syntheticFestivals))
	for _, f := range syntheticFestivals {
		item, err := attributevalue.MarshalMap(f)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to marshal festival: %w", err)
		}
		festivalItems = append(festivalItems, item)
	}
	if err := batchWrite(ctx, dbClient, FESTIVALS_TABLE_NAME, festivalItems); err != nil {
		return err
	}

	campaignItems := make([]map[string]types.AttributeValue, 0, len(syntheticCampaigns))
	for _, c := range syntheticCampaigns {
		item, err := attributevalue.MarshalMap(c)
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to marshal campaign: %w", err)
		}
		campaignItems = append(campaignItems, item)
	}
	if err := batchWrite(ctx, dbClient, CAMPAIGNS_TABLE_NAME, campaignItems); err != nil {
		return err
	}

	slog.Info("[DynamoDB] Successfully seeded all dataset tables")
	return nil
}

func batchWrite(ctx context.Context, dbClient *dynamodb.Client, table string, items []map[string]types.AttributeValue) error {
	const maxBatchSize = 25
	for i := 0; i < len(items); i += maxBatchSize {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:
		}

		end := i + maxBatchSize
		if end > len(items) {
			end = len(items)
		}

		writeRequests := make([]types.WriteRequest, 0, maxBatchSize)
		for _, item := range items[i:end] {
			writeRequests = append(writeRequests, types.WriteRequest{
				PutRequest: &types.PutRequest{Item: item},
			})
		}

		out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
			RequestItems: map[string][]types.WriteRequest{
				table: writeRequests,
			},
		})
		if err != nil {
			return fmt.Errorf("[DynamoDB] Failed to batch write to %s: %w", table, err)
		}

		// Retry writing unprocessed items
		retryCount := 0
		backoffDuration := time.Millisecond * 500
		for len(out.UnprocessedItems) > 0 && retryCount < 3 {
			time.Sleep(backoffDuration)
			backoffDuration *= 2
			slog.Warn("[DynamoDB] Retrying unprocessed items...",
				slog.Int("retry_attempt", retryCount+1),
				slog.Int("remaining_items", len(out.UnprocessedItems[table])),
			)

			out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: out.UnprocessedItems,
			})
			if err != nil {
				slog.Error("[DynamoDB] Error retrying batch write",
					slog.String("error", err.Error()))
				return fmt.Errorf("[DynamoDB] Failed to retry batch write: %w", err)
			}
			retryCount++
		}

		if len(out.UnprocessedItems) > 0 {
			slog.Error("[DynamoDB] Some items were not written even after retries",
				slog.Int("remaining_items", len(out.UnprocessedItems[table])))
		}
	}
	return nil
}
