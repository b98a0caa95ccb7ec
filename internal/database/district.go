package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/xEpiqq/hivecrm/internal/model"
)

var (
	districtHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "district")})
	districtLogger  = slog.New(districtHandler)
)

var districtRepository *DistrictRepository

type DistrictRepository struct {
	Client    *DynamoClient
	tableName string
}

func NewDistrictRepo(sess *session.Session) *DistrictRepository {

	if districtRepository != nil {
		return districtRepository
	}
	client := newDynamoClient(sess)
	districtRepository = &DistrictRepository{
		Client:    client,
		tableName: os.Getenv("DISTRICT_TABLE"),
	}

	return districtRepository
}

// GetByState returns every district stored under the state partition. A state
// with no rows yields an empty slice, not an error.
func (d *DistrictRepository) GetByState(ctx context.Context, state string) ([]model.DistrictItem, error) {
	ctx, span := getTracer().Start(ctx, "district-get-by-state")
	defer span.End()

	districts := make([]model.DistrictItem, 0)
	var lastEvaluatedKey map[string]*dynamodb.AttributeValue

	queryInput := &dynamodb.QueryInput{
		TableName:              &d.tableName,
		KeyConditionExpression: aws.String("#state = :state"),
		ExpressionAttributeNames: map[string]*string{
			"#state": aws.String("state"),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":state": {S: &state},
		},
	}

	for {
		queryInput.ExclusiveStartKey = lastEvaluatedKey

		output, err := d.Client.Query(queryInput)

		if err != nil {
			var awsErr awserr.Error
			if errors.As(err, &awsErr) && awsErr.Code() == dynamodb.ErrCodeResourceNotFoundException {
				return districts, nil
			}
			return nil, fmt.Errorf("error querying districts error: %w", err)
		}

		var items []model.DistrictItem
		if err := dynamodbattribute.UnmarshalListOfMaps(output.Items, &items); err != nil {
			districtLogger.Error("error unmarshalling districts.", slog.String("error", err.Error()))
			return nil, fmt.Errorf("error unmarshalling districts")
		}

		districts = append(districts, items...)

		if output.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = output.LastEvaluatedKey
	}

	districtLogger.Debug("retrieved districts.", slog.String("state", state), slog.Int("length", len(districts)))

	return districts, nil
}

func (d *DistrictRepository) Get(ctx context.Context, state, link string) (*model.DistrictItem, error) {

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"state": state,
		"link":  link,
	})

	if err != nil {
		districtLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return nil, errors.New("error while getting district")
	}

	input := &dynamodb.GetItemInput{
		TableName: &d.tableName,
		Key:       key,
	}

	item, err := d.Client.GetOne(input)
	if err != nil {
		return nil, errors.New("error while getting district")
	}

	if len(item.Item) == 0 {
		return nil, nil
	}

	var district model.DistrictItem

	if err := dynamodbattribute.UnmarshalMap(item.Item, &district); err != nil {
		return nil, errors.New("error while getting district")
	}

	return &district, nil
}

func (d *DistrictRepository) Create(ctx context.Context, district model.DistrictItem) error {

	item, err := dynamodbattribute.MarshalMap(district)

	if err != nil {
		districtLogger.Error("error marshalling district.", slog.String("error", err.Error()))
		return fmt.Errorf("error while creating district")
	}

	input := &dynamodb.PutItemInput{
		TableName: &d.tableName,
		Item:      item,
	}

	if _, err := d.Client.PutItem(input); err != nil {
		return fmt.Errorf("error while creating district")
	}

	return nil
}

// SetCompleted flips the reached-out flag. Marking done stamps completedAt
// with the current time; unmarking clears it.
func (d *DistrictRepository) SetCompleted(ctx context.Context, state, link string, completed bool) (*model.DistrictItem, error) {
	ctx, span := getTracer().Start(ctx, "district-set-completed")
	defer span.End()

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"state": state,
		"link":  link,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling key")
	}

	values := map[string]*dynamodb.AttributeValue{
		":completed": {BOOL: &completed},
	}

	if completed {
		now := time.Now().UTC().Format(time.RFC3339)
		values[":completedAt"] = &dynamodb.AttributeValue{S: &now}
	} else {
		values[":completedAt"] = &dynamodb.AttributeValue{NULL: aws.Bool(true)}
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &d.tableName,
		Key:                       key,
		UpdateExpression:          aws.String("SET completed = :completed, completedAt = :completedAt"),
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(#link)"),
		ExpressionAttributeNames: map[string]*string{
			"#link": aws.String("link"),
		},
		ReturnValues: aws.String("ALL_NEW"),
	}

	output, err := d.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating district error: %w", err)
	}

	var district model.DistrictItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &district); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated district error: %w", err)
	}
	return &district, nil
}
