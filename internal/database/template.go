package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/xEpiqq/hivecrm/internal/model"
)

var (
	templateHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "template")})
	templateLogger  = slog.New(templateHandler)
)

var templateRepository *TemplateRepository

type TemplateRepository struct {
	Client    *DynamoClient
	tableName string
}

func NewTemplateRepo(sess *session.Session) *TemplateRepository {

	if templateRepository != nil {
		return templateRepository
	}
	client := newDynamoClient(sess)
	templateRepository = &TemplateRepository{
		Client:    client,
		tableName: os.Getenv("TEMPLATE_TABLE"),
	}

	return templateRepository
}

func (t *TemplateRepository) Create(ctx context.Context, template model.TemplateItem) error {

	item, err := dynamodbattribute.MarshalMap(template)

	if err != nil {
		templateLogger.Error("error marshalling template.", slog.String("error", err.Error()))
		return fmt.Errorf("error while creating template")
	}

	input := &dynamodb.PutItemInput{
		TableName: &t.tableName,
		Item:      item,
	}

	if _, err := t.Client.PutItem(input); err != nil {
		return fmt.Errorf("error while creating template")
	}

	return nil
}

func (t *TemplateRepository) List(ctx context.Context) ([]model.TemplateItem, error) {
	ctx, span := getTracer().Start(ctx, "template-list")
	defer span.End()

	templates := make([]model.TemplateItem, 0)
	var lastEvaluatedKey map[string]*dynamodb.AttributeValue

	scanInput := &dynamodb.ScanInput{
		TableName: &t.tableName,
	}

	for {
		scanInput.ExclusiveStartKey = lastEvaluatedKey

		output, err := t.Client.Scan(scanInput)
		if err != nil {
			return nil, fmt.Errorf("error scanning templates error: %w", err)
		}

		var items []model.TemplateItem
		if err := dynamodbattribute.UnmarshalListOfMaps(output.Items, &items); err != nil {
			templateLogger.Error("error unmarshalling templates.", slog.String("error", err.Error()))
			return nil, fmt.Errorf("error unmarshalling templates")
		}

		templates = append(templates, items...)

		if output.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = output.LastEvaluatedKey
	}

	return templates, nil
}

func (t *TemplateRepository) GetById(ctx context.Context, id string) (*model.TemplateItem, error) {

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		templateLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return nil, errors.New("error while getting template")
	}

	input := &dynamodb.GetItemInput{
		TableName: &t.tableName,
		Key:       key,
	}

	item, err := t.Client.GetOne(input)
	if err != nil {
		return nil, errors.New("error while getting template")
	}

	if len(item.Item) == 0 {
		return nil, nil
	}

	var template model.TemplateItem

	if err := dynamodbattribute.UnmarshalMap(item.Item, &template); err != nil {
		return nil, errors.New("error while getting template")
	}

	return &template, nil
}

func (t *TemplateRepository) Update(ctx context.Context, id string, patch model.UpdateTemplate) (*model.TemplateItem, error) {
	ctx, span := getTracer().Start(ctx, "template-update")
	defer span.End()

	expressionList := make([]string, 0)
	updateExpressionValues := make(map[string]any)
	updateExpressionNames := make(map[string]*string)

	set := func(attr string, v *string) {
		if v == nil {
			return
		}
		updateExpressionValues[":"+attr] = *v
		updateExpressionNames["#"+attr] = aws.String(attr)
		expressionList = append(expressionList, fmt.Sprintf("#%s = :%s", attr, attr))
	}

	set("subject", patch.Subject)
	set("body", patch.Body)

	if len(expressionList) == 0 {
		return nil, fmt.Errorf("empty update not allowed")
	}
	expression := fmt.Sprintf("SET %s", strings.Join(expressionList, ", "))

	marshalledExpressionValues, err := dynamodbattribute.MarshalMap(updateExpressionValues)

	if err != nil {
		templateLogger.Error("error marshalling update values.", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error marshalling update values")
	}

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling update key")
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &t.tableName,
		Key:                       key,
		UpdateExpression:          &expression,
		ExpressionAttributeNames:  updateExpressionNames,
		ExpressionAttributeValues: marshalledExpressionValues,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              aws.String("ALL_NEW"),
	}

	output, err := t.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating template error: %w", err)
	}

	var template model.TemplateItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &template); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated template error: %w", err)
	}
	return &template, nil
}

func (t *TemplateRepository) Delete(ctx context.Context, id string) error {

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		templateLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return errors.New("error while deleting template")
	}

	input := &dynamodb.DeleteItemInput{
		TableName: &t.tableName,
		Key:       key,
	}

	if _, err := t.Client.DeleteItem(input); err != nil {
		return errors.New("error while deleting template")
	}

	return nil
}
