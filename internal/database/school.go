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
	schoolHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "school")})
	schoolLogger  = slog.New(schoolHandler)
)

var schoolRepository *SchoolRepository

type SchoolRepository struct {
	Client    *DynamoClient
	tableName string
}

// SchoolPage is one slice of the school collection plus the key to resume
// from. LastId is empty once the table is exhausted.
type SchoolPage struct {
	Items  []model.SchoolItem
	LastId string
}

type PatchSchoolItem struct {
	ChoirTeacher      *string `json:"choirteacher"`
	ChoirTeacherPhone *string `json:"choirteacherphone"`
	ChoirTeacherEmail *string `json:"choirteacheremail"`
}

func NewSchoolRepo(sess *session.Session) *SchoolRepository {

	if schoolRepository != nil {
		return schoolRepository
	}
	client := newDynamoClient(sess)
	schoolRepository = &SchoolRepository{
		Client:    client,
		tableName: os.Getenv("SCHOOL_TABLE"),
	}

	return schoolRepository
}

// Page scans forward from afterId until limit schools are collected or the
// table ends. The state filter is applied server side, so filtered pages keep
// scanning past non-matching rows instead of coming back short.
func (s *SchoolRepository) Page(ctx context.Context, state, afterId string, limit int) (*SchoolPage, error) {
	ctx, span := getTracer().Start(ctx, "school-page")
	defer span.End()

	page := &SchoolPage{Items: make([]model.SchoolItem, 0, limit)}

	scanInput := &dynamodb.ScanInput{
		TableName: &s.tableName,
	}

	if state != "" {
		scanInput.FilterExpression = aws.String("#state = :state")
		scanInput.ExpressionAttributeNames = map[string]*string{
			"#state": aws.String("state"),
		}
		scanInput.ExpressionAttributeValues = map[string]*dynamodb.AttributeValue{
			":state": {S: &state},
		}
	}

	var lastEvaluatedKey map[string]*dynamodb.AttributeValue

	if afterId != "" {
		lastEvaluatedKey = map[string]*dynamodb.AttributeValue{
			"id": {S: &afterId},
		}
	}

	for {
		scanInput.ExclusiveStartKey = lastEvaluatedKey

		remaining := int64(limit - len(page.Items))
		scanInput.Limit = &remaining

		output, err := s.Client.Scan(scanInput)
		if err != nil {
			return nil, fmt.Errorf("error scanning schools error: %w", err)
		}

		var items []model.SchoolItem
		if err := dynamodbattribute.UnmarshalListOfMaps(output.Items, &items); err != nil {
			schoolLogger.Error("error unmarshalling schools.", slog.String("error", err.Error()))
			return nil, fmt.Errorf("error unmarshalling schools")
		}

		page.Items = append(page.Items, items...)

		if output.LastEvaluatedKey == nil {
			page.LastId = ""
			return page, nil
		}

		lastEvaluatedKey = output.LastEvaluatedKey

		if len(page.Items) >= limit {
			if id, ok := lastEvaluatedKey["id"]; ok && id.S != nil {
				page.LastId = *id.S
			}
			return page, nil
		}
	}
}

func (s *SchoolRepository) GetById(ctx context.Context, id string) (*model.SchoolItem, error) {

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		schoolLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return nil, errors.New("error while getting school")
	}

	input := &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key:       key,
	}

	item, err := s.Client.GetOne(input)
	if err != nil {
		return nil, errors.New("error while getting school")
	}

	if len(item.Item) == 0 {
		return nil, nil
	}

	var school model.SchoolItem

	if err := dynamodbattribute.UnmarshalMap(item.Item, &school); err != nil {
		return nil, errors.New("error while getting school")
	}

	return &school, nil
}

func (s *SchoolRepository) Create(ctx context.Context, school model.SchoolItem) error {

	item, err := dynamodbattribute.MarshalMap(school)

	if err != nil {
		schoolLogger.Error("error marshalling school.", slog.String("error", err.Error()))
		return fmt.Errorf("error while creating school")
	}

	input := &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}

	if _, err := s.Client.PutItem(input); err != nil {
		return fmt.Errorf("error while creating school")
	}

	return nil
}

// Update edits the choir teacher contact fields, the only part of a school
// row the app maintains by hand.
func (s *SchoolRepository) Update(ctx context.Context, id string, patch PatchSchoolItem) (*model.SchoolItem, error) {
	ctx, span := getTracer().Start(ctx, "school-update")
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

	set("choirteacher", patch.ChoirTeacher)
	set("choirteacherphone", patch.ChoirTeacherPhone)
	set("choirteacheremail", patch.ChoirTeacherEmail)

	if len(expressionList) == 0 {
		return nil, fmt.Errorf("empty update not allowed")
	}
	expression := fmt.Sprintf("SET %s", strings.Join(expressionList, ", "))

	marshalledExpressionValues, err := dynamodbattribute.MarshalMap(updateExpressionValues)

	if err != nil {
		schoolLogger.Error("error marshalling update values.", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error marshalling update values")
	}

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling update key")
	}

	input := &dynamodb.UpdateItemInput{
		TableName:                 &s.tableName,
		Key:                       key,
		UpdateExpression:          &expression,
		ExpressionAttributeNames:  updateExpressionNames,
		ExpressionAttributeValues: marshalledExpressionValues,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              aws.String("ALL_NEW"),
	}

	output, err := s.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating school error: %w", err)
	}

	var school model.SchoolItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &school); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated school error: %w", err)
	}
	return &school, nil
}
