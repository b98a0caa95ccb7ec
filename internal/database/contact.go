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
	contactHandler = slog.NewTextHandler(os.Stdout, nil).WithAttrs([]slog.Attr{slog.String("repository", "contact")})
	contactLogger  = slog.New(contactHandler)
)

var (
	// ErrIndexOutOfRange is returned when a positional note/date update names
	// a list element that does not exist.
	ErrIndexOutOfRange = errors.New("list index out of range")
)

var contactRepository *ContactRepository

type ContactRepository struct {
	Client        *DynamoClient
	tableName     string
	districtTable string
}

// PatchContactItem carries the merge-style field edits. Nil means leave the
// attribute untouched. The reverse district link is deliberately not part of
// the patch path.
type PatchContactItem struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	State          *string `json:"state"`
	SchoolDistrict *string `json:"schoolDistrict"`
	School         *string `json:"school"`
	Link           *string `json:"link"`
}

func NewContactRepo(sess *session.Session) *ContactRepository {

	if contactRepository != nil {
		return contactRepository
	}
	client := newDynamoClient(sess)
	contactRepository = &ContactRepository{
		Client:        client,
		tableName:     os.Getenv("CONTACT_TABLE"),
		districtTable: os.Getenv("DISTRICT_TABLE"),
	}

	return contactRepository
}

// Create persists a new contact. When the contact carries a district link the
// put and the district membership ADD run in one transaction so the two sides
// can never disagree.
func (c *ContactRepository) Create(ctx context.Context, contact model.ContactItem) error {
	ctx, span := getTracer().Start(ctx, "contact-create")
	defer span.End()

	contactLogger.Debug("creating contact.", slog.Any("contact", contact))

	item, err := dynamodbattribute.MarshalMap(contact)

	if err != nil {
		contactLogger.Error("error marshalling contact.", slog.String("error", err.Error()))
		return fmt.Errorf("error while creating contact")
	}

	if contact.Link == nil || contact.State == "" {
		putItem := &dynamodb.PutItemInput{
			TableName: &c.tableName,
			Item:      item,
		}
		if _, err := c.Client.PutItem(putItem); err != nil {
			return fmt.Errorf("error while creating contact")
		}
		return nil
	}

	input, err := c.createTransaction(contact, item)

	if err != nil {
		return fmt.Errorf("error while creating contact")
	}

	if _, err := c.Client.TransactWrite(input); err != nil {
		contactLogger.Error("contact create transaction failed.", slog.String("error", err.Error()))
		return fmt.Errorf("error while creating contact")
	}

	return nil
}

// Delete removes the contact and, when it was linked, drops its id from the
// district's member set in the same transaction.
func (c *ContactRepository) Delete(ctx context.Context, contact model.ContactItem) error {
	ctx, span := getTracer().Start(ctx, "contact-delete")
	defer span.End()

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": contact.Id,
	})

	if err != nil {
		contactLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return errors.New("error while deleting contact")
	}

	if contact.Link == nil || contact.State == "" {
		input := &dynamodb.DeleteItemInput{
			TableName: &c.tableName,
			Key:       key,
		}
		if _, err := c.Client.DeleteItem(input); err != nil {
			return errors.New("error while deleting contact")
		}
		return nil
	}

	input, err := c.deleteTransaction(contact, key)

	if err != nil {
		return errors.New("error while deleting contact")
	}

	if _, err := c.Client.TransactWrite(input); err != nil {
		contactLogger.Error("contact delete transaction failed.", slog.String("error", err.Error()))
		return errors.New("error while deleting contact")
	}

	return nil
}

func (c *ContactRepository) districtKey(contact model.ContactItem) (map[string]*dynamodb.AttributeValue, error) {
	return dynamodbattribute.MarshalMap(map[string]string{
		"state": contact.State,
		"link":  *contact.Link,
	})
}

// createTransaction pairs the contact put with the district membership ADD.
// The condition refuses the whole write when the district row is absent, so a
// contact can never point at a district that does not hold it.
func (c *ContactRepository) createTransaction(contact model.ContactItem, item map[string]*dynamodb.AttributeValue) (*dynamodb.TransactWriteItemsInput, error) {
	districtKey, err := c.districtKey(contact)

	if err != nil {
		return nil, err
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []*dynamodb.TransactWriteItem{
			{
				Put: &dynamodb.Put{
					TableName: &c.tableName,
					Item:      item,
				},
			},
			{
				Update: &dynamodb.Update{
					TableName:           &c.districtTable,
					Key:                 districtKey,
					UpdateExpression:    aws.String("ADD contacts :id"),
					ConditionExpression: aws.String("attribute_exists(#link)"),
					ExpressionAttributeNames: map[string]*string{
						"#link": aws.String("link"),
					},
					ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
						":id": {SS: []*string{&contact.Id}},
					},
				},
			},
		},
	}, nil
}

// deleteTransaction pairs the contact delete with the district membership
// DELETE on the same key the create targeted, restoring the member set to its
// pre-create state.
func (c *ContactRepository) deleteTransaction(contact model.ContactItem, key map[string]*dynamodb.AttributeValue) (*dynamodb.TransactWriteItemsInput, error) {
	districtKey, err := c.districtKey(contact)

	if err != nil {
		return nil, err
	}

	return &dynamodb.TransactWriteItemsInput{
		TransactItems: []*dynamodb.TransactWriteItem{
			{
				Delete: &dynamodb.Delete{
					TableName: &c.tableName,
					Key:       key,
				},
			},
			{
				Update: &dynamodb.Update{
					TableName:        &c.districtTable,
					Key:              districtKey,
					UpdateExpression: aws.String("DELETE contacts :id"),
					ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
						":id": {SS: []*string{&contact.Id}},
					},
				},
			},
		},
	}, nil
}

// List returns the entire contact collection. The contacts view has no
// pagination, collection sizes stay CRM-scale.
func (c *ContactRepository) List(ctx context.Context) ([]model.ContactItem, error) {
	ctx, span := getTracer().Start(ctx, "contact-list")
	defer span.End()

	contactList := make([]model.ContactItem, 0)
	var lastEvaluatedKey map[string]*dynamodb.AttributeValue

	scanInput := &dynamodb.ScanInput{
		TableName: &c.tableName,
	}

	for {
		scanInput.ExclusiveStartKey = lastEvaluatedKey

		output, err := c.Client.Scan(scanInput)
		if err != nil {
			return nil, fmt.Errorf("error scanning contacts error: %w", err)
		}

		var items []model.ContactItem
		err = dynamodbattribute.UnmarshalListOfMaps(output.Items, &items)

		if err != nil {
			contactLogger.Error("error unmarshalling contacts.", slog.String("error", err.Error()))
			return nil, fmt.Errorf("error unmarshalling contacts")
		}

		contactList = append(contactList, items...)

		if output.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = output.LastEvaluatedKey
	}
	contactLogger.Debug("retrieved contacts.", slog.Int("length", len(contactList)))

	return contactList, nil
}

func (c *ContactRepository) GetById(ctx context.Context, id string) (*model.ContactItem, error) {

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		contactLogger.Error("error marshalling key.", slog.String("error", err.Error()))
		return nil, errors.New("error while getting contact")
	}

	input := &dynamodb.GetItemInput{
		TableName: &c.tableName,
		Key:       key,
	}

	item, err := c.Client.GetOne(input)
	if err != nil {
		return nil, errors.New("error while getting contact")
	}

	if len(item.Item) == 0 {
		return nil, nil
	}

	var contact model.ContactItem

	if err := dynamodbattribute.UnmarshalMap(item.Item, &contact); err != nil {
		return nil, errors.New("error while getting contact")
	}

	return &contact, nil
}

// Update merges the patch into the stored item. Changing state/link here does
// NOT touch the reverse district reference.
func (c *ContactRepository) Update(ctx context.Context, id string, patch PatchContactItem) (*model.ContactItem, error) {

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

	set("name", patch.Name)
	set("email", patch.Email)
	set("phone", patch.Phone)
	set("state", patch.State)
	set("schoolDistrict", patch.SchoolDistrict)
	set("school", patch.School)
	set("link", patch.Link)

	if len(expressionList) == 0 {
		return nil, fmt.Errorf("empty update not allowed")
	}
	expression := fmt.Sprintf("SET %s", strings.Join(expressionList, ", "))

	marshalledExpressionValues, err := dynamodbattribute.MarshalMap(updateExpressionValues)

	if err != nil {
		contactLogger.Error("error marshalling update values.", slog.String("error", err.Error()))
		return nil, fmt.Errorf("error marshalling update values")
	}

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling update key")
	}

	updateInput := &dynamodb.UpdateItemInput{
		TableName:                 &c.tableName,
		Key:                       key,
		UpdateExpression:          &expression,
		ExpressionAttributeNames:  updateExpressionNames,
		ExpressionAttributeValues: marshalledExpressionValues,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              aws.String("ALL_NEW"),
	}

	output, err := c.Client.UpdateItem(updateInput)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, nil
		}
		return nil, fmt.Errorf("error updating contact error: %w", err)
	}

	var item model.ContactItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &item); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated contact error: %w", err)
	}
	return &item, nil
}

// AppendDate appends an RFC3339 timestamp to the channel's engagement list,
// creating the list on first use.
func (c *ContactRepository) AppendDate(ctx context.Context, id string, channel model.Channel, ts string) (*model.ContactItem, error) {
	return c.appendToList(ctx, id, channel.DateField(), ts)
}

// AppendNote appends the note text verbatim, independent of the date list.
func (c *ContactRepository) AppendNote(ctx context.Context, id string, channel model.Channel, text string) (*model.ContactItem, error) {
	return c.appendToList(ctx, id, channel.NoteField(), text)
}

func (c *ContactRepository) appendToList(ctx context.Context, id, field, value string) (*model.ContactItem, error) {
	ctx, span := getTracer().Start(ctx, "contact-append")
	defer span.End()

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling key")
	}

	values, err := dynamodbattribute.MarshalMap(map[string]any{
		":value": []string{value},
		":empty": []string{},
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling append value")
	}

	input := &dynamodb.UpdateItemInput{
		TableName:        &c.tableName,
		Key:              key,
		UpdateExpression: aws.String("SET #field = list_append(if_not_exists(#field, :empty), :value)"),
		ExpressionAttributeNames: map[string]*string{
			"#field": aws.String(field),
		},
		ExpressionAttributeValues: values,
		ConditionExpression:       aws.String("attribute_exists(id)"),
		ReturnValues:              aws.String("ALL_NEW"),
	}

	output, err := c.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, nil
		}
		return nil, fmt.Errorf("error appending to %s error: %w", field, err)
	}

	var item model.ContactItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &item); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated contact error: %w", err)
	}
	return &item, nil
}

// RemoveDateAt removes the element at the given index from the channel's date
// list. The condition guards against a concurrent removal of the same slot.
func (c *ContactRepository) RemoveDateAt(ctx context.Context, id string, channel model.Channel, index int) (*model.ContactItem, error) {
	ctx, span := getTracer().Start(ctx, "contact-remove-date")
	defer span.End()

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling key")
	}

	element := fmt.Sprintf("#field[%d]", index)
	input := &dynamodb.UpdateItemInput{
		TableName:        &c.tableName,
		Key:              key,
		UpdateExpression: aws.String("REMOVE " + element),
		ExpressionAttributeNames: map[string]*string{
			"#field": aws.String(channel.DateField()),
		},
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(%s)", element)),
		ReturnValues:        aws.String("ALL_NEW"),
	}

	output, err := c.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, ErrIndexOutOfRange
		}
		return nil, fmt.Errorf("error removing date error: %w", err)
	}

	var item model.ContactItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &item); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated contact error: %w", err)
	}
	return &item, nil
}

// SetNoteAt replaces a note in place. Notes are editable but never removable.
func (c *ContactRepository) SetNoteAt(ctx context.Context, id string, channel model.Channel, index int, text string) (*model.ContactItem, error) {
	ctx, span := getTracer().Start(ctx, "contact-set-note")
	defer span.End()

	key, err := dynamodbattribute.MarshalMap(map[string]string{
		"id": id,
	})

	if err != nil {
		return nil, fmt.Errorf("error marshalling key")
	}

	textAttr, err := dynamodbattribute.Marshal(text)

	if err != nil {
		return nil, fmt.Errorf("error marshalling note text")
	}

	element := fmt.Sprintf("#field[%d]", index)
	input := &dynamodb.UpdateItemInput{
		TableName:        &c.tableName,
		Key:              key,
		UpdateExpression: aws.String(fmt.Sprintf("SET %s = :text", element)),
		ExpressionAttributeNames: map[string]*string{
			"#field": aws.String(channel.NoteField()),
		},
		ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
			":text": textAttr,
		},
		ConditionExpression: aws.String(fmt.Sprintf("attribute_exists(%s)", element)),
		ReturnValues:        aws.String("ALL_NEW"),
	}

	output, err := c.Client.UpdateItem(input)

	if err != nil {
		var cond *dynamodb.ConditionalCheckFailedException
		if errors.As(err, &cond) {
			return nil, ErrIndexOutOfRange
		}
		return nil, fmt.Errorf("error editing note error: %w", err)
	}

	var item model.ContactItem

	if err := dynamodbattribute.UnmarshalMap(output.Attributes, &item); err != nil {
		return nil, fmt.Errorf("error unmarshalling updated contact error: %w", err)
	}
	return &item, nil
}
