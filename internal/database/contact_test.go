package database

import (
	"reflect"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"

	"github.com/xEpiqq/hivecrm/internal/model"
)

func linkedContact(t *testing.T) model.ContactItem {
	t.Helper()
	link := "alpine-01"
	return *model.NewContactItem("user-1", "jane", "jane@example.com", "", "utah", "Alpine", "Lone Peak", &link)
}

func TestCreateTransactionAddsDistrictMember(t *testing.T) {
	repo := &ContactRepository{tableName: "contacts-test", districtTable: "districts-test"}
	contact := linkedContact(t)

	item, err := dynamodbattribute.MarshalMap(contact)
	if err != nil {
		t.Fatal(err)
	}

	input, err := repo.createTransaction(contact, item)
	if err != nil {
		t.Fatal(err)
	}
	if len(input.TransactItems) != 2 {
		t.Fatalf("expected 2 transact items, got %d", len(input.TransactItems))
	}

	put := input.TransactItems[0].Put
	if put == nil {
		t.Fatal("first item must be the contact put")
	}
	if aws.StringValue(put.TableName) != "contacts-test" {
		t.Errorf("put table = %q, want contacts-test", aws.StringValue(put.TableName))
	}
	if !reflect.DeepEqual(put.Item, item) {
		t.Error("put item must be the marshalled contact")
	}

	update := input.TransactItems[1].Update
	if update == nil {
		t.Fatal("second item must be the district update")
	}
	if aws.StringValue(update.TableName) != "districts-test" {
		t.Errorf("update table = %q, want districts-test", aws.StringValue(update.TableName))
	}
	if aws.StringValue(update.UpdateExpression) != "ADD contacts :id" {
		t.Errorf("update expression = %q", aws.StringValue(update.UpdateExpression))
	}
	if aws.StringValue(update.ConditionExpression) != "attribute_exists(#link)" {
		t.Errorf("condition = %q, the link target must already exist", aws.StringValue(update.ConditionExpression))
	}
	if aws.StringValue(update.ExpressionAttributeNames["#link"]) != "link" {
		t.Error("expected #link to resolve to the link attribute")
	}

	if got := aws.StringValue(update.Key["state"].S); got != "utah" {
		t.Errorf("district key state = %q, want utah", got)
	}
	if got := aws.StringValue(update.Key["link"].S); got != "alpine-01" {
		t.Errorf("district key link = %q, want alpine-01", got)
	}

	id := update.ExpressionAttributeValues[":id"]
	if id == nil || len(id.SS) != 1 || aws.StringValue(id.SS[0]) != contact.Id {
		t.Errorf("expected :id string set holding %q, got %v", contact.Id, id)
	}
}

func TestDeleteTransactionRemovesDistrictMember(t *testing.T) {
	repo := &ContactRepository{tableName: "contacts-test", districtTable: "districts-test"}
	contact := linkedContact(t)

	key, err := dynamodbattribute.MarshalMap(map[string]string{"id": contact.Id})
	if err != nil {
		t.Fatal(err)
	}

	input, err := repo.deleteTransaction(contact, key)
	if err != nil {
		t.Fatal(err)
	}
	if len(input.TransactItems) != 2 {
		t.Fatalf("expected 2 transact items, got %d", len(input.TransactItems))
	}

	del := input.TransactItems[0].Delete
	if del == nil {
		t.Fatal("first item must be the contact delete")
	}
	if aws.StringValue(del.TableName) != "contacts-test" {
		t.Errorf("delete table = %q, want contacts-test", aws.StringValue(del.TableName))
	}
	if got := aws.StringValue(del.Key["id"].S); got != contact.Id {
		t.Errorf("delete key id = %q, want %q", got, contact.Id)
	}

	update := input.TransactItems[1].Update
	if update == nil {
		t.Fatal("second item must be the district update")
	}
	if aws.StringValue(update.UpdateExpression) != "DELETE contacts :id" {
		t.Errorf("update expression = %q", aws.StringValue(update.UpdateExpression))
	}
}

// Creating a linked contact and then deleting it must touch the same district
// row with the same member id, leaving the contact set as it started.
func TestLinkedContactRoundTripTargetsSameDistrict(t *testing.T) {
	repo := &ContactRepository{tableName: "contacts-test", districtTable: "districts-test"}
	contact := linkedContact(t)

	item, err := dynamodbattribute.MarshalMap(contact)
	if err != nil {
		t.Fatal(err)
	}
	key, err := dynamodbattribute.MarshalMap(map[string]string{"id": contact.Id})
	if err != nil {
		t.Fatal(err)
	}

	create, err := repo.createTransaction(contact, item)
	if err != nil {
		t.Fatal(err)
	}
	remove, err := repo.deleteTransaction(contact, key)
	if err != nil {
		t.Fatal(err)
	}

	add := create.TransactItems[1].Update
	del := remove.TransactItems[1].Update

	if !reflect.DeepEqual(add.Key, del.Key) {
		t.Errorf("add and delete must target the same district key: %v vs %v", add.Key, del.Key)
	}
	if aws.StringValue(add.TableName) != aws.StringValue(del.TableName) {
		t.Error("add and delete must target the same district table")
	}
	if !reflect.DeepEqual(add.ExpressionAttributeValues[":id"], del.ExpressionAttributeValues[":id"]) {
		t.Errorf("add and delete must move the same member id: %v vs %v",
			add.ExpressionAttributeValues[":id"], del.ExpressionAttributeValues[":id"])
	}
}
