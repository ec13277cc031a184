package repository

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"time"

	"gestao_servicos/internal/domain/entities"
	"gestao_servicos/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRecordsTableName = "service_records"

type partItem struct {
	Name string `dynamodbav:"name"`
	Cost string `dynamodbav:"cost"`
}

type serviceRecordItem struct {
	OwnerID        string     `dynamodbav:"owner_id"`
	ID             string     `dynamodbav:"id"`
	ClientName     string     `dynamodbav:"client_name"`
	ServiceDate    string     `dynamodbav:"service_date"`
	WarrantyMonths int        `dynamodbav:"warranty_months"`
	ServiceValue   string     `dynamodbav:"service_value"`
	PaymentStatus  string     `dynamodbav:"payment_status"`
	Observations   string     `dynamodbav:"observations,omitempty"`
	Parts          []partItem `dynamodbav:"parts,omitempty"`
	PhotoRef       string     `dynamodbav:"photo_ref,omitempty"`
	CreatedAt      string     `dynamodbav:"created_at"`
	UpdatedAt      string     `dynamodbav:"updated_at"`
}

// ServiceRecordDynamoRepository persists ServiceRecord entities in DynamoDB.
//
// Table requirements:
//   - PK: owner_id (string)
//   - SK: id (string)
//
// The owner is the partition key so every read path stays a single-partition
// Query: records never cross owner boundaries.

type ServiceRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IServiceRecordRepository = (*ServiceRecordDynamoRepository)(nil)

func NewServiceRecordDynamoRepository(ddb *dynamodb.Client) *ServiceRecordDynamoRepository {
	return &ServiceRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("RECORDS_TABLE", defaultRecordsTableName),
	}
}

func (r *ServiceRecordDynamoRepository) Create(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	it := toServiceRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) GetByID(ctx context.Context, ownerID, id string) (entities.ServiceRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            recordKey(ownerID, id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ServiceRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ServiceRecord{}, nil
	}

	var it serviceRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ServiceRecord{}, err
	}
	return fromServiceRecordItem(it), nil
}

func (r *ServiceRecordDynamoRepository) ListByOwner(ctx context.Context, ownerID string) ([]entities.ServiceRecord, error) {
	var records []entities.ServiceRecord
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			KeyConditionExpression: aws.String("#owner_id = :owner_id"),
			ExpressionAttributeNames: map[string]string{
				"#owner_id": "owner_id",
			},
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":owner_id": &types.AttributeValueMemberS{Value: ownerID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}

		var items []serviceRecordItem
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			records = append(records, fromServiceRecordItem(it))
		}

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	// The sort key is the record ID, so the query comes back in ID order.
	// Callers expect newest service first.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].ServiceDate.After(records[j].ServiceDate)
	})
	return records, nil
}

func (r *ServiceRecordDynamoRepository) Update(ctx context.Context, rec entities.ServiceRecord) (entities.ServiceRecord, error) {
	it := toServiceRecordItem(rec)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.ServiceRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.ServiceRecord{}, nil
		}
		return entities.ServiceRecord{}, err
	}
	return rec, nil
}

func (r *ServiceRecordDynamoRepository) Delete(ctx context.Context, ownerID, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 recordKey(ownerID, id),
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func recordKey(ownerID, id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"owner_id": &types.AttributeValueMemberS{Value: ownerID},
		"id":       &types.AttributeValueMemberS{Value: id},
	}
}

func toServiceRecordItem(rec entities.ServiceRecord) serviceRecordItem {
	parts := make([]partItem, 0, len(rec.Parts))
	for _, p := range rec.Parts {
		parts = append(parts, partItem{Name: p.Name, Cost: floatToString(p.Cost)})
	}
	return serviceRecordItem{
		OwnerID:        rec.OwnerID,
		ID:             rec.ID,
		ClientName:     rec.ClientName,
		ServiceDate:    rec.ServiceDate.UTC().Format(time.RFC3339Nano),
		WarrantyMonths: rec.WarrantyMonths,
		ServiceValue:   floatToString(rec.ServiceValue),
		PaymentStatus:  string(rec.PaymentStatus),
		Observations:   rec.Observations,
		Parts:          parts,
		PhotoRef:       rec.PhotoRef,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromServiceRecordItem(it serviceRecordItem) entities.ServiceRecord {
	serviceDate, _ := time.Parse(time.RFC3339Nano, it.ServiceDate)
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	parts := make([]entities.Part, 0, len(it.Parts))
	for _, p := range it.Parts {
		cost, _ := strconv.ParseFloat(p.Cost, 64)
		parts = append(parts, entities.Part{Name: p.Name, Cost: cost})
	}

	return entities.ServiceRecord{
		OwnerID:        it.OwnerID,
		ID:             it.ID,
		ClientName:     it.ClientName,
		ServiceDate:    serviceDate,
		WarrantyMonths: it.WarrantyMonths,
		ServiceValue:   parseFloatDefault(it.ServiceValue),
		PaymentStatus:  entities.PaymentStatus(it.PaymentStatus),
		Observations:   it.Observations,
		Parts:          parts,
		PhotoRef:       it.PhotoRef,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloatDefault(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
