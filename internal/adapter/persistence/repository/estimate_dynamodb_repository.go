package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEstimatesTableName = "quote_estimates"

type estimateRecordItem struct {
	ID             string `dynamodbav:"id"`
	Date           string `dynamodbav:"date"`
	Status         string `dynamodbav:"status"`
	CustomerName   string `dynamodbav:"customer_name"`
	CustomerPhone  string `dynamodbav:"customer_phone"`
	Address        string `dynamodbav:"address"`
	TotalSum       string `dynamodbav:"total_sum"`
	FinalQuote     string `dynamodbav:"final_quote"`
	DiscountAmount string `dynamodbav:"discount_amount"`
	FinalBenefit   string `dynamodbav:"final_benefit"`
	MarginAmount   string `dynamodbav:"margin_amount"`
	MarginRate     string `dynamodbav:"margin_rate"`
	DiscountRate   string `dynamodbav:"discount_rate"`
	ExtraDiscount  string `dynamodbav:"extra_discount"`
	Items          string `dynamodbav:"items"`
	Remark         string `dynamodbav:"remark"`
	Revision       int64  `dynamodbav:"revision"`
	CreatedAt      string `dynamodbav:"created_at"`
	UpdatedAt      string `dynamodbav:"updated_at"`
}

// EstimateRecordDynamoRepository persists EstimateRecord snapshots in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Every numeric field is written as a string attribute and the item snapshot
// as a JSON string, so a stored record round-trips bit-exact regardless of
// DynamoDB number coercion.

type EstimateRecordDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IEstimateRecordRepository = (*EstimateRecordDynamoRepository)(nil)

func NewEstimateRecordDynamoRepository(ddb *dynamodb.Client) *EstimateRecordDynamoRepository {
	return &EstimateRecordDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTE_ESTIMATES_TABLE", defaultEstimatesTableName),
	}
}

func (r *EstimateRecordDynamoRepository) Create(ctx context.Context, rec entities.EstimateRecord) (entities.EstimateRecord, error) {
	it, err := toEstimateRecordItem(rec)
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.EstimateRecord{}, err
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
		return entities.EstimateRecord{}, err
	}
	return rec, nil
}

func (r *EstimateRecordDynamoRepository) GetByID(ctx context.Context, id string) (entities.EstimateRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.EstimateRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.EstimateRecord{}, nil
	}

	var it estimateRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateRecordItem(it), nil
}

func (r *EstimateRecordDynamoRepository) List(ctx context.Context) ([]entities.EstimateRecord, error) {
	records := []entities.EstimateRecord{}

	paginator := dynamodb.NewScanPaginator(r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		var items []estimateRecordItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			records = append(records, fromEstimateRecordItem(it))
		}
	}
	return records, nil
}

// UpdateRemark is the only write that touches an existing record; the
// expression mutates remark, revision and updated_at and nothing else. With
// expectedRevision >= 0 the write is conditional on the stored revision.
func (r *EstimateRecordDynamoRepository) UpdateRemark(ctx context.Context, id string, remark string, expectedRevision int64) (entities.EstimateRecord, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)

	condition := "attribute_exists(#id)"
	values := map[string]types.AttributeValue{
		":remark":     &types.AttributeValueMemberS{Value: remark},
		":one":        &types.AttributeValueMemberN{Value: "1"},
		":updated_at": &types.AttributeValueMemberS{Value: now},
	}
	names := map[string]string{
		"#id":         "id",
		"#remark":     "remark",
		"#revision":   "revision",
		"#updated_at": "updated_at",
	}
	if expectedRevision >= 0 {
		condition = "attribute_exists(#id) AND #revision = :expected"
		values[":expected"] = &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedRevision, 10)}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String(condition),
		UpdateExpression:          aws.String("SET #remark = :remark, #revision = #revision + :one, #updated_at = :updated_at"),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  names,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.EstimateRecord{}, nil
		}
		return entities.EstimateRecord{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.EstimateRecord{}, nil
	}
	var it estimateRecordItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.EstimateRecord{}, err
	}
	return fromEstimateRecordItem(it), nil
}

func toEstimateRecordItem(rec entities.EstimateRecord) (estimateRecordItem, error) {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return estimateRecordItem{}, err
	}
	return estimateRecordItem{
		ID:             rec.ID,
		Date:           rec.Date,
		Status:         string(rec.Status),
		CustomerName:   rec.CustomerName,
		CustomerPhone:  rec.CustomerPhone,
		Address:        rec.Address,
		TotalSum:       intToString(rec.TotalSum),
		FinalQuote:     intToString(rec.FinalQuote),
		DiscountAmount: intToString(rec.DiscountAmount),
		FinalBenefit:   intToString(rec.FinalBenefit),
		MarginAmount:   intToString(rec.MarginAmount),
		MarginRate:     floatToString(rec.MarginRate),
		DiscountRate:   floatToString(rec.DiscountRate),
		ExtraDiscount:  intToString(rec.ExtraDiscount),
		Items:          string(items),
		Remark:         rec.Remark,
		Revision:       rec.Revision,
		CreatedAt:      rec.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}, nil
}

func fromEstimateRecordItem(it estimateRecordItem) entities.EstimateRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	marginRate, _ := strconv.ParseFloat(it.MarginRate, 64)
	discountRate, _ := strconv.ParseFloat(it.DiscountRate, 64)

	var items []entities.QuoteItem
	if it.Items != "" {
		_ = json.Unmarshal([]byte(it.Items), &items)
	}

	return entities.EstimateRecord{
		ID:             it.ID,
		Date:           it.Date,
		Status:         entities.EstimateStatus(it.Status),
		CustomerName:   it.CustomerName,
		CustomerPhone:  it.CustomerPhone,
		Address:        it.Address,
		TotalSum:       stringToInt(it.TotalSum),
		FinalQuote:     stringToInt(it.FinalQuote),
		DiscountAmount: stringToInt(it.DiscountAmount),
		FinalBenefit:   stringToInt(it.FinalBenefit),
		MarginAmount:   stringToInt(it.MarginAmount),
		MarginRate:     marginRate,
		DiscountRate:   discountRate,
		ExtraDiscount:  stringToInt(it.ExtraDiscount),
		Items:          items,
		Remark:         it.Remark,
		Revision:       it.Revision,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func intToString(v int64) string {
	return strconv.FormatInt(v, 10)
}

func stringToInt(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
