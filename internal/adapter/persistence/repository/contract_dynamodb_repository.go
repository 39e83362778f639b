package repository

import (
	"context"
	"time"

	"kcc_quote/internal/domain/entities"
	"kcc_quote/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultContractsTableName = "contracts"

type contractRecordItem struct {
	ID              string `dynamodbav:"id"`
	CustomerName    string `dynamodbav:"customer_name"`
	CustomerPhone   string `dynamodbav:"customer_phone"`
	Address         string `dynamodbav:"address"`
	FinalQuotePrice string `dynamodbav:"final_quote_price"`
	KCCSupplyPrice  string `dynamodbav:"kcc_supply_price"`
	ContractDate    string `dynamodbav:"contract_date"`
	TenorMonths     int    `dynamodbav:"tenor_months"`
	MonthlyPayment  string `dynamodbav:"monthly_payment"`
	Remark          string `dynamodbav:"remark"`
	CreatedAt       string `dynamodbav:"created_at"`
	UpdatedAt       string `dynamodbav:"updated_at"`
}

// ContractDynamoRepository persists ContractRecord documents in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// SaveOrUpdate is a plain upsert: the contract admin screen always submits
// the full document and last write wins.

type ContractDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IContractRepository = (*ContractDynamoRepository)(nil)

func NewContractDynamoRepository(ddb *dynamodb.Client) *ContractDynamoRepository {
	return &ContractDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("CONTRACTS_TABLE", defaultContractsTableName),
	}
}

func (r *ContractDynamoRepository) SaveOrUpdate(ctx context.Context, c entities.ContractRecord) (entities.ContractRecord, error) {
	av, err := attributevalue.MarshalMap(toContractRecordItem(c))
	if err != nil {
		return entities.ContractRecord{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      av,
	})
	if err != nil {
		return entities.ContractRecord{}, err
	}
	return c, nil
}

func (r *ContractDynamoRepository) GetByID(ctx context.Context, id string) (entities.ContractRecord, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.ContractRecord{}, err
	}
	if len(out.Item) == 0 {
		return entities.ContractRecord{}, nil
	}

	var it contractRecordItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.ContractRecord{}, err
	}
	return fromContractRecordItem(it), nil
}

func toContractRecordItem(c entities.ContractRecord) contractRecordItem {
	return contractRecordItem{
		ID:              c.ID,
		CustomerName:    c.CustomerName,
		CustomerPhone:   c.CustomerPhone,
		Address:         c.Address,
		FinalQuotePrice: intToString(c.FinalQuotePrice),
		KCCSupplyPrice:  intToString(c.KCCSupplyPrice),
		ContractDate:    c.ContractDate,
		TenorMonths:     c.TenorMonths,
		MonthlyPayment:  intToString(c.MonthlyPayment),
		Remark:          c.Remark,
		CreatedAt:       c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromContractRecordItem(it contractRecordItem) entities.ContractRecord {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.ContractRecord{
		ID:              it.ID,
		CustomerName:    it.CustomerName,
		CustomerPhone:   it.CustomerPhone,
		Address:         it.Address,
		FinalQuotePrice: stringToInt(it.FinalQuotePrice),
		KCCSupplyPrice:  stringToInt(it.KCCSupplyPrice),
		ContractDate:    it.ContractDate,
		TenorMonths:     it.TenorMonths,
		MonthlyPayment:  stringToInt(it.MonthlyPayment),
		Remark:          it.Remark,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
