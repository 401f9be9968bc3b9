package repository

import (
	"context"
	"strconv"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultSubServicesTableName = "sub_services"
	subServicesServiceIDIndex   = "service_id-index"
)

type subServiceItem struct {
	ID           int    `dynamodbav:"id"`
	ServiceID    int    `dynamodbav:"service_id"`
	ServiceTitle string `dynamodbav:"service_title"`
	Title        string `dynamodbav:"title"`
	Unit         string `dynamodbav:"unit"`
	Price        string `dynamodbav:"price"`
}

// SubServiceDynamoRepository reads the sellable sub-service catalog.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: service_id-index (PK: service_id)

type SubServiceDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISubServiceRepository = (*SubServiceDynamoRepository)(nil)

func NewSubServiceDynamoRepository(ddb *dynamodb.Client) *SubServiceDynamoRepository {
	return &SubServiceDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SUB_SERVICES_TABLE", defaultSubServicesTableName),
	}
}

func (r *SubServiceDynamoRepository) ListByServiceID(ctx context.Context, serviceID int) ([]entities.CartLine, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(subServicesServiceIDIndex),
		KeyConditionExpression: aws.String("service_id = :sid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":sid": &types.AttributeValueMemberN{Value: strconv.Itoa(serviceID)},
		},
	})
	if err != nil {
		return nil, err
	}

	lines := make([]entities.CartLine, 0, len(out.Items))
	for _, raw := range out.Items {
		var it subServiceItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		price, _ := strconv.ParseFloat(it.Price, 64)
		lines = append(lines, entities.CartLine{
			ID:           it.ID,
			ServiceID:    it.ServiceID,
			ServiceTitle: it.ServiceTitle,
			Title:        it.Title,
			Unit:         it.Unit,
			Price:        price,
		})
	}
	return lines, nil
}
