package repository

import (
	"context"
	"strconv"
	"time"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultBookingsTableName = "bookings"
	bookingsUserIDIndex      = "user_id-index"
)

type bookingItem struct {
	ID             string           `dynamodbav:"id"`
	SessionID      string           `dynamodbav:"session_id"`
	UserID         string           `dynamodbav:"user_id"`
	ServiceID      int              `dynamodbav:"service_id"`
	Lines          []cartLineItem   `dynamodbav:"lines"`
	Customer       customerInfoItem `dynamodbav:"customer"`
	PromoCode      string           `dynamodbav:"promo_code,omitempty"`
	TotalAmount    string           `dynamodbav:"total_amount"`
	DiscountAmount string           `dynamodbav:"discount_amount"`
	FinalAmount    string           `dynamodbav:"final_amount"`
	Status         string           `dynamodbav:"status"`
	Date           string           `dynamodbav:"date"`

	ProviderPaymentID  string                 `dynamodbav:"provider_payment_id"`
	ProviderPayload    map[string]interface{} `dynamodbav:"provider_payload,omitempty"`
	ProviderPayloadRaw string                 `dynamodbav:"provider_payload_raw,omitempty"`
}

// BookingDynamoRepository persists completed Booking entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)

type BookingDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingRepository = (*BookingDynamoRepository)(nil)

func NewBookingDynamoRepository(ddb *dynamodb.Client) *BookingDynamoRepository {
	return &BookingDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("BOOKINGS_TABLE", defaultBookingsTableName),
	}
}

func (r *BookingDynamoRepository) Create(ctx context.Context, b entities.Booking) (entities.Booking, error) {
	it := toBookingItem(b)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Booking{}, err
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
		return entities.Booking{}, err
	}
	return b, nil
}

func (r *BookingDynamoRepository) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Booking{}, err
	}
	if len(out.Item) == 0 {
		return entities.Booking{}, nil
	}

	var it bookingItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Booking{}, err
	}
	return fromBookingItem(it), nil
}

func (r *BookingDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(bookingsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Booking, 0, len(out.Items))
	for _, raw := range out.Items {
		var it bookingItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromBookingItem(it))
	}
	return items, nil
}

func toBookingItem(b entities.Booking) bookingItem {
	lines := make([]cartLineItem, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, toCartLineItem(l))
	}

	return bookingItem{
		ID:        b.ID,
		SessionID: b.SessionID,
		UserID:    b.UserID,
		ServiceID: b.ServiceID,
		Lines:     lines,
		Customer: customerInfoItem{
			ServiceDate:    b.Customer.ServiceDate,
			ServiceTime:    b.Customer.ServiceTime,
			Address:        b.Customer.Address,
			Province:       b.Customer.Province,
			District:       b.Customer.District,
			SubDistrict:    b.Customer.SubDistrict,
			AdditionalInfo: b.Customer.AdditionalInfo,
			Latitude:       b.Customer.Latitude,
			Longitude:      b.Customer.Longitude,
		},
		PromoCode:          b.PromoCode,
		TotalAmount:        floatToString(b.TotalAmount),
		DiscountAmount:     floatToString(b.DiscountAmount),
		FinalAmount:        floatToString(b.FinalAmount),
		Status:             string(b.Status),
		Date:               b.Date.UTC().Format(time.RFC3339Nano),
		ProviderPaymentID:  b.ProviderPaymentID,
		ProviderPayload:    b.ProviderPayload,
		ProviderPayloadRaw: string(b.ProviderPayloadRaw),
	}
}

func fromBookingItem(it bookingItem) entities.Booking {
	date, _ := time.Parse(time.RFC3339Nano, it.Date)
	total, _ := strconv.ParseFloat(it.TotalAmount, 64)
	discount, _ := strconv.ParseFloat(it.DiscountAmount, 64)
	final, _ := strconv.ParseFloat(it.FinalAmount, 64)

	lines := make([]entities.CartLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, fromCartLineItem(l))
	}

	return entities.Booking{
		ID:        it.ID,
		SessionID: it.SessionID,
		UserID:    it.UserID,
		ServiceID: it.ServiceID,
		Lines:     lines,
		Customer: entities.CustomerInfo{
			ServiceDate:    it.Customer.ServiceDate,
			ServiceTime:    it.Customer.ServiceTime,
			Address:        it.Customer.Address,
			Province:       it.Customer.Province,
			District:       it.Customer.District,
			SubDistrict:    it.Customer.SubDistrict,
			AdditionalInfo: it.Customer.AdditionalInfo,
			Latitude:       it.Customer.Latitude,
			Longitude:      it.Customer.Longitude,
		},
		PromoCode:          it.PromoCode,
		TotalAmount:        total,
		DiscountAmount:     discount,
		FinalAmount:        final,
		Status:             entities.BookingStatus(it.Status),
		Date:               date,
		ProviderPaymentID:  it.ProviderPaymentID,
		ProviderPayload:    it.ProviderPayload,
		ProviderPayloadRaw: []byte(it.ProviderPayloadRaw),
	}
}
