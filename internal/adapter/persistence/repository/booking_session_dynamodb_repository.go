package repository

import (
	"context"
	"errors"
	"strconv"
	"time"

	"homeservice/internal/domain/entities"
	"homeservice/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultSessionsTableName = "booking_sessions"

type cartLineItem struct {
	ID           int    `dynamodbav:"id"`
	ServiceID    int    `dynamodbav:"service_id"`
	ServiceTitle string `dynamodbav:"service_title"`
	Title        string `dynamodbav:"title"`
	Unit         string `dynamodbav:"unit"`
	Price        string `dynamodbav:"price"`
	Quantity     int    `dynamodbav:"quantity"`
}

type customerInfoItem struct {
	ServiceDate    string   `dynamodbav:"service_date"`
	ServiceTime    string   `dynamodbav:"service_time"`
	Address        string   `dynamodbav:"address"`
	Province       string   `dynamodbav:"province"`
	District       string   `dynamodbav:"district"`
	SubDistrict    string   `dynamodbav:"sub_district"`
	AdditionalInfo string   `dynamodbav:"additional_info"`
	Latitude       *float64 `dynamodbav:"latitude,omitempty"`
	Longitude      *float64 `dynamodbav:"longitude,omitempty"`
}

type discountItem struct {
	Type   string `dynamodbav:"type"`
	Value  string `dynamodbav:"value"`
	Amount string `dynamodbav:"amount"`
}

type paymentInfoItem struct {
	Method    string        `dynamodbav:"method"`
	CardName  string        `dynamodbav:"card_name"`
	PromoCode string        `dynamodbav:"promo_code"`
	Discount  *discountItem `dynamodbav:"discount,omitempty"`
}

type bookingSessionItem struct {
	ID              string           `dynamodbav:"id"`
	UserID          string           `dynamodbav:"user_id"`
	ServiceID       int              `dynamodbav:"service_id"`
	Lines           []cartLineItem   `dynamodbav:"lines"`
	Customer        customerInfoItem `dynamodbav:"customer"`
	Payment         paymentInfoItem  `dynamodbav:"payment"`
	Step            string           `dynamodbav:"step"`
	PromoGeneration int64            `dynamodbav:"promo_generation"`
	CreatedAt       string           `dynamodbav:"created_at"`
	UpdatedAt       string           `dynamodbav:"updated_at"`
}

// BookingSessionDynamoRepository persists BookingSession entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Save replaces the full item; AttachDiscount is the only partial update and
// carries the promo-generation fence as a condition expression.

type BookingSessionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IBookingSessionRepository = (*BookingSessionDynamoRepository)(nil)

func NewBookingSessionDynamoRepository(ddb *dynamodb.Client) *BookingSessionDynamoRepository {
	return &BookingSessionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SESSIONS_TABLE", defaultSessionsTableName),
	}
}

func (r *BookingSessionDynamoRepository) Create(ctx context.Context, s entities.BookingSession) (entities.BookingSession, error) {
	it := toBookingSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingSession{}, err
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
		return entities.BookingSession{}, err
	}
	return s, nil
}

func (r *BookingSessionDynamoRepository) GetByID(ctx context.Context, id string) (entities.BookingSession, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.BookingSession{}, err
	}
	if len(out.Item) == 0 {
		return entities.BookingSession{}, nil
	}

	var it bookingSessionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.BookingSession{}, err
	}
	return fromBookingSessionItem(it), nil
}

func (r *BookingSessionDynamoRepository) Save(ctx context.Context, s entities.BookingSession) (entities.BookingSession, error) {
	it := toBookingSessionItem(s)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.BookingSession{}, err
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
			return entities.BookingSession{}, nil
		}
		return entities.BookingSession{}, err
	}
	return s, nil
}

// AttachDiscount attaches a validated discount only when the stored promo
// generation and code still match what the validation call observed. A
// failed condition returns the zero value so the caller can treat the
// response as stale.
func (r *BookingSessionDynamoRepository) AttachDiscount(ctx context.Context, id, promoCode string, d entities.Discount, expectedGeneration int64) (entities.BookingSession, error) {
	dv, err := attributevalue.Marshal(toDiscountItem(d))
	if err != nil {
		return entities.BookingSession{}, err
	}
	now := time.Now().UTC().Format(time.RFC3339Nano)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id) AND #gen = :gen AND #payment.#promo_code = :code"),
		UpdateExpression:    aws.String("SET #payment.#discount = :discount, #updated_at = :updated_at"),
		ExpressionAttributeNames: map[string]string{
			"#id":         "id",
			"#gen":        "promo_generation",
			"#payment":    "payment",
			"#promo_code": "promo_code",
			"#discount":   "discount",
			"#updated_at": "updated_at",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":gen":        &types.AttributeValueMemberN{Value: strconv.FormatInt(expectedGeneration, 10)},
			":code":       &types.AttributeValueMemberS{Value: promoCode},
			":discount":   dv,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.BookingSession{}, nil
		}
		return entities.BookingSession{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.BookingSession{}, nil
	}

	var it bookingSessionItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.BookingSession{}, err
	}
	return fromBookingSessionItem(it), nil
}

func toBookingSessionItem(s entities.BookingSession) bookingSessionItem {
	lines := make([]cartLineItem, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, toCartLineItem(l))
	}

	it := bookingSessionItem{
		ID:        s.ID,
		UserID:    s.UserID,
		ServiceID: s.ServiceID,
		Lines:     lines,
		Customer: customerInfoItem{
			ServiceDate:    s.Customer.ServiceDate,
			ServiceTime:    s.Customer.ServiceTime,
			Address:        s.Customer.Address,
			Province:       s.Customer.Province,
			District:       s.Customer.District,
			SubDistrict:    s.Customer.SubDistrict,
			AdditionalInfo: s.Customer.AdditionalInfo,
			Latitude:       s.Customer.Latitude,
			Longitude:      s.Customer.Longitude,
		},
		Payment: paymentInfoItem{
			Method:    string(s.Payment.Method),
			CardName:  s.Payment.CardName,
			PromoCode: s.Payment.PromoCode,
		},
		Step:            string(s.Step),
		PromoGeneration: s.PromoGeneration,
		CreatedAt:       s.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       s.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	if s.Payment.Discount != nil {
		di := toDiscountItem(*s.Payment.Discount)
		it.Payment.Discount = &di
	}
	return it
}

func fromBookingSessionItem(it bookingSessionItem) entities.BookingSession {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)

	lines := make([]entities.CartLine, 0, len(it.Lines))
	for _, l := range it.Lines {
		lines = append(lines, fromCartLineItem(l))
	}

	s := entities.BookingSession{
		ID:        it.ID,
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
		Payment: entities.PaymentInfo{
			Method:    entities.PaymentMethod(it.Payment.Method),
			CardName:  it.Payment.CardName,
			PromoCode: it.Payment.PromoCode,
		},
		Step:            entities.BookingStep(it.Step),
		PromoGeneration: it.PromoGeneration,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
	if it.Payment.Discount != nil {
		d := fromDiscountItem(*it.Payment.Discount)
		s.Payment.Discount = &d
	}
	return s
}

func toCartLineItem(l entities.CartLine) cartLineItem {
	return cartLineItem{
		ID:           l.ID,
		ServiceID:    l.ServiceID,
		ServiceTitle: l.ServiceTitle,
		Title:        l.Title,
		Unit:         l.Unit,
		Price:        floatToString(l.Price),
		Quantity:     l.Quantity,
	}
}

func fromCartLineItem(it cartLineItem) entities.CartLine {
	price, _ := strconv.ParseFloat(it.Price, 64)
	return entities.CartLine{
		ID:           it.ID,
		ServiceID:    it.ServiceID,
		ServiceTitle: it.ServiceTitle,
		Title:        it.Title,
		Unit:         it.Unit,
		Price:        price,
		Quantity:     it.Quantity,
	}
}

func toDiscountItem(d entities.Discount) discountItem {
	return discountItem{
		Type:   string(d.Type),
		Value:  floatToString(d.Value),
		Amount: floatToString(d.Amount),
	}
}

func fromDiscountItem(it discountItem) entities.Discount {
	value, _ := strconv.ParseFloat(it.Value, 64)
	amount, _ := strconv.ParseFloat(it.Amount, 64)
	return entities.Discount{
		Type:   entities.DiscountType(it.Type),
		Value:  value,
		Amount: amount,
	}
}

func floatToString(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
