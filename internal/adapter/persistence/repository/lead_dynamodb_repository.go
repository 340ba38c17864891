package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"go.uber.org/zap"
)

const (
	DefaultLeadsTableName  = "leads"
	leadsContractorIDIndex = "contractor_id-index"
)

// leadItem flattens contact and signature fields into top-level attributes.
// answers and estimate_data are JSON strings.
type leadItem struct {
	ID                 string   `dynamodbav:"id"`
	ContractorID       string   `dynamodbav:"contractor_id"`
	Status             string   `dynamodbav:"status"`
	FirstName          string   `dynamodbav:"first_name,omitempty"`
	LastName           string   `dynamodbav:"last_name,omitempty"`
	Email              string   `dynamodbav:"email,omitempty"`
	Phone              string   `dynamodbav:"phone,omitempty"`
	Address            string   `dynamodbav:"address,omitempty"`
	ProjectDescription string   `dynamodbav:"project_description,omitempty"`
	Photos             []string `dynamodbav:"photos,omitempty"`
	CategoryIDs        []string `dynamodbav:"category_ids,omitempty"`
	Answers            string   `dynamodbav:"answers,omitempty"`
	EstimateData       string   `dynamodbav:"estimate_data,omitempty"`

	ContractorSignatureName string `dynamodbav:"contractor_signature,omitempty"`
	ContractorSignedAt      string `dynamodbav:"contractor_signed_at,omitempty"`
	CustomerSignatureName   string `dynamodbav:"customer_signature,omitempty"`
	CustomerSignedAt        string `dynamodbav:"customer_signed_at,omitempty"`
	SentAt                  string `dynamodbav:"sent_at,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

// LeadDynamoRepository persists leads in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: contractor_id-index (PK: contractor_id)
type LeadDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
	now       func() time.Time
	logger    *zap.Logger
}

var _ interfaces.ILeadRepository = (*LeadDynamoRepository)(nil)

func NewLeadDynamoRepository(ddb DynamoAPI, tableName string, logger *zap.Logger) *LeadDynamoRepository {
	if tableName == "" {
		tableName = DefaultLeadsTableName
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LeadDynamoRepository{ddb: ddb, tableName: tableName, now: time.Now, logger: logger}
}

func (r *LeadDynamoRepository) Insert(ctx context.Context, lead entities.Lead) (entities.Lead, error) {
	it, err := toLeadItem(lead)
	if err != nil {
		return entities.Lead{}, err
	}
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Lead{}, err
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
		return entities.Lead{}, err
	}
	return lead, nil
}

func (r *LeadDynamoRepository) Get(ctx context.Context, id string) (entities.Lead, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Lead{}, err
	}
	if len(out.Item) == 0 {
		return entities.Lead{}, nil
	}
	return unmarshalLead(out.Item)
}

func (r *LeadDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Lead, error) {
	leads := make([]entities.Lead, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
			IndexName:              aws.String(leadsContractorIDIndex),
			KeyConditionExpression: aws.String("contractor_id = :cid"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":cid": &types.AttributeValueMemberS{Value: contractorID},
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			lead, err := unmarshalLead(raw)
			if err != nil {
				r.logger.Warn("[lead][repository] skipping corrupt item",
					zap.String("contractor_id", contractorID), zap.Error(err))
				continue
			}
			leads = append(leads, lead)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(leads, func(i, j int) bool {
		return leads[i].CreatedAt.After(leads[j].CreatedAt)
	})
	return leads, nil
}

// Update applies the non-nil fields of upd. A missing lead yields a zero Lead.
func (r *LeadDynamoRepository) Update(ctx context.Context, id string, upd entities.LeadUpdate) (entities.Lead, error) {
	expr, values, names, err := buildLeadUpdate(upd, formatTime(r.now()))
	if err != nil {
		return entities.Lead{}, err
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(expr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Lead{}, nil
		}
		return entities.Lead{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Lead{}, nil
	}
	return unmarshalLead(out.Attributes)
}

func (r *LeadDynamoRepository) Delete(ctx context.Context, id string) (bool, error) {
	out, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, err
	}
	return len(out.Attributes) > 0, nil
}

// buildLeadUpdate renders the SET expression for a partial update. updated_at is
// always written.
func buildLeadUpdate(upd entities.LeadUpdate, now string) (string, map[string]types.AttributeValue, map[string]string, error) {
	sets := make([]string, 0, 16)
	values := map[string]types.AttributeValue{}
	names := map[string]string{}
	set := func(attr string, v types.AttributeValue) {
		sets = append(sets, fmt.Sprintf("#%s = :%s", attr, attr))
		names["#"+attr] = attr
		values[":"+attr] = v
	}
	str := func(s string) types.AttributeValue { return &types.AttributeValueMemberS{Value: s} }
	list := func(l []string) types.AttributeValue {
		items := make([]types.AttributeValue, 0, len(l))
		for _, s := range l {
			items = append(items, str(s))
		}
		return &types.AttributeValueMemberL{Value: items}
	}

	if upd.Status != nil {
		set("status", str(string(*upd.Status)))
	}
	if c := upd.Contact; c != nil {
		set("first_name", str(c.FirstName))
		set("last_name", str(c.LastName))
		set("email", str(c.Email))
		set("phone", str(c.Phone))
		set("address", str(c.Address))
	}
	if upd.ProjectDescription != nil {
		set("project_description", str(*upd.ProjectDescription))
	}
	if upd.Photos != nil {
		set("photos", list(upd.Photos))
	}
	if upd.CategoryIDs != nil {
		set("category_ids", list(upd.CategoryIDs))
	}
	if upd.Answers != nil {
		b, err := json.Marshal(upd.Answers)
		if err != nil {
			return "", nil, nil, err
		}
		set("answers", str(string(b)))
	}
	if upd.Estimate != nil {
		b, err := json.Marshal(upd.Estimate)
		if err != nil {
			return "", nil, nil, err
		}
		set("estimate_data", str(string(b)))
	}
	if s := upd.ContractorSignature; s != nil {
		set("contractor_signature", str(s.Name))
		set("contractor_signed_at", str(formatTime(s.SignedAt)))
	}
	if s := upd.CustomerSignature; s != nil {
		set("customer_signature", str(s.Name))
		set("customer_signed_at", str(formatTime(s.SignedAt)))
	}
	if upd.SentAt != nil {
		set("sent_at", str(formatTime(*upd.SentAt)))
	}
	set("updated_at", str(now))

	return "SET " + strings.Join(sets, ", "), values, names, nil
}

// unmarshalLead wraps every decode failure in entities.ErrCorruptLead.
func unmarshalLead(av map[string]types.AttributeValue) (entities.Lead, error) {
	var it leadItem
	if err := attributevalue.UnmarshalMap(av, &it); err != nil {
		return entities.Lead{}, fmt.Errorf("%w: %w", entities.ErrCorruptLead, err)
	}
	lead, err := fromLeadItem(it)
	if err != nil {
		return entities.Lead{}, fmt.Errorf("%w: %w", entities.ErrCorruptLead, err)
	}
	return lead, nil
}

func toLeadItem(l entities.Lead) (leadItem, error) {
	it := leadItem{
		ID:                 l.ID,
		ContractorID:       l.ContractorID,
		Status:             string(l.Status),
		FirstName:          l.Contact.FirstName,
		LastName:           l.Contact.LastName,
		Email:              l.Contact.Email,
		Phone:              l.Contact.Phone,
		Address:            l.Contact.Address,
		ProjectDescription: l.ProjectDescription,
		Photos:             l.Photos,
		CategoryIDs:        l.CategoryIDs,
		CreatedAt:          formatTime(l.CreatedAt),
		UpdatedAt:          formatTime(l.UpdatedAt),
	}
	if len(l.Answers) > 0 {
		b, err := json.Marshal(l.Answers)
		if err != nil {
			return leadItem{}, err
		}
		it.Answers = string(b)
	}
	if l.Estimate != nil {
		b, err := json.Marshal(l.Estimate)
		if err != nil {
			return leadItem{}, err
		}
		it.EstimateData = string(b)
	}
	if s := l.ContractorSignature; s != nil {
		it.ContractorSignatureName, it.ContractorSignedAt = s.Name, formatTime(s.SignedAt)
	}
	if s := l.CustomerSignature; s != nil {
		it.CustomerSignatureName, it.CustomerSignedAt = s.Name, formatTime(s.SignedAt)
	}
	if l.SentAt != nil {
		it.SentAt = formatTime(*l.SentAt)
	}
	return it, nil
}

func fromLeadItem(it leadItem) (entities.Lead, error) {
	l := entities.Lead{
		ID:           it.ID,
		ContractorID: it.ContractorID,
		Status:       entities.LeadStatus(it.Status),
		Contact: entities.ContactInfo{
			FirstName: it.FirstName,
			LastName:  it.LastName,
			Email:     it.Email,
			Phone:     it.Phone,
			Address:   it.Address,
		},
		ProjectDescription: it.ProjectDescription,
		Photos:             it.Photos,
		CategoryIDs:        it.CategoryIDs,
		CreatedAt:          parseTime(it.CreatedAt),
		UpdatedAt:          parseTime(it.UpdatedAt),
	}
	if it.Answers != "" {
		if err := json.Unmarshal([]byte(it.Answers), &l.Answers); err != nil {
			return entities.Lead{}, fmt.Errorf("lead %s: answers: %w", it.ID, err)
		}
	}
	if it.EstimateData != "" {
		doc, err := entities.ParseEstimateDocument([]byte(it.EstimateData))
		if err != nil {
			return entities.Lead{}, fmt.Errorf("lead %s: estimate_data: %w", it.ID, err)
		}
		l.Estimate = &doc
	}
	if it.ContractorSignatureName != "" {
		l.ContractorSignature = &entities.Signature{Name: it.ContractorSignatureName, SignedAt: parseTime(it.ContractorSignedAt)}
	}
	if it.CustomerSignatureName != "" {
		l.CustomerSignature = &entities.Signature{Name: it.CustomerSignatureName, SignedAt: parseTime(it.CustomerSignedAt)}
	}
	if it.SentAt != "" {
		t := parseTime(it.SentAt)
		l.SentAt = &t
	}
	return l, nil
}
