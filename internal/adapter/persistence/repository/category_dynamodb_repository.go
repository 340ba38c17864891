package repository

import (
	"context"
	"sort"

	"contractor_estimates/internal/domain/entities"
	"contractor_estimates/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const DefaultCategoriesTableName = "categories"

type categoryItem struct {
	ContractorID string              `dynamodbav:"contractor_id"`
	ID           string              `dynamodbav:"id"`
	Position     int                 `dynamodbav:"position"`
	Name         string              `dynamodbav:"name"`
	Description  string              `dynamodbav:"description,omitempty"`
	Keywords     []string            `dynamodbav:"keywords,omitempty"`
	Questions    []entities.Question `dynamodbav:"questions,omitempty"`
}

// CategoryDynamoRepository reads contractor catalogs from DynamoDB.
//
// Table requirements:
//   - PK: contractor_id (string), SK: id (string)
//   - position (number) orders the catalog for display
type CategoryDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ICategoryRepository = (*CategoryDynamoRepository)(nil)

func NewCategoryDynamoRepository(ddb DynamoAPI, tableName string) *CategoryDynamoRepository {
	if tableName == "" {
		tableName = DefaultCategoriesTableName
	}
	return &CategoryDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CategoryDynamoRepository) ListByContractorID(ctx context.Context, contractorID string) ([]entities.Category, error) {
	items := make([]categoryItem, 0)
	var startKey map[string]types.AttributeValue
	for {
		out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
			TableName:              aws.String(r.tableName),
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
			var it categoryItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, it)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(items, func(i, j int) bool { return items[i].Position < items[j].Position })
	categories := make([]entities.Category, 0, len(items))
	for _, it := range items {
		categories = append(categories, fromCategoryItem(it))
	}
	return categories, nil
}

func fromCategoryItem(it categoryItem) entities.Category {
	return entities.Category{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Keywords:    it.Keywords,
		Questions:   it.Questions,
	}
}
