package ruleRepo

import (
	"context"

	"scooply/database"
	"scooply/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// RuleRepository manages recurrence rules. Rules are paused rather than
// deleted when service is suspended.
type RuleRepository interface {
	Create(ctx context.Context, rule *models.RecurrenceRule) error
	GetActiveRules(ctx context.Context) ([]models.RecurrenceRule, error)
	SetPaused(ctx context.Context, ruleID string, paused bool) error
}

type mongoRuleRepo struct {
	coll *mongo.Collection
}

// NewMongoRuleRepo constructs a new MongoDB RuleRepository.
func NewMongoRuleRepo() RuleRepository {
	db := database.MongoClient.Database("scooply")
	return &mongoRuleRepo{
		coll: db.Collection("recurrence_rules"),
	}
}
