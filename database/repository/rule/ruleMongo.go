package ruleRepo

import (
	"context"
	"fmt"
	"time"

	"scooply/models"

	"go.mongodb.org/mongo-driver/bson"
)

// Create validates and inserts a new recurrence rule. Invalid rules are
// rejected, never coerced.
func (repo *mongoRuleRepo) Create(ctx context.Context, rule *models.RecurrenceRule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rule.CreatedAt = time.Now()
	rule.UpdatedAt = rule.CreatedAt
	if _, err := repo.coll.InsertOne(ctxWithTimeout, rule); err != nil {
		return fmt.Errorf("error creating rule for customer %s: %w", rule.CustomerID, err)
	}
	return nil
}

// GetActiveRules retrieves every rule that is not paused.
func (repo *mongoRuleRepo) GetActiveRules(ctx context.Context) ([]models.RecurrenceRule, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"paused": false})
	if err != nil {
		return nil, fmt.Errorf("error fetching active rules: %w", err)
	}
	defer cursor.Close(ctxWithTimeout)

	var rules []models.RecurrenceRule
	if err := cursor.All(ctxWithTimeout, &rules); err != nil {
		return nil, fmt.Errorf("error decoding active rules: %w", err)
	}
	return rules, nil
}

// SetPaused flips a rule's pause flag.
func (repo *mongoRuleRepo) SetPaused(ctx context.Context, ruleID string, paused bool) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"paused": paused, "updatedAt": time.Now()}}
	res, err := repo.coll.UpdateOne(ctxWithTimeout, bson.M{"id": ruleID}, update)
	if err != nil {
		return fmt.Errorf("error updating rule %s: %w", ruleID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("rule %s not found", ruleID)
	}
	return nil
}
