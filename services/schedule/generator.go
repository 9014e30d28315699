package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	visitRepo "scooply/database/repository/visit"
	"scooply/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RuleSource is the slice of rule storage the generator reads.
type RuleSource interface {
	GetActiveRules(ctx context.Context) ([]models.RecurrenceRule, error)
}

// VisitStore is the slice of visit storage the generator writes.
type VisitStore interface {
	Create(ctx context.Context, visit *models.ScheduledVisit) error
	ExistsForCustomerOnDate(ctx context.Context, customerID, date string) (bool, error)
}

// RouteGenerator expands active rules into concrete visits over a rolling
// horizon. Safe to re-run on overlapping horizons: the existence check plus
// the storage-level unique (customerId, date) index keep the run idempotent.
type RouteGenerator struct {
	Rules  RuleSource
	Visits VisitStore
	Logger *zap.Logger
}

// GenerateUpcoming creates visits for every active rule over
// [today, today+horizonDays) evaluated in each rule's own timezone. A failure
// on one rule is recorded and generation continues with the rest.
func (g *RouteGenerator) GenerateUpcoming(ctx context.Context, now time.Time, horizonDays int) models.GenerationResult {
	result := models.GenerationResult{Errors: []string{}}

	rules, err := g.Rules.GetActiveRules(ctx)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("fetch active rules: %v", err))
		return result
	}

	for i := range rules {
		rule := &rules[i]
		created, err := g.generateForRule(ctx, rule, now, horizonDays)
		result.Created += created
		if err != nil {
			g.Logger.Error("route generation failed for rule",
				zap.String("ruleId", rule.ID),
				zap.String("customerId", rule.CustomerID),
				zap.Error(err))
			result.Errors = append(result.Errors, fmt.Sprintf("rule %s (customer %s): %v", rule.ID, rule.CustomerID, err))
		}
	}

	g.Logger.Info("route generation complete",
		zap.Int("rules", len(rules)),
		zap.Int("created", result.Created),
		zap.Int("errors", len(result.Errors)))
	return result
}

func (g *RouteGenerator) generateForRule(ctx context.Context, rule *models.RecurrenceRule, now time.Time, horizonDays int) (int, error) {
	today := LocalDate(now, rule)
	created := 0

	for _, date := range Enumerate(rule, today, horizonDays) {
		exists, err := g.Visits.ExistsForCustomerOnDate(ctx, rule.CustomerID, date)
		if err != nil {
			return created, fmt.Errorf("existence check on %s: %w", date, err)
		}
		if exists {
			continue
		}

		visit := &models.ScheduledVisit{
			ID:            uuid.New().String(),
			CustomerID:    rule.CustomerID,
			Date:          date,
			ScheduledTime: rule.WindowStart,
			Status:        models.VisitStatusScheduled,
			OrderIndex:    0,
			Billable:      true,
		}
		if err := g.Visits.Create(ctx, visit); err != nil {
			// A concurrent run won the race for this date; the unique index
			// did its job and this stop already exists.
			if errors.Is(err, visitRepo.ErrDuplicateVisit) {
				continue
			}
			return created, fmt.Errorf("create visit on %s: %w", date, err)
		}
		created++
	}
	return created, nil
}

// ScheduleOneTime creates a single dated visit directly, bypassing the
// expander. One-time and new-start services go through here; they have no
// day-of-week set to expand.
func (g *RouteGenerator) ScheduleOneTime(ctx context.Context, customerID, date, scheduledTime string) (*models.ScheduledVisit, error) {
	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid visit date %q: %w", date, err)
	}

	visit := &models.ScheduledVisit{
		ID:            uuid.New().String(),
		CustomerID:    customerID,
		Date:          date,
		ScheduledTime: scheduledTime,
		Status:        models.VisitStatusScheduled,
		OrderIndex:    0,
		Billable:      true,
	}
	if err := g.Visits.Create(ctx, visit); err != nil {
		return nil, err
	}
	return visit, nil
}
