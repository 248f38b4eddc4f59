package services

//go:generate mockgen -source=goals.go -destination=mock_goals.go -package=services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/senda7/internal/logger"
	"github.com/sbilibin2017/senda7/internal/models"
)

// GoalsWriter replaces the goal list of a user.
type GoalsWriter interface {
	UpdateGoals(ctx context.Context, userID int64, goals []string) error
}

// GoalService manages user goals.
type GoalService struct {
	writer    GoalsWriter
	publisher *EventPublisher
}

// NewGoalService creates a new GoalService. publisher may be nil.
func NewGoalService(writer GoalsWriter, publisher *EventPublisher) *GoalService {
	return &GoalService{writer: writer, publisher: publisher}
}

// UpdateGoals replaces the goals of userID. Entries are trimmed and blank
// entries dropped; the order of the rest is kept.
func (svc *GoalService) UpdateGoals(ctx context.Context, userID int64, goals []string) error {
	cleaned := NormalizeGoals(goals)

	if err := svc.writer.UpdateGoals(ctx, userID, cleaned); err != nil {
		logger.Log.Errorw("failed to update goals", "user_id", userID, "err", err)
		return err
	}

	svc.publisher.Publish(ctx, models.EventUserGoalsUpdated, userID)
	return nil
}

// NormalizeGoals trims every goal and removes the blank ones.
func NormalizeGoals(goals []string) []string {
	cleaned := make([]string, 0, len(goals))
	for _, g := range goals {
		if g = strings.TrimSpace(g); g != "" {
			cleaned = append(cleaned, g)
		}
	}
	return cleaned
}
