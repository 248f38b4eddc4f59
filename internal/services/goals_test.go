package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/senda7/internal/models"
	"github.com/sbilibin2017/senda7/internal/services"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeGoals(t *testing.T) {
	tests := []struct {
		name  string
		goals []string
		want  []string
	}{
		{name: "nil", goals: nil, want: []string{}},
		{name: "keeps order", goals: []string{"b", "a", "c"}, want: []string{"b", "a", "c"}},
		{name: "trims", goals: []string{"  leer  ", "\tcorrer\n"}, want: []string{"leer", "correr"}},
		{name: "drops blanks", goals: []string{"", "leer", "   ", "correr"}, want: []string{"leer", "correr"}},
		{name: "all blank", goals: []string{" ", ""}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, services.NormalizeGoals(tt.goals))
		})
	}
}

func TestGoalService_UpdateGoals(t *testing.T) {
	tests := []struct {
		name      string
		goals     []string
		writerErr error
		wantErr   error
	}{
		{
			name:  "success",
			goals: []string{" aprobar cálculo ", "", "leer 10 libros"},
		},
		{
			name:      "user not found",
			goals:     []string{"x"},
			writerErr: models.ErrUserNotFound,
			wantErr:   models.ErrUserNotFound,
		},
		{
			name:      "storage error",
			goals:     []string{"x"},
			writerErr: errors.New("db down"),
			wantErr:   errors.New("db down"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockWriter := services.NewMockGoalsWriter(ctrl)
			mockKafka := services.NewMockKafkaWriter(ctrl)
			svc := services.NewGoalService(mockWriter, services.NewEventPublisher(mockKafka))

			mockWriter.EXPECT().
				UpdateGoals(gomock.Any(), int64(3), services.NormalizeGoals(tt.goals)).
				Return(tt.writerErr)

			if tt.writerErr == nil {
				mockKafka.EXPECT().WriteMessages(gomock.Any(), gomock.Any()).Return(nil)
			}

			err := svc.UpdateGoals(context.Background(), 3, tt.goals)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGoalService_UpdateGoals_NilPublisher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := services.NewMockGoalsWriter(ctrl)
	svc := services.NewGoalService(mockWriter, nil)

	mockWriter.EXPECT().UpdateGoals(gomock.Any(), int64(1), []string{}).Return(nil)

	assert.NoError(t, svc.UpdateGoals(context.Background(), 1, []string{"   "}))
}
