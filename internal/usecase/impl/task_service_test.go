package impl

import (
	"context"
	"testing"
	"time"

	"plantcare/internal/domain/constants"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	mockRepo "plantcare/internal/mocks/repository"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var taskNow = time.Date(2024, time.February, 27, 10, 15, 0, 0, time.UTC)

type taskServiceFixtures struct {
	service      *taskService
	txManager    *mockRepo.MockTransactionManager
	plantRepo    *mockRepo.MockPlantRepository
	scheduleRepo *mockRepo.MockScheduleRepository
	taskRepo     *mockRepo.MockCareTaskRepository
}

func createTestTaskService(t *testing.T) taskServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	plantRepo := mockRepo.NewMockPlantRepository(t)
	scheduleRepo := mockRepo.NewMockScheduleRepository(t)
	taskRepo := mockRepo.NewMockCareTaskRepository(t)

	svc := NewTaskService(TaskServiceParams{
		TxManager:    txManager,
		PlantRepo:    plantRepo,
		ScheduleRepo: scheduleRepo,
		TaskRepo:     taskRepo,
		Logger:       newDiscardLogger(),
	}).(*taskService)
	svc.now = fixedClock(taskNow)

	return taskServiceFixtures{
		service:      svc,
		txManager:    txManager,
		plantRepo:    plantRepo,
		scheduleRepo: scheduleRepo,
		taskRepo:     taskRepo,
	}
}

// expectTransaction runs fn against a factory backed by the given repositories.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, scheduleRepo *mockRepo.MockScheduleRepository, taskRepo *mockRepo.MockCareTaskRepository) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().NewCareTaskRepository().Return(taskRepo).Maybe()
			factory.EXPECT().NewScheduleRepository().Return(scheduleRepo).Maybe()

			return fn(factory)
		})
}

func TestTaskService_CompleteTask_AdvancesOneCycle(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	nextDue := time.Date(2024, time.February, 26, 9, 0, 0, 0, time.UTC)
	schedule := &entity.CareSchedule{ID: uuid.New(), PlantID: uuid.New(), FrequencyDays: 3, NextDueDate: nextDue}
	txSchedules := mockRepo.NewMockScheduleRepository(t)
	txTasks := mockRepo.NewMockCareTaskRepository(t)

	fx.scheduleRepo.EXPECT().FindByIDForUser(ctx, schedule.ID, userID).Return(schedule, nil)
	expectTransaction(t, fx.txManager, txSchedules, txTasks)
	txTasks.EXPECT().
		Create(ctx, mock.MatchedBy(func(task *entity.CareTask) bool {
			return task.ScheduleID == schedule.ID &&
				task.PlantID == schedule.PlantID &&
				task.CompletedAt.Equal(taskNow) &&
				task.Notes == "soaked"
		})).
		Return(nil)
	txSchedules.EXPECT().
		AdvanceNextDueDate(ctx, schedule.ID, nextDue, time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC)).
		Return(nil)

	out, err := fx.service.CompleteTask(ctx, userID, &usecase.CompleteTaskInput{ScheduleID: schedule.ID, Notes: "soaked"})

	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.February, 29, 9, 0, 0, 0, time.UTC), out.Schedule.NextDueDate)
	assert.Equal(t, schedule.ID, out.Task.ScheduleID)
}

func TestTaskService_CompleteTask_RollsBackWhenTaskInsertFails(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	nextDue := time.Date(2024, time.February, 26, 9, 0, 0, 0, time.UTC)
	schedule := &entity.CareSchedule{ID: uuid.New(), FrequencyDays: 3, NextDueDate: nextDue}
	txSchedules := mockRepo.NewMockScheduleRepository(t)
	txTasks := mockRepo.NewMockCareTaskRepository(t)

	fx.scheduleRepo.EXPECT().FindByIDForUser(ctx, schedule.ID, userID).Return(schedule, nil)
	expectTransaction(t, fx.txManager, txSchedules, txTasks)
	txTasks.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	out, err := fx.service.CompleteTask(ctx, userID, &usecase.CompleteTaskInput{ScheduleID: schedule.ID})

	require.Error(t, err)
	assert.Nil(t, out)
	assert.Equal(t, nextDue, schedule.NextDueDate)
	txSchedules.AssertNotCalled(t, "AdvanceNextDueDate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestTaskService_CompleteTask_ConcurrentAdvanceIsConflict(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	schedule := &entity.CareSchedule{ID: uuid.New(), FrequencyDays: 1, NextDueDate: taskNow}
	txSchedules := mockRepo.NewMockScheduleRepository(t)
	txTasks := mockRepo.NewMockCareTaskRepository(t)

	fx.scheduleRepo.EXPECT().FindByIDForUser(ctx, schedule.ID, userID).Return(schedule, nil)
	expectTransaction(t, fx.txManager, txSchedules, txTasks)
	txTasks.EXPECT().Create(ctx, mock.Anything).Return(nil)
	txSchedules.EXPECT().
		AdvanceNextDueDate(ctx, schedule.ID, mock.Anything, mock.Anything).
		Return(repository.ErrScheduleAdvanceConflict)

	_, err := fx.service.CompleteTask(ctx, userID, &usecase.CompleteTaskInput{ScheduleID: schedule.ID})

	require.ErrorIs(t, err, domainerrors.ErrScheduleConflict)
}

func TestTaskService_CompleteTask_UnknownSchedule(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	scheduleID := uuid.New()

	fx.scheduleRepo.EXPECT().FindByIDForUser(ctx, scheduleID, userID).Return(nil, repository.ErrScheduleNotFound)

	_, err := fx.service.CompleteTask(ctx, userID, &usecase.CompleteTaskInput{ScheduleID: scheduleID})

	require.ErrorIs(t, err, domainerrors.ErrScheduleNotFound)
}

func TestTaskService_ListUpcoming_WindowNeedsBothDates(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2024, time.March, 1, 15, 0, 0, 0, time.UTC)

	fx.scheduleRepo.EXPECT().FindUpcoming(ctx, userID, (*time.Time)(nil), (*time.Time)(nil)).Return(nil, nil)

	_, err := fx.service.ListUpcoming(ctx, userID, &usecase.UpcomingTasksInput{StartDate: &start})

	require.NoError(t, err)
}

func TestTaskService_ListUpcoming_BoundsWholeDays(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	start := time.Date(2024, time.March, 1, 15, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 7, 8, 0, 0, 0, time.UTC)

	fx.scheduleRepo.EXPECT().
		FindUpcoming(ctx, userID, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ uuid.UUID, from, to *time.Time) {
			require.NotNil(t, from)
			require.NotNil(t, to)
			assert.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), *from)
			assert.Equal(t, time.Date(2024, time.March, 7, 23, 59, 59, 999999999, time.UTC), *to)
		}).
		Return([]*entity.CareSchedule{}, nil)

	schedules, err := fx.service.ListUpcoming(ctx, userID, &usecase.UpcomingTasksInput{StartDate: &start, EndDate: &end})

	require.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestTaskService_ListUpcoming_RejectsInvertedRange(t *testing.T) {
	fx := createTestTaskService(t)
	start := time.Date(2024, time.March, 8, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 7, 0, 0, 0, 0, time.UTC)

	_, err := fx.service.ListUpcoming(context.Background(), uuid.New(), &usecase.UpcomingTasksInput{StartDate: &start, EndDate: &end})

	require.ErrorIs(t, err, domainerrors.ErrInvalidDateRange)
}

func TestTaskService_ListHistory_ClampsPagination(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.taskRepo.EXPECT().FindByUser(ctx, userID, 0, constants.MaxLimit).Return([]*entity.CareTask{{ID: uuid.New()}}, int64(101), nil)

	page, err := fx.service.ListHistory(ctx, userID, 0, 500)

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, constants.MaxLimit, page.Limit)
	assert.Equal(t, 2, page.TotalPages)
	assert.Len(t, page.Items, 1)
}

func TestTaskService_ListPlantHistory_ChecksOwnership(t *testing.T) {
	fx := createTestTaskService(t)
	ctx := context.Background()
	userID := uuid.New()
	plantID := uuid.New()

	fx.plantRepo.EXPECT().FindByIDForUser(ctx, plantID, userID).Return(nil, repository.ErrPlantNotFound)

	_, err := fx.service.ListPlantHistory(ctx, userID, plantID)

	require.ErrorIs(t, err, domainerrors.ErrPlantNotFound)
	fx.taskRepo.AssertNotCalled(t, "FindByPlant", mock.Anything, mock.Anything, mock.Anything)
}
