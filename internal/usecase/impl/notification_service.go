package impl

import (
	"context"
	"log/slog"
	"time"

	"plantcare/config"
	deliverycontext "plantcare/internal/delivery/context"
	"plantcare/internal/domain/entity"
	domainerrors "plantcare/internal/domain/errors"
	"plantcare/internal/domain/repository"
	"plantcare/internal/domain/service"
	"plantcare/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	testPlantName      = "Test Plant"
	testPlantID        = "test-plant-id"
	testScheduleID     = "test-schedule-id"
	msgTestAllSent     = "Test notifications sent successfully"
	msgTestSomeFailed  = "Some notifications failed"
	msgTestNoneSent    = "No notifications sent"
	noteEnableChannels = "Enable email or push notifications in settings"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	userRepo   repository.UserRepository
	logRepo    repository.NotificationLogRepository
	emailSvc   service.EmailService
	pushSvc    service.PushService
	appBaseURL string
	logger     *slog.Logger
	now        func() time.Time
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	LogRepo  repository.NotificationLogRepository
	EmailSvc service.EmailService
	PushSvc  service.PushService
	Config   *config.Config
	Logger   *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		userRepo:   params.UserRepo,
		logRepo:    params.LogRepo,
		emailSvc:   params.EmailSvc,
		pushSvc:    params.PushSvc,
		appBaseURL: params.Config.App.BaseURL,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetPreferences returns the user's stored channel preferences.
func (srv *notificationService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.NotificationPreferences, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := user.NotificationPreferences

	return &prefs, nil
}

// UpdatePreferences merges input into the stored preferences.
func (srv *notificationService) UpdatePreferences(ctx context.Context, userID uuid.UUID, input *usecase.UpdatePreferencesInput) (*entity.NotificationPreferences, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prefs := user.NotificationPreferences
	if input.PushEnabled != nil {
		prefs.PushEnabled = *input.PushEnabled
	}
	if input.EmailEnabled != nil {
		prefs.EmailEnabled = *input.EmailEnabled
	}
	if input.PreferredTime != nil {
		tod, err := parseTimeOfDay(*input.PreferredTime)
		if err != nil {
			return nil, err
		}
		prefs.PreferredTime = tod.String()
	}
	if input.DailyDigest != nil {
		prefs.DailyDigest = *input.DailyDigest
	}

	if err := srv.userRepo.UpdateNotificationPreferences(ctx, userID, prefs); err != nil {
		return nil, mapUserError(err, "failed to update notification preferences")
	}

	srv.log(ctx).Info("Notification preferences updated",
		slog.String("userID", userID.String()),
		slog.Bool("email", prefs.EmailEnabled),
		slog.Bool("push", prefs.PushEnabled),
	)

	return &prefs, nil
}

// Subscribe stores the push registration token.
func (srv *notificationService) Subscribe(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return domainerrors.ErrValidationFailed.WithDetails("push token is required")
	}

	if err := srv.userRepo.UpdatePushToken(ctx, userID, token); err != nil {
		return mapUserError(err, "failed to save push token")
	}

	return nil
}

// SendTest sends a sample watering reminder through each enabled channel.
func (srv *notificationService) SendTest(ctx context.Context, userID uuid.UUID) (*usecase.TestNotificationOutput, error) {
	user, err := srv.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := reminder{
		UserName:   user.Name,
		PlantName:  testPlantName,
		TaskType:   entity.TaskTypeWatering,
		DueAt:      srv.now(),
		PlantID:    testPlantID,
		ScheduleID: testScheduleID,
	}
	if r.UserName == "" {
		r.UserName = defaultUserName
	}

	var details []string
	failed := false

	if user.WantsEmail() {
		if err := srv.sendTestEmail(ctx, user.Email, r); err != nil {
			details = append(details, "Email failed: "+err.Error())
			failed = true
		} else {
			details = append(details, "Email notification sent")
		}
	}

	if user.WantsPush() {
		if _, err := srv.pushSvc.Send(ctx, *user.PushToken, buildReminderPush(r)); err != nil {
			details = append(details, "Push failed: "+err.Error())
			failed = true
		} else {
			details = append(details, "Push notification sent")
		}
	}

	if len(details) == 0 {
		return &usecase.TestNotificationOutput{Message: msgTestNoneSent, Note: noteEnableChannels}, nil
	}

	message := msgTestAllSent
	if failed {
		message = msgTestSomeFailed
		srv.log(ctx).Warn("Test notification failed", slog.String("userID", userID.String()), slog.Any("details", details))
	}

	return &usecase.TestNotificationOutput{Message: message, Details: details}, nil
}

func (srv *notificationService) sendTestEmail(ctx context.Context, to string, r reminder) error {
	msg, err := buildReminderEmail(to, srv.appBaseURL, r)
	if err != nil {
		return errors.Wrap(err, "render reminder email")
	}

	_, err = srv.emailSvc.Send(ctx, msg)

	return err
}

// ListLogs returns one page of the user's delivery attempts.
func (srv *notificationService) ListLogs(ctx context.Context, userID uuid.UUID, page, limit int) (*entity.Page[*entity.NotificationLog], error) {
	page, limit, offset := normalizePagination(page, limit)

	logs, total, err := srv.logRepo.FindByUser(ctx, userID, offset, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notification logs")
	}

	return entity.NewPage(logs, page, limit, total), nil
}

func (srv *notificationService) findUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, mapUserError(err, "failed to load user")
	}

	return user, nil
}

func mapUserError(err error, message string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrUserNotFound.WrapMessage(message)
	}

	return errors.Wrap(err, message)
}
