package message

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/khoahotran/personal-site/internal/application/service"
	"github.com/khoahotran/personal-site/internal/domain/site"
	"github.com/khoahotran/personal-site/pkg/apperror"
	"github.com/khoahotran/personal-site/pkg/logger"
)

var validate = validator.New()

type MessageUseCase struct {
	siteRepo  site.Repository
	publisher service.EventPublisher
	logger    logger.Logger
	now       func() time.Time
}

func NewMessageUseCase(repo site.Repository, pub service.EventPublisher, log logger.Logger) *MessageUseCase {
	return &MessageUseCase{siteRepo: repo, publisher: pub, logger: log, now: time.Now}
}

type SubmitMessageInput struct {
	Sender string
	Email  string
	Body   string
}

// SubmitMessage stores a public contact form submission.
func (uc *MessageUseCase) SubmitMessage(ctx context.Context, in SubmitMessageInput) (*site.Message, error) {
	sender := strings.TrimSpace(in.Sender)
	email := strings.TrimSpace(in.Email)
	body := strings.TrimSpace(in.Body)
	switch {
	case sender == "":
		return nil, apperror.NewInvalidInput("Sender is required", nil)
	case validate.Var(email, "required,email") != nil:
		return nil, apperror.NewInvalidInput("Valid email is required", nil)
	case body == "":
		return nil, apperror.NewInvalidInput("Message body is required", nil)
	}

	msg := site.Message{
		ID:         "m-" + uuid.NewString(),
		Sender:     sender,
		Email:      email,
		Status:     site.MessageStatusNew,
		ReceivedAt: uc.now().UTC(),
		Body:       body,
	}
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		state.Messages = append(state.Messages, msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("save message failed: %w", err)
	}

	uc.logger.Info("Contact message received", zap.String("message_id", msg.ID))
	service.PublishStateSaved(uc.publisher, uc.logger, "message", msg.ID)
	return &msg, nil
}

// ListMessages returns messages newest first.
func (uc *MessageUseCase) ListMessages(ctx context.Context) ([]site.Message, error) {
	state, err := uc.siteRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("list messages failed: %w", err)
	}
	return state.MessagesNewestFirst(), nil
}

func (uc *MessageUseCase) UpdateMessageStatus(ctx context.Context, id, status string) (*site.Message, error) {
	next := site.MessageStatus(strings.TrimSpace(status))
	var updated site.Message
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		idx := state.FindMessage(id)
		if idx < 0 {
			return apperror.NewNotFound("message", id)
		}
		if next != "" {
			if !next.Valid() {
				return apperror.NewInvalidInput(site.ErrInvalidMessageStatus.Error(), site.ErrInvalidMessageStatus)
			}
			state.Messages[idx].Status = next
		}
		updated = state.Messages[idx]
		return nil
	})
	if err != nil {
		return nil, err
	}
	service.PublishStateSaved(uc.publisher, uc.logger, "message", id)
	return &updated, nil
}

func (uc *MessageUseCase) DeleteMessage(ctx context.Context, id string) error {
	_, err := uc.siteRepo.Update(ctx, func(state *site.State) error {
		if !state.DeleteMessage(id) {
			return apperror.NewNotFound("message", id)
		}
		return nil
	})
	if err != nil {
		return err
	}
	service.PublishStateSaved(uc.publisher, uc.logger, "message", id)
	return nil
}
