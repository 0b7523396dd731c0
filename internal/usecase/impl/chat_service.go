package impl

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	"nutritrack/config"
	"nutritrack/internal/domain/entity"
	domainerrors "nutritrack/internal/domain/errors"
	"nutritrack/internal/domain/repository"
	"nutritrack/internal/domain/service"
	"nutritrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	chatFallbackReply = "I encountered an issue, please try again."
	chatEmptyReply    = "I'm here to help with nutrition. How can I assist?"

	chatInstruction = "You are NutriTrack, a smart AI nutrition assistant. Answer questions about food, meals " +
		"and healthy eating in a friendly and concise way.\n" +
		"Only refer to the user's meals or remaining goals below if the user asks about them.\n\n" +
		"Meals logged today:\n%s\n\n" +
		"Remaining goals for today:\n%s"
)

// chatService implements the ChatUsecase interface.
type chatService struct {
	txManager repository.TransactionManager
	chatRepo  repository.ChatRepository
	mealRepo  repository.MealRepository
	nutrition usecase.NutritionUsecase
	generator service.TextGenerator
	location  *time.Location
	logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(
	txManager repository.TransactionManager,
	chatRepo repository.ChatRepository,
	mealRepo repository.MealRepository,
	nutrition usecase.NutritionUsecase,
	generator service.TextGenerator,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ChatUsecase {
	return &chatService{
		txManager: txManager,
		chatRepo:  chatRepo,
		mealRepo:  mealRepo,
		nutrition: nutrition,
		generator: generator,
		location:  cfg.Scheduler.Location(),
		logger:    logger,
	}
}

func (srv *chatService) ListChats(ctx context.Context, userID uuid.UUID) ([]*entity.Chat, error) {
	chats, err := srv.chatRepo.ListRecent(ctx, userID, entity.MaxChatsPerUser)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chats")
	}

	return chats, nil
}

// CreateChat evicts and inserts in one transaction so concurrent creates cannot exceed the cap.
func (srv *chatService) CreateChat(ctx context.Context, userID uuid.UUID) (*entity.Chat, error) {
	chat := &entity.Chat{UserID: userID}

	err := srv.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		chatRepo := repos.NewChatRepository()

		if err := chatRepo.DeleteOldest(ctx, userID, entity.MaxChatsPerUser-1); err != nil {
			return err
		}

		return chatRepo.Create(ctx, chat)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chat")
	}

	srv.logger.InfoContext(ctx, "Chat created",
		slog.String("user_id", userID.String()),
		slog.String("chat_id", chat.ID.String()),
	)

	return chat, nil
}

// SendMessage answers with the model's reply, or a canned one when the model is unavailable.
func (srv *chatService) SendMessage(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.SendMessageInput,
	now time.Time,
) (*entity.Chat, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("message text must not be blank")
	}

	chat, err := srv.openChat(ctx, userID, input.ChatID)
	if err != nil {
		return nil, err
	}

	turns := make([]service.Turn, 0, len(chat.Messages)+1)
	for _, msg := range chat.Messages {
		turns = append(turns, toTurn(msg))
	}
	turns = append(turns, service.Turn{Role: service.TurnRoleUser, Text: text})

	reply := srv.reply(ctx, chat.ID, srv.buildInstruction(ctx, userID, now), turns)

	repliedAt := time.Now()
	if !repliedAt.After(now) {
		repliedAt = now.Add(time.Millisecond)
	}

	messages := []*entity.ChatMessage{
		{ChatID: chat.ID, Sender: entity.ChatSenderUser, Text: text, SentAt: now},
		{ChatID: chat.ID, Sender: entity.ChatSenderAI, Text: reply, SentAt: repliedAt},
	}

	if err := srv.chatRepo.AppendMessages(ctx, chat.ID, messages); err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "chat deleted while replying")
		}

		return nil, errors.Wrap(err, "failed to save chat messages")
	}

	chat.Messages = append(chat.Messages, messages...)
	chat.UpdatedAt = repliedAt

	return chat, nil
}

func (srv *chatService) openChat(ctx context.Context, userID uuid.UUID, chatID *uuid.UUID) (*entity.Chat, error) {
	if chatID == nil {
		return srv.CreateChat(ctx, userID)
	}

	chat, err := srv.chatRepo.FindByID(ctx, *chatID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrChatNotFound) {
			return nil, errors.Wrap(domainerrors.ErrChatNotFound, "chat not found")
		}

		return nil, errors.Wrap(err, "failed to find chat")
	}

	return chat, nil
}

func (srv *chatService) reply(ctx context.Context, chatID uuid.UUID, instruction string, turns []service.Turn) string {
	reply, err := srv.generator.Converse(ctx, instruction, turns)
	if err != nil {
		srv.logger.WarnContext(ctx, "Chat reply failed",
			slog.String("chat_id", chatID.String()),
			slog.Any("error", err),
		)

		return chatFallbackReply
	}

	if reply = strings.TrimSpace(reply); reply == "" {
		return chatEmptyReply
	}

	return reply
}

// buildInstruction describes today's meals and remaining goals. Lookups that fail leave their section unknown.
func (srv *chatService) buildInstruction(ctx context.Context, userID uuid.UUID, now time.Time) string {
	meals := "unknown"
	window := entity.DayWindow(now, srv.location)
	if records, err := srv.mealRepo.FindByUserInRange(ctx, userID, window.Start, window.End); err != nil {
		srv.logger.WarnContext(ctx, "Chat context: meals unavailable", slog.Any("error", err))
	} else {
		meals = describeMeals(records)
	}

	remaining := "unknown"
	if eval, err := srv.nutrition.EvaluateToday(ctx, userID, now); err != nil {
		srv.logger.WarnContext(ctx, "Chat context: goals unavailable", slog.Any("error", err))
	} else {
		remaining = describeNutrients(eval.Remaining)
	}

	return fmt.Sprintf(chatInstruction, meals, remaining)
}

func describeMeals(meals []*entity.MealRecord) string {
	if len(meals) == 0 {
		return "none"
	}

	lines := make([]string, 0, len(meals))
	for _, meal := range meals {
		lines = append(lines, fmt.Sprintf("- %s: %s", meal.Name, describeNutrients(meal.Nutrients)))
	}

	return strings.Join(lines, "\n")
}

func describeNutrients(n entity.Nutrients) string {
	return fmt.Sprintf("%.0f kcal, %.0fg protein, %.0fg carbs, %.0fg fat",
		math.Round(n.Calories), math.Round(n.Protein), math.Round(n.Carbs), math.Round(n.Fat))
}

func toTurn(msg *entity.ChatMessage) service.Turn {
	role := service.TurnRoleUser
	if msg.Sender == entity.ChatSenderAI {
		role = service.TurnRoleAssistant
	}

	return service.Turn{Role: role, Text: msg.Text}
}
