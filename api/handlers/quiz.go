package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"wrstats/api/dto"
	"wrstats/api/middleware"
	quizservice "wrstats/api/services/quiz"
	"wrstats/pkg/messages"
)

type QuizService interface {
	Status(ctx context.Context, telegramUserId int64) (*dto.QuizStatus, error)
	Attempt(ctx context.Context, telegramUserId int64, result dto.QuizResult) (*dto.QuizAttemptResult, error)
	Reward(ctx context.Context, telegramUserId int64) (*dto.QuizReward, error)
}

// Body of a finished attempt, every field is optional.
type QuizAttemptBody struct {
	Percent *int `json:"percent" binding:"omitempty,min=0,max=100"`
	Correct *int `json:"correct" binding:"omitempty,min=0"`
	Total   *int `json:"total" binding:"omitempty,min=0"`
}

// QuizHandler expects the TelegramAuth middleware in front of it.
type QuizHandler struct {
	quizService QuizService
	botToken    string
}

type QuizHandlerDependencies struct {
	QuizService QuizService
	BotToken    string
}

func NewQuizHandler(deps *QuizHandlerDependencies) *QuizHandler {
	return &QuizHandler{
		quizService: deps.QuizService,
		botToken:    deps.BotToken,
	}
}

// Auth verifies the Telegram init data of the quiz requests.
func (h *QuizHandler) Auth() gin.HandlerFunc {
	return middleware.TelegramAuth(h.botToken)
}

// GetStatus returns the progress of the user.
func (h *QuizHandler) GetStatus(c *gin.Context) {
	userId, ok := middleware.TelegramUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "reason": messages.TelegramUserNotFound})
		return
	}

	result, err := h.quizService.Status(c.Request.Context(), userId)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// PostAttempt records a finished attempt.
func (h *QuizHandler) PostAttempt(c *gin.Context) {
	userId, ok := middleware.TelegramUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "reason": messages.TelegramUserNotFound})
		return
	}

	// An empty body is an attempt without results.
	var body QuizAttemptBody
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		respondBindingError(c, err)
		return
	}

	result, err := h.quizService.Attempt(c.Request.Context(), userId, dto.QuizResult{
		Percent: body.Percent,
		Correct: body.Correct,
		Total:   body.Total,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetReward returns the reward link, 403 when the user isn't eligible.
func (h *QuizHandler) GetReward(c *gin.Context) {
	userId, ok := middleware.TelegramUserID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "reason": messages.TelegramUserNotFound})
		return
	}

	reward, err := h.quizService.Reward(c.Request.Context(), userId)
	if errors.Is(err, quizservice.ErrRewardNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": messages.RewardNotConfigured})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	if !reward.Allowed {
		c.JSON(http.StatusForbidden, reward)
		return
	}

	c.JSON(http.StatusOK, reward)
}
