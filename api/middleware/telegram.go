package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wrstats/pkg/messages"
	"wrstats/pkg/telegram"
)

const telegramUserKey = "telegramUserId"

// TelegramAuth verifies the WebApp init data before the quiz handlers run.
// A bad signature is a 401, valid data without a user is a 400.
func TelegramAuth(botToken string) gin.HandlerFunc {
	return func(c *gin.Context) {
		initData := c.GetHeader(telegram.InitDataHeader)

		if result := telegram.Verify(initData, botToken); !result.OK {
			c.Header("Cache-Control", NoStore)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "reason": result.Reason})
			return
		}

		userId, ok := telegram.ExtractUserID(initData)
		if !ok {
			c.Header("Cache-Control", NoStore)
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Bad Request", "reason": messages.TelegramUserNotFound})
			return
		}

		c.Set(telegramUserKey, userId)
		c.Next()
	}
}

// TelegramUserID returns the user set by TelegramAuth.
func TelegramUserID(c *gin.Context) (int64, bool) {
	value, ok := c.Get(telegramUserKey)
	if !ok {
		return 0, false
	}
	userId, ok := value.(int64)
	return userId, ok
}
