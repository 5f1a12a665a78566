package dto

// Result of the last recorded attempt.
type QuizResult struct {
	Percent *int `json:"percent"`
	Correct *int `json:"correct"`
	Total   *int `json:"total"`
}

type QuizStatus struct {
	TelegramUserId int64      `json:"telegramUserId"`
	QuizKey        string     `json:"quizKey"`
	Attempts       int        `json:"attempts"`
	MaxAttempts    int        `json:"maxAttempts"`
	Blocked        bool       `json:"blocked"`
	Last           QuizResult `json:"last"`
}

type QuizAttemptResult struct {
	TelegramUserId int64      `json:"telegramUserId"`
	QuizKey        string     `json:"quizKey"`
	Attempts       int        `json:"attempts"`
	MaxAttempts    int        `json:"maxAttempts"`
	Blocked        bool       `json:"blocked"`
	Saved          QuizResult `json:"saved"`
}

type QuizReward struct {
	Allowed bool    `json:"allowed"`
	URL     *string `json:"url"`
	Reason  *string `json:"reason"`
}
