package messages

const (
	FailedToParseMsg     = "failed to parse import payload %s"
	FiltersNotNil        = "filters can't be nil"
	InternalError        = "Internal Server Error"
	InvalidParameters    = "Invalid parameters"
	RewardNotConfigured  = "Reward is not configured"
	TelegramUserNotFound = "no_user_id"
)
