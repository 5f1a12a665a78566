package dto

type WebappOpen struct {
	TgId      int64
	Username  *string
	FirstName *string
	LastName  *string
}
