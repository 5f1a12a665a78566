package telegram

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/url"
	"sort"
	"strings"
)

// Reasons returned when the init data can't be trusted.
const (
	ReasonMissingInitData = "missing_init_data"
	ReasonMissingBotToken = "missing_bot_token"
	ReasonMissingHash     = "missing_hash"
	ReasonBadHash         = "bad_hash"
	ReasonMalformed       = "malformed_init_data"
)

// Header carrying the raw init data of the WebApp.
const InitDataHeader = "X-Telegram-Init-Data"

// Verification is the outcome of the signature check.
type Verification struct {
	OK     bool
	Reason string
}

// User is the subset of the WebApp user we rely on.
type User struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// Verify checks the init data signature with the bot token.
// The secret key is HMAC_SHA256("WebAppData", botToken), and the hash is
// HMAC_SHA256(secretKey, data_check_string) with the pairs sorted by key.
func Verify(initData, botToken string) Verification {
	if initData == "" {
		return Verification{Reason: ReasonMissingInitData}
	}
	if botToken == "" {
		return Verification{Reason: ReasonMissingBotToken}
	}

	params, err := ParseInitData(initData)
	if err != nil {
		return Verification{Reason: ReasonMalformed}
	}

	hash := params.Get("hash")
	if hash == "" {
		return Verification{Reason: ReasonMissingHash}
	}
	params.Del("hash")

	expected := sign(DataCheckString(params), botToken)
	if !hmac.Equal([]byte(expected), []byte(hash)) {
		return Verification{Reason: ReasonBadHash}
	}

	return Verification{OK: true}
}

// ParseInitData decodes the query string pairs of the init data.
// Only '&' separates pairs, so a raw ';' in a value is kept as is.
func ParseInitData(initData string) (url.Values, error) {
	params := url.Values{}
	for _, pair := range strings.Split(initData, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		key, err := url.QueryUnescape(key)
		if err != nil {
			return nil, err
		}
		value, err = url.QueryUnescape(value)
		if err != nil {
			return nil, err
		}
		params.Add(key, value)
	}
	return params, nil
}

// DataCheckString builds the "key=value" lines sorted by key.
func DataCheckString(params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(params.Get(k))
	}
	return sb.String()
}

// Sign computes the hex hash of the data check string.
// Exposed so tests and tooling can produce valid init data.
func Sign(params url.Values, botToken string) string {
	return sign(DataCheckString(params), botToken)
}

func sign(dataCheckString, botToken string) string {
	secret := hmac.New(sha256.New, []byte("WebAppData"))
	secret.Write([]byte(botToken))

	mac := hmac.New(sha256.New, secret.Sum(nil))
	mac.Write([]byte(dataCheckString))
	return hex.EncodeToString(mac.Sum(nil))
}

// ExtractUser decodes the user field of the init data.
func ExtractUser(initData string) (*User, bool) {
	params, err := ParseInitData(initData)
	if err != nil {
		return nil, false
	}

	raw := params.Get("user")
	if raw == "" {
		return nil, false
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, false
	}
	return &user, true
}

// ExtractUserID returns the telegram user id, false when missing or zero.
func ExtractUserID(initData string) (int64, bool) {
	user, ok := ExtractUser(initData)
	if !ok || user.ID == 0 {
		return 0, false
	}
	return user.ID, true
}
