package api

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/url"
	"sort"
	"strings"
	"testing"
)

const testBotToken = "123456:TEST-TOKEN"

// signInitData подписывает параметры так же, как это делает Telegram:
// data_check_string из отсортированных пар, секрет = HMAC("WebAppData", токен).
func signInitData(t *testing.T, params map[string]string) string {
	t.Helper()

	var pairs []string
	for k, v := range params {
		pairs = append(pairs, k+"="+v)
	}
	sort.Strings(pairs)
	dataCheckString := strings.Join(pairs, "\n")

	secretKey := hmac.New(sha256.New, []byte("WebAppData"))
	secretKey.Write([]byte(testBotToken))

	h := hmac.New(sha256.New, secretKey.Sum(nil))
	h.Write([]byte(dataCheckString))
	hash := hex.EncodeToString(h.Sum(nil))

	values := url.Values{}
	for k, v := range params {
		values.Set(k, v)
	}
	values.Set("hash", hash)
	return values.Encode()
}

func TestValidateInitData(t *testing.T) {
	userJSON := `{"id":1263060321,"first_name":"Мария","last_name":"Петрова","username":"maria_p"}`

	t.Run("корректная подпись", func(t *testing.T) {
		initData := signInitData(t, map[string]string{
			"user":      userJSON,
			"auth_date": "1756684800",
		})

		ok, userData, err := validateInitData(initData, testBotToken)
		if err != nil {
			t.Fatalf("validateInitData: %v", err)
		}
		if !ok {
			t.Fatal("корректная подпись не прошла проверку")
		}
		if userData.ID != 1263060321 || userData.Username != "maria_p" {
			t.Errorf("данные пользователя разобраны неверно: %+v", userData)
		}
	})

	t.Run("подпись чужим токеном", func(t *testing.T) {
		initData := signInitData(t, map[string]string{
			"user":      userJSON,
			"auth_date": "1756684800",
		})

		ok, _, err := validateInitData(initData, "another:token")
		if err != nil {
			t.Fatalf("validateInitData: %v", err)
		}
		if ok {
			t.Error("подпись чужим токеном прошла проверку")
		}
	})

	t.Run("подделанные данные", func(t *testing.T) {
		initData := signInitData(t, map[string]string{
			"user":      userJSON,
			"auth_date": "1756684800",
		})
		tampered := strings.Replace(initData, "1263060321", "999", 1)

		ok, _, err := validateInitData(tampered, testBotToken)
		if err == nil && ok {
			t.Error("подделанные данные прошли проверку")
		}
	})

	t.Run("без hash", func(t *testing.T) {
		initData := "user=" + url.QueryEscape(userJSON)
		ok, _, err := validateInitData(initData, testBotToken)
		if ok || err == nil {
			t.Error("initData без hash принята")
		}
	})

	t.Run("без user", func(t *testing.T) {
		initData := signInitData(t, map[string]string{"auth_date": "1756684800"})
		ok, _, err := validateInitData(initData, testBotToken)
		if ok || err == nil {
			t.Error("initData без user принята")
		}
	})
}
