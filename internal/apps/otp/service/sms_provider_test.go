package service

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTwilioProvider_Send(t *testing.T) {
	t.Run("posts the message with basic auth", func(t *testing.T) {
		var gotPath, gotTo, gotFrom, gotBody string
		var gotUser, gotPass string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUser, gotPass, _ = r.BasicAuth()
			_ = r.ParseForm()
			gotTo = r.PostFormValue("To")
			gotFrom = r.PostFormValue("From")
			gotBody = r.PostFormValue("Body")
			w.WriteHeader(http.StatusCreated)
		}))
		defer srv.Close()

		p := &twilioProvider{
			accountSID: "AC123",
			authToken:  "secret",
			baseURL:    srv.URL,
			client:     &http.Client{Timeout: time.Second},
		}

		err := p.Send("Your OTP is 1234", "+19093655548", "9999999999")

		assert.NoError(t, err)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", gotPath)
		assert.Equal(t, "AC123", gotUser)
		assert.Equal(t, "secret", gotPass)
		assert.Equal(t, "9999999999", gotTo)
		assert.Equal(t, "+19093655548", gotFrom)
		assert.Equal(t, "Your OTP is 1234", gotBody)
	})

	t.Run("non-2xx response is a delivery error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code": 21211}`, http.StatusBadRequest)
		}))
		defer srv.Close()

		p := &twilioProvider{
			accountSID: "AC123",
			authToken:  "secret",
			baseURL:    srv.URL,
			client:     &http.Client{Timeout: time.Second},
		}

		err := p.Send("Your OTP is 1234", "+19093655548", "bad-number")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "status 400")
	})
}
