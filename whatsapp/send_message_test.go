package whatsapp

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendText_Success(t *testing.T) {
	var gotRequest *http.Request
	var gotBody TextMessage

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r
		body, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(body, &gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messaging_product": "whatsapp", "messages": [{"id": "wamid.out"}]}`))
	}))
	defer ts.Close()

	client := NewClient("test-token", "10001", ts.URL, ts.Client())

	err := client.SendText("5511999990000", "hello")
	require.NoError(t, err)

	assert.Equal(t, "/10001/messages", gotRequest.URL.Path)
	assert.Equal(t, "Bearer test-token", gotRequest.Header.Get("Authorization"))
	assert.Equal(t, "application/json", gotRequest.Header.Get("Content-Type"))

	assert.Equal(t, "whatsapp", gotBody.MessagingProduct)
	assert.Equal(t, "5511999990000", gotBody.To)
	assert.Equal(t, "text", gotBody.Type)
	assert.Equal(t, "hello", gotBody.Text.Body)
}

func TestSendText_MissingCredentialsFailsFast(t *testing.T) {
	called := false
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer ts.Close()

	testCases := []struct {
		name          string
		accessToken   string
		phoneNumberID string
	}{
		{name: "no access token", accessToken: "", phoneNumberID: "10001"},
		{name: "no phone number ID", accessToken: "test-token", phoneNumberID: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client := NewClient(tc.accessToken, tc.phoneNumberID, ts.URL, ts.Client())

			err := client.SendText("5511999990000", "hello")

			assert.ErrorIs(t, err, ErrMisconfigured)
			assert.False(t, called)
		})
	}
}

func TestSendText_RemoteRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": {"message": "something broke"}}`))
	}))
	defer ts.Close()

	client := NewClient("test-token", "10001", ts.URL, ts.Client())

	err := client.SendText("5511999990000", "hello")

	var rejected *RemoteRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Equal(t, http.StatusInternalServerError, rejected.StatusCode)
	assert.Contains(t, rejected.Body, "something broke")
}

func TestSendText_TransportFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	ts.Close()

	client := NewClient("test-token", "10001", ts.URL, &http.Client{})

	err := client.SendText("5511999990000", "hello")

	var transport *TransportError
	require.ErrorAs(t, err, &transport)

	var rejected *RemoteRejectedError
	assert.False(t, errors.As(err, &rejected))
}
