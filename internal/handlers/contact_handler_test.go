package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixing-Zhang/mail-order-backend/internal/mailer"
	"github.com/Lixing-Zhang/mail-order-backend/internal/models"
)

func TestContactHandler_SendContact(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    string
		sendErr        error
		expectedStatus int
		expectedResult models.Result
	}{
		{
			name:           "successful message",
			requestBody:    `{"name":"B","email":"b@example.com","message":"Hello"}`,
			expectedStatus: http.StatusOK,
			expectedResult: models.Result{OK: true, Message: "Message sent successfully"},
		},
		{
			name:           "missing email and message",
			requestBody:    `{"name":"B"}`,
			expectedStatus: http.StatusBadRequest,
			expectedResult: models.Result{OK: false, Message: "Missing fields"},
		},
		{
			name:           "empty message",
			requestBody:    `{"name":"B","email":"b@example.com","message":""}`,
			expectedStatus: http.StatusBadRequest,
			expectedResult: models.Result{OK: false, Message: "Missing fields"},
		},
		{
			name:           "no body",
			requestBody:    ``,
			expectedStatus: http.StatusBadRequest,
			expectedResult: models.Result{OK: false, Message: "JSON body required"},
		},
		{
			name:           "send failure",
			requestBody:    `{"name":"B","email":"b@example.com","message":"Hello"}`,
			sendErr:        errors.Join(mailer.ErrSendFailed, errors.New("auth failed")),
			expectedStatus: http.StatusInternalServerError,
			expectedResult: models.Result{OK: false, Message: "Failed to send message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &stubSender{err: tt.sendErr}
			handler := NewContactHandler(newTestService(sender), testLogger())

			req := httptest.NewRequest(http.MethodPost, "/send-contact", bytes.NewReader([]byte(tt.requestBody)))
			w := httptest.NewRecorder()

			handler.SendContact(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedResult, decodeResult(t, w))
		})
	}
}

func TestContactHandler_SendContact_FormatsEmail(t *testing.T) {
	sender := &stubSender{}
	handler := NewContactHandler(newTestService(sender), testLogger())

	req := httptest.NewRequest(http.MethodPost, "/send-contact",
		bytes.NewReader([]byte(`{"name":"B","email":"b@example.com","message":"Hi\nthere"}`)))
	w := httptest.NewRecorder()

	handler.SendContact(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, mailer.Message{
		To:      "owner@example.com",
		Subject: "New Contact Message — B",
		Body:    "From: B <b@example.com>\n\nMessage:\nHi\nthere",
	}, sender.sent[0])
}
