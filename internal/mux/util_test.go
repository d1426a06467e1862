package mux

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"holdem-server/pkg/playable/poker/texasholdem"
	"holdem-server/pkg/room"
)

func newTestServer(t *testing.T) (*httptest.Server, *room.PitBoss) {
	t.Helper()

	pitBoss := room.NewPitBoss(logrus.StandardLogger(), quartz.NewReal(), room.DefaultOptions(), nil)
	ts := httptest.NewServer(NewMux("v1.2.3", pitBoss))
	t.Cleanup(ts.Close)

	return ts, pitBoss
}

func Test_writeRoomError(t *testing.T) {
	tests := []struct {
		err        error
		statusCode int
	}{
		{room.ErrRoomNotFound, http.StatusNotFound},
		{texasholdem.ErrPlayerNotFound, http.StatusNotFound},
		{texasholdem.ErrNotYourTurn, http.StatusBadRequest},
		{fmt.Errorf("wrapped: %w", texasholdem.ErrIllegalAction), http.StatusBadRequest},
		{texasholdem.ErrInsufficientPlayers, http.StatusBadRequest},
		{texasholdem.ErrTableFull, http.StatusBadRequest},
		{texasholdem.ErrHandInProgress, http.StatusBadRequest},
		{room.ErrInvalidAnte, http.StatusBadRequest},
		{errors.New("boom"), http.StatusInternalServerError},
	}

	for _, test := range tests {
		w := httptest.NewRecorder()
		writeRoomError(w, test.err)
		assert.Equal(t, test.statusCode, w.Code, test.err.Error())

		var errObj errorResponse
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&errObj))
		assert.Equal(t, test.statusCode, errObj.StatusCode)
		if test.statusCode == http.StatusInternalServerError {
			assert.Equal(t, "Internal Server Error", errObj.Message)
		} else {
			assert.Equal(t, test.err.Error(), errObj.Message)
		}
	}
}

func Test_decodeRequest(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{}"))

	var payload postRoomPayload
	assert.False(t, decodeRequest(w, r, &payload))
	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ante":`))
	r.Header.Set("Content-Type", "application/json")
	assert.False(t, decodeRequest(w, r, &payload))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"ante":15}`))
	r.Header.Set("Content-Type", "application/json")
	assert.True(t, decodeRequest(w, r, &payload))
	assert.Equal(t, 15, payload.Ante)
}

func assertDo(t *testing.T, req *http.Request, respObj interface{}, statusCode int) *http.Response {
	t.Helper()

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Error(err)
		return nil
	}
	defer resp.Body.Close()

	if statusCode != resp.StatusCode {
		b, _ := io.ReadAll(resp.Body)
		t.Log(string(b))
		assert.Equal(t, statusCode, resp.StatusCode)
		return nil
	}

	if respObj != nil {
		if err := json.NewDecoder(resp.Body).Decode(respObj); err != nil {
			t.Error(err)
			return nil
		}
	}

	return resp
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	if err != nil {
		t.Error(err)
		return
	}

	assertDo(t, req, respObj, statusCode)
}

func assertPost(t *testing.T, ts *httptest.Server, path string, payload interface{}, respObj interface{}, statusCode int) {
	t.Helper()

	var body io.Reader
	switch val := payload.(type) {
	case string:
		body = strings.NewReader(val)
	default:
		b, err := json.Marshal(val)
		if err != nil {
			t.Error(err)
			return
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(http.MethodPost, ts.URL+path, body)
	if err != nil {
		t.Error(err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	assertDo(t, req, respObj, statusCode)
}
