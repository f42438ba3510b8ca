package server_test

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/gcsfwd/pkg/controller/server"
	"github.com/m-mizutani/gcsfwd/pkg/domain/mock"
	"github.com/m-mizutani/gcsfwd/pkg/domain/model"
	"github.com/m-mizutani/gcsfwd/pkg/domain/types"
	"github.com/m-mizutani/gcsfwd/pkg/usecase"
)

func TestHealthCheck(t *testing.T) {
	ucMock := mock.UseCasesMock{}
	w := httptest.NewRecorder()

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	mux := server.New(&ucMock)
	mux.ServeHTTP(w, r)
	gt.Equal(t, w.Code, http.StatusOK)
	gt.Equal(t, w.Body.String(), "OK:"+types.AppVersion)
}

func TestServerError(t *testing.T) {
	type testCase struct {
		req      func() *http.Request
		expCode  int
		expBody  string
		testMock func(t *testing.T, ucMock *mock.UseCasesMock)
	}

	test := func(tc testCase) func(*testing.T) {
		return func(t *testing.T) {
			ucMock := mock.UseCasesMock{}
			w := httptest.NewRecorder()

			mux := server.New(&ucMock)
			mux.ServeHTTP(w, tc.req())

			gt.Equal(t, w.Code, tc.expCode)
			if tc.expBody != "" {
				gt.Equal(t, w.Body.String(), tc.expBody)
			}
			if tc.testMock != nil {
				tc.testMock(t, &ucMock)
			}
		}
	}

	t.Run("invalid path", test(testCase{
		req: func() *http.Request {
			return httptest.NewRequest(http.MethodPost, "/invalid", nil)
		},
		expCode: http.StatusNotFound,
		testMock: func(t *testing.T, ucMock *mock.UseCasesMock) {
			gt.A(t, ucMock.ForwardEventCalls()).Length(0)
		},
	}))

	t.Run("invalid method", test(testCase{
		req: func() *http.Request {
			return httptest.NewRequest(http.MethodGet, "/event", nil)
		},
		expCode: http.StatusMethodNotAllowed,
		testMock: func(t *testing.T, ucMock *mock.UseCasesMock) {
			gt.A(t, ucMock.ForwardEventCalls()).Length(0)
		},
	}))

	t.Run("invalid data", test(testCase{
		req: func() *http.Request {
			r := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("invalid")))
			r.Header.Set("Content-Type", "application/json")
			return r
		},
		expCode: http.StatusBadRequest,
		expBody: "delivery body is not JSON: invalid input\n",
		testMock: func(t *testing.T, ucMock *mock.UseCasesMock) {
			gt.A(t, ucMock.ForwardEventCalls()).Length(0)
		},
	}))
}

func TestHandleEvent(t *testing.T) {
	ucMock := &mock.UseCasesMock{
		ForwardEventFunc: func(ctx context.Context, event model.InboundEvent, evCtx *model.EventContext) model.Outcome {
			return model.Outcome{Status: model.OutcomePublished, MessageID: "1234"}
		},
	}

	body := `{"name":"a.csv","size":"1024","contentType":"text/csv","bucket":"b1"}`
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	r.Header.Set("Ce-Id", "5678")
	r.Header.Set("Ce-Time", "2024-01-01T00:00:00Z")
	r.Header.Set("Ce-Type", "google.cloud.storage.object.v1.finalized")

	w := httptest.NewRecorder()
	server.New(ucMock).ServeHTTP(w, r)
	gt.Equal(t, w.Code, http.StatusOK)

	calls := ucMock.ForwardEventCalls()
	gt.A(t, calls).Length(1)
	gt.Equal(t, calls[0].Event["name"], any("a.csv"))
	gt.Equal(t, calls[0].EvCtx.Timestamp, "2024-01-01T00:00:00Z")
	gt.Equal(t, calls[0].EvCtx.EventID, "5678")

	var resp model.Outcome
	gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	gt.Equal(t, resp.Status, model.OutcomePublished)
	gt.Equal(t, resp.MessageID, "1234")
}

func TestHandleEventAlwaysOK(t *testing.T) {
	publisher := &mock.PublisherMock{
		PublishFunc: func(ctx context.Context, data []byte) (string, error) {
			return "", context.DeadlineExceeded
		},
	}
	mux := server.New(usecase.New(usecase.WithPublisher(publisher)))

	testCases := map[string]struct {
		body      string
		expStatus model.OutcomeStatus
	}{
		"missing fields": {
			body:      `{"name":"a.csv"}`,
			expStatus: model.OutcomeSkipped,
		},
		"publish failure": {
			body:      `{"data":{"name":"x.png","size":55,"contentType":"image/png","bucket":"b2"}}`,
			expStatus: model.OutcomeFailed,
		},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/event", strings.NewReader(tc.body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			gt.Equal(t, w.Code, http.StatusOK)
			var resp model.Outcome
			gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			gt.Equal(t, resp.Status, tc.expStatus)
		})
	}
}

func TestHandleEventMalformed(t *testing.T) {
	ucMock := &mock.UseCasesMock{}
	mux := server.New(ucMock)

	encode := func(data string) string {
		return base64.StdEncoding.EncodeToString([]byte(data))
	}
	testCases := map[string]string{
		"push data not json":   fmt.Sprintf(`{"message":{"data":%q,"messageId":"1"}}`, encode("plain text")),
		"push data json array": fmt.Sprintf(`{"message":{"data":%q,"messageId":"2"}}`, encode(`["a.csv"]`)),
		"raw null":             `null`,
		"raw json array":       `[]`,
		"too large":            `{"name":"` + strings.Repeat("a", 2<<20) + `"}`,
	}

	for title, body := range testCases {
		t.Run(title, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)

			gt.Equal(t, w.Code, http.StatusOK)
			var resp model.Outcome
			gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			gt.Equal(t, resp.Status, model.OutcomeSkipped)
			gt.Equal(t, resp.Reason, model.ReasonMalformedEvent)
		})
	}

	gt.A(t, ucMock.ForwardEventCalls()).Length(0)
}
