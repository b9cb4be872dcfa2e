package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"SpotBoard/internal/model"
)

type fakeService struct {
	metals    model.Result
	send      model.Result
	read      model.Result
	colorTest model.Result
	lastText  string
}

func (f *fakeService) DisplayMetalsPrices() model.Result { return f.metals }
func (f *fakeService) ReadBoard() model.Result           { return f.read }
func (f *fakeService) RunColorTest() model.Result        { return f.colorTest }
func (f *fakeService) SendMessage(text string) model.Result {
	f.lastText = text
	if strings.TrimSpace(text) == "" {
		return model.Error("message is empty")
	}
	return f.send
}

func doRequest(t *testing.T, svc BoardService, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewHandler(svc).SetupRoutes()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) model.Result {
	t.Helper()
	var res model.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestHealthCheck(t *testing.T) {
	w := doRequest(t, &fakeService{}, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"OK"`)
}

func TestPostMessage(t *testing.T) {
	svc := &fakeService{send: model.Success("Message sent: HELLO", nil)}
	w := doRequest(t, svc, http.MethodPost, "/v1/message", `{"text":"hello"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "hello", svc.lastText)
	res := decodeResult(t, w)
	assert.Equal(t, model.StatusSuccess, res.Status)
}

func TestPostMessage_Empty(t *testing.T) {
	w := doRequest(t, &fakeService{}, http.MethodPost, "/v1/message", `{"text":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, model.StatusError, decodeResult(t, w).Status)
}

func TestPostMessage_BadBody(t *testing.T) {
	w := doRequest(t, &fakeService{}, http.MethodPost, "/v1/message", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefreshMetals_Success(t *testing.T) {
	svc := &fakeService{metals: model.Success("Gold bid 4,015.50 ask 4,016.20, Silver bid 49.10 ask 49.35", nil)}
	w := doRequest(t, svc, http.MethodPost, "/v1/metals/refresh", "")

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.Contains(t, res.Message, "Gold bid")
}

func TestRefreshMetals_SourceDown(t *testing.T) {
	svc := &fakeService{metals: model.Error("kitco.com website down. Precious metals SPOT PRICES are NOT UP TO DATE.")}
	w := doRequest(t, svc, http.MethodPost, "/v1/metals/refresh", "")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, model.StatusError, decodeResult(t, w).Status)
}

func TestGetBoard(t *testing.T) {
	svc := &fakeService{read: model.Success("Board read successfully", [][]int{{65, 66}})}
	w := doRequest(t, svc, http.MethodGet, "/v1/board", "")

	assert.Equal(t, http.StatusOK, w.Code)
	res := decodeResult(t, w)
	assert.Equal(t, model.StatusSuccess, res.Status)
	assert.NotNil(t, res.Data)
}

func TestPostColorTest(t *testing.T) {
	svc := &fakeService{colorTest: model.Success("Color test pattern sent", nil)}
	w := doRequest(t, svc, http.MethodPost, "/v1/colortest", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	w := doRequest(t, &fakeService{}, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeaderKey))
}
