package mock

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
)

// ApiMock is a fake HTTP API that records requests and answers with canned responses.
type ApiMock struct {
	mu               sync.Mutex
	headersReceived  map[string][]map[string]string
	requestsReceived map[string][]map[string]any
	responseMap      map[string]map[int]any
	responseStatus   map[string]map[int]int
	defaultResponse  map[string]any
	defaultStatus    map[string]int
	server           *httptest.Server
}

func NewApiServer() *ApiMock {
	return &ApiMock{
		headersReceived:  map[string][]map[string]string{},
		requestsReceived: map[string][]map[string]any{},
		responseMap:      map[string]map[int]any{},
		responseStatus:   map[string]map[int]int{},
		defaultResponse:  map[string]any{},
		defaultStatus:    map[string]int{},
	}
}

func (a *ApiMock) Start() {
	a.server = httptest.NewServer(http.HandlerFunc(a.handle))
}

func (a *ApiMock) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

func (a *ApiMock) GetUrl() string {
	return a.server.URL
}

func (a *ApiMock) handle(w http.ResponseWriter, r *http.Request) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := r.Method + r.URL.Path
	index := len(a.requestsReceived[key])

	body, _ := io.ReadAll(r.Body)
	var request map[string]any
	_ = json.Unmarshal(body, &request)
	if request == nil {
		request = map[string]any{}
	}
	a.requestsReceived[key] = append(a.requestsReceived[key], request)

	headers := map[string]string{}
	for name, value := range r.Header {
		headers[name] = value[0]
	}
	a.headersReceived[key] = append(a.headersReceived[key], headers)

	status, response := a.responseFor(key, index)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(response)
}

func (a *ApiMock) responseFor(key string, index int) (int, any) {
	status := http.StatusOK
	if s, ok := a.defaultStatus[key]; ok {
		status = s
	}
	if s, ok := a.responseStatus[key][index]; ok {
		status = s
	}

	var response any = map[string]any{}
	if r, ok := a.defaultResponse[key]; ok {
		response = r
	}
	if r, ok := a.responseMap[key][index]; ok {
		response = r
	}
	return status, response
}

// SetResponse sets the answer to the index-th call of method and path. Index -1 sets the
// answer for every call without a specific one.
func (a *ApiMock) SetResponse(index int, method, path string, status int, response map[string]any) {
	a.mu.Lock()
	defer a.mu.Unlock()

	key := method + path
	if index == -1 {
		a.defaultStatus[key] = status
		a.defaultResponse[key] = response
		return
	}
	if a.responseMap[key] == nil {
		a.responseMap[key] = map[int]any{}
		a.responseStatus[key] = map[int]int{}
	}
	a.responseMap[key][index] = response
	a.responseStatus[key][index] = status
}

func (a *ApiMock) RequestCount(method, path string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requestsReceived[method+path])
}

func (a *ApiMock) GetRequestBody(method, path string, index int) map[string]any {
	a.mu.Lock()
	defer a.mu.Unlock()
	requests := a.requestsReceived[method+path]
	if index < 0 || index >= len(requests) {
		return nil
	}
	return requests[index]
}

func (a *ApiMock) GetRequestHeaders(method, path string, index int) map[string]string {
	a.mu.Lock()
	defer a.mu.Unlock()
	headers := a.headersReceived[method+path]
	if index < 0 || index >= len(headers) {
		return nil
	}
	return headers[index]
}

// Clear forgets recorded requests and configured responses.
func (a *ApiMock) Clear() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.headersReceived = map[string][]map[string]string{}
	a.requestsReceived = map[string][]map[string]any{}
	a.responseMap = map[string]map[int]any{}
	a.responseStatus = map[string]map[int]int{}
	a.defaultResponse = map[string]any{}
	a.defaultStatus = map[string]int{}
}
