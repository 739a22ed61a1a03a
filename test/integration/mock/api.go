package mock

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// StoredObject is one request received by the storage mock.
type StoredObject struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    []byte
}

// StorageServer is an HTTP stand-in for an S3-compatible endpoint.
// It accepts every request and records it.
type StorageServer struct {
	mu       sync.Mutex
	server   *httptest.Server
	received []StoredObject
	status   int
}

// NewStorageServer creates a storage mock answering 200.
func NewStorageServer() *StorageServer {
	return &StorageServer{status: http.StatusOK}
}

// Start begins serving on a random local port.
func (s *StorageServer) Start() {
	s.server = httptest.NewServer(
		http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				body, _ := io.ReadAll(r.Body)

				headers := map[string]string{}
				for key, value := range r.Header {
					headers[key] = value[0]
				}

				s.mu.Lock()
				s.received = append(s.received, StoredObject{
					Method:  r.Method,
					Path:    r.URL.Path,
					Headers: headers,
					Body:    body,
				})
				status := s.status
				s.mu.Unlock()

				w.Header().Set("ETag", `"mock-etag"`)
				w.WriteHeader(status)
			},
		),
	)
}

// GetUrl returns the server base URL.
func (s *StorageServer) GetUrl() string {
	return s.server.URL
}

// SetResponseStatus changes the status of every following response.
func (s *StorageServer) SetResponseStatus(status int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status = status
}

// Uploads returns the PUT requests whose path starts with prefix.
func (s *StorageServer) Uploads(prefix string) []StoredObject {
	s.mu.Lock()
	defer s.mu.Unlock()

	var uploads []StoredObject
	for _, obj := range s.received {
		if obj.Method == http.MethodPut && strings.HasPrefix(obj.Path, prefix) {
			uploads = append(uploads, obj)
		}
	}
	return uploads
}

// Reset forgets received requests and restores the 200 status.
func (s *StorageServer) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = nil
	s.status = http.StatusOK
}
