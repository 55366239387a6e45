package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"sentosa_backend/database"
	"sentosa_backend/internal/app"
	"sentosa_backend/internal/config"
	"sentosa_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// TestServer bundles a running httptest server with its database handle.
type TestServer struct {
	Server    *httptest.Server
	DB        *gorm.DB
	UploadDir string
}

// NewTestServer starts the full application against the database named by
// DATABASE_URL. Tests are skipped when no test database is configured.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set; skipping integration test")
	}

	gin.SetMode(gin.TestMode)

	config.LoadConfig()
	cfg := config.GetConfig()
	logger.Init("development")

	// Keep uploads out of the working tree. The directory must outlive the
	// creating test because the server is shared across the package.
	uploadDir, err := os.MkdirTemp("", "uploads-*")
	if err != nil {
		t.Fatalf("failed to create upload directory: %v", err)
	}
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = uploadDir

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN), &gorm.Config{})
	if err != nil {
		os.RemoveAll(uploadDir)
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	router := app.SetupRouter(cfg, db)
	server := httptest.NewServer(router)

	return &TestServer{
		Server:    server,
		DB:        db,
		UploadDir: uploadDir,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	if sqlDB, err := ts.DB.DB(); err == nil {
		sqlDB.Close()
	}
	os.RemoveAll(ts.UploadDir)
}

// ClearTables empties every table between test groups.
func (ts *TestServer) ClearTables(t *testing.T) {
	t.Helper()

	tables := []string{
		"tasks", "document_requirements", "requirements", "working_conditions",
		"positions", "sectors", "destination_countries",
		"news", "staff",
	}
	for _, table := range tables {
		if err := ts.DB.Exec("DELETE FROM " + table).Error; err != nil {
			t.Fatalf("failed to clear table %s: %v", table, err)
		}
	}
}

// SendRequest performs a JSON request against the test server. The token,
// when non-empty, is sent as a Bearer Authorization header.
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// SendMultipart performs a multipart form request, optionally attaching a
// file under the "image" field.
func (ts *TestServer) SendMultipart(t *testing.T, method, path, token string, fields map[string]string, fileName string, fileContent []byte) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("failed to write form field %s: %v", key, err)
		}
	}
	if fileName != "" {
		part, err := writer.CreateFormFile("image", fileName)
		if err != nil {
			t.Fatalf("failed to create form file: %v", err)
		}
		if _, err := part.Write(fileContent); err != nil {
			t.Fatalf("failed to write form file: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to finalize multipart body: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}

	return res, string(resBody)
}
