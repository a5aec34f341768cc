// internal/tests/api_test.go
package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/atelier-backend/internal/config"
	"github.com/javajoker/atelier-backend/internal/database"
	"github.com/javajoker/atelier-backend/internal/i18n"
	"github.com/javajoker/atelier-backend/internal/models"
	"github.com/javajoker/atelier-backend/internal/router"
	"github.com/javajoker/atelier-backend/internal/store"
)

const adminPassword = "letmein"

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta json.RawMessage `json:"meta"`
}

type APITestSuite struct {
	suite.Suite
	cfg    *config.Config
	docs   *store.DocumentStore
	router *router.Router
}

func (suite *APITestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	suite.Require().NoError(i18n.Initialize(i18n.LangEnglish))
}

func (suite *APITestSuite) SetupTest() {
	root := suite.T().TempDir()
	suite.cfg = &config.Config{
		Environment: "test",
		Storage: config.StorageConfig{
			DataDir:          filepath.Join(root, "data"),
			UploadsDir:       filepath.Join(root, "uploads"),
			UploadsURLPrefix: "/uploads",
			ServeUploads:     true,
		},
		Session:   config.SessionConfig{Secret: "test-secret", TTLHours: 1},
		CORS:      config.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: config.RateLimitConfig{},
		I18n:      config.I18nConfig{DefaultLocale: i18n.LangEnglish},
	}

	docs, err := database.Initialize(suite.cfg.Storage)
	suite.Require().NoError(err)
	suite.Require().NoError(database.SeedInitialData(docs, adminPassword))
	suite.docs = docs

	suite.router = suite.newRouter()
}

func (suite *APITestSuite) TearDownTest() {
	suite.router.Close()
}

func (suite *APITestSuite) newRouter() *router.Router {
	r, err := router.Initialize(suite.docs, suite.cfg)
	suite.Require().NoError(err)
	return r
}

func (suite *APITestSuite) do(method, path string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(jsonData)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var response envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	}
	return w, response
}

func (suite *APITestSuite) login() string {
	w, response := suite.do(http.MethodPost, "/api/auth", map[string]string{"password": adminPassword}, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Require().NotEmpty(data.Token)
	return data.Token
}

func (suite *APITestSuite) TestHealth() {
	w, _ := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *APITestSuite) TestLogin() {
	w, response := suite.do(http.MethodPost, "/api/auth", map[string]string{"password": "LETMEIN"}, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(response.Success)

	w, _ = suite.do(http.MethodPost, "/api/auth", map[string]string{}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.NotEmpty(suite.login())
}

func (suite *APITestSuite) TestLoginWithoutAdminDocument() {
	suite.Require().NoError(os.Remove(suite.docs.Path(models.CollectionAdmin)))

	w, _ := suite.do(http.MethodPost, "/api/auth", map[string]string{"password": adminPassword}, "")
	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *APITestSuite) TestAdminRoutesRequireToken() {
	for _, route := range []struct{ method, path string }{
		{http.MethodPost, "/api/products"},
		{http.MethodPut, "/api/products/1"},
		{http.MethodDelete, "/api/products/1"},
		{http.MethodPut, "/api/home"},
		{http.MethodPut, "/api/contact"},
		{http.MethodGet, "/api/messages"},
		{http.MethodDelete, "/api/messages/x"},
		{http.MethodPost, "/api/upload"},
		{http.MethodGet, "/api/admin/stats"},
	} {
		w, _ := suite.do(route.method, route.path, map[string]string{}, "")
		suite.Equal(http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}

	w, _ := suite.do(http.MethodGet, "/api/messages", nil, "not-a-token")
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *APITestSuite) TestProductLifecycle() {
	token := suite.login()

	createdIDs := make([]int, 0, 2)
	for _, name := range []string{"A", "B"} {
		w, response := suite.do(http.MethodPost, "/api/products", map[string]interface{}{
			"id":       99,
			"name":     name,
			"price":    "100",
			"category": "suits",
		}, token)
		suite.Require().Equal(http.StatusCreated, w.Code)

		var product models.Product
		suite.Require().NoError(json.Unmarshal(response.Data, &product))
		createdIDs = append(createdIDs, product.ID)
	}
	suite.Equal([]int{1, 2}, createdIDs)

	w, _ := suite.do(http.MethodDelete, "/api/products?id=1", nil, token)
	suite.Equal(http.StatusOK, w.Code)

	w, response := suite.do(http.MethodPost, "/api/products", map[string]interface{}{"name": "C"}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)
	var third models.Product
	suite.Require().NoError(json.Unmarshal(response.Data, &third))
	suite.Equal(3, third.ID)

	w, _ = suite.do(http.MethodPut, "/api/products/2", map[string]interface{}{
		"name":     "B2",
		"featured": true,
		"category": "shirt",
	}, token)
	suite.Equal(http.StatusOK, w.Code)

	w, response = suite.do(http.MethodGet, "/api/products", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var products []models.Product
	suite.Require().NoError(json.Unmarshal(response.Data, &products))
	suite.Require().Len(products, 2)
	suite.Equal("B2", products[0].Name)
	suite.Equal(2, products[0].ID)
	suite.Equal(3, products[1].ID)

	w, response = suite.do(http.MethodGet, "/api/products?featured=true&category=shirt", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(response.Data, &products))
	suite.Len(products, 1)

	w, _ = suite.do(http.MethodGet, "/api/products/2", nil, "")
	suite.Equal(http.StatusOK, w.Code)

	w, _ = suite.do(http.MethodGet, "/api/products/42", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestProductValidation() {
	token := suite.login()

	w, response := suite.do(http.MethodPost, "/api/products", map[string]interface{}{
		"name":     "Hat",
		"category": "hats",
	}, token)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("VALIDATION_ERROR", response.Error.Code)

	w, _ = suite.do(http.MethodGet, "/api/products?category=hats", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodDelete, "/api/products?id=abc", nil, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodGet, "/api/products?featured=maybe", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w, _ = suite.do(http.MethodPut, "/api/products", map[string]interface{}{"id": 7, "name": "ghost"}, token)
	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *APITestSuite) TestDeleteProductWithoutID() {
	token := suite.login()
	w, _ := suite.do(http.MethodPost, "/api/products", map[string]interface{}{"name": "A"}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, response := suite.do(http.MethodDelete, "/api/products", nil, token)
	suite.Equal(http.StatusOK, w.Code)
	suite.True(response.Success)

	var products []models.Product
	suite.Require().NoError(suite.docs.Load(models.CollectionProducts, &products))
	suite.Len(products, 1)
}

func (suite *APITestSuite) TestCategories() {
	w, response := suite.do(http.MethodGet, "/api/categories", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var categories []struct {
		ID string `json:"id"`
	}
	suite.Require().NoError(json.Unmarshal(response.Data, &categories))
	suite.Len(categories, len(models.Categories))
}

func (suite *APITestSuite) TestMessageLifecycle() {
	w, response := suite.do(http.MethodPost, "/api/messages", map[string]string{
		"name":    "  Sara ",
		"email":   "sara@example.com",
		"message": "Do you ship abroad?",
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	var submitted struct {
		ID        string `json:"id"`
		CreatedAt string `json:"createdAt"`
	}
	suite.Require().NoError(json.Unmarshal(response.Data, &submitted))
	suite.NotEmpty(submitted.ID)
	suite.True(strings.HasSuffix(submitted.CreatedAt, "Z"))

	w, _ = suite.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Ali",
		"email":   "ali@example.com",
		"message": "Second",
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code)

	token := suite.login()
	w, response = suite.do(http.MethodGet, "/api/messages", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var messages []models.Message
	suite.Require().NoError(json.Unmarshal(response.Data, &messages))
	suite.Require().Len(messages, 2)
	suite.ElementsMatch([]string{"Sara", "Ali"}, []string{messages[0].Name, messages[1].Name})

	w, response = suite.do(http.MethodGet, "/api/messages?page=1&limit=1", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.NotEmpty(response.Meta)

	w, _ = suite.do(http.MethodDelete, "/api/messages/"+submitted.ID, nil, token)
	suite.Equal(http.StatusOK, w.Code)

	w, response = suite.do(http.MethodGet, "/api/messages", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Require().NoError(json.Unmarshal(response.Data, &messages))
	suite.Len(messages, 1)

	w, _ = suite.do(http.MethodDelete, "/api/messages", nil, token)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestMessageValidation() {
	w, response := suite.do(http.MethodPost, "/api/messages", map[string]string{
		"name":    "   ",
		"email":   "x@example.com",
		"message": "hi",
	}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(response.Success)
	suite.False(suite.docs.Exists(models.CollectionMessages))
}

func (suite *APITestSuite) TestMessageEmailFormatNotChecked() {
	w, response := suite.do(http.MethodPost, "/api/contact", map[string]string{
		"name":    "Reza",
		"email":   "0912 000 0000",
		"message": "Please call me back",
	}, "")
	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.True(response.Success)

	var messages []models.Message
	suite.Require().NoError(suite.docs.Load(models.CollectionMessages, &messages))
	suite.Require().Len(messages, 1)
	suite.Equal("0912 000 0000", messages[0].Email)
}

func (suite *APITestSuite) TestDeleteMessageWithoutInbox() {
	token := suite.login()

	w, _ := suite.do(http.MethodDelete, "/api/messages/abc", nil, token)
	suite.Equal(http.StatusNotFound, w.Code)

	w, response := suite.do(http.MethodGet, "/api/messages", nil, token)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, string(response.Data))
}

func (suite *APITestSuite) TestMessageRateLimit() {
	suite.router.Close()
	suite.cfg.RateLimit.MessagesPerMinute = 1
	suite.cfg.RateLimit.MessagesBurst = 2
	suite.router = suite.newRouter()

	body := map[string]string{"name": "n", "email": "n@example.com", "message": "m"}
	for i := 0; i < 2; i++ {
		w, _ := suite.do(http.MethodPost, "/api/messages", body, "")
		suite.Equal(http.StatusCreated, w.Code)
	}

	w, _ := suite.do(http.MethodPost, "/api/messages", body, "")
	suite.Equal(http.StatusTooManyRequests, w.Code)
}

func (suite *APITestSuite) TestHomeContent() {
	w, response := suite.do(http.MethodGet, "/api/home", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)

	var home models.HomeContent
	suite.Require().NoError(json.Unmarshal(response.Data, &home))
	suite.Equal(database.DefaultHomeContent(), home)

	home.Hero.H1 = "Made to measure"
	w, _ = suite.do(http.MethodPut, "/api/home", home, suite.login())
	suite.Require().Equal(http.StatusOK, w.Code)

	var stored models.HomeContent
	suite.Require().NoError(suite.docs.Load(models.CollectionHome, &stored))
	suite.Equal("Made to measure", stored.Hero.H1)
}

func (suite *APITestSuite) TestContactInfo() {
	token := suite.login()

	w, _ := suite.do(http.MethodPut, "/api/contact", models.ContactInfo{Email: "a@b.c"}, token)
	suite.Equal(http.StatusBadRequest, w.Code)

	updated := models.ContactInfo{
		Email:     "shop@example.com",
		Phone:     "+98 21 1234",
		Address:   "Vali Asr St.",
		AddressFa: "خیابان ولیعصر",
		Instagram: "atelier",
	}
	w, _ = suite.do(http.MethodPut, "/api/contact", updated, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	w, response := suite.do(http.MethodGet, "/api/contact", nil, "")
	suite.Require().Equal(http.StatusOK, w.Code)
	var contact models.ContactInfo
	suite.Require().NoError(json.Unmarshal(response.Data, &contact))
	suite.Equal(updated, contact)
}

func (suite *APITestSuite) TestUploadServedLocally() {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "jacket.png")
	suite.Require().NoError(err)
	_, err = part.Write([]byte("not really a png"))
	suite.Require().NoError(err)
	suite.Require().NoError(writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.login())
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	suite.Require().Equal(http.StatusOK, w.Code)

	var response envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &response))
	var data struct {
		URL string `json:"url"`
		Key string `json:"key"`
	}
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Equal(fmt.Sprintf("/uploads/%s", data.Key), data.URL)
	suite.True(strings.HasSuffix(data.Key, "-jacket.png"))

	served := httptest.NewRecorder()
	suite.router.ServeHTTP(served, httptest.NewRequest(http.MethodGet, data.URL, nil))
	suite.Equal(http.StatusOK, served.Code)
	suite.Equal("not really a png", served.Body.String())
}

func (suite *APITestSuite) TestUploadMissingFile() {
	w, _ := suite.do(http.MethodPost, "/api/upload", nil, suite.login())
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *APITestSuite) TestDashboardStats() {
	token := suite.login()
	w, _ := suite.do(http.MethodPost, "/api/products", map[string]interface{}{"name": "A", "category": "pants"}, token)
	suite.Require().Equal(http.StatusCreated, w.Code)

	w, response := suite.do(http.MethodGet, "/api/admin/stats", nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)

	var data struct {
		Stats struct {
			TotalProducts int `json:"total_products"`
			TotalMessages int `json:"total_messages"`
		} `json:"stats"`
	}
	suite.Require().NoError(json.Unmarshal(response.Data, &data))
	suite.Equal(1, data.Stats.TotalProducts)
	suite.Zero(data.Stats.TotalMessages)
}

func (suite *APITestSuite) TestLanguageSelection() {
	w, response := suite.do(http.MethodGet, "/api/products/42?lang=fa", nil, "")
	suite.Require().Equal(http.StatusNotFound, w.Code)
	persian := response.Error.Message

	w, response = suite.do(http.MethodGet, "/api/products/42?lang=en", nil, "")
	suite.Require().Equal(http.StatusNotFound, w.Code)
	suite.NotEqual(persian, response.Error.Message)
}

func TestAPISuite(t *testing.T) {
	suite.Run(t, new(APITestSuite))
}
