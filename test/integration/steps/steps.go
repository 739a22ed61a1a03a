package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/strategic-planning/backend/internal/application/adapter"
	"github.com/strategic-planning/backend/internal/domain/entity"
	"github.com/strategic-planning/backend/internal/integration/adapters"
	"github.com/strategic-planning/backend/internal/integration/persistence/model"
)

// Fixtures

func (t *testContext) anOrganizationExists(id int64, name string) error {
	return t.db.DbConn.Create(&model.OrganizationModel{
		ID:   id,
		Name: name,
		Type: string(entity.OrganizationTypeExecutive),
	}).Error
}

func (t *testContext) anObjectiveExists(title, weight string) error {
	return t.createObjective(title, weight, false)
}

func (t *testContext) aDefaultObjectiveExists(title, weight string) error {
	return t.createObjective(title, weight, true)
}

func (t *testContext) createObjective(title, weight string, isDefault bool) error {
	w, err := decimal.NewFromString(weight)
	if err != nil {
		return fmt.Errorf("invalid weight %q: %w", weight, err)
	}

	objective := entity.NewObjective(title, "", w, isDefault)
	if err := t.db.DbConn.Create(model.ObjectiveFromEntity(objective)).Error; err != nil {
		return err
	}

	t.saved["objective_id"] = objective.ID.String()
	t.saved[title] = objective.ID.String()
	return nil
}

// Identity

var callerNames = map[entity.UserRole]string{
	entity.UserRolePlanner:   "Abebe Kebede",
	entity.UserRoleEvaluator: "Sara Tesfaye",
	entity.UserRoleAdmin:     "Admin User",
}

func callerEmail(role entity.UserRole) string {
	return strings.ToLower(string(role)) + "@moh.gov.et"
}

func (t *testContext) iAmARoleOfOrganization(role string, organizationID int64) error {
	userRole := entity.UserRole(role)
	t.callerID = uuid.New()

	token, err := adapters.NewTokenService(testJWTSecret).IssueAccessToken(context.Background(), adapter.TokenClaims{
		UserID:         t.callerID,
		Name:           callerNames[userRole],
		Email:          callerEmail(userRole),
		OrganizationID: organizationID,
		Role:           userRole,
	}, time.Hour)
	if err != nil {
		return err
	}

	t.accessToken = token
	return nil
}

// myAccessTokenHasExpired signs a token issued two hours ago that lived for one.
func (t *testContext) myAccessTokenHasExpired() error {
	t.timeMock.SetCurrentTime(time.Now().Add(-2 * time.Hour))
	issued := t.timeMock.Now()

	claims := adapters.CustomClaims{
		UserID:         uuid.NewString(),
		Name:           callerNames[entity.UserRolePlanner],
		Email:          callerEmail(entity.UserRolePlanner),
		OrganizationID: "7",
		Role:           string(entity.UserRolePlanner),
		TokenType:      "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issued.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(issued),
			Issuer:    "strategic-planning",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iAmNotAuthenticated() error {
	t.accessToken = ""
	return nil
}

// Requests

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

// replacePlaceholders swaps {{name}} for values saved earlier in the scenario.
func (t *testContext) replacePlaceholders(content string) string {
	for name, value := range t.saved {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.uri+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status:  resp.StatusCode,
		headers: resp.Header,
		raw:     bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
}

func (t *testContext) iSaveTheResponseFieldAs(field, name string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	t.saved[name] = fmt.Sprintf("%v", value)
	return nil
}

// Response assertions

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != t.replacePlaceholders(expectedValue) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseHeaderShouldContain(header, expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	expected = t.replacePlaceholders(expected)
	if value := t.response.headers.Get(header); !strings.Contains(value, expected) {
		return fmt.Errorf("header '%s' expected to contain '%s', got '%s'", header, expected, value)
	}
	return nil
}

func (t *testContext) theResponseBodyShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	expected = t.replacePlaceholders(expected)
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response body does not contain '%s': %s", expected, string(t.response.raw))
	}
	return nil
}

// Database assertions

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	return t.countRows(quantity, table, nil)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}
	return t.countRows(quantity, table, criteria)
}

func (t *testContext) countRows(quantity int, table string, criteria map[string]any) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	query := t.db.DbConn.Unscoped()
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	result := query.Find(entitySlicePtr.Interface())
	if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return result.Error
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

// Side effects

func (t *testContext) theEmailWorkerProcessesTheQueue() error {
	if sharedServer == nil || sharedServer.injector.EmailWorker == nil {
		return errors.New("email worker is not configured")
	}
	sharedServer.injector.EmailWorker.ProcessNow(context.Background())
	return nil
}

func (t *testContext) emailsShouldHaveBeenSentTo(quantity int, recipient string) error {
	count := 0
	for _, sent := range t.sender.Sent() {
		if sent.To == recipient {
			count++
		}
	}
	if count != quantity {
		return fmt.Errorf("expected %d emails to %s, got %d of %d sent", quantity, recipient, count, len(t.sender.Sent()))
	}
	return nil
}

func (t *testContext) theReportArchiveShouldHaveReceivedUploads(quantity int) error {
	uploads := t.storage.Uploads("/" + testBucket + "/")
	if len(uploads) != quantity {
		return fmt.Errorf("expected %d report uploads, got %d", quantity, len(uploads))
	}
	return nil
}

func (t *testContext) theReportArchiveIsUnavailable() error {
	t.storage.SetResponseStatus(http.StatusServiceUnavailable)
	return nil
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
