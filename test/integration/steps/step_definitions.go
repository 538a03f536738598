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
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/household-budget/backend/internal/integration/adapters"
	"github.com/household-budget/backend/internal/integration/entrypoint/dto"
	"github.com/household-budget/backend/internal/integration/persistence/model"
	"github.com/household-budget/backend/test/integration/mock"
)

type response struct {
	status int
	body   any
}

type testContext struct {
	uri        string
	client     *http.Client
	serverPort int
	db         *mock.Db

	headers      map[string]string
	accessToken  string
	refreshToken string
	response     *response

	sourceAID      uuid.UUID
	sourceBID      uuid.UUID
	billID         uuid.UUID
	cardID         uuid.UUID
	loanID         uuid.UUID
	subscriptionID uuid.UUID
	noteID         uuid.UUID
	goalID         uuid.UUID
}

// InitializeTestSuite sets up resources shared by every scenario.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		initializePort()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb(map[string]any{
			"income_sources": &model.IncomeSourceModel{},
			"bills":          &model.BillModel{},
			"credit_cards":   &model.CreditCardModel{},
			"loans":          &model.LoanModel{},
			"subscriptions":  &model.SubscriptionModel{},
			"budget_notes":   &model.BudgetNoteModel{},
			"savings_goals":  &model.SavingsGoalModel{},
			"paid_checks":    &model.PaidCheckModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the household is logged in$`, test.theHouseholdIsLoggedIn)
	ctx.Given(`^today is "([^"]*)"$`, test.todayIs)

	// Fixture steps
	ctx.Given(`^an income source exists for "([^"]*)" with amount "([^"]*)" next paid on "([^"]*)"$`, test.anIncomeSourceExists)
	ctx.Given(`^a bill exists named "([^"]*)" with amount "([^"]*)" due on day (\d+) paid by "([^"]*)"$`, test.aBillExists)
	ctx.Given(`^a credit card exists named "([^"]*)" with balance "([^"]*)" and minimum payment "([^"]*)" owned by "([^"]*)"$`, test.aCreditCardExists)
	ctx.Given(`^a loan exists named "([^"]*)" with balance "([^"]*)" and monthly payment "([^"]*)"$`, test.aLoanExists)
	ctx.Given(`^a subscription exists named "([^"]*)" with amount "([^"]*)" billed "([^"]*)"$`, test.aSubscriptionExists)
	ctx.Given(`^a note exists titled "([^"]*)"$`, test.aNoteExists)
	ctx.Given(`^a savings goal exists named "([^"]*)" with target "([^"]*)" and saved "([^"]*)"$`, test.aSavingsGoalExists)
	ctx.Given(`^the bill key "([^"]*)" is marked paid for period (\d+) of (\d+)-(\d+)$`, test.theBillKeyIsMarkedPaid)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.response = nil
	t.sourceAID = uuid.Nil
	t.sourceBID = uuid.Nil
	t.billID = uuid.Nil
	t.cardID = uuid.Nil
	t.loanID = uuid.Nil
	t.subscriptionID = uuid.Nil
	t.noteID = uuid.Nil
	t.goalID = uuid.Nil

	if testClock != nil {
		testClock.SetNow(testToday)
	}

	if t.db != nil {
		_ = t.db.Reset()
	}
	_ = mock.FlushRedis(mock.NewRedis())
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) theHouseholdIsLoggedIn() error {
	tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour)

	accessToken, err := tokenService.GenerateAccessToken(testHouseholdName)
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessToken

	refreshToken, err := tokenService.GenerateRefreshToken(testHouseholdName)
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshToken

	return nil
}

func (t *testContext) todayIs(date string) error {
	today, err := time.Parse(dto.DateLayout, date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}
	if testClock == nil {
		return errors.New("server is not running")
	}
	testClock.SetNow(today.Add(12 * time.Hour))
	return nil
}

func (t *testContext) anIncomeSourceExists(person, amount, nextPayDate string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	payDate, err := time.Parse(dto.DateLayout, nextPayDate)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	source := &model.IncomeSourceModel{
		ID:           uuid.New(),
		Person:       person,
		Amount:       value,
		NextPayDate:  &payDate,
		PayDayOfWeek: strings.ToLower(payDate.Weekday().String()),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	switch person {
	case "person_a":
		t.sourceAID = source.ID
	case "person_b":
		t.sourceBID = source.ID
	}

	return t.db.DbConn.Create(source).Error
}

func (t *testContext) aBillExists(name, amount string, dueDate int, paidBy string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	bill := &model.BillModel{
		ID:            uuid.New(),
		Name:          name,
		DefaultAmount: &value,
		DueDate:       dueDate,
		Category:      "utility",
		PaidBy:        paidBy,
		PaymentMethod: "checking",
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	t.billID = bill.ID

	return t.db.DbConn.Create(bill).Error
}

func (t *testContext) aCreditCardExists(name, balance, minPayment, ownedBy string) error {
	balanceValue, err := decimal.NewFromString(balance)
	if err != nil {
		return err
	}
	minValue, err := decimal.NewFromString(minPayment)
	if err != nil {
		return err
	}
	creditLimit := decimal.NewFromInt(5000)

	now := time.Now().UTC()
	card := &model.CreditCardModel{
		ID:          uuid.New(),
		Name:        name,
		Balance:     balanceValue,
		CreditLimit: &creditLimit,
		MinPayment:  minValue,
		APR:         decimal.NewFromFloat(22.99),
		DueDate:     20,
		OwnedBy:     ownedBy,
		Active:      true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	t.cardID = card.ID

	return t.db.DbConn.Create(card).Error
}

func (t *testContext) aLoanExists(name, balance, monthlyPayment string) error {
	balanceValue, err := decimal.NewFromString(balance)
	if err != nil {
		return err
	}
	paymentValue, err := decimal.NewFromString(monthlyPayment)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	loan := &model.LoanModel{
		ID:             uuid.New(),
		Name:           name,
		Balance:        balanceValue,
		MonthlyPayment: paymentValue,
		APR:            decimal.NewFromFloat(6.5),
		DueDate:        5,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	t.loanID = loan.ID

	return t.db.DbConn.Create(loan).Error
}

func (t *testContext) aSubscriptionExists(name, amount, frequency string) error {
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	sub := &model.SubscriptionModel{
		ID:        uuid.New(),
		Name:      name,
		Amount:    value,
		DueDate:   time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC),
		Frequency: frequency,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.subscriptionID = sub.ID

	return t.db.DbConn.Create(sub).Error
}

func (t *testContext) aNoteExists(title string) error {
	now := time.Now().UTC()
	note := &model.BudgetNoteModel{
		ID:        uuid.New(),
		Title:     title,
		Content:   "remember to review this",
		CreatedAt: now,
		UpdatedAt: now,
	}
	t.noteID = note.ID

	return t.db.DbConn.Create(note).Error
}

func (t *testContext) aSavingsGoalExists(name, target, saved string) error {
	targetValue, err := decimal.NewFromString(target)
	if err != nil {
		return err
	}
	savedValue, err := decimal.NewFromString(saved)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	goal := &model.SavingsGoalModel{
		ID:           uuid.New(),
		Name:         name,
		TargetAmount: targetValue,
		TargetDate:   time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC),
		CurrentSaved: savedValue,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	t.goalID = goal.ID

	return t.db.DbConn.Create(goal).Error
}

func (t *testContext) theBillKeyIsMarkedPaid(billKey string, period, year, month int) error {
	billKey = t.replacePlaceholders(billKey)
	check := &model.PaidCheckModel{
		Year:      year,
		Month:     month,
		Period:    period,
		BillKey:   billKey,
		CreatedAt: time.Now().UTC(),
	}
	return t.db.DbConn.Create(check).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{person_a_source_id}}", t.sourceAID.String())
	content = strings.ReplaceAll(content, "{{person_b_source_id}}", t.sourceBID.String())
	content = strings.ReplaceAll(content, "{{bill_id}}", t.billID.String())
	content = strings.ReplaceAll(content, "{{card_id}}", t.cardID.String())
	content = strings.ReplaceAll(content, "{{loan_id}}", t.loanID.String())
	content = strings.ReplaceAll(content, "{{subscription_id}}", t.subscriptionID.String())
	content = strings.ReplaceAll(content, "{{note_id}}", t.noteID.String())
	content = strings.ReplaceAll(content, "{{goal_id}}", t.goalID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
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
		status: resp.StatusCode,
	}

	var responseBody any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}

	return nil
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
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	expectedValue = t.replacePlaceholders(expectedValue)

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

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
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = object

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
