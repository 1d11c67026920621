package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitgem/payment-manager/internal/apperrors"
	"github.com/splitgem/payment-manager/internal/core/domain"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
	"github.com/splitgem/payment-manager/internal/core/validation"
	"github.com/splitgem/payment-manager/internal/dto"
	"github.com/splitgem/payment-manager/internal/handlers"
	"github.com/splitgem/payment-manager/internal/middleware"
	"github.com/splitgem/payment-manager/pkg/config"
)

// --- Mock PaymentService ---

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupData), args.Error(1)
}

func (m *MockPaymentService) GetUserGroups(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentService) GetPayment(ctx context.Context, paymentID, groupID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetGroupActivities(ctx context.Context, groupID string, filter domain.FilterOptions) ([]domain.Payment, error) {
	args := m.Called(ctx, groupID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) GetAcceptedGroupPayments(ctx context.Context, groupID string) ([]domain.Payment, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentService) CreatePayment(ctx context.Context, groupData domain.GroupData, creation domain.PaymentCreation) (*domain.Payment, error) {
	args := m.Called(ctx, groupData, creation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) Decide(ctx context.Context, decision domain.PaymentDecision) (*domain.Payment, error) {
	args := m.Called(ctx, decision)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) UpdatePayment(ctx context.Context, groupData domain.GroupData, update domain.PaymentUpdate) (*domain.Payment, error) {
	args := m.Called(ctx, groupData, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) DeletePayment(ctx context.Context, paymentID, groupID, userID string) error {
	args := m.Called(ctx, paymentID, groupID, userID)
	return args.Error(0)
}

var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Mock BalanceService ---

type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) GetUserBalance(ctx context.Context, groupID, userID string) ([]domain.BalanceElement, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceElement), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Test Suite Setup ---

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockPayments *MockPaymentService
	mockBalances *MockBalanceService
}

func (suite *PaymentHandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		suite.Require().NoError(dto.RegisterCustomValidations(v))
	}
}

func (suite *PaymentHandlerTestSuite) SetupTest() {
	suite.mockPayments = new(MockPaymentService)
	suite.mockBalances = new(MockBalanceService)

	suite.router = gin.New()
	// IsProduction skips the swagger routes; they are not under test.
	handlers.RegisterRoutes(suite.router, &config.Config{IsProduction: true}, &portssvc.ServiceContainer{
		Payment: suite.mockPayments,
		Balance: suite.mockBalances,
	})
}

func (suite *PaymentHandlerTestSuite) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target, userID string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	return req
}

func (suite *PaymentHandlerTestSuite) groupData() *domain.GroupData {
	return &domain.GroupData{
		GroupID:    "group-1",
		Members:    []domain.GroupMember{{ID: "creator-1"}, {ID: "recipient-1"}},
		Currencies: []domain.Currency{{Code: "PLN"}, {Code: "EUR"}},
	}
}

func (suite *PaymentHandlerTestSuite) payment() *domain.Payment {
	created := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	return &domain.Payment{
		ID:           "payment-1",
		GroupID:      "group-1",
		CreatorID:    "creator-1",
		RecipientID:  "recipient-1",
		Title:        "Dinner",
		Type:         domain.PaymentTypeCash,
		Amount:       domain.Amount{Value: decimal.NewFromInt(50), Currency: "PLN"},
		Date:         created,
		CreatedAt:    created,
		UpdatedAt:    created,
		AttachmentID: "attachment-1",
		Status:       domain.PaymentPending,
		History: []domain.PaymentHistoryEntry{
			{ParticipantID: "creator-1", Action: domain.ActionCreated, CreatedAt: created},
		},
	}
}

func creationBody() map[string]any {
	return map[string]any{
		"title":       "Dinner",
		"type":        "CASH",
		"amount":      map[string]any{"value": 50, "currency": "PLN"},
		"date":        "2026-03-10T12:00:00Z",
		"recipientId": "recipient-1",
	}
}

// --- Tests ---

func (suite *PaymentHandlerTestSuite) TestCreatePayment_Success() {
	suite.mockPayments.On("GetGroup", mock.Anything, "group-1").Return(suite.groupData(), nil).Once()
	suite.mockPayments.On("CreatePayment", mock.Anything, *suite.groupData(), mock.AnythingOfType("domain.PaymentCreation")).
		Return(suite.payment(), nil).Once()

	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments?groupId=group-1", "creator-1", creationBody()))

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("payment-1", resp.ID)
	suite.Equal("PENDING", resp.Status)
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_MissingIdentityHeader() {
	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments?groupId=group-1", "", creationBody()))

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPayments.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_NonMemberForbidden() {
	suite.mockPayments.On("GetGroup", mock.Anything, "group-1").Return(suite.groupData(), nil).Once()

	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments?groupId=group-1", "outsider", creationBody()))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPayments.AssertNotCalled(suite.T(), "CreatePayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_BindingFailures() {
	body := creationBody()
	body["title"] = "   "
	body["recipientId"] = ""

	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments?groupId=group-1", "creator-1", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	var holder handlers.ErrorsHolder
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &holder))
	messages := make([]string, 0, len(holder.Errors))
	for _, e := range holder.Errors {
		suite.Equal("VALIDATOR_ERROR", e.Code)
		messages = append(messages, e.Message)
	}
	suite.Contains(messages, validation.TitleNotBlank)
	suite.Contains(messages, validation.RecipientIDNotBlank)
	suite.mockPayments.AssertNotCalled(suite.T(), "GetGroup", mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestCreatePayment_BusinessValidationReturns400() {
	suite.mockPayments.On("GetGroup", mock.Anything, "group-1").Return(suite.groupData(), nil).Once()
	suite.mockPayments.On("CreatePayment", mock.Anything, *suite.groupData(), mock.AnythingOfType("domain.PaymentCreation")).
		Return(nil, apperrors.NewValidationError([]string{validation.RecipientIsCreator})).Once()

	body := creationBody()
	body["recipientId"] = "creator-1"
	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments?groupId=group-1", "creator-1", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	var holder handlers.ErrorsHolder
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &holder))
	suite.Require().Len(holder.Errors, 1)
	suite.Equal(validation.RecipientIsCreator, holder.Errors[0].Message)
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_Success() {
	suite.mockPayments.On("GetUserGroups", mock.Anything, "creator-1").Return([]string{"group-1"}, nil).Once()
	suite.mockPayments.On("GetPayment", mock.Anything, "payment-1", "group-1").Return(suite.payment(), nil).Once()

	w := suite.serve(jsonRequest(http.MethodGet, "/external/payments/payment-1/groups/group-1", "creator-1", nil))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("payment-1", resp.ID)
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_NotFound() {
	suite.mockPayments.On("GetUserGroups", mock.Anything, "creator-1").Return([]string{"group-1"}, nil).Once()
	suite.mockPayments.On("GetPayment", mock.Anything, "missing", "group-1").
		Return(nil, fmt.Errorf("lookup: %w", apperrors.ErrNotFound)).Once()

	w := suite.serve(jsonRequest(http.MethodGet, "/external/payments/missing/groups/group-1", "creator-1", nil))

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *PaymentHandlerTestSuite) TestGetPayment_OutsideGroups() {
	suite.mockPayments.On("GetUserGroups", mock.Anything, "creator-1").Return([]string{"group-2"}, nil).Once()

	w := suite.serve(jsonRequest(http.MethodGet, "/external/payments/payment-1/groups/group-1", "creator-1", nil))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.mockPayments.AssertNotCalled(suite.T(), "GetPayment", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestDecide_Success() {
	decided := suite.payment()
	decided.Status = domain.PaymentAccepted

	suite.mockPayments.On("GetUserGroups", mock.Anything, "recipient-1").Return([]string{"group-1"}, nil).Once()
	suite.mockPayments.On("Decide", mock.Anything, domain.PaymentDecision{
		UserID:    "recipient-1",
		PaymentID: "payment-1",
		GroupID:   "group-1",
		Decision:  domain.DecisionAccept,
	}).Return(decided, nil).Once()

	body := map[string]any{"paymentId": "payment-1", "groupId": "group-1", "decision": "ACCEPT"}
	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments/decide", "recipient-1", body))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("ACCEPTED", resp.Status)
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestDecide_InvalidDecisionValue() {
	body := map[string]any{"paymentId": "payment-1", "groupId": "group-1", "decision": "MAYBE"}
	w := suite.serve(jsonRequest(http.MethodPost, "/external/payments/decide", "recipient-1", body))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayments.AssertNotCalled(suite.T(), "Decide", mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestDeletePayment_Success() {
	suite.mockPayments.On("GetUserGroups", mock.Anything, "creator-1").Return([]string{"group-1"}, nil).Once()
	suite.mockPayments.On("DeletePayment", mock.Anything, "payment-1", "group-1", "creator-1").Return(nil).Once()

	w := suite.serve(jsonRequest(http.MethodDelete, "/external/payments/payment-1/groups/group-1", "creator-1", nil))

	suite.Equal(http.StatusOK, w.Code)
	suite.Empty(w.Body.Bytes())
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestUpdatePayment_Success() {
	updated := suite.payment()
	updated.Title = "Dinner and drinks"

	suite.mockPayments.On("GetGroup", mock.Anything, "group-1").Return(suite.groupData(), nil).Once()
	suite.mockPayments.On("UpdatePayment", mock.Anything, *suite.groupData(), mock.AnythingOfType("domain.PaymentUpdate")).
		Return(updated, nil).Once()

	body := creationBody()
	delete(body, "recipientId")
	body["title"] = "Dinner and drinks"
	w := suite.serve(jsonRequest(http.MethodPut, "/external/payments/payment-1/groups/group-1", "creator-1", body))

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("Dinner and drinks", resp.Title)
}

// --- Internal endpoints ---

func (suite *PaymentHandlerTestSuite) TestGetGroupActivities_DefaultsAndFilters() {
	title := "din"
	status := domain.PaymentPending
	expected := domain.FilterOptions{
		Title:     &title,
		Status:    &status,
		SortedBy:  domain.SortedByDate,
		SortOrder: domain.Ascending,
	}
	suite.mockPayments.On("GetGroupActivities", mock.Anything, "group-1", expected).
		Return([]domain.Payment{*suite.payment()}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/internal/payments/activities/groups/group-1?title=din&status=PENDING", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GroupActivitiesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("group-1", resp.GroupID)
	suite.Require().Len(resp.Payments, 1)
	suite.mockPayments.AssertExpectations(suite.T())
}

func (suite *PaymentHandlerTestSuite) TestGetGroupActivities_InvalidEnums() {
	req := httptest.NewRequest(http.MethodGet, "/internal/payments/activities/groups/group-1?status=STALE&sortedBy=AMOUNT", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPayments.AssertNotCalled(suite.T(), "GetGroupActivities", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentHandlerTestSuite) TestGetAcceptedGroupPayments() {
	accepted := suite.payment()
	accepted.Status = domain.PaymentAccepted
	suite.mockPayments.On("GetAcceptedGroupPayments", mock.Anything, "group-1").
		Return([]domain.Payment{*accepted}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/internal/payments/accepted/groups/group-1", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AcceptedGroupPaymentsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp.Payments, 1)
	suite.Equal("ACCEPTED", resp.Payments[0].Status)
}

func (suite *PaymentHandlerTestSuite) TestGetUserBalance() {
	rate := decimal.NewFromFloat(1.5)
	suite.mockBalances.On("GetUserBalance", mock.Anything, "group-1", "user-1").
		Return([]domain.BalanceElement{
			{Value: decimal.NewFromInt(50), Currency: "EUR", ExchangeRate: &rate},
			{Value: decimal.NewFromInt(-50), Currency: "PLN"},
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/internal/payments/balance/groups/group-1/users/user-1", nil)
	w := suite.serve(req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.UserBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("user-1", resp.UserID)
	suite.Require().Len(resp.Elements, 2)
	suite.Equal("EUR", resp.Elements[0].Currency)
	suite.Nil(resp.Elements[1].ExchangeRate)
}

// Run the suite
func TestPaymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}
