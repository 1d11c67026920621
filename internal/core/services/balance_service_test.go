package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/splitgem/payment-manager/internal/core/domain"
	portssvc "github.com/splitgem/payment-manager/internal/core/ports/services"
	"github.com/splitgem/payment-manager/internal/core/services"
)

// --- Mock PaymentReaderSvc ---

type MockPaymentReader struct {
	mock.Mock
}

func (m *MockPaymentReader) GetGroup(ctx context.Context, groupID string) (*domain.GroupData, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GroupData), args.Error(1)
}

func (m *MockPaymentReader) GetUserGroups(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockPaymentReader) GetPayment(ctx context.Context, paymentID, groupID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentReader) GetGroupActivities(ctx context.Context, groupID string, filter domain.FilterOptions) ([]domain.Payment, error) {
	args := m.Called(ctx, groupID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

func (m *MockPaymentReader) GetAcceptedGroupPayments(ctx context.Context, groupID string) ([]domain.Payment, error) {
	args := m.Called(ctx, groupID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Payment), args.Error(1)
}

var _ portssvc.PaymentReaderSvc = (*MockPaymentReader)(nil)

// --- Test Suite Setup ---

type BalanceServiceTestSuite struct {
	suite.Suite
	mockReader *MockPaymentReader
	service    *services.BalanceService
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockReader = new(MockPaymentReader)
	suite.service = services.NewBalanceService(suite.mockReader)
}

func acceptedPayment(creatorID, recipientID string, value int64, currency string, fx *domain.FxData, date time.Time) domain.Payment {
	return domain.Payment{
		ID:          creatorID + "-" + recipientID + "-" + currency,
		GroupID:     "group-1",
		CreatorID:   creatorID,
		RecipientID: recipientID,
		Amount:      domain.Amount{Value: decimal.NewFromInt(value), Currency: currency},
		FxData:      fx,
		Date:        date,
		Status:      domain.PaymentAccepted,
	}
}

func (suite *BalanceServiceTestSuite) TestGetUserBalance_SignsAndCurrencies() {
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	rate := decimal.NewFromFloat(1.5)

	accepted := []domain.Payment{
		// user created: positive, presented in the conversion target.
		acceptedPayment("user-1", "user-2", 50, "PLN",
			&domain.FxData{TargetCurrency: "EUR", ExchangeRate: rate}, day),
		// user is recipient: negative, base currency, no rate.
		acceptedPayment("user-3", "user-1", 50, "PLN", nil, day.AddDate(0, 0, 1)),
		// user not a participant: skipped.
		acceptedPayment("user-2", "user-3", 10, "EUR", nil, day.AddDate(0, 0, 2)),
	}

	suite.mockReader.On("GetAcceptedGroupPayments", ctx, "group-1").Return(accepted, nil).Once()

	elements, err := suite.service.GetUserBalance(ctx, "group-1", "user-1")

	suite.Require().NoError(err)
	suite.Require().Len(elements, 2)

	suite.True(decimal.NewFromInt(50).Equal(elements[0].Value))
	suite.Equal("EUR", elements[0].Currency)
	suite.Require().NotNil(elements[0].ExchangeRate)
	suite.True(rate.Equal(*elements[0].ExchangeRate))

	suite.True(decimal.NewFromInt(-50).Equal(elements[1].Value))
	suite.Equal("PLN", elements[1].Currency)
	suite.Nil(elements[1].ExchangeRate)

	suite.mockReader.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestGetUserBalance_EmptyGroup() {
	ctx := context.Background()

	suite.mockReader.On("GetAcceptedGroupPayments", ctx, "group-1").Return([]domain.Payment{}, nil).Once()

	elements, err := suite.service.GetUserBalance(ctx, "group-1", "user-1")

	suite.Require().NoError(err)
	suite.Empty(elements)
}

func (suite *BalanceServiceTestSuite) TestGetUserBalance_ReaderFailure() {
	ctx := context.Background()

	suite.mockReader.On("GetAcceptedGroupPayments", ctx, "group-1").Return(nil, context.DeadlineExceeded).Once()

	elements, err := suite.service.GetUserBalance(ctx, "group-1", "user-1")

	suite.Require().Error(err)
	suite.Nil(elements)
	suite.ErrorIs(err, context.DeadlineExceeded)
}

// Run the suite
func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
