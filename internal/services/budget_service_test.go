package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"budgetcast/internal/dto"
	apperrors "budgetcast/internal/errors"
	"budgetcast/internal/models"
	"budgetcast/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type BudgetServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	patternRepo     *repository_mocks.MockPatternRepositoryInterface
	metrics         *stubMetrics
	service         BudgetServiceInterface
	userID          uuid.UUID
}

func TestBudgetServiceSuite(t *testing.T) {
	suite.Run(t, new(BudgetServiceTestSuite))
}

func (s *BudgetServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.patternRepo = repository_mocks.NewMockPatternRepositoryInterface(s.ctrl)
	s.metrics = newStubMetrics()
	s.userID = uuid.New()

	s.service = NewBudgetService(
		s.transactionRepo,
		s.patternRepo,
		NewMonthProjector(),
		NewActiveMonthsStrategy(),
		newTestDetectionLogger(),
		s.metrics,
	)
}

func (s *BudgetServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *BudgetServiceTestSuite) expense(year, month int, amount float64, categoryID string, subCategoryID *string, description string) models.Transaction {
	return models.Transaction{
		ID:            uuid.New(),
		UserID:        s.userID,
		Date:          time.Date(year, time.Month(month), 15, 0, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromFloat(-amount),
		CategoryID:    categoryID,
		SubCategoryID: subCategoryID,
		Description:   description,
	}
}

func (s *BudgetServiceTestSuite) carInsurancePattern() models.Pattern {
	car := "car"
	return models.Pattern{
		ID:                    uuid.New(),
		UserID:                s.userID,
		NormalizedDescription: "acme car insurance",
		CategoryID:            "insurance",
		SubCategoryID:         &car,
		MinAmount:             decimal.NewFromInt(300),
		MaxAmount:             decimal.NewFromInt(300),
		RecurrenceType:        models.RecurrenceQuarterly,
		ScheduledMonths:       models.MonthList{1, 4, 7, 10},
		AverageAmount:         decimal.NewFromInt(300),
		Confidence:            0.9,
		ApprovalStatus:        models.ApprovalStatusApproved,
	}
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_BlockedByPendingPatterns() {
	pending := s.carInsurancePattern()
	pending.ApprovalStatus = models.ApprovalStatusPending

	s.patternRepo.EXPECT().FindPending(s.userID).Return([]models.Pattern{pending}, nil)

	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          7,
		AnalysisMonths: 6,
	})

	s.Nil(result)

	var approvalErr *apperrors.ApprovalRequiredError
	s.Require().ErrorAs(err, &approvalErr)
	s.Require().Len(approvalErr.Pending, 1)
	s.Equal(pending.ID, approvalErr.Pending[0].ID)
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_CombinesAverageAndPattern() {
	car := "car"
	pattern := s.carInsurancePattern()

	// six months of variable insurance spend plus the pattern's own recurring
	// charges, which must be excluded from the average
	transactions := []models.Transaction{
		s.expense(2025, 1, 300, "insurance", &car, "acme car insurance"),
		s.expense(2025, 4, 300, "insurance", &car, "acme car insurance"),
	}
	for month := 1; month <= 6; month++ {
		transactions = append(transactions,
			s.expense(2025, month, 1200, "insurance", &car, "family health plan premium"))
	}

	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, nil)
	s.patternRepo.EXPECT().FindApproved(s.userID).Return([]models.Pattern{pattern}, nil)
	s.transactionRepo.EXPECT().
		FindExpenses(s.userID,
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)).
		Return(transactions, nil)

	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          7,
		AnalysisMonths: 6,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Lines, 1)

	line := result.Lines[0]
	s.Equal("insurance", line.CategoryID)
	s.Equal(&car, line.SubCategoryID)
	// 7200 of variable spend over 6 data months plus the 300 recurring charge
	s.True(line.BudgetedAmount.Equal(decimal.NewFromInt(1500)),
		"expected 1500, got %s", line.BudgetedAmount)
	s.Equal(models.BudgetSourceCombined, line.Source)
	s.Require().NotNil(line.PatternInfo)
	s.Equal(pattern.ID, line.PatternInfo.PatternID)
	s.True(line.PatternInfo.Amount.Equal(decimal.NewFromInt(300)))
	s.True(result.TotalBudgetedExpenses.Equal(decimal.NewFromInt(1500)))
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_PatternOnlyLine() {
	pattern := s.carInsurancePattern()

	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, nil)
	s.patternRepo.EXPECT().FindApproved(s.userID).Return([]models.Pattern{pattern}, nil)
	s.transactionRepo.EXPECT().
		FindExpenses(s.userID, gomock.Any(), gomock.Any()).
		Return(nil, nil)

	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          10,
		AnalysisMonths: 6,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Lines, 1)
	s.Equal(models.BudgetSourceRecurringPattern, result.Lines[0].Source)
	s.True(result.Lines[0].BudgetedAmount.Equal(decimal.NewFromInt(300)))
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_PatternOutsideScheduleDoesNotContribute() {
	pattern := s.carInsurancePattern()

	transactions := []models.Transaction{
		s.expense(2025, 1, 90, "groceries", nil, "corner market"),
		s.expense(2025, 2, 110, "groceries", nil, "corner market"),
	}

	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, nil)
	s.patternRepo.EXPECT().FindApproved(s.userID).Return([]models.Pattern{pattern}, nil)
	s.transactionRepo.EXPECT().
		FindExpenses(s.userID, gomock.Any(), gomock.Any()).
		Return(transactions, nil)

	// May is not on the quarterly schedule [1,4,7,10]
	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          5,
		AnalysisMonths: 6,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Lines, 1)
	s.Equal("groceries", result.Lines[0].CategoryID)
	s.Equal(models.BudgetSourceNonRecurringAverage, result.Lines[0].Source)
	// 200 over 2 data months
	s.True(result.Lines[0].BudgetedAmount.Equal(decimal.NewFromInt(100)))
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_AveragesRoundToWholeUnits() {
	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, nil)
	s.patternRepo.EXPECT().FindApproved(s.userID).Return(nil, nil)
	s.transactionRepo.EXPECT().
		FindExpenses(s.userID, gomock.Any(), gomock.Any()).
		Return([]models.Transaction{
			s.expense(2025, 1, 40, "groceries", nil, "corner market"),
			s.expense(2025, 2, 30, "groceries", nil, "corner market"),
			s.expense(2025, 3, 30, "groceries", nil, "corner market again"),
		}, nil)

	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          4,
		AnalysisMonths: 6,
	})

	s.Require().NoError(err)
	s.Require().Len(result.Lines, 1)
	// 100 / 3 rounds to a whole currency unit
	s.True(result.Lines[0].BudgetedAmount.Equal(decimal.NewFromInt(33)),
		"expected 33, got %s", result.Lines[0].BudgetedAmount)
	s.NotEmpty(result.Lines[0].Reasoning)
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_InvalidRequest() {
	testCases := []struct {
		name string
		req  *dto.BudgetRequest
	}{
		{"month out of range", &dto.BudgetRequest{UserID: s.userID, Year: 2025, Month: 13, AnalysisMonths: 6}},
		{"missing year", &dto.BudgetRequest{UserID: s.userID, Month: 7, AnalysisMonths: 6}},
		{"analysis window too large", &dto.BudgetRequest{UserID: s.userID, Year: 2025, Month: 7, AnalysisMonths: 48}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			result, err := s.service.CalculateBudget(context.Background(), tc.req)

			s.Nil(result)
			s.ErrorIs(err, ErrInvalidBudgetRequest)
		})
	}
}

func (s *BudgetServiceTestSuite) TestCalculateBudget_PatternFetchError() {
	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, errors.New("connection refused"))

	result, err := s.service.CalculateBudget(context.Background(), &dto.BudgetRequest{
		UserID:         s.userID,
		Year:           2025,
		Month:          7,
		AnalysisMonths: 6,
	})

	s.Nil(result)
	s.ErrorContains(err, "failed to check pending patterns")
}

func (s *BudgetServiceTestSuite) TestCalculateYearBudget_SingleSnapshot() {
	pattern := s.carInsurancePattern()

	// one approval gate, one pattern snapshot, one history fetch for the
	// whole year
	s.patternRepo.EXPECT().FindPending(s.userID).Return(nil, nil)
	s.patternRepo.EXPECT().FindApproved(s.userID).Return([]models.Pattern{pattern}, nil)
	s.transactionRepo.EXPECT().
		FindExpenses(s.userID,
			time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)).
		Return(nil, nil)

	results, err := s.service.CalculateYearBudget(context.Background(), s.userID, 2025, 12)

	s.Require().NoError(err)
	s.Require().Len(results, 12)

	scheduled := map[int]bool{1: true, 4: true, 7: true, 10: true}
	for i, result := range results {
		s.Equal(i+1, result.Month)
		s.Equal(2025, result.Year)
		if scheduled[result.Month] {
			s.Require().Len(result.Lines, 1, "month %d should carry the pattern", result.Month)
			s.True(result.TotalBudgetedExpenses.Equal(decimal.NewFromInt(300)))
		} else {
			s.Empty(result.Lines, "month %d should be empty", result.Month)
		}
	}
}

func (s *BudgetServiceTestSuite) TestSpreadAcrossPeriods() {
	shares, err := s.service.SpreadAcrossPeriods(1003, 20)

	s.Require().NoError(err)
	s.Require().Len(shares, 20)

	var sum int64
	for i, share := range shares {
		sum += share
		if i < 3 {
			s.EqualValues(51, share)
		} else {
			s.EqualValues(50, share)
		}
	}
	s.EqualValues(1003, sum)
}

func (s *BudgetServiceTestSuite) TestSpreadAcrossPeriods_EvenSplit() {
	shares, err := s.service.SpreadAcrossPeriods(1200, 12)

	s.Require().NoError(err)
	for _, share := range shares {
		s.EqualValues(100, share)
	}
}

func (s *BudgetServiceTestSuite) TestSpreadAcrossPeriods_InvalidInput() {
	_, err := s.service.SpreadAcrossPeriods(0, 12)
	s.ErrorIs(err, ErrInvalidSpread)

	_, err = s.service.SpreadAcrossPeriods(1000, 0)
	s.ErrorIs(err, ErrInvalidSpread)
}
