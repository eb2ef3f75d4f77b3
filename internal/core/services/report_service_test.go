package services_test

import (
	"context"
	"testing"

	"github.com/mzafran/zakat_tracker_app/internal/adapters/store/memory"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/core/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	payment portssvc.PaymentSvcFacade
	service portssvc.ReportSvcFacade
	ctx     context.Context
}

func (suite *ReportServiceTestSuite) SetupTest() {
	repos := memory.NewRepositoryProvider()
	suite.payment = services.NewPaymentService(repos.PaymentRepo, repos.SettingsRepo)
	suite.service = services.NewReportService(repos.SettingsRepo, suite.payment)
	suite.ctx = context.Background()
}

func (suite *ReportServiceTestSuite) pay(date, typeName, svc, recipient, amount, fees string) {
	_, err := suite.payment.AppendEntry(suite.ctx, dto.AppendPaymentRequest{
		Date:      date,
		Type:      typeName,
		Service:   svc,
		Recipient: recipient,
		Amount:    dec(amount),
		Fees:      dec(fees),
	})
	suite.Require().NoError(err)
}

func (suite *ReportServiceTestSuite) TestQueryAllYears() {
	suite.pay("2023-05-01", "Zakat", "Wise", "Local Mosque", "100", "1")
	suite.pay("2024-05-01", "Sadaqah", "Cash", "Local Mosque", "40", "0")
	suite.pay("2024-06-01", "Zakat", "Wise", "Family Member", "60", "0")

	report, err := suite.service.Query(suite.ctx, "Local Mosque", domain.AllYears)
	suite.Require().NoError(err)

	suite.True(report.HasRecipient)
	suite.Equal(2, report.TransactionCount)
	suite.True(report.TotalGiven.Equal(dec("141")))
	suite.True(report.AllTypesTotal.Equal(dec("141")))

	// breakdown rows follow the settings type order
	suite.Require().Len(report.Breakdown, 4)
	suite.Equal("Zakat", report.Breakdown[0].Type)
	suite.True(report.Breakdown[0].Total.Equal(dec("101")))
	suite.Equal("Sadaqah", report.Breakdown[1].Type)
	suite.True(report.Breakdown[1].Total.Equal(dec("40")))
}

func (suite *ReportServiceTestSuite) TestQueryYearFilter() {
	suite.pay("2023-05-01", "Zakat", "Wise", "Local Mosque", "100", "0")
	suite.pay("2024-05-01", "Zakat", "Wise", "Local Mosque", "40", "0")

	report, err := suite.service.Query(suite.ctx, "Local Mosque", 2024)
	suite.Require().NoError(err)

	suite.Equal(1, report.TransactionCount)
	suite.True(report.TotalGiven.Equal(dec("40")))
}

func (suite *ReportServiceTestSuite) TestQueryWithoutRecipient() {
	suite.pay("2023-05-01", "Zakat", "Wise", "Local Mosque", "100", "0")

	report, err := suite.service.Query(suite.ctx, "", domain.AllYears)
	suite.Require().NoError(err)

	suite.False(report.HasRecipient)
	suite.Equal(0, report.TransactionCount)
	suite.True(report.TotalGiven.IsZero())
	for _, row := range report.Detail {
		suite.True(row.Blank)
	}
}

func (suite *ReportServiceTestSuite) TestDetailWindowIsFixedAndPadded() {
	suite.pay("2024-05-01", "Zakat", "Wise", "Local Mosque", "10", "0")
	suite.pay("2024-05-02", "Zakat", "Wise", "Local Mosque", "20", "0")

	report, err := suite.service.Query(suite.ctx, "Local Mosque", domain.AllYears)
	suite.Require().NoError(err)

	suite.Require().Len(report.Detail, domain.ReportDetailWindow)
	suite.False(report.Detail[0].Blank)
	suite.Equal(1, report.Detail[0].Rank)
	suite.True(report.Detail[0].Entry.Amount.Equal(dec("10")))
	suite.False(report.Detail[1].Blank)
	suite.True(report.Detail[2].Blank)
	suite.True(report.Detail[domain.ReportDetailWindow-1].Blank)
}

func (suite *ReportServiceTestSuite) TestServiceFeeSummaryIgnoresFilters() {
	suite.pay("2023-05-01", "Zakat", "Wise", "Local Mosque", "100", "2")
	suite.pay("2024-05-01", "Zakat", "Wise", "Family Member", "50", "1")
	suite.pay("2024-06-01", "Sadaqah", "Cash", "Local Mosque", "30", "0")

	rows, err := suite.service.ServiceFeeSummary(suite.ctx)
	suite.Require().NoError(err)

	// rows follow the settings service order
	suite.Require().Len(rows, 5)
	suite.Equal("Remitly", rows[0].Service)
	suite.Equal(0, rows[0].PaymentCount)

	suite.Equal("Wise", rows[1].Service)
	suite.Equal(2, rows[1].PaymentCount)
	suite.True(rows[1].TotalAmount.Equal(dec("150")))
	suite.True(rows[1].TotalFees.Equal(dec("3")))

	suite.Equal("Cash", rows[3].Service)
	suite.Equal(1, rows[3].PaymentCount)
}

func (suite *ReportServiceTestSuite) TestRecipientsAndYears() {
	suite.pay("2024-05-01", "Zakat", "Wise", "Local Mosque", "10", "0")
	suite.pay("2023-05-01", "Zakat", "Wise", "Family Member", "10", "0")
	suite.pay("2024-06-01", "Zakat", "Wise", "Local Mosque", "10", "0")

	recipients, err := suite.service.Recipients(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]string{"Local Mosque", "Family Member"}, recipients)

	years, err := suite.service.Years(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal([]int{2023, 2024}, years)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
