package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/mzafran/zakat_tracker_app/internal/adapters/store/memory"
	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/core/services"
	"github.com/mzafran/zakat_tracker_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// --- Test Suite ---
type ZakatServiceTestSuite struct {
	suite.Suite
	container *portssvc.ServiceContainer
	ctx       context.Context
}

func (suite *ZakatServiceTestSuite) SetupTest() {
	suite.container = services.NewServiceContainer(memory.NewRepositoryProvider())
	suite.ctx = context.Background()
}

// seedAssets stores one snapshot per ledger kind for the given date.
func (suite *ZakatServiceTestSuite) seedAssets(date string, stocks, cash, debts string) {
	_, err := suite.container.Asset.SetSnapshot(suite.ctx, domain.AssetStocks, mustDate(date),
		map[string]decimal.Decimal{"Fidelity": dec(stocks)})
	suite.Require().NoError(err)
	_, err = suite.container.Asset.SetSnapshot(suite.ctx, domain.AssetCash, mustDate(date),
		map[string]decimal.Decimal{"Chase Checking": dec(cash)})
	suite.Require().NoError(err)
	_, err = suite.container.Asset.SetSnapshot(suite.ctx, domain.AssetDebts, mustDate(date),
		map[string]decimal.Decimal{"Car Loan": dec(debts)})
	suite.Require().NoError(err)
}

func (suite *ZakatServiceTestSuite) pay(date, typeName, amount string) {
	_, err := suite.container.Payment.AppendEntry(suite.ctx, dto.AppendPaymentRequest{
		Date:      date,
		Type:      typeName,
		Service:   "Wise",
		Recipient: "Local Mosque",
		Amount:    dec(amount),
	})
	suite.Require().NoError(err)
}

func (suite *ZakatServiceTestSuite) TestDerivesFullRow() {
	suite.seedAssets("2024-03-15", "10000", "4000", "1000")
	suite.pay("2024-03-01", "Zakat", "300")

	err := suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0.5"))
	suite.Require().NoError(err)

	rec, err := suite.container.Zakat.Recompute(suite.ctx, 0)
	suite.Require().NoError(err)

	suite.True(rec.GoldValue.Equal(dec("1500")), "gold value %s", rec.GoldValue)
	suite.True(rec.NetAssets.Equal(dec("14500")), "net assets %s", rec.NetAssets)
	suite.True(rec.NisabThreshold.Equal(dec("8194.5")), "nisab %s", rec.NisabThreshold)
	suite.True(rec.ZakatDue.Equal(dec("362.5")), "due %s", rec.ZakatDue)
	suite.True(rec.PaidThisPeriod.Equal(dec("300")), "paid %s", rec.PaidThisPeriod)
	suite.True(rec.RunningBalance.Equal(dec("62.5")), "balance %s", rec.RunningBalance)
	suite.Equal(domain.StatusPartiallyPaid, rec.Status)
	suite.True(rec.BroughtForward.IsZero())
	suite.False(rec.DuplicateDate)
}

func (suite *ZakatServiceTestSuite) TestBelowNisabIsNotApplicable() {
	suite.seedAssets("2024-03-15", "2000", "1000", "0")
	suite.pay("2024-03-01", "Zakat", "300")

	err := suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0"))
	suite.Require().NoError(err)

	rec, err := suite.container.Zakat.Recompute(suite.ctx, 0)
	suite.Require().NoError(err)

	suite.True(rec.ZakatDue.IsZero())
	// N/A wins even though payments landed in the window
	suite.Equal(domain.StatusNotApplicable, rec.Status)
	suite.True(rec.RunningBalance.Equal(dec("-300")), "balance %s", rec.RunningBalance)
}

func (suite *ZakatServiceTestSuite) TestNoPaymentsIsNotStarted() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")

	err := suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0"))
	suite.Require().NoError(err)

	rec, err := suite.container.Zakat.Recompute(suite.ctx, 0)
	suite.Require().NoError(err)

	suite.True(rec.PaidThisPeriod.IsZero())
	suite.Equal(domain.StatusNotStarted, rec.Status)
}

func (suite *ZakatServiceTestSuite) TestOverpaymentCarriesNegativeBalance() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")
	suite.pay("2024-03-01", "Zakat", "500")
	suite.seedAssets("2025-03-04", "10000", "4000", "0")

	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0")))
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 1, mustDate("2025-03-04"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)

	first, second := records[0], records[1]
	// due 350, paid 500: overpaid by 150
	suite.True(first.RunningBalance.Equal(dec("-150")), "balance %s", first.RunningBalance)
	suite.Equal(domain.StatusPaidInFull, first.Status)

	// the negative carry is folded into the next year unclamped...
	suite.True(second.RunningBalance.Equal(dec("200")), "balance %s", second.RunningBalance)
	// ...but the displayed brought-forward never goes below zero
	suite.True(second.BroughtForward.IsZero())
}

func (suite *ZakatServiceTestSuite) TestBroughtForwardShowsPositiveCarry() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")
	suite.seedAssets("2025-03-04", "10000", "4000", "0")

	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0")))
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 1, mustDate("2025-03-04"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)

	// nothing paid: year one leaves 350 owing
	suite.True(records[0].RunningBalance.Equal(dec("350")))
	suite.True(records[1].BroughtForward.Equal(dec("350")))
	suite.True(records[1].RunningBalance.Equal(dec("700")))
}

func (suite *ZakatServiceTestSuite) TestBlankRowsAreSkipped() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")
	suite.pay("2023-06-01", "Zakat", "100")

	// only position 2 is dated
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 2, mustDate("2024-03-15"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)
	suite.Len(records, domain.MaxZakatYearRecords)

	suite.Nil(dto.FormatDate(records[0].Date))
	suite.True(records[0].ZakatDue.IsZero())
	suite.Equal(domain.PaymentStatus(""), records[0].Status)

	// without a previous dated row the window opens: old payments count
	suite.True(records[2].PaidThisPeriod.Equal(dec("100")))
}

func (suite *ZakatServiceTestSuite) TestBlankGapBreaksCarryChain() {
	suite.seedAssets("2023-03-26", "10000", "4000", "0")
	suite.seedAssets("2025-03-04", "10000", "4000", "0")

	// positions 0 and 2 are dated; position 1 stays blank
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2023-03-26"), dec("3000"), dec("0")))
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 2, mustDate("2025-03-04"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)

	// year one leaves 350 owing, but the blank row below it breaks the chain
	suite.True(records[0].RunningBalance.Equal(dec("350")))
	suite.True(records[2].RunningBalance.Equal(dec("350")), "balance %s", records[2].RunningBalance)
	suite.True(records[2].BroughtForward.IsZero(), "brought forward %s", records[2].BroughtForward)

	// with a blank row above, the payment window loses its lower bound:
	// a payment inside year one's window counts for position 2 as well
	suite.pay("2023-03-01", "Zakat", "100")
	records, err = suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)
	suite.True(records[0].PaidThisPeriod.Equal(dec("100")))
	suite.True(records[2].PaidThisPeriod.Equal(dec("100")))
	suite.True(records[2].RunningBalance.Equal(dec("250")))
}

func (suite *ZakatServiceTestSuite) TestPaymentWindowBounds() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")
	suite.seedAssets("2025-03-04", "10000", "4000", "0")

	suite.pay("2024-03-15", "Zakat", "50") // on the first date: belongs to year one
	suite.pay("2024-06-01", "Zakat", "75") // strictly inside year two's window
	suite.pay("2025-03-04", "Zakat", "25") // on the second date: belongs to year two
	suite.pay("2024-06-01", "Sadaqah", "999")

	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0")))
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 1, mustDate("2025-03-04"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)

	suite.True(records[0].PaidThisPeriod.Equal(dec("50")), "year one paid %s", records[0].PaidThisPeriod)
	suite.True(records[1].PaidThisPeriod.Equal(dec("100")), "year two paid %s", records[1].PaidThisPeriod)
}

func (suite *ZakatServiceTestSuite) TestDuplicateDatesAreFlagged() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")

	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0")))
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 1, mustDate("2024-03-15"), dec("3000"), dec("0")))

	records, err := suite.container.Zakat.AllRecords(suite.ctx)
	suite.Require().NoError(err)
	suite.True(records[0].DuplicateDate)
	suite.True(records[1].DuplicateDate)
}

func (suite *ZakatServiceTestSuite) TestMissingSnapshotsCountAsZero() {
	// no asset snapshots at all: only gold counts
	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("4")))

	rec, err := suite.container.Zakat.Recompute(suite.ctx, 0)
	suite.Require().NoError(err)

	suite.True(rec.StockTotal.IsZero())
	suite.True(rec.CashTotal.IsZero())
	suite.True(rec.DebtTotal.IsZero())
	suite.True(rec.NetAssets.Equal(dec("12000")))
	suite.True(rec.ZakatDue.Equal(dec("300")))
}

func (suite *ZakatServiceTestSuite) TestDashboard() {
	suite.seedAssets("2024-03-15", "10000", "4000", "0")
	suite.pay("2024-03-01", "Zakat", "200")
	suite.pay("2024-03-02", "Sadaqah", "40")

	suite.Require().NoError(suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("3000"), dec("0")))

	dashboard, err := suite.container.Zakat.Dashboard(suite.ctx)
	suite.Require().NoError(err)

	suite.True(dashboard.TotalOwed.Equal(dec("350")), "owed %s", dashboard.TotalOwed)
	suite.True(dashboard.OutstandingBalance.Equal(dec("150")), "outstanding %s", dashboard.OutstandingBalance)

	// per-type rows follow the settings list order
	suite.Require().Len(dashboard.PaidByType, 4)
	suite.Equal("Zakat", dashboard.PaidByType[0].Type)
	suite.True(dashboard.PaidByType[0].Total.Equal(dec("200")))
	suite.Equal("Sadaqah", dashboard.PaidByType[1].Type)
	suite.True(dashboard.PaidByType[1].Total.Equal(dec("40")))
	suite.True(dashboard.PaidByType[2].Total.IsZero())
}

func (suite *ZakatServiceTestSuite) TestUpsertRejectsBadInputs() {
	err := suite.container.Zakat.UpsertRecord(suite.ctx, 0, mustDate("2024-03-15"), dec("-1"), dec("0"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	err = suite.container.Zakat.UpsertRecord(suite.ctx, domain.MaxZakatYearRecords, mustDate("2024-03-15"), dec("1"), dec("0"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.container.Zakat.Recompute(suite.ctx, -1)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestZakatServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ZakatServiceTestSuite))
}
