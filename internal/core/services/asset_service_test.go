package services_test

import (
	"context"
	"testing"

	"github.com/mzafran/zakat_tracker_app/internal/adapters/store/memory"
	"github.com/mzafran/zakat_tracker_app/internal/apperrors"
	"github.com/mzafran/zakat_tracker_app/internal/core/domain"
	portssvc "github.com/mzafran/zakat_tracker_app/internal/core/ports/services"
	"github.com/mzafran/zakat_tracker_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type AssetServiceTestSuite struct {
	suite.Suite
	service portssvc.AssetSvcFacade
	ctx     context.Context
}

func (suite *AssetServiceTestSuite) SetupTest() {
	suite.service = services.NewAssetService(memory.NewRepositoryProvider().AssetRepo)
	suite.ctx = context.Background()
}

func (suite *AssetServiceTestSuite) TestSetSnapshotDerivesTotal() {
	snapshot, err := suite.service.SetSnapshot(suite.ctx, domain.AssetStocks, mustDate("2024-03-15"),
		map[string]decimal.Decimal{
			"Fidelity": dec("7000"),
			"Vanguard": dec("3000"),
		})
	suite.Require().NoError(err)
	suite.True(snapshot.Total.Equal(dec("10000")))

	total, err := suite.service.TotalFor(suite.ctx, domain.AssetStocks, mustDate("2024-03-15"))
	suite.Require().NoError(err)
	suite.True(total.Equal(dec("10000")))
}

func (suite *AssetServiceTestSuite) TestTotalForMissIsZero() {
	total, err := suite.service.TotalFor(suite.ctx, domain.AssetCash, mustDate("2024-03-15"))
	suite.Require().NoError(err)
	suite.True(total.IsZero())

	// kinds are isolated from each other
	_, err = suite.service.SetSnapshot(suite.ctx, domain.AssetStocks, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Fidelity": dec("100")})
	suite.Require().NoError(err)

	total, err = suite.service.TotalFor(suite.ctx, domain.AssetCash, mustDate("2024-03-15"))
	suite.Require().NoError(err)
	suite.True(total.IsZero())
}

func (suite *AssetServiceTestSuite) TestReplacesSnapshotForSameDate() {
	_, err := suite.service.SetSnapshot(suite.ctx, domain.AssetCash, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Chase Checking": dec("500")})
	suite.Require().NoError(err)

	_, err = suite.service.SetSnapshot(suite.ctx, domain.AssetCash, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Chase Checking": dec("800")})
	suite.Require().NoError(err)

	snapshots, err := suite.service.ListSnapshots(suite.ctx, domain.AssetCash)
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)
	suite.True(snapshots[0].Total.Equal(dec("800")))
}

func (suite *AssetServiceTestSuite) TestRejectsUnknownAccountsAndNegatives() {
	_, err := suite.service.SetSnapshot(suite.ctx, domain.AssetStocks, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Crypto Wallet": dec("100")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SetSnapshot(suite.ctx, domain.AssetStocks, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Fidelity": dec("-1")})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SetSnapshot(suite.ctx, domain.AssetDebts, mustDate("2024-03-15"),
		map[string]decimal.Decimal{"Fidelity": dec("1")}) // stock account on the debt ledger
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *AssetServiceTestSuite) TestSnapshotCapacity() {
	for i := 1; i <= domain.MaxAssetSnapshots; i++ {
		date := mustDate("2024-03-01").AddDate(0, 0, i)
		_, err := suite.service.SetSnapshot(suite.ctx, domain.AssetCash, date,
			map[string]decimal.Decimal{"Chase Checking": dec("100")})
		suite.Require().NoError(err)
	}
	_, err := suite.service.SetSnapshot(suite.ctx, domain.AssetCash, mustDate("2024-05-01"),
		map[string]decimal.Decimal{"Chase Checking": dec("100")})
	suite.ErrorIs(err, apperrors.ErrTableFull)

	// replacing an existing date still works at capacity
	_, err = suite.service.SetSnapshot(suite.ctx, domain.AssetCash, mustDate("2024-03-02"),
		map[string]decimal.Decimal{"Chase Checking": dec("200")})
	suite.Require().NoError(err)
}

func TestAssetServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssetServiceTestSuite))
}
