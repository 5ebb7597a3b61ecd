//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"lease-market/internal/domain/lease"
	"lease-market/internal/infra"
	"lease-market/internal/pkg/errs"
	"lease-market/internal/usecase"
	"lease-market/internal/usecase/commands"
	"lease-market/internal/usecase/shared"
	"lease-market/tests/common/builder"
	sharedmock "lease-market/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type txMocks struct {
	uow        *sharedmock.MockUnitOfWork
	tx         *sharedmock.MockTx
	resources  *sharedmock.MockResourceRepository
	requesters *sharedmock.MockRequesterRepository
	contracts  *sharedmock.MockContractRepository
}

func setupCommands(t *testing.T) (commands.LeaseCommands, txMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := txMocks{
		uow:        sharedmock.NewMockUnitOfWork(ctrl),
		tx:         sharedmock.NewMockTx(ctrl),
		resources:  sharedmock.NewMockResourceRepository(ctrl),
		requesters: sharedmock.NewMockRequesterRepository(ctrl),
		contracts:  sharedmock.NewMockContractRepository(ctrl),
	}

	m.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, m.tx)
		})
	m.tx.EXPECT().Resources().Return(m.resources).AnyTimes()
	m.tx.EXPECT().Requesters().Return(m.requesters).AnyTimes()
	m.tx.EXPECT().Contracts().Return(m.contracts).AnyTimes()

	base, err := lease.NewBasePriceCalculator(16)
	require.NoError(t, err)
	calc, err := lease.NewVIPPriceCalculator(base, 10)
	require.NoError(t, err)

	return commands.NewLeaseCommands(m.uow, calc), m
}

func TestCreateLease(t *testing.T) {
	ctx := context.Background()
	b := builder.NewLeaseBuilder().With(func(b *builder.LeaseBuilder) {
		b.PricePerHour = 20
		b.TimeFrom = "2017-01-01 01:30:00"
		b.TimeTill = "2017-01-02 02:01:00"
	})

	t.Run("stores the contract and returns its id", func(t *testing.T) {
		cmds, m := setupCommands(t)
		res, err := b.BuildResource()
		require.NoError(t, err)
		req, err := b.BuildRequester()
		require.NoError(t, err)
		storedID := uuid.New()

		gomock.InOrder(
			m.tx.EXPECT().LockResource(gomock.Any(), b.ResourceID).Return(nil),
			m.resources.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(res, nil),
		)
		m.requesters.EXPECT().FindByID(gomock.Any(), b.RequesterID).Return(req, nil)
		m.contracts.EXPECT().FindForResource(gomock.Any(), b.ResourceID, "2017-01-01", "2017-01-02").Return(nil, nil)
		m.contracts.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *lease.Contract) (uuid.UUID, error) {
				assert.Equal(t, float64(380), c.Price())
				assert.Len(t, c.Period().Hours(), 26)
				return storedID, nil
			})

		result, err := cmds.CreateLease(ctx, b.BuildCreateInput())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.Response.Succeeded())
		assert.Equal(t, storedID, result.ContractID)
	})

	t.Run("rejection is returned without storing anything", func(t *testing.T) {
		cmds, m := setupCommands(t)
		res, err := b.BuildResource()
		require.NoError(t, err)
		req, err := b.BuildRequester()
		require.NoError(t, err)
		existing, err := builder.NewLeaseBuilder().With(func(eb *builder.LeaseBuilder) {
			eb.RequesterID = 2
			eb.PricePerHour = 20
		}).BuildContract()
		require.NoError(t, err)

		m.tx.EXPECT().LockResource(gomock.Any(), b.ResourceID).Return(nil)
		m.resources.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(res, nil)
		m.requesters.EXPECT().FindByID(gomock.Any(), b.RequesterID).Return(req, nil)
		m.contracts.EXPECT().FindForResource(gomock.Any(), b.ResourceID, "2017-01-01", "2017-01-02").
			Return([]*lease.Contract{existing}, nil)
		m.contracts.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

		result, err := cmds.CreateLease(ctx, b.BuildCreateInput())

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.False(t, result.Response.Succeeded())
		assert.Equal(t, uuid.Nil, result.ContractID)
		require.Len(t, result.Response.Errors(), 1)
		assert.Contains(t, result.Response.Errors()[0], "is busy, occupied hours:")
	})

	t.Run("lock failure aborts the transaction", func(t *testing.T) {
		cmds, m := setupCommands(t)
		m.tx.EXPECT().LockResource(gomock.Any(), b.ResourceID).Return(errors.New("lock timeout"))

		result, err := cmds.CreateLease(ctx, b.BuildCreateInput())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrResourceLockFailed))
	})

	t.Run("collaborator failure aborts the transaction", func(t *testing.T) {
		cmds, m := setupCommands(t)
		m.tx.EXPECT().LockResource(gomock.Any(), b.ResourceID).Return(nil)
		m.resources.EXPECT().FindByID(gomock.Any(), b.ResourceID).
			Return(nil, infra.WrapRepoErr("failed to find resource by ID", errors.New("connection reset")))

		result, err := cmds.CreateLease(ctx, b.BuildCreateInput())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrLeaseProcessingFailed))
		assert.Equal(t, usecase.MsgProcessingFailed, err.Error())
	})

	t.Run("store failure aborts the transaction", func(t *testing.T) {
		cmds, m := setupCommands(t)
		res, err := b.BuildResource()
		require.NoError(t, err)
		req, err := b.BuildRequester()
		require.NoError(t, err)

		m.tx.EXPECT().LockResource(gomock.Any(), b.ResourceID).Return(nil)
		m.resources.EXPECT().FindByID(gomock.Any(), b.ResourceID).Return(res, nil)
		m.requesters.EXPECT().FindByID(gomock.Any(), b.RequesterID).Return(req, nil)
		m.contracts.EXPECT().FindForResource(gomock.Any(), b.ResourceID, "2017-01-01", "2017-01-02").Return(nil, nil)
		m.contracts.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(uuid.Nil, infra.WrapRepoErr("failed to create contract", errors.New("disk full")))

		result, err := cmds.CreateLease(ctx, b.BuildCreateInput())

		require.Error(t, err)
		assert.Nil(t, result)
		assert.True(t, errs.Is(err, commands.ErrDatabaseOperationFailed))
	})
}
