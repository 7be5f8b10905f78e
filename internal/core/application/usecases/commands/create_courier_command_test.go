package commands_test

import (
	"testing"

	"github.com/kurtadodoli/sevenfour-sub008/internal/core/application/usecases/commands"
	"github.com/kurtadodoli/sevenfour-sub008/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCourierCommand_Success(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewCreateCourierCommand(id, "Miko Santos", "+63-917-555-0102")
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, "Miko Santos", cmd.Name())
	require.Equal(t, "+63-917-555-0102", cmd.Phone())
}

func TestNewCreateCourierCommand_MissingFields(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewCreateCourierCommand(id, "", "+63-917-555-0102")
	require.ErrorIs(t, err, commands.ErrCourierNameIsRequired)

	_, err = commands.NewCreateCourierCommand(id, "Miko Santos", "")
	require.ErrorIs(t, err, commands.ErrCourierPhoneIsRequired)
}

func TestCreateCourierCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateCourierCommand(kernel.NewUUID(), "Miko Santos", "+63-917-555-0102")
	require.NoError(t, err)

	uow := NewMockUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.Couriers.On("Add", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCourierUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateCourierCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	uow.AssertExpectations(t)
}
