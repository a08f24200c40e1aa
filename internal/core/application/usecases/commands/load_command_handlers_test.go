package commands_test

import (
	"errors"
	"testing"

	"loadbooking/internal/core/application/usecases/commands"
	"loadbooking/internal/core/domain/model/kernel"
	"loadbooking/internal/core/domain/model/load"
	"loadbooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateLoadCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(loadID, validLoadSpec())
	require.NoError(t, err)

	uow, factory := newMockLoadUoW()

	var added *load.Load
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.loads.On("Add", ctx, mock.AnythingOfType("*load.Load")).
			Run(func(args mock.Arguments) { added = args.Get(1).(*load.Load) }).
			Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, added)
	assert.True(t, added.ID().IsEqual(loadID))
	assert.Equal(t, load.Posted, added.Status())
	assert.False(t, added.PostedAt().IsZero())
	assert.Len(t, added.DomainEvents(), 1)
	uow.AssertExpectations(t)
	uow.loads.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateLoadCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockLoadUoWFactory)
	handler := commands.NewCreateLoadCommandHandler(factory)

	err := handler.Handle(t.Context(), commands.CreateLoadCommand{})

	require.ErrorIs(t, err, commands.ErrCreateLoadCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateLoadCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), validLoadSpec())
	require.NoError(t, err)

	uow, factory := newMockLoadUoW()
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	handler := commands.NewCreateLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
	uow.loads.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateLoadCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), validLoadSpec())
	require.NoError(t, err)

	uow, factory := newMockLoadUoW()
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.loads.On("Add", ctx, mock.Anything).Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	handler := commands.NewCreateLoadCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.EqualError(t, err, "insert failed")
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestUpdateLoadCommandHandler_Handle(t *testing.T) {
	t.Run("replaces details of a posted load", func(t *testing.T) {
		ctx := t.Context()
		existing := restoreLoad(load.Posted)
		spec := validLoadSpec()
		spec.Weight = 2500
		spec.TruckCount = 4
		cmd, err := commands.NewUpdateLoadCommand(existing.ID(), spec)
		require.NoError(t, err)

		uow, factory := newMockLoadUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loads.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
			uow.loads.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewUpdateLoadCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.InDelta(t, 2500, existing.Details().Weight(), 0.0001)
		assert.Equal(t, 4, existing.Details().TruckCount())
		assert.Equal(t, load.Posted, existing.Status())
		uow.AssertExpectations(t)
		uow.loads.AssertExpectations(t)
	})

	t.Run("cancelled load is refused", func(t *testing.T) {
		ctx := t.Context()
		existing := restoreLoad(load.Cancelled)
		cmd, err := commands.NewUpdateLoadCommand(existing.ID(), validLoadSpec())
		require.NoError(t, err)

		uow, factory := newMockLoadUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loads.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewUpdateLoadCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		uow.loads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown load", func(t *testing.T) {
		ctx := t.Context()
		loadID := kernel.NewUUID()
		cmd, err := commands.NewUpdateLoadCommand(loadID, validLoadSpec())
		require.NoError(t, err)

		uow, factory := newMockLoadUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loads.On("GetForUpdate", ctx, loadID).
				Return(nil, errs.NewObjectNotFoundError("load", loadID.String())).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewUpdateLoadCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestCancelLoadCommandHandler_Handle(t *testing.T) {
	for _, status := range []load.Status{load.Posted, load.Booked, load.Cancelled} {
		t.Run("from "+status.String(), func(t *testing.T) {
			ctx := t.Context()
			existing := restoreLoad(status)
			cmd, err := commands.NewCancelLoadCommand(existing.ID())
			require.NoError(t, err)

			uow, factory := newMockLoadUoW()
			mock.InOrder(
				uow.On("Begin", ctx).Return(nil).Once(),
				uow.loads.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
				uow.loads.On("Update", ctx, existing).Return(nil).Once(),
				uow.On("Commit", ctx).Return(nil).Once(),
				uow.On("Rollback", ctx).Return(nil).Once(),
			)

			handler := commands.NewCancelLoadCommandHandler(factory)
			require.NoError(t, handler.Handle(ctx, cmd))

			assert.Equal(t, load.Cancelled, existing.Status())
			uow.AssertExpectations(t)
		})
	}
}

func TestChangeLoadStatusCommandHandler_Handle(t *testing.T) {
	t.Run("allowed transition", func(t *testing.T) {
		ctx := t.Context()
		existing := restoreLoad(load.Booked)
		cmd, err := commands.NewChangeLoadStatusCommand(existing.ID(), load.Posted)
		require.NoError(t, err)

		uow, factory := newMockLoadUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loads.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
			uow.loads.On("Update", ctx, existing).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewChangeLoadStatusCommandHandler(factory)
		require.NoError(t, handler.Handle(ctx, cmd))

		assert.Equal(t, load.Posted, existing.Status())
		uow.AssertExpectations(t)
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		ctx := t.Context()
		existing := restoreLoad(load.Cancelled)
		cmd, err := commands.NewChangeLoadStatusCommand(existing.ID(), load.Posted)
		require.NoError(t, err)

		uow, factory := newMockLoadUoW()
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.loads.On("GetForUpdate", ctx, existing.ID()).Return(existing, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		handler := commands.NewChangeLoadStatusCommandHandler(factory)
		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrBusinessRuleViolated)
		assert.EqualError(t, err, "business rule violated: invalid status transition from CANCELLED to POSTED")
		assert.Equal(t, load.Cancelled, existing.Status())
	})
}
