package service_test

import (
	"context"

	"committee-tracker-backend/internal/mocks"
	"committee-tracker-backend/internal/repository"

	"go.uber.org/mock/gomock"
)

// storeMocks wires a MockStoreInterface whose transactions run fn against
// the same mocked repositories
type storeMocks struct {
	store        *mocks.MockStoreInterface
	divisions    *mocks.MockSenateDivisionRepositoryInterface
	faculty      *mocks.MockFacultyRepositoryInterface
	committees   *mocks.MockCommitteeRepositoryInterface
	requirements *mocks.MockSlotRequirementRepositoryInterface
	assignments  *mocks.MockAssignmentRepositoryInterface
}

func newStoreMocks(ctrl *gomock.Controller) *storeMocks {
	m := &storeMocks{
		store:        mocks.NewMockStoreInterface(ctrl),
		divisions:    mocks.NewMockSenateDivisionRepositoryInterface(ctrl),
		faculty:      mocks.NewMockFacultyRepositoryInterface(ctrl),
		committees:   mocks.NewMockCommitteeRepositoryInterface(ctrl),
		requirements: mocks.NewMockSlotRequirementRepositoryInterface(ctrl),
		assignments:  mocks.NewMockAssignmentRepositoryInterface(ctrl),
	}

	m.store.EXPECT().SenateDivisions().Return(m.divisions).AnyTimes()
	m.store.EXPECT().Faculty().Return(m.faculty).AnyTimes()
	m.store.EXPECT().Committees().Return(m.committees).AnyTimes()
	m.store.EXPECT().SlotRequirements().Return(m.requirements).AnyTimes()
	m.store.EXPECT().Assignments().Return(m.assignments).AnyTimes()
	m.store.EXPECT().
		InSerializableTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(tx repository.StoreInterface) error) error {
			return fn(m.store)
		}).
		AnyTimes()

	return m
}
