// Code generated by MockGen. DO NOT EDIT.
// Source: counter.go
//
// Generated by this command:
//
//	mockgen -source=counter.go -destination=../mocks/mock_counter_repository.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	domain "counter-lab/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockICounterRepository is a mock of ICounterRepository interface.
type MockICounterRepository struct {
	ctrl     *gomock.Controller
	recorder *MockICounterRepositoryMockRecorder
	isgomock struct{}
}

// MockICounterRepositoryMockRecorder is the mock recorder for MockICounterRepository.
type MockICounterRepositoryMockRecorder struct {
	mock *MockICounterRepository
}

// NewMockICounterRepository creates a new mock instance.
func NewMockICounterRepository(ctrl *gomock.Controller) *MockICounterRepository {
	mock := &MockICounterRepository{ctrl: ctrl}
	mock.recorder = &MockICounterRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockICounterRepository) EXPECT() *MockICounterRepositoryMockRecorder {
	return m.recorder
}

// CreateCounter mocks base method.
func (m *MockICounterRepository) CreateCounter(owner, name string, number int) (domain.Counter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "CreateCounter", owner, name, number)
	ret0, _ := ret[0].(domain.Counter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// CreateCounter indicates an expected call of CreateCounter.
func (mr *MockICounterRepositoryMockRecorder) CreateCounter(owner, name, number any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "CreateCounter", reflect.TypeOf((*MockICounterRepository)(nil).CreateCounter), owner, name, number)
}

// GetCounter mocks base method.
func (m *MockICounterRepository) GetCounter(id string) (domain.Counter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetCounter", id)
	ret0, _ := ret[0].(domain.Counter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetCounter indicates an expected call of GetCounter.
func (mr *MockICounterRepositoryMockRecorder) GetCounter(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetCounter", reflect.TypeOf((*MockICounterRepository)(nil).GetCounter), id)
}

// IncrementCounter mocks base method.
func (m *MockICounterRepository) IncrementCounter(id string) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementCounter", id)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IncrementCounter indicates an expected call of IncrementCounter.
func (mr *MockICounterRepositoryMockRecorder) IncrementCounter(id any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementCounter", reflect.TypeOf((*MockICounterRepository)(nil).IncrementCounter), id)
}

// ListCountersByOwner mocks base method.
func (m *MockICounterRepository) ListCountersByOwner(owner string) ([]domain.Counter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "ListCountersByOwner", owner)
	ret0, _ := ret[0].([]domain.Counter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// ListCountersByOwner indicates an expected call of ListCountersByOwner.
func (mr *MockICounterRepositoryMockRecorder) ListCountersByOwner(owner any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "ListCountersByOwner", reflect.TypeOf((*MockICounterRepository)(nil).ListCountersByOwner), owner)
}

// RenameCounter mocks base method.
func (m *MockICounterRepository) RenameCounter(id, name string) (domain.Counter, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "RenameCounter", id, name)
	ret0, _ := ret[0].(domain.Counter)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// RenameCounter indicates an expected call of RenameCounter.
func (mr *MockICounterRepositoryMockRecorder) RenameCounter(id, name any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RenameCounter", reflect.TypeOf((*MockICounterRepository)(nil).RenameCounter), id, name)
}
