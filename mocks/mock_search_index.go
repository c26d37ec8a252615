// Code generated by MockGen. DO NOT EDIT.
// Source: search.go
//
// Generated by this command:
//
//	mockgen -source=search.go -destination=../mocks/mock_search_index.go -package=mocks
//

// Package mocks is a generated GoMock package.
package mocks

import (
	context "context"
	domain "counter-lab/domain"
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"
)

// MockISearchIndex is a mock of ISearchIndex interface.
type MockISearchIndex struct {
	ctrl     *gomock.Controller
	recorder *MockISearchIndexMockRecorder
	isgomock struct{}
}

// MockISearchIndexMockRecorder is the mock recorder for MockISearchIndex.
type MockISearchIndexMockRecorder struct {
	mock *MockISearchIndex
}

// NewMockISearchIndex creates a new mock instance.
func NewMockISearchIndex(ctrl *gomock.Controller) *MockISearchIndex {
	mock := &MockISearchIndex{ctrl: ctrl}
	mock.recorder = &MockISearchIndexMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockISearchIndex) EXPECT() *MockISearchIndexMockRecorder {
	return m.recorder
}

// Close mocks base method.
func (m *MockISearchIndex) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockISearchIndexMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockISearchIndex)(nil).Close))
}

// IndexCounter mocks base method.
func (m *MockISearchIndex) IndexCounter(c domain.Counter) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IndexCounter", c)
	ret0, _ := ret[0].(error)
	return ret0
}

// IndexCounter indicates an expected call of IndexCounter.
func (mr *MockISearchIndexMockRecorder) IndexCounter(c any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IndexCounter", reflect.TypeOf((*MockISearchIndex)(nil).IndexCounter), c)
}

// Search mocks base method.
func (m *MockISearchIndex) Search(ctx context.Context, owner, query string) ([]string, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Search", ctx, owner, query)
	ret0, _ := ret[0].([]string)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Search indicates an expected call of Search.
func (mr *MockISearchIndexMockRecorder) Search(ctx, owner, query any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Search", reflect.TypeOf((*MockISearchIndex)(nil).Search), ctx, owner, query)
}
