// Package mocklist is a mock of Allocator interface instantiated for int values.
// Written in mockgen layout: mockgen cannot instantiate generic interfaces.
package mocklist

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	list "github.com/cryptonstudio/crypton-containers/types/list"
)

var _ list.Allocator[int] = (*MockAllocator)(nil)

// MockAllocator is a mock of Allocator[int] interface.
type MockAllocator struct {
	ctrl     *gomock.Controller
	recorder *MockAllocatorMockRecorder
}

// MockAllocatorMockRecorder is the mock recorder for MockAllocator.
type MockAllocatorMockRecorder struct {
	mock *MockAllocator
}

// NewMockAllocator creates a new mock instance.
func NewMockAllocator(ctrl *gomock.Controller) *MockAllocator {
	mock := &MockAllocator{ctrl: ctrl}
	mock.recorder = &MockAllocatorMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockAllocator) EXPECT() *MockAllocatorMockRecorder {
	return m.recorder
}

// Allocate mocks base method.
func (m *MockAllocator) Allocate() (*list.Node[int], error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Allocate")
	ret0, _ := ret[0].(*list.Node[int])
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Allocate indicates an expected call of Allocate.
func (mr *MockAllocatorMockRecorder) Allocate() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Allocate", reflect.TypeOf((*MockAllocator)(nil).Allocate))
}

// Deallocate mocks base method.
func (m *MockAllocator) Deallocate(node *list.Node[int]) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Deallocate", node)
}

// Deallocate indicates an expected call of Deallocate.
func (mr *MockAllocatorMockRecorder) Deallocate(node interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Deallocate", reflect.TypeOf((*MockAllocator)(nil).Deallocate), node)
}
