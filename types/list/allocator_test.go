package list_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/cryptonstudio/crypton-containers/types/list"
	mocklist "github.com/cryptonstudio/crypton-containers/types/list/mocks"
)

var (
	errAllocate = errors.New("allocate failed")
	errClone    = errors.New("clone failed")
)

func newNode() (*list.Node[int], error) {
	return new(list.Node[int]), nil
}

func TestAllocatorFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("sentinels", func(t *testing.T) {
		alloc := mocklist.NewMockAllocator(ctrl)
		first, _ := newNode()
		gomock.InOrder(
			alloc.EXPECT().Allocate().Return(first, nil),
			alloc.EXPECT().Allocate().Return(nil, errAllocate),
			alloc.EXPECT().Deallocate(first),
		)

		l, err := list.New(list.WithAllocator[int](alloc))
		require.ErrorIs(t, err, errAllocate)
		require.Nil(t, l)
	})

	t.Run("insert", func(t *testing.T) {
		alloc := mocklist.NewMockAllocator(ctrl)
		alloc.EXPECT().Allocate().DoAndReturn(newNode).Times(3)

		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.PushBack(1))

		alloc.EXPECT().Allocate().Return(nil, errAllocate).Times(3)
		require.ErrorIs(t, l.PushBack(2), errAllocate)
		require.ErrorIs(t, l.PushFront(0), errAllocate)
		_, err = l.Insert(l.Begin(), 0)
		require.ErrorIs(t, err, errAllocate)
		checkValues(t, l, 1)
	})

	t.Run("clone", func(t *testing.T) {
		alloc := mocklist.NewMockAllocator(ctrl)
		alloc.EXPECT().Allocate().DoAndReturn(newNode).Times(3)

		clone := func(v int) (int, error) {
			if v < 0 {
				return 0, errClone
			}
			return v, nil
		}
		l, err := list.New(list.WithAllocator[int](alloc), list.WithCloner(clone))
		require.NoError(t, err)
		require.NoError(t, l.PushBack(1))

		node, _ := newNode()
		gomock.InOrder(
			alloc.EXPECT().Allocate().Return(node, nil),
			alloc.EXPECT().Deallocate(node),
		)
		require.ErrorIs(t, l.PushBack(-1), errClone)
		checkValues(t, l, 1)
	})

	t.Run("move", func(t *testing.T) {
		alloc := mocklist.NewMockAllocator(ctrl)
		alloc.EXPECT().Allocate().DoAndReturn(newNode).Times(4)

		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.AssignValues(1, 2))

		alloc.EXPECT().Allocate().Return(nil, errAllocate)
		moved, err := l.Move()
		require.ErrorIs(t, err, errAllocate)
		require.Nil(t, moved)
		checkValues(t, l, 1, 2)
	})

	t.Run("release", func(t *testing.T) {
		alloc := mocklist.NewMockAllocator(ctrl)
		alloc.EXPECT().Allocate().DoAndReturn(newNode).Times(5)

		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.AssignValues(1, 2, 3))

		alloc.EXPECT().Deallocate(gomock.Any()).Times(5)
		l.Release()
	})
}

func TestBoundedAllocator(t *testing.T) {
	t.Run("exhausted", func(t *testing.T) {
		alloc := list.NewBoundedAllocator[int](nil, 4)
		require.Equal(t, 4, alloc.Limit())

		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.AssignValues(1, 2))
		require.Equal(t, 4, alloc.Live())

		require.ErrorIs(t, l.PushBack(3), list.ErrorAllocatorExhausted)
		require.ErrorIs(t, l.Resize(5, 0), list.ErrorAllocatorExhausted)
		require.ErrorIs(t, l.ResizeUninitialized(5), list.ErrorAllocatorExhausted)
		checkValues(t, l, 1, 2)

		_, err = l.Clone()
		require.ErrorIs(t, err, list.ErrorAllocatorExhausted)
		require.Equal(t, 4, alloc.Live())

		_, err = l.Move()
		require.ErrorIs(t, err, list.ErrorAllocatorExhausted)
		checkValues(t, l, 1, 2)

		_, err = l.PopBack()
		require.NoError(t, err)
		require.NoError(t, l.PushBack(3))
		checkValues(t, l, 1, 3)
	})

	t.Run("clone rolls back", func(t *testing.T) {
		alloc := list.NewBoundedAllocator[int](nil, 7)
		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.AssignValues(1, 2))

		// sentinels and the first element fit, the second one does not
		_, err = l.Clone()
		require.ErrorIs(t, err, list.ErrorAllocatorExhausted)
		require.Equal(t, 4, alloc.Live())
	})

	t.Run("merge", func(t *testing.T) {
		alloc := list.NewBoundedAllocator[int](nil, 7)
		l, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		other, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, l.AssignValues(1, 3))
		require.NoError(t, other.AssignValues(2))
		require.Equal(t, 7, alloc.Live())

		// donor sentinels cannot be allocated
		require.ErrorIs(t, list.Merge(l, other), list.ErrorAllocatorExhausted)
		checkValues(t, l, 1, 3)
		checkValues(t, other, 2)

		l.Clear()
		require.NoError(t, list.Merge(l, other))
		checkValues(t, l, 2)
		checkEmpty(t, other)
		require.Equal(t, 5, alloc.Live())
	})

	t.Run("move from", func(t *testing.T) {
		alloc := list.NewBoundedAllocator[int](nil, 10)
		a, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		b, err := list.New(list.WithAllocator[int](alloc))
		require.NoError(t, err)
		require.NoError(t, a.AssignValues(1, 2, 3))
		require.NoError(t, b.AssignValues(4))

		a.MoveFrom(b)
		checkValues(t, a, 4)
		checkEmpty(t, b)
		require.Equal(t, 5, alloc.Live())

		a.Release()
		b.Release()
		require.Equal(t, 0, alloc.Live())
	})
}

func TestPoolAllocator(t *testing.T) {
	pool := list.NewPoolAllocator[string]()
	l, err := list.New(list.WithAllocator[string](pool))
	require.NoError(t, err)

	for range 3 {
		require.NoError(t, l.AssignValues("a", "b", "c"))
		checkValues(t, l, "a", "b", "c")
		l.Clear()
		checkEmpty(t, l)
	}

	// recycled nodes do not leak old values
	require.NoError(t, l.ResizeDefault(2))
	checkValues(t, l, "", "")
	require.Equal(t, "", l.REnd().Value())
	l.Release()
}
