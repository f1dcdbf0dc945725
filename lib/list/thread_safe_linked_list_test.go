package list

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThreadSafeLinkedList_Operations(t *testing.T) {
	dlist := NewThreadSafeLinkedList()
	nodes := dlist.Append(10, 3, 2, 11, 4)

	require.NoError(t, dlist.SetHead(nodes[2]))
	requireValidList(t, dlist, 2, 10, 3, 11, 4)
	require.NoError(t, dlist.SetTail(nodes[0]))
	requireValidList(t, dlist, 2, 3, 11, 4, 10)
	require.NoError(t, dlist.InsertBefore(nodes[3], NewNode(100)))
	requireValidList(t, dlist, 2, 3, 100, 11, 4, 10)
	require.NoError(t, dlist.InsertAfter(dlist.Tail(), NewNode(200)))
	requireValidList(t, dlist, 2, 3, 100, 11, 4, 10, 200)
	require.NoError(t, dlist.InsertAtPosition(2, NewNode(100)))
	requireValidList(t, dlist, 2, 100, 3, 100, 11, 4, 10, 200)
	require.ErrorIs(t, dlist.InsertAtPosition(100, NewNode(1)), ErrNodeNotFound)
	require.Equal(t, 2, dlist.RemoveNodesWithValue(100))
	require.False(t, dlist.ContainsNodeWithValue(100))
	require.NoError(t, dlist.Remove(dlist.Head()))
	requireValidList(t, dlist, 3, 11, 4, 10, 200)

	err := dlist.ForEach(func(idx int64, n *Node) error {
		n.Value++
		return nil
	})
	require.NoError(t, err)
	requireValidList(t, dlist, 4, 12, 5, 11, 201)
}

func TestThreadSafeLinkedList_Concurrent(t *testing.T) {
	const (
		workers = 8
		rounds  = 200
	)
	dlist := NewThreadSafeLinkedList()
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				n := NewNode(float64(w))
				if i%2 == 0 {
					assert.NoError(t, dlist.SetHead(n))
				} else {
					assert.NoError(t, dlist.SetTail(n))
				}
				assert.True(t, dlist.ContainsNodeWithValue(float64(w)))
				if i%4 == 3 {
					assert.NoError(t, dlist.Remove(n))
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, dlist.Validate())
	require.Equal(t, int64(workers*rounds*3/4), dlist.Len())
	for w := 0; w < workers; w++ {
		require.Equal(t, rounds*3/4, dlist.RemoveNodesWithValue(float64(w)))
	}
	requireValidList(t, dlist)
}
