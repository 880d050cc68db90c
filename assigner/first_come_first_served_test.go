package assigner

import (
	"testing"

	"github.com/arloliu/grouper/types"
	"github.com/stretchr/testify/require"
)

func TestFirstComeFirstServed_Assign(t *testing.T) {
	t.Run("each subject joins its most preferred available group in turn", func(t *testing.T) {
		capacities := map[uint64]int{101: 2, 102: 1, 103: 3}
		groups := groupList(capacities, 101, 102, 103)
		subjects := []types.Subject{
			newRankedSubject(1, 101, 103),
			newRankedSubject(2, 101, 102),
			newRankedSubject(3, 101, 102),
			newRankedSubject(4, 102),
		}

		assignment, err := NewFirstComeFirstServed().Assign(subjects, groups)

		require.NoError(t, err)
		requireValidAssignment(t, assignment, subjects, groups)

		// The first two subjects fill their first choice; the third finds it
		// full and settles for its second choice; the fourth finds that full
		// in turn and lands in the remaining group.
		expected := map[uint64]uint64{1: 101, 2: 101, 3: 102, 4: 103}
		for subjectID, wantGroupID := range expected {
			groupID, ok := assignment.SubjectGroupID(subjectID)
			require.True(t, ok)
			require.Equal(t, wantGroupID, groupID, "subject %d", subjectID)
		}
	})

	t.Run("ties break by group input order", func(t *testing.T) {
		groups := []types.Group{
			testGroup{id: 102, capacity: 1},
			testGroup{id: 101, capacity: 1},
		}
		subjects := []types.Subject{indifferentSubject{id: 1, rating: 1}}

		assignment, err := NewFirstComeFirstServed().Assign(subjects, groups)

		require.NoError(t, err)
		groupID, ok := assignment.SubjectGroupID(1)
		require.True(t, ok)
		require.Equal(t, uint64(102), groupID)
	})

	t.Run("input order is the priority order", func(t *testing.T) {
		groups := []types.Group{
			testGroup{id: 101, capacity: 1},
			testGroup{id: 102, capacity: 1},
		}
		contested := []uint64{101, 102}

		// Both subjects want group 101; whoever comes first gets it.
		first, err := NewFirstComeFirstServed().Assign([]types.Subject{
			newRankedSubject(1, contested...),
			newRankedSubject(2, contested...),
		}, groups)
		require.NoError(t, err)

		groupID, ok := first.SubjectGroupID(1)
		require.True(t, ok)
		require.Equal(t, uint64(101), groupID)
		groupID, ok = first.SubjectGroupID(2)
		require.True(t, ok)
		require.Equal(t, uint64(102), groupID)
	})

	t.Run("skips zero capacity groups", func(t *testing.T) {
		groups := []types.Group{
			testGroup{id: 101, capacity: 0},
			testGroup{id: 102, capacity: 1},
		}
		subjects := []types.Subject{newRankedSubject(1, 101, 102)}

		assignment, err := NewFirstComeFirstServed().Assign(subjects, groups)

		require.NoError(t, err)
		groupID, ok := assignment.SubjectGroupID(1)
		require.True(t, ok)
		require.Equal(t, uint64(102), groupID)
	})
}
