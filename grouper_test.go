package grouper_test

import (
	"testing"

	"github.com/arloliu/grouper"
	"github.com/arloliu/grouper/assigner"
	"github.com/stretchr/testify/require"
)

func TestMapSubject(t *testing.T) {
	subject := grouper.NewMapSubject(1, map[uint64]int{101: 0, 102: 1}, 5)

	require.Equal(t, uint64(1), subject.ID())
	require.Equal(t, 0, subject.Dissatisfaction(101))
	require.Equal(t, 1, subject.Dissatisfaction(102))

	t.Run("unranked groups get the fallback rating", func(t *testing.T) {
		require.Equal(t, 5, subject.Dissatisfaction(999))
	})
}

func TestSimpleGroup(t *testing.T) {
	group := grouper.NewSimpleGroup(101, 2)

	require.Equal(t, uint64(101), group.ID())
	require.Equal(t, 2, group.Capacity())
}

// Students enrolling into two language classes, using the built-in subject
// and group types end to end.
func TestEnrollment(t *testing.T) {
	const (
		earlyClass     = uint64(101)
		afternoonClass = uint64(102)
	)

	preferEarly := map[uint64]int{earlyClass: 0, afternoonClass: 1}
	preferLate := map[uint64]int{earlyClass: 1, afternoonClass: 0}

	subjects := []grouper.Subject{
		grouper.NewMapSubject(1, preferEarly, 2),
		grouper.NewMapSubject(2, preferLate, 2),
		grouper.NewMapSubject(3, preferEarly, 2),
		grouper.NewMapSubject(4, preferEarly, 2),
	}
	groups := []grouper.Group{
		grouper.NewSimpleGroup(earlyClass, 2),
		grouper.NewSimpleGroup(afternoonClass, 2),
	}

	for name, a := range map[string]assigner.Assigner{
		"first_come_first_served": assigner.NewFirstComeFirstServed(),
		"propose_and_reject":      assigner.NewProposeAndReject(),
	} {
		t.Run(name, func(t *testing.T) {
			result, err := a.Assign(subjects, groups)
			require.NoError(t, err)

			// The first student gets the early class.
			groupID, ok := result.SubjectGroupID(1)
			require.True(t, ok)
			require.Equal(t, earlyClass, groupID)

			// The afternoon class takes the student preferring it plus one
			// overflow student.
			memberIDs, ok := result.GroupSubjectIDs(afternoonClass)
			require.True(t, ok)
			require.Len(t, memberIDs, 2)
			require.Contains(t, memberIDs, uint64(2))
		})
	}
}
