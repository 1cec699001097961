package hierarchy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outage_notifier/internal/domain"
	"outage_notifier/testdata/utils"
)

// testForest builds:
//
//	1 (region Lori)
//	└── 2 (locality Vanadzor)
//	    ├── 3 (district)
//	    │   ├── 4 (street)
//	    │   └── 5 (street)
//	    └── 6 (street)
//	7 (region, empty)
func testForest(t *testing.T) *Forest {
	t.Helper()
	f, err := FromNodes([]domain.PlaceNode{
		{ID: 4, ParentID: utils.Ptr(int64(3)), Kind: domain.KindStreet},
		{ID: 1, Kind: domain.KindRegion, NameEn: "Lori"},
		{ID: 2, ParentID: utils.Ptr(int64(1)), Kind: domain.KindLocality, NameEn: "Vanadzor"},
		{ID: 3, ParentID: utils.Ptr(int64(2)), Kind: domain.KindDistrict},
		{ID: 5, ParentID: utils.Ptr(int64(3)), Kind: domain.KindStreet},
		{ID: 6, ParentID: utils.Ptr(int64(2)), Kind: domain.KindStreet},
		{ID: 7, Kind: domain.KindRegion},
	})
	require.NoError(t, err)
	return f
}

func TestFromNodes_OrderIndependent(t *testing.T) {
	f := testForest(t)
	assert.Equal(t, 7, f.Len())

	n, ok := f.Node(2)
	assert.True(t, ok)
	assert.Equal(t, "Vanadzor", n.NameEn)
}

func TestFromNodes_RejectsDuplicateID(t *testing.T) {
	_, err := FromNodes([]domain.PlaceNode{
		{ID: 1, Kind: domain.KindStreet},
		{ID: 1, Kind: domain.KindStreet},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateNode)
}

func TestInsert_RejectsSelfParent(t *testing.T) {
	f := New()
	err := f.Insert(domain.PlaceNode{ID: 1, ParentID: utils.Ptr(int64(1)), Kind: domain.KindStreet})
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestDescendants_FullClosure(t *testing.T) {
	f := testForest(t)

	ids, err := f.Descendants(1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{1, 2, 3, 4, 5, 6}, ids)
}

func TestDescendants_StreetIsItsOwnClosure(t *testing.T) {
	f := testForest(t)

	ids, err := f.Descendants(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids)
}

func TestDescendants_UnknownTarget(t *testing.T) {
	f := testForest(t)

	_, err := f.Descendants(99)
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}

func TestDescendants_CycleAborts(t *testing.T) {
	// Two nodes pointing at each other: corrupt parent data that Insert
	// cannot catch on its own.
	f, err := FromNodes([]domain.PlaceNode{
		{ID: 1, ParentID: utils.Ptr(int64(2)), Kind: domain.KindDistrict},
		{ID: 2, ParentID: utils.Ptr(int64(1)), Kind: domain.KindDistrict},
	})
	require.NoError(t, err)

	_, err = f.Descendants(1)
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestAffectedSet_UnionOverTargets(t *testing.T) {
	f := testForest(t)

	set, errs := f.AffectedSet([]int64{3, 6})
	assert.Empty(t, errs)

	var ids []int64
	for id := range set {
		ids = append(ids, id)
	}
	assert.ElementsMatch(t, []int64{3, 4, 5, 6}, ids)
}

func TestAffectedSet_BadTargetDoesNotPoisonRest(t *testing.T) {
	f := testForest(t)

	set, errs := f.AffectedSet([]int64{99, 6})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], domain.ErrUnknownNode)

	_, ok := set[6]
	assert.True(t, ok, "clean subtree must survive a bad sibling target")
	assert.Len(t, set, 1)
}

func TestAncestors_ChainToRoot(t *testing.T) {
	f := testForest(t)

	chain, err := f.Ancestors(4)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 2, 1}, chain)
}

func TestAncestors_RootHasNone(t *testing.T) {
	f := testForest(t)

	chain, err := f.Ancestors(1)
	require.NoError(t, err)
	assert.Empty(t, chain)
}

func TestAncestors_DanglingParentEndsChain(t *testing.T) {
	f := New()
	require.NoError(t, f.Insert(domain.PlaceNode{ID: 5, ParentID: utils.Ptr(int64(42)), Kind: domain.KindStreet}))

	chain, err := f.Ancestors(5)
	require.NoError(t, err)
	assert.Equal(t, []int64{42}, chain)
}

func TestRemove_CascadesSubtree(t *testing.T) {
	f := testForest(t)

	removed, err := f.Remove(3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 4, 5}, removed, "removed ids come back sorted")
	assert.Equal(t, 4, f.Len())

	_, ok := f.Node(4)
	assert.False(t, ok)

	// The surviving parent no longer lists the removed child.
	ids, err := f.Descendants(2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{2, 6}, ids)
}

func TestRemove_UnknownTarget(t *testing.T) {
	f := testForest(t)

	_, err := f.Remove(99)
	assert.ErrorIs(t, err, domain.ErrUnknownNode)
}
