package service

import (
	"testing"

	"nucleav-frontend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type StoreTestSuite struct {
	suite.Suite
	store *Store[models.ProjectMaterial]
}

func (suite *StoreTestSuite) SetupTest() {
	suite.store = NewStore[models.ProjectMaterial](7)
}

func pm(id, materialID int64, qty int) models.ProjectMaterial {
	return models.ProjectMaterial{
		ID:               id,
		ProjectID:        7,
		MaterialID:       materialID,
		QuantityAssigned: qty,
		Material:         &models.Material{ID: materialID, Name: "m", Quantity: 10},
	}
}

func (suite *StoreTestSuite) TestReplaceAndReads() {
	unresolved := models.ProjectMaterial{ID: 3, ProjectID: 7, MaterialID: 30}.MarkUnresolved()
	suite.True(suite.store.replace([]models.ProjectMaterial{pm(1, 10, 1), pm(2, 20, 2), unresolved}, 0))

	suite.Equal(int64(7), suite.store.ParentID())
	suite.Equal(3, suite.store.Len())
	suite.Len(suite.store.Renderable(), 2)
	suite.Equal(map[int64]struct{}{10: {}, 20: {}, 30: {}}, suite.store.EntityIDs())
	suite.True(suite.store.ContainsEntity(20))
	suite.False(suite.store.ContainsEntity(99))

	rec, ok := suite.store.Find(2)
	suite.True(ok)
	suite.Equal(2, rec.QuantityAssigned)
	_, ok = suite.store.Find(99)
	suite.False(ok)
}

func (suite *StoreTestSuite) TestSnapshotIsACopy() {
	suite.store.add(pm(1, 10, 1))

	snap := suite.store.Snapshot()
	snap[0].QuantityAssigned = 99

	rec, _ := suite.store.Find(1)
	suite.Equal(1, rec.QuantityAssigned)
}

func (suite *StoreTestSuite) TestAddReplacesSameAssociationID() {
	suite.store.add(pm(1, 10, 1))
	suite.store.add(pm(1, 10, 4))

	suite.Equal(1, suite.store.Len())
	rec, _ := suite.store.Find(1)
	suite.Equal(4, rec.QuantityAssigned)
}

func (suite *StoreTestSuite) TestRemove() {
	suite.store.replace([]models.ProjectMaterial{pm(1, 10, 1), pm(2, 20, 1), pm(3, 30, 1)}, 0)

	suite.True(suite.store.remove(2))
	suite.False(suite.store.remove(2))

	snap := suite.store.Snapshot()
	require.Len(suite.T(), snap, 2)
	suite.Equal(int64(1), snap[0].ID)
	suite.Equal(int64(3), snap[1].ID)
}

func (suite *StoreTestSuite) TestSubscribersReceiveSnapshots() {
	var got [][]models.ProjectMaterial
	unsubscribe := suite.store.Subscribe(func(records []models.ProjectMaterial) {
		got = append(got, records)
	})

	suite.store.add(pm(1, 10, 1))
	suite.store.add(pm(2, 20, 1))
	suite.store.remove(1)
	unsubscribe()
	suite.store.remove(2)

	require.Len(suite.T(), got, 3)
	suite.Len(got[0], 1)
	suite.Len(got[1], 2)
	suite.Len(got[2], 1)
	suite.Equal(int64(2), got[2][0].ID)
}

func (suite *StoreTestSuite) TestSubscriberPanicIsRecovered() {
	called := false
	suite.store.Subscribe(func([]models.ProjectMaterial) { panic("boom") })
	suite.store.Subscribe(func([]models.ProjectMaterial) { called = true })

	suite.NotPanics(func() { suite.store.add(pm(1, 10, 1)) })
	suite.True(called)
	suite.Equal(1, suite.store.Len())
}

func (suite *StoreTestSuite) TestClosedStoreRejectsWrites() {
	suite.store.add(pm(1, 10, 1))
	notified := 0
	suite.store.Subscribe(func([]models.ProjectMaterial) { notified++ })

	suite.store.close()

	suite.True(suite.store.Closed())
	suite.False(suite.store.add(pm(2, 20, 1)))
	suite.False(suite.store.remove(1))
	suite.False(suite.store.replace(nil, 0))
	suite.Equal(1, suite.store.Len())
	suite.Zero(notified)
}

// A reload whose list predates confirmed writes keeps those writes.
func (suite *StoreTestSuite) TestReplaceKeepsWritesConfirmedDuringLoad() {
	suite.store.replace([]models.ProjectMaterial{pm(1, 10, 1), pm(2, 20, 1)}, 0)

	since := suite.store.beginLoad()
	suite.True(suite.store.add(pm(3, 30, 2)))
	suite.True(suite.store.remove(1))
	suite.False(suite.store.remove(4), "unknown ids are remembered but change nothing")

	// The list was read before the writes above and still holds 1 and 4, not 3.
	suite.True(suite.store.replace([]models.ProjectMaterial{pm(1, 10, 1), pm(2, 20, 1), pm(4, 40, 1)}, since))
	suite.store.endLoad()

	snap := suite.store.Snapshot()
	require.Len(suite.T(), snap, 2)
	suite.Equal(int64(2), snap[0].ID)
	suite.Equal(int64(3), snap[1].ID)
	suite.Equal(2, snap[1].QuantityAssigned)
}

func (suite *StoreTestSuite) TestJournalIsDroppedAfterLastLoad() {
	first := suite.store.beginLoad()
	second := suite.store.beginLoad()
	suite.store.add(pm(1, 10, 1))

	suite.store.replace(nil, second)
	suite.store.endLoad()
	suite.Equal(1, suite.store.Len())

	suite.store.replace(nil, first)
	suite.store.endLoad()
	suite.Equal(1, suite.store.Len(), "every reload in flight sees the write")

	// With no reload in flight nothing is journaled, so a fresh list is authoritative.
	suite.store.add(pm(2, 20, 1))
	suite.store.replace([]models.ProjectMaterial{pm(2, 20, 1)}, suite.store.beginLoad())
	suite.store.endLoad()
	suite.Equal([]int64{2}, associationIDs(suite.store.Snapshot()))
}

func (suite *StoreTestSuite) TestPublishDropsOlderSnapshots() {
	var got [][]models.ProjectMaterial
	suite.store.Subscribe(func(records []models.ProjectMaterial) {
		got = append(got, records)
	})

	suite.store.publish(2, suite.store.subscribersLocked(), []models.ProjectMaterial{pm(1, 10, 1), pm(2, 20, 1)})
	suite.store.publish(1, suite.store.subscribersLocked(), []models.ProjectMaterial{pm(1, 10, 1)})

	require.Len(suite.T(), got, 1)
	suite.Len(got[0], 2)
}

func associationIDs(records []models.ProjectMaterial) []int64 {
	out := make([]int64, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestStoreTestSuite(t *testing.T) {
	suite.Run(t, new(StoreTestSuite))
}

func TestStore_UserVariant(t *testing.T) {
	s := NewStore[models.ProjectUser](3)
	assert.True(t, s.add(models.ProjectUser{ID: 5, ProjectID: 3, UserID: 9}))
	assert.Empty(t, s.Renderable(), "a record without its user is not renderable")
	assert.True(t, s.ContainsEntity(9))
}
