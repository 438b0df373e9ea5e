package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ArowuTest/engage-crm/internal/apperrors"
	"github.com/ArowuTest/engage-crm/internal/models"
)

func TestCreateSegmentAssignsRuleIDs(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	rules := []models.Rule{
		{Field: models.FieldTotalSpend, Operator: models.OperatorGT, Value: 100},
		{ID: "keep-me", Field: models.FieldTotalVisits, Operator: models.OperatorLT, Value: 3},
	}
	seg, err := f.segmentSvc.CreateSegment(ctx, " High spenders ", rules, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "High spenders", seg.Name)
	assert.Equal(t, "user-1", seg.CreatedBy)
	require.Len(t, seg.Rules, 2)
	assert.NotEmpty(t, seg.Rules[0].ID)
	assert.Equal(t, "keep-me", seg.Rules[1].ID)
	assert.Empty(t, rules[0].ID, "caller slice must not be modified")

	stored, err := f.segmentSvc.GetSegment(ctx, seg.ID)
	require.NoError(t, err)
	assert.Equal(t, seg.Rules, stored.Rules)

	_, err = f.segmentSvc.CreateSegment(ctx, "", rules, "user-1")
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestCreateSegmentAcceptsUnknownFields(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.addCustomer(t, "ann", 1000, 10, 10)

	seg, err := f.segmentSvc.CreateSegment(ctx, "odd", []models.Rule{{Field: "age", Operator: models.OperatorGT, Value: 1}}, "")
	require.NoError(t, err)

	members, err := f.segmentSvc.SegmentMembers(ctx, seg.ID)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestPreviewSegment(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	a := f.addCustomer(t, "a", 200, 1, 1)
	f.addCustomer(t, "b", 50, 5, 1)
	c := f.addCustomer(t, "c", 150, 2, 2)

	rules := []models.Rule{
		{Field: models.FieldTotalSpend, Operator: models.OperatorGT, Value: 100},
		{Field: models.FieldTotalVisits, Operator: models.OperatorLT, Value: 3},
	}
	got, err := f.segmentSvc.PreviewSegment(ctx, rules)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, c.ID, got[1].ID)

	all, err := f.segmentSvc.PreviewSegment(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	segments, err := f.segmentSvc.ListSegments(ctx)
	require.NoError(t, err)
	assert.Empty(t, segments, "preview must not persist anything")
}

func TestSegmentMembersReflectCurrentData(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	c := f.addCustomer(t, "ann", 90, 0, 0)

	seg, err := f.segmentSvc.CreateSegment(ctx, "big", []models.Rule{{Field: models.FieldTotalSpend, Operator: models.OperatorGTE, Value: 100}}, "")
	require.NoError(t, err)

	members, err := f.segmentSvc.SegmentMembers(ctx, seg.ID)
	require.NoError(t, err)
	assert.Empty(t, members)

	_, err = f.customerSvc.AddOrder(ctx, &models.Order{CustomerID: c.ID, Amount: 10})
	require.NoError(t, err)

	members, err = f.segmentSvc.SegmentMembers(ctx, seg.ID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, c.ID, members[0].ID)

	_, err = f.segmentSvc.SegmentMembers(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
