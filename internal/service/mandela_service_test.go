package service

import (
	"context"
	"testing"

	"ocean/internal/model"
	"ocean/internal/rpc"
	"ocean/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr(v uint64) *uint64 { return &v }

func seedViewEnv(t *testing.T) (*gorm.DB, *MandelaService, uint64, uint64) {
	t.Helper()
	db := testutil.OpenDB(t)
	groupID := testutil.CreateGroup(t, db, "user")
	u1 := testutil.CreateUser(t, db, "alice", groupID)
	u2 := testutil.CreateUser(t, db, "bob", groupID)
	return db, NewMandelaService(db), u1, u2
}

func TestGetAllMergesCommentCounts(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	ctx := context.Background()

	entry := testutil.CreateMandela(t, db, u1, "dolly")
	testutil.CreateComment(t, db, entry, u1, "first")
	testutil.CreateComment(t, db, entry, u1, "second")

	listing, err := svc.GetAll(ctx, 0, 10, nil, FilterAll)
	require.NoError(t, err)

	require.Len(t, listing.Mandels, 1)
	row := listing.Mandels[0]
	assert.Equal(t, entry, row.ID)
	assert.Equal(t, int64(2), row.CommentCount)
	assert.Nil(t, row.MarkTS)
	assert.Equal(t, int64(1), listing.TotalCount)
	assert.Zero(t, listing.NewCount)
	assert.Zero(t, listing.MineCount)

	// Idempotent with no intervening writes.
	again, err := svc.GetAll(ctx, 0, 10, nil, FilterAll)
	require.NoError(t, err)
	assert.Equal(t, int64(2), again.Mandels[0].CommentCount)
}

func TestGetAllFilters(t *testing.T) {
	db, svc, u1, u2 := seedViewEnv(t)
	ctx := context.Background()

	m1 := testutil.CreateMandela(t, db, u1, "one")
	m2 := testutil.CreateMandela(t, db, u1, "two")
	m3 := testutil.CreateMandela(t, db, u2, "three")

	require.NoError(t, svc.Mark(ctx, m1, u2))

	all, err := svc.GetAll(ctx, 0, 10, ptr(u2), FilterAll)
	require.NoError(t, err)
	require.Len(t, all.Mandels, 3)
	assert.Equal(t, []uint64{m3, m2, m1}, []uint64{all.Mandels[0].ID, all.Mandels[1].ID, all.Mandels[2].ID})
	assert.NotNil(t, all.Mandels[2].MarkTS)
	assert.Nil(t, all.Mandels[0].MarkTS)
	assert.Equal(t, int64(3), all.TotalCount)
	assert.Equal(t, int64(2), all.NewCount)
	assert.Equal(t, int64(1), all.MineCount)

	unseen, err := svc.GetAll(ctx, 0, 10, ptr(u2), FilterUnseen)
	require.NoError(t, err)
	require.Len(t, unseen.Mandels, 2)
	for _, row := range unseen.Mandels {
		assert.NotEqual(t, m1, row.ID)
		assert.Nil(t, row.MarkTS)
	}

	mine, err := svc.GetAll(ctx, 0, 10, ptr(u2), FilterMine)
	require.NoError(t, err)
	require.Len(t, mine.Mandels, 1)
	assert.Equal(t, m3, mine.Mandels[0].ID)
	assert.Equal(t, u2, mine.Mandels[0].UserID)
}

func TestGetAllUserNameMergedIn(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	testutil.CreateMandela(t, db, u1, "named")

	listing, err := svc.GetAll(context.Background(), 0, 10, nil, FilterAll)
	require.NoError(t, err)
	require.Len(t, listing.Mandels, 1)
	require.NotNil(t, listing.Mandels[0].UserName)
	assert.Equal(t, "alice", *listing.Mandels[0].UserName)
}

func TestGetAllPagination(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	ctx := context.Background()

	var ids []uint64
	for _, title := range []string{"a", "b", "c", "d", "e"} {
		ids = append(ids, testutil.CreateMandela(t, db, u1, title))
	}

	page, err := svc.GetAll(ctx, 0, 2, nil, FilterAll)
	require.NoError(t, err)
	require.Len(t, page.Mandels, 2)
	assert.Equal(t, ids[4], page.Mandels[0].ID)
	assert.Equal(t, ids[3], page.Mandels[1].ID)
	assert.Equal(t, int64(5), page.TotalCount)

	page, err = svc.GetAll(ctx, 2, 2, nil, FilterAll)
	require.NoError(t, err)
	require.Len(t, page.Mandels, 2)
	assert.Equal(t, ids[2], page.Mandels[0].ID)
	assert.Equal(t, ids[1], page.Mandels[1].ID)
}

func TestGetAllRejectsUnknownFilter(t *testing.T) {
	_, svc, _, u2 := seedViewEnv(t)

	_, err := svc.GetAll(context.Background(), 0, 10, ptr(u2), Filter("starred"))
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, rpc.CodeBadParams, rpcErr.Code)
}

func TestGetAllMineRequiresViewer(t *testing.T) {
	_, svc, _, _ := seedViewEnv(t)

	_, err := svc.GetAll(context.Background(), 0, 10, nil, FilterMine)
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, rpc.CodeBadParams, rpcErr.Code)
}

func TestGetOneMarkVisibility(t *testing.T) {
	db, svc, u1, u2 := seedViewEnv(t)
	ctx := context.Background()

	entry := testutil.CreateMandela(t, db, u1, "marked")
	require.NoError(t, svc.Mark(ctx, entry, u2))

	detail, err := svc.GetOne(ctx, entry, ptr(u2))
	require.NoError(t, err)
	assert.NotNil(t, detail.MarkTS)

	detail, err = svc.GetOne(ctx, entry, ptr(u1))
	require.NoError(t, err)
	assert.Nil(t, detail.MarkTS)

	detail, err = svc.GetOne(ctx, entry, nil)
	require.NoError(t, err)
	assert.Nil(t, detail.MarkTS)
}

func TestGetOneVoteTallyOnlyForVoters(t *testing.T) {
	db, svc, u1, u2 := seedViewEnv(t)
	ctx := context.Background()

	entry := testutil.CreateMandela(t, db, u1, "poll")

	tally, err := svc.Vote(ctx, entry, u1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tally[1])

	// Anonymous viewers never see a tally.
	detail, err := svc.GetOne(ctx, entry, nil)
	require.NoError(t, err)
	assert.Nil(t, detail.Votes)

	// A viewer who has not voted sees no tally even though votes exist.
	detail, err = svc.GetOne(ctx, entry, ptr(u2))
	require.NoError(t, err)
	assert.Nil(t, detail.Votes)

	// The voter sees the full tally.
	detail, err = svc.GetOne(ctx, entry, ptr(u1))
	require.NoError(t, err)
	require.NotNil(t, detail.Votes)
	assert.Equal(t, int64(1), detail.Votes[1])
}

func TestVoteDuplicatesAreCounted(t *testing.T) {
	db, svc, u1, u2 := seedViewEnv(t)
	ctx := context.Background()

	entry := testutil.CreateMandela(t, db, u1, "poll")

	_, err := svc.Vote(ctx, entry, u2, 1)
	require.NoError(t, err)
	tally, err := svc.Vote(ctx, entry, u2, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tally[1])

	tally, err = svc.Vote(ctx, entry, u1, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tally[1])
	assert.Equal(t, int64(1), tally[-1])
}

func TestGetOneNotFound(t *testing.T) {
	_, svc, _, _ := seedViewEnv(t)

	_, err := svc.GetOne(context.Background(), 9999, nil)
	var rpcErr *rpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, rpc.CodeNotFound, rpcErr.Code)
}

func TestCreateCarriesCategoriesAndOutbox(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	ctx := context.Background()

	m := &model.Mandela{
		Title:  "tagged",
		What:   "w",
		Before: "b",
		After:  "a",
		Images: []byte(`["img"]`),
		Videos: []byte(`[]`),
		Links:  []byte(`[]`),
		UserID: u1,
	}
	id, err := svc.Create(ctx, m, []int32{5, 2})
	require.NoError(t, err)
	require.NotZero(t, id)

	detail, err := svc.GetOne(ctx, id, nil)
	require.NoError(t, err)
	assert.Equal(t, []int32{2, 5}, detail.Categories)
	assert.JSONEq(t, `["img"]`, string(detail.Images))

	var pending int64
	require.NoError(t, db.Model(&model.ActivityOutbox{}).Where("status = 0").Count(&pending).Error)
	assert.Equal(t, int64(1), pending)
}

func TestUpdateReplacesCategories(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	ctx := context.Background()

	entry := testutil.CreateMandela(t, db, u1, "before")

	m := &model.Mandela{
		ID:     entry,
		Title:  "after",
		What:   "w2",
		Before: "b2",
		After:  "a2",
		Images: []byte(`[]`),
		Videos: []byte(`[]`),
		Links:  []byte(`[]`),
		UserID: u1,
	}
	require.NoError(t, svc.Update(ctx, m, []int32{7}))

	detail, err := svc.GetOne(ctx, entry, nil)
	require.NoError(t, err)
	assert.Equal(t, "after", detail.Title)
	assert.Equal(t, "w2", detail.What)
	assert.Equal(t, []int32{7}, detail.Categories)
}

func TestDeleteRemovesSet(t *testing.T) {
	db, svc, u1, _ := seedViewEnv(t)
	ctx := context.Background()

	m1 := testutil.CreateMandela(t, db, u1, "one")
	m2 := testutil.CreateMandela(t, db, u1, "two")
	m3 := testutil.CreateMandela(t, db, u1, "three")

	require.NoError(t, svc.Delete(ctx, []uint64{m1, m3}))

	listing, err := svc.GetAll(ctx, 0, 10, nil, FilterAll)
	require.NoError(t, err)
	require.Len(t, listing.Mandels, 1)
	assert.Equal(t, m2, listing.Mandels[0].ID)
}
