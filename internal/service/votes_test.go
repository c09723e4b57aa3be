package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/jayadityadev/social-media-api/internal/access"
	"github.com/jayadityadev/social-media-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVote_StateMachine(t *testing.T) {
	svc := newTestService(t)
	c := register(t, svc, "a@x.com")
	post := createPost(t, svc, c, "Hello", true)
	ctx := context.Background()

	vote, op, err := svc.Vote(ctx, c, post.ID, access.VoteUp)
	require.NoError(t, err)
	assert.Equal(t, access.VoteInsert, op)
	assert.Equal(t, models.Vote{UserID: c.ID, PostID: post.ID}, vote)

	_, _, err = svc.Vote(ctx, c, post.ID, access.VoteUp)
	assert.ErrorIs(t, err, models.ErrConflict)

	_, op, err = svc.Vote(ctx, c, post.ID, access.VoteDown)
	require.NoError(t, err)
	assert.Equal(t, access.VoteDelete, op)

	_, _, err = svc.Vote(ctx, c, post.ID, access.VoteDown)
	assert.ErrorIs(t, err, models.ErrConflict)
}

func TestVote_MissingPost(t *testing.T) {
	svc := newTestService(t)
	c := register(t, svc, "a@x.com")

	for _, dir := range []access.VoteDirection{access.VoteUp, access.VoteDown} {
		_, _, err := svc.Vote(context.Background(), c, 404, dir)
		assert.ErrorIs(t, err, models.ErrNotFound)
	}
}

func TestVote_CountedInListing(t *testing.T) {
	svc := newTestService(t)
	a := register(t, svc, "a@x.com")
	b := register(t, svc, "b@x.com")
	post := createPost(t, svc, a, "p", true)
	ctx := context.Background()

	for _, c := range []access.Caller{a, b} {
		_, _, err := svc.Vote(ctx, c, post.ID, access.VoteUp)
		require.NoError(t, err)
	}

	posts, err := svc.ListPosts(ctx, a, access.DefaultListParams())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, int64(2), posts[0].Votes)
}

func TestVote_ConcurrentUpVotesCreateOneRow(t *testing.T) {
	svc := newTestService(t)
	c := register(t, svc, "a@x.com")
	post := createPost(t, svc, c, "p", true)
	ctx := context.Background()

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = svc.Vote(ctx, c, post.ID, access.VoteUp)
		}(i)
	}
	wg.Wait()

	var ok, conflicts int
	for _, err := range errs {
		switch {
		case err == nil:
			ok++
		case errors.Is(err, models.ErrConflict):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, conflicts)

	posts, err := svc.ListPosts(ctx, c, access.DefaultListParams())
	require.NoError(t, err)
	assert.Equal(t, int64(1), posts[0].Votes)
}
