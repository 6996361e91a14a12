package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/99minutos/social-api/internal/core/domain"
	"github.com/99minutos/social-api/internal/infrastructure/db/sqlstore"
)

func openMemory(t *testing.T) *sqlstore.Store {
	t.Helper()
	store, err := Open(context.Background(), MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newUser(name string, admin bool) *domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.User{Username: name, PasswordHash: "hash-" + name, IsAdmin: admin, CreatedAt: now, UpdatedAt: now}
}

func newPost(authorID int64, content string) *domain.Post {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.Post{AuthorID: authorID, Content: content, CreatedAt: now, UpdatedAt: now}
}

func TestUsers_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	users := openMemory(t).Users()

	alice, err := users.Create(ctx, newUser("alice", false))
	require.NoError(t, err)
	require.NotZero(t, alice.ID)

	byID, err := users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, "alice", byID.Username)
	require.Equal(t, "hash-alice", byID.PasswordHash)
	require.False(t, byID.IsAdmin)
	require.True(t, byID.CreatedAt.Equal(alice.CreatedAt))

	byName, err := users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, byName.ID)

	_, err = users.FindByID(ctx, 999)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = users.FindByUsername(ctx, "ghost")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUsers_UniqueUsername(t *testing.T) {
	ctx := context.Background()
	users := openMemory(t).Users()

	_, err := users.Create(ctx, newUser("bob", false))
	require.NoError(t, err)
	_, err = users.Create(ctx, newUser("bob", true))
	require.ErrorIs(t, err, domain.ErrUserExists)

	carol, err := users.Create(ctx, newUser("carol", false))
	require.NoError(t, err)
	carol.Username = "bob"
	_, err = users.Update(ctx, carol)
	require.ErrorIs(t, err, domain.ErrUserExists)
}

func TestUsers_ListOrderedByID(t *testing.T) {
	ctx := context.Background()
	users := openMemory(t).Users()

	empty, err := users.List(ctx)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Empty(t, empty)

	for _, name := range []string{"zed", "amy", "kim"} {
		_, err := users.Create(ctx, newUser(name, false))
		require.NoError(t, err)
	}

	all, err := users.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "zed", all[0].Username)
	require.Equal(t, "kim", all[2].Username)
}

func TestUsers_Update(t *testing.T) {
	ctx := context.Background()
	users := openMemory(t).Users()

	alice, err := users.Create(ctx, newUser("alice", false))
	require.NoError(t, err)

	alice.Username = "alicia"
	alice.PasswordHash = "new-hash"
	updated, err := users.Update(ctx, alice)
	require.NoError(t, err)
	require.Equal(t, "alicia", updated.Username)
	require.Equal(t, "new-hash", updated.PasswordHash)

	ghost := newUser("ghost", false)
	ghost.ID = 999
	_, err = users.Update(ctx, ghost)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUsers_DeleteCascadesPosts(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	users, posts := store.Users(), store.Posts()

	alice, err := users.Create(ctx, newUser("alice", false))
	require.NoError(t, err)
	bob, err := users.Create(ctx, newUser("bob", false))
	require.NoError(t, err)

	_, err = posts.Create(ctx, newPost(alice.ID, "a1"))
	require.NoError(t, err)
	_, err = posts.Create(ctx, newPost(alice.ID, "a2"))
	require.NoError(t, err)
	kept, err := posts.Create(ctx, newPost(bob.ID, "b1"))
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, alice.ID))
	require.ErrorIs(t, users.Delete(ctx, alice.ID), domain.ErrUserNotFound)

	remaining, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	require.Equal(t, kept.ID, remaining[0].ID)
}

func TestPosts_CreateCarriesAuthor(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)

	alice, err := store.Users().Create(ctx, newUser("alice", false))
	require.NoError(t, err)

	post, err := store.Posts().Create(ctx, newPost(alice.ID, "hello"))
	require.NoError(t, err)
	require.NotZero(t, post.ID)
	require.Equal(t, "hello", post.Content)
	require.Equal(t, domain.UserSummary{ID: alice.ID, Username: "alice"}, post.Author)

	_, err = store.Posts().Create(ctx, newPost(999, "orphan"))
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestPosts_ListAndListByAuthor(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)
	users, posts := store.Users(), store.Posts()

	alice, err := users.Create(ctx, newUser("alice", false))
	require.NoError(t, err)
	bob, err := users.Create(ctx, newUser("bob", false))
	require.NoError(t, err)

	for _, p := range []*domain.Post{newPost(alice.ID, "a1"), newPost(bob.ID, "b1"), newPost(alice.ID, "a2")} {
		_, err := posts.Create(ctx, p)
		require.NoError(t, err)
	}

	all, err := posts.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	require.Equal(t, "bob", all[1].Author.Username)

	mine, err := posts.ListByAuthor(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	require.Equal(t, "a1", mine[0].Content)
	require.Equal(t, "a2", mine[1].Content)

	none, err := posts.ListByAuthor(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, none)
}

func TestPosts_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	store := openMemory(t)

	alice, err := store.Users().Create(ctx, newUser("alice", false))
	require.NoError(t, err)
	post, err := store.Posts().Create(ctx, newPost(alice.ID, "draft"))
	require.NoError(t, err)

	post.Content = "final"
	updated, err := store.Posts().Update(ctx, post)
	require.NoError(t, err)
	require.Equal(t, "final", updated.Content)
	require.Equal(t, alice.ID, updated.AuthorID)

	require.NoError(t, store.Posts().Delete(ctx, post.ID))
	_, err = store.Posts().FindByID(ctx, post.ID)
	require.ErrorIs(t, err, domain.ErrPostNotFound)
	require.ErrorIs(t, store.Posts().Delete(ctx, post.ID), domain.ErrPostNotFound)

	post.Content = "resurrect"
	_, err = store.Posts().Update(ctx, post)
	require.ErrorIs(t, err, domain.ErrPostNotFound)
}

func TestOpen_FileIsMigratedOnce(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "social.db")

	first, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = first.Users().Create(ctx, newUser("alice", false))
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = second.Close() })

	u, err := second.Users().FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Username)
	require.NoError(t, second.Ping(ctx))
}
