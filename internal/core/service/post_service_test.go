package service

import (
	"context"
	"errors"
	"testing"

	"github.com/99minutos/social-api/internal/core/domain"
)

type postFixture struct {
	users *stubUserRepo
	posts *stubPostRepo
	svc   *PostService
	alice domain.Caller
	bob   domain.Caller
	admin domain.Caller
}

func newPostFixture() *postFixture {
	users := newStubUserRepo()
	posts := newStubPostRepo(users)
	a := users.seed("alice", "pw1", false)
	b := users.seed("bob", "pw2", false)
	r := users.seed("admin", "admin", true)
	return &postFixture{
		users: users,
		posts: posts,
		svc:   NewPostService(posts, users, discardLogger),
		alice: domain.Caller{ID: a.ID, Username: a.Username},
		bob:   domain.Caller{ID: b.ID, Username: b.Username},
		admin: domain.Caller{ID: r.ID, Username: r.Username, IsAdmin: true},
	}
}

func TestPostService_Create_AuthorIsCaller(t *testing.T) {
	f := newPostFixture()

	post, err := f.svc.Create(context.Background(), f.alice, "hello")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ID == 0 || post.Content != "hello" {
		t.Fatalf("unexpected post: %+v", post)
	}
	if post.AuthorID != f.alice.ID || post.Author.Username != "alice" {
		t.Fatalf("expected alice as author, got %+v", post.Author)
	}
}

func TestPostService_Create_Validation(t *testing.T) {
	f := newPostFixture()

	if _, err := f.svc.Create(context.Background(), domain.Caller{}, "hello"); err != domain.ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
	if _, err := f.svc.Create(context.Background(), f.alice, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestPostService_Create_UnknownAuthor(t *testing.T) {
	f := newPostFixture()

	if _, err := f.svc.Create(context.Background(), domain.Caller{ID: 999}, "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPostService_Get(t *testing.T) {
	f := newPostFixture()
	seeded := f.posts.seed(f.alice.ID, "hello")

	post, err := f.svc.Get(context.Background(), f.bob, seeded.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if post.Author.ID != f.alice.ID || post.Author.Username != "alice" {
		t.Fatalf("expected author summary, got %+v", post.Author)
	}

	if _, err := f.svc.Get(context.Background(), f.bob, 999); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := f.svc.Get(context.Background(), domain.Caller{}, seeded.ID); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPostService_List(t *testing.T) {
	f := newPostFixture()
	f.posts.seed(f.alice.ID, "one")
	f.posts.seed(f.bob.ID, "two")

	posts, err := f.svc.List(context.Background(), f.alice)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[1].Author.Username != "bob" {
		t.Fatalf("expected author summary on list items, got %+v", posts[1].Author)
	}

	if _, err := f.svc.List(context.Background(), domain.Caller{}); err != domain.ErrUnauthenticated {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPostService_ListByUser(t *testing.T) {
	f := newPostFixture()
	f.posts.seed(f.alice.ID, "a1")
	f.posts.seed(f.bob.ID, "b1")
	f.posts.seed(f.alice.ID, "a2")

	posts, err := f.svc.ListByUser(context.Background(), f.bob, f.alice.ID)
	if err != nil {
		t.Fatalf("list by user failed: %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	for _, p := range posts {
		if p.AuthorID != f.alice.ID {
			t.Errorf("post %d belongs to %d", p.ID, p.AuthorID)
		}
	}

	empty, err := f.svc.ListByUser(context.Background(), f.bob, f.admin.ID)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list for user without posts, got %v, %v", empty, err)
	}

	if _, err := f.svc.ListByUser(context.Background(), f.bob, 999); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPostService_Update_Authorization(t *testing.T) {
	f := newPostFixture()
	seeded := f.posts.seed(f.alice.ID, "original")

	if _, err := f.svc.Update(context.Background(), f.bob, seeded.ID, "hijack"); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if f.posts.byID[seeded.ID].Content != "original" {
		t.Fatalf("forbidden edit must not change state")
	}

	post, err := f.svc.Update(context.Background(), f.alice, seeded.ID, "by author")
	if err != nil || post.Content != "by author" {
		t.Fatalf("author edit failed: %v %+v", err, post)
	}

	post, err = f.svc.Update(context.Background(), f.admin, seeded.ID, "by admin")
	if err != nil || post.Content != "by admin" {
		t.Fatalf("admin edit failed: %v %+v", err, post)
	}
	if post.AuthorID != f.alice.ID {
		t.Fatalf("admin edit must not change authorship")
	}
}

func TestPostService_Update_NotFoundAndValidation(t *testing.T) {
	f := newPostFixture()
	seeded := f.posts.seed(f.alice.ID, "original")

	if _, err := f.svc.Update(context.Background(), f.bob, 999, "x"); err != domain.ErrPostNotFound {
		t.Errorf("expected ErrPostNotFound, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), f.alice, seeded.ID, ""); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := f.svc.Update(context.Background(), domain.Caller{}, seeded.ID, "x"); err != domain.ErrUnauthenticated {
		t.Errorf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestPostService_Delete_Authorization(t *testing.T) {
	f := newPostFixture()
	first := f.posts.seed(f.alice.ID, "one")
	second := f.posts.seed(f.alice.ID, "two")

	if err := f.svc.Delete(context.Background(), f.bob, first.ID); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if _, ok := f.posts.byID[first.ID]; !ok {
		t.Fatalf("forbidden delete must not remove the post")
	}

	if err := f.svc.Delete(context.Background(), f.alice, first.ID); err != nil {
		t.Fatalf("author delete failed: %v", err)
	}
	if err := f.svc.Delete(context.Background(), f.admin, second.ID); err != nil {
		t.Fatalf("admin delete failed: %v", err)
	}
	if len(f.posts.byID) != 0 {
		t.Fatalf("expected no posts left, got %d", len(f.posts.byID))
	}

	if err := f.svc.Delete(context.Background(), f.alice, first.ID); err != domain.ErrPostNotFound {
		t.Fatalf("expected ErrPostNotFound on second delete, got %v", err)
	}
}
