package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/99minutos/social-api/internal/core/domain"
)

type PostRepository struct {
	coll  *mongo.Collection
	ids   *counters
	users *UserRepository
}

func NewPostRepository(db *mongo.Database, ids *counters, users *UserRepository) *PostRepository {
	return &PostRepository{coll: db.Collection(collectionPosts), ids: ids, users: users}
}

type mongoPost struct {
	ID        int64     `bson:"_id"`
	Content   string    `bson:"content"`
	AuthorID  int64     `bson:"author_id"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// mongoPostView is a post joined with its author by the read pipeline.
type mongoPostView struct {
	mongoPost `bson:",inline"`
	Author    *mongoUser `bson:"author,omitempty"`
}

func (v mongoPostView) toDomain() *domain.Post {
	p := &domain.Post{
		ID:        v.ID,
		Content:   v.Content,
		AuthorID:  v.AuthorID,
		CreatedAt: v.CreatedAt.UTC(),
		UpdatedAt: v.UpdatedAt.UTC(),
		Author:    domain.UserSummary{ID: v.AuthorID},
	}
	if v.Author != nil {
		p.Author = v.Author.toDomain().Summary()
	}
	return p
}

// withAuthorPipeline selects posts matching filter in id order and joins the
// author document.
func withAuthorPipeline(filter bson.M) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: filter}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: collectionUsers},
			{Key: "localField", Value: "author_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "author"},
		}}},
		{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$author"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if _, err := r.users.FindByID(ctx, post.AuthorID); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := r.ids.next(ctx, collectionPosts)
	if err != nil {
		return nil, err
	}

	doc := mongoPost{
		ID:        id,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		CreatedAt: post.CreatedAt.UTC(),
		UpdatedAt: post.UpdatedAt.UTC(),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	return r.FindByID(ctx, id)
}

func (r *PostRepository) FindByID(ctx context.Context, id int64) (*domain.Post, error) {
	posts, err := r.aggregate(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, domain.ErrPostNotFound
	}
	return posts[0], nil
}

func (r *PostRepository) List(ctx context.Context) ([]*domain.Post, error) {
	return r.aggregate(ctx, bson.M{})
}

func (r *PostRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*domain.Post, error) {
	return r.aggregate(ctx, bson.M{"author_id": authorID})
}

func (r *PostRepository) aggregate(ctx context.Context, filter bson.M) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Aggregate(ctx, withAuthorPipeline(filter))
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}

	var views []mongoPostView
	if err := cur.All(ctx, &views); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	posts := make([]*domain.Post, 0, len(views))
	for _, v := range views {
		posts = append(posts, v.toDomain())
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": post.ID}, bson.M{"$set": bson.M{
		"content":    post.Content,
		"updated_at": post.UpdatedAt.UTC(),
	}})
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domain.ErrPostNotFound
	}
	return r.FindByID(ctx, post.ID)
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
