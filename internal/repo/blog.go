package repo

import (
	"context"

	"github.com/pkordes/travel-agency/backend/internal/domain"
)

// BlogRepo adds slug lookup to the generic blog repository.
type BlogRepo interface {
	Repository[domain.Blog, domain.BlogPatch]
	FindBySlug(ctx context.Context, slug string) (domain.Blog, error)
}

type pgBlogRepo struct {
	*Table[domain.Blog, domain.BlogPatch]
}

// NewBlogRepo returns a BlogRepo backed by db.
func NewBlogRepo(db db) BlogRepo {
	return pgBlogRepo{newTable(db, blogEntity)}
}

func (r pgBlogRepo) FindBySlug(ctx context.Context, slug string) (domain.Blog, error) {
	return r.findOne(ctx, "FindBySlug", "slug", slug)
}

var blogEntity = entity[domain.Blog, domain.BlogPatch]{
	name:  "BlogRepo",
	table: "blogs",
	columns: []string{
		"id", "title", "slug", "excerpt", "content", "category", "tags",
		"cover_image_url", "cover_image_public_id", "author", "status", "published_at",
		"created_by", "created_at", "updated_at",
	},
	scan:   scanBlog,
	insert: insertBlog,
	patch:  patchBlog,
	filters: []Filter{
		{Key: "category", Column: "category", Op: OpEqual},
		{Key: "author", Column: "author", Op: OpContains},
	},
	search:   []string{"title", "excerpt", "content"},
	statuses: domain.BlogStatuses,
	orderBy:  "created_at DESC, id DESC",
	touch:    true,
}

func scanBlog(s scanner) (domain.Blog, error) {
	var (
		b    domain.Blog
		tags []byte
	)
	err := s.Scan(
		&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Category, &tags,
		&b.CoverImageURL, &b.CoverImagePublicID, &b.Author, &b.Status, &b.PublishedAt,
		&b.CreatedBy, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return domain.Blog{}, err
	}
	b.Tags = decodeList[string](tags)
	return b, nil
}

func insertBlog(b domain.Blog) ([]field, error) {
	var s fieldSet
	s.add("title", b.Title)
	s.add("slug", b.Slug)
	s.add("excerpt", b.Excerpt)
	s.add("content", b.Content)
	s.add("category", b.Category)
	listOf(&s, "tags", b.Tags)
	s.add("cover_image_url", b.CoverImageURL)
	s.add("cover_image_public_id", b.CoverImagePublicID)
	s.add("author", b.Author)
	s.add("status", b.Status)
	s.add("published_at", b.PublishedAt)
	s.add("created_by", b.CreatedBy)
	return s.result()
}

func patchBlog(p domain.BlogPatch) ([]field, error) {
	var s fieldSet
	opt(&s, "title", p.Title)
	opt(&s, "slug", p.Slug)
	opt(&s, "excerpt", p.Excerpt)
	opt(&s, "content", p.Content)
	opt(&s, "category", p.Category)
	optList(&s, "tags", p.Tags)
	opt(&s, "cover_image_url", p.CoverImageURL)
	opt(&s, "cover_image_public_id", p.CoverImagePublicID)
	opt(&s, "author", p.Author)
	opt(&s, "status", p.Status)
	opt(&s, "published_at", p.PublishedAt)
	return s.result()
}
