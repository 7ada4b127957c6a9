package rest

import (
	"time"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

type sectionResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Slug        string  `json:"slug"`
	Description string  `json:"description,omitempty"`
	Catalog     string  `json:"catalog"`
	Order       int     `json:"order"`
	ParentID    *string `json:"parentId,omitempty"`
}

type sectionOverviewResponse struct {
	Section   sectionResponse `json:"section"`
	PostCount int             `json:"postCount"`
}

type sectionNodeResponse struct {
	sectionResponse
	Children []sectionNodeResponse `json:"children,omitempty"`
}

type postResponse struct {
	ID           string     `json:"id"`
	SectionID    string     `json:"sectionId"`
	SectionTitle string     `json:"sectionTitle,omitempty"`
	Title        string     `json:"title"`
	Slug         string     `json:"slug"`
	Summary      string     `json:"summary,omitempty"`
	Status       string     `json:"status"`
	IsFeatured   bool       `json:"isFeatured"`
	Order        int        `json:"order"`
	PublishedAt  *time.Time `json:"publishedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type postDetailResponse struct {
	postResponse
	Content string `json:"content"`
}

type revisionResponse struct {
	ID                  string    `json:"id"`
	Content             string    `json:"content"`
	Note                string    `json:"note,omitempty"`
	IsPublishedSnapshot bool      `json:"isPublishedSnapshot"`
	CreatedAt           time.Time `json:"createdAt"`
}

type activityResponse struct {
	ID           string    `json:"id"`
	PostID       *string   `json:"postId,omitempty"`
	Title        string    `json:"title"`
	SectionTitle string    `json:"sectionTitle"`
	Action       string    `json:"action"`
	CreatedAt    time.Time `json:"createdAt"`
}

type pageResponse[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

func toSectionResponse(s *domain.Section) sectionResponse {
	resp := sectionResponse{
		ID:          s.ID.String(),
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		Catalog:     s.Catalog.String(),
		Order:       s.Order,
	}
	if s.ParentID != nil {
		id := s.ParentID.String()
		resp.ParentID = &id
	}
	return resp
}

func toSectionNodeResponse(n *domain.SectionNode) sectionNodeResponse {
	resp := sectionNodeResponse{sectionResponse: toSectionResponse(&n.Section)}
	for _, child := range n.Children {
		resp.Children = append(resp.Children, toSectionNodeResponse(child))
	}
	return resp
}

func toPostResponse(p *domain.PostWithContent) postResponse {
	return postResponse{
		ID:           p.ID.String(),
		SectionID:    p.SectionID.String(),
		SectionTitle: p.SectionTitle,
		Title:        p.Title,
		Slug:         p.Slug,
		Summary:      p.Summary,
		Status:       p.Status.String(),
		IsFeatured:   p.IsFeatured,
		Order:        p.Order,
		PublishedAt:  p.PublishedAt,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func toPostDetailResponse(p *domain.PostWithContent) postDetailResponse {
	return postDetailResponse{
		postResponse: toPostResponse(p),
		Content:      p.Content,
	}
}

func toPostPage(posts []*domain.PostWithContent, total int) pageResponse[postResponse] {
	items := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, toPostResponse(p))
	}
	return pageResponse[postResponse]{Items: items, Total: total}
}

func toRevisionResponse(rev *domain.Revision) revisionResponse {
	return revisionResponse{
		ID:                  rev.ID.String(),
		Content:             rev.Content,
		Note:                rev.Note,
		IsPublishedSnapshot: rev.IsPublishedSnapshot,
		CreatedAt:           rev.CreatedAt,
	}
}

func toActivityResponse(rec *domain.ActivityRecord) activityResponse {
	resp := activityResponse{
		ID:           rec.ID.String(),
		Title:        rec.Title,
		SectionTitle: rec.SectionTitle,
		Action:       rec.Action.String(),
		CreatedAt:    rec.CreatedAt,
	}
	if rec.PostID != nil {
		id := rec.PostID.String()
		resp.PostID = &id
	}
	return resp
}
