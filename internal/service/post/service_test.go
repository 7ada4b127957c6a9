package post

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/mkholodov/wuguan-backend/internal/domain"
	"github.com/mkholodov/wuguan-backend/pkg/ctxutil"
)

type testDeps struct {
	posts     *postRepoMock
	revisions *revisionRepoMock
	sections  *sectionGetterMock
	activity  *activityRepoMock
	notifier  *notifierMock
}

func newTestService(d testDeps) (*Service, testDeps) {
	if d.posts == nil {
		d.posts = &postRepoMock{}
	}
	if d.revisions == nil {
		d.revisions = &revisionRepoMock{}
	}
	if d.sections == nil {
		d.sections = &sectionGetterMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
				return &domain.Section{ID: id, Title: "Standing Practice", Catalog: domain.CatalogSinyi}, nil
			},
		}
	}
	if d.activity == nil {
		d.activity = &activityRepoMock{}
	}
	if d.notifier == nil {
		d.notifier = &notifierMock{}
	}
	svc := NewService(slog.Default(), d.posts, d.revisions, d.sections, d.activity, &txManagerMock{}, d.notifier)
	return svc, d
}

func publisherCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithRole(ctx, string(domain.RolePublisher))
}

func memberCtx() context.Context {
	ctx := ctxutil.WithUserID(context.Background(), uuid.New())
	return ctxutil.WithRole(ctx, string(domain.RoleMember))
}

// creatingPostRepo wires CreateFunc and UpdateFunc to echo their argument
// back, assigning an ID on create the way the database would.
func creatingPostRepo() *postRepoMock {
	return &postRepoMock{
		CreateFunc: func(ctx context.Context, p *domain.Post) (*domain.Post, error) {
			out := *p
			out.ID = uuid.New()
			return &out, nil
		},
		UpdateFunc: func(ctx context.Context, p *domain.Post) (*domain.Post, error) {
			return p, nil
		},
		SetCurrentRevisionFunc: func(ctx context.Context, postID, revisionID uuid.UUID) error {
			return nil
		},
		SlugExistsFunc: func(ctx context.Context, slug string, excludeID uuid.UUID) (bool, error) {
			return false, nil
		},
	}
}

func creatingRevisionRepo() *revisionRepoMock {
	return &revisionRepoMock{
		CreateFunc: func(ctx context.Context, rev *domain.Revision) (*domain.Revision, error) {
			out := *rev
			out.ID = uuid.New()
			return &out, nil
		},
	}
}

// ---------------------------------------------------------------------------
// CreatePost
// ---------------------------------------------------------------------------

func TestCreatePost_Anonymous(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testDeps{})

	_, err := svc.CreatePost(context.Background(), CreatePostInput{
		SectionID: uuid.New(),
		Title:     "Santishi basics",
	})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got: %v", err)
	}
}

func TestCreatePost_MemberForbidden(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testDeps{})

	_, err := svc.CreatePost(memberCtx(), CreatePostInput{
		SectionID: uuid.New(),
		Title:     "Santishi basics",
	})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

func TestCreatePost_Draft(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(testDeps{
		posts:     creatingPostRepo(),
		revisions: creatingRevisionRepo(),
	})

	created, err := svc.CreatePost(publisherCtx(), CreatePostInput{
		SectionID:  uuid.New(),
		Title:      "Santishi basics",
		Content:    "<p>Stand still.</p>",
		IsFeatured: true,
	})
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	if created.Status != domain.PostStatusDraft {
		t.Errorf("status = %s, want draft", created.Status)
	}
	if created.PublishedAt != nil {
		t.Errorf("PublishedAt = %v, want nil for a draft", created.PublishedAt)
	}
	if created.IsFeatured {
		t.Error("draft must not be featured regardless of input")
	}
	if created.CurrentRevisionID == nil {
		t.Fatal("CurrentRevisionID not set after create")
	}

	revs := d.revisions.CreateCalls()
	if len(revs) != 1 {
		t.Fatalf("revision Create calls = %d, want 1", len(revs))
	}
	if revs[0].IsPublishedSnapshot {
		t.Error("draft revision marked as published snapshot")
	}
	if revs[0].Content != "<p>Stand still.</p>" {
		t.Errorf("revision content = %q", revs[0].Content)
	}

	if calls := d.posts.SetCurrentRevisionCalls(); len(calls) != 1 {
		t.Errorf("SetCurrentRevision calls = %d, want 1", len(calls))
	}

	logs := d.activity.LogCalls()
	if len(logs) != 1 || logs[0].Action != domain.ActivityActionCreate {
		t.Fatalf("activity log = %+v, want one create record", logs)
	}

	if n := len(d.notifier.PostCreatedCalls()); n != 0 {
		t.Errorf("PostCreated calls = %d, want 0 for a draft", n)
	}
}

func TestCreatePost_PublishedNotifies(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(testDeps{
		posts:     creatingPostRepo(),
		revisions: creatingRevisionRepo(),
	})

	created, err := svc.CreatePost(publisherCtx(), CreatePostInput{
		SectionID:  uuid.New(),
		Title:      "Opening the hips",
		Content:    "<p>Kua work.</p>",
		Publish:    true,
		IsFeatured: true,
	})
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}

	if !created.IsPublished() {
		t.Errorf("status = %s, want published", created.Status)
	}
	if created.PublishedAt == nil {
		t.Error("PublishedAt not set on direct publish")
	}
	if !created.IsFeatured {
		t.Error("published post lost its featured flag")
	}

	revs := d.revisions.CreateCalls()
	if len(revs) != 1 || !revs[0].IsPublishedSnapshot {
		t.Fatalf("expected one published-snapshot revision, got %+v", revs)
	}

	logs := d.activity.LogCalls()
	if len(logs) != 2 || logs[0].Action != domain.ActivityActionCreate || logs[1].Action != domain.ActivityActionPublish {
		t.Fatalf("activity log = %+v, want create then publish", logs)
	}

	notified := d.notifier.PostCreatedCalls()
	if len(notified) != 1 {
		t.Fatalf("PostCreated calls = %d, want 1", len(notified))
	}
	if notified[0].ID != created.ID {
		t.Errorf("notified post %s, want %s", notified[0].ID, created.ID)
	}
}

func TestCreatePost_SlugDerivedFromTitle(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(testDeps{
		posts:     creatingPostRepo(),
		revisions: creatingRevisionRepo(),
	})

	created, err := svc.CreatePost(publisherCtx(), CreatePostInput{
		SectionID: uuid.New(),
		Title:     "Five Element Fists",
	})
	if err != nil {
		t.Fatalf("CreatePost() error: %v", err)
	}
	if created.Slug != "five-element-fists" {
		t.Errorf("slug = %q, want %q", created.Slug, "five-element-fists")
	}
	if len(d.posts.CreateCalls()) != 1 {
		t.Fatalf("Create calls = %d, want 1", len(d.posts.CreateCalls()))
	}
}

func TestCreatePost_SectionMissing(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testDeps{
		sections: &sectionGetterMock{
			GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Section, error) {
				return nil, domain.ErrNotFound
			},
		},
	})

	_, err := svc.CreatePost(publisherCtx(), CreatePostInput{
		SectionID: uuid.New(),
		Title:     "Orphan",
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// EditPost
// ---------------------------------------------------------------------------

func editablePost(status domain.PostStatus, revID uuid.UUID) *domain.Post {
	p := &domain.Post{
		ID:        uuid.New(),
		SectionID: uuid.New(),
		Title:     "Silk reeling",
		Slug:      "silk-reeling",
		Status:    status,
	}
	if revID != uuid.Nil {
		p.CurrentRevisionID = &revID
	}
	if status == domain.PostStatusPublished {
		at := time.Now().UTC().Add(-time.Hour)
		p.PublishedAt = &at
	}
	return p
}

func TestEditPost_ResubmittedContentCreatesRevision(t *testing.T) {
	t.Parallel()

	revID := uuid.New()
	post := editablePost(domain.PostStatusPublished, revID)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts, revisions: creatingRevisionRepo()})

	// The editor resubmits the document verbatim; the history still grows.
	same := "<p>Chan si jin.</p>"
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Content: &same})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}

	if n := len(d.revisions.CreateCalls()); n != 1 {
		t.Errorf("revision Create calls = %d, want 1 even for identical content", n)
	}
	if updated.CurrentRevisionID == nil || *updated.CurrentRevisionID == revID {
		t.Error("post not repointed to the fresh revision")
	}
	if n := len(d.notifier.PostRevisedCalls()); n != 1 {
		t.Errorf("PostRevised calls = %d, want 1 for a content submission", n)
	}
	if n := len(d.posts.UpdateCalls()); n != 1 {
		t.Errorf("post Update calls = %d, want 1", n)
	}
}

func TestEditPost_BlankContentRejected(t *testing.T) {
	t.Parallel()

	revID := uuid.New()
	post := editablePost(domain.PostStatusPublished, revID)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	// What a rich-text editor submits for an emptied document.
	blank := "<p></p>"
	_, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Content: &blank})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got: %v", err)
	}

	if n := len(d.revisions.CreateCalls()); n != 0 {
		t.Errorf("revision Create calls = %d, want 0 for blank content", n)
	}
	if n := len(d.posts.UpdateCalls()); n != 0 {
		t.Errorf("Update calls = %d, want 0 when the edit is rejected", n)
	}
}

func TestEditPost_StatusChangeToPublishedStampsAndLogs(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusDraft, uuid.Nil)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	status := domain.PostStatusPublished
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Status: &status})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}

	if !updated.IsPublished() {
		t.Errorf("status = %s, want published", updated.Status)
	}
	if updated.PublishedAt == nil {
		t.Error("PublishedAt not stamped on first publication through edit")
	}

	logs := d.activity.LogCalls()
	if len(logs) != 2 || logs[0].Action != domain.ActivityActionUpdate || logs[1].Action != domain.ActivityActionPublish {
		t.Fatalf("activity log = %+v, want update then publish", logs)
	}
	// A status flip without new content is not an update notification.
	if n := len(d.notifier.PostRevisedCalls()); n != 0 {
		t.Errorf("PostRevised calls = %d, want 0 without a content change", n)
	}
}

func TestEditPost_RepublishKeepsPublishedAt(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusArchived, uuid.Nil)
	at := time.Now().UTC().Add(-48 * time.Hour)
	post.PublishedAt = &at

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, _ := newTestService(testDeps{posts: posts})

	status := domain.PostStatusPublished
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Status: &status})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(at) {
		t.Errorf("PublishedAt = %v, want the original %v", updated.PublishedAt, at)
	}
}

func TestEditPost_ContentChangeOnPublishedNotifies(t *testing.T) {
	t.Parallel()

	revID := uuid.New()
	post := editablePost(domain.PostStatusPublished, revID)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}
	svc, d := newTestService(testDeps{posts: posts, revisions: creatingRevisionRepo()})

	fresh := "<p>Reworked explanation.</p>"
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Content: &fresh, Note: "clarify stance"})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}

	revs := d.revisions.CreateCalls()
	if len(revs) != 1 {
		t.Fatalf("revision Create calls = %d, want 1", len(revs))
	}
	if revs[0].Content != fresh {
		t.Errorf("revision content = %q, want %q", revs[0].Content, fresh)
	}
	if revs[0].Note != "clarify stance" {
		t.Errorf("revision note = %q", revs[0].Note)
	}
	if !revs[0].IsPublishedSnapshot {
		t.Error("revision of a published post must be a published snapshot")
	}
	if updated.CurrentRevisionID == nil || *updated.CurrentRevisionID == revID {
		t.Error("post not repointed to the new revision")
	}

	notified := d.notifier.PostRevisedCalls()
	if len(notified) != 1 {
		t.Fatalf("PostRevised calls = %d, want 1", len(notified))
	}
}

func TestEditPost_ContentChangeOnDraftStaysQuiet(t *testing.T) {
	t.Parallel()

	revID := uuid.New()
	post := editablePost(domain.PostStatusDraft, revID)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}
	svc, d := newTestService(testDeps{posts: posts, revisions: creatingRevisionRepo()})

	fresh := "<p>New draft text.</p>"
	_, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Content: &fresh})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}

	if n := len(d.revisions.CreateCalls()); n != 1 {
		t.Errorf("revision Create calls = %d, want 1", n)
	}
	if n := len(d.notifier.PostRevisedCalls()); n != 0 {
		t.Errorf("PostRevised calls = %d, want 0 for a draft", n)
	}
}

func TestEditPost_FeaturedKeptWhenOmitted(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusPublished, uuid.Nil)
	post.IsFeatured = true

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, _ := newTestService(testDeps{posts: posts})

	// A partial edit that says nothing about the flag leaves it alone.
	title := "Silk reeling, part two"
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, Title: &title})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}
	if !updated.IsFeatured {
		t.Error("featured flag dropped by an edit that did not mention it")
	}
}

func TestEditPost_FeaturedClearedOnDraft(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusDraft, uuid.Nil)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	featured := true
	updated, err := svc.EditPost(publisherCtx(), EditPostInput{ID: post.ID, IsFeatured: &featured})
	if err != nil {
		t.Fatalf("EditPost() error: %v", err)
	}
	if updated.IsFeatured {
		t.Error("featured flag survived on a non-published post")
	}
	if n := len(d.posts.UpdateCalls()); n != 1 {
		t.Errorf("Update calls = %d, want 1", n)
	}
}

// ---------------------------------------------------------------------------
// PublishPost / ArchivePost
// ---------------------------------------------------------------------------

func TestPublishPost_SetsPublishedAtOnce(t *testing.T) {
	t.Parallel()

	firstPublish := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	post := editablePost(domain.PostStatusArchived, uuid.Nil)
	post.PublishedAt = &firstPublish

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	updated, err := svc.PublishPost(publisherCtx(), post.ID)
	if err != nil {
		t.Fatalf("PublishPost() error: %v", err)
	}
	if !updated.IsPublished() {
		t.Errorf("status = %s, want published", updated.Status)
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(firstPublish) {
		t.Errorf("PublishedAt = %v, want original %v", updated.PublishedAt, firstPublish)
	}

	logs := d.activity.LogCalls()
	if len(logs) != 1 || logs[0].Action != domain.ActivityActionPublish {
		t.Fatalf("activity log = %+v, want one publish record", logs)
	}
	if n := len(d.notifier.PostCreatedCalls()) + len(d.notifier.PostRevisedCalls()); n != 0 {
		t.Errorf("notifier calls = %d, want 0 on publish", n)
	}
}

func TestPublishPost_FirstPublicationStampsNow(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusDraft, uuid.Nil)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, _ := newTestService(testDeps{posts: posts})

	before := time.Now().UTC()
	updated, err := svc.PublishPost(publisherCtx(), post.ID)
	if err != nil {
		t.Fatalf("PublishPost() error: %v", err)
	}
	if updated.PublishedAt == nil || updated.PublishedAt.Before(before) {
		t.Errorf("PublishedAt = %v, want a fresh timestamp", updated.PublishedAt)
	}
}

func TestPublishPost_AlreadyPublishedIsNoop(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusPublished, uuid.Nil)

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	if _, err := svc.PublishPost(publisherCtx(), post.ID); err != nil {
		t.Fatalf("PublishPost() error: %v", err)
	}
	if n := len(d.posts.UpdateCalls()); n != 0 {
		t.Errorf("Update calls = %d, want 0 when already published", n)
	}
	if n := len(d.activity.LogCalls()); n != 0 {
		t.Errorf("activity log calls = %d, want 0 when already published", n)
	}
}

func TestArchivePost_ClearsFeaturedKeepsPublishedAt(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusPublished, uuid.Nil)
	post.IsFeatured = true
	originalPublishedAt := *post.PublishedAt

	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}

	svc, d := newTestService(testDeps{posts: posts})

	updated, err := svc.ArchivePost(publisherCtx(), post.ID)
	if err != nil {
		t.Fatalf("ArchivePost() error: %v", err)
	}
	if updated.Status != domain.PostStatusArchived {
		t.Errorf("status = %s, want archived", updated.Status)
	}
	if updated.IsFeatured {
		t.Error("archived post kept its featured flag")
	}
	if updated.PublishedAt == nil || !updated.PublishedAt.Equal(originalPublishedAt) {
		t.Errorf("PublishedAt = %v, want untouched %v", updated.PublishedAt, originalPublishedAt)
	}

	logs := d.activity.LogCalls()
	if len(logs) != 1 || logs[0].Action != domain.ActivityActionArchive {
		t.Fatalf("activity log = %+v, want one archive record", logs)
	}
}

// ---------------------------------------------------------------------------
// DeletePost
// ---------------------------------------------------------------------------

func TestDeletePost_LogsBeforeRemoval(t *testing.T) {
	t.Parallel()

	post := editablePost(domain.PostStatusPublished, uuid.Nil)

	var order []string
	posts := creatingPostRepo()
	posts.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*domain.Post, error) {
		cp := *post
		return &cp, nil
	}
	posts.DeleteFunc = func(ctx context.Context, id uuid.UUID) error {
		order = append(order, "delete_post")
		return nil
	}
	activity := &activityRepoMock{
		LogFunc: func(ctx context.Context, rec *domain.ActivityRecord) error {
			order = append(order, "log_delete")
			return nil
		},
	}

	svc, d := newTestService(testDeps{posts: posts, activity: activity})

	if err := svc.DeletePost(publisherCtx(), post.ID); err != nil {
		t.Fatalf("DeletePost() error: %v", err)
	}

	// The delete record must exist before the row is gone; storage nulls the
	// reference afterwards while the snapshots stay readable.
	want := []string{"log_delete", "delete_post"}
	if len(order) != len(want) {
		t.Fatalf("call order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("call order = %v, want %v", order, want)
		}
	}

	logs := d.activity.LogCalls()
	if len(logs) != 1 {
		t.Fatalf("activity log calls = %d, want 1", len(logs))
	}
	rec := logs[0]
	if rec.PostID == nil || *rec.PostID != post.ID {
		t.Error("delete record must reference the post at log time")
	}
	if rec.Action != domain.ActivityActionDelete {
		t.Errorf("action = %s, want delete", rec.Action)
	}
	if rec.Title != post.Title || rec.SectionTitle != "Standing Practice" {
		t.Errorf("snapshots = %q/%q", rec.Title, rec.SectionTitle)
	}
}

// ---------------------------------------------------------------------------
// Dashboard listings
// ---------------------------------------------------------------------------

func TestListDashboard_ExcludesArchived(t *testing.T) {
	t.Parallel()

	posts := &postRepoMock{
		ListFunc: func(ctx context.Context, filter domain.PostFilter) ([]*domain.PostWithContent, int, error) {
			return nil, 0, nil
		},
	}
	svc, d := newTestService(testDeps{posts: posts})

	if _, _, err := svc.ListDashboard(publisherCtx(), ListInput{Limit: 10}); err != nil {
		t.Fatalf("ListDashboard() error: %v", err)
	}

	filters := d.posts.ListCalls()
	if len(filters) != 1 {
		t.Fatalf("List calls = %d, want 1", len(filters))
	}
	f := filters[0]
	if len(f.Statuses) != 2 {
		t.Fatalf("filter statuses = %v, want draft and published only", f.Statuses)
	}
	for _, st := range f.Statuses {
		if st == domain.PostStatusArchived {
			t.Error("dashboard filter must not include archived posts")
		}
	}
	if f.Order != domain.PostOrderRecent {
		t.Errorf("order = %v, want recent", f.Order)
	}
}

func TestListDashboard_MemberForbidden(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(testDeps{})

	if _, _, err := svc.ListDashboard(memberCtx(), ListInput{}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got: %v", err)
	}
}

// ---------------------------------------------------------------------------
// GetBySlug visibility
// ---------------------------------------------------------------------------

func TestGetBySlug_DraftHiddenFromMember(t *testing.T) {
	t.Parallel()

	posts := &postRepoMock{
		GetDetailBySlugFunc: func(ctx context.Context, slug string) (*domain.PostWithContent, error) {
			return &domain.PostWithContent{
				Post: domain.Post{ID: uuid.New(), Slug: slug, Status: domain.PostStatusDraft},
			}, nil
		},
	}
	svc, _ := newTestService(testDeps{posts: posts})

	_, err := svc.GetBySlug(memberCtx(), "silk-reeling")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for a hidden draft, got: %v", err)
	}

	_, err = svc.GetBySlug(context.Background(), "silk-reeling")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for anonymous, got: %v", err)
	}
}

func TestGetBySlug_DraftVisibleToPublisher(t *testing.T) {
	t.Parallel()

	posts := &postRepoMock{
		GetDetailBySlugFunc: func(ctx context.Context, slug string) (*domain.PostWithContent, error) {
			return &domain.PostWithContent{
				Post:    domain.Post{ID: uuid.New(), Slug: slug, Status: domain.PostStatusDraft},
				Content: "<p>Work in progress.</p>",
			}, nil
		},
	}
	svc, _ := newTestService(testDeps{posts: posts})

	got, err := svc.GetBySlug(publisherCtx(), "silk-reeling")
	if err != nil {
		t.Fatalf("GetBySlug() error: %v", err)
	}
	if got.Status != domain.PostStatusDraft {
		t.Errorf("status = %s, want draft", got.Status)
	}
}

func TestGetBySlug_PublishedVisibleToAnyone(t *testing.T) {
	t.Parallel()

	posts := &postRepoMock{
		GetDetailBySlugFunc: func(ctx context.Context, slug string) (*domain.PostWithContent, error) {
			return &domain.PostWithContent{
				Post: domain.Post{ID: uuid.New(), Slug: slug, Status: domain.PostStatusPublished},
			}, nil
		},
	}
	svc, _ := newTestService(testDeps{posts: posts})

	if _, err := svc.GetBySlug(context.Background(), "silk-reeling"); err != nil {
		t.Fatalf("GetBySlug() error for anonymous: %v", err)
	}
}
