// Package notify delivers email to subscribed members when content is
// published. Dispatch happens strictly after the triggering write has been
// committed; a delivery failure never affects the publishing operation.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

const recentCacheSize = 1024

type subscriberRepo interface {
	ListSubscribers(ctx context.Context) ([]domain.Subscriber, error)
}

type sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// Dispatcher fans out post notifications to subscribed members.
type Dispatcher struct {
	subscribers subscriberRepo
	sender      sender
	siteURL     string

	// recent remembers freshly created post IDs for the dedup window, so the
	// revision written as part of creation does not also produce an update
	// notification.
	recent *expirable.LRU[uuid.UUID, struct{}]

	log *slog.Logger
}

// NewDispatcher creates a Dispatcher. recentWindow bounds how long a new
// post suppresses its own update notifications.
func NewDispatcher(
	log *slog.Logger,
	subscribers subscriberRepo,
	sender sender,
	siteURL string,
	recentWindow time.Duration,
) *Dispatcher {
	return &Dispatcher{
		subscribers: subscribers,
		sender:      sender,
		siteURL:     siteURL,
		recent:      expirable.NewLRU[uuid.UUID, struct{}](recentCacheSize, nil, recentWindow),
		log:         log.With("component", "notify"),
	}
}

// PostCreated notifies new-post subscribers about a freshly published post
// and arms the dedup window for it. Call only after the creating transaction
// has committed.
func (d *Dispatcher) PostCreated(ctx context.Context, post *domain.Post) {
	d.recent.Add(post.ID, struct{}{})

	subject := fmt.Sprintf("New post: %s", post.Title)
	body := fmt.Sprintf("A new post has been published.\n\n%s\n%s\n", post.Title, d.postURL(post))
	d.fanOut(ctx, post, subject, body, func(s domain.Subscriber) bool {
		return s.NotifyNewPosts
	})
}

// PostRevised notifies update subscribers about new content on a published
// post. Revisions landing within the dedup window of the post's creation are
// skipped. Call only after the revising transaction has committed.
func (d *Dispatcher) PostRevised(ctx context.Context, post *domain.Post) {
	if d.recent.Contains(post.ID) {
		d.log.DebugContext(ctx, "update notification suppressed for fresh post",
			"post_id", post.ID, "slug", post.Slug)
		return
	}

	subject := fmt.Sprintf("Post updated: %s", post.Title)
	body := fmt.Sprintf("A post you follow has been updated.\n\n%s\n%s\n", post.Title, d.postURL(post))
	d.fanOut(ctx, post, subject, body, func(s domain.Subscriber) bool {
		return s.NotifyUpdates
	})
}

// fanOut sends one message per opted-in subscriber. Individual failures are
// logged and swallowed.
func (d *Dispatcher) fanOut(ctx context.Context, post *domain.Post, subject, body string, optedIn func(domain.Subscriber) bool) {
	subs, err := d.subscribers.ListSubscribers(ctx)
	if err != nil {
		d.log.ErrorContext(ctx, "failed to list subscribers",
			"post_id", post.ID, "error", err)
		return
	}

	sent := 0
	for _, s := range subs {
		if !optedIn(s) {
			continue
		}
		if err := d.sender.Send(ctx, s.Email, subject, body); err != nil {
			d.log.ErrorContext(ctx, "failed to send notification",
				"post_id", post.ID, "user_id", s.UserID, "error", err)
			continue
		}
		sent++
	}

	d.log.InfoContext(ctx, "notifications dispatched",
		"post_id", post.ID, "slug", post.Slug, "sent", sent)
}

func (d *Dispatcher) postURL(post *domain.Post) string {
	return d.siteURL + "/posts/" + post.Slug
}
