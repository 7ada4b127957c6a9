package post

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/mkholodov/wuguan-backend/internal/domain"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectColumns are the columns scanned by scanPostWithContent, in order.
const selectColumns = `p.id, p.section_id, p.title, p.slug, p.summary, p.status,
p.is_featured, p.sort_order, p.published_at, p.created_at, p.updated_at,
p.author_id, p.current_revision_id, s.title AS section_title,
coalesce(r.content, '') AS content`

// normalize clamps paging values to sane bounds.
func normalize(f domain.PostFilter) domain.PostFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// buildListQuery assembles the listing query for a filter.
func buildListQuery(f domain.PostFilter) (string, []any, error) {
	b := psql.Select(selectColumns).
		From("posts p").
		Join("sections s ON s.id = p.section_id").
		LeftJoin("revisions r ON r.id = p.current_revision_id")

	b = applyConditions(b, f)
	b = applyOrder(b, f.Order)
	b = b.Limit(uint64(f.Limit)).Offset(uint64(f.Offset))

	return b.ToSql()
}

// buildCountQuery assembles the matching total-count query (no order, no
// paging).
func buildCountQuery(f domain.PostFilter) (string, []any, error) {
	b := psql.Select("count(*)").
		From("posts p").
		Join("sections s ON s.id = p.section_id").
		LeftJoin("revisions r ON r.id = p.current_revision_id")

	b = applyConditions(b, f)

	return b.ToSql()
}

func applyConditions(b sq.SelectBuilder, f domain.PostFilter) sq.SelectBuilder {
	if len(f.SectionIDs) > 0 {
		b = b.Where(sq.Eq{"p.section_id": f.SectionIDs})
	}
	if f.Catalog != nil {
		b = b.Where(sq.Eq{"s.catalog": string(*f.Catalog)})
	}
	if len(f.Statuses) > 0 {
		statuses := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			statuses[i] = string(s)
		}
		b = b.Where(sq.Eq{"p.status": statuses})
	}
	if f.FeaturedOnly {
		b = b.Where(sq.Eq{"p.is_featured": true})
	}
	if len(f.QueryWords) > 0 {
		b = b.Where(wordsCondition(f.QueryWords))
	}
	return b
}

// wordsCondition builds the per-word OR match across title, summary and
// content. ILIKE special characters in user input are escaped so they match
// literally.
func wordsCondition(words []string) sq.Sqlizer {
	or := sq.Or{}
	for _, w := range words {
		pattern := "%" + escapeLike(w) + "%"
		or = append(or,
			sq.ILike{"p.title": pattern},
			sq.ILike{"p.summary": pattern},
			sq.ILike{"r.content": pattern},
		)
	}
	return or
}

func applyOrder(b sq.SelectBuilder, order domain.PostOrder) sq.SelectBuilder {
	switch order {
	case domain.PostOrderRecent:
		return b.OrderBy("p.updated_at DESC", "p.created_at DESC")
	case domain.PostOrderPublished:
		return b.OrderBy("p.published_at DESC NULLS LAST", "p.created_at DESC")
	default:
		return b.OrderBy(
			"p.is_featured DESC",
			"p.sort_order ASC",
			"p.published_at DESC NULLS LAST",
			"p.created_at DESC",
		)
	}
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
