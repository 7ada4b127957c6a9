package domain

// Catalog is a top-level, independent taxonomy partition. Root sections each
// belong to exactly one catalog; children inherit it from their parent.
type Catalog string

const (
	CatalogSinyi   Catalog = "sinyi"
	CatalogTaiji   Catalog = "taiji"
	CatalogClasses Catalog = "classes"
)

func (c Catalog) String() string { return string(c) }

func (c Catalog) IsValid() bool {
	switch c {
	case CatalogSinyi, CatalogTaiji, CatalogClasses:
		return true
	}
	return false
}

// PostStatus represents the lifecycle state of a post.
type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

func (s PostStatus) String() string { return string(s) }

func (s PostStatus) IsValid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}

// ActivityAction represents the kind of publisher action recorded in the
// activity log.
type ActivityAction string

const (
	ActivityActionCreate  ActivityAction = "create"
	ActivityActionUpdate  ActivityAction = "update"
	ActivityActionPublish ActivityAction = "publish"
	ActivityActionArchive ActivityAction = "archive"
	ActivityActionDelete  ActivityAction = "delete"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityActionCreate, ActivityActionUpdate, ActivityActionPublish,
		ActivityActionArchive, ActivityActionDelete:
		return true
	}
	return false
}

// Role represents the authorization level of a viewer. The zero value is
// RoleAnonymous: a request without a valid token carries no role.
type Role string

const (
	RoleAnonymous Role = ""
	RoleMember    Role = "member"
	RolePublisher Role = "publisher"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RolePublisher:
		return true
	}
	return false
}

// IsPublisher reports whether the role may perform content mutations.
func (r Role) IsPublisher() bool { return r == RolePublisher }

// IsAuthenticated reports whether the role belongs to a signed-in user.
func (r Role) IsAuthenticated() bool { return r == RoleMember || r == RolePublisher }
