package gate

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the user profile as served by GET /user/profile. The four ban
// sub-records are independent: each gates one forum action with a flag, a
// nullable expiry, and a reason. A nil expiry means the ban is permanent.
// The server never promises to clear an expired flag, so consumers must go
// through IsBannedAt rather than reading the flags directly.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Role         string     `bun:"user_role,notnull" json:"role,omitempty"`
	Username     string     `bun:"username,notnull,unique" json:"username,omitempty"`
	Email        string     `bun:"email,notnull,unique" json:"email,omitempty"`
	AvatarURL    string     `bun:"avatar_url" json:"avatarUrl,omitempty"`
	PasswordHash string     `bun:"password_hash" json:"-"`

	ForumInteractionBanned bool       `bun:"forum_interaction_banned" json:"forumInteractionBanned"`
	ForumBanExpiresAt      *time.Time `bun:"forum_ban_expires_at,nullzero" json:"forumBanExpiresAt,omitempty"`
	ForumBanReason         string     `bun:"forum_ban_reason" json:"forumBanReason,omitempty"`

	ForumCreationBanned       bool       `bun:"forum_creation_banned" json:"forumCreationBanned"`
	ForumCreationBanExpiresAt *time.Time `bun:"forum_creation_ban_expires_at,nullzero" json:"forumCreationBanExpiresAt,omitempty"`
	ForumCreationBanReason    string     `bun:"forum_creation_ban_reason" json:"forumCreationBanReason,omitempty"`

	ForumCommentBanned       bool       `bun:"forum_comment_banned" json:"forumCommentBanned"`
	ForumCommentBanExpiresAt *time.Time `bun:"forum_comment_ban_expires_at,nullzero" json:"forumCommentBanExpiresAt,omitempty"`
	ForumCommentBanReason    string     `bun:"forum_comment_ban_reason" json:"forumCommentBanReason,omitempty"`

	ForumJoinBanned       bool       `bun:"forum_join_banned" json:"forumJoinBanned"`
	ForumJoinBanExpiresAt *time.Time `bun:"forum_join_ban_expires_at,nullzero" json:"forumJoinBanExpiresAt,omitempty"`
	ForumJoinBanReason    string     `bun:"forum_join_ban_reason" json:"forumJoinBanReason,omitempty"`

	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// Bookmark marks a position in a book. The client treats it as an opaque
// payload, persistence is owned by the backend.
type Bookmark struct {
	bun.BaseModel `bun:"table:bookmarks,alias:bkm"`

	ID        uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	UserID    uuid.UUID  `bun:"user_id,notnull,type:uuid" json:"userId,omitempty"`
	BookID    string     `bun:"book_id,notnull" json:"bookId,omitempty"`
	Page      int        `bun:"page" json:"page,omitempty"`
	Note      string     `bun:"note" json:"note,omitempty"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

// ClearBans resets every ban sub-record, used by the unban flow.
func (u *User) ClearBans() {
	u.ForumInteractionBanned = false
	u.ForumBanExpiresAt = nil
	u.ForumBanReason = ""

	u.ForumCreationBanned = false
	u.ForumCreationBanExpiresAt = nil
	u.ForumCreationBanReason = ""

	u.ForumCommentBanned = false
	u.ForumCommentBanExpiresAt = nil
	u.ForumCommentBanReason = ""

	u.ForumJoinBanned = false
	u.ForumJoinBanExpiresAt = nil
	u.ForumJoinBanReason = ""
}
