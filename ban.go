package gate

import (
	"fmt"
	"time"
)

// BanAction enumerates the independently bannable forum actions.
type BanAction string

const (
	BanActionInteraction BanAction = "forum.interaction"
	BanActionCreation    BanAction = "forum.creation"
	BanActionComment     BanAction = "forum.comment"
	BanActionJoin        BanAction = "forum.join"
)

// BanRecord is the {flag, expiry, reason} triple gating one forum action.
// A nil ExpiresAt with the flag set means the ban is permanent.
type BanRecord struct {
	Action    BanAction
	Banned    bool
	ExpiresAt *time.Time
	Reason    string
}

// Active reports whether the record bans the action right now.
func (b BanRecord) Active() bool {
	return b.ActiveAt(time.Now())
}

// ActiveAt reports whether the record bans the action at the given moment.
func (b BanRecord) ActiveAt(at time.Time) bool {
	return IsBannedAt(b.Banned, b.ExpiresAt, at)
}

// Message renders the user-facing ban notification for this record.
func (b BanRecord) Message() string {
	return BanMessage(b.Reason, b.ExpiresAt)
}

// IsBanned evaluates a ban sub-record against the current time.
func IsBanned(flag bool, expiry *time.Time) bool {
	return IsBannedAt(flag, expiry, time.Now())
}

// IsBannedAt is the single ban definition shared by the route guards and
// the admin ban summary: flag set AND (no expiry OR expiry in the future).
// A flag left set past its expiry does NOT count as banned; the server is
// not trusted to have cleared it.
func IsBannedAt(flag bool, expiry *time.Time, at time.Time) bool {
	if !flag {
		return false
	}
	if expiry == nil {
		return true
	}
	return expiry.After(at)
}

// BanMessage formats the notification shown when a guard denies access.
func BanMessage(reason string, expiry *time.Time) string {
	if expiry == nil {
		return fmt.Sprintf("permanently banned: %s", reason)
	}
	return fmt.Sprintf("banned until %s: %s", expiry.Format(time.RFC1123), reason)
}

// InteractionBan returns the generic forum-interaction ban sub-record.
func (u *User) InteractionBan() BanRecord {
	return BanRecord{
		Action:    BanActionInteraction,
		Banned:    u.ForumInteractionBanned,
		ExpiresAt: u.ForumBanExpiresAt,
		Reason:    u.ForumBanReason,
	}
}

// CreationBan returns the forum-creation ban sub-record.
func (u *User) CreationBan() BanRecord {
	return BanRecord{
		Action:    BanActionCreation,
		Banned:    u.ForumCreationBanned,
		ExpiresAt: u.ForumCreationBanExpiresAt,
		Reason:    u.ForumCreationBanReason,
	}
}

// CommentBan returns the forum-comment ban sub-record.
func (u *User) CommentBan() BanRecord {
	return BanRecord{
		Action:    BanActionComment,
		Banned:    u.ForumCommentBanned,
		ExpiresAt: u.ForumCommentBanExpiresAt,
		Reason:    u.ForumCommentBanReason,
	}
}

// JoinBan returns the forum-join ban sub-record.
func (u *User) JoinBan() BanRecord {
	return BanRecord{
		Action:    BanActionJoin,
		Banned:    u.ForumJoinBanned,
		ExpiresAt: u.ForumJoinBanExpiresAt,
		Reason:    u.ForumJoinBanReason,
	}
}

// Bans lists every ban sub-record on the profile.
func (u *User) Bans() []BanRecord {
	return []BanRecord{
		u.InteractionBan(),
		u.CreationBan(),
		u.CommentBan(),
		u.JoinBan(),
	}
}

// LatestBanExpiry aggregates the ban sub-records for the admin user
// management summary: the maximum of all non-nil expiry timestamps,
// formatted, or "Permanent" when no expiry exists on the profile.
func LatestBanExpiry(u *User) string {
	var latest *time.Time
	for _, ban := range u.Bans() {
		if ban.ExpiresAt == nil {
			continue
		}
		if latest == nil || ban.ExpiresAt.After(*latest) {
			latest = ban.ExpiresAt
		}
	}
	if latest == nil {
		return "Permanent"
	}
	return latest.Format(time.RFC1123)
}
