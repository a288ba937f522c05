package gate

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

type UnbanUserMessage struct {
	UserID uuid.UUID `json:"user_id"`
}

func (e UnbanUserMessage) Type() string { return "user.unban" }

type UnbanUserHandler struct {
	repo     RepositoryManager
	profiles ProfileInvalidator
}

// NewUnbanUserHandler lifts every forum ban from a user. Moderation
// tooling dispatches it after an appeal is granted.
func NewUnbanUserHandler(repo RepositoryManager, profiles ProfileInvalidator) *UnbanUserHandler {
	return &UnbanUserHandler{repo: repo, profiles: profiles}
}

func (h *UnbanUserHandler) Execute(ctx context.Context, event UnbanUserMessage) error {
	if event.UserID == uuid.Nil {
		return goerrors.New("unban requires a user id", goerrors.CategoryBadInput)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	if err := h.repo.Users().ClearBans(ctx, event.UserID); err != nil {
		var richErr *goerrors.Error
		if goerrors.As(err, &richErr) {
			return richErr
		}
		return goerrors.Wrap(err, goerrors.CategoryOperation, "could not clear user bans")
	}

	if h.profiles != nil {
		h.profiles.Invalidate()
	}

	return nil
}
