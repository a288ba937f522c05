package gate

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// RepositoryManager exposes all repositories
type RepositoryManager interface {
	repository.Validator
	repository.TransactionManager
	Users() Users
	Bookmarks() repository.Repository[*Bookmark]
}

func NewBookmarksRepository(db *bun.DB) repository.Repository[*Bookmark] {
	handlers := repository.ModelHandlers[*Bookmark]{
		NewRecord: func() *Bookmark {
			return &Bookmark{}
		},
		GetID: func(record *Bookmark) uuid.UUID {
			if record == nil {
				return uuid.Nil
			}
			return record.ID
		},
		SetID: func(record *Bookmark, id uuid.UUID) {
			record.ID = id
		},
		GetIdentifier: func() string {
			return "book_id"
		},
	}
	return repository.NewRepository(db, handlers)
}

type mngr struct {
	db        *bun.DB
	users     Users
	bookmarks repository.Repository[*Bookmark]
}

func NewRepositoryManager(db *bun.DB) RepositoryManager {
	return &mngr{
		db:        db,
		users:     NewUsersRepository(db),
		bookmarks: NewBookmarksRepository(db),
	}
}

func (m mngr) Validate() error {
	if m.users == nil {
		return errors.New("repository users should be initialized")
	}

	if m.bookmarks == nil {
		return errors.New("repository bookmarks should be initialized")
	}

	return nil
}

func (m mngr) MustValidate() {
	if err := m.Validate(); err != nil {
		log.Panic(err)
	}
}

func (m mngr) RunInTx(ctx context.Context, opts *sql.TxOptions, f func(ctx context.Context, tx bun.Tx) error) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return m.db.RunInTx(ctx, opts, f)
	}
}

func (m mngr) Users() Users {
	return m.users
}

func (m mngr) Bookmarks() repository.Repository[*Bookmark] {
	return m.bookmarks
}
