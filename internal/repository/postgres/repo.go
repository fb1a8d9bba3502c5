package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/devfolio/chat-service/internal/config"
	"github.com/devfolio/chat-service/internal/model"
)

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

var messageColumns = []string{
	"m.id",
	"m.content",
	"m.user_id",
	"m.created_at",
	"m.is_pinned",
	"m.likes",
	"m.dislikes",
}

func messagesWithProfiles() sq.SelectBuilder {
	return sq.Select(append(messageColumns, "p.username", "p.avatar_url")...).
		From("messages m").
		LeftJoin("profiles p ON p.id = m.user_id")
}

// ListMessages returns messages in creation order. A non-zero limit keeps only the newest ones.
func (r *Repository) ListMessages(ctx context.Context, limit uint64) (model.MessageRowList, error) {
	builder := messagesWithProfiles().OrderBy("m.created_at ASC")
	if limit > 0 {
		recent := messagesWithProfiles().
			OrderBy("m.created_at DESC").
			Limit(limit)
		builder = sq.Select("*").
			FromSelect(recent, "recent").
			OrderBy("recent.created_at ASC")
	}

	query, args, err := builder.
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	messages := model.MessageRowList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %v", err)
	}

	return messages, nil
}

func (r *Repository) GetMessage(ctx context.Context, id string) (*model.MessageRow, error) {
	query, args, err := messagesWithProfiles().
		Where(sq.Eq{"m.id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.MessageRow
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %v", err)
	}

	return &message, nil
}

func (r *Repository) SaveMessage(ctx context.Context, userID, content string) (*model.Message, error) {
	query, args, err := sq.Insert("messages").
		Columns("user_id", "content").
		Values(userID, content).
		Suffix("RETURNING id, content, user_id, created_at, is_pinned, likes, dislikes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var message model.Message
	err = r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to save message: %v", err)
	}

	return &message, nil
}

func (r *Repository) DeleteMessage(ctx context.Context, id string) (*model.Message, error) {
	query, args, err := sq.Delete("messages").
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, content, user_id, created_at, is_pinned, likes, dislikes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.returningMessage(ctx, query, args, "delete message")
}

// TogglePin flips is_pinned in a single statement so concurrent toggles never lose an update.
func (r *Repository) TogglePin(ctx context.Context, id string) (*model.Message, error) {
	query, args, err := sq.Update("messages").
		Set("is_pinned", sq.Expr("NOT is_pinned")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, content, user_id, created_at, is_pinned, likes, dislikes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.returningMessage(ctx, query, args, "toggle pin")
}

func (r *Repository) Vote(ctx context.Context, id, kind string) (*model.Message, error) {
	var column string
	switch kind {
	case model.VoteLike:
		column = "likes"
	case model.VoteDislike:
		column = "dislikes"
	default:
		return nil, fmt.Errorf("unknown vote kind: %s", kind)
	}

	query, args, err := sq.Update("messages").
		Set(column, sq.Expr(column+" + 1")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, content, user_id, created_at, is_pinned, likes, dislikes").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	return r.returningMessage(ctx, query, args, "vote")
}

func (r *Repository) returningMessage(ctx context.Context, query string, args []interface{}, action string) (*model.Message, error) {
	var message model.Message
	err := r.Chk(ctx).GetContext(ctx, &message, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to %s: %v", action, err)
	}

	return &message, nil
}

func (r *Repository) GetProfile(ctx context.Context, userID string) (*model.Profile, error) {
	query, args, err := sq.Select("id", "COALESCE(username, '') AS username", "COALESCE(avatar_url, '') AS avatar_url").
		From("profiles").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var profile model.Profile
	err = r.Chk(ctx).GetContext(ctx, &profile, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %v", err)
	}

	return &profile, nil
}

// UpsertProfile creates the profile or overwrites only the fields that are not nil.
func (r *Repository) UpsertProfile(ctx context.Context, userID string, username, avatarURL *string) error {
	query, args, err := sq.Insert("profiles").
		Columns("id", "username", "avatar_url").
		Values(userID, username, avatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET " +
			"username = COALESCE(EXCLUDED.username, profiles.username), " +
			"avatar_url = COALESCE(EXCLUDED.avatar_url, profiles.avatar_url)").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %v", err)
	}

	return nil
}

func (r *Repository) ListComments(ctx context.Context, postID string) (model.CommentList, error) {
	query, args, err := sq.Select("id", "post_id", "user_id", "user_name", "user_avatar", "content", "created_at").
		From("comments").
		Where(sq.Eq{"post_id": postID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	comments := model.CommentList{}
	err = r.Chk(ctx).SelectContext(ctx, &comments, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %v", err)
	}

	return comments, nil
}

func (r *Repository) AddComment(ctx context.Context, comment *model.Comment) error {
	query, args, err := sq.Insert("comments").
		Columns("post_id", "user_id", "user_name", "user_avatar", "content").
		Values(comment.PostID, comment.UserID, comment.UserName, comment.UserAvatar, comment.Content).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	err = r.Chk(ctx).QueryRowxContext(ctx, query, args...).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to add comment: %v", err)
	}

	return nil
}

// GetComment returns the comment only when it belongs to the post.
func (r *Repository) GetComment(ctx context.Context, postID, commentID string) (*model.Comment, error) {
	query, args, err := sq.Select("id", "post_id", "user_id", "user_name", "user_avatar", "content", "created_at").
		From("comments").
		Where(sq.Eq{"id": commentID, "post_id": postID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var comment model.Comment
	err = r.Chk(ctx).GetContext(ctx, &comment, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get comment: %v", err)
	}

	return &comment, nil
}

type reactionTable struct {
	name   string
	column string
}

var reactionTables = map[string]reactionTable{
	model.TargetPost:    {name: "post_reactions", column: "post_id"},
	model.TargetComment: {name: "comment_reactions", column: "comment_id"},
}

func tableFor(target model.ReactionTarget) (reactionTable, error) {
	table, ok := reactionTables[target.Kind]
	if !ok {
		return reactionTable{}, fmt.Errorf("unknown reaction target '%s'", target.Kind)
	}
	return table, nil
}

// GetReaction returns the user's reaction to the target or an empty string.
func (r *Repository) GetReaction(ctx context.Context, target model.ReactionTarget, userID string) (string, error) {
	table, err := tableFor(target)
	if err != nil {
		return "", err
	}

	query, args, err := sq.Select("reaction").
		From(table.name).
		Where(sq.Eq{table.column: target.ID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("failed to build sql query: %v", err)
	}

	var reaction string
	err = r.Chk(ctx).GetContext(ctx, &reaction, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get reaction: %v", err)
	}

	return reaction, nil
}

// InsertReaction overwrites a reaction stored concurrently by the same user.
func (r *Repository) InsertReaction(ctx context.Context, reaction model.Reaction) error {
	table, err := tableFor(reaction.Target)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(table.name).
		Columns(table.column, "user_id", "reaction").
		Values(reaction.Target.ID, reaction.UserID, reaction.Reaction).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, user_id) DO UPDATE SET reaction = EXCLUDED.reaction", table.column)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to insert reaction: %v", err)
	}

	return nil
}

func (r *Repository) UpdateReaction(ctx context.Context, reaction model.Reaction) error {
	table, err := tableFor(reaction.Target)
	if err != nil {
		return err
	}

	query, args, err := sq.Update(table.name).
		Set("reaction", reaction.Reaction).
		Where(sq.Eq{table.column: reaction.Target.ID, "user_id": reaction.UserID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update reaction: %v", err)
	}

	return nil
}

func (r *Repository) DeleteReaction(ctx context.Context, target model.ReactionTarget, userID string) error {
	table, err := tableFor(target)
	if err != nil {
		return err
	}

	query, args, err := sq.Delete(table.name).
		Where(sq.Eq{table.column: target.ID, "user_id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %v", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete reaction: %v", err)
	}

	return nil
}

func (r *Repository) CountReactions(ctx context.Context, target model.ReactionTarget) (*model.ReactionSummary, error) {
	table, err := tableFor(target)
	if err != nil {
		return nil, err
	}

	query, args, err := sq.Select(
		"COUNT(*) FILTER (WHERE reaction = 'like') AS likes",
		"COUNT(*) FILTER (WHERE reaction = 'dislike') AS dislikes",
	).
		From(table.name).
		Where(sq.Eq{table.column: target.ID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %v", err)
	}

	var summary model.ReactionSummary
	err = r.Chk(ctx).GetContext(ctx, &summary, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to count reactions: %v", err)
	}

	return &summary, nil
}
