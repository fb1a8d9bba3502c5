package chatsync

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/devfolio/chat-service/internal/model"
)

var ErrMissingID = errors.New("row has no id")

// ParseMessage converts an untyped backend row into a message. Only a missing id is an
// error; everything else degrades to zero values or placeholders.
func ParseMessage(row model.RawRow) (model.Message, error) {
	id := asString(row["id"])
	if id == "" {
		return model.Message{}, ErrMissingID
	}

	msg := model.Message{
		ID:     id,
		Author: placeholderProfile(),
	}
	MergeMessage(&msg, row)

	return msg, nil
}

// MergeMessage applies the fields present in row to dst. The id is never changed.
func MergeMessage(dst *model.Message, row model.RawRow) {
	if v, ok := row["content"]; ok {
		dst.Content = asString(v)
	}
	if v, ok := row["user_id"]; ok {
		dst.UserID = asString(v)
	}
	if v, ok := row["created_at"]; ok {
		if ts, ok := asTime(v); ok {
			dst.CreatedAt = ts
		}
	}
	if v, ok := row["is_pinned"]; ok {
		dst.IsPinned = asBool(v)
	}
	if v, ok := row["likes"]; ok {
		dst.Likes = asInt(v)
	}
	if v, ok := row["dislikes"]; ok {
		dst.Dislikes = asInt(v)
	}

	for _, k := range []string{"profiles", "profile"} {
		if v, ok := row[k]; ok {
			dst.Author = parseProfile(v)
			break
		}
	}
}

// DecodeRow decodes a change event payload. An empty payload yields an empty row.
func DecodeRow(raw json.RawMessage) (model.RawRow, error) {
	row := model.RawRow{}
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return row, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&row); err != nil {
		return nil, fmt.Errorf("failed to decode row: %w", err)
	}

	return row, nil
}

func placeholderProfile() model.Profile {
	return model.Profile{Username: model.PlaceholderUsername}
}

func parseProfile(v any) model.Profile {
	switch p := v.(type) {
	case []any:
		if len(p) == 0 {
			return placeholderProfile()
		}
		return parseProfile(p[0])
	case map[string]any:
		profile := placeholderProfile()
		if name := asString(p["username"]); name != "" {
			profile.Username = name
		}
		profile.AvatarURL = asString(p["avatar_url"])
		profile.UserID = asString(p["id"])
		return profile
	case model.RawRow:
		return parseProfile(map[string]any(p))
	default:
		return placeholderProfile()
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case fmt.Stringer:
		return s.String()
	default:
		return ""
	}
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		parsed, _ := strconv.ParseBool(b)
		return parsed
	default:
		return false
	}
}

func asInt(v any) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case float64:
		return int64(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		f, _ := n.Float64()
		return int64(f)
	case string:
		i, _ := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return i
	default:
		return 0
	}
}

func asTime(v any) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		parsed, err := time.Parse(time.RFC3339Nano, t)
		if err != nil {
			return time.Time{}, false
		}
		return parsed, true
	default:
		return time.Time{}, false
	}
}
