package site

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/khoahotran/personal-site/pkg/textutil"
)

// Decode parses a persisted document and repairs every missing or
// wrong-typed field to its default instead of failing. Only input that is
// not a JSON object at all is an error. The returned notes describe what was
// repaired so callers can log them.
func Decode(data []byte, now time.Time) (*State, []string, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, fmt.Errorf("decode site document: %w", err)
	}
	n := &normaliser{now: now}
	state := &State{
		Profile:    n.profile(raw["profile"]),
		Categories: n.categories(raw["categories"]),
		Entries:    n.entries(raw["entries"]),
		Homepage:   n.homepage(raw["homepage"]),
		Messages:   n.messages(raw["messages"]),
	}
	return state, n.notes, nil
}

type normaliser struct {
	now   time.Time
	notes []string
}

func (n *normaliser) note(format string, args ...any) {
	n.notes = append(n.notes, fmt.Sprintf(format, args...))
}

func (n *normaliser) object(value any, field string) map[string]any {
	if value == nil {
		return map[string]any{}
	}
	m, ok := value.(map[string]any)
	if !ok {
		n.note("%s is not an object", field)
		return map[string]any{}
	}
	return m
}

func (n *normaliser) array(value any, field string) []any {
	if value == nil {
		return nil
	}
	a, ok := value.([]any)
	if !ok {
		n.note("%s is not an array", field)
		return nil
	}
	return a
}

func str(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return s
}

func truthy(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b != ""
	case float64:
		return b != 0
	case nil:
		return false
	default:
		return true
	}
}

func (n *normaliser) profile(value any) Profile {
	m := n.object(value, "profile")
	return Profile{
		Headline:     str(m, "headline"),
		Intent:       str(m, "intent"),
		FocusAreas:   textutil.NormaliseList(m["focusAreas"]),
		Bio:          str(m, "bio"),
		Links:        textutil.NormaliseList(m["links"]),
		CVHighlights: textutil.NormaliseList(m["cvHighlights"]),
		Location:     str(m, "location"),
		Availability: str(m, "availability"),
		Avatar:       str(m, "avatar"),
		Skills:       textutil.NormaliseList(m["skills"]),
	}
}

func (n *normaliser) categories(value any) []Category {
	items := n.array(value, "categories")
	out := make([]Category, 0, len(items))
	for i, item := range items {
		m := n.object(item, fmt.Sprintf("categories[%d]", i))
		name := strings.TrimSpace(str(m, "name"))
		id := str(m, "id")
		if id == "" {
			seed := name
			if seed == "" {
				seed = fmt.Sprintf("category-%d", n.now.UnixMilli()+int64(i))
			}
			id = textutil.Slugify(seed)
			n.note("categories[%d] had no id, assigned %q", i, id)
		}
		if name == "" {
			name = "Untitled category"
		}
		out = append(out, Category{
			ID:          id,
			Name:        name,
			Description: str(m, "description"),
			Featured:    truthy(m["featured"]),
			Source:      ParseSource(str(m, "source")),
		})
	}
	return out
}

func (n *normaliser) entries(value any) []Entry {
	items := n.array(value, "entries")
	out := make([]Entry, 0, len(items))
	for i, item := range items {
		m := n.object(item, fmt.Sprintf("entries[%d]", i))
		e := Entry{
			ID:        str(m, "id"),
			Title:     str(m, "title"),
			Status:    EntryStatus(str(m, "status")),
			Featured:  truthy(m["featured"]),
			UpdatedAt: str(m, "updatedAt"),
			Summary:   str(m, "summary"),
			Body:      str(m, "body"),
			Link:      str(m, "link"),
			Media:     str(m, "media"),
			Tags:      NormaliseTags(m["tags"]),
			Source:    ParseSource(str(m, "source")),
		}
		if cid, ok := m["categoryId"].(string); ok && cid != "" {
			e.CategoryID = &cid
		}
		if !e.Status.Valid() {
			if e.Status != "" {
				n.note("entries[%d] has unknown status %q", i, e.Status)
			}
			e.Status = EntryStatusDraft
		}
		if e.UpdatedAt == "" {
			e.UpdatedAt = Today(n.now)
		}
		out = append(out, e)
	}
	return out
}

func (n *normaliser) homepage(value any) Homepage {
	m := n.object(value, "homepage")
	hero := n.object(m["hero"], "homepage.hero")
	h := Homepage{
		Hero:       Hero{Title: str(hero, "title"), CTA: str(hero, "cta")},
		Featured:   []FeaturedSlot{},
		Highlights: NormaliseHighlights(m["highlights"]),
	}
	for i, item := range n.array(m["featured"], "homepage.featured") {
		slot := n.object(item, fmt.Sprintf("homepage.featured[%d]", i))
		entryID := str(slot, "entryId")
		if entryID == "" {
			continue
		}
		h.Featured = append(h.Featured, FeaturedSlot{Slot: str(slot, "slot"), EntryID: entryID})
	}
	return h
}

func (n *normaliser) messages(value any) []Message {
	items := n.array(value, "messages")
	out := make([]Message, 0, len(items))
	for i, item := range items {
		m := n.object(item, fmt.Sprintf("messages[%d]", i))
		msg := Message{
			ID:     str(m, "id"),
			Sender: str(m, "sender"),
			Email:  str(m, "email"),
			Status: MessageStatus(str(m, "status")),
			Body:   str(m, "body"),
		}
		if !msg.Status.Valid() {
			msg.Status = MessageStatusNew
		}
		if ts, err := time.Parse(time.RFC3339Nano, str(m, "receivedAt")); err == nil {
			msg.ReceivedAt = ts
		}
		out = append(out, msg)
	}
	return out
}

// NormaliseTags trims tags, drops empties and strips a leading '#'.
func NormaliseTags(value any) []string {
	tags := textutil.NormaliseList(value)
	for i, t := range tags {
		tags[i] = strings.TrimPrefix(t, "#")
	}
	return tags
}

// NormaliseHighlights accepts an array, or a newline separated string.
func NormaliseHighlights(value any) []string {
	switch v := value.(type) {
	case string:
		out := []string{}
		for _, line := range textutil.SplitLines(v) {
			if t := strings.TrimSpace(line); t != "" {
				out = append(out, t)
			}
		}
		return out
	case []any, []string:
		return textutil.NormaliseList(v)
	default:
		return []string{}
	}
}
