package domain

import (
	"errors"
	"strings"
	"time"
)

// ContentStatus represents the lifecycle state of an article.
type ContentStatus string

const (
	StatusDraft     ContentStatus = "draft"
	StatusPublished ContentStatus = "published"
	StatusArchived  ContentStatus = "archived"
)

// ValidStatus reports whether s is a known lifecycle status.
func (s ContentStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

var ErrContentNotFound = errors.New("content not found")
var ErrSlugTaken = errors.New("content with this title already exists")

// Counter names match the bson fields incremented atomically by the
// repositories. There is no per-caller dedup: every call adds one.
const (
	CounterViews     = "views"
	CounterLikes     = "likes"
	CounterShares    = "shares"
	CounterBookmarks = "bookmarks"
	CounterDownloads = "downloads"
)

// Case study classification values, carried over from the product taxonomy.
var CaseStudyCategories = []string{"web-apps", "mobile-apps", "windows-apps", "digital-marketing", "ad-shoot"}

// Article is the shape shared by blog posts and case studies. AuthorName is
// denormalized at creation time so listings render without a join.
type Article struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Title       string        `json:"title" bson:"title"`
	Slug        string        `json:"slug" bson:"slug"`
	Description string        `json:"description" bson:"description"`
	Content     string        `json:"content" bson:"content"`
	Tags        []string      `json:"tags" bson:"tags"`
	AuthorID    string        `json:"author" bson:"author_id"`
	AuthorName  string        `json:"authorName" bson:"author_name"`
	Status      ContentStatus `json:"status" bson:"status"`
	Featured    bool          `json:"featured" bson:"featured"`
	Image       string        `json:"image,omitempty" bson:"image,omitempty"`
	ReadTime    int           `json:"readTime" bson:"read_time"`
	Views       int64         `json:"views" bson:"views"`
	Likes       int64         `json:"likes" bson:"likes"`
	Shares      int64         `json:"shares" bson:"shares"`
	Bookmarks   int64         `json:"bookmarks" bson:"bookmarks"`
	PublishedAt time.Time     `json:"publishedAt,omitempty" bson:"published_at,omitempty"`
	CreatedAt   time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" bson:"updated_at"`
}

// Blog is the simple article variant.
type Blog struct {
	Article `bson:",inline"`
}

// CaseStudy extends Article with classification fields and a download counter.
type CaseStudy struct {
	Article    `bson:",inline"`
	Category   string `json:"category" bson:"category"`
	Industry   string `json:"industry,omitempty" bson:"industry,omitempty"`
	Difficulty string `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Downloads  int64  `json:"downloads" bson:"downloads"`
}

// Slugify derives the URL identifier from a title: lower-case, runs of
// characters outside [a-z0-9] collapse to a single hyphen, no leading or
// trailing hyphen. Deterministic, so re-saving an unchanged title yields the
// same slug. Collisions are rejected by the unique index, never suffixed.
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	pendingHyphen := false
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

const wordsPerMinute = 200

// ReadTimeFor estimates reading time in whole minutes at 200 wpm, never
// below one minute.
func ReadTimeFor(content string) int {
	words := len(strings.Fields(content))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Touch applies the derived-field rules on create and update: slug follows
// the title and read time follows the content. PublishedAt is stamped by the
// service the first time the article becomes published.
func (a *Article) Touch() {
	a.Slug = Slugify(a.Title)
	a.ReadTime = ReadTimeFor(a.Content)
}
