package scraper

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/linkedlens/linkedlens/internal/models"
	"github.com/linkedlens/linkedlens/pkg/config"
	"github.com/linkedlens/linkedlens/pkg/logging"
	"github.com/linkedlens/linkedlens/pkg/telemetry"
)

var (
	companies = []string{"Tech Company", "Innovation Corp", "Digital Solutions"}
	locations = []string{"San Francisco, CA", "New York, NY", "Bangalore, India", "London, UK"}
	postTypes = []string{
		models.PostTypeText,
		models.PostTypeArticle,
		models.PostTypeImage,
		models.PostTypeVideo,
		models.PostTypePoll,
		models.PostTypeDocument,
	}
	themes = []string{
		"professional development",
		"industry trends",
		"personal achievement",
		"company news",
		"leadership insights",
		"tech innovation",
		"career advice",
	}
	minuteMarks = []string{"00", "15", "30", "45"}
)

var lengthRanges = map[string][2]int{
	models.LengthShort:  {50, 200},
	models.LengthMedium: {201, 500},
	models.LengthLong:   {501, 1000},
}

// Simulated generates synthetic profile and post data with realistic
// distributions in place of a live scraper
type Simulated struct {
	cfg    config.ScraperConfig
	rng    *rand.Rand
	logger *zap.Logger
}

// NewSimulated creates a simulated post source
func NewSimulated(cfg config.ScraperConfig) *Simulated {
	return &Simulated{
		cfg:    cfg,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logging.WithComponent("scraper"),
	}
}

// ScrapeProfile produces a synthetic profile snapshot for the given URL
func (s *Simulated) ScrapeProfile(ctx context.Context, profileURL string) (*models.Profile, error) {
	_, span := telemetry.StartSpan(ctx, "scraper.scrape_profile")
	defer span.End()

	username := UsernameFromURL(profileURL)
	if username == "" {
		return nil, fmt.Errorf("cannot derive username from url %q", profileURL)
	}

	profile := &models.Profile{
		ProfileURL:  profileURL,
		Username:    username,
		Name:        DisplayName(username),
		Headline:    fmt.Sprintf("Professional at %s", companies[s.rng.Intn(len(companies))]),
		Location:    locations[s.rng.Intn(len(locations))],
		Connections: 500 + s.rng.Intn(4501),
	}

	numPosts := s.cfg.MinPosts + s.rng.Intn(s.cfg.MaxPosts-s.cfg.MinPosts+1)
	var totalEngagement float64

	for i := 0; i < numPosts; i++ {
		post := s.makePost()
		totalEngagement += post.Engagement
		profile.Posts = append(profile.Posts, post)
	}

	if numPosts > 0 {
		profile.AvgEngagement = totalEngagement / float64(numPosts)
	}

	s.logger.Info("Scraped profile",
		zap.String("username", username),
		zap.Int("posts", numPosts),
		zap.Float64("avg_engagement", profile.AvgEngagement))

	return profile, nil
}

func (s *Simulated) makePost() models.Post {
	daysAgo := s.rng.Intn(31)
	likes := 10 + s.rng.Intn(491)
	comments := s.rng.Intn(51)
	shares := s.rng.Intn(21)

	postType := postTypes[s.rng.Intn(len(postTypes))]
	theme := themes[s.rng.Intn(len(themes))]

	lengthType := []string{models.LengthShort, models.LengthMedium, models.LengthLong}[s.rng.Intn(3)]
	bounds := lengthRanges[lengthType]

	content := s.makeContent(postType, theme, lengthType, likes, comments, shares, bounds)

	return models.Post{
		Date:          time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02"),
		Time:          fmt.Sprintf("%d:%s", 7+s.rng.Intn(13), minuteMarks[s.rng.Intn(len(minuteMarks))]),
		Content:       content,
		Type:          postType,
		Theme:         theme,
		ContentLength: len(content),
		LengthType:    lengthType,
		Likes:         likes,
		Comments:      comments,
		Shares:        shares,
		Engagement:    models.EngagementScore(likes, comments, shares),
		HasHashtags:   strings.Contains(content, "#"),
		HasLinks:      strings.Contains(content, "http"),
		HasQuestions:  strings.Contains(content, "?"),
		HasMentions:   strings.Contains(content, "@"),
	}
}

func (s *Simulated) makeContent(postType, theme, lengthType string, likes, comments, shares int, bounds [2]int) string {
	var b strings.Builder
	if postType == models.PostTypeText {
		fmt.Fprintf(&b, "Post about %s with %s content length. ", theme, lengthType)
		b.WriteString("This is simulated post content to represent what would be scraped from LinkedIn. ")
	} else {
		fmt.Fprintf(&b, "%s post about %s. ", titleCase(postType), theme)
		fmt.Fprintf(&b, "Media post with %s description. ", lengthType)
	}
	fmt.Fprintf(&b, "This post has %d likes, %d comments, and %d shares.", likes, comments, shares)

	content := b.String()
	target := bounds[0] + s.rng.Intn(bounds[1]-bounds[0]+1)
	if len(content) < target {
		content += strings.Repeat(" ", target-len(content))
	}

	// Most posts carry hashtags
	if s.rng.Float64() > 0.3 {
		pool := []string{
			"#" + strings.ReplaceAll(theme, " ", ""),
			"#" + postType,
			"#LinkedIn", "#Professional", "#Career", "#Innovation",
		}
		n := 1 + s.rng.Intn(5)
		if n > len(pool) {
			n = len(pool)
		}
		s.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		content += " " + strings.Join(pool[:n], " ")
	}

	return content
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
