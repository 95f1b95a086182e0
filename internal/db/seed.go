package db

import (
	"context"
	"time"

	"github.com/linkedlens/linkedlens/internal/models"
	"github.com/linkedlens/linkedlens/pkg/logging"
)

type sampleRecord struct {
	content         string
	topic           string
	tone            string
	includeCTA      bool
	includeHashtags bool
	feedback        string
	daysAgo         int
}

var sampleFeedback = []sampleRecord{
	{
		content:         "Excited to share my thoughts on AI in marketing! The potential for personalization and customer insights is game-changing. What's your experience with AI tools in your marketing strategy? #AIMarketing #DigitalTransformation #MarketingTrends",
		topic:           "AI in Marketing",
		tone:            models.ToneConversational,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         14,
	},
	{
		content:         "Leadership isn't about having all the answers. It's about asking the right questions. Today I challenged my team to think differently about our quarterly goals, and the insights were invaluable. True growth comes from collaborative problem-solving. #Leadership #TeamDevelopment",
		topic:           "Leadership",
		tone:            models.ToneInspirational,
		includeCTA:      false,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         12,
	},
	{
		content:         "New research reveals that companies with diverse leadership teams outperform competitors by 35%. This data confirms what we already knew: diversity isn't just good ethics, it's good business. Here's a link to the full study. #DiversityInBusiness #Leadership",
		topic:           "Diversity in Business",
		tone:            models.ToneEducational,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackNegative,
		daysAgo:         10,
	},
	{
		content:         "Just released our comprehensive guide to remote work best practices. After 2 years of research across 150+ companies, we've identified the key factors that make remote teams successful. Download now (link in comments). #RemoteWork #FutureOfWork #Productivity",
		topic:           "Remote Work",
		tone:            models.ToneProfessional,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         8,
	},
	{
		content:         "Our Q3 webinar series kicks off next week! Join industry experts as we explore emerging technologies reshaping finance. Reserve your spot now, spaces are limited. #FinTech #DigitalBanking #Innovation",
		topic:           "FinTech Webinar",
		tone:            models.TonePromotional,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackNeutral,
		daysAgo:         6,
	},
	{
		content:         "Thrilled to announce our partnership with Green Solutions to reduce our carbon footprint by 40% over the next two years. Sustainability isn't just a goal, it's our responsibility. #Sustainability #ClimateAction",
		topic:           "Sustainability",
		tone:            models.ToneInspirational,
		includeCTA:      false,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         4,
	},
	{
		content:         "Data privacy matters more than ever. Our new white paper examines how regulations like GDPR and CCPA are impacting global businesses and provides actionable compliance strategies. Check it out and share your thoughts! #DataPrivacy #Compliance #GDPR",
		topic:           "Data Privacy",
		tone:            models.ToneEducational,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         2,
	},
	{
		content:         "Just completed the Advanced Business Strategy certification! Grateful for the opportunity to expand my knowledge and connect with amazing professionals in the program. What professional development are you focusing on this quarter? #ProfessionalDevelopment #LifelongLearning",
		topic:           "Professional Development",
		tone:            models.ToneConversational,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         1,
	},
	{
		content:         "Breaking: Our new mobile app launches today! After months of user testing and refinement, we're proud to deliver a seamless experience that will transform how you manage your workflow. Download now from the App Store or Google Play. #ProductLaunch #Innovation #MobileApp",
		topic:           "Product Launch",
		tone:            models.TonePromotional,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackNegative,
		daysAgo:         0,
	},
	{
		content:         "Honored to be speaking at next month's Tech Forward Conference on 'Building Ethical AI Systems.' If you're attending, let's connect! #AI #TechEthics #Conference",
		topic:           "AI Ethics",
		tone:            models.ToneProfessional,
		includeCTA:      true,
		includeHashtags: true,
		feedback:        models.FeedbackPositive,
		daysAgo:         0,
	},
}

// SeedSampleFeedback inserts demonstration generated posts when the table is
// empty, so the feedback dashboard has something to show before any real
// drafts have been rated. Idempotent: a non-empty table disables it.
func (r *GeneratedPostRepository) SeedSampleFeedback(ctx context.Context) error {
	count, err := r.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	records := make([]models.GeneratedPost, len(sampleFeedback))
	for i, s := range sampleFeedback {
		records[i] = models.GeneratedPost{
			Content:         s.content,
			Topic:           s.topic,
			Tone:            s.tone,
			IncludeCTA:      s.includeCTA,
			IncludeHashtags: s.includeHashtags,
			Feedback:        s.feedback,
			GenerationTime:  now.AddDate(0, 0, -s.daysAgo),
		}
	}

	if err := r.db.WithContext(ctx).Create(&records).Error; err != nil {
		return storageErr("seed_sample_feedback", err)
	}

	logging.WithComponent("db").Info("Seeded sample feedback posts")
	return nil
}
