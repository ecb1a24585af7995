package services

import (
	"context"
	"fmt"
	"log"

	"workwithme/internal/models/db_models"
	"workwithme/internal/repositories"
	"workwithme/pkg/utils"
)

type SeedServiceInterface interface {
	Seed(ctx context.Context) error
}

type SeedService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	questionRepo repositories.QuestionRepositoryInterface
}

func NewSeedService(
	categoryRepo repositories.CategoryRepositoryInterface,
	questionRepo repositories.QuestionRepositoryInterface,
) SeedServiceInterface {
	return &SeedService{
		categoryRepo: categoryRepo,
		questionRepo: questionRepo,
	}
}

type seedQuestion struct {
	key         string
	text        string
	qType       db_models.QuestionType
	choices     []string
	placeholder string
}

type seedCategory struct {
	name      string
	questions []seedQuestion
}

var defaultCatalog = []seedCategory{
	{
		name: "Communication Preferences",
		questions: []seedQuestion{
			{
				key:     "preferred-channel",
				text:    "What's your preferred communication channel?",
				qType:   db_models.TypeChoice,
				choices: []string{"Slack", "Email", "Video call", "In-person", "Mix - depends on urgency"},
			},
			{
				key:         "response-time",
				text:        "What are your typical response time expectations?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Within 24 hours for email, 1 hour for Slack during work hours",
			},
			{
				key:         "meeting-preferences",
				text:        "When do you prefer to schedule meetings?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Afternoons, no meetings before 10 AM",
			},
		},
	},
	{
		name: "Work Style",
		questions: []seedQuestion{
			{
				key:         "focus-hours",
				text:        "When are your deep focus hours?",
				qType:       db_models.TypeText,
				placeholder: "e.g., 9-11 AM daily, no interruptions please",
			},
			{
				key:         "collaboration",
				text:        "How do you prefer to collaborate?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Async first, sync when needed",
			},
			{
				key:         "timezone",
				text:        "What's your timezone and typical working hours?",
				qType:       db_models.TypeText,
				placeholder: "e.g., EST, 9 AM - 5 PM",
			},
		},
	},
	{
		name: "Feedback Style",
		questions: []seedQuestion{
			{
				key:     "delivery-style",
				text:    "How do you prefer to receive feedback?",
				qType:   db_models.TypeChoice,
				choices: []string{"Direct and concise", "Diplomatic with context", "Mix of both", "Written first, then discuss"},
			},
			{
				key:         "frequency",
				text:        "How often do you like to receive feedback?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Regular 1:1s, real-time, after projects",
			},
		},
	},
	{
		name: "Strengths & Growing Areas",
		questions: []seedQuestion{
			{
				key:         "strengths",
				text:        "What are your key strengths?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Strategic thinking, problem-solving, mentoring",
			},
			{
				key:         "growth-areas",
				text:        "What areas are you currently focused on developing?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Public speaking, delegation, technical depth",
			},
		},
	},
	{
		name: "Pet Peeves & Energizers",
		questions: []seedQuestion{
			{
				key:         "pet-peeves",
				text:        "What are your workplace pet peeves?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Last-minute meetings, unclear objectives",
			},
			{
				key:         "energizers",
				text:        "What energizes you at work?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Solving complex problems, helping teammates grow",
			},
		},
	},
	{
		name: "Personal Context",
		questions: []seedQuestion{
			{
				key:         "hobbies",
				text:        "What are your hobbies or interests outside of work?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Hiking, photography, cooking",
			},
			{
				key:         "fun-facts",
				text:        "Any fun facts you'd like to share?",
				qType:       db_models.TypeText,
				placeholder: "e.g., Lived in 3 countries, speak 4 languages",
			},
		},
	},
}

// Seed installs the default catalog. A non-empty catalog makes it a no-op
// so repeated startups never duplicate records.
func (s *SeedService) Seed(ctx context.Context) error {
	count, err := s.categoryRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if count > 0 {
		log.Printf("Catalog already seeded (%d categories found)", count)
		return nil
	}

	seeded := 0
	for order, sc := range defaultCatalog {
		category := &db_models.Category{
			Name:         sc.name,
			DisplayOrder: order,
			Active:       true,
		}
		if err := s.categoryRepo.Create(ctx, category); err != nil {
			return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
		}

		for qOrder, sq := range sc.questions {
			question := &db_models.Question{
				CategoryID:   category.ID,
				QuestionKey:  sq.key,
				Text:         sq.text,
				Type:         sq.qType,
				Choices:      sq.choices,
				Placeholder:  sq.placeholder,
				DisplayOrder: qOrder,
				Active:       true,
			}
			if err := s.questionRepo.Create(ctx, question); err != nil {
				return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
			}
			seeded++
		}
	}

	log.Printf("Seeded %d categories and %d questions", len(defaultCatalog), seeded)
	return nil
}
