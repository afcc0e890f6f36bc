package main

import (
	"context"
	"time"

	"campusfaq/internal/config"
	"campusfaq/internal/model"
	"campusfaq/internal/repository"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Starter corpus covering the main campus topics. Keywords are what students
// actually type, not what the canonical question says.
var entries = []*model.FAQEntry{
	{
		Question: "What courses are offered?",
		Answer:   "We offer diploma programs in Computer Science, Mechanical, Electronics and Electrical Engineering.",
		Keywords: []string{"courses", "diploma", "branches", "programs"},
		Category: model.CategoryCourses,
		Priority: 8,
		IsActive: true,
	},
	{
		Question: "What is the admission process?",
		Answer:   "Apply online through the admission portal, then submit your marksheets for document verification at the campus office.",
		Keywords: []string{"admission process", "apply", "application", "eligibility"},
		Category: model.CategoryAdmission,
		Priority: 9,
		IsActive: true,
	},
	{
		Question: "How much are the hostel charges?",
		Answer:   "Hostel charges are 45,000 per year including mess, payable in two installments.",
		Keywords: []string{"hostel", "hostel fees", "accommodation", "rooms"},
		Category: model.CategoryHostel,
		Priority: 6,
		IsActive: true,
	},
	{
		Question: "What is the fee structure?",
		Answer:   "Tuition is 25,000 per semester. Scholarships and fee concessions are available for eligible students.",
		Keywords: []string{"fees", "fee structure", "tuition", "scholarship"},
		Category: model.CategoryFees,
		Priority: 9,
		IsActive: true,
	},
	{
		Question: "How do placements work?",
		Answer:   "The placement cell runs campus drives in the final year. Last year over 80% of eligible students were placed.",
		Keywords: []string{"placement", "jobs", "recruiters", "salary package"},
		Category: model.CategoryPlacement,
		Priority: 7,
		IsActive: true,
	},
	{
		Question: "What are the library timings?",
		Answer:   "The central library is open 8am to 8pm on weekdays and 9am to 5pm on Saturdays.",
		Keywords: []string{"library", "timings", "reading room"},
		Category: model.CategoryFacility,
		Priority: 4,
		IsActive: true,
	},
	{
		Question: "How can I contact the college office?",
		Answer:   "Call the office at +91-1234-567890 or write to office@campus.example.edu.",
		Keywords: []string{"contact", "phone", "email", "office"},
		Category: model.CategoryContact,
		Priority: 5,
		IsActive: true,
	},
}

func main() {
	cfg := config.Load()
	log := logrus.New().WithField("component", "seed")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.WithError(err).Fatal("failed to connect to MongoDB")
	}
	defer client.Disconnect(ctx)

	repo := repository.NewFAQRepo(client.Database(cfg.MongoDB))

	for _, entry := range entries {
		id, err := repo.Create(ctx, entry)
		if err != nil {
			log.WithError(err).WithField("question", entry.Question).Fatal("failed to seed entry")
		}
		log.WithFields(logrus.Fields{"id": id, "question": entry.Question}).Info("seeded")
	}

	log.WithField("count", len(entries)).Info("seed complete")
}
